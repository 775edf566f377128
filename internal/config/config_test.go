package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeedConfig_CandidateURLs(t *testing.T) {
	t.Run("derived from base url and resource", func(t *testing.T) {
		cfg := FeedConfig{BaseURL: "http://localhost:5173/", Resource: "goods.json"}

		assert.Equal(t, []string{
			"http://localhost:5173/goods.json",
			"http://localhost:5173/static/goods.json",
			"http://localhost:5173/data/goods.json",
		}, cfg.CandidateURLs())
	})

	t.Run("explicit candidates win", func(t *testing.T) {
		cfg := FeedConfig{
			BaseURL:    "http://ignored",
			Resource:   "goods.json",
			Candidates: []string{"http://a/feed.json", "http://b/feed.json"},
		}

		assert.Equal(t, []string{"http://a/feed.json", "http://b/feed.json"}, cfg.CandidateURLs())
	})
}
