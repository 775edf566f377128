package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"freshmart/storefront/internal/config"
	"freshmart/storefront/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const feedBody = `{"list":[{"id":1,"name":"A","goods":[{"id":10,"name":"X","price":5,"picture":""}]}],"products":[{"id":20,"name":"Y","price":9,"picture":"/img/y.jpg"}]}`

func newLoader(candidates ...string) Loader {
	return NewLoader(config.FeedConfig{
		Candidates: candidates,
		Timeout:    2,
	})
}

func TestLoader_FirstCandidateWins(t *testing.T) {
	hits := 0
	first := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
		w.Write([]byte(feedBody))
	}))
	defer first.Close()

	second := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Error("second candidate should not be tried")
	}))
	defer second.Close()

	doc := newLoader(first.URL, second.URL).Load(context.Background())

	require.Len(t, doc.List, 1)
	require.Len(t, doc.Products, 1)
	assert.Equal(t, 1, hits)
}

func TestLoader_FallsThroughFailures(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer failing.Close()

	empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		// 200 with an empty body must be treated as a failed candidate.
	}))
	defer empty.Close()

	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(feedBody))
	}))
	defer good.Close()

	doc := newLoader(failing.URL, empty.URL, good.URL).Load(context.Background())

	require.Len(t, doc.Products, 1)
	assert.Equal(t, 20, doc.Products[0].ID)
}

func TestLoader_MalformedBodyIsRecoverable(t *testing.T) {
	malformed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("{not json"))
	}))
	defer malformed.Close()

	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(feedBody))
	}))
	defer good.Close()

	doc := newLoader(malformed.URL, good.URL).Load(context.Background())
	require.Len(t, doc.Products, 1)
}

func TestLoader_ExhaustionReturnsSeed(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	failing.Close() // also covers the connection-refused case

	doc := newLoader(failing.URL).Load(context.Background())

	require.NotNil(t, doc)
	assert.Len(t, doc.List, 6)
	assert.Empty(t, doc.Products, "seed goods live under categories, not the flat section")
}

func TestSeedDocument(t *testing.T) {
	doc := SeedDocument()

	require.Len(t, doc.List, 6)

	totalGoods := 0
	for _, cat := range doc.List {
		assert.NotEmpty(t, cat.Name)
		assert.Len(t, cat.Children, 4)
		totalGoods += len(cat.Goods)

		for _, raw := range cat.Goods {
			product := raw.Normalize(domain.SourceList)
			assert.NotEmpty(t, product.Name)
			assert.Greater(t, product.Price, 0.0)
			assert.Equal(t, "/images/222.jpg", product.Picture)
			assert.NotEmpty(t, product.Description, "seed desc field must survive normalization")
		}
	}
	assert.Equal(t, 10, totalGoods)
}
