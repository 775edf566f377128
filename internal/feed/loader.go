package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"freshmart/storefront/internal/config"
	"freshmart/storefront/internal/domain"

	log "github.com/sirupsen/logrus"
	"resty.dev/v3"
)

// Loader fetches the catalog document from an ordered list of candidate
// locations and falls back to the seed catalog when every location fails.
type Loader interface {
	Load(ctx context.Context) *domain.FeedDocument
}

type feedLoader struct {
	httpClient *resty.Client
	candidates []string
	timeout    time.Duration
}

// NewLoader builds a Loader from the feed configuration.
func NewLoader(cfg config.FeedConfig) Loader {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	return &feedLoader{
		httpClient: client,
		candidates: cfg.CandidateURLs(),
		timeout:    timeout,
	}
}

// Load walks the candidate chain in order and returns the first document that
// fetches and decodes. Exhaustion is absorbed: the seed document is returned
// and the storefront stays usable, so the caller never sees an error.
func (l *feedLoader) Load(ctx context.Context) *domain.FeedDocument {
	for _, url := range l.candidates {
		doc, err := l.fetch(ctx, url)
		if err != nil {
			log.Warnf("Feed location %s failed: %v", url, err)
			continue
		}

		log.Infof("Loaded catalog feed from %s (%d categories, %d products)",
			url, len(doc.List), len(doc.Products))
		return doc
	}

	log.Warn("All feed locations failed, falling back to seed catalog")
	return SeedDocument()
}

func (l *feedLoader) fetch(ctx context.Context, url string) (*domain.FeedDocument, error) {
	reqCtx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	resp, err := l.httpClient.R().
		SetContext(reqCtx).
		Get(url)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode(), resp.Status())
	}

	body := resp.String()
	if len(body) == 0 {
		return nil, fmt.Errorf("empty response body")
	}

	var doc domain.FeedDocument
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		return nil, fmt.Errorf("failed to decode feed document: %w", err)
	}

	return &doc, nil
}
