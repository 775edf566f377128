package search

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"freshmart/storefront/internal/catalog"
	"freshmart/storefront/internal/config"
	"freshmart/storefront/internal/domain"
	"freshmart/storefront/internal/store"

	log "github.com/sirupsen/logrus"
)

const historyKey = "search:history"

// Engine filters the catalog index by keyword and keeps a bounded,
// deduplicated search history persisted in the durable store.
type Engine struct {
	mu      sync.Mutex
	catalog *catalog.Index
	store   store.Store

	maxHistory     int
	maxSuggestions int
	vocabulary     []string
	hotKeywords    []string

	keyword     string
	history     []string
	suggestions []string
	results     []domain.Product
	loading     bool
}

// NewEngine builds an Engine over the shared catalog index.
func NewEngine(idx *catalog.Index, st store.Store, cfg config.SearchConfig) *Engine {
	maxHistory := cfg.MaxHistory
	if maxHistory <= 0 {
		maxHistory = 10
	}
	maxSuggestions := cfg.MaxSuggestions
	if maxSuggestions <= 0 {
		maxSuggestions = 5
	}

	return &Engine{
		catalog:        idx,
		store:          st,
		maxHistory:     maxHistory,
		maxSuggestions: maxSuggestions,
		vocabulary:     cfg.Vocabulary,
		hotKeywords:    cfg.HotKeywords,
	}
}

// LoadHistory restores the persisted history. Missing or corrupt records
// reset it to empty.
func (e *Engine) LoadHistory(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	data, found, err := e.store.Get(ctx, historyKey)
	if err != nil {
		log.Warnf("Failed to read search history: %v", err)
		e.history = nil
		return
	}
	if !found {
		e.history = nil
		return
	}

	var history []string
	if err := json.Unmarshal(data, &history); err != nil {
		log.Warnf("Corrupt search history, resetting: %v", err)
		e.history = nil
		return
	}
	e.history = history
}

// Search filters the full catalog by keyword. An empty keyword returns the
// entire catalog and leaves the history untouched; a successful non-empty
// search is front-inserted into the history. On failure the results are
// cleared and nothing is recorded. The loading flag is cleared on every path.
func (e *Engine) Search(ctx context.Context, keyword string) ([]domain.Product, error) {
	e.mu.Lock()
	e.loading = true
	e.keyword = keyword
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		e.loading = false
		e.mu.Unlock()
	}()

	suggestions := e.buildSuggestions(keyword)

	if err := e.catalog.EnsureLoaded(ctx); err != nil {
		log.Errorf("Search for %q failed: %v", keyword, err)
		e.mu.Lock()
		e.suggestions = suggestions
		e.results = nil
		e.mu.Unlock()
		return nil, err
	}

	results := e.filterProducts(keyword)

	e.mu.Lock()
	e.suggestions = suggestions
	e.results = results
	if strings.TrimSpace(keyword) != "" {
		e.addToHistoryLocked(keyword)
		e.persistHistoryLocked(ctx)
	}
	e.mu.Unlock()

	return results, nil
}

// buildSuggestions matches the keyword against the suggestion vocabulary by
// case-sensitive containment, capped to the configured maximum.
func (e *Engine) buildSuggestions(keyword string) []string {
	suggestions := make([]string, 0, e.maxSuggestions)
	for _, term := range e.vocabulary {
		if strings.Contains(term, keyword) {
			suggestions = append(suggestions, term)
			if len(suggestions) == e.maxSuggestions {
				break
			}
		}
	}
	return suggestions
}

// filterProducts matches the keyword case-insensitively against product name
// and category over the full product set.
func (e *Engine) filterProducts(keyword string) []domain.Product {
	all := e.catalog.AllProducts()

	if strings.TrimSpace(keyword) == "" {
		return all
	}

	lower := strings.ToLower(keyword)
	results := make([]domain.Product, 0, len(all))
	for _, product := range all {
		if strings.Contains(strings.ToLower(product.Name), lower) ||
			strings.Contains(strings.ToLower(product.Category), lower) ||
			strings.Contains(strings.ToLower(product.CategoryName), lower) {
			results = append(results, product)
		}
	}
	return results
}

// addToHistoryLocked front-inserts the keyword, deduplicating by exact match
// and trimming to the configured cap.
func (e *Engine) addToHistoryLocked(keyword string) {
	for i, existing := range e.history {
		if existing == keyword {
			e.history = append(e.history[:i], e.history[i+1:]...)
			break
		}
	}

	e.history = append([]string{keyword}, e.history...)
	if len(e.history) > e.maxHistory {
		e.history = e.history[:e.maxHistory]
	}
}

// RemoveHistory deletes the history entry at the given position.
func (e *Engine) RemoveHistory(ctx context.Context, index int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if index < 0 || index >= len(e.history) {
		return
	}
	e.history = append(e.history[:index], e.history[index+1:]...)
	e.persistHistoryLocked(ctx)
}

// ClearHistory drops all history entries and the persisted record.
func (e *Engine) ClearHistory(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.history = nil
	if err := e.store.Delete(ctx, historyKey); err != nil {
		log.Warnf("Failed to delete search history: %v", err)
	}
}

// History returns the most-recent-first search history.
func (e *Engine) History() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]string, len(e.history))
	copy(out, e.history)
	return out
}

// HotKeywords returns the configured hot search terms.
func (e *Engine) HotKeywords() []string {
	out := make([]string, len(e.hotKeywords))
	copy(out, e.hotKeywords)
	return out
}

// Suggestions returns the suggestion list of the latest search.
func (e *Engine) Suggestions() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]string, len(e.suggestions))
	copy(out, e.suggestions)
	return out
}

// Results returns the result list of the latest search.
func (e *Engine) Results() []domain.Product {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]domain.Product, len(e.results))
	copy(out, e.results)
	return out
}

// Keyword returns the keyword of the latest search.
func (e *Engine) Keyword() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.keyword
}

// Loading reports whether a search is in flight.
func (e *Engine) Loading() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.loading
}

func (e *Engine) persistHistoryLocked(ctx context.Context) {
	data, err := json.Marshal(e.history)
	if err != nil {
		log.Errorf("Failed to serialize search history: %v", err)
		return
	}
	if err := e.store.Set(ctx, historyKey, data); err != nil {
		log.Warnf("Failed to persist search history: %v", err)
	}
}
