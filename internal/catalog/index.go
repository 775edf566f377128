package catalog

import (
	"context"
	"sync"

	"freshmart/storefront/internal/domain"
	"freshmart/storefront/internal/feed"

	log "github.com/sirupsen/logrus"
)

// Index reconciles the feed's two product representations into one in-memory
// catalog: a category sequence, a product-id map deduplicated first-writer-wins
// across both sections, the flat products sequence and a category→goods map.
//
// One Index is shared by all consumers. It is mutable only during Build; every
// query is a read that tolerates a not-yet-loaded index by returning empty
// results.
type Index struct {
	mu     sync.RWMutex
	loader feed.Loader

	categories    []domain.Category
	products      []domain.Product // flat-section entries, document order
	productMap    map[int]domain.Product
	categoryGoods map[int][]domain.Product
	loaded        bool
}

// NewIndex returns an empty, not-yet-loaded Index backed by the given Loader.
func NewIndex(loader feed.Loader) *Index {
	return &Index{
		loader:        loader,
		productMap:    make(map[int]domain.Product),
		categoryGoods: make(map[int][]domain.Product),
	}
}

// EnsureLoaded loads and builds the index unless it is already ready. The
// loaded check is a best-effort single-flight gate: a concurrent caller that
// slips past it re-fetches and rebuilds, which is wasteful but safe because
// Build is deterministic for a given document.
func (x *Index) EnsureLoaded(ctx context.Context) error {
	x.mu.RLock()
	loaded := x.loaded
	x.mu.RUnlock()
	if loaded {
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	doc := x.loader.Load(ctx)
	x.Build(doc)
	return nil
}

// Build derives all index structures from the document. Processing order is
// load-bearing: the nested list section runs before the flat products section,
// which makes list-sourced records win the id map on collision.
func (x *Index) Build(doc *domain.FeedDocument) {
	x.mu.Lock()
	defer x.mu.Unlock()

	x.categories = nil
	x.products = nil
	x.productMap = make(map[int]domain.Product)
	x.categoryGoods = make(map[int][]domain.Product)

	if doc == nil {
		doc = &domain.FeedDocument{}
	}

	for _, cat := range doc.List {
		children := cat.Children
		if children == nil {
			children = []string{}
		}

		x.categories = append(x.categories, domain.Category{
			ID:       cat.ID,
			Name:     cat.Name,
			Children: children,
		})

		for _, raw := range cat.Goods {
			product := raw.Normalize(domain.SourceList)
			product.CategoryID = cat.ID
			product.CategoryName = cat.Name

			x.categoryGoods[cat.ID] = append(x.categoryGoods[cat.ID], product)

			if _, exists := x.productMap[product.ID]; !exists {
				x.productMap[product.ID] = product
			}
		}
	}

	for _, raw := range doc.Products {
		product := raw.Normalize(domain.SourceProducts)

		// The flat sequence keeps the entry even on an id collision; only
		// the id map holds on to the earlier list-sourced record.
		x.products = append(x.products, product)

		if _, exists := x.productMap[product.ID]; !exists {
			x.productMap[product.ID] = product
		} else {
			log.Debugf("Skipping duplicate product id %d from products section", product.ID)
		}
	}

	x.loaded = true
	log.Infof("Catalog index built: %d categories, %d products",
		len(x.categories), len(x.productMap))
}

// ProductByID looks up a product by its identifier.
func (x *Index) ProductByID(id int) (domain.Product, bool) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	product, ok := x.productMap[id]
	return product, ok
}

// Categories returns the category sequence in feed order.
func (x *Index) Categories() []domain.Category {
	x.mu.RLock()
	defer x.mu.RUnlock()

	out := make([]domain.Category, len(x.categories))
	copy(out, x.categories)
	return out
}

// GoodsByCategoryID returns the goods embedded under a category, or an empty
// sequence for an unknown category.
func (x *Index) GoodsByCategoryID(id int) []domain.Product {
	x.mu.RLock()
	defer x.mu.RUnlock()

	goods := x.categoryGoods[id]
	out := make([]domain.Product, len(goods))
	copy(out, goods)
	return out
}

// AllProducts returns every distinct product across both feed sections:
// flat-section entries first, then category-embedded goods in category order,
// skipping ids already emitted.
func (x *Index) AllProducts() []domain.Product {
	x.mu.RLock()
	defer x.mu.RUnlock()

	seen := make(map[int]bool, len(x.productMap))
	out := make([]domain.Product, 0, len(x.productMap))

	for _, product := range x.products {
		if seen[product.ID] {
			continue
		}
		seen[product.ID] = true
		out = append(out, product)
	}

	for _, cat := range x.categories {
		for _, product := range x.categoryGoods[cat.ID] {
			if seen[product.ID] {
				continue
			}
			seen[product.ID] = true
			out = append(out, product)
		}
	}

	return out
}

// NewProducts returns the flat-section entries. An empty products section
// yields an empty result; category-embedded goods are never substituted.
func (x *Index) NewProducts() []domain.Product {
	x.mu.RLock()
	defer x.mu.RUnlock()

	out := make([]domain.Product, 0, len(x.products))
	for _, product := range x.products {
		if product.Source == domain.SourceProducts {
			out = append(out, product)
		}
	}
	return out
}

// ProductsByCategoryName resolves a category by exact name and returns its
// goods.
func (x *Index) ProductsByCategoryName(name string) []domain.Product {
	x.mu.RLock()
	categoryID := -1
	for _, cat := range x.categories {
		if cat.Name == name {
			categoryID = cat.ID
			break
		}
	}
	x.mu.RUnlock()

	if categoryID < 0 {
		return []domain.Product{}
	}
	return x.GoodsByCategoryID(categoryID)
}

// Loaded reports whether a load operation, successful or fallen back, has
// completed.
func (x *Index) Loaded() bool {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.loaded
}
