package domain

// FeedDocument is the raw catalog payload: a nested category tree and a flat
// products list. Both sections are optional and frequently inconsistent with
// each other; the catalog index reconciles them.
type FeedDocument struct {
	List     []FeedCategory `json:"list"`
	Products []FeedProduct  `json:"products"`
}

// FeedCategory is a category entry of the nested-list section.
type FeedCategory struct {
	ID       int           `json:"id"`
	Name     string        `json:"name"`
	Children []string      `json:"children"`
	Goods    []FeedProduct `json:"goods"`
}

// FeedProduct is a loosely-shaped product record as it appears in the feed.
// Older feed revisions write "desc" where newer ones write "description";
// both are accepted and collapsed during normalization.
type FeedProduct struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Picture     string  `json:"picture"`
	Description string  `json:"description"`
	Desc        string  `json:"desc"`
	Category    string  `json:"category"`
	Stock       *int    `json:"stock"`
	Rating      float64 `json:"rating"`
	MaxPurchase *int    `json:"maxPurchase"`
}

// Normalize converts a raw feed record into the canonical Product shape:
// image path canonicalized, desc/description collapsed, provenance stamped.
func (p FeedProduct) Normalize(source ProductSource) Product {
	desc := p.Description
	if desc == "" {
		desc = p.Desc
	}

	return Product{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Picture:     NormalizeImagePath(p.Picture),
		Description: desc,
		Category:    p.Category,
		Stock:       p.Stock,
		Rating:      p.Rating,
		MaxPurchase: p.MaxPurchase,
		Source:      source,
	}
}
