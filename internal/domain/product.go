package domain

// ProductSource records which feed section a product record originated from.
type ProductSource string

func (s ProductSource) String() string {
	return string(s)
}

const (
	// SourceList marks goods embedded under a category in the feed's nested list.
	SourceList ProductSource = "list"
	// SourceProducts marks entries of the feed's flat top-level products section.
	SourceProducts ProductSource = "products"
)

// Product is the canonical product record built once during feed
// normalization. Immutable afterward.
type Product struct {
	ID           int           `json:"id"`
	Name         string        `json:"name"`
	Price        float64       `json:"price"`
	Picture      string        `json:"picture"` // canonicalized, see NormalizeImagePath
	Description  string        `json:"description,omitempty"`
	Category     string        `json:"category,omitempty"` // category term from the flat section
	CategoryID   int           `json:"categoryId,omitempty"`
	CategoryName string        `json:"categoryName,omitempty"`
	Stock        *int          `json:"stock,omitempty"`
	Rating       float64       `json:"rating,omitempty"`
	MaxPurchase  *int          `json:"maxPurchase,omitempty"`
	Source       ProductSource `json:"dataSource,omitempty"`
}

// Category carries the category identity and its subcategory names. Goods are
// kept separately in the catalog index's category map.
type Category struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Children []string `json:"children"` // never nil, empty when absent from the feed
}
