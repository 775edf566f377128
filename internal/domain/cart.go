package domain

import "time"

// CartLine is one cart entry with the product fields denormalized for
// display. Quantity stays within [1, min(stock, maxPurchase)]; a line that
// would drop below 1 is removed instead.
type CartLine struct {
	ProductID   int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Picture     string  `json:"picture"`
	Quantity    int     `json:"quantity"`
	Stock       *int    `json:"stock,omitempty"`
	MaxPurchase *int    `json:"maxPurchase,omitempty"`
	Selected    bool    `json:"selected"`
}

// CartSnapshot is the JSON-serializable cart record written to the durable
// store on every mutation.
type CartSnapshot struct {
	CartItems   []CartLine `json:"cartItems"`
	Shipping    float64    `json:"shipping"`
	Discount    float64    `json:"discount"`
	LastUpdated time.Time  `json:"lastUpdated"`
}
