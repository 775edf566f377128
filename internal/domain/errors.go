package domain

import (
	"errors"
	"fmt"
)

// ErrUnauthenticated is returned by cart mutations that require a logged-in
// session.
var ErrUnauthenticated = errors.New("not logged in")

// Bound names which purchase ceiling a quantity check ran into.
type Bound string

const (
	BoundStock       Bound = "stock"
	BoundMaxPurchase Bound = "maxPurchase"
)

// QuantityExceededError reports a cart quantity that would exceed a product's
// stock or max-purchase ceiling. The ledger is left unmodified when it is
// returned.
type QuantityExceededError struct {
	ProductID int
	Requested int
	Limit     int
	Bound     Bound
}

func (e *QuantityExceededError) Error() string {
	return fmt.Sprintf("quantity %d for product %d exceeds %s limit %d",
		e.Requested, e.ProductID, e.Bound, e.Limit)
}
