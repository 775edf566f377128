package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"freshmart/storefront/internal/domain"
	"freshmart/storefront/internal/notify"
	"freshmart/storefront/internal/store"

	log "github.com/sirupsen/logrus"
)

const snapshotKey = "cart"

// AuthChecker reports whether the current session may mutate the cart.
type AuthChecker interface {
	IsLoggedIn() bool
}

// Ledger owns the cart line items and enforces the quantity invariants:
// a line's quantity never exceeds min(stock, maxPurchase) and never drops
// below 1 (the line is removed instead). Every mutation persists the full
// snapshot before returning.
type Ledger struct {
	mu       sync.Mutex
	store    store.Store
	auth     AuthChecker
	notifier notify.Notifier

	items    []domain.CartLine
	shipping float64
	discount float64
}

// NewLedger returns an empty Ledger. Call Load to restore a persisted
// snapshot.
func NewLedger(st store.Store, auth AuthChecker, notifier notify.Notifier, shipping, discount float64) *Ledger {
	return &Ledger{
		store:    st,
		auth:     auth,
		notifier: notifier,
		shipping: shipping,
		discount: discount,
	}
}

// Load restores the persisted snapshot. A missing or corrupt record resets
// the ledger to empty; neither is an error.
func (l *Ledger) Load(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	data, found, err := l.store.Get(ctx, snapshotKey)
	if err != nil {
		log.Warnf("Failed to read cart snapshot: %v", err)
		l.items = nil
		return
	}
	if !found {
		l.items = nil
		return
	}

	var snap domain.CartSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		log.Warnf("Corrupt cart snapshot, resetting to empty cart: %v", err)
		l.items = nil
		return
	}

	l.items = snap.CartItems
	l.shipping = snap.Shipping
	l.discount = snap.Discount
}

// AddToCart merges the requested quantity into an existing line or creates a
// new one. Requires a logged-in session and an in-bounds resulting quantity;
// on any failure the ledger is left unmodified.
func (l *Ledger) AddToCart(ctx context.Context, product domain.Product, quantity int) error {
	if !l.auth.IsLoggedIn() {
		return domain.ErrUnauthenticated
	}
	if quantity < 1 {
		quantity = 1
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.findLine(product.ID)
	newQuantity := quantity
	if idx >= 0 {
		newQuantity = l.items[idx].Quantity + quantity
	}

	if err := checkBounds(product.ID, newQuantity, product.Stock, product.MaxPurchase); err != nil {
		return err
	}

	if idx >= 0 {
		l.items[idx].Quantity = newQuantity
	} else {
		l.items = append(l.items, domain.CartLine{
			ProductID:   product.ID,
			Name:        product.Name,
			Price:       product.Price,
			Picture:     product.Picture,
			Quantity:    newQuantity,
			Stock:       product.Stock,
			MaxPurchase: product.MaxPurchase,
			Selected:    true,
		})
	}

	l.persist(ctx)
	l.notifier.Success(fmt.Sprintf("已添加 %s 到购物车", product.Name))
	return nil
}

// IncreaseQuantity adds one to a line, re-checking the same bounds as
// AddToCart.
func (l *Ledger) IncreaseQuantity(ctx context.Context, productID int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.findLine(productID)
	if idx < 0 {
		return fmt.Errorf("product %d is not in the cart", productID)
	}

	line := l.items[idx]
	if err := checkBounds(productID, line.Quantity+1, line.Stock, line.MaxPurchase); err != nil {
		return err
	}

	l.items[idx].Quantity++
	l.persist(ctx)
	return nil
}

// DecreaseQuantity subtracts one from a line; at quantity 1 the line is
// removed instead of reaching zero.
func (l *Ledger) DecreaseQuantity(ctx context.Context, productID int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.findLine(productID)
	if idx < 0 {
		return fmt.Errorf("product %d is not in the cart", productID)
	}

	if l.items[idx].Quantity <= 1 {
		l.items = append(l.items[:idx], l.items[idx+1:]...)
	} else {
		l.items[idx].Quantity--
	}

	l.persist(ctx)
	return nil
}

// UpdateQuantity sets a line's quantity outright. A target below 1 is a
// removal request.
func (l *Ledger) UpdateQuantity(ctx context.Context, productID, quantity int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.findLine(productID)
	if idx < 0 {
		return fmt.Errorf("product %d is not in the cart", productID)
	}

	if quantity < 1 {
		l.items = append(l.items[:idx], l.items[idx+1:]...)
		l.persist(ctx)
		return nil
	}

	line := l.items[idx]
	if err := checkBounds(productID, quantity, line.Stock, line.MaxPurchase); err != nil {
		return err
	}

	l.items[idx].Quantity = quantity
	l.persist(ctx)
	return nil
}

// RemoveFromCart deletes a line unconditionally.
func (l *Ledger) RemoveFromCart(ctx context.Context, productID int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.findLine(productID)
	if idx < 0 {
		return
	}

	l.items = append(l.items[:idx], l.items[idx+1:]...)
	l.persist(ctx)
}

// ClearCart removes every line.
func (l *Ledger) ClearCart(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.items = nil
	l.persist(ctx)
}

// ToggleSelected flips a line's checkout selection flag.
func (l *Ledger) ToggleSelected(ctx context.Context, productID int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.findLine(productID)
	if idx < 0 {
		return fmt.Errorf("product %d is not in the cart", productID)
	}

	l.items[idx].Selected = !l.items[idx].Selected
	l.persist(ctx)
	return nil
}

// Lines returns a copy of the cart lines in insertion order.
func (l *Ledger) Lines() []domain.CartLine {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]domain.CartLine, len(l.items))
	copy(out, l.items)
	return out
}

// TotalItems is the sum of all line quantities.
func (l *Ledger) TotalItems() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	total := 0
	for _, line := range l.items {
		total += line.Quantity
	}
	return total
}

// Subtotal is the sum of price×quantity over all lines.
func (l *Ledger) Subtotal() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.subtotalLocked(false)
}

// SelectedSubtotal sums only the lines marked for checkout.
func (l *Ledger) SelectedSubtotal() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.subtotalLocked(true)
}

// GrandTotal is subtotal + shipping − discount.
func (l *Ledger) GrandTotal() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.subtotalLocked(false) + l.shipping - l.discount
}

// IsEmpty reports whether the cart has no lines.
func (l *Ledger) IsEmpty() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items) == 0
}

// Shipping returns the shipping fee applied to the grand total.
func (l *Ledger) Shipping() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.shipping
}

// Discount returns the discount applied to the grand total.
func (l *Ledger) Discount() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.discount
}

func (l *Ledger) subtotalLocked(selectedOnly bool) float64 {
	total := 0.0
	for _, line := range l.items {
		if selectedOnly && !line.Selected {
			continue
		}
		total += line.Price * float64(line.Quantity)
	}
	return total
}

func (l *Ledger) findLine(productID int) int {
	for i, line := range l.items {
		if line.ProductID == productID {
			return i
		}
	}
	return -1
}

// persist writes the full snapshot. Store failures are logged, not
// propagated: the in-memory cart stays authoritative for the session.
func (l *Ledger) persist(ctx context.Context) {
	snap := domain.CartSnapshot{
		CartItems:   l.items,
		Shipping:    l.shipping,
		Discount:    l.discount,
		LastUpdated: time.Now().UTC(),
	}

	data, err := json.Marshal(snap)
	if err != nil {
		log.Errorf("Failed to serialize cart snapshot: %v", err)
		return
	}

	if err := l.store.Set(ctx, snapshotKey, data); err != nil {
		log.Warnf("Failed to persist cart snapshot: %v", err)
	}
}

func checkBounds(productID, quantity int, stock, maxPurchase *int) error {
	if stock != nil && quantity > *stock {
		return &domain.QuantityExceededError{
			ProductID: productID,
			Requested: quantity,
			Limit:     *stock,
			Bound:     domain.BoundStock,
		}
	}
	if maxPurchase != nil && quantity > *maxPurchase {
		return &domain.QuantityExceededError{
			ProductID: productID,
			Requested: quantity,
			Limit:     *maxPurchase,
			Bound:     domain.BoundMaxPurchase,
		}
	}
	return nil
}
