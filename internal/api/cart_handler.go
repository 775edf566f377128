package api

import (
	"context"
	"errors"
	"net/http"

	"freshmart/storefront/internal/cart"
	"freshmart/storefront/internal/catalog"
	"freshmart/storefront/internal/domain"

	"github.com/gin-gonic/gin"
)

// CartHandler exposes the cart ledger mutations and derived totals.
type CartHandler struct {
	ledger *cart.Ledger
	index  *catalog.Index
}

func NewCartHandler(ledger *cart.Ledger, index *catalog.Index) *CartHandler {
	return &CartHandler{
		ledger: ledger,
		index:  index,
	}
}

// AddItemRequest is the add-to-cart payload.
type AddItemRequest struct {
	ProductID int `json:"productId" binding:"required"`
	Quantity  int `json:"quantity"`
}

// UpdateItemRequest is the absolute-quantity payload.
type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart returns the cart lines and the derived totals.
func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"cartItems":  h.ledger.Lines(),
		"totalItems": h.ledger.TotalItems(),
		"subtotal":   h.ledger.Subtotal(),
		"shipping":   h.ledger.Shipping(),
		"discount":   h.ledger.Discount(),
		"grandTotal": h.ledger.GrandTotal(),
		"isEmpty":    h.ledger.IsEmpty(),
	})
}

// AddItem resolves the product from the catalog and adds it to the cart.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.index.EnsureLoaded(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	product, found := h.index.ProductByID(req.ProductID)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	if err := h.ledger.AddToCart(c.Request.Context(), product, req.Quantity); err != nil {
		respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"totalItems": h.ledger.TotalItems()})
}

// UpdateItem sets a line's quantity outright.
func (h *CartHandler) UpdateItem(c *gin.Context) {
	id, ok := pathID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.ledger.UpdateQuantity(c.Request.Context(), id, req.Quantity); err != nil {
		respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"totalItems": h.ledger.TotalItems()})
}

// IncreaseItem adds one to a line's quantity.
func (h *CartHandler) IncreaseItem(c *gin.Context) {
	h.adjust(c, h.ledger.IncreaseQuantity)
}

// DecreaseItem subtracts one; a quantity-1 line is removed.
func (h *CartHandler) DecreaseItem(c *gin.Context) {
	h.adjust(c, h.ledger.DecreaseQuantity)
}

// ToggleItem flips a line's selection flag.
func (h *CartHandler) ToggleItem(c *gin.Context) {
	h.adjust(c, h.ledger.ToggleSelected)
}

// RemoveItem deletes a line unconditionally.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	id, ok := pathID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	h.ledger.RemoveFromCart(c.Request.Context(), id)
	c.JSON(http.StatusOK, gin.H{"totalItems": h.ledger.TotalItems()})
}

// ClearCart empties the whole cart.
func (h *CartHandler) ClearCart(c *gin.Context) {
	h.ledger.ClearCart(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"totalItems": 0})
}

func (h *CartHandler) adjust(c *gin.Context, op func(ctx context.Context, id int) error) {
	id, ok := pathID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	if err := op(c.Request.Context(), id); err != nil {
		respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"totalItems": h.ledger.TotalItems()})
}

// respondCartError maps the cart error taxonomy onto HTTP statuses.
func respondCartError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrUnauthenticated) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var qe *domain.QuantityExceededError
	if errors.As(err, &qe) {
		c.JSON(http.StatusConflict, gin.H{
			"error": qe.Error(),
			"bound": string(qe.Bound),
			"limit": qe.Limit,
		})
		return
	}

	c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
}
