package api

import (
	"net/http"

	"freshmart/storefront/internal/catalog"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the read-only catalog queries consumed by the view
// collaborators.
type CatalogHandler struct {
	index *catalog.Index
}

func NewCatalogHandler(index *catalog.Index) *CatalogHandler {
	return &CatalogHandler{
		index: index,
	}
}

// ListCategories returns the category sequence in feed order.
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": h.index.Categories(),
		"loaded":     h.index.Loaded(),
	})
}

// CategoryGoods returns the goods embedded under one category.
func (h *CatalogHandler) CategoryGoods(c *gin.Context) {
	id, ok := pathID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categoryId": id,
		"goods":      h.index.GoodsByCategoryID(id),
	})
}

// ListProducts returns all products, optionally scoped to a category name.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	if name := c.Query("category"); name != "" {
		c.JSON(http.StatusOK, gin.H{"products": h.index.ProductsByCategoryName(name)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": h.index.AllProducts()})
}

// NewProducts returns the new-arrival products from the feed's flat section.
func (h *CatalogHandler) NewProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"products": h.index.NewProducts()})
}

// GetProduct returns one product by id, 404 when absent.
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, ok := pathID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	product, found := h.index.ProductByID(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	c.JSON(http.StatusOK, product)
}
