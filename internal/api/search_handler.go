package api

import (
	"net/http"

	"freshmart/storefront/internal/search"

	"github.com/gin-gonic/gin"
)

// SearchHandler serves keyword search and the search history.
type SearchHandler struct {
	engine *search.Engine
}

func NewSearchHandler(engine *search.Engine) *SearchHandler {
	return &SearchHandler{
		engine: engine,
	}
}

// Search runs a keyword search. An empty keyword returns the full catalog.
func (h *SearchHandler) Search(c *gin.Context) {
	keyword := c.Query("keyword")

	results, err := h.engine.Search(c.Request.Context(), keyword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"keyword":     keyword,
		"results":     results,
		"suggestions": h.engine.Suggestions(),
	})
}

// History returns the most-recent-first search history plus hot keywords.
func (h *SearchHandler) History(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"history":     h.engine.History(),
		"hotKeywords": h.engine.HotKeywords(),
	})
}

// RemoveHistory deletes one history entry by position.
func (h *SearchHandler) RemoveHistory(c *gin.Context) {
	index := queryInt(c.Param("index"), -1)
	if index < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid history index"})
		return
	}

	h.engine.RemoveHistory(c.Request.Context(), index)
	c.JSON(http.StatusOK, gin.H{"history": h.engine.History()})
}

// ClearHistory drops the whole history.
func (h *SearchHandler) ClearHistory(c *gin.Context) {
	h.engine.ClearHistory(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"history": []string{}})
}
