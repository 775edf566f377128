package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"freshmart/storefront/internal/cart"
	"freshmart/storefront/internal/catalog"
	"freshmart/storefront/internal/config"
	"freshmart/storefront/internal/search"
	"freshmart/storefront/internal/session"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Server is the HTTP surface consumed by the view collaborators.
type Server struct {
	engine *gin.Engine
	server *http.Server
}

// NewServer wires all handlers onto a gin engine.
func NewServer(
	cfg config.ServerConfig,
	index *catalog.Index,
	ledger *cart.Ledger,
	searchEngine *search.Engine,
	sessions *session.Manager,
) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery())

	catalogHandler := NewCatalogHandler(index)
	cartHandler := NewCartHandler(ledger, index)
	searchHandler := NewSearchHandler(searchEngine)
	sessionHandler := NewSessionHandler(sessions)

	apiGroup := engine.Group("/api")
	{
		apiGroup.GET("/catalog/categories", catalogHandler.ListCategories)
		apiGroup.GET("/catalog/categories/:id/goods", catalogHandler.CategoryGoods)
		apiGroup.GET("/catalog/products", catalogHandler.ListProducts)
		apiGroup.GET("/catalog/new", catalogHandler.NewProducts)
		apiGroup.GET("/catalog/products/:id", catalogHandler.GetProduct)

		apiGroup.GET("/search", searchHandler.Search)
		apiGroup.GET("/search/history", searchHandler.History)
		apiGroup.DELETE("/search/history", searchHandler.ClearHistory)
		apiGroup.DELETE("/search/history/:index", searchHandler.RemoveHistory)

		apiGroup.GET("/cart", cartHandler.GetCart)
		apiGroup.POST("/cart/items", cartHandler.AddItem)
		apiGroup.PATCH("/cart/items/:id", cartHandler.UpdateItem)
		apiGroup.POST("/cart/items/:id/increase", cartHandler.IncreaseItem)
		apiGroup.POST("/cart/items/:id/decrease", cartHandler.DecreaseItem)
		apiGroup.POST("/cart/items/:id/toggle", cartHandler.ToggleItem)
		apiGroup.DELETE("/cart/items/:id", cartHandler.RemoveItem)
		apiGroup.DELETE("/cart", cartHandler.ClearCart)

		apiGroup.POST("/session/login", sessionHandler.Login)
		apiGroup.POST("/session/logout", sessionHandler.Logout)
	}

	return &Server{
		engine: engine,
		server: &http.Server{
			Addr:    fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Handler: engine,
		},
	}
}

// Engine exposes the gin engine, mainly for handler tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		log.Infof("HTTP server listening on %s", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down HTTP server: %w", err)
		}
		return <-errCh
	case err := <-errCh:
		return err
	}
}
