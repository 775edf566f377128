package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"freshmart/storefront/internal/cart"
	"freshmart/storefront/internal/catalog"
	"freshmart/storefront/internal/config"
	"freshmart/storefront/internal/domain"
	"freshmart/storefront/internal/notify"
	"freshmart/storefront/internal/search"
	"freshmart/storefront/internal/session"
	"freshmart/storefront/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLoader struct {
	doc *domain.FeedDocument
}

func (s *stubLoader) Load(_ context.Context) *domain.FeedDocument {
	return s.doc
}

func testDocument() *domain.FeedDocument {
	stock := 3
	return &domain.FeedDocument{
		List: []domain.FeedCategory{
			{
				ID:       1,
				Name:     "蔬菜",
				Children: []string{"叶菜类"},
				Goods: []domain.FeedProduct{
					{ID: 10, Name: "新鲜西红柿", Price: 12.8, Picture: "", Stock: &stock},
				},
			},
		},
		Products: []domain.FeedProduct{
			{ID: 20, Name: "进口香蕉", Price: 8.5, Picture: "/img/banana.jpg"},
		},
	}
}

func newTestServer(t *testing.T) (*Server, *session.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	index := catalog.NewIndex(&stubLoader{doc: testDocument()})
	require.NoError(t, index.EnsureLoaded(context.Background()))

	st := store.NewMemoryStore()
	sessions := session.NewManager()
	ledger := cart.NewLedger(st, sessions, notify.NewLogNotifier(), 0, 0)
	engine := search.NewEngine(index, st, config.SearchConfig{
		MaxHistory:     10,
		MaxSuggestions: 5,
		Vocabulary:     []string{"手机", "食品"},
	})

	server := NewServer(config.ServerConfig{Host: "localhost", Port: 0}, index, ledger, engine, sessions)
	return server, sessions
}

func doRequest(server *Server, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Engine().ServeHTTP(rec, req)
	return rec
}

func TestCatalogEndpoints(t *testing.T) {
	server, _ := newTestServer(t)

	t.Run("list categories", func(t *testing.T) {
		rec := doRequest(server, http.MethodGet, "/api/catalog/categories", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Categories []domain.Category `json:"categories"`
			Loaded     bool              `json:"loaded"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Categories, 1)
		assert.True(t, resp.Loaded)
	})

	t.Run("get product coerces string id", func(t *testing.T) {
		rec := doRequest(server, http.MethodGet, "/api/catalog/products/10", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var product domain.Product
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &product))
		assert.Equal(t, "新鲜西红柿", product.Name)
		assert.Equal(t, domain.PlaceholderImage, product.Picture)
	})

	t.Run("unknown product is 404", func(t *testing.T) {
		rec := doRequest(server, http.MethodGet, "/api/catalog/products/999", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("non-numeric product id is 400", func(t *testing.T) {
		rec := doRequest(server, http.MethodGet, "/api/catalog/products/abc", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("new products", func(t *testing.T) {
		rec := doRequest(server, http.MethodGet, "/api/catalog/new", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Products []domain.Product `json:"products"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Products, 1)
		assert.Equal(t, 20, resp.Products[0].ID)
	})
}

func TestCartEndpoints(t *testing.T) {
	t.Run("add without login is 401", func(t *testing.T) {
		server, _ := newTestServer(t)

		rec := doRequest(server, http.MethodPost, "/api/cart/items",
			AddItemRequest{ProductID: 10, Quantity: 1})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("login then add", func(t *testing.T) {
		server, _ := newTestServer(t)

		rec := doRequest(server, http.MethodPost, "/api/session/login", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doRequest(server, http.MethodPost, "/api/cart/items",
			AddItemRequest{ProductID: 10, Quantity: 2})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doRequest(server, http.MethodGet, "/api/cart", nil)
		var resp struct {
			TotalItems int  `json:"totalItems"`
			IsEmpty    bool `json:"isEmpty"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.TotalItems)
		assert.False(t, resp.IsEmpty)
	})

	t.Run("stock violation is 409 with bound", func(t *testing.T) {
		server, sessions := newTestServer(t)
		sessions.SetLoggedIn(true)

		rec := doRequest(server, http.MethodPost, "/api/cart/items",
			AddItemRequest{ProductID: 10, Quantity: 4})
		require.Equal(t, http.StatusConflict, rec.Code)

		var resp struct {
			Bound string `json:"bound"`
			Limit int    `json:"limit"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "stock", resp.Bound)
		assert.Equal(t, 3, resp.Limit)
	})

	t.Run("unknown cart line is 404", func(t *testing.T) {
		server, sessions := newTestServer(t)
		sessions.SetLoggedIn(true)

		rec := doRequest(server, http.MethodPost, "/api/cart/items/999/increase", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestSearchEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	t.Run("empty keyword returns everything", func(t *testing.T) {
		rec := doRequest(server, http.MethodGet, "/api/search", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Results []domain.Product `json:"results"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp.Results, 2)
	})

	t.Run("keyword search records history", func(t *testing.T) {
		rec := doRequest(server, http.MethodGet, "/api/search?keyword=香蕉", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Results []domain.Product `json:"results"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Results, 1)
		assert.Equal(t, 20, resp.Results[0].ID)

		rec = doRequest(server, http.MethodGet, "/api/search/history", nil)
		var hist struct {
			History []string `json:"history"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &hist))
		assert.Equal(t, []string{"香蕉"}, hist.History)
	})
}
