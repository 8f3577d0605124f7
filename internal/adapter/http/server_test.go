package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gdevgproject/perfume-shop/internal/adapter/logger"
	"github.com/gdevgproject/perfume-shop/internal/adapter/memory"
	"github.com/gdevgproject/perfume-shop/internal/adapter/rabbitmq"
	"github.com/gdevgproject/perfume-shop/internal/app/catalog"
	"github.com/gdevgproject/perfume-shop/internal/app/customer"
	"github.com/gdevgproject/perfume-shop/internal/app/merchandising"
	"github.com/gdevgproject/perfume-shop/internal/app/order"
	"github.com/gdevgproject/perfume-shop/internal/app/tracking"
	"github.com/gdevgproject/perfume-shop/internal/domain"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	store := memory.NewStore()
	memory.Seed(store)
	log := logger.New("test", "error")

	orders := memory.NewOrderRepository(store)
	products := memory.NewProductRepository(store)

	return NewServer(
		order.NewService(orders, products, rabbitmq.NewNoopPublisher(log), log),
		tracking.NewService(orders),
		catalog.NewService(products, memory.NewBrandRepository(store), memory.NewCategoryRepository(store), log),
		customer.NewService(memory.NewUserRepository(store), memory.NewAddressRepository(store), memory.NewFavoriteRepository(store), memory.NewReviewRepository(store), log),
		merchandising.NewService(memory.NewDiscountRepository(store), memory.NewSlideRepository(store), log),
		log,
	)
}

func do(t *testing.T, srv *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	srv.Engine().ServeHTTP(rec, req)
	return rec
}

func TestOrderEndpoints(t *testing.T) {
	srv := newTestServer(t)

	t.Run("Create and track", func(t *testing.T) {
		rec := do(t, srv, http.MethodPost, "/api/v1/orders", map[string]interface{}{
			"user_id": "user-alice",
			"items": []map[string]interface{}{
				{"product_id": "perfume-bleu", "quantity": 2},
			},
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		var created domain.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		assert.Equal(t, domain.StatusPending, created.Status)
		assert.Equal(t, 290.0, created.TotalAmount)

		rec = do(t, srv, http.MethodPatch, "/api/v1/orders/"+created.ID+"/status", map[string]string{
			"status": "shipped",
			"actor":  "warehouse",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var updated domain.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
		assert.Equal(t, domain.StatusShipped, updated.Status)

		rec = do(t, srv, http.MethodGet, "/api/v1/orders/"+created.ID+"/history", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var history []domain.OrderHistory
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &history))
		require.Len(t, history, 2)
		assert.Equal(t, domain.StatusShipped, history[0].Status)
		assert.Equal(t, "warehouse", history[0].UpdatedBy)
	})

	t.Run("Unknown order is 404", func(t *testing.T) {
		rec := do(t, srv, http.MethodPatch, "/api/v1/orders/missing/status", map[string]string{"status": "shipped"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Bad status is 400", func(t *testing.T) {
		rec := do(t, srv, http.MethodPatch, "/api/v1/orders/order-seed-1/status", map[string]string{"status": "teleported"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("History of unknown order is empty, not 404", func(t *testing.T) {
		rec := do(t, srv, http.MethodGet, "/api/v1/orders/missing/history", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("Orders by user", func(t *testing.T) {
		rec := do(t, srv, http.MethodGet, "/api/v1/users/user-alice/orders", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var orders []domain.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
		assert.NotEmpty(t, orders)
	})
}

func TestEntityEndpoints(t *testing.T) {
	srv := newTestServer(t)

	t.Run("Product CRUD", func(t *testing.T) {
		rec := do(t, srv, http.MethodPost, "/api/v1/products", map[string]interface{}{
			"name":  "Aventus",
			"price": 350,
			"stock": 5,
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		var created domain.Product
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

		rec = do(t, srv, http.MethodPut, "/api/v1/products/"+created.ID, map[string]interface{}{
			"price": 320,
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var updated domain.Product
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
		assert.Equal(t, 320.0, updated.Price)
		assert.Equal(t, "Aventus", updated.Name)

		rec = do(t, srv, http.MethodDelete, "/api/v1/products/"+created.ID, nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = do(t, srv, http.MethodGet, "/api/v1/products/"+created.ID, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Invalid body is 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/brands", bytes.NewBufferString("{not json"))
		rec := httptest.NewRecorder()
		srv.Engine().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Nested reads", func(t *testing.T) {
		for _, path := range []string{
			"/api/v1/products/perfume-bleu/gallery",
			"/api/v1/products/perfume-sauvage/reviews",
			"/api/v1/users/user-alice/addresses",
			"/api/v1/users/user-alice/favorites",
			"/api/v1/slides/slide-home/gallery",
		} {
			rec := do(t, srv, http.MethodGet, path, nil)
			require.Equal(t, http.StatusOK, rec.Code, path)
			assert.NotEqual(t, "[]", rec.Body.String(), path)
		}
	})

	t.Run("Discount products", func(t *testing.T) {
		rec := do(t, srv, http.MethodGet, "/api/v1/discounts/discount-summer/products", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var items []domain.DiscountProduct
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
		require.Len(t, items, 1)
		assert.Equal(t, "perfume-bleu", items[0].ProductID)
	})
}
