package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alseiny20/bkbweb-go/internal/catalog"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(srv.URL+"/api", srv.Client())
	require.NoError(t, err)
	return c
}

func TestListProducts(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/products", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Correlation-Id"))

		_ = json.NewEncoder(w).Encode([]catalog.Product{
			{ID: 1, Name: "iPhone 15", Price: 100000, Stock: 3, CategoryID: 1},
		})
	}))

	products, err := c.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "iPhone 15", products[0].Name)
}

func TestListProductsByCategory(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/products/category/2", r.URL.Path)

		_ = json.NewEncoder(w).Encode([]catalog.Product{
			{ID: 4, Name: "Casque audio", Price: 50000, Stock: 8, CategoryID: 2},
			{ID: 9, Name: "Ordinateur portable", Price: 4500000, Stock: 2, CategoryID: 2},
		})
	}))

	products, err := c.ListProductsByCategory(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, 2, products[0].CategoryID)
	assert.Equal(t, "Ordinateur portable", products[1].Name)
}

func TestGetProduct(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products/7", r.URL.Path)
		_ = json.NewEncoder(w).Encode(catalog.Product{ID: 7, Name: "Casque", Category: "Électronique"})
	}))

	product, err := c.GetProduct(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Électronique", product.Category)
}

func TestStatusError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"produit introuvable"}`))
	}))

	_, err := c.GetProduct(context.Background(), 999)
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.Code)
	assert.Equal(t, "produit introuvable", statusErr.Message)
}

func TestTransportError(t *testing.T) {
	c, err := NewClient("http://127.0.0.1:1/api", &http.Client{})
	require.NoError(t, err)

	_, err = c.ListCategories(context.Background())
	require.Error(t, err)
	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr), "transport failure is not a status error")
}

func TestCreateOrder(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/api/orders", r.URL.Path)

			var req CreateOrderRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "Mamadou Diallo", req.CustomerName)
			assert.Equal(t, 250000.0, req.TotalAmount)

			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"order":   Order{OrderNumber: "BKB-0042", TotalAmount: req.TotalAmount},
			})
		}))

		order, err := c.CreateOrder(context.Background(), CreateOrderRequest{
			CustomerName:    "Mamadou Diallo",
			CustomerPhone:   "+224612345678",
			CustomerAddress: "Conakry, Kaloum",
			Items:           []OrderItem{{ProductID: 1, Quantity: 2, Price: 100000}},
			TotalAmount:     250000,
		})
		require.NoError(t, err)
		assert.Equal(t, "BKB-0042", order.OrderNumber)
	})

	t.Run("backend reports failure", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"success": false})
		}))

		_, err := c.CreateOrder(context.Background(), CreateOrderRequest{})
		require.Error(t, err)
	})
}

func TestUpdateOrderStatus(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/orders/3/status", r.URL.Path)

		var body struct {
			Status OrderStatus `json:"status"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_ = json.NewEncoder(w).Encode(Order{ID: 3, Status: body.Status})
	}))

	order, err := c.UpdateOrderStatus(context.Background(), 3, StatusShipped)
	require.NoError(t, err)
	assert.Equal(t, StatusShipped, order.Status)
}

func TestDeleteOrder(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/orders/3", r.URL.Path)
		_, _ = w.Write([]byte(`{"success":true}`))
	}))

	require.NoError(t, c.DeleteOrder(context.Background(), 3))
}

func TestUploadImage(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/upload", r.URL.Path)

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()

		assert.Equal(t, "photo.jpg", header.Filename)
		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "fake image bytes", string(content))

		_ = json.NewEncoder(w).Encode(map[string]string{"imageUrl": "/uploads/photo.jpg"})
	}))

	url, err := c.UploadImage(context.Background(), "photo.jpg", strings.NewReader("fake image bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/photo.jpg", url)
}

func TestVerifyAdminPassword(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/api/admin/verify-password", r.URL.Path)
			_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "token": "tok"})
		}))

		token, err := c.VerifyAdminPassword(context.Background(), "secret")
		require.NoError(t, err)
		assert.Equal(t, "tok", token)
	})

	t.Run("rejected", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "mot de passe incorrect"})
		}))

		_, err := c.VerifyAdminPassword(context.Background(), "wrong")
		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusUnauthorized, statusErr.Code)
	})
}
