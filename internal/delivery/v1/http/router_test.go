package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DRSN-tech/dropflow/internal/cfg"
	delivery "github.com/DRSN-tech/dropflow/internal/delivery/v1/http"
	"github.com/DRSN-tech/dropflow/internal/repository/converter"
	"github.com/DRSN-tech/dropflow/internal/repository/memory"
	"github.com/DRSN-tech/dropflow/internal/repository/seed"
	"github.com/DRSN-tech/dropflow/internal/session"
	"github.com/DRSN-tech/dropflow/internal/usecase"
	"github.com/DRSN-tech/dropflow/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nopCopywriter имитирует отсутствие настроенного ключа API.
type nopCopywriter struct{}

func (nopCopywriter) SuggestProductCopy(ctx context.Context, productName, niche string) *usecase.CopySuggestion {
	return nil
}

func (nopCopywriter) AnalyzeCompetitors(ctx context.Context, niche string) string {
	return ""
}

// nopProducer принимает события и ничего не делает.
type nopProducer struct{}

func (nopProducer) PublishOrderEvent(ctx context.Context, req *usecase.PublishOrderEventReq) error {
	return nil
}

func newTestMux(t *testing.T) *chi.Mux {
	t.Helper()

	log := logger.NewNopLogger()
	store := memory.NewStoreRepo(converter.NewStoreConverter(), log)
	require.NoError(t, store.EnsureSeed(context.Background()))

	latency := &cfg.LatencyCfg{}
	prUC := usecase.NewProductUC(store, latency, log)
	orUC := usecase.NewOrderUC(store, nopProducer{}, latency, log)
	supUC := usecase.NewSupplierUC(seed.Suppliers(), latency, log)

	sess := session.NewSession(store, &cfg.PreferencesCfg{DefaultTheme: "light", DefaultLanguage: "en"}, log)
	require.NoError(t, sess.Hydrate(context.Background()))

	mux := chi.NewMux()
	delivery.NewRouter(mux, log).Init(prUC, orUC, supUC, sess, nopCopywriter{})

	return mux
}

func doJSON(t *testing.T, mux *chi.Mux, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		_ = json.Unmarshal(rec.Body.Bytes(), &decoded)
	}

	return rec, decoded
}

func TestRouter_Storefront(t *testing.T) {
	mux := newTestMux(t)

	rec, body := doJSON(t, mux, http.MethodGet, "/", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	featured, ok := body["featured"].([]any)
	require.True(t, ok)
	assert.Len(t, featured, 3)
}

func TestRouter_UnknownPathRedirectsToStorefront(t *testing.T) {
	mux := newTestMux(t)

	rec, _ := doJSON(t, mux, http.MethodGet, "/no/such/page", nil)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestRouter_ListProducts(t *testing.T) {
	mux := newTestMux(t)

	rec, body := doJSON(t, mux, http.MethodGet, "/api/v1/products", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	products := body["products"].([]any)
	require.Len(t, products, 4)

	first := products[0].(map[string]any)
	assert.Equal(t, "Minimalist Smart Watch", first["title"])
	assert.Equal(t, "49.99", first["price"])
	assert.Equal(t, "89.99", first["compareAtPrice"])
}

func TestRouter_ListProducts_FilterByCategory(t *testing.T) {
	mux := newTestMux(t)

	rec, body := doJSON(t, mux, http.MethodGet, "/api/v1/products?category=Electronics", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	products := body["products"].([]any)
	require.NotEmpty(t, products)
	for _, p := range products {
		assert.Equal(t, "Electronics", p.(map[string]any)["category"])
	}
}

func TestRouter_GetProduct_NotFound(t *testing.T) {
	mux := newTestMux(t)

	rec, _ := doJSON(t, mux, http.MethodGet, "/api/v1/products/zzz", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_CartFlow(t *testing.T) {
	mux := newTestMux(t)

	rec, body := doJSON(t, mux, http.MethodPost, "/api/v1/cart/items",
		map[string]any{"productId": "1", "quantity": 2})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "99.98", body["cartTotal"])
	assert.Equal(t, float64(2), body["cartCount"])

	// Повторное добавление сливается в одну строку
	rec, body = doJSON(t, mux, http.MethodPost, "/api/v1/cart/items",
		map[string]any{"productId": "1", "quantity": 1})
	require.Equal(t, http.StatusOK, rec.Code)
	items := body["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, float64(3), items[0].(map[string]any)["quantity"])

	rec, body = doJSON(t, mux, http.MethodPut, "/api/v1/cart/items/1",
		map[string]any{"quantity": 1})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "49.99", body["cartTotal"])

	rec, body = doJSON(t, mux, http.MethodDelete, "/api/v1/cart/items/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, body["items"])
	assert.Equal(t, "0.00", body["cartTotal"])
}

func TestRouter_AddCartItem_Invalid(t *testing.T) {
	mux := newTestMux(t)

	rec, _ := doJSON(t, mux, http.MethodPost, "/api/v1/cart/items",
		map[string]any{"productId": "1", "quantity": -2})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = doJSON(t, mux, http.MethodPost, "/api/v1/cart/items",
		map[string]any{"productId": "zzz", "quantity": 1})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = doJSON(t, mux, http.MethodPost, "/api/v1/cart/items",
		map[string]any{"quantity": 1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_UpdateQuantity_BelowOneRejected(t *testing.T) {
	mux := newTestMux(t)

	rec, _ := doJSON(t, mux, http.MethodPut, "/api/v1/cart/items/1",
		map[string]any{"quantity": 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_Checkout(t *testing.T) {
	mux := newTestMux(t)

	// Пустая корзина отклоняется
	rec, _ := doJSON(t, mux, http.MethodPost, "/api/v1/checkout",
		map[string]any{"customerName": "Jane", "customerEmail": "jane@example.com"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = doJSON(t, mux, http.MethodPost, "/api/v1/cart/items",
		map[string]any{"productId": "1", "quantity": 2})
	require.Equal(t, http.StatusOK, rec.Code)

	// Имя и почта обязательны
	rec, _ = doJSON(t, mux, http.MethodPost, "/api/v1/checkout",
		map[string]any{"customerName": "Jane"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, body := doJSON(t, mux, http.MethodPost, "/api/v1/checkout",
		map[string]any{"customerName": "Jane", "customerEmail": "jane@example.com"})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "99.98", body["total"])
	assert.Equal(t, "pending", body["status"])
	assert.NotEmpty(t, body["id"])

	// После оформления корзина пуста
	rec, body = doJSON(t, mux, http.MethodGet, "/api/v1/cart", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, body["items"])

	// Заказ виден в админке первым
	rec, body = doJSON(t, mux, http.MethodGet, "/api/v1/admin/orders", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	orders := body["orders"].([]any)
	require.Len(t, orders, 1)
	assert.Equal(t, "Jane", orders[0].(map[string]any)["customerName"])
}

func TestRouter_Preferences(t *testing.T) {
	mux := newTestMux(t)

	rec, body := doJSON(t, mux, http.MethodGet, "/api/v1/preferences", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "light", body["theme"])
	assert.Equal(t, "en", body["language"])
	assert.Equal(t, "ltr", body["direction"])

	rec, body = doJSON(t, mux, http.MethodPost, "/api/v1/preferences/theme/toggle", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "dark", body["theme"])

	rec, body = doJSON(t, mux, http.MethodPut, "/api/v1/preferences/language",
		map[string]any{"language": "he"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "he", body["language"])
	assert.Equal(t, "rtl", body["direction"])

	rec, _ = doJSON(t, mux, http.MethodPut, "/api/v1/preferences/language",
		map[string]any{"language": "xx"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, body = doJSON(t, mux, http.MethodPost, "/api/v1/preferences/admin/toggle", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["adminMode"])
}

func TestRouter_AdminAddProduct(t *testing.T) {
	mux := newTestMux(t)

	rec, body := doJSON(t, mux, http.MethodPost, "/api/v1/admin/products", map[string]any{
		"title":     "Bamboo Desk Organizer",
		"price":     "24.99",
		"costPrice": "7.00",
		"category":  "Office",
		"inventory": 80,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "24.99", body["price"])
	assert.Equal(t, "7.00", body["costPrice"])

	rec, respBody := doJSON(t, mux, http.MethodGet, "/api/v1/products", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	products := respBody["products"].([]any)
	require.Len(t, products, 5)
	assert.Equal(t, "Bamboo Desk Organizer", products[0].(map[string]any)["title"])
}

func TestRouter_AdminAddProduct_InvalidPrice(t *testing.T) {
	mux := newTestMux(t)

	tests := []struct {
		name  string
		price string
	}{
		{"not a number", "abc"},
		{"negative", "-5"},
		{"too many decimals", "9.999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, _ := doJSON(t, mux, http.MethodPost, "/api/v1/admin/products", map[string]any{
				"title":     "X",
				"price":     tt.price,
				"costPrice": "1.00",
			})
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestRouter_AdminDeleteProduct_Idempotent(t *testing.T) {
	mux := newTestMux(t)

	rec, _ := doJSON(t, mux, http.MethodDelete, "/api/v1/admin/products/2", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec, _ = doJSON(t, mux, http.MethodDelete, "/api/v1/admin/products/2", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRouter_AdminUpdateOrderStatus_InvalidValue(t *testing.T) {
	mux := newTestMux(t)

	rec, _ := doJSON(t, mux, http.MethodPut, "/api/v1/admin/orders/ord_x/status",
		map[string]any{"status": "teleported"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_AdminDashboard(t *testing.T) {
	mux := newTestMux(t)

	rec, _ := doJSON(t, mux, http.MethodPost, "/api/v1/cart/items",
		map[string]any{"productId": "1", "quantity": 1})
	require.Equal(t, http.StatusOK, rec.Code)
	rec, _ = doJSON(t, mux, http.MethodPost, "/api/v1/checkout",
		map[string]any{"customerName": "Jane", "customerEmail": "jane@example.com"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, body := doJSON(t, mux, http.MethodGet, "/api/v1/admin/dashboard", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "49.99", body["revenue"])
	assert.Equal(t, float64(1), body["orders"])
	assert.Equal(t, float64(4), body["products"])
	// (49.99 - 15.00)
	assert.Equal(t, "34.99", body["profit"])
}

func TestRouter_AdminSuppliers(t *testing.T) {
	mux := newTestMux(t)

	rec, body := doJSON(t, mux, http.MethodGet, "/api/v1/admin/suppliers", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	suppliers := body["suppliers"].([]any)
	require.Len(t, suppliers, 3)

	rec, body = doJSON(t, mux, http.MethodPost, "/api/v1/admin/suppliers/sync", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["synced"])
}

func TestRouter_CopywriterSuggest_Disabled(t *testing.T) {
	mux := newTestMux(t)

	rec, body := doJSON(t, mux, http.MethodPost, "/api/v1/admin/copywriter/suggest",
		map[string]any{"productName": "LED Strip", "niche": "home decor"})

	require.Equal(t, http.StatusOK, rec.Code)
	suggestion, present := body["suggestion"]
	assert.True(t, present)
	assert.Nil(t, suggestion)
}

func TestRouter_BusinessGuide(t *testing.T) {
	mux := newTestMux(t)

	rec, body := doJSON(t, mux, http.MethodGet, "/api/v1/admin/guide", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	tabs := body["tabs"].([]any)
	require.Len(t, tabs, 3)
	assert.Equal(t, "business", tabs[0].(map[string]any)["id"])
}
