package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/DRSN-tech/dropflow/internal/domain"
	"github.com/DRSN-tech/dropflow/pkg/e"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrMissingFields):
		return http.StatusBadRequest, e.ErrMissingFields.Error()
	case errors.Is(err, e.ErrInvalidPrice):
		return http.StatusBadRequest, e.ErrInvalidPrice.Error()
	case errors.Is(err, e.ErrPricePrecision):
		return http.StatusBadRequest, e.ErrPricePrecision.Error()
	case errors.Is(err, e.ErrInvalidQuantity):
		return http.StatusBadRequest, e.ErrInvalidQuantity.Error()
	case errors.Is(err, e.ErrInvalidOrderStatus):
		return http.StatusBadRequest, e.ErrInvalidOrderStatus.Error()
	case errors.Is(err, e.ErrUnsupportedLocale):
		return http.StatusBadRequest, e.ErrUnsupportedLocale.Error()
	case errors.Is(err, e.ErrEmptyCart):
		return http.StatusBadRequest, e.ErrEmptyCart.Error()
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	case errors.Is(err, e.ErrOrderNotFound):
		return http.StatusNotFound, e.ErrOrderNotFound.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// parsePriceToCents converts a string like "49.99" or "50" to int64 cents.
// Returns error if:
// - invalid format
// - more than 2 decimal places
// - negative value
// - exceeds reasonable limit (1M USD)
func parsePriceToCents(s string) (int64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, e.ErrInvalidPrice
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, e.ErrInvalidPrice
	}

	if d.LessThan(decimal.Zero) {
		return 0, e.ErrInvalidPrice
	}

	maxPrice := decimal.NewFromInt(1_000_000)
	if d.GreaterThan(maxPrice) {
		return 0, e.ErrInvalidPrice
	}

	if d.Exponent() < -2 {
		return 0, e.ErrPricePrecision
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}

// formatCents форматирует цену в центах как десятичную строку с двумя знаками.
func formatCents(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}

func formatCentsPtr(cents *int64) *string {
	if cents == nil {
		return nil
	}

	s := formatCents(*cents)
	return &s
}

// RESPONSE MODELS

type ProductResponse struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Price          string  `json:"price"`
	CompareAtPrice *string `json:"compareAtPrice,omitempty"`
	CostPrice      string  `json:"costPrice"`
	Supplier       string  `json:"supplier"`
	Image          string  `json:"image"`
	Category       string  `json:"category"`
	Inventory      int     `json:"inventory"`
	Rating         float64 `json:"rating"`
	Reviews        int     `json:"reviews"`
}

type CartItemResponse struct {
	ProductResponse
	Quantity int    `json:"quantity"`
	LineSum  string `json:"lineSum"`
}

type OrderResponse struct {
	ID             string             `json:"id"`
	CustomerName   string             `json:"customerName"`
	CustomerEmail  string             `json:"customerEmail"`
	Items          []CartItemResponse `json:"items"`
	Total          string             `json:"total"`
	Status         string             `json:"status"`
	Date           string             `json:"date"`
	TrackingNumber string             `json:"trackingNumber,omitempty"`
}

func toProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:             p.ID,
		Title:          p.Title,
		Description:    p.Description,
		Price:          formatCents(p.Price),
		CompareAtPrice: formatCentsPtr(p.CompareAtPrice),
		CostPrice:      formatCents(p.CostPrice),
		Supplier:       p.Supplier,
		Image:          p.Image,
		Category:       p.Category,
		Inventory:      p.Inventory,
		Rating:         p.Rating,
		Reviews:        p.Reviews,
	}
}

func toArrProductResponse(products []domain.Product) []ProductResponse {
	result := make([]ProductResponse, 0, len(products))
	for i := range products {
		result = append(result, toProductResponse(&products[i]))
	}

	return result
}

func toCartItemResponse(item *domain.CartItem) CartItemResponse {
	return CartItemResponse{
		ProductResponse: toProductResponse(&item.Product),
		Quantity:        item.Quantity,
		LineSum:         formatCents(item.Price * int64(item.Quantity)),
	}
}

func toArrCartItemResponse(items []domain.CartItem) []CartItemResponse {
	result := make([]CartItemResponse, 0, len(items))
	for i := range items {
		result = append(result, toCartItemResponse(&items[i]))
	}

	return result
}

func toOrderResponse(o *domain.Order) OrderResponse {
	return OrderResponse{
		ID:             o.ID,
		CustomerName:   o.CustomerName,
		CustomerEmail:  o.CustomerEmail,
		Items:          toArrCartItemResponse(o.Items),
		Total:          formatCents(o.Total),
		Status:         string(o.Status),
		Date:           o.Date.Format(time.RFC3339),
		TrackingNumber: o.TrackingNumber,
	}
}

func toArrOrderResponse(orders []domain.Order) []OrderResponse {
	result := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		result = append(result, toOrderResponse(&orders[i]))
	}

	return result
}
