package http

import (
	"encoding/json"
	"net/http"

	"github.com/DRSN-tech/dropflow/internal/session"
	"github.com/DRSN-tech/dropflow/internal/usecase"
	"github.com/DRSN-tech/dropflow/pkg/e"
	"github.com/DRSN-tech/dropflow/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	session        *session.Session
	productUsecase usecase.ProductUC
	orderUsecase   usecase.OrderUC
	logger         logger.Logger
}

func NewCartHandler(sess *session.Session, productUsecase usecase.ProductUC,
	orderUsecase usecase.OrderUC, logger logger.Logger) *CartHandler {
	return &CartHandler{
		session:        sess,
		productUsecase: productUsecase,
		orderUsecase:   orderUsecase,
		logger:         logger,
	}
}

type addItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type checkoutRequest struct {
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
}

// getCart отдаёт текущие строки корзины и производные значения.
func (c *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	c.writeCart(w, http.StatusOK)
}

// addItem кладёт товар в корзину по ID; существующая строка увеличивает количество.
func (c *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}
	if req.ProductID == "" {
		WriteError(w, e.ErrMissingFields)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Quantity < 1 {
		WriteError(w, e.ErrInvalidQuantity)
		return
	}

	product, err := c.productUsecase.GetByID(r.Context(), req.ProductID)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}
	if product == nil {
		WriteError(w, e.ErrProductNotFound)
		return
	}

	if err := c.session.AddToCart(r.Context(), *product, req.Quantity); err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	c.writeCart(w, http.StatusOK)
}

// updateItemQuantity перезаписывает количество строки; значение меньше 1
// отклоняется, удаление строки — отдельная операция.
func (c *CartHandler) updateItemQuantity(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	var req updateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}
	if req.Quantity < 1 {
		WriteError(w, e.ErrInvalidQuantity)
		return
	}

	if err := c.session.UpdateQuantity(r.Context(), productID, req.Quantity); err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	c.writeCart(w, http.StatusOK)
}

func (c *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	if err := c.session.RemoveFromCart(r.Context(), productID); err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	c.writeCart(w, http.StatusOK)
}

func (c *CartHandler) clearCart(w http.ResponseWriter, r *http.Request) {
	if err := c.session.ClearCart(r.Context()); err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	c.writeCart(w, http.StatusOK)
}

// checkout оформляет заказ из снимка корзины и опустошает её.
// Обязательность имени и почты проверяется здесь, сервис заказов не валидирует.
func (c *CartHandler) checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}
	if req.CustomerName == "" || req.CustomerEmail == "" {
		WriteError(w, e.ErrMissingFields)
		return
	}

	items := c.session.Cart()
	if len(items) == 0 {
		WriteError(w, e.ErrEmptyCart)
		return
	}

	order, err := c.orderUsecase.Create(r.Context(), usecase.NewCreateOrderReq(
		req.CustomerName,
		req.CustomerEmail,
		items,
		c.session.CartTotal(),
	))
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	if err := c.session.ClearCart(r.Context()); err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toOrderResponse(order))
}

func (c *CartHandler) writeCart(w http.ResponseWriter, status int) {
	WriteSuccess(w, status, map[string]interface{}{
		"items":     toArrCartItemResponse(c.session.Cart()),
		"cartTotal": formatCents(c.session.CartTotal()),
		"cartCount": c.session.CartCount(),
	})
}
