package http

import (
	"encoding/json"
	"net/http"

	"github.com/DRSN-tech/dropflow/internal/domain"
	"github.com/DRSN-tech/dropflow/internal/usecase"
	"github.com/DRSN-tech/dropflow/pkg/e"
	"github.com/DRSN-tech/dropflow/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type AdminHandler struct {
	productUsecase  usecase.ProductUC
	orderUsecase    usecase.OrderUC
	supplierUsecase usecase.SupplierUC
	copywriter      usecase.CopywriterInfra
	logger          logger.Logger
}

func NewAdminHandler(productUsecase usecase.ProductUC, orderUsecase usecase.OrderUC,
	supplierUsecase usecase.SupplierUC, copywriter usecase.CopywriterInfra, logger logger.Logger) *AdminHandler {
	return &AdminHandler{
		productUsecase:  productUsecase,
		orderUsecase:    orderUsecase,
		supplierUsecase: supplierUsecase,
		copywriter:      copywriter,
		logger:          logger,
	}
}

type addProductRequest struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	Price          string `json:"price"`
	CompareAtPrice string `json:"compareAtPrice"`
	CostPrice      string `json:"costPrice"`
	Supplier       string `json:"supplier"`
	Image          string `json:"image"`
	Category       string `json:"category"`
	Inventory      int    `json:"inventory"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

type copywriterRequest struct {
	ProductName string `json:"productName"`
	Niche       string `json:"niche"`
}

// dashboard отдаёт сводку магазина: выручку, количество заказов и товаров,
// средний чек и прибыль.
func (a *AdminHandler) dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := a.orderUsecase.DashboardStats(r.Context())
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"revenue":       formatCents(stats.Revenue),
		"orders":        stats.Orders,
		"products":      stats.Products,
		"avgOrderValue": formatCents(stats.AvgOrderValue),
		"profit":        formatCents(stats.Profit),
	})
}

// addProduct создаёт товар из формы админки. Обязательные поля — название,
// цена и закупочная цена; прочие заполняются при наличии.
func (a *AdminHandler) addProduct(w http.ResponseWriter, r *http.Request) {
	var req addProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}
	if req.Title == "" || req.Price == "" || req.CostPrice == "" {
		WriteError(w, e.ErrMissingFields)
		return
	}

	price, err := parsePriceToCents(req.Price)
	if err != nil {
		a.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	costPrice, err := parsePriceToCents(req.CostPrice)
	if err != nil {
		a.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	var compareAtPrice *int64
	if req.CompareAtPrice != "" {
		parsed, err := parsePriceToCents(req.CompareAtPrice)
		if err != nil {
			a.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
			WriteError(w, err)
			return
		}
		compareAtPrice = &parsed
	}

	product, err := a.productUsecase.Add(r.Context(), usecase.NewAddProductReq(
		req.Title, req.Description, price, compareAtPrice, costPrice,
		req.Supplier, req.Image, req.Category, req.Inventory,
	))
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toProductResponse(product))
}

// deleteProduct удаляет товар. Несуществующий ID тоже отвечает 204:
// удаление идемпотентно.
func (a *AdminHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := a.productUsecase.Delete(r.Context(), id); err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *AdminHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := a.orderUsecase.ListAll(r.Context())
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"orders": toArrOrderResponse(orders),
	})
}

// updateOrderStatus перезаписывает статус заказа. Проверяется только
// принадлежность значения закрытому набору, порядок переходов — нет.
func (a *AdminHandler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	status := domain.OrderStatus(req.Status)
	if !domain.ValidOrderStatus(status) {
		WriteError(w, e.ErrInvalidOrderStatus)
		return
	}

	if err := a.orderUsecase.UpdateStatus(r.Context(), id, status); err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"id":     id,
		"status": req.Status,
	})
}

func (a *AdminHandler) listSuppliers(w http.ResponseWriter, r *http.Request) {
	suppliers, err := a.supplierUsecase.ListAll(r.Context())
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	type supplierResponse struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		APIStatus string `json:"apiStatus"`
		AutoSync  bool   `json:"autoSync"`
	}

	result := make([]supplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		result = append(result, supplierResponse{
			ID:        s.ID,
			Name:      s.Name,
			APIStatus: string(s.APIStatus),
			AutoSync:  s.AutoSync,
		})
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"suppliers": result,
	})
}

// syncSuppliers запускает имитацию синхронизации остатков.
func (a *AdminHandler) syncSuppliers(w http.ResponseWriter, r *http.Request) {
	if err := a.supplierUsecase.SyncInventory(r.Context()); err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"synced": true,
	})
}

// suggestProductCopy запрашивает черновик карточки у копирайтера.
// Отсутствие подсказки — нормальный ответ, ручной ввод не блокируется.
func (a *AdminHandler) suggestProductCopy(w http.ResponseWriter, r *http.Request) {
	var req copywriterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}
	if req.ProductName == "" {
		WriteError(w, e.ErrMissingFields)
		return
	}

	suggestion := a.copywriter.SuggestProductCopy(r.Context(), req.ProductName, req.Niche)
	if suggestion == nil {
		WriteSuccess(w, http.StatusOK, map[string]interface{}{
			"suggestion": nil,
		})
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"suggestion": map[string]interface{}{
			"title":       suggestion.Title,
			"description": suggestion.Description,
			"price":       formatCents(suggestion.Price),
			"costPrice":   formatCents(suggestion.CostPrice),
			"category":    suggestion.Category,
		},
	})
}

func (a *AdminHandler) analyzeCompetitors(w http.ResponseWriter, r *http.Request) {
	var req copywriterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}
	if req.Niche == "" {
		WriteError(w, e.ErrMissingFields)
		return
	}

	analysis := a.copywriter.AnalyzeCompetitors(r.Context(), req.Niche)

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"analysis": analysis,
	})
}

// businessGuide отдаёт статические разделы бизнес-плана оператора.
func (a *AdminHandler) businessGuide(w http.ResponseWriter, r *http.Request) {
	type guideSection struct {
		Title string   `json:"title"`
		Items []string `json:"items"`
	}
	type guideTab struct {
		ID       string         `json:"id"`
		Title    string         `json:"title"`
		Sections []guideSection `json:"sections"`
	}

	guide := []guideTab{
		{
			ID:    "business",
			Title: "Business Plan",
			Sections: []guideSection{
				{
					Title: "Niche Strategy",
					Items: []string{
						"Recommended niche: Eco-Modern Office — high margin potential targeting remote workers.",
						"Target margin: 60-70%.",
						"Low ticket items ($10-30): 3x markup; high ticket items ($50+): 2x markup.",
					},
				},
				{
					Title: "Competitor Analysis",
					Items: []string{
						"Study pricing, marketing angles and potential gaps before committing to a niche.",
						"Use the copywriter analysis tool for a quick 3-point breakdown.",
					},
				},
			},
		},
		{
			ID:    "tech",
			Title: "Technical Blueprint",
			Sections: []guideSection{
				{
					Title: "System Architecture",
					Items: []string{
						"Storefront and admin console over a shared catalog/cart/order store.",
						"Supplier inventory sync is simulated until a real integration is connected.",
					},
				},
				{
					Title: "API Endpoints",
					Items: []string{
						"Catalog, cart and checkout under /api/v1; admin operations under /api/v1/admin.",
					},
				},
			},
		},
		{
			ID:    "deploy",
			Title: "Deployment Guide",
			Sections: []guideSection{
				{
					Title: "Deployment Steps",
					Items: []string{
						"Configure HTTP_PORT and REDIS_ADDR; without Redis the store runs in-memory.",
						"Provide GEMINI_API_KEY to enable AI product copy.",
						"Optionally point KAFKA_BROKERS at a cluster to publish order events.",
					},
				},
			},
		},
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"tabs": guide,
	})
}
