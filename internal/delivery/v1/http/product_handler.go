package http

import (
	"net/http"

	"github.com/DRSN-tech/dropflow/internal/usecase"
	"github.com/DRSN-tech/dropflow/pkg/e"
	"github.com/DRSN-tech/dropflow/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	productUsecase usecase.ProductUC
	logger         logger.Logger
}

func NewProductHandler(productUsecase usecase.ProductUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase, logger: logger}
}

// storeFront отдаёт главную витрины: первые товары каталога как рекомендуемые.
func (p *ProductHandler) storeFront(w http.ResponseWriter, r *http.Request) {
	const featuredCount = 3

	products, err := p.productUsecase.ListAll(r.Context())
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	featured := products
	if len(featured) > featuredCount {
		featured = featured[:featuredCount]
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"featured": toArrProductResponse(featured),
	})
}

// listProducts отдаёт полный каталог, опционально фильтруя по категории.
func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := p.productUsecase.ListAll(r.Context())
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	if category := r.URL.Query().Get("category"); category != "" {
		filtered := products[:0]
		for _, product := range products {
			if product.Category == category {
				filtered = append(filtered, product)
			}
		}
		products = filtered
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"products": toArrProductResponse(products),
	})
}

// getProduct отдаёт карточку товара по ID.
func (p *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := p.productUsecase.GetByID(r.Context(), id)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}
	if product == nil {
		WriteError(w, e.ErrProductNotFound)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(product))
}
