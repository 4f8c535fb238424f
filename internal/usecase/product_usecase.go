package usecase

import (
	"context"

	"github.com/DRSN-tech/dropflow/internal/cfg"
	"github.com/DRSN-tech/dropflow/internal/domain"
	"github.com/DRSN-tech/dropflow/pkg/e"
	"github.com/DRSN-tech/dropflow/pkg/logger"
	"github.com/google/uuid"
)

// ProductUseCase реализует операции каталога товаров.
type ProductUseCase struct {
	store   StoreRepository
	latency *cfg.LatencyCfg
	logger  logger.Logger
}

func NewProductUC(store StoreRepository, latency *cfg.LatencyCfg, logger logger.Logger) *ProductUseCase {
	return &ProductUseCase{
		store:   store,
		latency: latency,
		logger:  logger,
	}
}

// ListAll возвращает полный каталог товаров с имитацией задержки бэкенда.
func (p *ProductUseCase) ListAll(ctx context.Context) ([]domain.Product, error) {
	const op = "ProductUseCase.ListAll"

	if err := simulateLatency(ctx, p.latency.ProductList, p.latency.JitterFactor); err != nil {
		return nil, e.Wrap(op, err)
	}

	products, err := p.store.ReadProducts(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return products, nil
}

// GetByID ищет товар линейным проходом по коллекции.
// Отсутствующий товар — это nil без ошибки.
func (p *ProductUseCase) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	const op = "ProductUseCase.GetByID"

	products, err := p.store.ReadProducts(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}

	return nil, nil
}

// Add добавляет товар в начало коллекции: каталог хранится от новых к старым.
func (p *ProductUseCase) Add(ctx context.Context, req *AddProductReq) (*domain.Product, error) {
	const op = "ProductUseCase.Add"

	if err := p.validateProduct(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	products, err := p.store.ReadProducts(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	product := domain.Product{
		ID:             newProductID(),
		Title:          req.Title,
		Description:    req.Description,
		Price:          req.Price,
		CompareAtPrice: req.CompareAtPrice,
		CostPrice:      req.CostPrice,
		Supplier:       req.Supplier,
		Image:          req.Image,
		Category:       req.Category,
		Inventory:      req.Inventory,
	}

	products = append([]domain.Product{product}, products...)
	if err := p.store.WriteProducts(ctx, products); err != nil {
		return nil, e.Wrap(op, err)
	}

	p.logger.Infof("product added: id=%s title=%q", product.ID, product.Title)

	return &product, nil
}

// Delete удаляет товар по ID. Неизвестный ID — молчаливый no-op,
// ссылки на товар в существующих заказах не затрагиваются.
func (p *ProductUseCase) Delete(ctx context.Context, id string) error {
	const op = "ProductUseCase.Delete"

	products, err := p.store.ReadProducts(ctx)
	if err != nil {
		return e.Wrap(op, err)
	}

	filtered := make([]domain.Product, 0, len(products))
	for _, product := range products {
		if product.ID != id {
			filtered = append(filtered, product)
		}
	}

	if err := p.store.WriteProducts(ctx, filtered); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

func (p *ProductUseCase) validateProduct(req *AddProductReq) error {
	if req.Title == "" {
		return e.ErrMissingFields
	}
	if req.Price < 0 || req.CostPrice < 0 {
		return e.ErrInvalidPrice
	}
	if req.Inventory < 0 {
		return e.ErrStatusBadRequest
	}

	return nil
}

// newProductID генерирует идентификатор товара.
func newProductID() string {
	return "prod_" + shortToken(9)
}

// shortToken возвращает короткий токен из UUID без дефисов.
func shortToken(n int) string {
	token := uuid.NewString()
	token = token[:8] + token[9:13] + token[14:18]
	if n > len(token) {
		n = len(token)
	}

	return token[:n]
}
