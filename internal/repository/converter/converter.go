package converter

import (
	"time"

	"github.com/DRSN-tech/dropflow/internal/domain"
)

// StoreConverter преобразует доменные записи в модели хранилища и обратно.
type StoreConverter struct{}

func NewStoreConverter() *StoreConverter {
	return &StoreConverter{}
}

func (c *StoreConverter) ToProductModel(entity *domain.Product) ProductStoreModel {
	return ProductStoreModel{
		ID:             entity.ID,
		Title:          entity.Title,
		Description:    entity.Description,
		Price:          entity.Price,
		CompareAtPrice: entity.CompareAtPrice,
		CostPrice:      entity.CostPrice,
		Supplier:       entity.Supplier,
		Image:          entity.Image,
		Category:       entity.Category,
		Inventory:      entity.Inventory,
		Rating:         entity.Rating,
		Reviews:        entity.Reviews,
	}
}

func (c *StoreConverter) ToProductEntity(model *ProductStoreModel) domain.Product {
	return domain.Product{
		ID:             model.ID,
		Title:          model.Title,
		Description:    model.Description,
		Price:          model.Price,
		CompareAtPrice: model.CompareAtPrice,
		CostPrice:      model.CostPrice,
		Supplier:       model.Supplier,
		Image:          model.Image,
		Category:       model.Category,
		Inventory:      model.Inventory,
		Rating:         model.Rating,
		Reviews:        model.Reviews,
	}
}

func (c *StoreConverter) ToArrProductModel(entities []domain.Product) []ProductStoreModel {
	models := make([]ProductStoreModel, 0, len(entities))
	for i := range entities {
		models = append(models, c.ToProductModel(&entities[i]))
	}

	return models
}

func (c *StoreConverter) ToArrProductEntity(models []ProductStoreModel) []domain.Product {
	entities := make([]domain.Product, 0, len(models))
	for i := range models {
		entities = append(entities, c.ToProductEntity(&models[i]))
	}

	return entities
}

func (c *StoreConverter) ToCartItemModel(entity *domain.CartItem) CartItemStoreModel {
	return CartItemStoreModel{
		ProductStoreModel: c.ToProductModel(&entity.Product),
		Quantity:          entity.Quantity,
	}
}

func (c *StoreConverter) ToCartItemEntity(model *CartItemStoreModel) domain.CartItem {
	return domain.CartItem{
		Product:  c.ToProductEntity(&model.ProductStoreModel),
		Quantity: model.Quantity,
	}
}

func (c *StoreConverter) ToArrCartItemModel(entities []domain.CartItem) []CartItemStoreModel {
	models := make([]CartItemStoreModel, 0, len(entities))
	for i := range entities {
		models = append(models, c.ToCartItemModel(&entities[i]))
	}

	return models
}

func (c *StoreConverter) ToArrCartItemEntity(models []CartItemStoreModel) []domain.CartItem {
	entities := make([]domain.CartItem, 0, len(models))
	for i := range models {
		entities = append(entities, c.ToCartItemEntity(&models[i]))
	}

	return entities
}

func (c *StoreConverter) ToOrderModel(entity *domain.Order) OrderStoreModel {
	return OrderStoreModel{
		ID:             entity.ID,
		CustomerName:   entity.CustomerName,
		CustomerEmail:  entity.CustomerEmail,
		Items:          c.ToArrCartItemModel(entity.Items),
		Total:          entity.Total,
		Status:         string(entity.Status),
		Date:           entity.Date.Format(time.RFC3339),
		TrackingNumber: entity.TrackingNumber,
	}
}

func (c *StoreConverter) ToOrderEntity(model *OrderStoreModel) domain.Order {
	// Некорректная дата деградирует до нулевого времени, запись не теряется
	date, _ := time.Parse(time.RFC3339, model.Date)

	return domain.Order{
		ID:             model.ID,
		CustomerName:   model.CustomerName,
		CustomerEmail:  model.CustomerEmail,
		Items:          c.ToArrCartItemEntity(model.Items),
		Total:          model.Total,
		Status:         domain.OrderStatus(model.Status),
		Date:           date,
		TrackingNumber: model.TrackingNumber,
	}
}

func (c *StoreConverter) ToArrOrderModel(entities []domain.Order) []OrderStoreModel {
	models := make([]OrderStoreModel, 0, len(entities))
	for i := range entities {
		models = append(models, c.ToOrderModel(&entities[i]))
	}

	return models
}

func (c *StoreConverter) ToArrOrderEntity(models []OrderStoreModel) []domain.Order {
	entities := make([]domain.Order, 0, len(models))
	for i := range models {
		entities = append(entities, c.ToOrderEntity(&models[i]))
	}

	return entities
}
