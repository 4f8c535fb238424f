package usecase

import "github.com/DRSN-tech/dropflow/internal/domain"

// PRODUCT USECASE

// AddProductReq — запрос на добавление нового товара в каталог.
type AddProductReq struct {
	Title          string
	Description    string
	Price          int64
	CompareAtPrice *int64
	CostPrice      int64
	Supplier       string
	Image          string
	Category       string
	Inventory      int
}

// ORDER USECASE

// CreateOrderReq — запрос на оформление заказа из снимка корзины.
type CreateOrderReq struct {
	CustomerName  string
	CustomerEmail string
	Items         []domain.CartItem
	Total         int64
}

// DashboardStats — сводка для админской панели.
type DashboardStats struct {
	Revenue       int64 // в центах
	Orders        int
	Products      int
	AvgOrderValue int64 // в центах
	Profit        int64 // в центах, Σ (цена − закупка) × количество по заказам
}

// INFRASTRUCTURE

// CopySuggestion — подсказка копирайтера: черновик карточки товара.
// Все поля опциональны, пустое значение означает отсутствие подсказки по полю.
type CopySuggestion struct {
	Title       string
	Description string
	Price       int64 // в центах
	CostPrice   int64 // в центах
	Category    string
}

// PublishOrderEventReq — событие жизненного цикла заказа.
type PublishOrderEventReq struct {
	Type    string
	OrderID string
	Status  domain.OrderStatus
	Total   int64
}

// MAPPERS

func NewAddProductReq(title, description string, price int64, compareAtPrice *int64,
	costPrice int64, supplier, image, category string, inventory int) *AddProductReq {
	return &AddProductReq{
		Title:          title,
		Description:    description,
		Price:          price,
		CompareAtPrice: compareAtPrice,
		CostPrice:      costPrice,
		Supplier:       supplier,
		Image:          image,
		Category:       category,
		Inventory:      inventory,
	}
}

func NewCreateOrderReq(customerName, customerEmail string, items []domain.CartItem, total int64) *CreateOrderReq {
	return &CreateOrderReq{
		CustomerName:  customerName,
		CustomerEmail: customerEmail,
		Items:         items,
		Total:         total,
	}
}

func NewPublishOrderEventReq(eventType string, orderID string, status domain.OrderStatus, total int64) *PublishOrderEventReq {
	return &PublishOrderEventReq{
		Type:    eventType,
		OrderID: orderID,
		Status:  status,
		Total:   total,
	}
}
