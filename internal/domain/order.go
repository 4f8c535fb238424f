package domain

import "time"

// OrderStatus — статус выполнения заказа.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
)

// ValidOrderStatus сообщает, входит ли значение в закрытый набор статусов.
// Переходы между статусами не валидируются, только само значение.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered:
		return true
	default:
		return false
	}
}

// Order описывает заказ: снимок строк корзины на момент оформления,
// а не живые ссылки на текущие товары каталога.
type Order struct {
	ID             string
	CustomerName   string
	CustomerEmail  string
	Items          []CartItem
	Total          int64 // Сумма в центах на момент создания
	Status         OrderStatus
	Date           time.Time
	TrackingNumber string // Назначается только при переходе в статус shipped
}

func NewOrder(id string, customerName string, customerEmail string, items []CartItem, total int64, date time.Time) *Order {
	return &Order{
		ID:            id,
		CustomerName:  customerName,
		CustomerEmail: customerEmail,
		Items:         items,
		Total:         total,
		Status:        OrderStatusPending,
		Date:          date,
	}
}
