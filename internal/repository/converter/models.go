package converter

// Модели сериализации повторяют формат исходных записей хранилища:
// camelCase-поля, корзина — товар с количеством в одной плоской записи.

type ProductStoreModel struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Price          int64   `json:"price"`
	CompareAtPrice *int64  `json:"compareAtPrice,omitempty"`
	CostPrice      int64   `json:"costPrice"`
	Supplier       string  `json:"supplier"`
	Image          string  `json:"image"`
	Category       string  `json:"category"`
	Inventory      int     `json:"inventory"`
	Rating         float64 `json:"rating"`
	Reviews        int     `json:"reviews"`
}

type CartItemStoreModel struct {
	ProductStoreModel
	Quantity int `json:"quantity"`
}

type OrderStoreModel struct {
	ID             string               `json:"id"`
	CustomerName   string               `json:"customerName"`
	CustomerEmail  string               `json:"customerEmail"`
	Items          []CartItemStoreModel `json:"items"`
	Total          int64                `json:"total"`
	Status         string               `json:"status"`
	Date           string               `json:"date"` // RFC3339
	TrackingNumber string               `json:"trackingNumber,omitempty"`
}
