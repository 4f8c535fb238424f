package domain

// Product описывает товар витрины
type Product struct {
	ID             string
	Title          string
	Description    string
	Price          int64 // Цена хранится в центах
	CompareAtPrice *int64
	CostPrice      int64 // Закупочная цена у поставщика, для расчёта прибыли
	Supplier       string
	Image          string
	Category       string
	Inventory      int
	Rating         float64
	Reviews        int
}

func NewProduct(id string, title string, description string, price int64, costPrice int64) *Product {
	return &Product{
		ID:          id,
		Title:       title,
		Description: description,
		Price:       price,
		CostPrice:   costPrice,
	}
}
