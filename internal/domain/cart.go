package domain

// CartItem — строка корзины: снимок товара плюс количество.
// Инвариант корзины: не более одной строки на ID товара.
type CartItem struct {
	Product
	Quantity int
}

func NewCartItem(product Product, quantity int) *CartItem {
	return &CartItem{
		Product:  product,
		Quantity: quantity,
	}
}
