package e

import "fmt"

var (
	// 400 Bad Request
	ErrStatusBadRequest   = fmt.Errorf("bad request")
	ErrMissingFields      = fmt.Errorf("missing required fields")
	ErrInvalidPrice       = fmt.Errorf("invalid price")
	ErrPricePrecision     = fmt.Errorf("price must have at most 2 decimal places")
	ErrInvalidQuantity    = fmt.Errorf("quantity must be at least 1")
	ErrInvalidOrderStatus = fmt.Errorf("unknown order status")
	ErrUnsupportedLocale  = fmt.Errorf("unsupported language code")
	ErrEmptyCart          = fmt.Errorf("cart is empty")

	// 404 Not Found
	ErrProductNotFound = fmt.Errorf("product not found")
	ErrOrderNotFound   = fmt.Errorf("order not found")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")

	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
