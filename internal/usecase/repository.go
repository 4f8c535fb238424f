package usecase

import (
	"context"

	"github.com/DRSN-tech/dropflow/internal/domain"
)

// StoreRepository — типизированный доступ к key-value хранилищу витрины.
// Коллекции перезаписываются целиком, частичных обновлений нет.
type StoreRepository interface {
	// EnsureSeed записывает стартовый каталог, если коллекция товаров
	// отсутствует, и пустой список заказов, если отсутствуют заказы.
	EnsureSeed(ctx context.Context) error

	ReadProducts(ctx context.Context) ([]domain.Product, error)
	WriteProducts(ctx context.Context, products []domain.Product) error

	ReadOrders(ctx context.Context) ([]domain.Order, error)
	WriteOrders(ctx context.Context, orders []domain.Order) error

	ReadCart(ctx context.Context) ([]domain.CartItem, error)
	WriteCart(ctx context.Context, items []domain.CartItem) error

	// GetTheme и GetLanguage возвращают пустое значение, если предпочтение
	// ещё не сохранялось.
	GetTheme(ctx context.Context) (domain.Theme, error)
	SetTheme(ctx context.Context, theme domain.Theme) error
	GetLanguage(ctx context.Context) (domain.Language, error)
	SetLanguage(ctx context.Context, lang domain.Language) error
}
