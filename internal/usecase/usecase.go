package usecase

import (
	"context"

	"github.com/DRSN-tech/dropflow/internal/domain"
)

type ProductUC interface {
	ListAll(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Add(ctx context.Context, req *AddProductReq) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type OrderUC interface {
	Create(ctx context.Context, req *CreateOrderReq) (*domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
	DashboardStats(ctx context.Context) (*DashboardStats, error)
}

type SupplierUC interface {
	ListAll(ctx context.Context) ([]domain.Supplier, error)
	SyncInventory(ctx context.Context) error
}
