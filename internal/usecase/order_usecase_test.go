package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/DRSN-tech/dropflow/internal/cfg"
	"github.com/DRSN-tech/dropflow/internal/domain"
	"github.com/DRSN-tech/dropflow/internal/repository/converter"
	"github.com/DRSN-tech/dropflow/internal/repository/memory"
	"github.com/DRSN-tech/dropflow/internal/usecase"
	"github.com/DRSN-tech/dropflow/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingProducer копит опубликованные события для проверок.
type recordingProducer struct {
	events []*usecase.PublishOrderEventReq
}

func (r *recordingProducer) PublishOrderEvent(ctx context.Context, req *usecase.PublishOrderEventReq) error {
	r.events = append(r.events, req)
	return nil
}

func newTestOrderUC(t *testing.T) (*usecase.OrderUseCase, *recordingProducer, usecase.StoreRepository) {
	t.Helper()

	store := memory.NewStoreRepo(converter.NewStoreConverter(), logger.NewNopLogger())
	require.NoError(t, store.EnsureSeed(context.Background()))

	producer := &recordingProducer{}
	uc := usecase.NewOrderUC(store, producer, &cfg.LatencyCfg{}, logger.NewNopLogger())

	return uc, producer, store
}

func testCartItems() []domain.CartItem {
	watch := domain.Product{ID: "1", Title: "Minimalist Smart Watch", Price: 4999, CostPrice: 1500}
	headphones := domain.Product{ID: "3", Title: "Wireless Noise Cancelling Headphones", Price: 7999, CostPrice: 2500}

	return []domain.CartItem{
		{Product: watch, Quantity: 1},
		{Product: headphones, Quantity: 1},
	}
}

func TestOrderUC_Create(t *testing.T) {
	uc, producer, _ := newTestOrderUC(t)
	ctx := context.Background()

	// Две разные позиции на общую сумму $129.98
	order, err := uc.Create(ctx, usecase.NewCreateOrderReq("Jane Doe", "jane@example.com", testCartItems(), 12998))

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(order.ID, "ord_"))
	assert.Equal(t, int64(12998), order.Total)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Empty(t, order.TrackingNumber)
	assert.False(t, order.Date.IsZero())
	assert.Len(t, order.Items, 2)

	require.Len(t, producer.events, 1)
	assert.Equal(t, usecase.EventOrderCreated, producer.events[0].Type)
	assert.Equal(t, order.ID, producer.events[0].OrderID)
}

func TestOrderUC_ListAll_NewestFirst(t *testing.T) {
	uc, _, _ := newTestOrderUC(t)
	ctx := context.Background()

	first, err := uc.Create(ctx, usecase.NewCreateOrderReq("A", "a@example.com", testCartItems(), 12998))
	require.NoError(t, err)
	second, err := uc.Create(ctx, usecase.NewCreateOrderReq("B", "b@example.com", testCartItems(), 12998))
	require.NoError(t, err)

	orders, err := uc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
}

func TestOrderUC_UpdateStatus_ShippedAssignsTracking(t *testing.T) {
	uc, producer, _ := newTestOrderUC(t)
	ctx := context.Background()

	order, err := uc.Create(ctx, usecase.NewCreateOrderReq("Jane", "jane@example.com", testCartItems(), 12998))
	require.NoError(t, err)

	require.NoError(t, uc.UpdateStatus(ctx, order.ID, domain.OrderStatusShipped))

	orders, err := uc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, domain.OrderStatusShipped, orders[0].Status)
	assert.True(t, strings.HasPrefix(orders[0].TrackingNumber, "TRK-"))
	assert.Greater(t, len(orders[0].TrackingNumber), len("TRK-"))

	require.Len(t, producer.events, 2)
	assert.Equal(t, usecase.EventOrderStatusChanged, producer.events[1].Type)
}

func TestOrderUC_UpdateStatus_OtherStatusLeavesTrackingUnset(t *testing.T) {
	uc, _, _ := newTestOrderUC(t)
	ctx := context.Background()

	order, err := uc.Create(ctx, usecase.NewCreateOrderReq("Jane", "jane@example.com", testCartItems(), 12998))
	require.NoError(t, err)

	for _, status := range []domain.OrderStatus{
		domain.OrderStatusProcessing,
		domain.OrderStatusDelivered,
		domain.OrderStatusPending,
	} {
		require.NoError(t, uc.UpdateStatus(ctx, order.ID, status))

		orders, err := uc.ListAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, status, orders[0].Status)
		assert.Empty(t, orders[0].TrackingNumber)
	}
}

func TestOrderUC_UpdateStatus_UnknownID_NoOp(t *testing.T) {
	uc, producer, _ := newTestOrderUC(t)
	ctx := context.Background()

	require.NoError(t, uc.UpdateStatus(ctx, "ord_missing", domain.OrderStatusShipped))
	assert.Empty(t, producer.events)
}

func TestOrderUC_DashboardStats(t *testing.T) {
	uc, _, _ := newTestOrderUC(t)
	ctx := context.Background()

	_, err := uc.Create(ctx, usecase.NewCreateOrderReq("Jane", "jane@example.com", testCartItems(), 12998))
	require.NoError(t, err)

	stats, err := uc.DashboardStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(12998), stats.Revenue)
	assert.Equal(t, 1, stats.Orders)
	assert.Equal(t, 4, stats.Products)
	assert.Equal(t, int64(12998), stats.AvgOrderValue)
	// (4999-1500) + (7999-2500)
	assert.Equal(t, int64(8998), stats.Profit)
}

func TestOrderUC_DashboardStats_Empty(t *testing.T) {
	uc, _, _ := newTestOrderUC(t)

	stats, err := uc.DashboardStats(context.Background())
	require.NoError(t, err)

	assert.Zero(t, stats.Revenue)
	assert.Zero(t, stats.Orders)
	assert.Zero(t, stats.AvgOrderValue)
	assert.Zero(t, stats.Profit)
	assert.Equal(t, 4, stats.Products)
}
