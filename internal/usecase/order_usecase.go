package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/DRSN-tech/dropflow/internal/cfg"
	"github.com/DRSN-tech/dropflow/internal/domain"
	"github.com/DRSN-tech/dropflow/pkg/e"
	"github.com/DRSN-tech/dropflow/pkg/logger"
)

const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
)

// OrderUseCase реализует оформление и сопровождение заказов.
type OrderUseCase struct {
	store    StoreRepository
	producer OrderEventProducer
	latency  *cfg.LatencyCfg
	logger   logger.Logger
}

func NewOrderUC(store StoreRepository, producer OrderEventProducer, latency *cfg.LatencyCfg, logger logger.Logger) *OrderUseCase {
	return &OrderUseCase{
		store:    store,
		producer: producer,
		latency:  latency,
		logger:   logger,
	}
}

// Create оформляет заказ: генерирует идентификатор, фиксирует снимок строк
// корзины и сумму на момент создания, ставит статус pending. Задержка
// имитирует обработку платежа.
func (o *OrderUseCase) Create(ctx context.Context, req *CreateOrderReq) (*domain.Order, error) {
	const op = "OrderUseCase.Create"

	if err := simulateLatency(ctx, o.latency.OrderCreate, o.latency.JitterFactor); err != nil {
		return nil, e.Wrap(op, err)
	}

	orders, err := o.store.ReadOrders(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	order := domain.NewOrder(
		newOrderID(),
		req.CustomerName,
		req.CustomerEmail,
		req.Items,
		req.Total,
		time.Now().UTC(),
	)

	// Новые заказы в начале коллекции
	orders = append([]domain.Order{*order}, orders...)
	if err := o.store.WriteOrders(ctx, orders); err != nil {
		return nil, e.Wrap(op, err)
	}

	o.logger.Infof("order created: id=%s total=%d items=%d", order.ID, order.Total, len(order.Items))
	o.publishEvent(ctx, NewPublishOrderEventReq(EventOrderCreated, order.ID, order.Status, order.Total))

	return order, nil
}

// ListAll возвращает все заказы, от новых к старым.
func (o *OrderUseCase) ListAll(ctx context.Context) ([]domain.Order, error) {
	const op = "OrderUseCase.ListAll"

	orders, err := o.store.ReadOrders(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return orders, nil
}

// UpdateStatus перезаписывает статус заказа. Неизвестный ID — no-op.
// Переход именно в shipped дополнительно назначает трек-номер; переходы
// между статусами не валидируются.
func (o *OrderUseCase) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	const op = "OrderUseCase.UpdateStatus"

	orders, err := o.store.ReadOrders(ctx)
	if err != nil {
		return e.Wrap(op, err)
	}

	for i := range orders {
		if orders[i].ID != id {
			continue
		}

		orders[i].Status = status
		if status == domain.OrderStatusShipped {
			orders[i].TrackingNumber = newTrackingNumber()
		}

		if err := o.store.WriteOrders(ctx, orders); err != nil {
			return e.Wrap(op, err)
		}

		o.publishEvent(ctx, NewPublishOrderEventReq(EventOrderStatusChanged, id, status, orders[i].Total))
		return nil
	}

	return nil
}

// DashboardStats считает сводку по заказам и каталогу для панели оператора.
// Прибыль — разница розничной и закупочной цены по каждой строке заказа.
func (o *OrderUseCase) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	const op = "OrderUseCase.DashboardStats"

	orders, err := o.store.ReadOrders(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	products, err := o.store.ReadProducts(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	stats := &DashboardStats{
		Orders:   len(orders),
		Products: len(products),
	}

	for _, order := range orders {
		stats.Revenue += order.Total
		for _, item := range order.Items {
			stats.Profit += (item.Price - item.CostPrice) * int64(item.Quantity)
		}
	}

	if len(orders) > 0 {
		stats.AvgOrderValue = stats.Revenue / int64(len(orders))
	}

	return stats, nil
}

// publishEvent отправляет событие заказа. Сбой публикации не влияет на
// результат операции.
func (o *OrderUseCase) publishEvent(ctx context.Context, req *PublishOrderEventReq) {
	if err := o.producer.PublishOrderEvent(ctx, req); err != nil {
		o.logger.Warnf("order event publish failed: type=%s order=%s: %v", req.Type, req.OrderID, err)
	}
}

// newOrderID генерирует идентификатор заказа с префиксом ord_.
func newOrderID() string {
	return "ord_" + shortToken(9)
}

// newTrackingNumber генерирует трек-номер отправления.
func newTrackingNumber() string {
	return "TRK-" + strings.ToUpper(shortToken(9))
}
