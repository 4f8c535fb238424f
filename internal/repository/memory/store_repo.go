package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/DRSN-tech/dropflow/internal/domain"
	"github.com/DRSN-tech/dropflow/internal/repository/converter"
	"github.com/DRSN-tech/dropflow/internal/repository/seed"
	"github.com/DRSN-tech/dropflow/pkg/e"
	"github.com/DRSN-tech/dropflow/pkg/logger"
	"github.com/jimlawless/whereami"
)

const (
	keyProducts = "dropflow:products"
	keyOrders   = "dropflow:orders"
	keyCart     = "dropflow:cart"
	keyTheme    = "dropflow:theme"
	keyLanguage = "dropflow:language"
)

// StoreRepo — key-value хранилище витрины в памяти процесса: демо-режим
// без Redis и тесты. Значения хранятся сериализованными, чтобы семантика
// (полная перезапись, деградация повреждённых данных) совпадала с Redis.
type StoreRepo struct {
	mu     sync.RWMutex
	data   map[string][]byte
	conv   *converter.StoreConverter
	logger logger.Logger
}

func NewStoreRepo(conv *converter.StoreConverter, logger logger.Logger) *StoreRepo {
	return &StoreRepo{
		data:   make(map[string][]byte),
		conv:   conv,
		logger: logger,
	}
}

// EnsureSeed записывает стартовый каталог при отсутствии ключа товаров
// и пустой список заказов при отсутствии ключа заказов.
func (s *StoreRepo) EnsureSeed(ctx context.Context) error {
	s.mu.RLock()
	_, hasProducts := s.data[keyProducts]
	_, hasOrders := s.data[keyOrders]
	s.mu.RUnlock()

	if !hasProducts {
		if err := s.WriteProducts(ctx, seed.Products()); err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}
	}
	if !hasOrders {
		if err := s.WriteOrders(ctx, []domain.Order{}); err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}
	}

	return nil
}

func (s *StoreRepo) ReadProducts(ctx context.Context) ([]domain.Product, error) {
	var models []converter.ProductStoreModel
	s.readCollection(keyProducts, &models)

	return s.conv.ToArrProductEntity(models), nil
}

func (s *StoreRepo) WriteProducts(ctx context.Context, products []domain.Product) error {
	return s.writeCollection(keyProducts, s.conv.ToArrProductModel(products))
}

func (s *StoreRepo) ReadOrders(ctx context.Context) ([]domain.Order, error) {
	var models []converter.OrderStoreModel
	s.readCollection(keyOrders, &models)

	return s.conv.ToArrOrderEntity(models), nil
}

func (s *StoreRepo) WriteOrders(ctx context.Context, orders []domain.Order) error {
	return s.writeCollection(keyOrders, s.conv.ToArrOrderModel(orders))
}

func (s *StoreRepo) ReadCart(ctx context.Context) ([]domain.CartItem, error) {
	var models []converter.CartItemStoreModel
	s.readCollection(keyCart, &models)

	return s.conv.ToArrCartItemEntity(models), nil
}

func (s *StoreRepo) WriteCart(ctx context.Context, items []domain.CartItem) error {
	return s.writeCollection(keyCart, s.conv.ToArrCartItemModel(items))
}

func (s *StoreRepo) GetTheme(ctx context.Context) (domain.Theme, error) {
	return domain.Theme(s.readScalar(keyTheme)), nil
}

func (s *StoreRepo) SetTheme(ctx context.Context, theme domain.Theme) error {
	s.writeScalar(keyTheme, string(theme))
	return nil
}

func (s *StoreRepo) GetLanguage(ctx context.Context) (domain.Language, error) {
	return domain.Language(s.readScalar(keyLanguage)), nil
}

func (s *StoreRepo) SetLanguage(ctx context.Context, lang domain.Language) error {
	s.writeScalar(keyLanguage, string(lang))
	return nil
}

// InjectRaw подкладывает сырое значение под ключ. Только для тестов
// деградации на повреждённых данных.
func (s *StoreRepo) InjectRaw(key string, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
}

// readCollection разбирает JSON-массив по ключу. Отсутствующий ключ —
// пустая коллекция; повреждённое значение деградирует до пустой коллекции.
func (s *StoreRepo) readCollection(key string, dest any) {
	s.mu.RLock()
	data, ok := s.data[key]
	s.mu.RUnlock()

	if !ok {
		return
	}

	if err := json.Unmarshal(data, dest); err != nil {
		s.logger.Warnf("corrupted value under %s, falling back to empty collection: %v", key, err)
	}
}

func (s *StoreRepo) writeCollection(key string, models any) error {
	data, err := json.Marshal(models)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	s.mu.Lock()
	s.data[key] = data
	s.mu.Unlock()

	return nil
}

func (s *StoreRepo) readScalar(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return string(s.data[key])
}

func (s *StoreRepo) writeScalar(key string, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = []byte(value)
}
