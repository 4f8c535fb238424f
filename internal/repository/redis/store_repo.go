package redis

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/DRSN-tech/dropflow/internal/domain"
	"github.com/DRSN-tech/dropflow/internal/repository/converter"
	"github.com/DRSN-tech/dropflow/internal/repository/seed"
	"github.com/DRSN-tech/dropflow/pkg/clients"
	"github.com/DRSN-tech/dropflow/pkg/e"
	"github.com/DRSN-tech/dropflow/pkg/logger"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

// Ключи хранилища. Коллекции — JSON-массивы, предпочтения — скалярные строки.
const (
	keyProducts = "dropflow:products"
	keyOrders   = "dropflow:orders"
	keyCart     = "dropflow:cart"
	keyTheme    = "dropflow:theme"
	keyLanguage = "dropflow:language"
)

// StoreRepo реализует key-value хранилище витрины поверх Redis.
// Коллекции перезаписываются целиком; значение, которое не удаётся
// разобрать, деградирует до пустой коллекции с предупреждением в логе.
type StoreRepo struct {
	client *clients.RedisClient
	conv   *converter.StoreConverter
	logger logger.Logger
}

func NewStoreRepo(client *clients.RedisClient, conv *converter.StoreConverter, logger logger.Logger) *StoreRepo {
	return &StoreRepo{
		client: client,
		conv:   conv,
		logger: logger,
	}
}

// EnsureSeed записывает стартовый каталог при отсутствии ключа товаров
// и пустой список заказов при отсутствии ключа заказов.
func (s *StoreRepo) EnsureSeed(ctx context.Context) error {
	exists, err := s.client.Client.Exists(ctx, keyProducts).Result()
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if exists == 0 {
		if err := s.WriteProducts(ctx, seed.Products()); err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}
		s.logger.Infof("seeded product catalog: %d products", len(seed.Products()))
	}

	exists, err = s.client.Client.Exists(ctx, keyOrders).Result()
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if exists == 0 {
		if err := s.WriteOrders(ctx, []domain.Order{}); err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}
	}

	return nil
}

func (s *StoreRepo) ReadProducts(ctx context.Context) ([]domain.Product, error) {
	var models []converter.ProductStoreModel
	if err := s.readCollection(ctx, keyProducts, &models); err != nil {
		return nil, err
	}

	return s.conv.ToArrProductEntity(models), nil
}

func (s *StoreRepo) WriteProducts(ctx context.Context, products []domain.Product) error {
	return s.writeCollection(ctx, keyProducts, s.conv.ToArrProductModel(products))
}

func (s *StoreRepo) ReadOrders(ctx context.Context) ([]domain.Order, error) {
	var models []converter.OrderStoreModel
	if err := s.readCollection(ctx, keyOrders, &models); err != nil {
		return nil, err
	}

	return s.conv.ToArrOrderEntity(models), nil
}

func (s *StoreRepo) WriteOrders(ctx context.Context, orders []domain.Order) error {
	return s.writeCollection(ctx, keyOrders, s.conv.ToArrOrderModel(orders))
}

func (s *StoreRepo) ReadCart(ctx context.Context) ([]domain.CartItem, error) {
	var models []converter.CartItemStoreModel
	if err := s.readCollection(ctx, keyCart, &models); err != nil {
		return nil, err
	}

	return s.conv.ToArrCartItemEntity(models), nil
}

func (s *StoreRepo) WriteCart(ctx context.Context, items []domain.CartItem) error {
	return s.writeCollection(ctx, keyCart, s.conv.ToArrCartItemModel(items))
}

func (s *StoreRepo) GetTheme(ctx context.Context) (domain.Theme, error) {
	value, err := s.readScalar(ctx, keyTheme)
	return domain.Theme(value), err
}

func (s *StoreRepo) SetTheme(ctx context.Context, theme domain.Theme) error {
	return s.writeScalar(ctx, keyTheme, string(theme))
}

func (s *StoreRepo) GetLanguage(ctx context.Context) (domain.Language, error) {
	value, err := s.readScalar(ctx, keyLanguage)
	return domain.Language(value), err
}

func (s *StoreRepo) SetLanguage(ctx context.Context, lang domain.Language) error {
	return s.writeScalar(ctx, keyLanguage, string(lang))
}

// readCollection читает и разбирает JSON-массив по ключу.
// Отсутствующий ключ — пустая коллекция; повреждённое значение тоже
// деградирует до пустой коллекции, но с предупреждением в логе.
func (s *StoreRepo) readCollection(ctx context.Context, key string, dest any) error {
	data, err := s.client.Client.Get(ctx, key).Bytes()
	if errors.Is(err, r.Nil) {
		return nil
	}
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		s.logger.Warnf("corrupted value under %s, falling back to empty collection: %v", key, err)
		return nil
	}

	return nil
}

// writeCollection сериализует и полностью перезаписывает коллекцию по ключу.
func (s *StoreRepo) writeCollection(ctx context.Context, key string, models any) error {
	data, err := json.Marshal(models)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := s.client.Client.Set(ctx, key, data, 0).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (s *StoreRepo) readScalar(ctx context.Context, key string) (string, error) {
	value, err := s.client.Client.Get(ctx, key).Result()
	if errors.Is(err, r.Nil) {
		return "", nil
	}
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return value, nil
}

func (s *StoreRepo) writeScalar(ctx context.Context, key string, value string) error {
	if err := s.client.Client.Set(ctx, key, value, 0).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
