package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/dropflow/internal/cfg"
	v1Http "github.com/DRSN-tech/dropflow/internal/delivery/v1/http"
	"github.com/DRSN-tech/dropflow/internal/infrastructure/gemini"
	"github.com/DRSN-tech/dropflow/internal/infrastructure/kafka"
	"github.com/DRSN-tech/dropflow/internal/repository/converter"
	memoryRepo "github.com/DRSN-tech/dropflow/internal/repository/memory"
	redisRepo "github.com/DRSN-tech/dropflow/internal/repository/redis"
	"github.com/DRSN-tech/dropflow/internal/repository/seed"
	"github.com/DRSN-tech/dropflow/internal/session"
	"github.com/DRSN-tech/dropflow/internal/usecase"
	"github.com/DRSN-tech/dropflow/pkg/clients"
	"github.com/DRSN-tech/dropflow/pkg/closer"
	"github.com/DRSN-tech/dropflow/pkg/e"
	"github.com/DRSN-tech/dropflow/pkg/logger"
	"github.com/jimlawless/whereami"

	"github.com/go-chi/chi/v5"
)

// App собирает зависимости и управляет жизненным циклом сервиса.
type App struct {
	cfg     *config.Config
	logger  logger.Logger
	httpSrv *v1Http.Server
	closer  *closer.Closer
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	cl := closer.NewCloser()
	conv := converter.NewStoreConverter()

	store, err := initStore(cfg, conv, log, cl)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	seedCtx, seedCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer seedCancel()
	if err := store.EnsureSeed(seedCtx); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	sess := session.NewSession(store, cfg.Prefs, log)
	if err := sess.Hydrate(seedCtx); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	producer, err := initProducer(cfg, log, cl)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	productUC := usecase.NewProductUC(store, cfg.Latency, log)
	orderUC := usecase.NewOrderUC(store, producer, cfg.Latency, log)
	supplierUC := usecase.NewSupplierUC(seed.Suppliers(), cfg.Latency, log)
	copywriter := gemini.NewCopywriter(cfg.Gemini, log)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(productUC, orderUC, supplierUC, sess, copywriter)

	httpSrv := v1Http.NewServer(r, cfg.Http)
	cl.Add(func(ctx context.Context) error {
		return httpSrv.Stop(ctx)
	})

	return &App{
		cfg:     cfg,
		logger:  log,
		httpSrv: httpSrv,
		closer:  cl,
	}, nil
}

// Run запускает HTTP-сервер и блокируется до сигнала остановки или
// фатальной ошибки сервера.
func (a *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Warnf("shutdown finished with errors: %v", err)
	} else {
		a.logger.Infof("Application shutdown complete")
	}

	return appErr
}

// initStore выбирает бэкенд хранилища: Redis при заданном REDIS_ADDR,
// иначе хранилище в памяти (демо-режим, состояние живёт до перезапуска).
func initStore(cfg *config.Config, conv *converter.StoreConverter,
	log logger.Logger, cl *closer.Closer) (usecase.StoreRepository, error) {
	if cfg.Redis == nil {
		log.Infof("REDIS_ADDR not set, using in-memory store")
		return memoryRepo.NewStoreRepo(conv, log), nil
	}

	redisClient := clients.NewRedisClient(cfg.Redis)
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()
	if err := redisClient.Ping(pingCtx); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	cl.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})

	return redisRepo.NewStoreRepo(redisClient, conv, log), nil
}

// initProducer подключает Kafka-продюсер событий заказов или заглушку,
// если брокеры не сконфигурированы.
func initProducer(cfg *config.Config, log logger.Logger, cl *closer.Closer) (usecase.OrderEventProducer, error) {
	if cfg.Kafka == nil {
		log.Infof("KAFKA_BROKERS not set, order events disabled")
		return kafka.NewDisabledProducer(), nil
	}

	producer, err := kafka.NewProducer(log, cfg.Kafka)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	cl.Add(func(ctx context.Context) error {
		return producer.Close()
	})

	return producer, nil
}
