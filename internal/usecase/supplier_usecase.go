package usecase

import (
	"context"

	"github.com/DRSN-tech/dropflow/internal/cfg"
	"github.com/DRSN-tech/dropflow/internal/domain"
	"github.com/DRSN-tech/dropflow/pkg/e"
	"github.com/DRSN-tech/dropflow/pkg/logger"
)

// SupplierUseCase отдаёт статический список поставщиков и имитирует
// синхронизацию остатков. Реальной интеграции с API поставщиков нет.
type SupplierUseCase struct {
	suppliers []domain.Supplier
	latency   *cfg.LatencyCfg
	logger    logger.Logger
}

func NewSupplierUC(suppliers []domain.Supplier, latency *cfg.LatencyCfg, logger logger.Logger) *SupplierUseCase {
	return &SupplierUseCase{
		suppliers: suppliers,
		latency:   latency,
		logger:    logger,
	}
}

// ListAll возвращает фиксированный набор поставщиков.
func (s *SupplierUseCase) ListAll(ctx context.Context) ([]domain.Supplier, error) {
	result := make([]domain.Supplier, len(s.suppliers))
	copy(result, s.suppliers)

	return result, nil
}

// SyncInventory имитирует удалённую синхронизацию остатков и всегда
// завершается успешно, не меняя остатки каталога.
func (s *SupplierUseCase) SyncInventory(ctx context.Context) error {
	const op = "SupplierUseCase.SyncInventory"

	if err := simulateLatency(ctx, s.latency.SupplierSync, s.latency.JitterFactor); err != nil {
		return e.Wrap(op, err)
	}

	s.logger.Infof("supplier inventory sync completed")

	return nil
}
