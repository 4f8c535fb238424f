package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/DRSN-tech/dropflow/internal/cfg"
	"github.com/DRSN-tech/dropflow/internal/repository/seed"
	"github.com/DRSN-tech/dropflow/internal/usecase"
	"github.com/DRSN-tech/dropflow/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupplierUC_ListAll(t *testing.T) {
	uc := usecase.NewSupplierUC(seed.Suppliers(), &cfg.LatencyCfg{}, logger.NewNopLogger())

	suppliers, err := uc.ListAll(context.Background())

	require.NoError(t, err)
	require.Len(t, suppliers, 3)
	assert.Equal(t, "AliExpress Official", suppliers[0].Name)
	assert.Equal(t, "sup_3", suppliers[2].ID)
}

func TestSupplierUC_SyncInventory_AlwaysSucceeds(t *testing.T) {
	uc := usecase.NewSupplierUC(seed.Suppliers(), &cfg.LatencyCfg{}, logger.NewNopLogger())

	assert.NoError(t, uc.SyncInventory(context.Background()))
}

func TestSupplierUC_SyncInventory_CancelledContext(t *testing.T) {
	latency := &cfg.LatencyCfg{SupplierSync: 50 * time.Millisecond}
	uc := usecase.NewSupplierUC(seed.Suppliers(), latency, logger.NewNopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, uc.SyncInventory(ctx))
}
