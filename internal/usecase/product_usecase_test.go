package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/DRSN-tech/dropflow/internal/cfg"
	"github.com/DRSN-tech/dropflow/internal/repository/converter"
	"github.com/DRSN-tech/dropflow/internal/repository/memory"
	"github.com/DRSN-tech/dropflow/internal/usecase"
	"github.com/DRSN-tech/dropflow/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProductUC(t *testing.T) (*usecase.ProductUseCase, usecase.StoreRepository) {
	t.Helper()

	store := memory.NewStoreRepo(converter.NewStoreConverter(), logger.NewNopLogger())
	require.NoError(t, store.EnsureSeed(context.Background()))

	uc := usecase.NewProductUC(store, &cfg.LatencyCfg{}, logger.NewNopLogger())
	return uc, store
}

func TestProductUC_ListAll_ReturnsSeededCatalog(t *testing.T) {
	uc, _ := newTestProductUC(t)

	products, err := uc.ListAll(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 4)
	assert.Equal(t, "1", products[0].ID)
	assert.Equal(t, "Minimalist Smart Watch", products[0].Title)
	assert.Equal(t, int64(4999), products[0].Price)
}

func TestProductUC_GetByID(t *testing.T) {
	uc, _ := newTestProductUC(t)
	ctx := context.Background()

	product, err := uc.GetByID(ctx, "3")
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, "Wireless Noise Cancelling Headphones", product.Title)

	// Отсутствующий товар — nil без ошибки
	missing, err := uc.GetByID(ctx, "zzz")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestProductUC_Add_PrependsNewestFirst(t *testing.T) {
	uc, _ := newTestProductUC(t)
	ctx := context.Background()

	created, err := uc.Add(ctx, usecase.NewAddProductReq(
		"Bamboo Desk Organizer", "Keeps your desk tidy.", 2499, nil, 700,
		"CJDropshipping", "https://picsum.photos/400/400?random=9", "Office", 80,
	))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(created.ID, "prod_"))

	products, err := uc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, products, 5)
	assert.Equal(t, created.ID, products[0].ID)
	assert.Equal(t, "Bamboo Desk Organizer", products[0].Title)
}

func TestProductUC_Add_Validation(t *testing.T) {
	uc, _ := newTestProductUC(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  *usecase.AddProductReq
	}{
		{"empty title", usecase.NewAddProductReq("", "d", 100, nil, 50, "", "", "", 1)},
		{"negative price", usecase.NewAddProductReq("X", "d", -1, nil, 50, "", "", "", 1)},
		{"negative cost price", usecase.NewAddProductReq("X", "d", 100, nil, -5, "", "", "", 1)},
		{"negative inventory", usecase.NewAddProductReq("X", "d", 100, nil, 50, "", "", "", -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Add(ctx, tt.req)
			assert.Error(t, err)
		})
	}
}

func TestProductUC_Delete_UnknownID_LeavesCatalogUnchanged(t *testing.T) {
	uc, _ := newTestProductUC(t)
	ctx := context.Background()

	require.NoError(t, uc.Delete(ctx, "zzz"))

	products, err := uc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 4)
}

func TestProductUC_Delete_RemovesMatchingProduct(t *testing.T) {
	uc, _ := newTestProductUC(t)
	ctx := context.Background()

	require.NoError(t, uc.Delete(ctx, "2"))

	products, err := uc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)
	for _, p := range products {
		assert.NotEqual(t, "2", p.ID)
	}
}
