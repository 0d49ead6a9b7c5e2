package repository

import (
	"context"
	"testing"

	"contractor_takeoff/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHardwareCatalogDynamoRepository(t *testing.T) {
	fake := newFakeDynamo()
	repo := newHardwareCatalogDynamoRepository(fake)
	ctx := context.Background()

	items := []entities.HardwareItem{
		{ID: "hw-1", Name: "Starter Kit", Category: entities.TradeSiding, Method: entities.MethodFixedQuantity, FixedQuantity: 4, BasePrice: 10, ManufacturerID: "mfr-1", Source: entities.HardwareSourceManufacturer},
		{ID: "hw-2", Name: "Coil Nails", Category: entities.TradeSiding, Method: entities.MethodPerArea, CoverageUnit: 50, PackageSize: 2, BasePrice: 3, Source: entities.HardwareSourceGeneric},
		{ID: "hw-3", Name: "Mortar", Category: entities.TradeStone, Method: entities.MethodPerArea, Factor: 0.2, BasePrice: 18, Source: entities.HardwareSourceGeneric},
	}
	for _, it := range items {
		_, err := repo.Create(ctx, it)
		require.NoError(t, err)
	}
	assert.Equal(t, defaultHardwareTableName, *fake.lastPut.TableName)

	siding, err := repo.ListByCategory(ctx, entities.TradeSiding)
	require.NoError(t, err)
	assert.Len(t, siding, 2)
	assert.Equal(t, hardwareCategoryIndex, *fake.lastQry.IndexName)

	got, err := repo.GetByID(ctx, "hw-2")
	require.NoError(t, err)
	assert.Equal(t, items[1], got)

	missing, err := repo.GetByID(ctx, "hw-404")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)

	_, err = repo.Create(ctx, items[0])
	assert.Error(t, err)
}
