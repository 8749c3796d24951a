package catalog

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	db "github.com/zhukovvlad/integrator-go/cmd/internal/db/sqlc"
	"github.com/zhukovvlad/integrator-go/cmd/internal/services/suppliers"
	"github.com/zhukovvlad/integrator-go/cmd/internal/services/suppliers/mocks"
	"github.com/zhukovvlad/integrator-go/cmd/internal/util"
	"github.com/zhukovvlad/integrator-go/cmd/pkg/logging"
	"github.com/zhukovvlad/integrator-go/cmd/internal/testutil"
)

func seedEquipment(t *testing.T, store *testutil.FakeStore, projectID, batchID int64, partNumber, supplier string) db.ProjectEquipment {
	t.Helper()
	item, err := store.CreateEquipmentInstance(context.Background(), db.CreateEquipmentInstanceParams{
		ProjectID:      projectID,
		BatchID:        util.NullableID(batchID),
		Name:           partNumber,
		PartNumber:     partNumber,
		Manufacturer:   "Araknis",
		InstallSide:    "room_end",
		EquipmentType:  "part",
		SupplierName:   supplier,
		InstanceNumber: 1,
	})
	require.NoError(t, err)
	return item
}

func TestSyncGlobalParts(t *testing.T) {
	store := testutil.NewFakeStore()
	service := NewCatalogService(store, logging.GetLogger(), nil, 0.8)
	ctx := context.Background()

	a := seedEquipment(t, store, 1, 10, "AN-310", "")
	b := seedEquipment(t, store, 1, 10, "an-310 ", "")
	c := seedEquipment(t, store, 1, 10, "RT-9", "")
	noPart := seedEquipment(t, store, 1, 10, "", "")

	items, err := store.ListProjectEquipment(ctx, 1)
	require.NoError(t, err)

	synced := service.SyncGlobalParts(ctx, 1, 10, items)

	assert.Equal(t, 2, synced, "регистр и пробелы не плодят дублей каталога")
	assert.Len(t, store.Parts, 2)

	for _, id := range []int64{a.ID, b.ID, c.ID} {
		assert.True(t, store.Equipment[id].GlobalPartID.Valid, "ссылка раздаётся всем записям пакета")
	}
	assert.False(t, store.Equipment[noPart.ID].GlobalPartID.Valid, "запись без артикула каталог не трогает")
}

func TestSyncGlobalPartsBestEffort(t *testing.T) {
	store := testutil.NewFakeStore()
	store.ErrUpsertGlobalPart = assert.AnError
	service := NewCatalogService(store, logging.GetLogger(), nil, 0.8)

	seedEquipment(t, store, 1, 10, "AN-310", "")
	items, err := store.ListProjectEquipment(context.Background(), 1)
	require.NoError(t, err)

	synced := service.SyncGlobalParts(context.Background(), 1, 10, items)
	assert.Equal(t, 0, synced, "сбой апсерта не роняет синхронизацию")
}

func TestSyncSuppliers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := testutil.NewFakeStore()
	matcher := mocks.NewMockMatcher(ctrl)
	service := NewCatalogService(store, logging.GetLogger(), matcher, 0.82)
	ctx := context.Background()

	first := seedEquipment(t, store, 1, 10, "AN-310", "Snap AV")
	second := seedEquipment(t, store, 1, 10, "RT-9", "Snap AV")
	line, err := store.CreateLaborBudgetLine(ctx, db.CreateLaborBudgetLineParams{
		ProjectID:    1,
		BatchID:      util.NullableID(10),
		LaborType:    "install",
		PlannedHours: 4,
		SupplierName: "Snap AV",
	})
	require.NoError(t, err)

	// Уникальное название разрешается через сервис сопоставления ровно один раз.
	matcher.EXPECT().
		MatchOrCreate(gomock.Any(), "Snap AV", 0.82).
		Return(suppliers.MatchResult{SupplierID: 77, Name: "Snap AV", Confidence: 0.95}, nil).
		Times(1)

	items, err := store.ListProjectEquipment(ctx, 1)
	require.NoError(t, err)
	lines, err := store.ListLaborBudgetLines(ctx, 1)
	require.NoError(t, err)

	synced := service.SyncSuppliers(ctx, 1, 10, items, lines)

	assert.Equal(t, 1, synced)
	assert.Equal(t, sql.NullInt64{Int64: 77, Valid: true}, store.Equipment[first.ID].SupplierID)
	assert.Equal(t, sql.NullInt64{Int64: 77, Valid: true}, store.Equipment[second.ID].SupplierID)
	assert.Equal(t, sql.NullInt64{Int64: 77, Valid: true}, store.Labor[line.ID].SupplierID)
}

func TestSyncSuppliersMatcherFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := testutil.NewFakeStore()
	matcher := mocks.NewMockMatcher(ctrl)
	service := NewCatalogService(store, logging.GetLogger(), matcher, 0.82)

	item := seedEquipment(t, store, 1, 10, "AN-310", "Snap AV")
	matcher.EXPECT().
		MatchOrCreate(gomock.Any(), "Snap AV", 0.82).
		Return(suppliers.MatchResult{}, assert.AnError)

	items, err := store.ListProjectEquipment(context.Background(), 1)
	require.NoError(t, err)

	synced := service.SyncSuppliers(context.Background(), 1, 10, items, nil)

	assert.Equal(t, 0, synced)
	assert.False(t, store.Equipment[item.ID].SupplierID.Valid, "при сбое сопоставления записи остаются без ссылки")
}
