package importer

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	db "github.com/zhukovvlad/integrator-go/cmd/internal/db/sqlc"
	"github.com/zhukovvlad/integrator-go/cmd/internal/services/apierrors"
	"github.com/zhukovvlad/integrator-go/cmd/internal/tabular"
	"github.com/zhukovvlad/integrator-go/cmd/internal/testutil"
)

func parseCSVTable(t *testing.T, csv string) *tabular.Table {
	t.Helper()
	table, err := tabular.Parse("import.csv", strings.NewReader(csv))
	require.NoError(t, err)
	return table
}

func createTestProject(t *testing.T, store *testutil.FakeStore) db.Project {
	t.Helper()
	project, err := store.CreateProject(context.Background(), db.CreateProjectParams{Name: "Вилла", ClientName: "Петров"})
	require.NoError(t, err)
	return project
}

func TestParseMode(t *testing.T) {
	t.Run("известные режимы", func(t *testing.T) {
		for _, raw := range []string{"replace", " Merge ", "APPEND"} {
			mode, err := ParseMode(raw)
			require.NoError(t, err)
			assert.NotEmpty(t, mode)
		}
	})

	t.Run("неизвестный режим", func(t *testing.T) {
		_, err := ParseMode("upsert")
		require.Error(t, err)
		var validationErr *apierrors.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})
}

func TestImportEquipmentFileValidation(t *testing.T) {
	store := testutil.NewFakeStore()
	service := newTestService(store)
	ctx := context.Background()

	t.Run("пустой файл", func(t *testing.T) {
		project := createTestProject(t, store)
		_, err := service.ImportEquipmentFile(ctx, ImportParams{
			ProjectID: project.ID,
			Mode:      ModeAppend,
			Table:     &tabular.Table{},
		})
		var validationErr *apierrors.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("проект не найден", func(t *testing.T) {
		table := parseCSVTable(t, "Item Type,Area,QTY,Model\nEquipment,Office,1,Switch\n")
		_, err := service.ImportEquipmentFile(ctx, ImportParams{
			ProjectID: 9999,
			Mode:      ModeAppend,
			Table:     table,
		})
		var notFoundErr *apierrors.NotFoundError
		assert.ErrorAs(t, err, &notFoundErr)
	})
}

func TestImportEquipmentFileAppendScenario(t *testing.T) {
	store := testutil.NewFakeStore()
	service := newTestService(store)
	ctx := context.Background()
	project := createTestProject(t, store)

	csv := strings.Join([]string{
		"Item Type,Area,QTY,Brand,Model,Part Number,Cost,Sell Price",
		"Equipment,Living Room,2,Sony,XBR-55,TV-55,$1000,$1500",
		"Labor,Living Room,4,,Install,,,$95",
		",,,,,,,", // мусорная строка без полезных полей отфильтруется табличным слоем
		"Equipment,Living Room,abc,Sony,Bracket,BR-1,,",
	}, "\n")

	result, err := service.ImportEquipmentFile(ctx, ImportParams{
		ProjectID: project.ID,
		FileName:  "proposal.csv",
		Mode:      ModeAppend,
		UserID:    42,
		Table:     parseCSVTable(t, csv),
	})
	require.NoError(t, err)

	assert.Equal(t, 3, result.TotalRows, "полностью пустые строки не доходят до конвейера")
	assert.Equal(t, 1, result.SkippedRows, "строка с нечисловым количеством пропускается")
	assert.Equal(t, 2, result.EquipmentInserted)
	assert.Equal(t, 1, result.LaborInserted)
	assert.Equal(t, 1, result.RoomsCreated)
	assert.Nil(t, result.LinkRestore, "в режиме append связи не трогаются")

	// У каждого экземпляра появилась складская строка.
	assert.Len(t, store.Inventory, 2)

	batch, err := store.GetImportBatch(ctx, result.BatchID)
	require.NoError(t, err)
	assert.Equal(t, "processed", batch.Status)
	assert.Equal(t, int32(2), batch.ProcessedRows)
	assert.True(t, batch.CompletedAt.Valid)
}

func TestImportEquipmentFileMergePreservesProcurement(t *testing.T) {
	store := testutil.NewFakeStore()
	service := newTestService(store)
	ctx := context.Background()
	project := createTestProject(t, store)

	csv := "Item Type,Area,QTY,Brand,Model,Part Number,Sell Price\n" +
		"Equipment,Office,1,Araknis,Switch 24,AN-310,$800\n"
	first, err := service.ImportEquipmentFile(ctx, ImportParams{
		ProjectID: project.ID, FileName: "v1.csv", Mode: ModeAppend, Table: parseCSVTable(t, csv),
	})
	require.NoError(t, err)
	require.Equal(t, 1, first.EquipmentInserted)

	// Отдел закупок отметил заказ и приёмку.
	for id, item := range store.Equipment {
		item.OrderedQuantity = 1
		item.ReceivedQuantity = 1
		item.OrderedConfirmed = true
		item.Installed = true
		store.Equipment[id] = item
	}

	updatedCSV := "Item Type,Area,QTY,Brand,Model,Part Number,Sell Price\n" +
		"Equipment,Office,1,Araknis,Switch 24,AN-310,$750\n" +
		"Equipment,Office,1,Araknis,Switch 8,AN-110,$200\n"
	second, err := service.ImportEquipmentFile(ctx, ImportParams{
		ProjectID: project.ID, FileName: "v2.csv", Mode: ModeMerge, Table: parseCSVTable(t, updatedCSV),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, second.EquipmentUpdated)
	assert.Equal(t, 1, second.EquipmentInserted)

	items, err := store.ListProjectEquipment(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)

	var merged db.ProjectEquipment
	for _, item := range items {
		if item.PartNumber == "AN-310" {
			merged = item
		}
	}
	assert.Equal(t, 750.0, merged.UnitPrice, "цена обновляется из файла")
	assert.Equal(t, 1.0, merged.OrderedQuantity, "закупочные поля переживают merge")
	assert.True(t, merged.OrderedConfirmed)
	assert.True(t, merged.Installed)
}

func TestImportEquipmentFileMergeUpdatesLabor(t *testing.T) {
	store := testutil.NewFakeStore()
	service := newTestService(store)
	ctx := context.Background()
	project := createTestProject(t, store)

	csv := "Item Type,Area,QTY,Model\nLabor,Office,4,Install\n"
	_, err := service.ImportEquipmentFile(ctx, ImportParams{
		ProjectID: project.ID, Mode: ModeAppend, Table: parseCSVTable(t, csv),
	})
	require.NoError(t, err)

	updated := "Item Type,Area,QTY,Model\nLabor,Office,6,Install\n"
	result, err := service.ImportEquipmentFile(ctx, ImportParams{
		ProjectID: project.ID, Mode: ModeMerge, Table: parseCSVTable(t, updated),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.LaborUpdated)
	assert.Equal(t, 0, result.LaborInserted)
	require.Len(t, store.Labor, 1)
	for _, line := range store.Labor {
		assert.Equal(t, 6.0, line.PlannedHours, "часы перезаписываются значением из файла")
	}
}

func TestImportEquipmentFileMergeLaborIgnoresDescriptionWording(t *testing.T) {
	store := testutil.NewFakeStore()
	service := newTestService(store)
	ctx := context.Background()
	project := createTestProject(t, store)

	csv := "Item Type,Area,QTY,Model,Description\nLabor,Office,4,Install,Rack assembly\n"
	_, err := service.ImportEquipmentFile(ctx, ImportParams{
		ProjectID: project.ID, Mode: ModeAppend, Table: parseCSVTable(t, csv),
	})
	require.NoError(t, err)

	// То же самое (тип работ, комната), но описание переформулировано.
	reworded := "Item Type,Area,QTY,Model,Description\nLabor,Office,8,Install,Rack assembly and cabling\n"
	result, err := service.ImportEquipmentFile(ctx, ImportParams{
		ProjectID: project.ID, Mode: ModeMerge, Table: parseCSVTable(t, reworded),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.LaborUpdated)
	assert.Equal(t, 0, result.LaborInserted)
	require.Len(t, store.Labor, 1)
	for _, line := range store.Labor {
		assert.Equal(t, 8.0, line.PlannedHours)
		assert.Equal(t, "Rack assembly and cabling", line.Description)
	}
}

func TestImportEquipmentFileReplace(t *testing.T) {
	store := testutil.NewFakeStore()
	service := newTestService(store)
	ctx := context.Background()
	project := createTestProject(t, store)

	csv := "Item Type,Area,QTY,Model,Part Number\nEquipment,Office,2,Switch,SW-1\n"
	_, err := service.ImportEquipmentFile(ctx, ImportParams{
		ProjectID: project.ID, Mode: ModeAppend, Table: parseCSVTable(t, csv),
	})
	require.NoError(t, err)
	require.Len(t, store.Equipment, 2)

	replacement := "Item Type,Area,QTY,Model,Part Number\nEquipment,Office,1,Router,RT-1\n"
	result, err := service.ImportEquipmentFile(ctx, ImportParams{
		ProjectID: project.ID, Mode: ModeReplace, Table: parseCSVTable(t, replacement),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.EquipmentInserted)
	require.NotNil(t, result.LinkRestore)

	items, err := store.ListProjectEquipment(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, items, 1, "прежнее оборудование удалено полностью")
	assert.Equal(t, "RT-1", items[0].PartNumber)

	// Инвентарь старых экземпляров ушёл каскадом, новый создан заново.
	assert.Len(t, store.Inventory, 1)
}
