package importer

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	db "github.com/zhukovvlad/integrator-go/cmd/internal/db/sqlc"
)

func testRoomMap(rooms ...db.ProjectRoom) map[string]db.ProjectRoom {
	m := make(map[string]db.ProjectRoom, len(rooms))
	for _, room := range rooms {
		m[roomMatchKey(room.Name)] = room
	}
	return m
}

func TestBuildStandardExpandsQuantity(t *testing.T) {
	bctx := buildContext{ProjectID: 1, BatchID: 10, UserID: 7}
	roomMap := testRoomMap(db.ProjectRoom{ID: 5, ProjectID: 1, Name: "Living Room"})
	rows := []normalizedRow{
		{ItemType: "Equipment", RoomName: "Living Room", Quantity: 3, Brand: "Sony", Model: "XBR-55", PartNumber: "TV-55"},
	}

	result := buildStandard(bctx, rows, roomMap, make(map[instanceKey]int32))

	require.Len(t, result.Equipment, 3, "строка с количеством 3 должна породить 3 экземпляра")
	assert.Zero(t, result.Skipped)

	group := result.Equipment[0].Params.ParentImportGroup
	require.True(t, group.Valid)
	for i, record := range result.Equipment {
		assert.Equal(t, int32(i+1), record.Params.InstanceNumber)
		assert.Equal(t, int32(1), record.Params.PlannedQuantity)
		assert.Equal(t, group, record.Params.ParentImportGroup, "экземпляры одной строки делят parent_import_group")
		assert.Equal(t, int64(5), record.Params.RoomID.Int64)
	}
	assert.Equal(t, "Living Room - XBR-55 1", result.Equipment[0].Params.InstanceName)
	assert.Equal(t, "Living Room - XBR-55 3", result.Equipment[2].Params.InstanceName)
}

func TestBuildStandardNumberingContinuesAcrossRows(t *testing.T) {
	bctx := buildContext{ProjectID: 1, BatchID: 10}
	roomMap := testRoomMap(db.ProjectRoom{ID: 5, ProjectID: 1, Name: "Office"})
	rows := []normalizedRow{
		{ItemType: "Equipment", RoomName: "Office", Quantity: 2, Model: "Keypad"},
		{ItemType: "Equipment", RoomName: "Office", Quantity: 2, Model: "Keypad"},
	}

	result := buildStandard(bctx, rows, roomMap, make(map[instanceKey]int32))

	require.Len(t, result.Equipment, 4)
	numbers := []int32{}
	for _, record := range result.Equipment {
		numbers = append(numbers, record.Params.InstanceNumber)
	}
	assert.Equal(t, []int32{1, 2, 3, 4}, numbers, "нумерация продолжается между строками одной комнаты")

	// Разные строки файла получают разные группы импорта.
	assert.NotEqual(t, result.Equipment[0].Params.ParentImportGroup.UUID, result.Equipment[2].Params.ParentImportGroup.UUID)
}

func TestBuildStandardSkipRules(t *testing.T) {
	bctx := buildContext{ProjectID: 1, BatchID: 10}
	rows := []normalizedRow{
		{ItemType: "Equipment", RoomName: "Office", Quantity: 1},                  // ни модели, ни артикула
		{ItemType: "Equipment", RoomName: "Office", Quantity: 0, Model: "Switch"}, // нулевое количество
		{ItemType: "Equipment", RoomName: "Office", Quantity: 1, Model: "Keeper"}, // валидная
		{ItemType: "Labor", RoomName: "Office", Quantity: 0, Model: "Trim"},       // работы без часов
		{RoomName: "Office", Quantity: 2, Model: "Orphan Switch"},                 // без типа строки
		{ItemType: "Equipment", Quantity: 2, Model: "Orphan Switch"},             // без комнаты
	}

	result := buildStandard(bctx, rows, testRoomMap(), make(map[instanceKey]int32))

	assert.Equal(t, 5, result.Skipped)
	require.Len(t, result.Equipment, 1)
	assert.Equal(t, "Keeper", result.Equipment[0].Params.Name)
}

func TestBuildStandardNumberingScopedByPartNumber(t *testing.T) {
	bctx := buildContext{ProjectID: 1, BatchID: 10}
	roomMap := testRoomMap(db.ProjectRoom{ID: 5, ProjectID: 1, Name: "Office"})
	rows := []normalizedRow{
		{ItemType: "Equipment", RoomName: "Office", Quantity: 1, Model: "Switch 24 PoE", PartNumber: "AN-310"},
		{ItemType: "Equipment", RoomName: "Office", Quantity: 1, Model: "Switch 24", PartNumber: "AN-310"},
	}

	result := buildStandard(bctx, rows, roomMap, make(map[instanceKey]int32))

	require.Len(t, result.Equipment, 2)
	assert.Equal(t, int32(1), result.Equipment[0].Params.InstanceNumber)
	assert.Equal(t, int32(2), result.Equipment[1].Params.InstanceNumber,
		"строки с одним артикулом делят область нумерации независимо от модели")
}

func TestBuildStandardHeadendInstallSide(t *testing.T) {
	bctx := buildContext{ProjectID: 1, BatchID: 10}
	roomMap := testRoomMap(
		db.ProjectRoom{ID: 1, ProjectID: 1, Name: "Equipment Rack", IsHeadend: true},
		db.ProjectRoom{ID: 2, ProjectID: 1, Name: "Bedroom"},
	)
	rows := []normalizedRow{
		{ItemType: "Equipment", RoomName: "Equipment Rack", Quantity: 1, Model: "Core Switch"},
		{ItemType: "Equipment", RoomName: "Bedroom", Quantity: 1, Model: "Speaker"},
	}

	result := buildStandard(bctx, rows, roomMap, make(map[instanceKey]int32))

	require.Len(t, result.Equipment, 2)
	assert.Equal(t, "head_end", result.Equipment[0].Params.InstallSide)
	assert.Equal(t, "room_end", result.Equipment[1].Params.InstallSide)
}

func TestBuildStandardAggregatesLabor(t *testing.T) {
	bctx := buildContext{ProjectID: 1, BatchID: 10}
	roomMap := testRoomMap(db.ProjectRoom{ID: 3, ProjectID: 1, Name: "Theater"})
	rows := []normalizedRow{
		{ItemType: "Labor", RoomName: "Theater", Quantity: 4, Model: "Install", Description: "Rack work", UnitPrice: 95},
		{ItemType: "Labor", RoomName: "Theater", Quantity: 2, Model: "install", Description: "rack work", UnitPrice: 95},
		{ItemType: "Labor", RoomName: "Theater", Quantity: 3, Model: "Programming"},
	}

	result := buildStandard(bctx, rows, roomMap, make(map[instanceKey]int32))

	require.Len(t, result.Labor, 2, "одинаковые работы в одной комнате складываются")
	assert.Equal(t, 6.0, result.Labor[0].PlannedHours)
	assert.Equal(t, "install", result.Labor[0].LaborType)
	assert.Equal(t, 95.0, result.Labor[0].HourlyRate)
	assert.Equal(t, 3.0, result.Labor[1].PlannedHours)
}

func TestBuildStandardLaborTypeDefaultsToGeneral(t *testing.T) {
	bctx := buildContext{ProjectID: 1, BatchID: 10}
	rows := []normalizedRow{
		{ItemType: "Labor", RoomName: "Office", Quantity: 5, Description: "misc"},
	}

	result := buildStandard(bctx, rows, testRoomMap(), make(map[instanceKey]int32))

	require.Len(t, result.Labor, 1)
	assert.Equal(t, "general", result.Labor[0].LaborType)
}

func TestNewEquipmentKeyNormalization(t *testing.T) {
	key := NewEquipmentKey("  TV-55 ", sql.NullInt64{}, "", "  Sony XBR  ")

	assert.Equal(t, "tv-55", key.PartNumber)
	assert.Equal(t, int64(0), key.RoomID, "отсутствие комнаты кодируется нулём")
	assert.Equal(t, "room_end", key.InstallSide)
	assert.Equal(t, "sony xbr", key.Name)

	same := NewEquipmentKey("tv-55", sql.NullInt64{}, "room_end", "sony xbr")
	assert.Equal(t, key, same, "нормализованные ключи должны совпадать независимо от регистра и пробелов")
}
