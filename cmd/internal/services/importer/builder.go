package importer

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	db "github.com/zhukovvlad/integrator-go/cmd/internal/db/sqlc"
	"github.com/zhukovvlad/integrator-go/cmd/internal/util"
)

// instanceKey — область нумерации экземпляров: внутри одной комнаты и
// одного артикула счётчик растёт монотонно на протяжении всего импорта.
type instanceKey struct {
	Room string
	Part string
}

// builtEquipment — запись оборудования, готовая к сверке с базой.
type builtEquipment struct {
	Key    EquipmentKey
	Params db.CreateEquipmentInstanceParams
}

// buildResult — результат работы построителя: развёрнутые экземпляры
// оборудования, агрегированные строки работ и число пропущенных строк файла.
type buildResult struct {
	Equipment []builtEquipment
	Labor     []db.CreateLaborBudgetLineParams
	Skipped   int
}

// laborKey — ключ агрегации работ внутри файла: одинаковые работы в одной
// комнате складываются в одну строку бюджета.
type laborKey struct {
	Room        string
	LaborType   string
	Description string
}

// buildContext — общие параметры одного импорта, передаются построителям.
type buildContext struct {
	ProjectID int64
	BatchID   int64
	UserID    int64
}

// buildStandard разворачивает нормализованные строки стандартного формата
// в записи оборудования и работ. Строка без типа, без комнаты или с нулевым
// количеством пропускается. Строка с количеством N порождает N экземпляров
// с общим parent_import_group; счётчики нумерации передаются извне, чтобы
// несколько вызовов в рамках одного импорта продолжали нумерацию, а не
// начинали её заново.
func buildStandard(bctx buildContext, rows []normalizedRow, roomMap map[string]db.ProjectRoom, counters map[instanceKey]int32) buildResult {
	result := buildResult{}
	laborIndex := make(map[laborKey]int)

	for _, row := range rows {
		if row.ItemType == "" || row.RoomName == "" {
			result.Skipped++
			continue
		}
		if isLaborRow(row.ItemType) {
			if !appendLabor(bctx, row, roomMap, &result, laborIndex) {
				result.Skipped++
			}
			continue
		}

		displayName := row.Model
		if displayName == "" {
			displayName = row.PartNumber
		}
		if displayName == "" {
			result.Skipped++
			continue
		}
		quantity := int32(row.Quantity)
		if quantity <= 0 {
			result.Skipped++
			continue
		}

		roomID := sql.NullInt64{}
		roomName := ""
		installSide := defaultInstallSide
		if room, ok := roomMap[roomMatchKey(row.RoomName)]; ok && row.RoomName != "" {
			roomID = util.NullableID(room.ID)
			roomName = room.Name
			if room.IsHeadend {
				installSide = "head_end"
			}
		}

		// Область нумерации привязана к артикулу; имя используется,
		// только когда артикула в строке нет.
		partIdentity := row.PartNumber
		if partIdentity == "" {
			partIdentity = displayName
		}
		counterKey := instanceKey{Room: roomMatchKey(row.RoomName), Part: strings.ToLower(partIdentity)}
		group := uuid.NullUUID{UUID: uuid.New(), Valid: true}

		for n := int32(0); n < quantity; n++ {
			counters[counterKey]++
			number := counters[counterKey]
			params := db.CreateEquipmentInstanceParams{
				ProjectID:         bctx.ProjectID,
				RoomID:            roomID,
				BatchID:           util.NullableID(bctx.BatchID),
				Name:              displayName,
				PartNumber:        row.PartNumber,
				Manufacturer:      row.Brand,
				Model:             row.Model,
				Description:       row.Description,
				InstallSide:       installSide,
				EquipmentType:     equipmentTypeFor(row.ItemType),
				PlannedQuantity:   1,
				UnitCost:          row.UnitCost,
				UnitPrice:         row.UnitPrice,
				SupplierName:      row.Supplier,
				InstanceNumber:    number,
				InstanceName:      instanceName(roomName, displayName, number),
				ParentImportGroup: group,
				CreatedBy:         util.NullableID(bctx.UserID),
			}
			result.Equipment = append(result.Equipment, builtEquipment{
				Key:    NewEquipmentKey(row.PartNumber, roomID, installSide, displayName),
				Params: params,
			})
		}
	}

	return result
}

// appendLabor добавляет строку работ в результат, складывая часы
// одинаковых работ в одной комнате. Возвращает false, если строка
// непригодна и должна быть учтена как пропущенная.
func appendLabor(bctx buildContext, row normalizedRow, roomMap map[string]db.ProjectRoom, result *buildResult, laborIndex map[laborKey]int) bool {
	laborType := strings.ToLower(row.Model)
	if laborType == "" {
		laborType = "general"
	}
	if row.Quantity <= 0 {
		return false
	}

	roomID := sql.NullInt64{}
	if room, ok := roomMap[roomMatchKey(row.RoomName)]; ok && row.RoomName != "" {
		roomID = util.NullableID(room.ID)
	}

	key := laborKey{
		Room:        roomMatchKey(row.RoomName),
		LaborType:   laborType,
		Description: strings.ToLower(row.Description),
	}
	if idx, ok := laborIndex[key]; ok {
		result.Labor[idx].PlannedHours += row.Quantity
		return true
	}

	laborIndex[key] = len(result.Labor)
	result.Labor = append(result.Labor, db.CreateLaborBudgetLineParams{
		ProjectID:    bctx.ProjectID,
		RoomID:       roomID,
		BatchID:      util.NullableID(bctx.BatchID),
		LaborType:    laborType,
		Description:  row.Description,
		PlannedHours: row.Quantity,
		HourlyRate:   row.UnitPrice,
		SupplierName: row.Supplier,
	})
	return true
}

func isLaborRow(itemType string) bool {
	return strings.Contains(strings.ToLower(itemType), "labor")
}

// equipmentTypeFor сводит произвольный тип строки к допустимым значениям
// колонки equipment_type.
func equipmentTypeFor(itemType string) string {
	switch lowered := strings.ToLower(strings.TrimSpace(itemType)); lowered {
	case "fee", "service", "labor":
		return lowered
	default:
		return "part"
	}
}

// instanceName формирует человекочитаемое имя экземпляра:
// "Гостиная - Dish Pro 2". Без комнаты остаётся "Dish Pro 2".
func instanceName(roomName, displayName string, number int32) string {
	if roomName == "" {
		return fmt.Sprintf("%s %d", displayName, number)
	}
	return fmt.Sprintf("%s - %s %d", roomName, displayName, number)
}
