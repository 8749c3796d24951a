package importer

import (
	"database/sql"
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	db "github.com/zhukovvlad/integrator-go/cmd/internal/db/sqlc"
	"github.com/zhukovvlad/integrator-go/cmd/internal/util"
)

// Вендорские колонки каталога штор, попадающие в metadata.
var shadeMetadataHeaders = []string{
	"Technology",
	"Product",
	"System Mount",
	"Fabric",
	"Battery Power",
	"Roll Direction",
	"Hembar",
	"Control Type",
}

// buildShadeCatalog разворачивает строки вендорского каталога штор.
// Артикул собирается из технологии и продукта, модель берётся из
// детального описания, вендорские характеристики складываются в metadata.
// Тип оборудования всегда part: в каталогах штор нет строк работ.
func buildShadeCatalog(bctx buildContext, rows []normalizedRow, roomMap map[string]db.ProjectRoom, counters map[instanceKey]int32) buildResult {
	result := buildResult{}

	for _, row := range rows {
		technology := normalizeString(pickColumn(row.raw, []string{"Technology"}))
		product := normalizeString(pickColumn(row.raw, []string{"Product"}))
		if technology == "" && product == "" {
			result.Skipped++
			continue
		}
		partNumber := strings.TrimSpace(technology + " " + product)

		model := normalizeString(pickColumn(row.raw, []string{"Product Details"}))
		if model == "" {
			model = partNumber
		}

		quantity := int32(row.Quantity)
		if quantity <= 0 {
			quantity = 1
		}

		roomID := sql.NullInt64{}
		roomName := ""
		if room, ok := roomMap[roomMatchKey(row.RoomName)]; ok && row.RoomName != "" {
			roomID = util.NullableID(room.ID)
			roomName = room.Name
		}

		metadata := shadeMetadata(row)
		counterKey := instanceKey{Room: roomMatchKey(row.RoomName), Part: strings.ToLower(partNumber)}
		group := uuid.NullUUID{UUID: uuid.New(), Valid: true}

		for n := int32(0); n < quantity; n++ {
			counters[counterKey]++
			number := counters[counterKey]
			result.Equipment = append(result.Equipment, builtEquipment{
				Key: NewEquipmentKey(partNumber, roomID, defaultInstallSide, model),
				Params: db.CreateEquipmentInstanceParams{
					ProjectID:         bctx.ProjectID,
					RoomID:            roomID,
					BatchID:           util.NullableID(bctx.BatchID),
					Name:              model,
					PartNumber:        partNumber,
					Manufacturer:      row.Brand,
					Model:             model,
					Description:       row.Description,
					InstallSide:       defaultInstallSide,
					EquipmentType:     "part",
					PlannedQuantity:   1,
					UnitCost:          row.UnitCost,
					UnitPrice:         row.UnitPrice,
					SupplierName:      row.Supplier,
					InstanceNumber:    number,
					InstanceName:      instanceName(roomName, model, number),
					ParentImportGroup: group,
					Metadata:          metadata,
					CreatedBy:         util.NullableID(bctx.UserID),
				},
			})
		}
	}

	return result
}

// shadeMetadata собирает непустые вендорские характеристики строки в
// JSON-мешок. Возвращает nil, если характеристик нет.
func shadeMetadata(row normalizedRow) json.RawMessage {
	bag := make(map[string]string)
	for _, header := range shadeMetadataHeaders {
		if value := strings.TrimSpace(row.raw.Get(header)); value != "" {
			key := strings.ReplaceAll(strings.ToLower(header), " ", "_")
			bag[key] = value
		}
	}
	if len(bag) == 0 {
		return nil
	}
	encoded, err := json.Marshal(bag)
	if err != nil {
		return nil
	}
	return encoded
}
