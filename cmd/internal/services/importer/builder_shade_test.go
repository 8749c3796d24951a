package importer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	db "github.com/zhukovvlad/integrator-go/cmd/internal/db/sqlc"
	"github.com/zhukovvlad/integrator-go/cmd/internal/tabular"
)

func shadeRow(cells map[string]string) normalizedRow {
	raw := tabular.Row{}
	for k, v := range cells {
		raw[k] = v
	}
	table := &tabular.Table{Rows: []tabular.Row{raw}}
	return normalizeRows(table)[0]
}

func TestBuildShadeCatalog(t *testing.T) {
	bctx := buildContext{ProjectID: 1, BatchID: 20}
	roomMap := testRoomMap(db.ProjectRoom{ID: 9, ProjectID: 1, Name: "Master Bedroom"})
	rows := []normalizedRow{
		shadeRow(map[string]string{
			"Area":            "Master Bedroom",
			"QTY":             "2",
			"Technology":      "Roller 64",
			"Product":         "Shade",
			"Product Details": "Blackout Roller Shade",
			"System Mount":    "Inside",
			"Fabric":          "Phifer 3000",
		}),
	}

	result := buildShadeCatalog(bctx, rows, roomMap, make(map[instanceKey]int32))

	require.Len(t, result.Equipment, 2)
	record := result.Equipment[0].Params

	assert.Equal(t, "Roller 64 Shade", record.PartNumber, "артикул собирается из технологии и продукта")
	assert.Equal(t, "Blackout Roller Shade", record.Model)
	assert.Equal(t, "part", record.EquipmentType)
	assert.Equal(t, int64(9), record.RoomID.Int64)

	var metadata map[string]string
	require.NoError(t, json.Unmarshal(record.Metadata, &metadata))
	assert.Equal(t, "Inside", metadata["system_mount"])
	assert.Equal(t, "Phifer 3000", metadata["fabric"])
	assert.Equal(t, "Roller 64", metadata["technology"])
}

func TestBuildShadeCatalogDefaults(t *testing.T) {
	bctx := buildContext{ProjectID: 1, BatchID: 20}
	rows := []normalizedRow{
		// Без количества и деталей: количество по умолчанию 1, модель
		// совпадает с артикулом.
		shadeRow(map[string]string{"Technology": "Drapery", "Product": "Track"}),
		// Ни технологии, ни продукта — строка пропускается.
		shadeRow(map[string]string{"Area": "Hall", "QTY": "3"}),
	}

	result := buildShadeCatalog(bctx, rows, testRoomMap(), make(map[instanceKey]int32))

	require.Len(t, result.Equipment, 1)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, "Drapery Track", result.Equipment[0].Params.PartNumber)
	assert.Equal(t, "Drapery Track", result.Equipment[0].Params.Model)
	assert.Equal(t, int32(1), result.Equipment[0].Params.InstanceNumber)
}
