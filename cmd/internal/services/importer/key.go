package importer

import (
	"database/sql"
	"strings"

	db "github.com/zhukovvlad/integrator-go/cmd/internal/db/sqlc"
)

// defaultInstallSide используется, когда сторона установки не задана.
const defaultInstallSide = "room_end"

// EquipmentKey — составной натуральный ключ единицы оборудования внутри
// проекта. По нему сверяются записи при Merge и восстанавливаются связи
// с точками подключения после Replace.
type EquipmentKey struct {
	PartNumber  string
	RoomID      int64
	InstallSide string
	Name        string
}

// NewEquipmentKey нормализует компоненты ключа: артикул и название
// приводятся к нижнему регистру без крайних пробелов, отсутствие комнаты
// кодируется нулём, пустая сторона установки заменяется значением по
// умолчанию.
func NewEquipmentKey(partNumber string, roomID sql.NullInt64, installSide, name string) EquipmentKey {
	side := strings.TrimSpace(installSide)
	if side == "" {
		side = defaultInstallSide
	}
	key := EquipmentKey{
		PartNumber:  strings.ToLower(strings.TrimSpace(partNumber)),
		InstallSide: side,
		Name:        strings.ToLower(strings.TrimSpace(name)),
	}
	if roomID.Valid {
		key.RoomID = roomID.Int64
	}
	return key
}

// KeyForEquipment строит ключ по сохранённой записи оборудования.
func KeyForEquipment(equipment db.ProjectEquipment) EquipmentKey {
	return NewEquipmentKey(
		equipment.PartNumber,
		equipment.RoomID,
		equipment.InstallSide,
		equipment.Name,
	)
}
