package api_models

import "time"

// ImportResult — итог одного запуска импорта оборудования.
// Возвращается хендлером импорта как есть.
type ImportResult struct {
	BatchID           int64  `json:"batch_id"`
	Mode              string `json:"mode"`
	FileName          string `json:"file_name"`
	TotalRows         int    `json:"total_rows"`
	SkippedRows       int    `json:"skipped_rows"`
	EquipmentInserted int    `json:"equipment_inserted"`
	EquipmentUpdated  int    `json:"equipment_updated"`
	LaborInserted     int    `json:"labor_inserted"`
	LaborUpdated      int    `json:"labor_updated"`
	RoomsCreated      int    `json:"rooms_created"`

	// LinkRestore заполняется только в режиме replace: итог восстановления
	// связей wire-drop -> оборудование после уничтожающего переимпорта.
	LinkRestore *LinkRestoreSummary `json:"link_restore,omitempty"`
}

// LinkRestoreSummary — результат фазы восстановления связей.
// Каждая связь, существовавшая до импорта, либо восстановлена,
// либо присутствует в Failures. Третьего не дано.
type LinkRestoreSummary struct {
	Restored int                  `json:"restored"`
	Failed   int                  `json:"failed"`
	Failures []LinkRestoreFailure `json:"failures"`
}

// LinkRestoreFailure описывает одну связь, которую не удалось восстановить.
// Поля идентичности старого оборудования сохранены, чтобы оператор мог
// вручную привязать wire-drop заново.
type LinkRestoreFailure struct {
	WireDropID    int64  `json:"wire_drop_id"`
	PartNumber    string `json:"part_number"`
	EquipmentName string `json:"equipment_name"`
	InstallSide   string `json:"install_side"`
	RoomID        int64  `json:"room_id,omitempty"`
	Reason        string `json:"reason"`
}

// ImportBatchResponse — строка журнала импортов для API.
type ImportBatchResponse struct {
	ID            int64      `json:"id"`
	ProjectID     int64      `json:"project_id"`
	FileName      string     `json:"file_name"`
	ImportMode    string     `json:"import_mode"`
	TotalRows     int32      `json:"total_rows"`
	ProcessedRows int32      `json:"processed_rows"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

// EquipmentResponse — представление единицы оборудования для API.
type EquipmentResponse struct {
	ID                int64   `json:"id"`
	ProjectID         int64   `json:"project_id"`
	RoomID            *int64  `json:"room_id,omitempty"`
	Name              string  `json:"name"`
	PartNumber        string  `json:"part_number"`
	Manufacturer      string  `json:"manufacturer"`
	Model             string  `json:"model"`
	InstallSide       string  `json:"install_side"`
	EquipmentType     string  `json:"equipment_type"`
	PlannedQuantity   int32   `json:"planned_quantity"`
	UnitCost          float64 `json:"unit_cost"`
	UnitPrice         float64 `json:"unit_price"`
	SupplierName      string  `json:"supplier_name,omitempty"`
	InstanceNumber    int32   `json:"instance_number"`
	InstanceName      string  `json:"instance_name"`
	ParentImportGroup string  `json:"parent_import_group,omitempty"`
}

// StatsResponse — ответ /api/stats.
type StatsResponse struct {
	ProjectsCount  int64 `json:"projects_count"`
	EquipmentCount int64 `json:"equipment_count"`
	BatchesCount   int64 `json:"batches_count"`
}
