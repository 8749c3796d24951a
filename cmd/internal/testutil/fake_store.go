package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	db "github.com/zhukovvlad/integrator-go/cmd/internal/db/sqlc"
)

// FakeStore — подменная реализация db.Store в памяти для тестов конвейера
// импорта. Повторяет контрактные особенности реальных запросов: каскадное
// удаление инвентаря и связей вместе с оборудованием, апсерты по
// нормализованным ключам, массовые обновления ссылок по пакету импорта.
//
// Поля Err* позволяют форсировать ошибку соответствующего запроса, чтобы
// проверять деградацию конвейера.
type FakeStore struct {
	Projects  map[int64]db.Project
	Rooms     map[int64]db.ProjectRoom
	Aliases   map[int64]db.RoomAlias
	Equipment map[int64]db.ProjectEquipment
	Inventory map[int64]db.EquipmentInventory
	Labor     map[int64]db.LaborBudgetLine
	Batches   map[int64]db.ImportBatch
	WireDrops map[int64]db.WireDrop
	Links     map[int64]db.WireDropEquipmentLink
	Parts     map[int64]db.GlobalPart
	Suppliers map[int64]db.Supplier

	ErrCreateWireDropLink error
	ErrCreateProjectRoom  error
	ErrUpsertRoomAlias    error
	ErrUpsertGlobalPart   error

	nextID int64
}

var _ db.Store = (*FakeStore)(nil)

func NewFakeStore() *FakeStore {
	return &FakeStore{
		Projects:  make(map[int64]db.Project),
		Rooms:     make(map[int64]db.ProjectRoom),
		Aliases:   make(map[int64]db.RoomAlias),
		Equipment: make(map[int64]db.ProjectEquipment),
		Inventory: make(map[int64]db.EquipmentInventory),
		Labor:     make(map[int64]db.LaborBudgetLine),
		Batches:   make(map[int64]db.ImportBatch),
		WireDrops: make(map[int64]db.WireDrop),
		Links:     make(map[int64]db.WireDropEquipmentLink),
		Parts:     make(map[int64]db.GlobalPart),
		Suppliers: make(map[int64]db.Supplier),
	}
}

func (s *FakeStore) id() int64 {
	s.nextID++
	return s.nextID
}

// ExecTx выполняет колбэк без настоящей транзакции: откат в памяти не
// эмулируется, тесты проверяют итоговое состояние при успехе и подсчёт
// неудач при форсированной ошибке.
func (s *FakeStore) ExecTx(_ context.Context, fn func(db.Querier) error) error {
	return fn(s)
}

func (s *FakeStore) CreateProject(_ context.Context, arg db.CreateProjectParams) (db.Project, error) {
	project := db.Project{ID: s.id(), Name: arg.Name, ClientName: arg.ClientName, CreatedAt: time.Now()}
	s.Projects[project.ID] = project
	return project, nil
}

func (s *FakeStore) GetProject(_ context.Context, id int64) (db.Project, error) {
	project, ok := s.Projects[id]
	if !ok {
		return db.Project{}, sql.ErrNoRows
	}
	return project, nil
}

func (s *FakeStore) GetDashboardStats(_ context.Context) (db.GetDashboardStatsRow, error) {
	return db.GetDashboardStatsRow{
		ProjectsCount:  int64(len(s.Projects)),
		EquipmentCount: int64(len(s.Equipment)),
		BatchesCount:   int64(len(s.Batches)),
	}, nil
}

func (s *FakeStore) CreateImportBatch(_ context.Context, arg db.CreateImportBatchParams) (db.ImportBatch, error) {
	batch := db.ImportBatch{
		ID:         s.id(),
		ProjectID:  arg.ProjectID,
		FileName:   arg.FileName,
		ImportMode: arg.ImportMode,
		TotalRows:  arg.TotalRows,
		Status:     "pending",
		CreatedAt:  time.Now(),
	}
	s.Batches[batch.ID] = batch
	return batch, nil
}

func (s *FakeStore) CompleteImportBatch(_ context.Context, arg db.CompleteImportBatchParams) (db.ImportBatch, error) {
	batch, ok := s.Batches[arg.ID]
	if !ok {
		return db.ImportBatch{}, sql.ErrNoRows
	}
	batch.ProcessedRows = arg.ProcessedRows
	batch.Status = arg.Status
	batch.CompletedAt = sql.NullTime{Time: time.Now(), Valid: true}
	s.Batches[arg.ID] = batch
	return batch, nil
}

func (s *FakeStore) GetImportBatch(_ context.Context, id int64) (db.ImportBatch, error) {
	batch, ok := s.Batches[id]
	if !ok {
		return db.ImportBatch{}, sql.ErrNoRows
	}
	return batch, nil
}

func (s *FakeStore) ListImportBatchesForProject(_ context.Context, projectID int64) ([]db.ImportBatch, error) {
	batches := []db.ImportBatch{}
	for _, batch := range s.Batches {
		if batch.ProjectID == projectID {
			batches = append(batches, batch)
		}
	}
	sort.Slice(batches, func(i, j int) bool { return batches[i].ID > batches[j].ID })
	return batches, nil
}

func (s *FakeStore) CreateProjectRoom(_ context.Context, arg db.CreateProjectRoomParams) (db.ProjectRoom, error) {
	if s.ErrCreateProjectRoom != nil {
		return db.ProjectRoom{}, s.ErrCreateProjectRoom
	}
	room := db.ProjectRoom{
		ID:        s.id(),
		ProjectID: arg.ProjectID,
		Name:      arg.Name,
		IsHeadend: arg.IsHeadend,
		Notes:     arg.Notes,
		CreatedAt: time.Now(),
	}
	s.Rooms[room.ID] = room
	return room, nil
}

func (s *FakeStore) ListProjectRooms(_ context.Context, projectID int64) ([]db.ProjectRoom, error) {
	rooms := []db.ProjectRoom{}
	for _, room := range s.Rooms {
		if room.ProjectID == projectID {
			rooms = append(rooms, room)
		}
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].ID < rooms[j].ID })
	return rooms, nil
}

func (s *FakeStore) UpsertRoomAlias(_ context.Context, arg db.UpsertRoomAliasParams) (db.RoomAlias, error) {
	if s.ErrUpsertRoomAlias != nil {
		return db.RoomAlias{}, s.ErrUpsertRoomAlias
	}
	for id, alias := range s.Aliases {
		if alias.ProjectID == arg.ProjectID && alias.NormalizedAlias == arg.NormalizedAlias {
			alias.RoomID = arg.RoomID
			alias.Alias = arg.Alias
			s.Aliases[id] = alias
			return alias, nil
		}
	}
	alias := db.RoomAlias{
		ID:              s.id(),
		ProjectID:       arg.ProjectID,
		RoomID:          arg.RoomID,
		Alias:           arg.Alias,
		NormalizedAlias: arg.NormalizedAlias,
		CreatedAt:       time.Now(),
	}
	s.Aliases[alias.ID] = alias
	return alias, nil
}

func (s *FakeStore) CreateEquipmentInstance(_ context.Context, arg db.CreateEquipmentInstanceParams) (db.ProjectEquipment, error) {
	item := db.ProjectEquipment{
		ID:                s.id(),
		ProjectID:         arg.ProjectID,
		RoomID:            arg.RoomID,
		BatchID:           arg.BatchID,
		Name:              arg.Name,
		PartNumber:        arg.PartNumber,
		Manufacturer:      arg.Manufacturer,
		Model:             arg.Model,
		Description:       arg.Description,
		InstallSide:       arg.InstallSide,
		EquipmentType:     arg.EquipmentType,
		PlannedQuantity:   arg.PlannedQuantity,
		UnitCost:          arg.UnitCost,
		UnitPrice:         arg.UnitPrice,
		SupplierName:      arg.SupplierName,
		InstanceNumber:    arg.InstanceNumber,
		InstanceName:      arg.InstanceName,
		ParentImportGroup: arg.ParentImportGroup,
		Metadata:          arg.Metadata,
		CreatedBy:         arg.CreatedBy,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}
	s.Equipment[item.ID] = item
	return item, nil
}

func (s *FakeStore) UpdateEquipmentInstance(_ context.Context, arg db.UpdateEquipmentInstanceParams) (db.ProjectEquipment, error) {
	item, ok := s.Equipment[arg.ID]
	if !ok {
		return db.ProjectEquipment{}, sql.ErrNoRows
	}
	item.PartNumber = arg.PartNumber
	item.Manufacturer = arg.Manufacturer
	item.Model = arg.Model
	item.Description = arg.Description
	item.EquipmentType = arg.EquipmentType
	item.PlannedQuantity = arg.PlannedQuantity
	item.UnitCost = arg.UnitCost
	item.UnitPrice = arg.UnitPrice
	item.SupplierName = arg.SupplierName
	item.BatchID = arg.BatchID
	item.InstanceNumber = arg.InstanceNumber
	item.InstanceName = arg.InstanceName
	item.ParentImportGroup = arg.ParentImportGroup
	item.Metadata = arg.Metadata
	item.OrderedQuantity = arg.OrderedQuantity
	item.ReceivedQuantity = arg.ReceivedQuantity
	item.ReceivedDate = arg.ReceivedDate
	item.OrderedConfirmed = arg.OrderedConfirmed
	item.OrderedConfirmedBy = arg.OrderedConfirmedBy
	item.OrderedConfirmedAt = arg.OrderedConfirmedAt
	item.DeliveredConfirmed = arg.DeliveredConfirmed
	item.DeliveredConfirmedBy = arg.DeliveredConfirmedBy
	item.DeliveredConfirmedAt = arg.DeliveredConfirmedAt
	item.Installed = arg.Installed
	item.InstalledBy = arg.InstalledBy
	item.InstalledAt = arg.InstalledAt
	item.UpdatedAt = time.Now()
	s.Equipment[arg.ID] = item
	return item, nil
}

// DeleteProjectEquipment удаляет оборудование проекта вместе с инвентарём
// и связями, как это делают каскадные внешние ключи.
func (s *FakeStore) DeleteProjectEquipment(_ context.Context, projectID int64) (int64, error) {
	deleted := int64(0)
	for id, item := range s.Equipment {
		if item.ProjectID != projectID {
			continue
		}
		delete(s.Equipment, id)
		deleted++
		for invID, inv := range s.Inventory {
			if inv.EquipmentID == id {
				delete(s.Inventory, invID)
			}
		}
		for linkID, link := range s.Links {
			if link.EquipmentID == id {
				delete(s.Links, linkID)
			}
		}
	}
	return deleted, nil
}

func (s *FakeStore) ListProjectEquipment(_ context.Context, projectID int64) ([]db.ProjectEquipment, error) {
	items := []db.ProjectEquipment{}
	for _, item := range s.Equipment {
		if item.ProjectID == projectID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (s *FakeStore) CreateEquipmentInventory(_ context.Context, arg db.CreateEquipmentInventoryParams) (db.EquipmentInventory, error) {
	if _, ok := s.Equipment[arg.EquipmentID]; !ok {
		return db.EquipmentInventory{}, fmt.Errorf("нарушение внешнего ключа: оборудование %d не существует", arg.EquipmentID)
	}
	inv := db.EquipmentInventory{
		ID:           s.id(),
		EquipmentID:  arg.EquipmentID,
		WarehouseTag: arg.WarehouseTag,
		CreatedAt:    time.Now(),
	}
	s.Inventory[inv.ID] = inv
	return inv, nil
}

func (s *FakeStore) SetEquipmentGlobalPart(_ context.Context, arg db.SetEquipmentGlobalPartParams) error {
	for id, item := range s.Equipment {
		if item.ProjectID == arg.ProjectID && item.BatchID == arg.BatchID &&
			strings.ToLower(strings.TrimSpace(item.PartNumber)) == arg.Lower {
			item.GlobalPartID = arg.GlobalPartID
			s.Equipment[id] = item
		}
	}
	return nil
}

func (s *FakeStore) SetEquipmentSupplier(_ context.Context, arg db.SetEquipmentSupplierParams) error {
	for id, item := range s.Equipment {
		if item.ProjectID == arg.ProjectID && item.BatchID == arg.BatchID && item.SupplierName == arg.SupplierName {
			item.SupplierID = arg.SupplierID
			s.Equipment[id] = item
		}
	}
	return nil
}

func (s *FakeStore) CreateLaborBudgetLine(_ context.Context, arg db.CreateLaborBudgetLineParams) (db.LaborBudgetLine, error) {
	line := db.LaborBudgetLine{
		ID:           s.id(),
		ProjectID:    arg.ProjectID,
		RoomID:       arg.RoomID,
		BatchID:      arg.BatchID,
		LaborType:    arg.LaborType,
		Description:  arg.Description,
		PlannedHours: arg.PlannedHours,
		HourlyRate:   arg.HourlyRate,
		SupplierName: arg.SupplierName,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	s.Labor[line.ID] = line
	return line, nil
}

func (s *FakeStore) UpdateLaborBudgetLine(_ context.Context, arg db.UpdateLaborBudgetLineParams) (db.LaborBudgetLine, error) {
	line, ok := s.Labor[arg.ID]
	if !ok {
		return db.LaborBudgetLine{}, sql.ErrNoRows
	}
	line.PlannedHours = arg.PlannedHours
	line.HourlyRate = arg.HourlyRate
	line.Description = arg.Description
	line.SupplierName = arg.SupplierName
	line.BatchID = arg.BatchID
	line.UpdatedAt = time.Now()
	s.Labor[arg.ID] = line
	return line, nil
}

func (s *FakeStore) DeleteLaborBudgetLines(_ context.Context, projectID int64) (int64, error) {
	deleted := int64(0)
	for id, line := range s.Labor {
		if line.ProjectID == projectID {
			delete(s.Labor, id)
			deleted++
		}
	}
	return deleted, nil
}

func (s *FakeStore) ListLaborBudgetLines(_ context.Context, projectID int64) ([]db.LaborBudgetLine, error) {
	lines := []db.LaborBudgetLine{}
	for _, line := range s.Labor {
		if line.ProjectID == projectID {
			lines = append(lines, line)
		}
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].ID < lines[j].ID })
	return lines, nil
}

func (s *FakeStore) SetLaborSupplier(_ context.Context, arg db.SetLaborSupplierParams) error {
	for id, line := range s.Labor {
		if line.ProjectID == arg.ProjectID && line.BatchID == arg.BatchID && line.SupplierName == arg.SupplierName {
			line.SupplierID = arg.SupplierID
			s.Labor[id] = line
		}
	}
	return nil
}

func (s *FakeStore) CreateWireDrop(_ context.Context, arg db.CreateWireDropParams) (db.WireDrop, error) {
	drop := db.WireDrop{
		ID:        s.id(),
		ProjectID: arg.ProjectID,
		Name:      arg.Name,
		Location:  arg.Location,
		CreatedAt: time.Now(),
	}
	s.WireDrops[drop.ID] = drop
	return drop, nil
}

func (s *FakeStore) CreateWireDropLink(_ context.Context, arg db.CreateWireDropLinkParams) (db.WireDropEquipmentLink, error) {
	if s.ErrCreateWireDropLink != nil {
		return db.WireDropEquipmentLink{}, s.ErrCreateWireDropLink
	}
	link := db.WireDropEquipmentLink{
		ID:          s.id(),
		WireDropID:  arg.WireDropID,
		EquipmentID: arg.EquipmentID,
		Quantity:    arg.Quantity,
		Notes:       arg.Notes,
		CreatedBy:   arg.CreatedBy,
		CreatedAt:   time.Now(),
	}
	s.Links[link.ID] = link
	return link, nil
}

func (s *FakeStore) ListWireDropLinksForProject(_ context.Context, projectID int64) ([]db.ListWireDropLinksForProjectRow, error) {
	rows := []db.ListWireDropLinksForProjectRow{}
	for _, link := range s.Links {
		item, ok := s.Equipment[link.EquipmentID]
		if !ok || item.ProjectID != projectID {
			continue
		}
		rows = append(rows, db.ListWireDropLinksForProjectRow{
			ID:            link.ID,
			WireDropID:    link.WireDropID,
			EquipmentID:   link.EquipmentID,
			Quantity:      link.Quantity,
			Notes:         link.Notes,
			CreatedBy:     link.CreatedBy,
			PartNumber:    item.PartNumber,
			RoomID:        item.RoomID,
			InstallSide:   item.InstallSide,
			EquipmentName: item.Name,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })
	return rows, nil
}

func (s *FakeStore) UpsertGlobalPart(_ context.Context, arg db.UpsertGlobalPartParams) (db.GlobalPart, error) {
	if s.ErrUpsertGlobalPart != nil {
		return db.GlobalPart{}, s.ErrUpsertGlobalPart
	}
	for id, part := range s.Parts {
		if part.NormalizedPartNumber == arg.NormalizedPartNumber {
			if arg.Manufacturer.Valid {
				part.Manufacturer = arg.Manufacturer
			}
			if arg.Description.Valid {
				part.Description = arg.Description
			}
			part.UpdatedAt = time.Now()
			s.Parts[id] = part
			return part, nil
		}
	}
	part := db.GlobalPart{
		ID:                   s.id(),
		PartNumber:           arg.PartNumber,
		NormalizedPartNumber: arg.NormalizedPartNumber,
		Manufacturer:         arg.Manufacturer,
		Description:          arg.Description,
		CreatedAt:            time.Now(),
		UpdatedAt:            time.Now(),
	}
	s.Parts[part.ID] = part
	return part, nil
}

func (s *FakeStore) CreateSupplier(_ context.Context, arg db.CreateSupplierParams) (db.Supplier, error) {
	for _, supplier := range s.Suppliers {
		if supplier.NormalizedName == arg.NormalizedName {
			return supplier, nil
		}
	}
	supplier := db.Supplier{
		ID:             s.id(),
		Name:           arg.Name,
		NormalizedName: arg.NormalizedName,
		CreatedAt:      time.Now(),
	}
	s.Suppliers[supplier.ID] = supplier
	return supplier, nil
}
