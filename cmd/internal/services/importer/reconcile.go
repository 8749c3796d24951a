package importer

import (
	"context"
	"fmt"
	"strings"

	db "github.com/zhukovvlad/integrator-go/cmd/internal/db/sqlc"
	"github.com/zhukovvlad/integrator-go/cmd/internal/services/apierrors"
)

// Mode определяет стратегию сверки импорта с уже сохранёнными данными.
type Mode string

const (
	// ModeReplace — полная замена: прежнее оборудование и работы проекта
	// удаляются, связи с точками подключения переносятся на новые записи.
	ModeReplace Mode = "replace"
	// ModeMerge — сверка по натуральному ключу: совпавшие записи
	// обновляются с сохранением закупочных полей, новые добавляются.
	ModeMerge Mode = "merge"
	// ModeAppend — только добавление, без удаления и сверки.
	ModeAppend Mode = "append"
)

// ParseMode разбирает режим импорта из пользовательского ввода.
func ParseMode(value string) (Mode, error) {
	switch mode := Mode(strings.ToLower(strings.TrimSpace(value))); mode {
	case ModeReplace, ModeMerge, ModeAppend:
		return mode, nil
	default:
		return "", apierrors.NewValidationError("неизвестный режим импорта: %q", value)
	}
}

// reconcileStats — итоги применения стратегии: счётчики для отчёта и
// записи, по которым затем синхронизируются каталог и поставщики.
type reconcileStats struct {
	EquipmentInserted int
	EquipmentUpdated  int
	LaborInserted     int
	LaborUpdated      int

	Equipment []db.ProjectEquipment
	Labor     []db.LaborBudgetLine
}

// mergeKey — ключ сверки в режиме Merge: натуральный ключ плюс номер
// экземпляра, чтобы одинаковые позиции в одной комнате сверялись попарно.
type mergeKey struct {
	EquipmentKey
	InstanceNumber int32
}

// executeReplace удаляет всё оборудование и работы проекта и вставляет
// свежие записи. Связи с точками подключения каскадно удаляются вместе с
// оборудованием, поэтому вызывающая сторона обязана снять их снимок до
// вызова.
func (s *EquipmentImportService) executeReplace(ctx context.Context, projectID int64, build buildResult) (reconcileStats, error) {
	stats := reconcileStats{}

	deleted, err := s.store.DeleteProjectEquipment(ctx, projectID)
	if err != nil {
		return stats, fmt.Errorf("не удалось удалить оборудование проекта %d: %w", projectID, err)
	}
	s.logger.Infof("режим replace: удалено %d записей оборудования проекта %d", deleted, projectID)

	if _, err := s.store.DeleteLaborBudgetLines(ctx, projectID); err != nil {
		return stats, fmt.Errorf("не удалось удалить строки работ проекта %d: %w", projectID, err)
	}

	if err := s.insertBuilt(ctx, build, &stats); err != nil {
		return stats, err
	}
	return stats, nil
}

// executeAppend вставляет записи, не трогая существующие.
func (s *EquipmentImportService) executeAppend(ctx context.Context, build buildResult) (reconcileStats, error) {
	stats := reconcileStats{}
	if err := s.insertBuilt(ctx, build, &stats); err != nil {
		return stats, err
	}
	return stats, nil
}

// executeMerge сверяет построенные записи с существующими. Совпавшее по
// ключу и номеру экземпляра оборудование обновляется на месте, при этом
// закупочные поля существующей записи переносятся в новую версию. Работы
// сверяются по типу и комнате: у совпавшей строки часы и ставка
// перезаписываются значениями из файла.
func (s *EquipmentImportService) executeMerge(ctx context.Context, projectID int64, build buildResult) (reconcileStats, error) {
	stats := reconcileStats{}

	existing, err := s.store.ListProjectEquipment(ctx, projectID)
	if err != nil {
		return stats, fmt.Errorf("не удалось получить оборудование проекта %d: %w", projectID, err)
	}
	existingByKey := make(map[mergeKey]db.ProjectEquipment, len(existing))
	for _, item := range existing {
		existingByKey[mergeKey{KeyForEquipment(item), item.InstanceNumber}] = item
	}

	pendingInsert := buildResult{Skipped: build.Skipped}
	for _, record := range build.Equipment {
		match, ok := existingByKey[mergeKey{record.Key, record.Params.InstanceNumber}]
		if !ok {
			pendingInsert.Equipment = append(pendingInsert.Equipment, record)
			continue
		}
		updated, err := s.store.UpdateEquipmentInstance(ctx, mergeUpdateParams(match, record.Params))
		if err != nil {
			return stats, fmt.Errorf("не удалось обновить оборудование %d: %w", match.ID, err)
		}
		stats.EquipmentUpdated++
		stats.Equipment = append(stats.Equipment, updated)
	}

	existingLabor, err := s.store.ListLaborBudgetLines(ctx, projectID)
	if err != nil {
		return stats, fmt.Errorf("не удалось получить строки работ проекта %d: %w", projectID, err)
	}
	laborByKey := make(map[laborLineKey]db.LaborBudgetLine, len(existingLabor))
	for _, line := range existingLabor {
		laborByKey[laborMergeKey(line.LaborType, line.RoomID.Int64)] = line
	}
	for _, params := range build.Labor {
		match, ok := laborByKey[laborMergeKey(params.LaborType, params.RoomID.Int64)]
		if !ok {
			pendingInsert.Labor = append(pendingInsert.Labor, params)
			continue
		}
		updated, err := s.store.UpdateLaborBudgetLine(ctx, db.UpdateLaborBudgetLineParams{
			ID:           match.ID,
			PlannedHours: params.PlannedHours,
			HourlyRate:   params.HourlyRate,
			Description:  params.Description,
			SupplierName: params.SupplierName,
			BatchID:      params.BatchID,
		})
		if err != nil {
			return stats, fmt.Errorf("не удалось обновить строку работ %d: %w", match.ID, err)
		}
		stats.LaborUpdated++
		stats.Labor = append(stats.Labor, updated)
	}

	if err := s.insertBuilt(ctx, pendingInsert, &stats); err != nil {
		return stats, err
	}
	return stats, nil
}

// insertBuilt вставляет построенные записи. Каждый экземпляр оборудования
// вместе со своей складской строкой пишется в одной транзакции, чтобы не
// оставлять оборудование без инвентаря.
func (s *EquipmentImportService) insertBuilt(ctx context.Context, build buildResult, stats *reconcileStats) error {
	for _, record := range build.Equipment {
		err := s.store.ExecTx(ctx, func(q db.Querier) error {
			inserted, err := q.CreateEquipmentInstance(ctx, record.Params)
			if err != nil {
				return err
			}
			if _, err := q.CreateEquipmentInventory(ctx, db.CreateEquipmentInventoryParams{
				EquipmentID:  inserted.ID,
				WarehouseTag: defaultWarehouseTag,
			}); err != nil {
				return err
			}
			stats.EquipmentInserted++
			stats.Equipment = append(stats.Equipment, inserted)
			return nil
		})
		if err != nil {
			return fmt.Errorf("не удалось вставить оборудование %q: %w", record.Params.InstanceName, err)
		}
	}

	for _, params := range build.Labor {
		inserted, err := s.store.CreateLaborBudgetLine(ctx, params)
		if err != nil {
			return fmt.Errorf("не удалось вставить строку работ %q: %w", params.LaborType, err)
		}
		stats.LaborInserted++
		stats.Labor = append(stats.Labor, inserted)
	}

	return nil
}

// defaultWarehouseTag — склад по умолчанию для свежесозданного инвентаря.
const defaultWarehouseTag = "main"

// mergeUpdateParams строит параметры обновления совпавшей записи:
// описательные поля берутся из файла, закупочные остаются из базы.
func mergeUpdateParams(existing db.ProjectEquipment, incoming db.CreateEquipmentInstanceParams) db.UpdateEquipmentInstanceParams {
	return db.UpdateEquipmentInstanceParams{
		ID:                existing.ID,
		PartNumber:        incoming.PartNumber,
		Manufacturer:      incoming.Manufacturer,
		Model:             incoming.Model,
		Description:       incoming.Description,
		EquipmentType:     incoming.EquipmentType,
		PlannedQuantity:   incoming.PlannedQuantity,
		UnitCost:          incoming.UnitCost,
		UnitPrice:         incoming.UnitPrice,
		SupplierName:      incoming.SupplierName,
		BatchID:           incoming.BatchID,
		InstanceNumber:    incoming.InstanceNumber,
		InstanceName:      incoming.InstanceName,
		ParentImportGroup: incoming.ParentImportGroup,
		Metadata:          incoming.Metadata,

		OrderedQuantity:      existing.OrderedQuantity,
		ReceivedQuantity:     existing.ReceivedQuantity,
		ReceivedDate:         existing.ReceivedDate,
		OrderedConfirmed:     existing.OrderedConfirmed,
		OrderedConfirmedBy:   existing.OrderedConfirmedBy,
		OrderedConfirmedAt:   existing.OrderedConfirmedAt,
		DeliveredConfirmed:   existing.DeliveredConfirmed,
		DeliveredConfirmedBy: existing.DeliveredConfirmedBy,
		DeliveredConfirmedAt: existing.DeliveredConfirmedAt,
		Installed:            existing.Installed,
		InstalledBy:          existing.InstalledBy,
		InstalledAt:          existing.InstalledAt,
	}
}

// laborLineKey адресует строку работ при сверке: переформулированное
// описание не считается новой позицией.
type laborLineKey struct {
	RoomID    int64
	LaborType string
}

func laborMergeKey(laborType string, roomID int64) laborLineKey {
	return laborLineKey{
		RoomID:    roomID,
		LaborType: strings.ToLower(laborType),
	}
}
