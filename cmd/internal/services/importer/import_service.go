package importer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/zhukovvlad/integrator-go/cmd/internal/api_models"
	db "github.com/zhukovvlad/integrator-go/cmd/internal/db/sqlc"
	"github.com/zhukovvlad/integrator-go/cmd/internal/services/apierrors"
	"github.com/zhukovvlad/integrator-go/cmd/internal/services/catalog"
	"github.com/zhukovvlad/integrator-go/cmd/internal/tabular"
	"github.com/zhukovvlad/integrator-go/cmd/pkg/logging"
)

// Статус успешно завершённого пакета в журнале import_batches.
// Прерванный импорт оставляет пакет в статусе pending.
const batchStatusProcessed = "processed"

// EquipmentImportService — конвейер импорта оборудования: нормализация
// строк файла, сопоставление комнат, развёртывание количеств в отдельные
// экземпляры, сверка с базой по выбранной стратегии и восстановление
// связей с точками подключения.
type EquipmentImportService struct {
	store   db.Store
	logger  *logging.Logger
	catalog *catalog.CatalogService
}

func NewEquipmentImportService(store db.Store, logger *logging.Logger, catalogService *catalog.CatalogService) *EquipmentImportService {
	return &EquipmentImportService{
		store:   store,
		logger:  logger,
		catalog: catalogService,
	}
}

// ImportParams — параметры одного запуска импорта.
type ImportParams struct {
	ProjectID int64
	FileName  string
	Mode      Mode
	UserID    int64
	Table     *tabular.Table
}

// ImportEquipmentFile выполняет полный конвейер импорта файла.
//
// Ошибки делятся на два класса. Ошибки записи оборудования и работ
// прерывают импорт; пакет при этом остаётся в статусе pending, чтобы
// оператор видел незавершённый запуск. Сбои второстепенных фаз — псевдонимы
// комнат, синхронизация каталога и поставщиков, восстановление отдельных
// связей — логируются и деградируют до частичного результата.
func (s *EquipmentImportService) ImportEquipmentFile(ctx context.Context, params ImportParams) (*api_models.ImportResult, error) {
	if params.ProjectID <= 0 {
		return nil, apierrors.NewValidationError("не указан идентификатор проекта")
	}
	if params.Table == nil || len(params.Table.Rows) == 0 {
		return nil, apierrors.NewValidationError("файл импорта пуст")
	}

	project, err := s.store.GetProject(ctx, params.ProjectID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apierrors.NewNotFoundError("проект %d не найден", params.ProjectID)
		}
		return nil, fmt.Errorf("не удалось получить проект %d: %w", params.ProjectID, err)
	}

	batch, err := s.store.CreateImportBatch(ctx, db.CreateImportBatchParams{
		ProjectID:  project.ID,
		FileName:   params.FileName,
		ImportMode: string(params.Mode),
		TotalRows:  int32(len(params.Table.Rows)),
	})
	if err != nil {
		return nil, fmt.Errorf("не удалось создать пакет импорта: %w", err)
	}

	format := DetectFormat(params.Table.HeaderText())
	s.logger.Infof("импорт %q: проект %d, режим %s, формат %s, строк %d",
		params.FileName, project.ID, params.Mode, format, len(params.Table.Rows))

	rows := normalizeRows(params.Table)

	roomMap, roomsCreated, err := s.resolveRooms(ctx, project.ID, rows)
	if err != nil {
		return nil, err
	}

	bctx := buildContext{ProjectID: project.ID, BatchID: batch.ID, UserID: params.UserID}
	counters := make(map[instanceKey]int32)
	var build buildResult
	if format == FormatShadeCatalog {
		build = buildShadeCatalog(bctx, rows, roomMap, counters)
	} else {
		build = buildStandard(bctx, rows, roomMap, counters)
	}

	var captured []CapturedLink
	if params.Mode == ModeReplace {
		captured, err = s.CaptureWireDropLinks(ctx, project.ID)
		if err != nil {
			return nil, err
		}
	}

	var stats reconcileStats
	switch params.Mode {
	case ModeReplace:
		stats, err = s.executeReplace(ctx, project.ID, build)
	case ModeMerge:
		stats, err = s.executeMerge(ctx, project.ID, build)
	case ModeAppend:
		stats, err = s.executeAppend(ctx, build)
	default:
		return nil, apierrors.NewValidationError("неизвестный режим импорта: %q", params.Mode)
	}
	if err != nil {
		return nil, err
	}

	result := &api_models.ImportResult{
		BatchID:           batch.ID,
		Mode:              string(params.Mode),
		FileName:          params.FileName,
		TotalRows:         len(params.Table.Rows),
		SkippedRows:       build.Skipped,
		EquipmentInserted: stats.EquipmentInserted,
		EquipmentUpdated:  stats.EquipmentUpdated,
		LaborInserted:     stats.LaborInserted,
		LaborUpdated:      stats.LaborUpdated,
		RoomsCreated:      roomsCreated,
	}

	if params.Mode == ModeReplace {
		result.LinkRestore = s.RestoreWireDropLinks(ctx, captured, stats.Equipment)
	}

	if s.catalog != nil {
		partsSynced := s.catalog.SyncGlobalParts(ctx, project.ID, batch.ID, stats.Equipment)
		suppliersSynced := s.catalog.SyncSuppliers(ctx, project.ID, batch.ID, stats.Equipment, stats.Labor)
		s.logger.Infof("импорт %q: каталог синхронизирован (артикулов %d, поставщиков %d)",
			params.FileName, partsSynced, suppliersSynced)
	}

	processed := int32(len(params.Table.Rows) - build.Skipped)
	if _, err := s.store.CompleteImportBatch(ctx, db.CompleteImportBatchParams{
		ID:            batch.ID,
		ProcessedRows: processed,
		Status:        batchStatusProcessed,
	}); err != nil {
		s.logger.Errorf("не удалось закрыть пакет импорта %d: %v", batch.ID, err)
	}

	return result, nil
}
