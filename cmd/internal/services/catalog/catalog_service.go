package catalog

import (
	"context"
	"strings"

	db "github.com/zhukovvlad/integrator-go/cmd/internal/db/sqlc"
	"github.com/zhukovvlad/integrator-go/cmd/internal/services/suppliers"
	"github.com/zhukovvlad/integrator-go/cmd/internal/util"
	"github.com/zhukovvlad/integrator-go/cmd/pkg/logging"
)

// CatalogService синхронизирует оборудование проекта с глобальным
// каталогом деталей и справочником поставщиков. Обе синхронизации
// работают по принципу best-effort: сбой одной позиции логируется и не
// мешает остальным.
type CatalogService struct {
	store     db.Store
	logger    *logging.Logger
	matcher   suppliers.Matcher
	threshold float64
}

func NewCatalogService(store db.Store, logger *logging.Logger, matcher suppliers.Matcher, threshold float64) *CatalogService {
	return &CatalogService{
		store:     store,
		logger:    logger,
		matcher:   matcher,
		threshold: threshold,
	}
}

// SyncGlobalParts приводит артикулы пакета импорта к глобальному каталогу:
// каждый уникальный артикул апсертится в global_parts, после чего ссылка
// на деталь каталога раздаётся всем записям пакета с этим артикулом.
// Возвращает число успешно синхронизированных артикулов.
func (s *CatalogService) SyncGlobalParts(ctx context.Context, projectID, batchID int64, equipment []db.ProjectEquipment) int {
	type partInfo struct {
		PartNumber   string
		Manufacturer string
		Description  string
	}
	parts := make(map[string]partInfo)
	for _, item := range equipment {
		normalized := strings.ToLower(strings.TrimSpace(item.PartNumber))
		if normalized == "" {
			continue
		}
		if _, ok := parts[normalized]; !ok {
			parts[normalized] = partInfo{
				PartNumber:   strings.TrimSpace(item.PartNumber),
				Manufacturer: item.Manufacturer,
				Description:  item.Description,
			}
		}
	}

	synced := 0
	for normalized, info := range parts {
		part, err := s.store.UpsertGlobalPart(ctx, db.UpsertGlobalPartParams{
			PartNumber:           info.PartNumber,
			NormalizedPartNumber: normalized,
			Manufacturer:         util.NullableText(info.Manufacturer),
			Description:          util.NullableText(info.Description),
		})
		if err != nil {
			s.logger.Warnf("не удалось синхронизировать артикул %q с каталогом: %v", info.PartNumber, err)
			continue
		}
		err = s.store.SetEquipmentGlobalPart(ctx, db.SetEquipmentGlobalPartParams{
			ProjectID:    projectID,
			BatchID:      util.NullableID(batchID),
			GlobalPartID: util.NullableID(part.ID),
			Lower:        normalized,
		})
		if err != nil {
			s.logger.Warnf("не удалось проставить ссылку на деталь каталога %q: %v", info.PartNumber, err)
			continue
		}
		synced++
	}
	return synced
}

// SyncSuppliers сопоставляет текстовые названия поставщиков из пакета
// импорта со справочником через сервис нечёткого сопоставления. Каждое
// уникальное название разрешается один раз, затем ссылка раздаётся всем
// записям оборудования и работ пакета с этим названием.
func (s *CatalogService) SyncSuppliers(ctx context.Context, projectID, batchID int64, equipment []db.ProjectEquipment, labor []db.LaborBudgetLine) int {
	names := make(map[string]bool)
	for _, item := range equipment {
		if name := strings.TrimSpace(item.SupplierName); name != "" {
			names[name] = true
		}
	}
	for _, line := range labor {
		if name := strings.TrimSpace(line.SupplierName); name != "" {
			names[name] = true
		}
	}

	synced := 0
	for name := range names {
		match, err := s.matcher.MatchOrCreate(ctx, name, s.threshold)
		if err != nil {
			s.logger.Warnf("не удалось сопоставить поставщика %q: %v", name, err)
			continue
		}
		if match.Created {
			s.logger.Infof("поставщик %q не найден в справочнике, создан новый (id=%d)", name, match.SupplierID)
		}

		err = s.store.SetEquipmentSupplier(ctx, db.SetEquipmentSupplierParams{
			ProjectID:    projectID,
			BatchID:      util.NullableID(batchID),
			SupplierID:   util.NullableID(match.SupplierID),
			SupplierName: name,
		})
		if err != nil {
			s.logger.Warnf("не удалось проставить поставщика %q оборудованию: %v", name, err)
			continue
		}
		err = s.store.SetLaborSupplier(ctx, db.SetLaborSupplierParams{
			ProjectID:    projectID,
			BatchID:      util.NullableID(batchID),
			SupplierID:   util.NullableID(match.SupplierID),
			SupplierName: name,
		})
		if err != nil {
			s.logger.Warnf("не удалось проставить поставщика %q строкам работ: %v", name, err)
			continue
		}
		synced++
	}
	return synced
}
