package importer

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/zhukovvlad/integrator-go/cmd/internal/api_models"
	db "github.com/zhukovvlad/integrator-go/cmd/internal/db/sqlc"
)

// CapturedLink — снимок связи точки подключения с оборудованием, снятый
// до удаления записей в режиме Replace. Хранит натуральный ключ и
// описательные поля старой записи: по ключу связь переносится на новое
// оборудование, описательные поля попадают в отчёт о неудачах.
type CapturedLink struct {
	WireDropID int64
	Quantity   int32
	Notes      string
	CreatedBy  sql.NullInt64

	Key           EquipmentKey
	PartNumber    string
	EquipmentName string
	InstallSide   string
	RoomID        sql.NullInt64
}

// CaptureWireDropLinks снимает снимок всех связей проекта до замены
// оборудования. Ошибка здесь прерывает импорт: терять связи молча нельзя.
func (s *EquipmentImportService) CaptureWireDropLinks(ctx context.Context, projectID int64) ([]CapturedLink, error) {
	rows, err := s.store.ListWireDropLinksForProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("не удалось снять снимок связей проекта %d: %w", projectID, err)
	}

	captured := make([]CapturedLink, 0, len(rows))
	for _, row := range rows {
		captured = append(captured, CapturedLink{
			WireDropID:    row.WireDropID,
			Quantity:      row.Quantity,
			Notes:         row.Notes,
			CreatedBy:     row.CreatedBy,
			Key:           NewEquipmentKey(row.PartNumber, row.RoomID, row.InstallSide, row.EquipmentName),
			PartNumber:    row.PartNumber,
			EquipmentName: row.EquipmentName,
			InstallSide:   row.InstallSide,
			RoomID:        row.RoomID,
		})
	}
	return captured, nil
}

// RestoreWireDropLinks переносит снятые связи на новое оборудование.
// Для каждого ключа выбирается экземпляр с наименьшим номером. Связи,
// для которых оборудование в новом файле отсутствует, попадают в список
// неудач с указанием причины; импорт при этом не прерывается. Вставка
// восстановленных связей идёт одной транзакцией: при её ошибке импорт
// продолжается, а все связи помечаются невосстановленными.
func (s *EquipmentImportService) RestoreWireDropLinks(ctx context.Context, captured []CapturedLink, equipment []db.ProjectEquipment) *api_models.LinkRestoreSummary {
	summary := &api_models.LinkRestoreSummary{}
	if len(captured) == 0 {
		return summary
	}

	targets := make(map[EquipmentKey]db.ProjectEquipment, len(equipment))
	for _, item := range equipment {
		key := KeyForEquipment(item)
		if current, ok := targets[key]; !ok || item.InstanceNumber < current.InstanceNumber {
			targets[key] = item
		}
	}

	pending := make([]db.CreateWireDropLinkParams, 0, len(captured))
	matched := make([]CapturedLink, 0, len(captured))
	for _, link := range captured {
		target, ok := targets[link.Key]
		if !ok {
			summary.Failed++
			summary.Failures = append(summary.Failures, linkFailure(link, "оборудование отсутствует в новой версии проекта"))
			continue
		}
		pending = append(pending, db.CreateWireDropLinkParams{
			WireDropID:  link.WireDropID,
			EquipmentID: target.ID,
			Quantity:    link.Quantity,
			Notes:       link.Notes,
			CreatedBy:   link.CreatedBy,
		})
		matched = append(matched, link)
	}

	if len(pending) == 0 {
		return summary
	}

	err := s.store.ExecTx(ctx, func(q db.Querier) error {
		for _, params := range pending {
			if _, err := q.CreateWireDropLink(ctx, params); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Errorf("не удалось восстановить связи точек подключения: %v", err)
		summary.Failed += len(matched)
		for _, link := range matched {
			summary.Failures = append(summary.Failures, linkFailure(link, "ошибка вставки восстановленной связи"))
		}
		return summary
	}

	summary.Restored = len(pending)
	return summary
}

func linkFailure(link CapturedLink, reason string) api_models.LinkRestoreFailure {
	failure := api_models.LinkRestoreFailure{
		WireDropID:    link.WireDropID,
		PartNumber:    link.PartNumber,
		EquipmentName: link.EquipmentName,
		InstallSide:   link.InstallSide,
		Reason:        reason,
	}
	if link.RoomID.Valid {
		failure.RoomID = link.RoomID.Int64
	}
	return failure
}
