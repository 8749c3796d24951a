package importer

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	db "github.com/zhukovvlad/integrator-go/cmd/internal/db/sqlc"
)

// Ключевые слова, по которым комната распознаётся как аппаратная.
var headendKeywords = []string{"network", "head", "equipment", "rack", "structured", "mda", "server"}

// roomMatchKey — ключ сопоставления названий комнат: нижний регистр,
// знаки препинания заменяются пробелами, пробелы схлопываются. Благодаря
// этому "Living-Room" и "living  room" попадают в одну комнату.
func roomMatchKey(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// normalizeAlias — нормализованная форма псевдонима: нижний регистр и
// схлопнутые пробелы, пунктуация сохраняется.
func normalizeAlias(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// isHeadendName определяет по названию, относится ли комната к стойкам
// и аппаратным.
func isHeadendName(name string) bool {
	lowered := strings.ToLower(name)
	for _, keyword := range headendKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

// resolveRooms сопоставляет названия комнат из файла с комнатами проекта.
// Недостающие комнаты создаются, а написания, отличающиеся от канонического
// имени комнаты, фиксируются как псевдонимы. Возвращает карту
// "ключ сопоставления -> комната" и число созданных комнат.
//
// Ошибка чтения или создания комнаты прерывает импорт: без карты комнат
// дальнейшая сборка записей бессмысленна. Ошибка записи псевдонима лишь
// логируется — повторный импорт восстановит его.
func (s *EquipmentImportService) resolveRooms(ctx context.Context, projectID int64, rows []normalizedRow) (map[string]db.ProjectRoom, int, error) {
	existing, err := s.store.ListProjectRooms(ctx, projectID)
	if err != nil {
		return nil, 0, fmt.Errorf("не удалось получить комнаты проекта %d: %w", projectID, err)
	}

	roomMap := make(map[string]db.ProjectRoom, len(existing))
	for _, room := range existing {
		roomMap[roomMatchKey(room.Name)] = room
	}

	// Сначала собираем недостающие названия, затем создаём их одной
	// пачкой в транзакции: либо появляются все комнаты, либо ни одной.
	var missing []string
	seenMissing := make(map[string]bool)
	for _, row := range rows {
		if row.RoomName == "" {
			continue
		}
		matchKey := roomMatchKey(row.RoomName)
		if matchKey == "" {
			continue
		}
		if _, ok := roomMap[matchKey]; ok || seenMissing[matchKey] {
			continue
		}
		seenMissing[matchKey] = true
		missing = append(missing, row.RoomName)
	}

	var createdRooms []db.ProjectRoom
	if len(missing) > 0 {
		err = s.store.ExecTx(ctx, func(q db.Querier) error {
			for _, name := range missing {
				room, err := q.CreateProjectRoom(ctx, db.CreateProjectRoomParams{
					ProjectID: projectID,
					Name:      name,
					IsHeadend: isHeadendName(name),
				})
				if err != nil {
					return fmt.Errorf("не удалось создать комнату %q: %w", name, err)
				}
				createdRooms = append(createdRooms, room)
			}
			return nil
		})
		if err != nil {
			return nil, 0, err
		}
	}
	for _, room := range createdRooms {
		roomMap[roomMatchKey(room.Name)] = room
	}

	s.recordRoomAliases(ctx, projectID, rows, roomMap)

	return roomMap, len(createdRooms), nil
}

// recordRoomAliases сохраняет альтернативные написания комнат, которые
// встретились в файле. Каждый псевдоним пишется не более одного раза за
// импорт; ошибки не прерывают конвейер.
func (s *EquipmentImportService) recordRoomAliases(ctx context.Context, projectID int64, rows []normalizedRow, roomMap map[string]db.ProjectRoom) {
	seen := make(map[string]bool)
	for _, row := range rows {
		if row.RoomName == "" {
			continue
		}
		room, ok := roomMap[roomMatchKey(row.RoomName)]
		if !ok {
			continue
		}
		alias := normalizeAlias(row.RoomName)
		if alias == normalizeAlias(room.Name) || seen[alias] {
			continue
		}
		seen[alias] = true
		_, err := s.store.UpsertRoomAlias(ctx, db.UpsertRoomAliasParams{
			ProjectID:       projectID,
			RoomID:          room.ID,
			Alias:           row.RoomName,
			NormalizedAlias: alias,
		})
		if err != nil {
			s.logger.Warnf("не удалось сохранить псевдоним комнаты %q: %v", row.RoomName, err)
		}
	}
}
