package importer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	db "github.com/zhukovvlad/integrator-go/cmd/internal/db/sqlc"
	"github.com/zhukovvlad/integrator-go/cmd/internal/testutil"
	"github.com/zhukovvlad/integrator-go/cmd/pkg/logging"
)

func newTestService(store db.Store) *EquipmentImportService {
	return NewEquipmentImportService(store, logging.GetLogger(), nil)
}

func TestResolveRoomsCreatesMissing(t *testing.T) {
	store := testutil.NewFakeStore()
	project, err := store.CreateProject(context.Background(), db.CreateProjectParams{Name: "Дом", ClientName: "Иванов"})
	require.NoError(t, err)

	service := newTestService(store)
	rows := []normalizedRow{
		{RoomName: "Living Room"},
		{RoomName: "Network Closet"},
		{RoomName: "living room"}, // то же, что и первая
	}

	roomMap, created, err := service.resolveRooms(context.Background(), project.ID, rows)
	require.NoError(t, err)

	assert.Equal(t, 2, created)
	assert.Len(t, roomMap, 2)
	assert.True(t, roomMap[roomMatchKey("Network Closet")].IsHeadend, "комната со словом network должна стать аппаратной")
	assert.False(t, roomMap[roomMatchKey("Living Room")].IsHeadend)
}

func TestResolveRoomsIdempotent(t *testing.T) {
	store := testutil.NewFakeStore()
	project, err := store.CreateProject(context.Background(), db.CreateProjectParams{Name: "Дом", ClientName: "Иванов"})
	require.NoError(t, err)

	service := newTestService(store)
	rows := []normalizedRow{{RoomName: "Office"}, {RoomName: "Theater"}}

	_, created, err := service.resolveRooms(context.Background(), project.ID, rows)
	require.NoError(t, err)
	assert.Equal(t, 2, created)

	// Повторный импорт того же файла не плодит дублей.
	_, created, err = service.resolveRooms(context.Background(), project.ID, rows)
	require.NoError(t, err)
	assert.Equal(t, 0, created)
	assert.Len(t, store.Rooms, 2)
}

func TestResolveRoomsRecordsAliases(t *testing.T) {
	store := testutil.NewFakeStore()
	ctx := context.Background()
	project, err := store.CreateProject(ctx, db.CreateProjectParams{Name: "Дом", ClientName: "Иванов"})
	require.NoError(t, err)
	room, err := store.CreateProjectRoom(ctx, db.CreateProjectRoomParams{ProjectID: project.ID, Name: "Living Room"})
	require.NoError(t, err)

	service := newTestService(store)
	// Дефис сопоставляется с пробелом, но как написание отличается от
	// канонического имени — фиксируем псевдоним.
	rows := []normalizedRow{{RoomName: "Living-Room"}, {RoomName: "Living-Room"}}

	roomMap, created, err := service.resolveRooms(ctx, project.ID, rows)
	require.NoError(t, err)

	assert.Equal(t, 0, created, "существующая комната не создаётся заново")
	assert.Equal(t, room.ID, roomMap[roomMatchKey("Living-Room")].ID)
	require.Len(t, store.Aliases, 1, "одинаковые написания дают один псевдоним")
	for _, alias := range store.Aliases {
		assert.Equal(t, room.ID, alias.RoomID)
		assert.Equal(t, "living-room", alias.NormalizedAlias)
	}
}

func TestResolveRoomsAliasErrorDoesNotAbort(t *testing.T) {
	store := testutil.NewFakeStore()
	ctx := context.Background()
	project, err := store.CreateProject(ctx, db.CreateProjectParams{Name: "Дом", ClientName: "Иванов"})
	require.NoError(t, err)
	_, err = store.CreateProjectRoom(ctx, db.CreateProjectRoomParams{ProjectID: project.ID, Name: "Living Room"})
	require.NoError(t, err)

	store.ErrUpsertRoomAlias = assert.AnError
	service := newTestService(store)

	roomMap, _, err := service.resolveRooms(ctx, project.ID, []normalizedRow{{RoomName: "Living-Room"}})
	require.NoError(t, err, "сбой записи псевдонима не прерывает импорт")
	assert.Len(t, roomMap, 1)
}

func TestResolveRoomsCreateErrorAborts(t *testing.T) {
	store := testutil.NewFakeStore()
	ctx := context.Background()
	project, err := store.CreateProject(ctx, db.CreateProjectParams{Name: "Дом", ClientName: "Иванов"})
	require.NoError(t, err)

	store.ErrCreateProjectRoom = assert.AnError
	service := newTestService(store)

	_, _, err = service.resolveRooms(ctx, project.ID, []normalizedRow{{RoomName: "Office"}, {RoomName: "Theater"}})
	require.Error(t, err, "сбой создания комнаты прерывает импорт")
	assert.Empty(t, store.Rooms, "пачка комнат не применяется частично")
}

func TestRoomMatchKey(t *testing.T) {
	assert.Equal(t, roomMatchKey("Living Room"), roomMatchKey("living-room"))
	assert.Equal(t, roomMatchKey("Office  #2"), roomMatchKey("office 2"))
	assert.NotEqual(t, roomMatchKey("Office"), roomMatchKey("Office 2"))
}
