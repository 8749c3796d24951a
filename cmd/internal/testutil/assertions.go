package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	db "github.com/zhukovvlad/integrator-go/cmd/internal/db/sqlc"
)

// AssertJSONEqual сравнивает два JSON объекта независимо от порядка полей
func AssertJSONEqual(t *testing.T, expected, actual string) {
	t.Helper()

	var expectedJSON, actualJSON interface{}

	err := json.Unmarshal([]byte(expected), &expectedJSON)
	require.NoError(t, err, "Invalid expected JSON")

	err = json.Unmarshal([]byte(actual), &actualJSON)
	require.NoError(t, err, "Invalid actual JSON")

	assert.Equal(t, expectedJSON, actualJSON)
}

// AssertErrorContains проверяет, что ошибка содержит определенную подстроку
func AssertErrorContains(t *testing.T, err error, substring string) {
	t.Helper()

	require.Error(t, err, "Expected an error but got nil")
	assert.Contains(t, err.Error(), substring)
}

// AssertInstanceNumbers проверяет, что номера экземпляров оборудования
// идут в ожидаемом порядке.
func AssertInstanceNumbers(t *testing.T, items []db.ProjectEquipment, expected ...int32) {
	t.Helper()

	numbers := make([]int32, 0, len(items))
	for _, item := range items {
		numbers = append(numbers, item.InstanceNumber)
	}
	assert.Equal(t, expected, numbers)
}

// AssertBatchProcessed проверяет, что пакет импорта успешно закрыт.
func AssertBatchProcessed(t *testing.T, batch db.ImportBatch, processedRows int32) {
	t.Helper()

	assert.Equal(t, "processed", batch.Status)
	assert.Equal(t, processedRows, batch.ProcessedRows)
	assert.True(t, batch.CompletedAt.Valid, "у закрытого пакета должен быть completed_at")
}
