package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
)

// parseCSV читает CSV целиком. Количество полей в строках может различаться:
// экспортеры нередко обрезают пустые хвостовые ячейки.
func parseCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("не удалось разобрать csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("файл пуст")
	}

	return buildTable(records)
}
