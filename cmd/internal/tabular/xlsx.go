package tabular

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// parseXLSX читает первый лист книги. Данные берутся как отображаемые
// строки, формулы и форматирование excelize разворачивает сам.
func parseXLSX(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("книга не содержит листов")
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать лист %q: %w", sheets[0], err)
	}

	return buildTable(records)
}
