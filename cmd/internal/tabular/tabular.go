// Package tabular читает табличные файлы импорта (xlsx, csv) и отдает
// данные в виде упорядоченных строк, где каждая строка — отображение
// "заголовок столбца -> сырое значение ячейки".
package tabular

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Row — одна строка данных, ключи — заголовки столбцов (с обрезанными пробелами).
type Row map[string]string

// Table — результат разбора файла.
type Table struct {
	Headers []string
	Rows    []Row
}

// HeaderText возвращает заголовки одной строкой. Используется детектором
// формата, которому нужен только текст шапки.
func (t *Table) HeaderText() string {
	return strings.Join(t.Headers, "\t")
}

// Get возвращает значение столбца по заголовку (без учета регистра).
func (r Row) Get(header string) string {
	if v, ok := r[header]; ok {
		return v
	}
	lower := strings.ToLower(header)
	for k, v := range r {
		if strings.ToLower(k) == lower {
			return v
		}
	}
	return ""
}

// Parse разбирает файл по расширению: .xlsx через excelize, все остальное
// трактуется как CSV. Первая непустая строка считается шапкой, полностью
// пустые строки данных пропускаются.
func Parse(filename string, r io.Reader) (*Table, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".xlsx", ".xlsm":
		return parseXLSX(r)
	default:
		return parseCSV(r)
	}
}

// buildTable собирает Table из сырой матрицы ячеек.
func buildTable(records [][]string) (*Table, error) {
	headerIdx := -1
	for i, rec := range records {
		if !isBlank(rec) {
			headerIdx = i
			break
		}
	}
	if headerIdx == -1 {
		return nil, fmt.Errorf("файл не содержит строки заголовков")
	}

	headers := make([]string, len(records[headerIdx]))
	for i, h := range records[headerIdx] {
		headers[i] = strings.TrimSpace(h)
	}

	table := &Table{Headers: headers}
	for _, rec := range records[headerIdx+1:] {
		if isBlank(rec) {
			continue
		}
		row := make(Row, len(headers))
		for i, h := range headers {
			if h == "" {
				continue
			}
			if i < len(rec) {
				row[h] = rec[i]
			} else {
				row[h] = ""
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

func isBlank(rec []string) bool {
	for _, cell := range rec {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
