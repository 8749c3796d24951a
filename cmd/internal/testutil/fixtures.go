package testutil

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// ProposalCSV собирает CSV-файл предложения стандартного формата из строк
// вида "Equipment,Living Room,2,Sony,XBR-55,TV-55,$1000,$1500".
func ProposalCSV(rows ...string) []byte {
	lines := append(
		[]string{"Item Type,Area,QTY,Brand,Model,Part Number,Cost,Sell Price"},
		rows...,
	)
	return []byte(strings.Join(lines, "\n") + "\n")
}

// ProposalXLSX собирает xlsx-файл предложения из матрицы ячеек, первая
// строка — заголовки.
func ProposalXLSX(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

// StandardProposalRows — типовой набор строк: оборудование с количеством,
// работы и строка с мусорным количеством.
func StandardProposalRows() []string {
	return []string{
		"Equipment,Living Room,2,Sony,XBR-55,TV-55,$1000,$1500",
		"Equipment,Network Closet,1,Araknis,Switch 24,AN-310,$600,$800",
		"Labor,Living Room,4,,Install,,,$95",
		"Equipment,Living Room,abc,Sony,Bracket,BR-1,,",
	}
}

// ShadeCatalogXLSX — маленький вендорский каталог штор с маркерными
// колонками Technology / Product / System Mount.
func ShadeCatalogXLSX(t *testing.T) []byte {
	t.Helper()
	return ProposalXLSX(t, [][]interface{}{
		{"Area", "QTY", "Technology", "Product", "Product Details", "System Mount", "Fabric"},
		{"Master Bedroom", 2, "Roller 64", "Shade", "Blackout Roller Shade", "Inside", "Phifer 3000"},
	})
}
