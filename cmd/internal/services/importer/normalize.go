package importer

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/zhukovvlad/integrator-go/cmd/internal/tabular"
)

// Варианты заголовков стандартного формата. Сопоставление идёт без учёта
// регистра, берётся первая непустая ячейка из подходящей колонки.
var (
	itemTypeHeaders    = []string{"Item Type", "Type", "Category"}
	roomHeaders        = []string{"Area", "Room", "Location"}
	quantityHeaders    = []string{"QTY", "Quantity", "Qty"}
	brandHeaders       = []string{"Brand", "Manufacturer", "Make"}
	modelHeaders       = []string{"Model", "Name", "Item"}
	partNumberHeaders  = []string{"Part Number", "Part #", "SKU", "Model Number"}
	descriptionHeaders = []string{"Description", "Short Description", "Notes"}
	supplierHeaders    = []string{"Supplier", "Vendor", "Dealer"}
	costHeaders        = []string{"Cost", "Unit Cost", "Dealer Price"}
	priceHeaders       = []string{"Sell Price", "Price", "Unit Price", "MSRP"}
)

// normalizedRow — строка файла после нормализации: строки обрезаны,
// числа приведены к неотрицательным значениям. Исходная строка сохраняется
// для форматов с дополнительными колонками.
type normalizedRow struct {
	ItemType    string
	RoomName    string
	Quantity    float64
	Brand       string
	Model       string
	PartNumber  string
	Description string
	Supplier    string
	UnitCost    float64
	UnitPrice   float64

	raw tabular.Row
}

// normalizeRows приводит табличные строки к единому виду. Строки с пустыми
// ключевыми полями здесь не отбрасываются: решение о пропуске принимает
// конкретный построитель.
func normalizeRows(table *tabular.Table) []normalizedRow {
	rows := make([]normalizedRow, 0, len(table.Rows))
	for _, raw := range table.Rows {
		rows = append(rows, normalizedRow{
			ItemType:    normalizeString(pickColumn(raw, itemTypeHeaders)),
			RoomName:    normalizeString(pickColumn(raw, roomHeaders)),
			Quantity:    parseQuantity(pickColumn(raw, quantityHeaders)),
			Brand:       normalizeString(pickColumn(raw, brandHeaders)),
			Model:       normalizeString(pickColumn(raw, modelHeaders)),
			PartNumber:  normalizeString(pickColumn(raw, partNumberHeaders)),
			Description: normalizeString(pickColumn(raw, descriptionHeaders)),
			Supplier:    normalizeString(pickColumn(raw, supplierHeaders)),
			UnitCost:    parseMoney(pickColumn(raw, costHeaders)),
			UnitPrice:   parseMoney(pickColumn(raw, priceHeaders)),
			raw:         raw,
		})
	}
	return rows
}

func pickColumn(row tabular.Row, headers []string) string {
	for _, header := range headers {
		if value := row.Get(header); strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

// normalizeString обрезает пробелы; пустая строка остаётся пустой и ниже
// по конвейеру превращается в NULL.
func normalizeString(value string) string {
	return strings.TrimSpace(value)
}

// parseMoney разбирает денежную ячейку: валютные символы и разделители
// тысяч отбрасываются, мусор приводится к нулю, а не к ошибке импорта.
func parseMoney(value string) float64 {
	cleaned := strings.NewReplacer("$", "", "€", "", "£", "", "%", "", ",", "", " ", "").Replace(strings.TrimSpace(value))
	if cleaned == "" {
		return 0
	}
	parsed, err := decimal.NewFromString(cleaned)
	if err != nil || parsed.IsNegative() {
		return 0
	}
	result, _ := parsed.Float64()
	return result
}

// parseQuantity разбирает количество тем же способом, что и деньги:
// любое невалидное или отрицательное значение превращается в ноль.
func parseQuantity(value string) float64 {
	return parseMoney(value)
}
