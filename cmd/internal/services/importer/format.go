package importer

import "strings"

// Format определяет стратегию построения записей из файла импорта.
type Format string

const (
	// FormatStandard — универсальный каталог оборудования/работ (по умолчанию).
	FormatStandard Format = "standard"
	// FormatShadeCatalog — вендорский каталог штор/автоматики.
	FormatShadeCatalog Format = "vendor-catalog"
)

// Маркеры вендорского каталога. Формат выбирается только если присутствуют
// все три одновременно.
var shadeCatalogMarkers = []string{"Technology", "Product", "System Mount"}

// DetectFormat выбирает стратегию разбора по сырому тексту файла.
// Побочных эффектов нет; при отсутствии маркеров всегда возвращается
// FormatStandard.
func DetectFormat(text string) Format {
	for _, marker := range shadeCatalogMarkers {
		if !strings.Contains(text, marker) {
			return FormatStandard
		}
	}
	return FormatShadeCatalog
}
