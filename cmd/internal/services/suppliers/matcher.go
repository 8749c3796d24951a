package suppliers

import "context"

// MatchResult — ответ сервиса сопоставления поставщиков.
type MatchResult struct {
	SupplierID int64   `json:"supplier_id"`
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
	Created    bool    `json:"created"`
}

//go:generate mockgen -source=matcher.go -destination=mocks/matcher_mock.go -package=mocks

// Matcher — внешняя способность нечеткого сопоставления поставщиков.
// Реализация получает свободный текст названия и порог схожести, возвращает
// найденную или только что созданную запись поставщика. Сам движок импорта
// нечетким сравнением строк не занимается.
type Matcher interface {
	MatchOrCreate(ctx context.Context, name string, threshold float64) (MatchResult, error)
}
