package apierrors

import "fmt"

// ValidationError — ошибка валидации входных данных (некорректный режим
// импорта, нечитаемый файл, неверные параметры запроса). Обработчики
// отдают её клиенту как HTTP 400, в отличие от серверных ошибок (500).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError собирает ValidationError из форматной строки printf.
func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{
		Message: fmt.Sprintf(format, args...),
	}
}

// NotFoundError — запрошенный ресурс (проект, партия импорта, запись
// оборудования) не существует. Обработчики отдают её как HTTP 404.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// NewNotFoundError собирает NotFoundError из форматной строки printf.
func NewNotFoundError(format string, args ...interface{}) error {
	return &NotFoundError{
		Message: fmt.Sprintf(format, args...),
	}
}
