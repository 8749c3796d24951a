package util

import (
	"database/sql"
	"time"
)

// Deref безопасно разыменовывает *string. Для nil возвращает пустую строку.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// NullableString преобразует *string в sql.NullString.
// Пустая строка ("") также будет считаться NULL для базы данных.
func NullableString(s *string) sql.NullString {
	if s == nil || *s == "" { // Если указатель nil ИЛИ строка пустая
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: *s, Valid: true}
}

// NullableText преобразует строку в sql.NullString: пустая строка
// считается NULL. Вариант NullableString для значений, а не указателей.
func NullableText(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}

// NullableInt64 преобразует *int64 в sql.NullInt64.
// Может пригодиться для nullable внешних ключей или других bigint полей.
func NullableInt64(i *int64) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{Valid: false}
	}
	return sql.NullInt64{Int64: *i, Valid: true}
}

// NullableID преобразует идентификатор в sql.NullInt64, считая 0 отсутствием
// значения. Подходит для внешних ключей, где 0 никогда не является валидным ID.
func NullableID(id int64) sql.NullInt64 {
	if id == 0 {
		return sql.NullInt64{Valid: false}
	}
	return sql.NullInt64{Int64: id, Valid: true}
}

// NullableTime преобразует *time.Time в sql.NullTime.
func NullableTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
