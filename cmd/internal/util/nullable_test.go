package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// ========== Тесты для Deref ==========

func TestDeref(t *testing.T) {
	t.Run("разыменование непустого указателя", func(t *testing.T) {
		str := "test string"
		result := Deref(&str)
		assert.Equal(t, "test string", result)
	})

	t.Run("разыменование nil указателя", func(t *testing.T) {
		result := Deref(nil)
		assert.Equal(t, "", result)
	})
}

// ========== Тесты для NullableString ==========

func TestNullableString(t *testing.T) {
	t.Run("валидная строка", func(t *testing.T) {
		str := "valid string"
		result := NullableString(&str)

		assert.True(t, result.Valid)
		assert.Equal(t, "valid string", result.String)
	})

	t.Run("nil указатель", func(t *testing.T) {
		result := NullableString(nil)

		assert.False(t, result.Valid)
	})

	t.Run("пустая строка", func(t *testing.T) {
		str := ""
		result := NullableString(&str)

		assert.False(t, result.Valid, "пустая строка должна быть невалидной")
	})
}

// ========== Тесты для NullableText ==========

func TestNullableText(t *testing.T) {
	t.Run("непустая строка", func(t *testing.T) {
		result := NullableText("Lutron")

		assert.True(t, result.Valid)
		assert.Equal(t, "Lutron", result.String)
	})

	t.Run("пустая строка считается NULL", func(t *testing.T) {
		result := NullableText("")

		assert.False(t, result.Valid)
	})
}

// ========== Тесты для NullableID ==========

func TestNullableID(t *testing.T) {
	t.Run("положительный идентификатор", func(t *testing.T) {
		result := NullableID(42)

		assert.True(t, result.Valid)
		assert.Equal(t, int64(42), result.Int64)
	})

	t.Run("нулевой идентификатор считается NULL", func(t *testing.T) {
		result := NullableID(0)

		assert.False(t, result.Valid)
	})
}

// ========== Тесты для NullableInt64 ==========

func TestNullableInt64(t *testing.T) {
	t.Run("валидное значение", func(t *testing.T) {
		v := int64(7)
		result := NullableInt64(&v)

		assert.True(t, result.Valid)
		assert.Equal(t, int64(7), result.Int64)
	})

	t.Run("nil указатель", func(t *testing.T) {
		result := NullableInt64(nil)

		assert.False(t, result.Valid)
	})
}

// ========== Тесты для NullableTime ==========

func TestNullableTime(t *testing.T) {
	t.Run("валидное время", func(t *testing.T) {
		now := time.Now()
		result := NullableTime(&now)

		assert.True(t, result.Valid)
		assert.Equal(t, now, result.Time)
	})

	t.Run("nil указатель", func(t *testing.T) {
		result := NullableTime(nil)

		assert.False(t, result.Valid)
	})
}
