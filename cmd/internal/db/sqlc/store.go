package db

import (
	"context"
	"database/sql"
	"fmt"
)

// Store предоставляет все функции для выполнения запросов и транзакций.
// Колбэк ExecTx получает Querier, привязанный к открытой транзакции.
type Store interface {
	Querier
	ExecTx(ctx context.Context, fn func(Querier) error) error
}

// SQLStore реализует Store поверх database/sql.
type SQLStore struct {
	db *sql.DB
	*Queries
}

// NewStore создает новый Store.
func NewStore(db *sql.DB) Store {
	return &SQLStore{
		db:      db,
		Queries: New(db),
	}
}

// ExecTx выполняет функцию fn внутри одной транзакции.
// При ошибке транзакция откатывается; ошибка отката присоединяется к исходной.
func (store *SQLStore) ExecTx(ctx context.Context, fn func(Querier) error) error {
	tx, err := store.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	q := New(tx)
	if err := fn(q); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx err: %v, rb err: %v", err, rbErr)
		}
		return err
	}

	return tx.Commit()
}
