package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// Stores are the record stores bound to one connection or transaction.
type Stores struct {
	KV     KVStore
	Config ConfigRepo
	State  StateRepo
}

// NewStores binds the record stores to conn.
func NewStores(conn DBTX) Stores {
	return StoresOver(NewSQLiteKVStore(conn))
}

// StoresOver builds the config and state repositories on top of kv.
func StoresOver(kv KVStore) Stores {
	return Stores{
		KV:     kv,
		Config: NewKVConfigRepo(kv),
		State:  NewKVStateRepo(kv),
	}
}

// UnitOfWork runs one read-compute-write cycle over the stored records.
// Either every write made through the Stores lands or none does.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, s Stores) error) error
}

// SQLiteUnitOfWork runs each cycle in a database/sql transaction.
type SQLiteUnitOfWork struct {
	db *sql.DB
}

func NewSQLiteUnitOfWork(db *sql.DB) *SQLiteUnitOfWork {
	return &SQLiteUnitOfWork{db: db}
}

func (u *SQLiteUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, s Stores) error) error {
	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := fn(ctx, NewStores(tx)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	committed = true
	return nil
}
