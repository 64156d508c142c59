package testutil

import (
	"context"

	"github.com/alexanderramin/quotabank/internal/repository"
)

// FailingPutUoW fails a write of one record key inside an otherwise real
// transaction, so tests can check that the whole cycle rolls back.
//
// Skip lets that many writes of Key through before failing; every other
// key always passes.
type FailingPutUoW struct {
	Inner repository.UnitOfWork
	Key   string
	Skip  int
	Err   error
}

func (u *FailingPutUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, s repository.Stores) error) error {
	return u.Inner.WithinTx(ctx, func(ctx context.Context, s repository.Stores) error {
		kv := &failingPut{KVStore: s.KV, key: u.Key, skip: u.Skip, err: u.Err}
		return fn(ctx, repository.StoresOver(kv))
	})
}

type failingPut struct {
	repository.KVStore
	key  string
	skip int
	seen int
	err  error
}

func (f *failingPut) Put(ctx context.Context, key, value string) error {
	if key == f.key {
		f.seen++
		if f.seen > f.skip {
			return f.err
		}
	}
	return f.KVStore.Put(ctx, key, value)
}
