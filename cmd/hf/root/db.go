package root

import (
	"context"
	"log/slog"

	"habitflow/internal/storage"
	"habitflow/internal/store"
)

func openStore(ctx context.Context) (*store.Store, *storage.KV, func(), error) {
	path, err := storage.ResolveDBPath()
	if err != nil {
		return nil, nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	kv := storage.NewKV(db)
	st, err := store.Open(ctx, kv, slog.Default())
	if err != nil {
		cleanup()
		return nil, nil, nil, err
	}
	return st, kv, cleanup, nil
}
