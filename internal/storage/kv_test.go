package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestKV(t *testing.T) *KV {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	db, err := Open(ctx, filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewKV(db)
}

func TestKVGetAbsent(t *testing.T) {
	kv := newTestKV(t)
	ctx := context.Background()

	v, ok, err := kv.Get(ctx, "missing")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok || v != "" {
		t.Fatalf("get absent = (%q, %v), want (\"\", false)", v, ok)
	}
}

func TestKVSetGetOverwrite(t *testing.T) {
	kv := newTestKV(t)
	ctx := context.Background()

	if err := kv.Set(ctx, "k", "v1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok, err := kv.Get(ctx, "k")
	if err != nil || !ok || v != "v1" {
		t.Fatalf("get = (%q, %v, %v), want (v1, true, nil)", v, ok, err)
	}

	if err := kv.Set(ctx, "k", "v2"); err != nil {
		t.Fatalf("set overwrite: %v", err)
	}
	v, _, err = kv.Get(ctx, "k")
	if err != nil || v != "v2" {
		t.Fatalf("get after overwrite = %q, want v2", v)
	}
}

func TestKVSetMany(t *testing.T) {
	kv := newTestKV(t)
	ctx := context.Background()

	err := kv.SetMany(ctx, map[string]string{"a": "1", "b": "2"})
	if err != nil {
		t.Fatalf("setmany: %v", err)
	}
	for key, want := range map[string]string{"a": "1", "b": "2"} {
		v, ok, err := kv.Get(ctx, key)
		if err != nil || !ok || v != want {
			t.Fatalf("get %q = (%q, %v, %v), want %q", key, v, ok, err, want)
		}
	}
}

func TestKVDeleteAbsent(t *testing.T) {
	kv := newTestKV(t)
	ctx := context.Background()

	if err := kv.Delete(ctx, "nothing"); err != nil {
		t.Fatalf("delete absent: %v", err)
	}
	if err := kv.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	_, ok, err := kv.Get(ctx, "k")
	if err != nil || ok {
		t.Fatalf("key survived delete")
	}
}
