package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func setupRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := OpenSQLite(filepath.Join(t.TempDir(), "settings-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestSettingPutGetAndOverwrite(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	at := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)

	if err := repo.PutSetting(ctx, Setting{Key: "filter", Value: "All", UpdatedAt: at}); err != nil {
		t.Fatalf("put setting: %v", err)
	}
	got, err := repo.GetSetting(ctx, "filter")
	if err != nil {
		t.Fatalf("get setting: %v", err)
	}
	if got.Value != "All" || !got.UpdatedAt.Equal(at) {
		t.Fatalf("unexpected setting: %#v", got)
	}

	if err := repo.PutSetting(ctx, Setting{Key: "filter", Value: "Done", UpdatedAt: at.Add(time.Minute)}); err != nil {
		t.Fatalf("overwrite setting: %v", err)
	}
	got, err = repo.GetSetting(ctx, "filter")
	if err != nil {
		t.Fatalf("get overwritten setting: %v", err)
	}
	if got.Value != "Done" {
		t.Fatalf("expected overwritten value Done, got %q", got.Value)
	}
}

func TestSettingNotFound(t *testing.T) {
	repo := setupRepo(t)
	if _, err := repo.GetSetting(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSettingDefaultsUpdatedAt(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	before := time.Now().Add(-time.Second)
	if err := repo.PutSetting(ctx, Setting{Key: "filter", Value: "Open"}); err != nil {
		t.Fatalf("put setting: %v", err)
	}
	got, err := repo.GetSetting(ctx, "filter")
	if err != nil {
		t.Fatalf("get setting: %v", err)
	}
	if got.Key != "filter" || got.Value != "Open" || got.UpdatedAt.Before(before) {
		t.Fatalf("unexpected setting: %#v", got)
	}
}
