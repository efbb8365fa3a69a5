package storage

import (
	"database/sql"
	"path/filepath"
	"testing"
)

func TestMigrateUpIsRepeatable(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := MigrateUp(db); err != nil {
		t.Fatalf("first migrate up failed: %v", err)
	}
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}
	if err := repo.PutSetting(t.Context(), Setting{Key: "filter", Value: "Open"}); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	if err := MigrateUp(db); err != nil {
		t.Fatalf("repeated migrate up failed: %v", err)
	}
	got, err := repo.GetSetting(t.Context(), "filter")
	if err != nil {
		t.Fatalf("get after repeated migrate failed: %v", err)
	}
	if got.Value != "Open" {
		t.Fatalf("expected rows to survive a repeated migrate, got %q", got.Value)
	}
}
