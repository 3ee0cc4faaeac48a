package storage

import (
	"context"
	"path/filepath"
	"testing"

	"meeting-task-extractor/config"
	"meeting-task-extractor/pkg/log"
)

func TestOpenSQLite(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{
		Storage: config.StorageConfig{Driver: config.StorageDriverSQLite},
		SQLite:  config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "nested", "tasks.db")},
	}

	s, err := Open(ctx, cfg, log.NewNop())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	// Twice, since every start migrates.
	for i := 0; i < 2; i++ {
		if err := s.Migrate(ctx); err != nil {
			t.Fatalf("Migrate run %d: %v", i+1, err)
		}
	}

	var n int
	if err := s.SQLite.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks`).Scan(&n); err != nil {
		t.Fatalf("tasks table missing: %v", err)
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Driver: "mongo"}}
	if _, err := Open(context.Background(), cfg, log.NewNop()); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}
