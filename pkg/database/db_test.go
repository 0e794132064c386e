package database

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfigEnvOverride(t *testing.T) {
	t.Setenv("CLAVE_DB_PATH", "/tmp/custom.db")
	if got := DefaultConfig().Path; got != "/tmp/custom.db" {
		t.Errorf("Path = %q, want env override", got)
	}
}

func TestDefaultConfigHome(t *testing.T) {
	t.Setenv("CLAVE_DB_PATH", "")
	if got := DefaultConfig().Path; filepath.Base(got) != "catalog.db" {
		t.Errorf("Path = %q, want .../catalog.db", got)
	}
}

func TestOpenMigratedCreatesTables(t *testing.T) {
	cfg := Config{Path: filepath.Join(t.TempDir(), "nested", "catalog.db")}
	db, err := OpenMigrated(cfg)
	if err != nil {
		t.Fatalf("OpenMigrated: %v", err)
	}
	defer db.Close()

	// applying twice must be harmless
	if err := Migrate(db); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}

	for _, table := range []string{"albums", "players", "album_players", "snapshots"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}
