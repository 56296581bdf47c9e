package sqlitemigrate

import (
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	sqlDB, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "migrate.db"))
	if err != nil {
		t.Fatalf("open sqlite db: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })
	return sqlDB
}

func TestApplyRunsMigrationsInOrder(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"0001_first.sql":  {Data: []byte("CREATE TABLE widgets (id INTEGER PRIMARY KEY, name TEXT NOT NULL);")},
		"0002_second.sql": {Data: []byte("INSERT INTO widgets (name) VALUES ('seed');")},
		"notes.txt":       {Data: []byte("ignored")},
	}

	sqlDB := openTestDB(t)
	if err := Apply(sqlDB, fsys); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	var count int
	if err := sqlDB.QueryRow("SELECT COUNT(*) FROM widgets").Scan(&count); err != nil {
		t.Fatalf("count widgets: %v", err)
	}
	if count != 1 {
		t.Fatalf("widgets count = %d, want 1", count)
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"0001_schema.sql": {Data: []byte("CREATE TABLE widgets (id INTEGER PRIMARY KEY);")},
		"0002_seed.sql":   {Data: []byte("INSERT INTO widgets (id) VALUES (1);")},
	}

	sqlDB := openTestDB(t)
	if err := Apply(sqlDB, fsys); err != nil {
		t.Fatalf("first Apply() error = %v", err)
	}
	if err := Apply(sqlDB, fsys); err != nil {
		t.Fatalf("second Apply() error = %v", err)
	}

	var count int
	if err := sqlDB.QueryRow("SELECT COUNT(*) FROM widgets").Scan(&count); err != nil {
		t.Fatalf("count widgets: %v", err)
	}
	if count != 1 {
		t.Fatalf("widgets count after reapply = %d, want 1", count)
	}

	var applied int
	if err := sqlDB.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&applied); err != nil {
		t.Fatalf("count schema_migrations: %v", err)
	}
	if applied != 2 {
		t.Fatalf("schema_migrations count = %d, want 2", applied)
	}
}
