package migration

import (
	"database/sql"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/cronograma/migrations"
)

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestReadMigrationFiles(t *testing.T) {
	mfs := fstest.MapFS{
		"002_second.sql": {Data: []byte("CREATE TABLE b (id INTEGER);")},
		"001_first.sql":  {Data: []byte("CREATE TABLE a (id INTEGER);")},
		"README.md":      {Data: []byte("ignored")},
	}
	runner := NewRunner(openSQLite(t), mfs, DriverSQLite)

	got, err := runner.ReadMigrationFiles()
	if err != nil {
		t.Fatalf("ReadMigrationFiles() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Version != 1 || got[0].Name != "first" || got[1].Version != 2 {
		t.Errorf("migrations not sorted by version: %+v", got)
	}
}

func TestReadMigrationFilesErrors(t *testing.T) {
	tests := []struct {
		name string
		fs   fstest.MapFS
		want string
	}{
		{"bad name", fstest.MapFS{"init.sql": {Data: []byte("")}}, "invalid migration filename"},
		{"bad version", fstest.MapFS{"abc_init.sql": {Data: []byte("")}}, "invalid version number"},
		{"zero version", fstest.MapFS{"000_init.sql": {Data: []byte("")}}, "must be at least 1"},
		{"duplicate", fstest.MapFS{
			"001_a.sql": {Data: []byte("")},
			"1_b.sql":   {Data: []byte("")},
		}, "duplicate migration version 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := NewRunner(openSQLite(t), tt.fs, DriverSQLite)
			_, err := runner.ReadMigrationFiles()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("ReadMigrationFiles() error = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestApplyMigrationsIsIncremental(t *testing.T) {
	db := openSQLite(t)
	mfs := fstest.MapFS{
		"001_first.sql": {Data: []byte("CREATE TABLE a (id INTEGER);")},
	}
	runner := NewRunner(db, mfs, DriverSQLite)

	var logs []string
	n, err := runner.ApplyMigrations(func(s string) { logs = append(logs, s) })
	if err != nil || n != 1 {
		t.Fatalf("ApplyMigrations() = %d, %v; want 1, nil", n, err)
	}
	if len(logs) == 0 {
		t.Error("ApplyMigrations() should report progress")
	}

	mfs["002_second.sql"] = &fstest.MapFile{Data: []byte("CREATE TABLE b (id INTEGER);")}
	current, pending, err := runner.Pending()
	if err != nil {
		t.Fatalf("Pending() error = %v", err)
	}
	if current != 1 || len(pending) != 1 || pending[0].Version != 2 {
		t.Errorf("Pending() = %d, %+v", current, pending)
	}

	n, err = runner.ApplyMigrations(nil)
	if err != nil || n != 1 {
		t.Fatalf("second ApplyMigrations() = %d, %v; want 1, nil", n, err)
	}
	if v, _ := runner.GetCurrentVersion(); v != 2 {
		t.Errorf("GetCurrentVersion() = %d, want 2", v)
	}

	n, err = runner.ApplyMigrations(nil)
	if err != nil || n != 0 {
		t.Errorf("up-to-date ApplyMigrations() = %d, %v; want 0, nil", n, err)
	}
}

func TestApplyMigrationsRollsBackFailure(t *testing.T) {
	db := openSQLite(t)
	mfs := fstest.MapFS{
		"001_ok.sql":     {Data: []byte("CREATE TABLE a (id INTEGER);")},
		"002_broken.sql": {Data: []byte("CREATE TABLE oops (;")},
	}
	runner := NewRunner(db, mfs, DriverSQLite)

	n, err := runner.ApplyMigrations(nil)
	if err == nil {
		t.Fatal("ApplyMigrations() expected error")
	}
	if n != 1 {
		t.Errorf("applied = %d, want 1", n)
	}
	if v, _ := runner.GetCurrentVersion(); v != 1 {
		t.Errorf("version = %d, want 1 after rollback", v)
	}
}

func TestValidateVersionNewerDatabase(t *testing.T) {
	db := openSQLite(t)
	runner := NewRunner(db, fstest.MapFS{"001_a.sql": {Data: []byte("SELECT 1;")}}, DriverSQLite)

	if err := runner.SetVersion(5); err != nil {
		t.Fatalf("SetVersion() error = %v", err)
	}
	err := runner.ValidateVersion()
	if err == nil || !strings.Contains(err.Error(), "newer than supported") {
		t.Errorf("ValidateVersion() = %v", err)
	}
}

func TestEmbeddedSQLiteMigrations(t *testing.T) {
	sub, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		t.Fatalf("fs.Sub() error = %v", err)
	}
	db := openSQLite(t)
	runner := NewRunner(db, sub, DriverSQLite)

	if _, err := runner.ApplyMigrations(nil); err != nil {
		t.Fatalf("ApplyMigrations() error = %v", err)
	}

	var shifts int
	if err := db.QueryRow("SELECT count(*) FROM turno").Scan(&shifts); err != nil {
		t.Fatalf("counting shifts: %v", err)
	}
	if shifts != 3 {
		t.Errorf("seeded shifts = %d, want 3", shifts)
	}

	if err := runner.ValidateVersion(); err != nil {
		t.Errorf("ValidateVersion() after applying = %v", err)
	}
}
