package migrate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateDirAcceptsShippedMigrations(t *testing.T) {
	if err := ValidateDir("migrations"); err != nil {
		t.Fatalf("shipped migrations should validate: %v", err)
	}
}

func TestValidateDirRejectsBadFilename(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "not_versioned.sql")
	if err := os.WriteFile(path, []byte("-- +goose Up\n-- +goose Down\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := ValidateDir(dir); err == nil {
		t.Fatal("expected error for unversioned filename")
	}
}

func TestValidateDirRejectsMissingDownHeader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "20240101120000_missing_down.sql")
	if err := os.WriteFile(path, []byte("-- +goose Up\nSELECT 1;\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := ValidateDir(dir)
	if err == nil || !strings.Contains(err.Error(), "+goose Down") {
		t.Fatalf("expected missing-down error, got %v", err)
	}
}

func TestCreateSQLMigration(t *testing.T) {
	dir := t.TempDir()

	path, err := CreateSQLMigration(dir, "Add Restock Index")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(path, "_add_restock_index.sql") {
		t.Fatalf("unexpected filename %q", path)
	}

	if err := ValidateDir(dir); err != nil {
		t.Fatalf("created migration should validate: %v", err)
	}
}

func TestCreateSQLMigrationRejectsEmptyName(t *testing.T) {
	if _, err := CreateSQLMigration(t.TempDir(), ""); err == nil {
		t.Fatal("expected error for empty name")
	}
	if _, err := CreateSQLMigration(t.TempDir(), "***"); err == nil {
		t.Fatal("expected error for name with no usable characters")
	}
}

func TestInventoryMigrationContents(t *testing.T) {
	entries, err := filepath.Glob(filepath.Join("migrations", "*_create_inventory.sql"))
	if err != nil || len(entries) != 1 {
		t.Fatalf("expected one create_inventory migration, got %v (%v)", entries, err)
	}

	raw, err := os.ReadFile(entries[0])
	if err != nil {
		t.Fatal(err)
	}
	sql := string(raw)

	for _, want := range []string{
		"CREATE TABLE IF NOT EXISTS inventory",
		"product_id",
		"restock_amount",
		"condition",
		"idx_inventory_product_id",
	} {
		if !strings.Contains(sql, want) {
			t.Fatalf("migration missing %q", want)
		}
	}
	if strings.Contains(strings.ToUpper(sql), "CREATE UNIQUE") {
		t.Fatal("product_id must not carry a database unique constraint")
	}
}
