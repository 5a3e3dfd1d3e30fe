package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCoreTablesMigrationContainsConstraints(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_create_core_tables.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no core tables migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	content := string(data)

	checks := []string{
		"CREATE TABLE IF NOT EXISTS products",
		"CHECK (stock_quantity >= 0)",
		"CREATE TABLE IF NOT EXISTS inventory_movements",
		"FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE CASCADE",
		"CHECK (movement_type IN ('in', 'out', 'adjustment'))",
		"CREATE TABLE IF NOT EXISTS orders",
		"CHECK (status IN ('draft', 'confirmed', 'shipped', 'delivered', 'cancelled'))",
		"CREATE TABLE IF NOT EXISTS process_events",
		"CHECK (severity IN ('low', 'medium', 'high'))",
		"DROP TABLE IF EXISTS products",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestSeedMigrationIsIdempotent(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_seed_core_data.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no seed migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	content := string(data)

	if !strings.Contains(content, "ON CONFLICT (account_code) DO NOTHING") {
		t.Errorf("account seed should be conflict-safe")
	}
	if !strings.Contains(content, "ON CONFLICT (sku) DO NOTHING") {
		t.Errorf("product seed should be conflict-safe")
	}
}
