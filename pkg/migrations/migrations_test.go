package migrations

import (
	"context"
	"testing"

	"github.com/uptrace/bun/migrate"

	"github.com/harmonixfi/harmonix-api/pkg/migrations/apidb"
	mghelper "github.com/harmonixfi/harmonix-api/pkg/pgutil"
)

var apiIndexes = []string{
	"idx_vault_price_per_share_histories_vault_id_datetime",
	"idx_restaking_rewards_wallet_address",
	"idx_pendle_markets_chain_id",
}

var apiTables = []string{
	"vault_price_per_share_histories",
	"user_asset_amounts",
	"vault_points",
	"restaking_rewards",
	"goldlink_account_holdings",
	"pendle_markets",
}

func TestAPIDBMigrations_Apply(t *testing.T) {
	db, cleanup := mghelper.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, apidb.Migrations)

	// Initialize migration system
	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	// Run all migrations up
	group, err := migrator.Migrate(ctx)
	if err != nil {
		t.Fatalf("Migrate() failed: %v", err)
	}
	if group.IsZero() {
		t.Error("Expected migrations to run, but none were applied")
	}

	for _, table := range append(apiTables, "bun_migrations") {
		mghelper.AssertTableExists(t, db, table)
	}

	for _, index := range apiIndexes {
		mghelper.AssertIndexExists(t, db, index)
	}
}

func TestMigrations_Idempotency(t *testing.T) {
	db, cleanup := mghelper.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, apidb.Migrations)

	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("First Migrate() failed: %v", err)
	}

	// Run migrations second time - should not fail
	group, err := migrator.Migrate(ctx)
	if err != nil {
		t.Fatalf("Second Migrate() failed: %v", err)
	}
	if !group.IsZero() {
		t.Error("Expected no new migrations on second run")
	}

	mghelper.AssertTableExists(t, db, "user_asset_amounts")
}

func TestMigrations_Rollback(t *testing.T) {
	db, cleanup := mghelper.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, apidb.Migrations)

	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("Migrate() failed: %v", err)
	}

	// Rollback last migration group (all migrations run in one group by Migrate())
	group, err := migrator.Rollback(ctx)
	if err != nil {
		t.Fatalf("Rollback() failed: %v", err)
	}
	if group.IsZero() {
		t.Error("Expected rollback to process a migration")
	}

	for _, table := range apiTables {
		mghelper.AssertTableNotExists(t, db, table)
	}
	for _, index := range apiIndexes {
		mghelper.AssertIndexNotExists(t, db, index)
	}

	// A rolled back schema applies cleanly again
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("Migrate() after Rollback() failed: %v", err)
	}
	for _, table := range apiTables {
		mghelper.AssertRowCount(t, db, table, 0)
	}
}

func TestMigrations_Registered(t *testing.T) {
	ms := apidb.Migrations.Sorted()
	if len(ms) != len(apiTables) {
		t.Fatalf("expected %d migrations, got %d", len(apiTables), len(ms))
	}
	for i := 1; i < len(ms); i++ {
		if ms[i-1].Name >= ms[i].Name {
			t.Errorf("migrations out of order: %s before %s", ms[i-1].Name, ms[i].Name)
		}
	}
}
