package apidb

import (
	"context"

	"github.com/uptrace/bun"

	mghelper "github.com/harmonixfi/harmonix-api/pkg/pgutil/migrations"
	"github.com/harmonixfi/harmonix-api/pkg/yieldstore"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		if err := mghelper.CreateSchema(ctx, db, &yieldstore.PricePerShareHistoryDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndex(ctx, db, &yieldstore.PricePerShareHistoryDao{}, "vault_id", "datetime")
	}, func(ctx context.Context, db *bun.DB) error {
		if err := mghelper.DropModelIndex(ctx, db, &yieldstore.PricePerShareHistoryDao{}, "vault_id", "datetime"); err != nil {
			return err
		}
		return mghelper.DropTables(ctx, db, &yieldstore.PricePerShareHistoryDao{})
	})
}
