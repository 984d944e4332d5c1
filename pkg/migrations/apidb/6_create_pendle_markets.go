package apidb

import (
	"context"

	"github.com/uptrace/bun"

	mghelper "github.com/harmonixfi/harmonix-api/pkg/pgutil/migrations"
	"github.com/harmonixfi/harmonix-api/pkg/yieldstore"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		if err := mghelper.CreateSchema(ctx, db, &yieldstore.PendleMarketDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &yieldstore.PendleMarketDao{}, "chain_id")
	}, func(ctx context.Context, db *bun.DB) error {
		if err := mghelper.DropModelIndex(ctx, db, &yieldstore.PendleMarketDao{}, "chain_id"); err != nil {
			return err
		}
		return mghelper.DropTables(ctx, db, &yieldstore.PendleMarketDao{})
	})
}
