package apidb

import (
	"context"

	"github.com/uptrace/bun"

	mghelper "github.com/harmonixfi/harmonix-api/pkg/pgutil/migrations"
	"github.com/harmonixfi/harmonix-api/pkg/yieldstore"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		if err := mghelper.CreateSchema(ctx, db, &yieldstore.RestakingRewardDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &yieldstore.RestakingRewardDao{}, "wallet_address")
	}, func(ctx context.Context, db *bun.DB) error {
		if err := mghelper.DropModelIndex(ctx, db, &yieldstore.RestakingRewardDao{}, "wallet_address"); err != nil {
			return err
		}
		return mghelper.DropTables(ctx, db, &yieldstore.RestakingRewardDao{})
	})
}
