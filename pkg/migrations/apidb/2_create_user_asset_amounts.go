package apidb

import (
	"context"

	"github.com/uptrace/bun"

	mghelper "github.com/harmonixfi/harmonix-api/pkg/pgutil/migrations"
	"github.com/harmonixfi/harmonix-api/pkg/yieldstore"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		return mghelper.CreateSchema(ctx, db, &yieldstore.UserAssetAmountDao{})
	}, func(ctx context.Context, db *bun.DB) error {
		return mghelper.DropTables(ctx, db, &yieldstore.UserAssetAmountDao{})
	})
}
