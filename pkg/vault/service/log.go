package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/harmonixfi/harmonix-api/pkg/auth"
	"github.com/harmonixfi/harmonix-api/pkg/schema"
	"github.com/harmonixfi/harmonix-api/pkg/vault"
)

const serviceName = "VaultService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the vault Service.
// Reads are logged at debug level, ingest writes at info level.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

func (ls *logService) done(method string, vaultID uuid.UUID, start time.Time, err error, fields ...zap.Field) {
	base := []zap.Field{
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.Stringer("vault_id", vaultID),
		zap.Duration("duration", time.Since(start)),
	}

	if err != nil {
		ls.logger.Error(method+" failed", append(base, zap.Error(err))...)
		return
	}
	ls.logger.Debug(method+" completed", append(base, fields...)...)
}

func (ls *logService) ListPricePerShareHistories(
	ctx context.Context,
	vaultID uuid.UUID,
	q vault.HistoryQuery,
) (out []*schema.PricePerShareHistoryResponse, err error) {
	defer func(start time.Time) {
		ls.done("ListPricePerShareHistories", vaultID, start, err,
			zap.Int("limit", q.Limit),
			zap.Int("count", len(out)),
		)
	}(time.Now())

	return ls.svc.ListPricePerShareHistories(ctx, vaultID, q)
}

func (ls *logService) RecordPricePerShare(
	ctx context.Context,
	vaultID uuid.UUID,
	rec *schema.PricePerShareHistoryResponse,
) (out *schema.PricePerShareHistoryResponse, err error) {
	start := time.Now()

	defer func() {
		if err != nil {
			ls.done("RecordPricePerShare", vaultID, start, err)
			return
		}
		ls.logger.Info("RecordPricePerShare completed",
			zap.String("service", serviceName),
			zap.String("method", "RecordPricePerShare"),
			auth.SubjectField(ctx),
			zap.Stringer("vault_id", vaultID),
			zap.Stringer("id", out.ID),
			zap.Float64("price_per_share", out.PricePerShare),
			zap.Time("datetime", out.Datetime),
			zap.Duration("duration", time.Since(start)),
		)
	}()

	return ls.svc.RecordPricePerShare(ctx, vaultID, rec)
}

func (ls *logService) ListUserAssetAmounts(ctx context.Context, vaultID uuid.UUID) (out []*schema.UserAssetAmount, err error) {
	defer func(start time.Time) {
		ls.done("ListUserAssetAmounts", vaultID, start, err, zap.Int("count", len(out)))
	}(time.Now())

	return ls.svc.ListUserAssetAmounts(ctx, vaultID)
}

func (ls *logService) UpsertUserAssetAmount(
	ctx context.Context,
	vaultID uuid.UUID,
	rec *schema.UserAssetAmount,
) (out *schema.UserAssetAmount, err error) {
	start := time.Now()

	defer func() {
		if err != nil {
			ls.done("UpsertUserAssetAmount", vaultID, start, err)
			return
		}
		ls.logger.Info("UpsertUserAssetAmount completed",
			zap.String("service", serviceName),
			zap.String("method", "UpsertUserAssetAmount"),
			auth.SubjectField(ctx),
			zap.Stringer("vault_id", vaultID),
			zap.String("user_address", out.UserAddress),
			zap.Stringer("asset_amount_in_uint256", out.AssetAmountInUint256),
			zap.Duration("duration", time.Since(start)),
		)
	}()

	return ls.svc.UpsertUserAssetAmount(ctx, vaultID, rec)
}

func (ls *logService) ListPoints(ctx context.Context, vaultID uuid.UUID) (out []*schema.PointResponse, err error) {
	defer func(start time.Time) {
		ls.done("ListPoints", vaultID, start, err, zap.Int("count", len(out)))
	}(time.Now())

	return ls.svc.ListPoints(ctx, vaultID)
}

func (ls *logService) UpsertPoints(
	ctx context.Context,
	vaultID uuid.UUID,
	rec *schema.PointResponse,
) (out *schema.PointResponse, err error) {
	start := time.Now()

	defer func() {
		if err != nil {
			ls.done("UpsertPoints", vaultID, start, err)
			return
		}
		ls.logger.Info("UpsertPoints completed",
			zap.String("service", serviceName),
			zap.String("method", "UpsertPoints"),
			auth.SubjectField(ctx),
			zap.Stringer("vault_id", vaultID),
			zap.String("wallet", out.Wallet),
			zap.Float64("points", out.Points),
			zap.Duration("duration", time.Since(start)),
		)
	}()

	return ls.svc.UpsertPoints(ctx, vaultID, rec)
}
