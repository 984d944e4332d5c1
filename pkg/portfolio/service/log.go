package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/harmonixfi/harmonix-api/pkg/auth"
	"github.com/harmonixfi/harmonix-api/pkg/schema"
)

const serviceName = "PortfolioService"

type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the portfolio Service
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

func (ls *logService) ListRestakingRewards(ctx context.Context, wallet string) (out []*schema.EarnedRestakingRewards, err error) {
	defer func(start time.Time) {
		fields := []zap.Field{
			zap.String("service", serviceName),
			zap.String("method", "ListRestakingRewards"),
			zap.String("wallet_address", wallet),
			zap.Duration("duration", time.Since(start)),
		}
		if err != nil {
			ls.logger.Error("ListRestakingRewards failed", append(fields, zap.Error(err))...)
			return
		}
		ls.logger.Debug("ListRestakingRewards completed", append(fields, zap.Int("count", len(out)))...)
	}(time.Now())

	return ls.svc.ListRestakingRewards(ctx, wallet)
}

func (ls *logService) RecordRestakingRewards(
	ctx context.Context,
	rec *schema.EarnedRestakingRewards,
) (out *schema.EarnedRestakingRewards, err error) {
	defer func(start time.Time) {
		fields := []zap.Field{
			zap.String("service", serviceName),
			zap.String("method", "RecordRestakingRewards"),
			auth.SubjectField(ctx),
			zap.String("partner_name", rec.PartnerName),
			zap.Duration("duration", time.Since(start)),
		}
		if err != nil {
			ls.logger.Error("RecordRestakingRewards failed", append(fields, zap.Error(err))...)
			return
		}
		if out.WalletAddress != nil {
			fields = append(fields, zap.String("wallet_address", *out.WalletAddress))
		}
		ls.logger.Info("RecordRestakingRewards completed", append(fields, zap.Float64("total_rewards", out.TotalRewards))...)
	}(time.Now())

	return ls.svc.RecordRestakingRewards(ctx, rec)
}

func (ls *logService) GetGoldLinkHoldings(ctx context.Context, account string) (out *schema.GoldLinkAccountHoldings, err error) {
	defer func(start time.Time) {
		fields := []zap.Field{
			zap.String("service", serviceName),
			zap.String("method", "GetGoldLinkHoldings"),
			zap.String("account_address", account),
			zap.Duration("duration", time.Since(start)),
		}
		if err != nil {
			ls.logger.Warn("GetGoldLinkHoldings failed", append(fields, zap.Error(err))...)
			return
		}
		ls.logger.Debug("GetGoldLinkHoldings completed", fields...)
	}(time.Now())

	return ls.svc.GetGoldLinkHoldings(ctx, account)
}

func (ls *logService) UpsertGoldLinkHoldings(
	ctx context.Context,
	account string,
	rec *schema.GoldLinkAccountHoldings,
) (out *schema.GoldLinkAccountHoldings, err error) {
	defer func(start time.Time) {
		fields := []zap.Field{
			zap.String("service", serviceName),
			zap.String("method", "UpsertGoldLinkHoldings"),
			auth.SubjectField(ctx),
			zap.String("account_address", account),
			zap.Duration("duration", time.Since(start)),
		}
		if err != nil {
			ls.logger.Error("UpsertGoldLinkHoldings failed", append(fields, zap.Error(err))...)
			return
		}
		ls.logger.Info("UpsertGoldLinkHoldings completed", append(fields,
			zap.Float64("collateral", out.Collateral),
			zap.Float64("loan", out.Loan),
		)...)
	}(time.Now())

	return ls.svc.UpsertGoldLinkHoldings(ctx, account, rec)
}
