package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/harmonixfi/harmonix-api/pkg/auth"
	"github.com/harmonixfi/harmonix-api/pkg/schema"
)

const serviceName = "PendleService"

type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the Pendle Service
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{svc: svc, logger: logger}
}

func (ls *logService) ListMarkets(ctx context.Context, chainID *int64) (out []*schema.PendleMarket, err error) {
	defer func(start time.Time) {
		fields := []zap.Field{
			zap.String("service", serviceName),
			zap.String("method", "ListMarkets"),
			zap.Duration("duration", time.Since(start)),
		}
		if chainID != nil {
			fields = append(fields, zap.Int64("chain_id", *chainID))
		}
		if err != nil {
			ls.logger.Error("ListMarkets failed", append(fields, zap.Error(err))...)
			return
		}
		ls.logger.Debug("ListMarkets completed", append(fields, zap.Int("count", len(out)))...)
	}(time.Now())

	return ls.svc.ListMarkets(ctx, chainID)
}

func (ls *logService) Sync(ctx context.Context) (err error) {
	defer func(start time.Time) {
		fields := []zap.Field{
			zap.String("service", serviceName),
			zap.String("method", "Sync"),
			auth.SubjectField(ctx),
			zap.Duration("duration", time.Since(start)),
		}
		if err != nil {
			ls.logger.Error("Sync failed", append(fields, zap.Error(err))...)
			return
		}
		ls.logger.Info("Sync completed", fields...)
	}(time.Now())

	return ls.svc.Sync(ctx)
}
