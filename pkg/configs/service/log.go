package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/harmonixfi/harmonix-api/pkg/schema"
)

type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the config Service
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{svc: svc, logger: logger}
}

func (ls *logService) GetApyConfig(ctx context.Context) (out *schema.ApyConfigResponse, err error) {
	defer func(start time.Time) {
		fields := []zap.Field{
			zap.String("service", "ConfigService"),
			zap.String("method", "GetApyConfig"),
			zap.Duration("duration", time.Since(start)),
		}
		if err != nil {
			ls.logger.Error("GetApyConfig failed", append(fields, zap.Error(err))...)
			return
		}
		ls.logger.Debug("GetApyConfig completed", append(fields, zap.Int("apy_period", out.ApyPeriod))...)
	}(time.Now())

	return ls.svc.GetApyConfig(ctx)
}
