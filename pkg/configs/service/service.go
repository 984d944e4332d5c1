package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	apperrors "github.com/harmonixfi/harmonix-api/pkg/app/errors"
	"github.com/harmonixfi/harmonix-api/pkg/config"
	"github.com/harmonixfi/harmonix-api/pkg/schema"
)

// ErrSettingsMissing is returned when the service was built without APY settings.
var ErrSettingsMissing = errors.New("apy settings not configured")

// Service exposes the public configuration values clients need
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	GetApyConfig(ctx context.Context) (*schema.ApyConfigResponse, error)
}

type configService struct {
	apy    *config.APYConfig
	logger *zap.Logger
}

// NewService creates a config service reading from apy on every call
func NewService(apy *config.APYConfig, logger *zap.Logger) Service {
	return &configService{
		apy:    apy,
		logger: logger,
	}
}

func (s *configService) GetApyConfig(_ context.Context) (*schema.ApyConfigResponse, error) {
	if s.apy == nil {
		return nil, apperrors.GeneralError(ErrSettingsMissing)
	}
	return &schema.ApyConfigResponse{ApyPeriod: s.apy.Period}, nil
}
