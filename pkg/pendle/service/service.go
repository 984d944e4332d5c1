package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	apperrors "github.com/harmonixfi/harmonix-api/pkg/app/errors"
	"github.com/harmonixfi/harmonix-api/pkg/schema"
	"github.com/harmonixfi/harmonix-api/pkg/yieldstore"
)

var (
	ErrSyncDisabled = errors.New("pendle sync is disabled")
	ErrSyncFailed   = errors.New("pendle sync failed")
)

// Store reads the cached Pendle markets
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	ListPendleMarkets(ctx context.Context, opts ...yieldstore.QueryOption) ([]*schema.PendleMarket, error)
}

// Syncer refreshes the cache from upstream
//
//go:generate mockery --name Syncer --output mocks --outpkg mocks --filename mock_syncer.go --with-expecter
type Syncer interface {
	SyncAll(ctx context.Context) error
}

// Service exposes the Pendle market cache
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	ListMarkets(ctx context.Context, chainID *int64) ([]*schema.PendleMarket, error)
	Sync(ctx context.Context) error
}

type pendleService struct {
	store  Store
	syncer Syncer
	logger *zap.Logger
}

// NewService creates a Pendle service. syncer may be nil when the sync is disabled.
func NewService(store Store, syncer Syncer, logger *zap.Logger) Service {
	return &pendleService{
		store:  store,
		syncer: syncer,
		logger: logger,
	}
}

// ListMarkets returns cached markets, optionally limited to one chain
func (s *pendleService) ListMarkets(ctx context.Context, chainID *int64) ([]*schema.PendleMarket, error) {
	var opts []yieldstore.QueryOption
	if chainID != nil {
		opts = append(opts, yieldstore.WithChainID(*chainID))
	}

	out, err := s.store.ListPendleMarkets(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to list pendle markets: %w", err)
	}
	return out, nil
}

// Sync runs one sync of every configured chain on demand
func (s *pendleService) Sync(ctx context.Context) error {
	if s.syncer == nil {
		return apperrors.ResourceNotFoundError(ErrSyncDisabled, "pendle sync is disabled")
	}
	if err := s.syncer.SyncAll(ctx); err != nil {
		return apperrors.DependencyError(fmt.Errorf("%w: %w", ErrSyncFailed, err), "pendle market sync failed")
	}
	return nil
}
