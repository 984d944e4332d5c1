package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	apperrors "github.com/harmonixfi/harmonix-api/pkg/app/errors"
	"github.com/harmonixfi/harmonix-api/pkg/auth"
	"github.com/harmonixfi/harmonix-api/pkg/schema"
	"github.com/harmonixfi/harmonix-api/pkg/yieldstore"
)

var (
	ErrInvalidAddress  = errors.New("invalid EVM address")
	ErrAccountNotFound = errors.New("goldlink account not found")
)

// Store is the data-access interface for partner-protocol positions.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	ListRestakingRewards(ctx context.Context, wallet string) ([]*schema.EarnedRestakingRewards, error)
	SaveRestakingRewards(ctx context.Context, rec *schema.EarnedRestakingRewards) error
	GetGoldLinkHoldings(ctx context.Context, account string) (*schema.GoldLinkAccountHoldings, error)
	UpsertGoldLinkHoldings(ctx context.Context, account string, rec *schema.GoldLinkAccountHoldings) error
}

// Service exposes restaking rewards and GoldLink holdings
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	ListRestakingRewards(ctx context.Context, wallet string) ([]*schema.EarnedRestakingRewards, error)
	RecordRestakingRewards(ctx context.Context, rec *schema.EarnedRestakingRewards) (*schema.EarnedRestakingRewards, error)
	GetGoldLinkHoldings(ctx context.Context, account string) (*schema.GoldLinkAccountHoldings, error)
	UpsertGoldLinkHoldings(ctx context.Context, account string, rec *schema.GoldLinkAccountHoldings) (*schema.GoldLinkAccountHoldings, error)
}

type portfolioService struct {
	store  Store
	logger *zap.Logger
}

// NewService creates a new portfolio service
func NewService(store Store, logger *zap.Logger) Service {
	return &portfolioService{
		store:  store,
		logger: logger,
	}
}

func (s *portfolioService) ListRestakingRewards(ctx context.Context, wallet string) ([]*schema.EarnedRestakingRewards, error) {
	wallet, err := normalizeAddress(wallet, "wallet_address")
	if err != nil {
		return nil, err
	}

	out, err := s.store.ListRestakingRewards(ctx, wallet)
	if err != nil {
		return nil, fmt.Errorf("failed to list restaking rewards: %w", err)
	}
	return out, nil
}

// RecordRestakingRewards appends a reward snapshot. Snapshots without a
// wallet are program-level totals and are stored as-is.
func (s *portfolioService) RecordRestakingRewards(
	ctx context.Context,
	rec *schema.EarnedRestakingRewards,
) (*schema.EarnedRestakingRewards, error) {
	out := *rec
	if rec.WalletAddress != nil {
		wallet, err := normalizeAddress(*rec.WalletAddress, "wallet_address")
		if err != nil {
			return nil, err
		}
		out.WalletAddress = &wallet
	}

	if err := s.store.SaveRestakingRewards(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to save restaking rewards: %w", err)
	}
	return &out, nil
}

func (s *portfolioService) GetGoldLinkHoldings(ctx context.Context, account string) (*schema.GoldLinkAccountHoldings, error) {
	account, err := normalizeAddress(account, "account_address")
	if err != nil {
		return nil, err
	}

	out, err := s.store.GetGoldLinkHoldings(ctx, account)
	if errors.Is(err, yieldstore.ErrNotFound) {
		return nil, apperrors.ResourceNotFoundError(ErrAccountNotFound, "account not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get goldlink holdings: %w", err)
	}
	return out, nil
}

// UpsertGoldLinkHoldings replaces the account's latest snapshot
func (s *portfolioService) UpsertGoldLinkHoldings(
	ctx context.Context,
	account string,
	rec *schema.GoldLinkAccountHoldings,
) (*schema.GoldLinkAccountHoldings, error) {
	account, err := normalizeAddress(account, "account_address")
	if err != nil {
		return nil, err
	}

	if err := s.store.UpsertGoldLinkHoldings(ctx, account, rec); err != nil {
		return nil, fmt.Errorf("failed to upsert goldlink holdings: %w", err)
	}
	return rec, nil
}

func normalizeAddress(address, field string) (string, error) {
	if !auth.ValidateEVMAddress(address) {
		return "", apperrors.BadRequestError(
			fmt.Errorf("%w: %q", ErrInvalidAddress, address),
			field+" must be a 0x-prefixed 20-byte hex address",
		)
	}
	return auth.NormalizeAddress(address), nil
}
