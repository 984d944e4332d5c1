// Package yieldstore persists vault, portfolio and Pendle snapshots in Postgres.
package yieldstore

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/harmonixfi/harmonix-api/pkg/schema"
)

// ErrNotFound is returned when a single-record lookup finds no matching row.
var ErrNotFound = errors.New("record not found")

// VaultStore holds per-vault time series and positions
type VaultStore interface {
	ListPricePerShareHistories(ctx context.Context, vaultID uuid.UUID, opts ...QueryOption) ([]*schema.PricePerShareHistoryResponse, error)
	SavePricePerShareHistory(ctx context.Context, rec *schema.PricePerShareHistoryResponse) error
	ListUserAssetAmounts(ctx context.Context, vaultID uuid.UUID) ([]*schema.UserAssetAmount, error)
	UpsertUserAssetAmount(ctx context.Context, vaultID uuid.UUID, rec *schema.UserAssetAmount) error
	ListPoints(ctx context.Context, vaultID uuid.UUID) ([]*schema.PointResponse, error)
	UpsertPoints(ctx context.Context, vaultID uuid.UUID, rec *schema.PointResponse) error
}

// PortfolioStore holds partner-protocol positions keyed by wallet or account
type PortfolioStore interface {
	ListRestakingRewards(ctx context.Context, wallet string) ([]*schema.EarnedRestakingRewards, error)
	SaveRestakingRewards(ctx context.Context, rec *schema.EarnedRestakingRewards) error
	GetGoldLinkHoldings(ctx context.Context, account string) (*schema.GoldLinkAccountHoldings, error)
	UpsertGoldLinkHoldings(ctx context.Context, account string, rec *schema.GoldLinkAccountHoldings) error
}

// PendleStore holds the Pendle market cache
type PendleStore interface {
	ListPendleMarkets(ctx context.Context, opts ...QueryOption) ([]*schema.PendleMarket, error)
	UpsertPendleMarkets(ctx context.Context, markets []*schema.PendleMarket) error
}

// Store defines the full persistence surface of the API
type Store interface {
	VaultStore
	PortfolioStore
	PendleStore
}

// QueryOptions defines options for list queries
type QueryOptions struct {
	From    *time.Time
	To      *time.Time
	Limit   int
	ChainID *int64
}

// QueryOption is a functional option for list queries
type QueryOption func(*QueryOptions)

// WithFrom keeps rows at or after t
func WithFrom(t time.Time) QueryOption {
	return func(opts *QueryOptions) {
		opts.From = &t
	}
}

// WithTo keeps rows at or before t
func WithTo(t time.Time) QueryOption {
	return func(opts *QueryOptions) {
		opts.To = &t
	}
}

// WithLimit caps the number of rows returned. Non-positive values are ignored.
func WithLimit(n int) QueryOption {
	return func(opts *QueryOptions) {
		opts.Limit = n
	}
}

// WithChainID sets the chain filter
func WithChainID(chainID int64) QueryOption {
	return func(opts *QueryOptions) {
		opts.ChainID = &chainID
	}
}

func applyOptions(opts []QueryOption) *QueryOptions {
	options := &QueryOptions{}
	for _, opt := range opts {
		opt(options)
	}
	return options
}
