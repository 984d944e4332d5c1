package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/harmonixfi/harmonix-api/pkg/app/errors"
	"github.com/harmonixfi/harmonix-api/pkg/auth"
	"github.com/harmonixfi/harmonix-api/pkg/schema"
	"github.com/harmonixfi/harmonix-api/pkg/vault"
	"github.com/harmonixfi/harmonix-api/pkg/yieldstore"
)

var (
	ErrInvalidWindow  = errors.New("from must not be after to")
	ErrInvalidLimit   = errors.New("limit out of range")
	ErrVaultMismatch  = errors.New("record vault_id does not match path")
	ErrInvalidAddress = errors.New("invalid EVM address")
)

// Store is the narrow data-access interface for vault reads and ingest writes.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	ListPricePerShareHistories(ctx context.Context, vaultID uuid.UUID, opts ...yieldstore.QueryOption) ([]*schema.PricePerShareHistoryResponse, error)
	SavePricePerShareHistory(ctx context.Context, rec *schema.PricePerShareHistoryResponse) error
	ListUserAssetAmounts(ctx context.Context, vaultID uuid.UUID) ([]*schema.UserAssetAmount, error)
	UpsertUserAssetAmount(ctx context.Context, vaultID uuid.UUID, rec *schema.UserAssetAmount) error
	ListPoints(ctx context.Context, vaultID uuid.UUID) ([]*schema.PointResponse, error)
	UpsertPoints(ctx context.Context, vaultID uuid.UUID, rec *schema.PointResponse) error
}

// Service defines the vault read and ingest operations
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	ListPricePerShareHistories(ctx context.Context, vaultID uuid.UUID, q vault.HistoryQuery) ([]*schema.PricePerShareHistoryResponse, error)
	RecordPricePerShare(ctx context.Context, vaultID uuid.UUID, rec *schema.PricePerShareHistoryResponse) (*schema.PricePerShareHistoryResponse, error)
	ListUserAssetAmounts(ctx context.Context, vaultID uuid.UUID) ([]*schema.UserAssetAmount, error)
	UpsertUserAssetAmount(ctx context.Context, vaultID uuid.UUID, rec *schema.UserAssetAmount) (*schema.UserAssetAmount, error)
	ListPoints(ctx context.Context, vaultID uuid.UUID) ([]*schema.PointResponse, error)
	UpsertPoints(ctx context.Context, vaultID uuid.UUID, rec *schema.PointResponse) (*schema.PointResponse, error)
}

type vaultService struct {
	store  Store
	logger *zap.Logger
}

// NewService creates a new vault service
func NewService(store Store, logger *zap.Logger) Service {
	return &vaultService{
		store:  store,
		logger: logger,
	}
}

// ListPricePerShareHistories returns the vault's history newest first.
// A zero Limit means vault.DefaultHistoryLimit.
func (s *vaultService) ListPricePerShareHistories(
	ctx context.Context,
	vaultID uuid.UUID,
	q vault.HistoryQuery,
) ([]*schema.PricePerShareHistoryResponse, error) {
	if q.From != nil && q.To != nil && q.From.After(*q.To) {
		return nil, apperrors.BadRequestError(ErrInvalidWindow, "from must not be after to")
	}

	limit := q.Limit
	if limit == 0 {
		limit = vault.DefaultHistoryLimit
	}
	if limit < 0 || limit > vault.MaxHistoryLimit {
		return nil, apperrors.BadRequestError(ErrInvalidLimit, fmt.Sprintf("limit must be between 1 and %d", vault.MaxHistoryLimit))
	}

	opts := []yieldstore.QueryOption{yieldstore.WithLimit(limit)}
	if q.From != nil {
		opts = append(opts, yieldstore.WithFrom(*q.From))
	}
	if q.To != nil {
		opts = append(opts, yieldstore.WithTo(*q.To))
	}

	out, err := s.store.ListPricePerShareHistories(ctx, vaultID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to list price per share histories: %w", err)
	}
	return out, nil
}

// RecordPricePerShare stores one observation. A nil record id is replaced with a fresh one.
func (s *vaultService) RecordPricePerShare(
	ctx context.Context,
	vaultID uuid.UUID,
	rec *schema.PricePerShareHistoryResponse,
) (*schema.PricePerShareHistoryResponse, error) {
	if rec.VaultID != vaultID {
		return nil, apperrors.BadRequestError(ErrVaultMismatch, "vault_id in body does not match path")
	}
	if rec.Datetime.IsZero() {
		return nil, apperrors.BadRequestError(nil, "datetime must be set")
	}

	out := *rec
	if out.ID == uuid.Nil {
		out.ID = uuid.New()
	}
	out.Datetime = out.Datetime.UTC()

	if err := s.store.SavePricePerShareHistory(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to save price per share history: %w", err)
	}
	return &out, nil
}

func (s *vaultService) ListUserAssetAmounts(ctx context.Context, vaultID uuid.UUID) ([]*schema.UserAssetAmount, error) {
	out, err := s.store.ListUserAssetAmounts(ctx, vaultID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user asset amounts: %w", err)
	}
	return out, nil
}

// UpsertUserAssetAmount replaces the user's position in the vault
func (s *vaultService) UpsertUserAssetAmount(
	ctx context.Context,
	vaultID uuid.UUID,
	rec *schema.UserAssetAmount,
) (*schema.UserAssetAmount, error) {
	address, err := normalizeAddress(rec.UserAddress, "user_address")
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(rec); err != nil {
		return nil, apperrors.BadRequestError(err, err.Error())
	}

	out := *rec
	out.UserAddress = address

	if err := s.store.UpsertUserAssetAmount(ctx, vaultID, &out); err != nil {
		return nil, fmt.Errorf("failed to upsert user asset amount: %w", err)
	}
	return &out, nil
}

func (s *vaultService) ListPoints(ctx context.Context, vaultID uuid.UUID) ([]*schema.PointResponse, error) {
	out, err := s.store.ListPoints(ctx, vaultID)
	if err != nil {
		return nil, fmt.Errorf("failed to list points: %w", err)
	}
	return out, nil
}

// UpsertPoints replaces the wallet's points in the vault
func (s *vaultService) UpsertPoints(
	ctx context.Context,
	vaultID uuid.UUID,
	rec *schema.PointResponse,
) (*schema.PointResponse, error) {
	wallet, err := normalizeAddress(rec.Wallet, "wallet")
	if err != nil {
		return nil, err
	}

	out := *rec
	out.Wallet = wallet

	if err := s.store.UpsertPoints(ctx, vaultID, &out); err != nil {
		return nil, fmt.Errorf("failed to upsert points: %w", err)
	}
	return &out, nil
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
