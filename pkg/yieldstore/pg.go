package yieldstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/harmonixfi/harmonix-api/pkg/schema"
)

var _ Store = (*pgStore)(nil)

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the yield store
func NewStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}

func (s *pgStore) ListPricePerShareHistories(
	ctx context.Context,
	vaultID uuid.UUID,
	opts ...QueryOption,
) ([]*schema.PricePerShareHistoryResponse, error) {
	options := applyOptions(opts)

	var daos []PricePerShareHistoryDao
	query := s.db.NewSelect().
		Model(&daos).
		Where("vault_id = ?", vaultID).
		OrderExpr("datetime DESC")

	if options.From != nil {
		query = query.Where("datetime >= ?", options.From.UTC())
	}
	if options.To != nil {
		query = query.Where("datetime <= ?", options.To.UTC())
	}
	if options.Limit > 0 {
		query = query.Limit(options.Limit)
	}

	if err := query.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list price per share histories: %w", err)
	}

	out := make([]*schema.PricePerShareHistoryResponse, len(daos))
	for i := range daos {
		out[i] = fromPricePerShareDao(&daos[i])
	}
	return out, nil
}

func (s *pgStore) SavePricePerShareHistory(ctx context.Context, rec *schema.PricePerShareHistoryResponse) error {
	_, err := s.db.NewInsert().
		Model(toPricePerShareDao(rec)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save price per share history: %w", err)
	}
	return nil
}

func (s *pgStore) ListUserAssetAmounts(ctx context.Context, vaultID uuid.UUID) ([]*schema.UserAssetAmount, error) {
	var daos []UserAssetAmountDao
	err := s.db.NewSelect().
		Model(&daos).
		Where("vault_id = ?", vaultID).
		OrderExpr("user_address ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list user asset amounts: %w", err)
	}

	out := make([]*schema.UserAssetAmount, len(daos))
	for i := range daos {
		out[i] = fromUserAssetAmountDao(&daos[i])
	}
	return out, nil
}

func (s *pgStore) UpsertUserAssetAmount(ctx context.Context, vaultID uuid.UUID, rec *schema.UserAssetAmount) error {
	_, err := s.db.NewInsert().
		Model(toUserAssetAmountDao(vaultID, rec)).
		On("CONFLICT (vault_id, user_address) DO UPDATE").
		Set("asset_amount = EXCLUDED.asset_amount").
		Set("asset_amount_uint256 = EXCLUDED.asset_amount_uint256").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert user asset amount: %w", err)
	}
	return nil
}

func (s *pgStore) ListPoints(ctx context.Context, vaultID uuid.UUID) ([]*schema.PointResponse, error) {
	var daos []PointDao
	err := s.db.NewSelect().
		Model(&daos).
		Where("vault_id = ?", vaultID).
		OrderExpr("points DESC, wallet ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list points: %w", err)
	}

	out := make([]*schema.PointResponse, len(daos))
	for i := range daos {
		out[i] = fromPointDao(&daos[i])
	}
	return out, nil
}

func (s *pgStore) UpsertPoints(ctx context.Context, vaultID uuid.UUID, rec *schema.PointResponse) error {
	_, err := s.db.NewInsert().
		Model(toPointDao(vaultID, rec)).
		On("CONFLICT (vault_id, wallet) DO UPDATE").
		Set("amount = EXCLUDED.amount").
		Set("points = EXCLUDED.points").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert points: %w", err)
	}
	return nil
}

func (s *pgStore) ListRestakingRewards(ctx context.Context, wallet string) ([]*schema.EarnedRestakingRewards, error) {
	var daos []RestakingRewardDao
	err := s.db.NewSelect().
		Model(&daos).
		Where("wallet_address = ?", wallet).
		OrderExpr("created_at DESC, id DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list restaking rewards: %w", err)
	}

	out := make([]*schema.EarnedRestakingRewards, len(daos))
	for i := range daos {
		out[i] = fromRestakingRewardDao(&daos[i])
	}
	return out, nil
}

func (s *pgStore) SaveRestakingRewards(ctx context.Context, rec *schema.EarnedRestakingRewards) error {
	_, err := s.db.NewInsert().
		Model(toRestakingRewardDao(rec)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save restaking rewards: %w", err)
	}
	return nil
}

func (s *pgStore) GetGoldLinkHoldings(ctx context.Context, account string) (*schema.GoldLinkAccountHoldings, error) {
	dao := new(GoldLinkHoldingsDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("account_address = ?", account).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get goldlink holdings: %w", err)
	}
	return fromGoldLinkHoldingsDao(dao), nil
}

func (s *pgStore) UpsertGoldLinkHoldings(ctx context.Context, account string, rec *schema.GoldLinkAccountHoldings) error {
	_, err := s.db.NewInsert().
		Model(toGoldLinkHoldingsDao(account, rec)).
		On("CONFLICT (account_address) DO UPDATE").
		Set("collateral = EXCLUDED.collateral").
		Set("loan = EXCLUDED.loan").
		Set("interest_index_last = EXCLUDED.interest_index_last").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert goldlink holdings: %w", err)
	}
	return nil
}

func (s *pgStore) ListPendleMarkets(ctx context.Context, opts ...QueryOption) ([]*schema.PendleMarket, error) {
	options := applyOptions(opts)

	var daos []PendleMarketDao
	query := s.db.NewSelect().
		Model(&daos).
		OrderExpr("chain_id ASC, implied_apy DESC, id ASC")

	if options.ChainID != nil {
		query = query.Where("chain_id = ?", *options.ChainID)
	}
	if options.Limit > 0 {
		query = query.Limit(options.Limit)
	}

	if err := query.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list pendle markets: %w", err)
	}

	out := make([]*schema.PendleMarket, len(daos))
	for i := range daos {
		out[i] = fromPendleMarketDao(&daos[i])
	}
	return out, nil
}

func (s *pgStore) UpsertPendleMarkets(ctx context.Context, markets []*schema.PendleMarket) error {
	if len(markets) == 0 {
		return nil
	}

	// Postgres rejects an upsert that touches the same key twice; last one wins.
	type marketKey struct {
		id      string
		chainID int64
	}
	now := time.Now().UTC()
	index := make(map[marketKey]int, len(markets))
	daos := make([]PendleMarketDao, 0, len(markets))
	for _, m := range markets {
		key := marketKey{id: m.ID, chainID: m.ChainID}
		if i, ok := index[key]; ok {
			daos[i] = toPendleMarketDao(m, now)
			continue
		}
		index[key] = len(daos)
		daos = append(daos, toPendleMarketDao(m, now))
	}

	_, err := s.db.NewInsert().
		Model(&daos).
		On("CONFLICT (id, chain_id) DO UPDATE").
		Set("symbol = EXCLUDED.symbol").
		Set("expiry = EXCLUDED.expiry").
		Set("underlying_interest_apy = EXCLUDED.underlying_interest_apy").
		Set("implied_apy = EXCLUDED.implied_apy").
		Set("pt_discount = EXCLUDED.pt_discount").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert pendle markets: %w", err)
	}
	return nil
}
