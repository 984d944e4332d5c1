package yieldstore

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"

	"github.com/harmonixfi/harmonix-api/pkg/schema"
)

// PricePerShareHistoryDao maps to the 'vault_price_per_share_histories' table.
type PricePerShareHistoryDao struct {
	bun.BaseModel `bun:"table:vault_price_per_share_histories,alias:pps"`
	ID            uuid.UUID `bun:"id,pk,type:uuid"`
	VaultID       uuid.UUID `bun:"vault_id,notnull,type:uuid"`
	PricePerShare float64   `bun:"price_per_share,notnull,type:double precision"`
	Datetime      time.Time `bun:"datetime,notnull,type:timestamptz"`
}

func toPricePerShareDao(rec *schema.PricePerShareHistoryResponse) *PricePerShareHistoryDao {
	return &PricePerShareHistoryDao{
		ID:            rec.ID,
		VaultID:       rec.VaultID,
		PricePerShare: rec.PricePerShare,
		Datetime:      rec.Datetime.UTC(),
	}
}

func fromPricePerShareDao(dao *PricePerShareHistoryDao) *schema.PricePerShareHistoryResponse {
	return &schema.PricePerShareHistoryResponse{
		ID:            dao.ID,
		VaultID:       dao.VaultID,
		PricePerShare: dao.PricePerShare,
		Datetime:      dao.Datetime.UTC(),
	}
}

// UserAssetAmountDao maps to the 'user_asset_amounts' table.
// The uint256 amount is kept exact in a numeric(78,0) column.
type UserAssetAmountDao struct {
	bun.BaseModel      `bun:"table:user_asset_amounts,alias:uaa"`
	VaultID            uuid.UUID       `bun:"vault_id,pk,type:uuid"`
	UserAddress        string          `bun:"user_address,pk,type:varchar(42)"`
	AssetAmount        float64         `bun:"asset_amount,notnull,type:double precision"`
	AssetAmountUint256 decimal.Decimal `bun:"asset_amount_uint256,notnull,type:numeric(78,0)"`
	UpdatedAt          time.Time       `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

func toUserAssetAmountDao(vaultID uuid.UUID, rec *schema.UserAssetAmount) *UserAssetAmountDao {
	return &UserAssetAmountDao{
		VaultID:            vaultID,
		UserAddress:        rec.UserAddress,
		AssetAmount:        rec.AssetAmount,
		AssetAmountUint256: decimal.NewFromBigInt(rec.AssetAmountInUint256, 0),
		UpdatedAt:          time.Now().UTC(),
	}
}

func fromUserAssetAmountDao(dao *UserAssetAmountDao) *schema.UserAssetAmount {
	return &schema.UserAssetAmount{
		UserAddress:          dao.UserAddress,
		AssetAmount:          dao.AssetAmount,
		AssetAmountInUint256: dao.AssetAmountUint256.BigInt(),
	}
}

// PointDao maps to the 'vault_points' table.
type PointDao struct {
	bun.BaseModel `bun:"table:vault_points,alias:vp"`
	VaultID       uuid.UUID `bun:"vault_id,pk,type:uuid"`
	Wallet        string    `bun:"wallet,pk,type:varchar(42)"`
	Amount        float64   `bun:"amount,notnull,type:double precision"`
	Points        float64   `bun:"points,notnull,type:double precision"`
	UpdatedAt     time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

func toPointDao(vaultID uuid.UUID, rec *schema.PointResponse) *PointDao {
	return &PointDao{
		VaultID:   vaultID,
		Wallet:    rec.Wallet,
		Amount:    rec.Amount,
		Points:    rec.Points,
		UpdatedAt: time.Now().UTC(),
	}
}

func fromPointDao(dao *PointDao) *schema.PointResponse {
	return &schema.PointResponse{
		Wallet: dao.Wallet,
		Amount: dao.Amount,
		Points: dao.Points,
	}
}

// RestakingRewardDao maps to the 'restaking_rewards' table.
type RestakingRewardDao struct {
	bun.BaseModel    `bun:"table:restaking_rewards,alias:rr"`
	ID               int64     `bun:"id,pk,autoincrement"`
	WalletAddress    *string   `bun:"wallet_address,type:varchar(42)"`
	PartnerName      string    `bun:"partner_name,notnull,type:varchar(100)"`
	TotalRewards     float64   `bun:"total_rewards,notnull,type:double precision"`
	EigenLayerPoints *float64  `bun:"eigen_layer_points,type:double precision"`
	CreatedAt        time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

func toRestakingRewardDao(rec *schema.EarnedRestakingRewards) *RestakingRewardDao {
	return &RestakingRewardDao{
		WalletAddress:    rec.WalletAddress,
		PartnerName:      rec.PartnerName,
		TotalRewards:     rec.TotalRewards,
		EigenLayerPoints: rec.EigenLayerPoints,
	}
}

func fromRestakingRewardDao(dao *RestakingRewardDao) *schema.EarnedRestakingRewards {
	return &schema.EarnedRestakingRewards{
		WalletAddress:    dao.WalletAddress,
		TotalRewards:     dao.TotalRewards,
		PartnerName:      dao.PartnerName,
		EigenLayerPoints: dao.EigenLayerPoints,
	}
}

// GoldLinkHoldingsDao maps to the 'goldlink_account_holdings' table.
type GoldLinkHoldingsDao struct {
	bun.BaseModel     `bun:"table:goldlink_account_holdings,alias:gl"`
	AccountAddress    string    `bun:"account_address,pk,type:varchar(42)"`
	Collateral        float64   `bun:"collateral,notnull,type:double precision"`
	Loan              float64   `bun:"loan,notnull,type:double precision"`
	InterestIndexLast float64   `bun:"interest_index_last,notnull,type:double precision"`
	UpdatedAt         time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

func toGoldLinkHoldingsDao(account string, rec *schema.GoldLinkAccountHoldings) *GoldLinkHoldingsDao {
	return &GoldLinkHoldingsDao{
		AccountAddress:    account,
		Collateral:        rec.Collateral,
		Loan:              rec.Loan,
		InterestIndexLast: rec.InterestIndexLast,
		UpdatedAt:         time.Now().UTC(),
	}
}

func fromGoldLinkHoldingsDao(dao *GoldLinkHoldingsDao) *schema.GoldLinkAccountHoldings {
	return &schema.GoldLinkAccountHoldings{
		Collateral:        dao.Collateral,
		Loan:              dao.Loan,
		InterestIndexLast: dao.InterestIndexLast,
	}
}

// PendleMarketDao maps to the 'pendle_markets' table.
type PendleMarketDao struct {
	bun.BaseModel         `bun:"table:pendle_markets,alias:pm"`
	ID                    string    `bun:"id,pk,type:varchar(100)"`
	ChainID               int64     `bun:"chain_id,pk"`
	Symbol                string    `bun:"symbol,notnull,type:varchar(100)"`
	Expiry                string    `bun:"expiry,notnull,type:varchar(64)"`
	UnderlyingInterestAPY float64   `bun:"underlying_interest_apy,notnull,type:double precision"`
	ImpliedAPY            float64   `bun:"implied_apy,notnull,type:double precision"`
	PTDiscount            float64   `bun:"pt_discount,notnull,type:double precision"`
	UpdatedAt             time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

func toPendleMarketDao(rec *schema.PendleMarket, now time.Time) PendleMarketDao {
	return PendleMarketDao{
		ID:                    rec.ID,
		ChainID:               rec.ChainID,
		Symbol:                rec.Symbol,
		Expiry:                rec.Expiry,
		UnderlyingInterestAPY: rec.UnderlyingInterestAPY,
		ImpliedAPY:            rec.ImpliedAPY,
		PTDiscount:            rec.PTDiscount,
		UpdatedAt:             now,
	}
}

func fromPendleMarketDao(dao *PendleMarketDao) *schema.PendleMarket {
	return &schema.PendleMarket{
		ID:                    dao.ID,
		ChainID:               dao.ChainID,
		Symbol:                dao.Symbol,
		Expiry:                dao.Expiry,
		UnderlyingInterestAPY: dao.UnderlyingInterestAPY,
		ImpliedAPY:            dao.ImpliedAPY,
		PTDiscount:            dao.PTDiscount,
	}
}
