package yieldstore

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harmonixfi/harmonix-api/pkg/pgutil"
	mghelper "github.com/harmonixfi/harmonix-api/pkg/pgutil/migrations"
	"github.com/harmonixfi/harmonix-api/pkg/schema"
)

const (
	walletA = "0x5b38da6a701c568545dcfcb03fcb875f56beddc4"
	walletB = "0xab8483f64d9c6d1ecf9b849ae677dd3315835cb2"
)

func setupStore(t *testing.T) (context.Context, *pgStore) {
	t.Helper()

	ctx := context.Background()
	db, cleanup := pgutil.SetupTestDB(t)
	t.Cleanup(cleanup)

	err := mghelper.CreateSchema(ctx, db,
		&PricePerShareHistoryDao{},
		&UserAssetAmountDao{},
		&PointDao{},
		&RestakingRewardDao{},
		&GoldLinkHoldingsDao{},
		&PendleMarketDao{},
	)
	require.NoError(t, err)

	return ctx, NewStore(db)
}

func ptr[T any](v T) *T { return &v }

func TestPricePerShareHistories(t *testing.T) {
	ctx, store := setupStore(t)

	vaultID := uuid.New()
	otherVault := uuid.New()
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		require.NoError(t, store.SavePricePerShareHistory(ctx, &schema.PricePerShareHistoryResponse{
			ID:            uuid.New(),
			VaultID:       vaultID,
			PricePerShare: 1 + float64(i)/100,
			Datetime:      base.Add(time.Duration(i) * 24 * time.Hour),
		}))
	}
	require.NoError(t, store.SavePricePerShareHistory(ctx, &schema.PricePerShareHistoryResponse{
		ID:            uuid.New(),
		VaultID:       otherVault,
		PricePerShare: 9,
		Datetime:      base,
	}))

	all, err := store.ListPricePerShareHistories(ctx, vaultID)
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.True(t, all[0].Datetime.After(all[4].Datetime), "newest first")
	assert.Equal(t, vaultID, all[0].VaultID)
	assert.InDelta(t, 1.04, all[0].PricePerShare, 1e-9)

	window, err := store.ListPricePerShareHistories(ctx, vaultID,
		WithFrom(base.Add(24*time.Hour)),
		WithTo(base.Add(3*24*time.Hour)),
	)
	require.NoError(t, err)
	assert.Len(t, window, 3)

	limited, err := store.ListPricePerShareHistories(ctx, vaultID, WithLimit(2))
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, all[0].ID, limited[0].ID)

	none, err := store.ListPricePerShareHistories(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUserAssetAmounts_UpsertKeepsUint256Exact(t *testing.T) {
	ctx, store := setupStore(t)
	vaultID := uuid.New()

	huge, ok := new(big.Int).SetString("115792089237316195423570985008687907853269984665640564039457584007913129639935", 10)
	require.True(t, ok)

	require.NoError(t, store.UpsertUserAssetAmount(ctx, vaultID, &schema.UserAssetAmount{
		UserAddress:          walletA,
		AssetAmount:          1.5,
		AssetAmountInUint256: big.NewInt(1500000),
	}))
	require.NoError(t, store.UpsertUserAssetAmount(ctx, vaultID, &schema.UserAssetAmount{
		UserAddress:          walletA,
		AssetAmount:          2.5,
		AssetAmountInUint256: huge,
	}))
	require.NoError(t, store.UpsertUserAssetAmount(ctx, vaultID, &schema.UserAssetAmount{
		UserAddress:          walletB,
		AssetAmount:          0,
		AssetAmountInUint256: big.NewInt(0),
	}))

	got, err := store.ListUserAssetAmounts(ctx, vaultID)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, walletA, got[0].UserAddress)
	assert.Equal(t, 2.5, got[0].AssetAmount)
	assert.Equal(t, 0, huge.Cmp(got[0].AssetAmountInUint256))
	assert.Equal(t, 0, got[1].AssetAmountInUint256.Sign())
}

func TestPoints_Upsert(t *testing.T) {
	ctx, store := setupStore(t)
	vaultID := uuid.New()

	require.NoError(t, store.UpsertPoints(ctx, vaultID, &schema.PointResponse{Wallet: walletA, Amount: 10, Points: 100}))
	require.NoError(t, store.UpsertPoints(ctx, vaultID, &schema.PointResponse{Wallet: walletB, Amount: 5, Points: 300}))
	require.NoError(t, store.UpsertPoints(ctx, vaultID, &schema.PointResponse{Wallet: walletA, Amount: 12, Points: 150}))

	got, err := store.ListPoints(ctx, vaultID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, &schema.PointResponse{Wallet: walletB, Amount: 5, Points: 300}, got[0])
	assert.Equal(t, &schema.PointResponse{Wallet: walletA, Amount: 12, Points: 150}, got[1])
}

func TestRestakingRewards(t *testing.T) {
	ctx, store := setupStore(t)

	require.NoError(t, store.SaveRestakingRewards(ctx, &schema.EarnedRestakingRewards{
		WalletAddress:    ptr(walletA),
		TotalRewards:     12.5,
		PartnerName:      "eigenlayer",
		EigenLayerPoints: ptr(100.25),
	}))
	require.NoError(t, store.SaveRestakingRewards(ctx, &schema.EarnedRestakingRewards{
		WalletAddress: ptr(walletA),
		TotalRewards:  3,
		PartnerName:   "renzo",
	}))
	require.NoError(t, store.SaveRestakingRewards(ctx, &schema.EarnedRestakingRewards{
		TotalRewards: 1,
		PartnerName:  "anonymous",
	}))

	got, err := store.ListRestakingRewards(ctx, walletA)
	require.NoError(t, err)
	require.Len(t, got, 2)

	byPartner := map[string]*schema.EarnedRestakingRewards{}
	for _, r := range got {
		byPartner[r.PartnerName] = r
	}
	require.Contains(t, byPartner, "eigenlayer")
	require.NotNil(t, byPartner["eigenlayer"].EigenLayerPoints)
	assert.Equal(t, 100.25, *byPartner["eigenlayer"].EigenLayerPoints)
	assert.Nil(t, byPartner["renzo"].EigenLayerPoints)

	none, err := store.ListRestakingRewards(ctx, walletB)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGoldLinkHoldings(t *testing.T) {
	ctx, store := setupStore(t)

	_, err := store.GetGoldLinkHoldings(ctx, walletA)
	require.True(t, errors.Is(err, ErrNotFound))

	require.NoError(t, store.UpsertGoldLinkHoldings(ctx, walletA, &schema.GoldLinkAccountHoldings{
		Collateral: 1500.5, Loan: 700, InterestIndexLast: 1.04,
	}))
	require.NoError(t, store.UpsertGoldLinkHoldings(ctx, walletA, &schema.GoldLinkAccountHoldings{
		Collateral: 1600, Loan: 650, InterestIndexLast: 1.05,
	}))

	got, err := store.GetGoldLinkHoldings(ctx, walletA)
	require.NoError(t, err)
	assert.Equal(t, &schema.GoldLinkAccountHoldings{Collateral: 1600, Loan: 650, InterestIndexLast: 1.05}, got)
}

func TestPendleMarkets(t *testing.T) {
	ctx, store := setupStore(t)

	require.NoError(t, store.UpsertPendleMarkets(ctx, nil))

	markets := []*schema.PendleMarket{
		{ID: "0xaaa", ChainID: 1, Symbol: "PT-stETH", Expiry: "2025-06-27T00:00:00.000Z", ImpliedAPY: 0.03},
		{ID: "0xbbb", ChainID: 1, Symbol: "PT-eETH", Expiry: "2025-09-25T00:00:00.000Z", ImpliedAPY: 0.05},
		{ID: "0xaaa", ChainID: 42161, Symbol: "PT-stETH", Expiry: "2025-06-27T00:00:00.000Z", ImpliedAPY: 0.04},
		// duplicate key in the same batch, last one wins
		{ID: "0xbbb", ChainID: 1, Symbol: "PT-eETH", Expiry: "2025-09-25T00:00:00.000Z", ImpliedAPY: 0.06},
	}
	require.NoError(t, store.UpsertPendleMarkets(ctx, markets))

	all, err := store.ListPendleMarkets(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	mainnet, err := store.ListPendleMarkets(ctx, WithChainID(1))
	require.NoError(t, err)
	require.Len(t, mainnet, 2)
	assert.Equal(t, "0xbbb", mainnet[0].ID)
	assert.Equal(t, 0.06, mainnet[0].ImpliedAPY)

	require.NoError(t, store.UpsertPendleMarkets(ctx, []*schema.PendleMarket{
		{ID: "0xaaa", ChainID: 1, Symbol: "PT-stETH", Expiry: "2025-06-27T00:00:00.000Z", ImpliedAPY: 0.09, PTDiscount: 0.02},
	}))

	mainnet, err = store.ListPendleMarkets(ctx, WithChainID(1))
	require.NoError(t, err)
	require.Len(t, mainnet, 2)
	assert.Equal(t, "0xaaa", mainnet[0].ID)
	assert.Equal(t, 0.02, mainnet[0].PTDiscount)
}
