package schema

import (
	"encoding/json"
	"errors"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const maxUint256 = "115792089237316195423570985008687907853269984665640564039457584007913129639935"

type schemaCase struct {
	name     string
	payload  string
	target   func() any
	required []string
}

var schemaCases = []schemaCase{
	{
		name:     "EarnedRestakingRewards",
		payload:  `{"wallet_address":"0xabc","total_rewards":12.5,"partner_name":"eigenlayer","eigen_layer_points":100.25}`,
		target:   func() any { return new(EarnedRestakingRewards) },
		required: []string{"total_rewards", "partner_name"},
	},
	{
		name:     "GoldLinkAccountHoldings",
		payload:  `{"collateral":1500.5,"loan":700,"interest_index_last":1.0421}`,
		target:   func() any { return new(GoldLinkAccountHoldings) },
		required: []string{"collateral", "loan", "interest_index_last"},
	},
	{
		name:     "PendleMarket",
		payload:  `{"id":"0xabc","chain_id":1,"symbol":"PT-stETH","expiry":"2025-06-27T00:00:00Z","underlying_interest_apy":0.032,"implied_apy":0.041,"pt_discount":0.015}`,
		target:   func() any { return new(PendleMarket) },
		required: []string{"id", "chain_id", "symbol", "expiry", "underlying_interest_apy", "implied_apy", "pt_discount"},
	},
	{
		name:     "PointResponse",
		payload:  `{"wallet":"0xabc","amount":10,"points":250.5}`,
		target:   func() any { return new(PointResponse) },
		required: []string{"wallet", "amount", "points"},
	},
	{
		name:     "PricePerShareHistoryResponse",
		payload:  `{"id":"5f0c2b8e-7d0e-4d55-9a3e-0b1d2f9c6a11","vault_id":"0b6f1c1e-3a46-4d4f-8a8e-6d5a0c0f1e22","price_per_share":1.0734,"datetime":"2024-03-01T12:00:00Z"}`,
		target:   func() any { return new(PricePerShareHistoryResponse) },
		required: []string{"id", "vault_id", "price_per_share", "datetime"},
	},
	{
		name:     "UserAssetAmount",
		payload:  `{"user_address":"0xabc","asset_amount":1.5,"asset_amount_in_uint256":1500000000000000000}`,
		target:   func() any { return new(UserAssetAmount) },
		required: []string{"user_address", "asset_amount", "asset_amount_in_uint256"},
	},
	{
		name:     "ApyConfigResponse",
		payload:  `{"apy_period":30}`,
		target:   func() any { return new(ApyConfigResponse) },
		required: []string{"apy_period"},
	},
}

func withoutKey(t *testing.T, payload, key string) []byte {
	t.Helper()
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(payload), &m))
	delete(m, key)
	out, err := json.Marshal(m)
	require.NoError(t, err)
	return out
}

func withKey(t *testing.T, payload, key, value string) []byte {
	t.Helper()
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(payload), &m))
	m[key] = json.RawMessage(value)
	out, err := json.Marshal(m)
	require.NoError(t, err)
	return out
}

func TestDecode_ValidPayloads(t *testing.T) {
	for _, tc := range schemaCases {
		t.Run(tc.name, func(t *testing.T) {
			require.NoError(t, Decode([]byte(tc.payload), tc.target()))
		})
	}
}

func TestDecode_MissingRequiredField(t *testing.T) {
	for _, tc := range schemaCases {
		for _, key := range tc.required {
			t.Run(tc.name+"/"+key, func(t *testing.T) {
				err := Decode(withoutKey(t, tc.payload, key), tc.target())
				require.Error(t, err)

				var fe *FieldError
				require.True(t, errors.As(err, &fe), "expected FieldError, got %T", err)
				assert.Equal(t, key, fe.Field)
				assert.Equal(t, "field required", fe.Reason)
			})
		}
	}
}

func TestDecode_NullRequiredField(t *testing.T) {
	for _, tc := range schemaCases {
		key := tc.required[0]
		t.Run(tc.name+"/"+key, func(t *testing.T) {
			err := Decode(withKey(t, tc.payload, key, "null"), tc.target())
			require.Error(t, err)
			assert.Contains(t, err.Error(), "must not be null")
		})
	}
}

// Unknown keys are ignored for every record.
func TestDecode_ExtraFieldsIgnored(t *testing.T) {
	for _, tc := range schemaCases {
		t.Run(tc.name, func(t *testing.T) {
			strict := tc.target()
			require.NoError(t, Decode([]byte(tc.payload), strict))

			loose := tc.target()
			require.NoError(t, Decode(withKey(t, tc.payload, "unexpected_field", `"surplus"`), loose))
			assert.Equal(t, strict, loose)

			// a key differing only in case is unknown, whatever its value
			folded := tc.target()
			require.NoError(t, Decode(withKey(t, tc.payload, strings.ToUpper(tc.required[0]), `{"x":1}`), folded))
			assert.Equal(t, strict, folded)
		})
	}
}

func TestDecode_CaseVariantKeysIgnored(t *testing.T) {
	var holdings GoldLinkAccountHoldings
	require.NoError(t, Decode([]byte(`{"collateral":1,"loan":2,"interest_index_last":3,"LOAN":999}`), &holdings))
	assert.Equal(t, GoldLinkAccountHoldings{Collateral: 1, Loan: 2, InterestIndexLast: 3}, holdings)

	var rewards EarnedRestakingRewards
	require.NoError(t, Decode([]byte(`{"total_rewards":1,"partner_name":"eigenlayer","Wallet_Address":5}`), &rewards))
	assert.Nil(t, rewards.WalletAddress)

	// a case variant does not satisfy a required key
	var err *FieldError
	require.ErrorAs(t, Decode([]byte(`{"Collateral":1,"loan":2,"interest_index_last":3}`), &holdings), &err)
	assert.Equal(t, "collateral", err.Field)
}

func TestDecode_RoundTrip(t *testing.T) {
	for _, tc := range schemaCases {
		t.Run(tc.name, func(t *testing.T) {
			first := tc.target()
			require.NoError(t, Decode([]byte(tc.payload), first))

			encoded, err := json.Marshal(first)
			require.NoError(t, err)

			second := tc.target()
			require.NoError(t, Decode(encoded, second))
			assert.Equal(t, first, second)
			assert.JSONEq(t, tc.payload, string(encoded))
		})
	}
}

func TestDecode_WrongPrimitiveKind(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		target  any
		field   string
	}{
		{"string for int", `{"apy_period":"30"}`, new(ApyConfigResponse), "apy_period"},
		{"float for int", `{"id":"x","chain_id":1.5,"symbol":"s","expiry":"e","underlying_interest_apy":0,"implied_apy":0,"pt_discount":0}`, new(PendleMarket), "chain_id"},
		{"number for string", `{"wallet":42,"amount":1,"points":1}`, new(PointResponse), "wallet"},
		{"string for float", `{"collateral":"1","loan":0,"interest_index_last":1}`, new(GoldLinkAccountHoldings), "collateral"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Decode([]byte(tc.payload), tc.target)
			require.Error(t, err)

			var fe *FieldError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tc.field, fe.Field)
		})
	}
}

func TestDecode_NotAnObject(t *testing.T) {
	for _, payload := range []string{`[]`, `"text"`, `{broken`, ``} {
		err := Decode([]byte(payload), new(PointResponse))
		require.Error(t, err, "payload %q", payload)
	}
}

func TestDecode_RejectsNonPointerTarget(t *testing.T) {
	err := Decode([]byte(`{"apy_period":1}`), ApyConfigResponse{})
	require.Error(t, err)
}

func TestPendleMarket_SerializesExactKeys(t *testing.T) {
	m := PendleMarket{
		ID:                    "0xabc",
		ChainID:               1,
		Symbol:                "PT-stETH",
		Expiry:                "2025-06-27T00:00:00Z",
		UnderlyingInterestAPY: 0.032,
		ImpliedAPY:            0.041,
		PTDiscount:            0.015,
	}

	encoded, err := json.Marshal(m)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(encoded, &got))
	assert.Equal(t, map[string]any{
		"id":                      "0xabc",
		"chain_id":                float64(1),
		"symbol":                  "PT-stETH",
		"expiry":                  "2025-06-27T00:00:00Z",
		"underlying_interest_apy": 0.032,
		"implied_apy":             0.041,
		"pt_discount":             0.015,
	}, got)
}

func TestEarnedRestakingRewards_OptionalFieldsSerializeAsNull(t *testing.T) {
	var r EarnedRestakingRewards
	require.NoError(t, Decode([]byte(`{"total_rewards":3.5,"partner_name":"renzo"}`), &r))
	assert.Nil(t, r.WalletAddress)
	assert.Nil(t, r.EigenLayerPoints)

	encoded, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"wallet_address":null,"total_rewards":3.5,"partner_name":"renzo","eigen_layer_points":null}`, string(encoded))

	require.NoError(t, Decode([]byte(`{"wallet_address":null,"total_rewards":3.5,"partner_name":"renzo","eigen_layer_points":null}`), &r))
}

func TestUserAssetAmount_MaxUint256RoundTrips(t *testing.T) {
	payload := `{"user_address":"0xabc","asset_amount":1.157920892373162e+59,"asset_amount_in_uint256":` + maxUint256 + `}`

	var v UserAssetAmount
	require.NoError(t, Decode([]byte(payload), &v))
	assert.Equal(t, maxUint256, v.AssetAmountInUint256.String())

	encoded, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"asset_amount_in_uint256":`+maxUint256)

	var back UserAssetAmount
	require.NoError(t, Decode(encoded, &back))
	assert.Equal(t, 0, back.AssetAmountInUint256.Cmp(v.AssetAmountInUint256))
}

func TestUserAssetAmount_OutOfRange(t *testing.T) {
	overflow := new(big.Int).Lsh(big.NewInt(1), 256)

	tests := map[string]string{
		"2^256":    overflow.String(),
		"negative": "-1",
		"fraction": "1.5",
		"string":   `"1000"`,
	}

	for name, value := range tests {
		t.Run(name, func(t *testing.T) {
			payload := `{"user_address":"0xabc","asset_amount":1,"asset_amount_in_uint256":` + value + `}`
			err := Decode([]byte(payload), new(UserAssetAmount))
			require.Error(t, err)
		})
	}
}

func TestValidate_ConstructedRecords(t *testing.T) {
	require.NoError(t, Validate(UserAssetAmount{UserAddress: "0xabc", AssetAmountInUint256: big.NewInt(0)}))

	err := Validate(UserAssetAmount{UserAddress: "0xabc"})
	require.Error(t, err)
	var fe *FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "asset_amount_in_uint256", fe.Field)

	err = Validate(&UserAssetAmount{AssetAmountInUint256: big.NewInt(-5)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "uint256")

	require.NoError(t, Validate(PricePerShareHistoryResponse{
		ID:            uuid.New(),
		VaultID:       uuid.New(),
		PricePerShare: 1,
		Datetime:      time.Now().UTC(),
	}))
}

func TestIsUint256(t *testing.T) {
	limit, ok := new(big.Int).SetString(maxUint256, 10)
	require.True(t, ok)

	assert.True(t, IsUint256(big.NewInt(0)))
	assert.True(t, IsUint256(limit))
	assert.False(t, IsUint256(new(big.Int).Add(limit, big.NewInt(1))))
	assert.False(t, IsUint256(big.NewInt(-1)))
	assert.False(t, IsUint256(nil))
}
