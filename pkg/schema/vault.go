package schema

import (
	"math/big"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// PricePerShareHistoryResponse is one observation of a vault's price per share.
type PricePerShareHistoryResponse struct {
	ID            uuid.UUID `json:"id"`
	VaultID       uuid.UUID `json:"vault_id"`
	PricePerShare float64   `json:"price_per_share"`
	Datetime      time.Time `json:"datetime"`
}

// UserAssetAmount carries the same position as a float for display and as the
// exact on-chain uint256 amount.
type UserAssetAmount struct {
	UserAddress          string   `json:"user_address"`
	AssetAmount          float64  `json:"asset_amount"`
	AssetAmountInUint256 *big.Int `json:"asset_amount_in_uint256" validate:"required"`
}

// IsUint256 reports whether n fits in an unsigned 256-bit integer.
func IsUint256(n *big.Int) bool {
	return n != nil && n.Sign() >= 0 && n.BitLen() <= 256
}

func validateUserAssetAmount(sl validator.StructLevel) {
	v := sl.Current().Interface().(UserAssetAmount)
	if v.AssetAmountInUint256 != nil && !IsUint256(v.AssetAmountInUint256) {
		sl.ReportError(v.AssetAmountInUint256, "asset_amount_in_uint256", "AssetAmountInUint256", "uint256", "")
	}
}
