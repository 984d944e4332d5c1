package schema

// PendleMarket is a point-in-time view of a Pendle fixed-yield market.
// Expiry is kept as the string the market source reported.
type PendleMarket struct {
	ID                    string  `json:"id"`
	ChainID               int64   `json:"chain_id"`
	Symbol                string  `json:"symbol"`
	Expiry                string  `json:"expiry"`
	UnderlyingInterestAPY float64 `json:"underlying_interest_apy"`
	ImpliedAPY            float64 `json:"implied_apy"`
	PTDiscount            float64 `json:"pt_discount"`
}
