package schema

// EarnedRestakingRewards is a reward accrual snapshot for one wallet under one
// rewards partner program.
type EarnedRestakingRewards struct {
	WalletAddress    *string  `json:"wallet_address"`
	TotalRewards     float64  `json:"total_rewards"`
	PartnerName      string   `json:"partner_name"`
	EigenLayerPoints *float64 `json:"eigen_layer_points"`
}

// PointResponse maps a wallet's asset amount to the points it was awarded.
type PointResponse struct {
	Wallet string  `json:"wallet"`
	Amount float64 `json:"amount"`
	Points float64 `json:"points"`
}
