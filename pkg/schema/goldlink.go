package schema

// GoldLinkAccountHoldings is a snapshot of a GoldLink lending account.
// InterestIndexLast is the last observed interest index used to accrue interest on Loan.
type GoldLinkAccountHoldings struct {
	Collateral        float64 `json:"collateral"`
	Loan              float64 `json:"loan"`
	InterestIndexLast float64 `json:"interest_index_last"`
}
