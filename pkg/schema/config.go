package schema

// ApyConfigResponse wraps the configured APY computation period (days).
type ApyConfigResponse struct {
	ApyPeriod int `json:"apy_period"`
}
