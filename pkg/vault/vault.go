// Package vault holds the vault domain types shared by the service and its callers.
package vault

import "time"

const (
	// DefaultHistoryLimit is applied when a history query does not set a limit
	DefaultHistoryLimit = 500
	// MaxHistoryLimit is the largest page a history query may request
	MaxHistoryLimit = 5000
)

// HistoryQuery narrows a price-per-share history listing
type HistoryQuery struct {
	From  *time.Time
	To    *time.Time
	Limit int
}
