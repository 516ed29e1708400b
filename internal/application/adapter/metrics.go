package adapter

// Ledger actions reported to LedgerMetrics.
const (
	DailyLogCreated   = "created"
	DailyLogRefreshed = "refreshed"
	DailyLogRetried   = "retried"
)

// LedgerMetrics records ledger activity.
type LedgerMetrics interface {
	IncrDailyLog(action string)
	IncrExpenseAdded(category string)
}

// NopLedgerMetrics discards everything.
type NopLedgerMetrics struct{}

func (NopLedgerMetrics) IncrDailyLog(string)     {}
func (NopLedgerMetrics) IncrExpenseAdded(string) {}
