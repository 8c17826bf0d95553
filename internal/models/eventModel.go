package models

import "github.com/shopspring/decimal"

// BalanceUpdate is the ingestion payload pushed by remote trading clients.
// All fields are optional at the transport level; the timestamp is stored
// exactly as reported and is never validated for format.
type BalanceUpdate struct {
	Timestamp     string          `json:"timestamp"`
	AccountLabel  string          `json:"account_label"`
	AccountNumber string          `json:"account_number"`
	NewBalance    decimal.Decimal `json:"new_balance"`
	EventType     string          `json:"event_type"`
	Broker        string          `json:"broker"`
	Currency      string          `json:"currency"`
}
