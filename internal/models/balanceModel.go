package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// balances go over the wire as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true
}

// BalanceRecord is one append-only observation of an account balance.
// Rows are never updated or deleted.
type BalanceRecord struct {
	ID            uint            `gorm:"primaryKey" json:"-"`
	Timestamp     string          `gorm:"not null" json:"timestamp"`
	AccountLabel  string          `gorm:"type:varchar(255);index:idx_account_label,priority:1;not null" json:"account_label"`
	AccountNumber string          `gorm:"type:varchar(50);index:idx_account_label,priority:2;not null" json:"account_number"`
	Balance       decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"balance"`
	EventType     string          `gorm:"type:varchar(50)" json:"event_type"`
	Broker        string          `gorm:"type:varchar(255)" json:"broker"`
	Currency      string          `gorm:"type:varchar(10)" json:"currency"`
	CreatedAt     time.Time       `gorm:"index:idx_account_label,priority:3,sort:desc;autoCreateTime" json:"-"`
}

// TableName sets the table name for BalanceRecord model
func (BalanceRecord) TableName() string {
	return "balance_history"
}

// Account is one distinct (label, number) pair observed in the history.
type Account struct {
	Label  string `json:"label"`
	Number string `json:"number"`
}

// HistoryRow is the read-side projection served by the history endpoint.
type HistoryRow struct {
	Timestamp     string          `json:"timestamp"`
	AccountLabel  string          `json:"account_label"`
	AccountNumber string          `json:"account_number"`
	Balance       decimal.Decimal `json:"balance"`
	EventType     string          `json:"event_type"`
	Broker        string          `json:"broker"`
	Currency      string          `json:"currency"`
}
