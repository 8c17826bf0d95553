package repositories

import (
	"errors"
	"fmt"

	"BalanceMonitor/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type BalanceRepository struct {
	db *gorm.DB
}

// NewBalanceRepository creates a new instance of BalanceRepository
func NewBalanceRepository(db *gorm.DB) *BalanceRepository {
	return &BalanceRepository{db: db}
}

// Init ensures the balance_history table and its covering index exist.
// Safe to call before every write and read; a no-op once present.
func (r *BalanceRepository) Init() error {
	if err := r.db.AutoMigrate(&models.BalanceRecord{}); err != nil {
		return fmt.Errorf("failed to initialize balance_history: %w", err)
	}
	return nil
}

// Create appends a new BalanceRecord. CreatedAt is assigned by the store,
// never by the caller.
func (r *BalanceRepository) Create(record *models.BalanceRecord) error {
	if record == nil {
		return errors.New("record cannot be nil")
	}
	return r.db.Create(record).Error
}

// PreviousBalance returns the balance of the most recently created record
// for the account, or nil when the account has no history. "Most recent"
// is by insertion time (created_at), not the client-reported timestamp.
func (r *BalanceRepository) PreviousBalance(label, number string) (*decimal.Decimal, error) {
	var record models.BalanceRecord
	err := r.db.Where("account_label = ? AND account_number = ?", label, number).
		Order("created_at DESC").
		First(&record).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record.Balance, nil
}

// DistinctAccounts retrieves all unique (label, number) pairs, ordered by label
func (r *BalanceRepository) DistinctAccounts() ([]models.Account, error) {
	accounts := make([]models.Account, 0)
	err := r.db.Model(&models.BalanceRecord{}).
		Select("DISTINCT account_label AS label, account_number AS number").
		Order("account_label ASC").
		Scan(&accounts).Error
	return accounts, err
}

// History retrieves records matching all supplied filters, ordered by the
// client-reported timestamp ascending. An empty labels slice means no
// account filter. endDate is inclusive through end of day.
func (r *BalanceRepository) History(labels []string, startDate, endDate string) ([]models.HistoryRow, error) {
	q := r.db.Model(&models.BalanceRecord{}).
		Select("timestamp, account_label, account_number, balance, event_type, broker, currency")

	if len(labels) > 0 {
		q = q.Where("account_label IN ?", labels)
	}
	if startDate != "" {
		q = q.Where("timestamp >= ?", startDate)
	}
	if endDate != "" {
		// lexicographic compare on the stored text: a T-separated
		// timestamp sorts after this space-separated ceiling and falls
		// outside the bound
		q = q.Where("timestamp <= ?", endDate+" 23:59:59")
	}

	rows := make([]models.HistoryRow, 0)
	err := q.Order("timestamp ASC").Scan(&rows).Error
	return rows, err
}
