package handlers

import (
	"errors"
	"testing"

	"BalanceMonitor/config"
	"BalanceMonitor/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var assertErr = errors.New("storage unavailable")

// MockStore is a mock implementation of BalanceStore for testing
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Init() error {
	return m.Called().Error(0)
}

func (m *MockStore) Create(record *models.BalanceRecord) error {
	return m.Called(record).Error(0)
}

func (m *MockStore) PreviousBalance(label, number string) (*decimal.Decimal, error) {
	args := m.Called(label, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*decimal.Decimal), args.Error(1)
}

func (m *MockStore) DistinctAccounts() ([]models.Account, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Account), args.Error(1)
}

func (m *MockStore) History(labels []string, startDate, endDate string) ([]models.HistoryRow, error) {
	args := m.Called(labels, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.HistoryRow), args.Error(1)
}

// MockNotifier is a mock implementation of Notifier for testing
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ev models.BalanceUpdate, previous *decimal.Decimal) bool {
	return m.Called(ev, previous).Bool(0)
}

func newTestController(t *testing.T, store BalanceStore, notifier Notifier) *Controller {
	t.Helper()
	auth := config.AuthConfig{
		DashboardPassword: "admin123",
		SessionSecret:     "test-secret",
	}
	c, err := NewController(store, notifier, auth, "SQLite", zaptest.NewLogger(t))
	require.NoError(t, err)
	return c
}
