package handlers

import (
	"encoding/json"
	"html/template"
	"net/http"

	"BalanceMonitor/config"
	"BalanceMonitor/internal/models"
	"BalanceMonitor/web"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// BalanceStore is the storage surface the HTTP layer depends on.
type BalanceStore interface {
	Init() error
	Create(record *models.BalanceRecord) error
	PreviousBalance(label, number string) (*decimal.Decimal, error)
	DistinctAccounts() ([]models.Account, error)
	History(labels []string, startDate, endDate string) ([]models.HistoryRow, error)
}

// Notifier dispatches a best-effort balance alert and reports delivery.
type Notifier interface {
	Notify(ev models.BalanceUpdate, previous *decimal.Decimal) bool
}

type Controller struct {
	store     BalanceStore
	notifier  Notifier
	logger    *zap.Logger
	dialect   string
	passHash  []byte
	jwtSecret []byte
	templates *template.Template
}

// NewController returns a new controller. The dashboard password is hashed
// once here; requests only ever see the hash.
func NewController(store BalanceStore, notifier Notifier, auth config.AuthConfig, dialect string, logger *zap.Logger) (*Controller, error) {
	passHash, err := hashOrRead(auth.DashboardPassword)
	if err != nil {
		return nil, err
	}

	templates, err := template.ParseFS(web.Templates, "templates/*.html")
	if err != nil {
		return nil, err
	}

	return &Controller{
		store:     store,
		notifier:  notifier,
		logger:    logger,
		dialect:   dialect,
		passHash:  passHash,
		jwtSecret: []byte(auth.SessionSecret),
		templates: templates,
	}, nil
}

// NewRouter returns a new router with all the routes defined in this file.
func (c *Controller) NewRouter() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", c.HandleHealth).Methods(http.MethodGet)
	r.HandleFunc("/api/balance_update", c.HandleBalanceUpdate).Methods(http.MethodPost)

	r.HandleFunc("/login", c.HandleLoginPage).Methods(http.MethodGet)
	r.HandleFunc("/login", c.HandleLogin).Methods(http.MethodPost)
	r.HandleFunc("/logout", c.HandleLogout).Methods(http.MethodGet)

	r.Handle("/", c.RequireAuth(http.HandlerFunc(c.HandleDashboard))).Methods(http.MethodGet)
	r.Handle("/api/accounts", c.RequireAuth(http.HandlerFunc(c.HandleAccounts))).Methods(http.MethodGet)
	r.Handle("/api/history", c.RequireAuth(http.HandlerFunc(c.HandleHistory))).Methods(http.MethodGet)

	return r
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
