package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"BalanceMonitor/internal/models"

	"go.uber.org/zap"
)

// HandleBalanceUpdate ingests one balance-change event: previous-value
// lookup, notification, then persistence. The notification goes out before
// the insert so the message can reference the pre-persistence balance.
// Only an unparseable body changes the HTTP status; notify and persist
// failures degrade into false flags in a 200 response.
func (c *Controller) HandleBalanceUpdate(w http.ResponseWriter, r *http.Request) {
	// decoding through a pointer catches the JSON literal "null", which
	// would otherwise pass as a zero-value payload
	var payload *models.BalanceUpdate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload == nil {
		c.writeJSON(w, http.StatusBadRequest, map[string]string{
			"status":  "error",
			"message": "no JSON data received",
		})
		return
	}

	c.logger.Info("balance update received",
		zap.String("account_label", payload.AccountLabel),
		zap.String("account_number", payload.AccountNumber),
		zap.String("balance", payload.NewBalance.String()),
		zap.String("event_type", payload.EventType),
		zap.String("timestamp", payload.Timestamp))

	previous, err := c.store.PreviousBalance(payload.AccountLabel, payload.AccountNumber)
	if err != nil {
		// lookup failure reads as "no prior record"; the pipeline carries on
		c.logger.Error("failed to read previous balance", zap.Error(err))
		previous = nil
	}

	sent := c.notifier.Notify(*payload, previous)

	logged := true
	if err := c.store.Init(); err != nil {
		c.logger.Error("database initialization failed", zap.Error(err))
		logged = false
	}
	if logged {
		record := &models.BalanceRecord{
			Timestamp:     payload.Timestamp,
			AccountLabel:  payload.AccountLabel,
			AccountNumber: payload.AccountNumber,
			Balance:       payload.NewBalance,
			EventType:     payload.EventType,
			Broker:        payload.Broker,
			Currency:      payload.Currency,
		}
		if err := c.store.Create(record); err != nil {
			c.logger.Error("failed to persist balance record", zap.Error(err))
			logged = false
		}
	}

	c.writeJSON(w, http.StatusOK, map[string]any{
		"status":          "success",
		"telegram_sent":   sent,
		"database_logged": logged,
	})
}

// HandleAccounts lists all distinct (label, number) pairs.
func (c *Controller) HandleAccounts(w http.ResponseWriter, _ *http.Request) {
	if err := c.store.Init(); err != nil {
		c.logger.Error("database initialization failed", zap.Error(err))
	}

	accounts, err := c.store.DistinctAccounts()
	if err != nil {
		c.logger.Error("failed to list accounts", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	c.writeJSON(w, http.StatusOK, accounts)
}

// HandleHistory serves the filtered balance history.
func (c *Controller) HandleHistory(w http.ResponseWriter, r *http.Request) {
	if err := c.store.Init(); err != nil {
		c.logger.Error("database initialization failed", zap.Error(err))
	}

	labels := parseAccountsParam(r.URL.Query().Get("accounts"))
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")

	rows, err := c.store.History(labels, startDate, endDate)
	if err != nil {
		c.logger.Error("failed to query history", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	c.writeJSON(w, http.StatusOK, rows)
}

// HandleHealth reports liveness and the active storage dialect.
func (c *Controller) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	c.writeJSON(w, http.StatusOK, map[string]string{
		"status":   "healthy",
		"service":  "balance-monitor",
		"database": c.dialect,
	})
}

// parseAccountsParam splits the comma-separated accounts filter. An empty
// parameter means "no filter", not a filter matching the empty label.
func parseAccountsParam(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
