package notifier

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"BalanceMonitor/internal/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const defaultAPIBase = "https://api.telegram.org"

// Telegram dispatches balance-change alerts to a fixed chat. Delivery is
// best effort: it never returns an error and never blocks the caller beyond
// the request timeout.
type Telegram struct {
	token   string
	chatID  string
	apiBase string
	client  *http.Client
	logger  *zap.Logger
}

func NewTelegram(token, chatID string, logger *zap.Logger) *Telegram {
	return &Telegram{
		token:   token,
		chatID:  chatID,
		apiBase: defaultAPIBase,
		client:  &http.Client{Timeout: 10 * time.Second},
		logger:  logger,
	}
}

// Notify sends a one-line "label // previous --> current" message. Missing
// configuration is a normal degraded mode and short-circuits to false.
func (t *Telegram) Notify(ev models.BalanceUpdate, previous *decimal.Decimal) bool {
	if t.token == "" || t.chatID == "" {
		t.logger.Warn("telegram not configured, skipping notification")
		return false
	}

	label := ev.AccountLabel
	if label == "" {
		label = "Unknown"
	}

	message := fmt.Sprintf("%s // %s", label, ev.NewBalance.StringFixed(2))
	if previous != nil {
		message = fmt.Sprintf("%s // %s --> %s", label, previous.StringFixed(2), ev.NewBalance.StringFixed(2))
	}

	body, err := json.Marshal(map[string]string{
		"chat_id": t.chatID,
		"text":    message,
	})
	if err != nil {
		t.logger.Error("failed to encode telegram payload", zap.Error(err))
		return false
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", t.apiBase, t.token)
	resp, err := t.client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		t.logger.Error("telegram request failed", zap.Error(err))
		return false
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode != http.StatusOK {
		t.logger.Error("telegram rejected notification", zap.Int("status", resp.StatusCode))
		return false
	}

	t.logger.Info("telegram notification sent", zap.String("account_label", label))
	return true
}

// drainAndClose empties the body so the transport can reuse the connection.
func drainAndClose(rc io.ReadCloser) {
	_, _ = io.Copy(io.Discard, rc)
	_ = rc.Close()
}
