package alert

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/quizcash/quizcash/internal/config"
	"github.com/quizcash/quizcash/pkg/clients"
)

// Notifier pushes integrity alerts to the operational endpoint. Delivery is
// best effort: a failed alert is logged, never propagated to the caller,
// because the caller is already on an error path.
type Notifier struct {
	url    string
	client clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Notifier {
	return &Notifier{
		url:    cfg.AlertAddress + "/api/alerts",
		client: client,
	}
}

type payload struct {
	Event     string         `json:"event"`
	Fields    map[string]any `json:"fields,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

func (n *Notifier) Alert(event string, fields map[string]any) {
	body, err := json.Marshal(payload{
		Event:     event,
		Fields:    fields,
		Timestamp: time.Now(),
	})
	if err != nil {
		zap.L().Error("can't marshal alert payload", zap.Error(err))
		return
	}

	statusCode, _, err := n.client.Post(n.url, "application/json", body)
	if err != nil {
		zap.L().Error("can't deliver alert", zap.String("event", event), zap.Error(err))
		return
	}
	if statusCode != http.StatusOK && statusCode != http.StatusAccepted {
		zap.L().Error("alert endpoint rejected alert",
			zap.String("event", event), zap.Int("status", statusCode))
	}
}
