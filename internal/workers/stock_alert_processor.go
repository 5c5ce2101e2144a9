// internal/workers/stock_alert_processor.go
package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"

	"github.com/pondside/farmops-be/internal/core/domain"
	"github.com/pondside/farmops-be/internal/core/ports"
	"github.com/pondside/farmops-be/internal/pkg/config"
)

// StockAlertPayload is the task payload for a low-stock alert sweep.
// Threshold is compared against each item's computed balance; items at or
// below it are included in the alert.
type StockAlertPayload struct {
	SeasonID  uuid.UUID       `json:"season_id"`
	Threshold decimal.Decimal `json:"threshold"`
	Recipient string          `json:"recipient"`
}

// StockAlertProcessor emails low-stock and negative-stock warnings
type StockAlertProcessor struct {
	config      *config.Config
	adjustments ports.AdjustmentRepository
	items       ports.ItemRepository
	logger      *slog.Logger
}

// NewStockAlertProcessor creates a new stock alert processor
func NewStockAlertProcessor(
	cfg *config.Config,
	adjustments ports.AdjustmentRepository,
	items ports.ItemRepository,
	logger *slog.Logger,
) *StockAlertProcessor {
	return &StockAlertProcessor{
		config:      cfg,
		adjustments: adjustments,
		items:       items,
		logger:      logger.With(slog.String("processor", "stock_alert")),
	}
}

// SendStockAlerts sweeps a season's items and emails a digest of those at or
// below the threshold.
func (p *StockAlertProcessor) SendStockAlerts(ctx context.Context, t *asynq.Task) error {
	var payload StockAlertPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payload.Recipient == "" {
		return fmt.Errorf("recipient is required")
	}

	balances, err := p.adjustments.SumBySeason(ctx, payload.SeasonID)
	if err != nil {
		return fmt.Errorf("failed to sum season balances: %w", err)
	}

	items, err := p.items.FindActive(ctx, payload.SeasonID, ports.ItemFilter{Limit: 1000})
	if err != nil {
		return fmt.Errorf("failed to list season items: %w", err)
	}

	var lines []string
	for i := range items {
		item := &items[i]
		balance := balances[item.ItemID]
		if balance.GreaterThan(payload.Threshold) {
			continue
		}

		name := item.Name.Resolve(domain.DefaultLanguage)
		lines = append(lines, fmt.Sprintf("%s: %s %s remaining", name, balance.String(), item.Unit))

		p.logger.WarnContext(ctx, "item stock at or below threshold",
			slog.String("item_id", item.ItemID.String()),
			slog.String("item_name", name),
			slog.String("balance", balance.String()))
	}

	if len(lines) == 0 {
		p.logger.InfoContext(ctx, "no items below threshold",
			slog.String("season_id", payload.SeasonID.String()))
		return nil
	}

	subject := fmt.Sprintf("Low stock alert: %d item(s) need restocking", len(lines))
	body := "The following inventory items are at or below the configured threshold:\n\n" +
		strings.Join(lines, "\n")

	// In development, just log the alert
	if p.config.App.Environment == "development" {
		p.logger.InfoContext(ctx, "stock alert would be sent",
			slog.String("to", payload.Recipient),
			slog.String("subject", subject),
			slog.String("body", body))
		return nil
	}

	from := "alerts@pondside.farm"
	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		from, payload.Recipient, subject, body,
	))

	auth := smtp.PlainAuth("", "", "", "smtp.example.com")
	if err := smtp.SendMail("smtp.example.com:587", auth, from, []string{payload.Recipient}, msg); err != nil {
		return fmt.Errorf("failed to send alert email: %w", err)
	}

	p.logger.InfoContext(ctx, "stock alert sent",
		slog.String("to", payload.Recipient),
		slog.Int("items", len(lines)))

	return nil
}
