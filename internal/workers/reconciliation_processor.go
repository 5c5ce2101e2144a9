// internal/workers/reconciliation_processor.go
package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"

	"github.com/pondside/farmops-be/internal/core/domain"
	"github.com/pondside/farmops-be/internal/core/ports"
)

// StockReconcilePayload is the task payload for a season reconciliation run.
type StockReconcilePayload struct {
	SeasonID uuid.UUID `json:"season_id"`
}

// ReconciliationProcessor cross-checks the ledger against the source
// documents. Consumption can be derived two ways: from usage and correction
// rows in the ledger, and from the feed inputs and chemical-application
// events themselves. The two must agree; a mismatch means a write path
// bypassed the orchestrator.
type ReconciliationProcessor struct {
	ledger      ports.LedgerService
	adjustments ports.AdjustmentRepository
	items       ports.ItemRepository
	logger      *slog.Logger
}

// NewReconciliationProcessor creates a new reconciliation processor
func NewReconciliationProcessor(
	ledger ports.LedgerService,
	adjustments ports.AdjustmentRepository,
	items ports.ItemRepository,
	logger *slog.Logger,
) *ReconciliationProcessor {
	return &ReconciliationProcessor{
		ledger:      ledger,
		adjustments: adjustments,
		items:       items,
		logger:      logger.With(slog.String("processor", "reconciliation")),
	}
}

// ReconcileSeason verifies every active item of a season.
func (p *ReconciliationProcessor) ReconcileSeason(ctx context.Context, t *asynq.Task) error {
	var payload StockReconcilePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	p.logger.InfoContext(ctx, "reconciling season stock",
		slog.String("season_id", payload.SeasonID.String()))

	seasonID := payload.SeasonID
	usage, err := p.ledger.UsageSummary(ctx, ports.UsageFilter{SeasonID: &seasonID})
	if err != nil {
		return fmt.Errorf("failed to derive document usage: %w", err)
	}

	documentUsage := make(map[uuid.UUID]decimal.Decimal)
	for _, line := range usage {
		documentUsage[line.ItemID] = documentUsage[line.ItemID].Add(line.TotalQuantity)
	}

	items, err := p.items.FindActive(ctx, seasonID, ports.ItemFilter{Limit: 1000})
	if err != nil {
		return fmt.Errorf("failed to list season items: %w", err)
	}

	var drifted, negative int
	for i := range items {
		item := &items[i]

		consumed, balance, err := p.ledgerConsumption(ctx, item.ItemID)
		if err != nil {
			return fmt.Errorf("failed to fold ledger for item %s: %w", item.ItemID, err)
		}

		if balance.IsNegative() {
			negative++
			p.logger.WarnContext(ctx, "computed stock is negative",
				slog.String("item_id", item.ItemID.String()),
				slog.String("item_name", item.Name.Resolve(domain.DefaultLanguage)),
				slog.String("balance", balance.String()))
		}

		docTotal := documentUsage[item.ItemID]
		if !consumed.Equal(docTotal) {
			drifted++
			p.logger.WarnContext(ctx, "ledger drifted from source documents",
				slog.String("item_id", item.ItemID.String()),
				slog.String("item_name", item.Name.Resolve(domain.DefaultLanguage)),
				slog.String("ledger_consumed", consumed.String()),
				slog.String("document_consumed", docTotal.String()))
		}
	}

	p.logger.InfoContext(ctx, "season reconciliation completed",
		slog.String("season_id", seasonID.String()),
		slog.Int("items_checked", len(items)),
		slog.Int("drifted", drifted),
		slog.Int("negative_stock", negative))

	return nil
}

// ledgerConsumption folds an item's ledger rows into the net consumption
// (usage plus document-linked corrections, negated) and the overall balance.
// A deleted document leaves its usage row plus an equal-and-opposite
// correction, so both derivations drop it symmetrically.
func (p *ReconciliationProcessor) ledgerConsumption(ctx context.Context, itemID uuid.UUID) (consumed, balance decimal.Decimal, err error) {
	adjustments, err := p.adjustments.ListByItem(ctx, itemID)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	for i := range adjustments {
		adj := &adjustments[i]
		balance = balance.Add(adj.Delta)

		switch adj.Type {
		case domain.AdjustmentUsage:
			consumed = consumed.Sub(adj.Delta)
		case domain.AdjustmentCorrection:
			if adj.Ref != nil && (adj.Ref.Kind == domain.DocumentFeeding || adj.Ref.Kind == domain.DocumentEvent) {
				consumed = consumed.Sub(adj.Delta)
			}
		}
	}

	return consumed, balance, nil
}
