package commands

import (
	"context"
	"log/slog"

	"learnscape-checkout/internal/domain/promocode"
	"learnscape-checkout/internal/domain/purchase"
)

// CompensationManager undoes the durable effects of a half-finished paid
// attempt: the registration record, and the promo consumption when a code
// was applied. Both reversals are attempted independently; their failures
// are logged and never re-thrown, because the buyer is already being shown
// the original terminal error.
type CompensationManager struct {
	registrations RegistrationAPI
	promos        *PromoLedger
	logger        *slog.Logger
}

func NewCompensationManager(registrations RegistrationAPI, promos *PromoLedger, logger *slog.Logger) *CompensationManager {
	return &CompensationManager{
		registrations: registrations,
		promos:        promos,
		logger:        logger,
	}
}

func (m *CompensationManager) Rollback(ctx context.Context, attempt *purchase.Attempt, promo *promocode.PromoCode) {
	buyer := attempt.Buyer()

	if err := m.registrations.Rollback(ctx, RegistrationRollbackRequest{
		BuyerID:   buyer.UserID,
		ProductID: attempt.ProductID(),
		Email:     buyer.Email,
		IntentID:  attempt.IntentID(),
	}); err != nil {
		m.logger.Error("registration rollback failed",
			"attempt_id", attempt.ID(),
			"buyer_id", buyer.UserID,
			"product_id", attempt.ProductID(),
			"intent_id", attempt.IntentID(),
			"error", err)
	}

	if promo == nil {
		return
	}
	if err := m.promos.Rollback(ctx, promo, buyer.UserID); err != nil {
		m.logger.Error("promo code rollback failed",
			"attempt_id", attempt.ID(),
			"ledger_id", promo.LedgerID(),
			"buyer_id", buyer.UserID,
			"error", err)
	}
}
