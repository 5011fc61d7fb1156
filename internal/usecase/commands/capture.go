package commands

import (
	"context"
	"log/slog"

	"learnscape-checkout/internal/domain/catalog"
	"learnscape-checkout/internal/domain/purchase"
	"learnscape-checkout/internal/pkg/errs"
)

// CaptureCoordinator converts the confirmed hold into a charge and finalizes
// buyer-facing entitlements.
type CaptureCoordinator struct {
	payments PaymentsAPI
	users    UserDirectory
	logger   *slog.Logger
}

func NewCaptureCoordinator(payments PaymentsAPI, users UserDirectory, logger *slog.Logger) *CaptureCoordinator {
	return &CaptureCoordinator{
		payments: payments,
		users:    users,
		logger:   logger,
	}
}

// Capture charges the authorized intent. For paid platform courses it then
// sets the buyer's paid-registration flag through an idempotent update; that
// update is best-effort bookkeeping — its failure is logged and never rolls
// back the capture.
func (c *CaptureCoordinator) Capture(ctx context.Context, attempt *purchase.Attempt, product *catalog.Product) (CaptureResult, error) {
	buyer := attempt.Buyer()

	result, err := c.payments.Capture(ctx, attempt.IntentID(), CaptureRequest{
		Buyer:       buyer,
		ProductID:   product.ID(),
		PaymentType: product.Kind(),
	})
	if err != nil {
		return CaptureResult{}, errs.Mark(err, errs.ErrCaptureFailed)
	}

	if product.IsCourse() && !product.IsExternal() {
		if err := c.users.MarkPaidRegistration(ctx, buyer.UserID, buyer.OrgID); err != nil {
			c.logger.Warn("failed to set paid registration flag",
				"user_id", buyer.UserID,
				"product_id", product.ID(),
				"error", err)
		}
	}

	return result, nil
}
