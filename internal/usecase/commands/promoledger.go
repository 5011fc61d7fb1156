package commands

import (
	"context"

	"learnscape-checkout/internal/domain/catalog"
	"learnscape-checkout/internal/domain/promocode"
	"learnscape-checkout/internal/pkg/clock"
	"learnscape-checkout/internal/pkg/errs"

	"github.com/google/uuid"
)

// PromoLedger validates promo codes against the platform ledger and records
// consumption. The ledger endpoint is authoritative; the snapshot it returns
// is re-validated locally so every rejection carries its reason.
type PromoLedger struct {
	api   PromoAPI
	clock clock.Clock
}

func NewPromoLedger(api PromoAPI, clk clock.Clock) *PromoLedger {
	return &PromoLedger{api: api, clock: clk}
}

func (l *PromoLedger) Validate(ctx context.Context, code string, product *catalog.Product, buyerID, orgID uuid.UUID, email string) (*promocode.PromoCode, error) {
	snapshot, err := l.api.Apply(ctx, code, product.ID(), buyerID, orgID, email)
	if err != nil {
		return nil, err
	}

	pc, err := promocode.NewPromoCode(
		snapshot.LedgerID,
		snapshot.Code,
		snapshot.PercentOff,
		snapshot.ExpiresAt,
		snapshot.MaxUses,
		snapshot.ProductIDs,
		snapshot.AllProducts,
		snapshot.UsedBy,
		snapshot.AllowSubscriptions,
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPromoNotApplicable)
	}

	if err := pc.ValidateUsage(product.ID(), buyerID, product.Kind(), l.clock.Now()); err != nil {
		return nil, err
	}

	return pc, nil
}

// Commit records the buyer in the consumed list. Must only run after a
// successful capture.
func (l *PromoLedger) Commit(ctx context.Context, pc *promocode.PromoCode, buyerID uuid.UUID) error {
	return l.api.UpdateUsedBy(ctx, pc.LedgerID(), pc.UsedByWith(buyerID))
}

// Rollback removes the buyer from the consumed list. Set-difference
// semantics make it safe to call even when Commit never ran.
func (l *PromoLedger) Rollback(ctx context.Context, pc *promocode.PromoCode, buyerID uuid.UUID) error {
	return l.api.UpdateUsedBy(ctx, pc.LedgerID(), pc.UsedByWithout(buyerID))
}
