package promocode

import (
	"errors"
	"time"

	"learnscape-checkout/internal/domain/catalog"
	"learnscape-checkout/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidDiscountPercent = errors.New("discount percentage must be between 0 and 100")

// PromoCode mirrors one row of the platform's promo-code ledger. The ledger
// endpoint is the authority; this entity re-validates the snapshot it returns
// so rejections carry a precise reason.
type PromoCode struct {
	ledgerID           uuid.UUID
	code               string
	percentOff         float64
	expiresAt          *time.Time
	maxUses            int
	productIDs         []uuid.UUID
	allProducts        bool
	usedBy             []uuid.UUID
	allowSubscriptions bool
}

func NewPromoCode(
	ledgerID uuid.UUID,
	code string,
	percentOff float64,
	expiresAt *time.Time,
	maxUses int,
	productIDs []uuid.UUID,
	allProducts bool,
	usedBy []uuid.UUID,
	allowSubscriptions bool,
) (*PromoCode, error) {
	if percentOff < 0 || percentOff > 100 {
		return nil, ErrInvalidDiscountPercent
	}
	return &PromoCode{
		ledgerID:           ledgerID,
		code:               code,
		percentOff:         percentOff,
		expiresAt:          expiresAt,
		maxUses:            maxUses,
		productIDs:         productIDs,
		allProducts:        allProducts,
		usedBy:             dedupe(usedBy),
		allowSubscriptions: allowSubscriptions,
	}, nil
}

func (p *PromoCode) LedgerID() uuid.UUID { return p.ledgerID }
func (p *PromoCode) Code() string        { return p.code }
func (p *PromoCode) PercentOff() float64 { return p.percentOff }
func (p *PromoCode) UsedBy() []uuid.UUID { return p.usedBy }

// ValidateUsage checks every rejection reason in the order the checkout
// dialog reports them.
func (p *PromoCode) ValidateUsage(productID, buyerID uuid.UUID, kind catalog.Kind, now time.Time) error {
	if p.expiresAt != nil && now.After(*p.expiresAt) {
		return errs.ErrPromoExpired
	}
	if p.maxUses > 0 && len(p.usedBy) >= p.maxUses {
		return errs.ErrPromoExhausted
	}
	if !p.allProducts && !containsID(p.productIDs, productID) {
		return errs.ErrPromoNotApplicable
	}
	if containsID(p.usedBy, buyerID) {
		return errs.ErrPromoAlreadyUsed
	}
	if kind == catalog.KindSubscription && !p.allowSubscriptions {
		return errs.ErrPromoNoSubscriptions
	}
	return nil
}

// UsedByWith returns the consumed list with the buyer added. Set semantics:
// a buyer appears at most once per code, so re-adding is a no-op.
func (p *PromoCode) UsedByWith(buyerID uuid.UUID) []uuid.UUID {
	if containsID(p.usedBy, buyerID) {
		return p.usedBy
	}
	out := make([]uuid.UUID, 0, len(p.usedBy)+1)
	out = append(out, p.usedBy...)
	return append(out, buyerID)
}

// UsedByWithout returns the consumed list with the buyer removed. Safe to
// apply even when the buyer was never added, which makes ledger rollback
// idempotent.
func (p *PromoCode) UsedByWithout(buyerID uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(p.usedBy))
	for _, id := range p.usedBy {
		if id != buyerID {
			out = append(out, id)
		}
	}
	return out
}

// ApplyDiscount computes the discounted amount in minor units, never below
// zero.
func ApplyDiscount(baseCents int64, percentOff float64) int64 {
	discounted := baseCents - int64(float64(baseCents)*percentOff/100.0)
	if discounted < 0 {
		return 0
	}
	return discounted
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
