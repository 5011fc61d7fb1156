package learnapi

import (
	"context"
	"net/http"
	"time"

	"learnscape-checkout/internal/pkg/errs"
	"learnscape-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

type applyPromoRequest struct {
	Code      string `json:"code"`
	ProductID string `json:"productId"`
	BuyerID   string `json:"buyerId"`
	OrgID     string `json:"orgId"`
	Email     string `json:"email"`
}

type applyPromoResponse struct {
	LedgerID           uuid.UUID   `json:"ledgerId"`
	Code               string      `json:"code"`
	DiscountAmount     float64     `json:"discountAmount"`
	ExpiresAt          *time.Time  `json:"expiresAt"`
	MaxUses            int         `json:"maxUses"`
	ProductIDs         []uuid.UUID `json:"productIds"`
	AllProducts        bool        `json:"allProducts"`
	UsersUsed          []uuid.UUID `json:"usersUsed"`
	AllowSubscriptions bool        `json:"allowSubscriptions"`
}

// Backend rejection codes for promo lookups.
var promoErrorCodes = map[string]error{
	"PROMO_NOT_FOUND":        errs.ErrPromoNotFound,
	"PROMO_EXPIRED":          errs.ErrPromoExpired,
	"PROMO_EXHAUSTED":        errs.ErrPromoExhausted,
	"PROMO_NOT_APPLICABLE":   errs.ErrPromoNotApplicable,
	"PROMO_ALREADY_USED":     errs.ErrPromoAlreadyUsed,
	"PROMO_NO_SUBSCRIPTIONS": errs.ErrPromoNoSubscriptions,
}

// Apply looks the code up in the ledger. Rejections come back as the domain
// promo sentinels; the full ledger row is returned so the domain can
// revalidate locally.
func (c *Client) Apply(ctx context.Context, code string, productID, buyerID, orgID uuid.UUID, email string) (*shared.PromoSnapshot, error) {
	body := applyPromoRequest{
		Code:      code,
		ProductID: productID.String(),
		BuyerID:   buyerID.String(),
		OrgID:     orgID.String(),
		Email:     email,
	}

	var out applyPromoResponse
	if err := c.do(ctx, "promocodes.apply", http.MethodPost, "/promocodes/apply", body, &out); err != nil {
		if apiErr, ok := asAPIError(err); ok {
			if sentinel, known := promoErrorCodes[apiErr.Code]; known {
				return nil, errs.Mark(err, sentinel)
			}
			if apiErr.Status == http.StatusNotFound {
				return nil, errs.Mark(err, errs.ErrPromoNotFound)
			}
		}
		return nil, err
	}

	return &shared.PromoSnapshot{
		LedgerID:           out.LedgerID,
		Code:               out.Code,
		PercentOff:         out.DiscountAmount,
		ExpiresAt:          out.ExpiresAt,
		MaxUses:            out.MaxUses,
		ProductIDs:         out.ProductIDs,
		AllProducts:        out.AllProducts,
		UsedBy:             out.UsersUsed,
		AllowSubscriptions: out.AllowSubscriptions,
	}, nil
}

type updatePromoRequest struct {
	UsersUsed []uuid.UUID `json:"usersUsed"`
}

// UpdateUsedBy rewrites the ledger's used-by set. Commit and rollback are the
// same call with the buyer present or absent; sending an unchanged set is a
// harmless no-op, which keeps rollback idempotent.
func (c *Client) UpdateUsedBy(ctx context.Context, ledgerID uuid.UUID, usedBy []uuid.UUID) error {
	body := updatePromoRequest{UsersUsed: usedBy}
	return c.do(ctx, "promocodes.update_used_by", http.MethodPatch, "/promocodes/"+ledgerID.String(), body, nil)
}
