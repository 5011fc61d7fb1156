package response

import (
	"learnscape-checkout/internal/usecase/commands"
	"learnscape-checkout/internal/usecase/queries"

	"github.com/google/uuid"
)

type CheckoutResponse struct {
	AttemptID      uuid.UUID `json:"attemptId"`
	RegistrationID uuid.UUID `json:"registrationId"`
	State          string    `json:"state"`
	AmountCents    int64     `json:"amountCents"`
	Currency       string    `json:"currency"`
	Free           bool      `json:"free"`
	EmailWarning   bool      `json:"emailWarning,omitempty"`
}

func FromPurchaseResult(result *commands.PurchaseResult) *CheckoutResponse {
	return &CheckoutResponse{
		AttemptID:      result.AttemptID,
		RegistrationID: result.RegistrationID,
		State:          result.State.String(),
		AmountCents:    result.AmountCents,
		Currency:       result.Currency.String(),
		Free:           result.Free,
		EmailWarning:   result.EmailWarning,
	}
}

type QuoteResponse struct {
	ProductID       uuid.UUID `json:"productId"`
	Kind            string    `json:"kind"`
	Currency        string    `json:"currency"`
	AmountCents     int64     `json:"amountCents"`
	Free            bool      `json:"free"`
	PromoApplied    bool      `json:"promoApplied"`
	DiscountPercent float64   `json:"discountPercent,omitempty"`
	PromoRejection  string    `json:"promoRejection,omitempty"`
}

func FromQuoteView(view *queries.QuoteView) *QuoteResponse {
	return &QuoteResponse{
		ProductID:       view.ProductID,
		Kind:            view.Kind.String(),
		Currency:        view.Currency.String(),
		AmountCents:     view.AmountCents,
		Free:            view.Free,
		PromoApplied:    view.PromoApplied,
		DiscountPercent: view.DiscountPercent,
		PromoRejection:  view.PromoRejection,
	}
}
