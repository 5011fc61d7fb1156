// Package gateway implements the card-payment port against Stripe. The
// backend opens the payment intent; this gateway attaches the card as a
// payment method and confirms the hold without capturing it.
package gateway

import (
	"context"
	"errors"
	"fmt"

	"learnscape-checkout/internal/domain/purchase"
	"learnscape-checkout/internal/pkg/config"
	"learnscape-checkout/internal/pkg/errs"

	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/paymentintent"
	"github.com/stripe/stripe-go/v80/paymentmethod"
)

type StripeGateway struct{}

func NewStripeGateway(cfg config.StripeConfig) *StripeGateway {
	stripe.Key = cfg.SecretKey
	return &StripeGateway{}
}

func (g *StripeGateway) AttachPaymentMethod(ctx context.Context, card purchase.Card, billingName, billingEmail string) (string, error) {
	params := &stripe.PaymentMethodParams{
		Type: stripe.String(string(stripe.PaymentMethodTypeCard)),
		Card: &stripe.PaymentMethodCardParams{
			Number:   stripe.String(card.Number),
			ExpMonth: stripe.Int64(card.ExpMonth),
			ExpYear:  stripe.Int64(card.ExpYear),
			CVC:      stripe.String(card.CVC),
		},
		BillingDetails: &stripe.PaymentMethodBillingDetailsParams{
			Name:  stripe.String(billingName),
			Email: stripe.String(billingEmail),
		},
	}
	params.Context = ctx

	pm, err := paymentmethod.New(params)
	if err != nil {
		return "", asCardError(err)
	}
	return pm.ID, nil
}

// ConfirmAuthorization confirms the intent against the attached method. Any
// resulting status other than requires_capture is a failure even when Stripe
// reports no error, because nothing downstream may run without a capturable
// hold.
func (g *StripeGateway) ConfirmAuthorization(ctx context.Context, auth purchase.Authorization, paymentMethodID string) error {
	params := &stripe.PaymentIntentConfirmParams{
		PaymentMethod: stripe.String(paymentMethodID),
	}
	params.Context = ctx

	pi, err := paymentintent.Confirm(auth.IntentID, params)
	if err != nil {
		return asCardError(err)
	}
	if pi.Status != stripe.PaymentIntentStatusRequiresCapture {
		return &errs.CardError{Code: errs.CardProcessingError}
	}
	return nil
}

// asCardError translates Stripe's error vocabulary into the domain's fixed
// decline codes. Non-card failures stay transport errors.
func asCardError(err error) error {
	var stripeErr *stripe.Error
	if !errors.As(err, &stripeErr) {
		return &errs.NetworkError{Kind: errs.NetworkUnreachable, Op: "stripe", Err: err}
	}
	if stripeErr.HTTPStatusCode >= 500 {
		return &errs.NetworkError{
			Kind: errs.NetworkServerError,
			Op:   "stripe",
			Err:  fmt.Errorf("status %d", stripeErr.HTTPStatusCode),
		}
	}

	switch stripeErr.Code {
	case stripe.ErrorCodeExpiredCard:
		return &errs.CardError{Code: errs.CardExpired}
	case stripe.ErrorCodeIncorrectCVC, stripe.ErrorCodeInvalidCVC:
		return &errs.CardError{Code: errs.CardBadCVC}
	case stripe.ErrorCodeIncorrectNumber, stripe.ErrorCodeInvalidNumber:
		return &errs.CardError{Code: errs.CardBadNumber}
	case stripe.ErrorCodeInvalidExpiryMonth, stripe.ErrorCodeInvalidExpiryYear:
		return &errs.CardError{Code: errs.CardBadExpiry}
	case stripe.ErrorCodeProcessingError:
		return &errs.CardError{Code: errs.CardProcessingError}
	case stripe.ErrorCodeCardDeclined:
		if stripeErr.DeclineCode == stripe.DeclineCodeInsufficientFunds {
			return &errs.CardError{Code: errs.CardInsufficientFunds}
		}
		return &errs.CardError{Code: errs.CardDeclined}
	default:
		// Unknown codes keep the raw value; Message() falls back to the
		// generic text.
		return &errs.CardError{Code: errs.CardErrorCode(stripeErr.Code)}
	}
}
