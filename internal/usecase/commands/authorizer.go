package commands

import (
	"context"

	"learnscape-checkout/internal/domain/catalog"
	"learnscape-checkout/internal/domain/purchase"
)

// PaymentAuthorizer drives the paid path up to (and including) the confirmed
// hold: create the pending authorization for the locked amount, attach the
// tokenized card, confirm authorize-only. Failures here never need
// compensation because nothing durable exists yet.
type PaymentAuthorizer struct {
	payments PaymentsAPI
	gateway  PaymentGateway
}

func NewPaymentAuthorizer(payments PaymentsAPI, gateway PaymentGateway) *PaymentAuthorizer {
	return &PaymentAuthorizer{
		payments: payments,
		gateway:  gateway,
	}
}

// Authorize runs the three authorization steps against the attempt's locked
// price. The amount is read from the attempt, never from caller input: by the
// time this runs the price is frozen.
func (a *PaymentAuthorizer) Authorize(ctx context.Context, attempt *purchase.Attempt, product *catalog.Product, card purchase.Card) error {
	locked, err := attempt.LockedPrice()
	if err != nil {
		return err
	}

	if err := attempt.TransitionTo(purchase.StateAuthorizingMethod); err != nil {
		return err
	}

	buyer := attempt.Buyer()
	auth, err := a.payments.CreateAuthorization(ctx, CreateAuthorizationRequest{
		AmountCents:  locked.Cents(),
		Currency:     locked.Currency(),
		Buyer:        buyer,
		ProductID:    product.ID(),
		PaymentType:  product.Kind(),
		CaptchaToken: attempt.CaptchaToken(),
	})
	if err != nil {
		return err
	}
	attempt.AttachIntent(auth.IntentID)

	methodID, err := a.gateway.AttachPaymentMethod(ctx, card, buyer.FullName(), buyer.Email)
	if err != nil {
		return err
	}

	if err := attempt.TransitionTo(purchase.StateConfirmingAuthorization); err != nil {
		return err
	}

	return a.gateway.ConfirmAuthorization(ctx, auth, methodID)
}
