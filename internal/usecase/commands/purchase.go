package commands

import (
	"context"
	"log/slog"

	"learnscape-checkout/internal/domain/catalog"
	"learnscape-checkout/internal/domain/promocode"
	"learnscape-checkout/internal/domain/purchase"
	"learnscape-checkout/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=purchase.go -destination=../../../tests/mock/commands/purchase.go -package=commandsmock

type PurchaseParams struct {
	// Buyer comes from the session; nil means a home-page purchase resolved
	// by email through the user directory.
	Buyer        *purchase.Buyer
	Email        string
	ProductID    uuid.UUID
	Kind         catalog.Kind
	CaptchaToken string
	PromoCode    *string
	Card         *purchase.Card
}

type PurchaseResult struct {
	AttemptID      uuid.UUID
	RegistrationID uuid.UUID
	State          purchase.State
	AmountCents    int64
	Currency       catalog.Currency
	Free           bool
	EmailWarning   bool
}

type PurchaseCommands interface {
	Purchase(ctx context.Context, params PurchaseParams) (*PurchaseResult, error)
}

// purchaseUseCaseImpl is the saga driver. One call runs one attempt from
// Validating to a terminal state; every step is sequential, and the fixed
// paid-path order (authorize, register, capture) must never be rearranged:
// the gateway hold is reversible while registration is not yet made, whereas
// capturing first would charge a buyer who never obtained access.
type purchaseUseCaseImpl struct {
	products    ProductCatalog
	users       UserDirectory
	captcha     CaptchaRegistry
	attempts    AttemptRepository
	authorizer  *PaymentAuthorizer
	registrar   *RegistrationService
	capturer    *CaptureCoordinator
	promos      *PromoLedger
	compensator *CompensationManager
	logger      *slog.Logger
}

func NewPurchaseCommands(
	products ProductCatalog,
	users UserDirectory,
	captcha CaptchaRegistry,
	attempts AttemptRepository,
	authorizer *PaymentAuthorizer,
	registrar *RegistrationService,
	capturer *CaptureCoordinator,
	promos *PromoLedger,
	compensator *CompensationManager,
	logger *slog.Logger,
) PurchaseCommands {
	return &purchaseUseCaseImpl{
		products:    products,
		users:       users,
		captcha:     captcha,
		attempts:    attempts,
		authorizer:  authorizer,
		registrar:   registrar,
		capturer:    capturer,
		promos:      promos,
		compensator: compensator,
		logger:      logger,
	}
}

func (u *purchaseUseCaseImpl) Purchase(ctx context.Context, params PurchaseParams) (*PurchaseResult, error) {
	if params.CaptchaToken == "" {
		return nil, errs.ErrCaptchaTokenRequired
	}

	var buyer purchase.Buyer
	if params.Buyer != nil {
		buyer = *params.Buyer
	}
	attempt := purchase.NewAttempt(buyer, params.ProductID, params.Kind, params.CaptchaToken)
	if err := attempt.TransitionTo(purchase.StateValidating); err != nil {
		return nil, err
	}

	// The token is consumed here, before any external call, and stays
	// consumed no matter how the attempt ends. A retry needs a fresh one.
	if err := u.captcha.Consume(ctx, params.CaptchaToken); err != nil {
		return nil, err
	}

	if params.Buyer == nil {
		resolved, err := u.resolveBuyer(ctx, params.Email, params.ProductID)
		if err != nil {
			return nil, err
		}
		if err := attempt.SetBuyer(*resolved); err != nil {
			return nil, err
		}
	}

	product, err := u.products.FindByID(ctx, params.ProductID, params.Kind)
	if err != nil {
		return nil, err
	}

	price, err := catalog.ResolvePrice(product, attempt.Buyer().CountryCode)
	if err != nil {
		return nil, err
	}

	if price.IsFree() {
		return u.completeFree(ctx, attempt, product, price)
	}
	return u.completePaid(ctx, attempt, product, price, params)
}

// resolveBuyer turns a bare email into a buyer identity. Each of the three
// rejections is distinct and none of them compensates: nothing external has
// happened yet.
func (u *purchaseUseCaseImpl) resolveBuyer(ctx context.Context, email string, productID uuid.UUID) (*purchase.Buyer, error) {
	if email == "" {
		return nil, errs.ErrAccountNotFound
	}

	existence, err := u.users.CheckUserExists(ctx, email, &productID)
	if err != nil {
		return nil, err
	}
	if !existence.Exists {
		return nil, errs.ErrAccountNotFound
	}
	if !existence.IsEmailVerified {
		return nil, errs.ErrEmailNotVerified
	}
	if existence.IsEnrolled {
		return nil, errs.ErrAlreadyEnrolled
	}

	return &purchase.Buyer{
		UserID:      existence.UserID,
		OrgID:       existence.OrgID,
		Email:       email,
		FirstName:   existence.FirstName,
		LastName:    existence.LastName,
		CountryCode: existence.CountryCode,
	}, nil
}

// completeFree registers directly: no authorization, no capture, and plain
// failure without compensation because registration is the only durable
// write on this path.
func (u *purchaseUseCaseImpl) completeFree(ctx context.Context, attempt *purchase.Attempt, product *catalog.Product, price catalog.Price) (*PurchaseResult, error) {
	if err := attempt.LockPrice(purchase.NewMoney(0, price.Currency)); err != nil {
		return nil, err
	}
	if err := u.attempts.Start(ctx, attempt); err != nil {
		return nil, err
	}

	if err := attempt.TransitionTo(purchase.StateRegistering); err != nil {
		return nil, err
	}
	registrationID, err := u.registrar.Register(ctx, attempt, product)
	if err != nil {
		u.failAttempt(ctx, attempt)
		return nil, err
	}

	if err := attempt.TransitionTo(purchase.StateCompleted); err != nil {
		return nil, err
	}
	u.finish(ctx, attempt)

	return &PurchaseResult{
		AttemptID:      attempt.ID(),
		RegistrationID: registrationID,
		State:          attempt.State(),
		AmountCents:    0,
		Currency:       price.Currency,
		Free:           true,
	}, nil
}

func (u *purchaseUseCaseImpl) completePaid(ctx context.Context, attempt *purchase.Attempt, product *catalog.Product, price catalog.Price, params PurchaseParams) (*PurchaseResult, error) {
	if params.Card == nil {
		return nil, errs.ErrCardDetailsRequired
	}

	baseCents, err := price.MinorUnits()
	if err != nil {
		return nil, err
	}

	chargeCents := baseCents
	var promo *promocode.PromoCode
	if params.PromoCode != nil {
		buyer := attempt.Buyer()
		promo, err = u.promos.Validate(ctx, *params.PromoCode, product, buyer.UserID, buyer.OrgID, buyer.Email)
		if err != nil {
			return nil, err
		}
		chargeCents = promocode.ApplyDiscount(baseCents, promo.PercentOff())
		attempt.AttachPromoLedger(promo.LedgerID())
	}

	// Value copy. Promo edits or price-table changes after this point cannot
	// move the charged amount.
	if err := attempt.LockPrice(purchase.NewMoney(chargeCents, price.Currency)); err != nil {
		return nil, err
	}

	if err := u.attempts.Start(ctx, attempt); err != nil {
		return nil, err
	}

	if err := u.authorizer.Authorize(ctx, attempt, product, *params.Card); err != nil {
		// The hold never confirmed: surface the card or network error as-is,
		// nothing to compensate.
		u.failAttempt(ctx, attempt)
		return nil, err
	}

	if err := attempt.TransitionTo(purchase.StateRegistering); err != nil {
		return nil, err
	}
	registrationID, err := u.registrar.Register(ctx, attempt, product)
	if err != nil {
		return nil, u.rollback(ctx, attempt, promo, err)
	}

	if err := attempt.TransitionTo(purchase.StateCapturing); err != nil {
		return nil, err
	}
	captureResult, err := u.capturer.Capture(ctx, attempt, product)
	if err != nil {
		return nil, u.rollback(ctx, attempt, promo, err)
	}

	if promo != nil {
		if err := u.promos.Commit(ctx, promo, attempt.Buyer().UserID); err != nil {
			// Charged and enrolled; a missed consumption mark is bookkeeping,
			// not a saga failure.
			u.logger.Warn("promo code commit failed",
				"attempt_id", attempt.ID(),
				"ledger_id", promo.LedgerID(),
				"error", err)
		}
	}

	if err := attempt.TransitionTo(purchase.StateCompleted); err != nil {
		return nil, err
	}
	u.finish(ctx, attempt)

	locked, err := attempt.LockedPrice()
	if err != nil {
		return nil, err
	}
	return &PurchaseResult{
		AttemptID:      attempt.ID(),
		RegistrationID: registrationID,
		State:          attempt.State(),
		AmountCents:    locked.Cents(),
		Currency:       locked.Currency(),
		EmailWarning:   captureResult.EmailWarning,
	}, nil
}

// rollback runs compensation for a post-authorization failure and returns
// the original cause. Compensation outcomes are logged inside the manager
// and never mask the cause.
func (u *purchaseUseCaseImpl) rollback(ctx context.Context, attempt *purchase.Attempt, promo *promocode.PromoCode, cause error) error {
	if err := attempt.TransitionTo(purchase.StateRollingBack); err != nil {
		u.logger.Error("attempt entered rollback from unexpected state",
			"attempt_id", attempt.ID(),
			"state", attempt.State(),
			"error", err)
	}
	u.compensator.Rollback(ctx, attempt, promo)
	u.failAttempt(ctx, attempt)
	return cause
}

func (u *purchaseUseCaseImpl) failAttempt(ctx context.Context, attempt *purchase.Attempt) {
	if err := attempt.TransitionTo(purchase.StateFailed); err != nil {
		u.logger.Error("could not mark attempt failed",
			"attempt_id", attempt.ID(),
			"state", attempt.State(),
			"error", err)
	}
	u.finish(ctx, attempt)
}

func (u *purchaseUseCaseImpl) finish(ctx context.Context, attempt *purchase.Attempt) {
	if err := u.attempts.Finish(ctx, attempt); err != nil {
		u.logger.Warn("failed to persist attempt terminal state",
			"attempt_id", attempt.ID(),
			"state", attempt.State(),
			"error", err)
	}
}
