package commands

import (
	"context"

	"learnscape-checkout/internal/domain/catalog"
	"learnscape-checkout/internal/domain/purchase"
	"learnscape-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports.go -package=commandsmock

// PaymentGateway is the card-payment capability. Implementations wrap a
// vendor SDK; the saga only depends on this contract.
type PaymentGateway interface {
	// AttachPaymentMethod tokenizes the card. Gateway declines come back as
	// *errs.CardError.
	AttachPaymentMethod(ctx context.Context, card purchase.Card, billingName, billingEmail string) (string, error)
	// ConfirmAuthorization confirms the pending hold without capturing it.
	// Implementations must treat any resulting status other than
	// requires_capture as a failure, even when the gateway reports no error.
	ConfirmAuthorization(ctx context.Context, auth purchase.Authorization, paymentMethodID string) error
}

type CreateAuthorizationRequest struct {
	AmountCents  int64
	Currency     catalog.Currency
	Buyer        purchase.Buyer
	ProductID    uuid.UUID
	PaymentType  catalog.Kind
	CaptchaToken string
}

type CaptureRequest struct {
	Buyer       purchase.Buyer
	ProductID   uuid.UUID
	PaymentType catalog.Kind
}

type CaptureResult struct {
	EmailWarning bool
}

// PaymentsAPI is the platform payments endpoint pair: creating the pending
// authorization and capturing it. Both are idempotent on the backend side;
// a retried capture against a settled intent must not error.
type PaymentsAPI interface {
	CreateAuthorization(ctx context.Context, req CreateAuthorizationRequest) (purchase.Authorization, error)
	Capture(ctx context.Context, intentID string, req CaptureRequest) (CaptureResult, error)
}

type RegisterRequest struct {
	Buyer     purchase.Buyer
	ProductID uuid.UUID
	Kind      catalog.Kind
}

type RegistrationRollbackRequest struct {
	BuyerID   uuid.UUID
	ProductID uuid.UUID
	Email     string
	IntentID  string
}

// RegistrationAPI creates and voids the durable enrollment/purchase records.
// Rollback uses the sessionless endpoint because home-page buyers hold no
// session token.
type RegistrationAPI interface {
	Register(ctx context.Context, req RegisterRequest) (uuid.UUID, error)
	CreateFirstLessonProgress(ctx context.Context, buyerID, productID, orgID uuid.UUID) error
	Rollback(ctx context.Context, req RegistrationRollbackRequest) error
}

// PromoAPI is the promo-code ledger endpoint pair. UpdateUsedBy serves both
// commit (buyer added) and rollback (buyer removed).
type PromoAPI interface {
	Apply(ctx context.Context, code string, productID, buyerID, orgID uuid.UUID, email string) (*shared.PromoSnapshot, error)
	UpdateUsedBy(ctx context.Context, ledgerID uuid.UUID, usedBy []uuid.UUID) error
}

type UserExistence struct {
	Exists          bool
	IsEmailVerified bool
	IsEnrolled      bool
	UserID          uuid.UUID
	OrgID           uuid.UUID
	CountryCode     string
	FirstName       string
	LastName        string
}

// UserDirectory resolves buyers for unauthenticated purchases and owns the
// best-effort paid-registration flag.
type UserDirectory interface {
	CheckUserExists(ctx context.Context, email string, productID *uuid.UUID) (*UserExistence, error)
	MarkPaidRegistration(ctx context.Context, userID, orgID uuid.UUID) error
}

// ProductCatalog loads the product being bought, including its per-currency
// price list and external flag.
type ProductCatalog interface {
	FindByID(ctx context.Context, productID uuid.UUID, kind catalog.Kind) (*catalog.Product, error)
}

// CaptchaRegistry enforces single use of recaptcha tokens. Consume marks the
// token used on first sight; a second Consume of the same token fails with
// errs.ErrCaptchaTokenConsumed, including retries after a failed attempt.
type CaptchaRegistry interface {
	Consume(ctx context.Context, token string) error
}

// AttemptRepository persists purchase attempts. Start is the single-flight
// marker: it fails with errs.ErrPurchaseInProgress while another attempt for
// the same buyer and product is still processing.
type AttemptRepository interface {
	Start(ctx context.Context, attempt *purchase.Attempt) error
	Finish(ctx context.Context, attempt *purchase.Attempt) error
}
