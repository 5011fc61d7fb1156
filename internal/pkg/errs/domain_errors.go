package errs

import "errors"

// Sentinel errors shared across usecase layers. Pre-flight rejections never
// trigger compensation; only failures after a successful authorization do.
var (
	// Validation errors (pre-flight)
	ErrCaptchaTokenRequired = errors.New("captcha token required")
	ErrCaptchaTokenConsumed = errors.New("captcha token already consumed")
	ErrAccountNotFound      = errors.New("no account exists for this email")
	ErrEmailNotVerified     = errors.New("email address is not verified")
	ErrAlreadyEnrolled      = errors.New("buyer is already enrolled in this product")
	ErrCardDetailsRequired  = errors.New("card details required for paid products")
	ErrProductNotFound      = errors.New("product not found")

	// Promo code errors (pre-flight)
	ErrPromoNotFound        = errors.New("promo code not found")
	ErrPromoExpired         = errors.New("promo code has expired")
	ErrPromoExhausted       = errors.New("promo code usage limit reached")
	ErrPromoNotApplicable   = errors.New("promo code is not applicable to this product")
	ErrPromoAlreadyUsed     = errors.New("promo code already used by this buyer")
	ErrPromoNoSubscriptions = errors.New("promo code cannot be applied to subscriptions")

	// Saga errors
	ErrPurchaseInProgress = errors.New("purchase attempt already in progress")
	ErrRegistrationFailed = errors.New("registration failed")
	ErrCaptureFailed      = errors.New("capture failed")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

// promoRejections maps each promo sentinel to the text shown to buyers.
// Rejections arriving from the backend are marked with these sentinels, so
// the raw backend message never reaches a response.
var promoRejections = []struct {
	sentinel error
	message  string
}{
	{ErrPromoNotFound, "Promo code not found"},
	{ErrPromoExpired, "This promo code has expired"},
	{ErrPromoExhausted, "This promo code has reached its usage limit"},
	{ErrPromoNotApplicable, "This promo code cannot be used with this product"},
	{ErrPromoAlreadyUsed, "You have already used this promo code"},
	{ErrPromoNoSubscriptions, "This promo code cannot be applied to subscriptions"},
}

func IsPromoRejection(err error) bool {
	for _, r := range promoRejections {
		if errors.Is(err, r.sentinel) {
			return true
		}
	}
	return false
}

// PromoRejectionMessage returns the user-facing text for a promo rejection,
// with a generic fallback for causes outside the sentinel vocabulary.
func PromoRejectionMessage(err error) string {
	for _, r := range promoRejections {
		if errors.Is(err, r.sentinel) {
			return r.message
		}
	}
	return "This promo code cannot be applied"
}
