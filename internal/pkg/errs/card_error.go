package errs

import "errors"

type CardErrorCode string

// Decline codes reported by the payment gateway. The vocabulary is fixed;
// anything else falls through to the generic message.
const (
	CardDeclined          CardErrorCode = "declined"
	CardExpired           CardErrorCode = "expired"
	CardBadCVC            CardErrorCode = "bad_cvc"
	CardBadNumber         CardErrorCode = "bad_number"
	CardBadExpiry         CardErrorCode = "bad_expiry"
	CardProcessingError   CardErrorCode = "processing_error"
	CardInsufficientFunds CardErrorCode = "insufficient_funds"
)

// CardError is a gateway-reported failure during method attachment or
// confirmation. Nothing durable exists at that point, so it never triggers
// compensation.
type CardError struct {
	Code CardErrorCode
}

func (e *CardError) Error() string {
	return "card error: " + string(e.Code)
}

var cardMessages = map[CardErrorCode]string{
	CardDeclined:          "Your card was declined.",
	CardExpired:           "Your card has expired.",
	CardBadCVC:            "The card's security code is incorrect.",
	CardBadNumber:         "The card number is incorrect.",
	CardBadExpiry:         "The card's expiry date is invalid.",
	CardProcessingError:   "An error occurred while processing your card. Please try again.",
	CardInsufficientFunds: "Your card has insufficient funds.",
}

// Message returns the user-facing text for the decline code, with a generic
// fallback for codes outside the known vocabulary.
func (e *CardError) Message() string {
	if msg, ok := cardMessages[e.Code]; ok {
		return msg
	}
	return "Your payment could not be processed. Please try a different card."
}

func AsCardError(err error) (*CardError, bool) {
	var ce *CardError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
