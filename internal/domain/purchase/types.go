package purchase

import (
	"strings"

	"learnscape-checkout/internal/domain/catalog"

	"github.com/google/uuid"
)

// Buyer is the resolved identity an attempt is charged against: taken from
// the session for logged-in buyers, or looked up by email for home-page
// purchases.
type Buyer struct {
	UserID      uuid.UUID
	OrgID       uuid.UUID
	Email       string
	FirstName   string
	LastName    string
	CountryCode string
}

func (b Buyer) FullName() string {
	return strings.TrimSpace(b.FirstName + " " + b.LastName)
}

// Card carries tokenizable card input. It is handed to the payment gateway
// and never persisted.
type Card struct {
	Number   string
	ExpMonth int64
	ExpYear  int64
	CVC      string
}

// Authorization is the gateway handle for a pending hold. It is created at
// the authorize step and either captured or voided, never both.
type Authorization struct {
	IntentID     string
	ClientSecret string
}

// Money is a charge amount in minor units. The orchestrator locks one of
// these the instant authorization begins; it is a value copy, so later
// promo-code edits cannot change what is charged.
type Money struct {
	cents    int64
	currency catalog.Currency
}

func NewMoney(cents int64, currency catalog.Currency) Money {
	return Money{cents: cents, currency: currency}
}

func (m Money) Cents() int64               { return m.cents }
func (m Money) Currency() catalog.Currency { return m.currency }
func (m Money) IsZero() bool               { return m.cents == 0 }
