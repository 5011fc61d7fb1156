package purchase

import (
	"errors"

	"learnscape-checkout/internal/domain/catalog"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition  = errors.New("invalid attempt state transition")
	ErrPriceAlreadyLocked = errors.New("attempt price is already locked")
	ErrPriceNotLocked     = errors.New("attempt price is not locked")
)

type State string

const (
	StateIdle                    State = "idle"
	StateValidating              State = "validating"
	StateAuthorizingMethod       State = "authorizing_method"
	StateConfirmingAuthorization State = "confirming_authorization"
	StateRegistering             State = "registering"
	StateCapturing               State = "capturing"
	StateRollingBack             State = "rolling_back"
	StateCompleted               State = "completed"
	StateFailed                  State = "failed"
)

func (s State) String() string {
	return string(s)
}

func (s State) IsTerminal() bool {
	return s == StateCompleted || s == StateFailed
}

// Every state may fail directly on pre-flight errors. RollingBack is only
// reachable from the two post-authorization states, because compensation
// exists solely to undo durable writes made after the gateway hold.
var transitions = map[State][]State{
	StateIdle:                    {StateValidating},
	StateValidating:              {StateRegistering, StateAuthorizingMethod, StateFailed},
	StateAuthorizingMethod:       {StateConfirmingAuthorization, StateFailed},
	StateConfirmingAuthorization: {StateRegistering, StateFailed},
	StateRegistering:             {StateCapturing, StateCompleted, StateRollingBack, StateFailed},
	StateCapturing:               {StateCompleted, StateRollingBack},
	StateRollingBack:             {StateFailed},
}

// Attempt is the transient orchestration state of one purchase. It exists
// from dialog submit to terminal outcome and is persisted only for
// single-flight enforcement and auditing.
type Attempt struct {
	id            uuid.UUID
	buyer         Buyer
	productID     uuid.UUID
	kind          catalog.Kind
	state         State
	lockedPrice   *Money
	captchaToken  string
	promoLedgerID *uuid.UUID
	intentID      string
}

func NewAttempt(buyer Buyer, productID uuid.UUID, kind catalog.Kind, captchaToken string) *Attempt {
	return &Attempt{
		id:           uuid.New(),
		buyer:        buyer,
		productID:    productID,
		kind:         kind,
		state:        StateIdle,
		captchaToken: captchaToken,
	}
}

func (a *Attempt) ID() uuid.UUID             { return a.id }
func (a *Attempt) Buyer() Buyer              { return a.buyer }
func (a *Attempt) ProductID() uuid.UUID      { return a.productID }
func (a *Attempt) Kind() catalog.Kind        { return a.kind }
func (a *Attempt) State() State              { return a.state }
func (a *Attempt) CaptchaToken() string      { return a.captchaToken }
func (a *Attempt) IntentID() string          { return a.intentID }
func (a *Attempt) PromoLedgerID() *uuid.UUID { return a.promoLedgerID }

func (a *Attempt) TransitionTo(next State) error {
	for _, allowed := range transitions[a.state] {
		if allowed == next {
			a.state = next
			return nil
		}
	}
	return ErrInvalidTransition
}

// SetBuyer replaces the buyer identity after an unauthenticated email lookup
// resolved it. Only legal before any external call.
func (a *Attempt) SetBuyer(b Buyer) error {
	if a.state != StateIdle && a.state != StateValidating {
		return ErrInvalidTransition
	}
	a.buyer = b
	return nil
}

// LockPrice freezes the charge amount. It can happen exactly once per
// attempt; everything after authorization reads this copy.
func (a *Attempt) LockPrice(m Money) error {
	if a.lockedPrice != nil {
		return ErrPriceAlreadyLocked
	}
	price := m
	a.lockedPrice = &price
	return nil
}

func (a *Attempt) LockedPrice() (Money, error) {
	if a.lockedPrice == nil {
		return Money{}, ErrPriceNotLocked
	}
	return *a.lockedPrice, nil
}

func (a *Attempt) AttachIntent(intentID string) {
	a.intentID = intentID
}

func (a *Attempt) AttachPromoLedger(ledgerID uuid.UUID) {
	id := ledgerID
	a.promoLedgerID = &id
}

func (a *Attempt) HasPromo() bool {
	return a.promoLedgerID != nil
}
