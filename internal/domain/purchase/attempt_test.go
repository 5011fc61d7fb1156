//go:build unit

package purchase_test

import (
	"testing"

	"learnscape-checkout/internal/domain/catalog"
	"learnscape-checkout/internal/domain/purchase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAttempt() *purchase.Attempt {
	buyer := purchase.Buyer{
		UserID:      uuid.New(),
		OrgID:       uuid.New(),
		Email:       "buyer@example.com",
		CountryCode: "US",
	}
	return purchase.NewAttempt(buyer, uuid.New(), catalog.KindCourse, "captcha-token")
}

func advance(t *testing.T, a *purchase.Attempt, states ...purchase.State) {
	t.Helper()
	for _, s := range states {
		require.NoError(t, a.TransitionTo(s))
	}
}

func TestAttemptTransitions(t *testing.T) {
	t.Run("free path", func(t *testing.T) {
		a := newAttempt()
		advance(t, a,
			purchase.StateValidating,
			purchase.StateRegistering,
			purchase.StateCompleted,
		)
		assert.True(t, a.State().IsTerminal())
	})

	t.Run("paid path", func(t *testing.T) {
		a := newAttempt()
		advance(t, a,
			purchase.StateValidating,
			purchase.StateAuthorizingMethod,
			purchase.StateConfirmingAuthorization,
			purchase.StateRegistering,
			purchase.StateCapturing,
			purchase.StateCompleted,
		)
		assert.True(t, a.State().IsTerminal())
	})

	t.Run("rollback path ends failed", func(t *testing.T) {
		a := newAttempt()
		advance(t, a,
			purchase.StateValidating,
			purchase.StateAuthorizingMethod,
			purchase.StateConfirmingAuthorization,
			purchase.StateRegistering,
			purchase.StateRollingBack,
			purchase.StateFailed,
		)
		assert.True(t, a.State().IsTerminal())
	})

	t.Run("rollback unreachable before authorization", func(t *testing.T) {
		a := newAttempt()
		advance(t, a, purchase.StateValidating)
		assert.ErrorIs(t, a.TransitionTo(purchase.StateRollingBack), purchase.ErrInvalidTransition)
	})

	t.Run("capturing cannot fail directly", func(t *testing.T) {
		a := newAttempt()
		advance(t, a,
			purchase.StateValidating,
			purchase.StateAuthorizingMethod,
			purchase.StateConfirmingAuthorization,
			purchase.StateRegistering,
			purchase.StateCapturing,
		)
		assert.ErrorIs(t, a.TransitionTo(purchase.StateFailed), purchase.ErrInvalidTransition)
		require.NoError(t, a.TransitionTo(purchase.StateRollingBack))
		require.NoError(t, a.TransitionTo(purchase.StateFailed))
	})

	t.Run("no transitions out of a terminal state", func(t *testing.T) {
		a := newAttempt()
		advance(t, a, purchase.StateValidating, purchase.StateFailed)
		assert.ErrorIs(t, a.TransitionTo(purchase.StateValidating), purchase.ErrInvalidTransition)
		assert.ErrorIs(t, a.TransitionTo(purchase.StateCompleted), purchase.ErrInvalidTransition)
	})

	t.Run("skipping authorization steps is rejected", func(t *testing.T) {
		a := newAttempt()
		advance(t, a, purchase.StateValidating, purchase.StateAuthorizingMethod)
		assert.ErrorIs(t, a.TransitionTo(purchase.StateRegistering), purchase.ErrInvalidTransition)
	})
}

func TestAttemptLockPrice(t *testing.T) {
	t.Run("locks exactly once", func(t *testing.T) {
		a := newAttempt()
		require.NoError(t, a.LockPrice(purchase.NewMoney(4999, catalog.USD)))
		assert.ErrorIs(t, a.LockPrice(purchase.NewMoney(1, catalog.USD)), purchase.ErrPriceAlreadyLocked)

		locked, err := a.LockedPrice()
		require.NoError(t, err)
		assert.Equal(t, int64(4999), locked.Cents())
		assert.Equal(t, catalog.USD, locked.Currency())
	})

	t.Run("unlocked price is an error", func(t *testing.T) {
		a := newAttempt()
		_, err := a.LockedPrice()
		assert.ErrorIs(t, err, purchase.ErrPriceNotLocked)
	})
}

func TestAttemptSetBuyer(t *testing.T) {
	resolved := purchase.Buyer{UserID: uuid.New(), OrgID: uuid.New(), Email: "resolved@example.com"}

	t.Run("allowed while validating", func(t *testing.T) {
		a := newAttempt()
		advance(t, a, purchase.StateValidating)
		require.NoError(t, a.SetBuyer(resolved))
		assert.Equal(t, resolved.UserID, a.Buyer().UserID)
	})

	t.Run("rejected after validation", func(t *testing.T) {
		a := newAttempt()
		advance(t, a, purchase.StateValidating, purchase.StateAuthorizingMethod)
		assert.ErrorIs(t, a.SetBuyer(resolved), purchase.ErrInvalidTransition)
	})
}

func TestBuyerFullName(t *testing.T) {
	b := purchase.Buyer{FirstName: "Ada", LastName: "Lovelace"}
	assert.Equal(t, "Ada Lovelace", b.FullName())

	assert.Equal(t, "Ada", purchase.Buyer{FirstName: "Ada"}.FullName())
	assert.Equal(t, "", purchase.Buyer{}.FullName())
}
