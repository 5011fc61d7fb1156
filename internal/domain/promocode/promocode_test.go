//go:build unit

package promocode_test

import (
	"testing"
	"time"

	"learnscape-checkout/internal/domain/catalog"
	"learnscape-checkout/internal/domain/promocode"
	"learnscape-checkout/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCode(t *testing.T, mutate func(*codeParams)) *promocode.PromoCode {
	t.Helper()

	p := &codeParams{
		ledgerID:           uuid.New(),
		code:               "WELCOME10",
		percentOff:         10,
		maxUses:            0,
		allProducts:        true,
		allowSubscriptions: true,
	}
	if mutate != nil {
		mutate(p)
	}

	pc, err := promocode.NewPromoCode(
		p.ledgerID, p.code, p.percentOff, p.expiresAt, p.maxUses,
		p.productIDs, p.allProducts, p.usedBy, p.allowSubscriptions,
	)
	require.NoError(t, err)
	return pc
}

type codeParams struct {
	ledgerID           uuid.UUID
	code               string
	percentOff         float64
	expiresAt          *time.Time
	maxUses            int
	productIDs         []uuid.UUID
	allProducts        bool
	usedBy             []uuid.UUID
	allowSubscriptions bool
}

func TestNewPromoCode(t *testing.T) {
	t.Run("percent out of range rejected", func(t *testing.T) {
		for _, percent := range []float64{-1, 100.5} {
			_, err := promocode.NewPromoCode(uuid.New(), "X", percent, nil, 0, nil, true, nil, true)
			assert.ErrorIs(t, err, promocode.ErrInvalidDiscountPercent)
		}
	})

	t.Run("used-by list is deduplicated", func(t *testing.T) {
		buyer := uuid.New()
		pc := newCode(t, func(p *codeParams) {
			p.usedBy = []uuid.UUID{buyer, buyer, buyer}
		})
		assert.Len(t, pc.UsedBy(), 1)
	})
}

func TestValidateUsage(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	productID := uuid.New()
	buyerID := uuid.New()

	cases := []struct {
		name   string
		mutate func(*codeParams)
		kind   catalog.Kind
		errIs  error
	}{
		{
			name: "valid code passes",
			kind: catalog.KindCourse,
		},
		{
			name: "expired",
			mutate: func(p *codeParams) {
				past := now.Add(-time.Hour)
				p.expiresAt = &past
			},
			kind:  catalog.KindCourse,
			errIs: errs.ErrPromoExpired,
		},
		{
			name: "exhausted",
			mutate: func(p *codeParams) {
				p.maxUses = 1
				p.usedBy = []uuid.UUID{uuid.New()}
			},
			kind:  catalog.KindCourse,
			errIs: errs.ErrPromoExhausted,
		},
		{
			name: "not applicable to this product",
			mutate: func(p *codeParams) {
				p.allProducts = false
				p.productIDs = []uuid.UUID{uuid.New()}
			},
			kind:  catalog.KindCourse,
			errIs: errs.ErrPromoNotApplicable,
		},
		{
			name: "already used by this buyer",
			mutate: func(p *codeParams) {
				p.usedBy = []uuid.UUID{buyerID}
			},
			kind:  catalog.KindCourse,
			errIs: errs.ErrPromoAlreadyUsed,
		},
		{
			name: "subscriptions excluded",
			mutate: func(p *codeParams) {
				p.allowSubscriptions = false
			},
			kind:  catalog.KindSubscription,
			errIs: errs.ErrPromoNoSubscriptions,
		},
		{
			name: "expiry beats exhaustion when both apply",
			mutate: func(p *codeParams) {
				past := now.Add(-time.Hour)
				p.expiresAt = &past
				p.maxUses = 1
				p.usedBy = []uuid.UUID{uuid.New()}
			},
			kind:  catalog.KindCourse,
			errIs: errs.ErrPromoExpired,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pc := newCode(t, tc.mutate)
			err := pc.ValidateUsage(productID, buyerID, tc.kind, now)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestUsedBySetSemantics(t *testing.T) {
	buyer := uuid.New()
	other := uuid.New()

	t.Run("add is idempotent", func(t *testing.T) {
		pc := newCode(t, func(p *codeParams) {
			p.usedBy = []uuid.UUID{buyer, other}
		})
		assert.Len(t, pc.UsedByWith(buyer), 2)
	})

	t.Run("add appends new buyer", func(t *testing.T) {
		pc := newCode(t, func(p *codeParams) {
			p.usedBy = []uuid.UUID{other}
		})
		assert.ElementsMatch(t, []uuid.UUID{other, buyer}, pc.UsedByWith(buyer))
	})

	t.Run("remove is safe when buyer absent", func(t *testing.T) {
		pc := newCode(t, func(p *codeParams) {
			p.usedBy = []uuid.UUID{other}
		})
		assert.ElementsMatch(t, []uuid.UUID{other}, pc.UsedByWithout(buyer))
	})

	t.Run("remove drops buyer", func(t *testing.T) {
		pc := newCode(t, func(p *codeParams) {
			p.usedBy = []uuid.UUID{buyer, other}
		})
		assert.ElementsMatch(t, []uuid.UUID{other}, pc.UsedByWithout(buyer))
	})
}

func TestApplyDiscount(t *testing.T) {
	cases := []struct {
		name     string
		base     int64
		percent  float64
		expected int64
	}{
		{name: "ten percent", base: 5000, percent: 10, expected: 4500},
		{name: "zero percent", base: 5000, percent: 0, expected: 5000},
		{name: "full discount", base: 5000, percent: 100, expected: 0},
		{name: "never negative", base: 1, percent: 100, expected: 0},
		{name: "fractional percent truncates the discount", base: 999, percent: 33.3, expected: 667},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, promocode.ApplyDiscount(tc.base, tc.percent))
		})
	}
}
