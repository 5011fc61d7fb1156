package shared

import (
	"time"

	"github.com/google/uuid"
)

// PromoSnapshot is the ledger row returned by the promo-code apply endpoint,
// shared between the checkout command and the quote query.
type PromoSnapshot struct {
	LedgerID           uuid.UUID
	Code               string
	PercentOff         float64
	ExpiresAt          *time.Time
	MaxUses            int
	ProductIDs         []uuid.UUID
	AllProducts        bool
	UsedBy             []uuid.UUID
	AllowSubscriptions bool
}
