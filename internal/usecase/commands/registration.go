package commands

import (
	"context"

	"learnscape-checkout/internal/domain/catalog"
	"learnscape-checkout/internal/domain/purchase"
	"learnscape-checkout/internal/pkg/errs"

	"github.com/google/uuid"
)

// RegistrationService creates the durable enrollment or purchase record for
// an attempt. The orchestrator guarantees it runs at most once per attempt.
type RegistrationService struct {
	registrations RegistrationAPI
}

func NewRegistrationService(registrations RegistrationAPI) *RegistrationService {
	return &RegistrationService{registrations: registrations}
}

// Register creates the record and, for courses hosted on the platform, the
// dependent first-lesson progress record. A failed dependent creation fails
// the whole registration so the orchestrator can compensate; it is never
// swallowed into a success.
func (s *RegistrationService) Register(ctx context.Context, attempt *purchase.Attempt, product *catalog.Product) (uuid.UUID, error) {
	buyer := attempt.Buyer()

	registrationID, err := s.registrations.Register(ctx, RegisterRequest{
		Buyer:     buyer,
		ProductID: product.ID(),
		Kind:      product.Kind(),
	})
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrRegistrationFailed)
	}

	if product.IsCourse() && !product.IsExternal() {
		if err := s.registrations.CreateFirstLessonProgress(ctx, buyer.UserID, product.ID(), product.OrgID()); err != nil {
			return uuid.Nil, errs.Mark(errs.Wrap(err, "first lesson progress"), errs.ErrRegistrationFailed)
		}
	}

	return registrationID, nil
}
