//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"learnscape-checkout/internal/domain/catalog"
	"learnscape-checkout/internal/domain/purchase"
	"learnscape-checkout/internal/pkg/clock"
	"learnscape-checkout/internal/pkg/errs"
	"learnscape-checkout/internal/usecase/commands"
	"learnscape-checkout/tests/common/builder"
	commandsmock "learnscape-checkout/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PurchaseTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	products      *commandsmock.MockProductCatalog
	users         *commandsmock.MockUserDirectory
	captcha       *commandsmock.MockCaptchaRegistry
	attempts      *commandsmock.MockAttemptRepository
	payments      *commandsmock.MockPaymentsAPI
	gateway       *commandsmock.MockPaymentGateway
	registrations *commandsmock.MockRegistrationAPI
	promoAPI      *commandsmock.MockPromoAPI

	clk *clock.MockClock
	uc  commands.PurchaseCommands
}

func (s *PurchaseTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.products = commandsmock.NewMockProductCatalog(s.ctrl)
	s.users = commandsmock.NewMockUserDirectory(s.ctrl)
	s.captcha = commandsmock.NewMockCaptchaRegistry(s.ctrl)
	s.attempts = commandsmock.NewMockAttemptRepository(s.ctrl)
	s.payments = commandsmock.NewMockPaymentsAPI(s.ctrl)
	s.gateway = commandsmock.NewMockPaymentGateway(s.ctrl)
	s.registrations = commandsmock.NewMockRegistrationAPI(s.ctrl)
	s.promoAPI = commandsmock.NewMockPromoAPI(s.ctrl)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.clk = clock.NewMockClock(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))

	promos := commands.NewPromoLedger(s.promoAPI, s.clk)
	s.uc = commands.NewPurchaseCommands(
		s.products,
		s.users,
		s.captcha,
		s.attempts,
		commands.NewPaymentAuthorizer(s.payments, s.gateway),
		commands.NewRegistrationService(s.registrations),
		commands.NewCaptureCoordinator(s.payments, s.users, logger),
		promos,
		commands.NewCompensationManager(s.registrations, promos, logger),
		logger,
	)
}

func (s *PurchaseTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPurchaseSuite(t *testing.T) {
	suite.Run(t, new(PurchaseTestSuite))
}

func (s *PurchaseTestSuite) params(b *builder.CheckoutBuilder) commands.PurchaseParams {
	buyer := b.BuildBuyer()
	var card *purchase.Card
	if b.Card != nil {
		card = &purchase.Card{
			Number:   b.Card.Number,
			ExpMonth: b.Card.ExpMonth,
			ExpYear:  b.Card.ExpYear,
			CVC:      b.Card.CVC,
		}
	}
	return commands.PurchaseParams{
		Buyer:        &buyer,
		Email:        b.Email,
		ProductID:    b.ProductID,
		Kind:         b.Kind,
		CaptchaToken: b.CaptchaToken,
		PromoCode:    b.PromoCode,
		Card:         card,
	}
}

// ================================================================================
// Free path
// ================================================================================

func (s *PurchaseTestSuite) TestFreePurchaseNeverTouchesPaymentRail() {
	b := builder.NewCheckoutBuilder().Free()
	product := b.BuildProduct()
	registrationID := uuid.New()

	s.captcha.EXPECT().Consume(gomock.Any(), b.CaptchaToken).Return(nil)
	s.products.EXPECT().FindByID(gomock.Any(), b.ProductID, catalog.KindCourse).Return(product, nil)
	s.attempts.EXPECT().Start(gomock.Any(), gomock.Any()).Return(nil)
	s.registrations.EXPECT().Register(gomock.Any(), gomock.Any()).Return(registrationID, nil)
	s.registrations.EXPECT().CreateFirstLessonProgress(gomock.Any(), b.BuyerID, b.ProductID, b.OrgID).Return(nil)
	s.attempts.EXPECT().Finish(gomock.Any(), gomock.Any()).Return(nil)
	// No expectations on payments or gateway: any call to either fails the test.

	result, err := s.uc.Purchase(context.Background(), s.params(b))
	s.Require().NoError(err)
	s.True(result.Free)
	s.Equal(int64(0), result.AmountCents)
	s.Equal(registrationID, result.RegistrationID)
	s.Equal(purchase.StateCompleted, result.State)
}

func (s *PurchaseTestSuite) TestFreePurchaseRegistrationFailureHasNothingToCompensate() {
	b := builder.NewCheckoutBuilder().Free()
	product := b.BuildProduct()

	s.captcha.EXPECT().Consume(gomock.Any(), b.CaptchaToken).Return(nil)
	s.products.EXPECT().FindByID(gomock.Any(), b.ProductID, catalog.KindCourse).Return(product, nil)
	s.attempts.EXPECT().Start(gomock.Any(), gomock.Any()).Return(nil)
	s.registrations.EXPECT().Register(gomock.Any(), gomock.Any()).Return(uuid.Nil, errs.New("backend down"))
	s.attempts.EXPECT().Finish(gomock.Any(), gomock.Any()).Return(nil)

	_, err := s.uc.Purchase(context.Background(), s.params(b))
	s.ErrorIs(err, errs.ErrRegistrationFailed)
}

// ================================================================================
// Paid path
// ================================================================================

func (s *PurchaseTestSuite) TestPaidPurchaseRunsStepsInOrder() {
	b := builder.NewCheckoutBuilder()
	product := b.BuildProduct()
	registrationID := uuid.New()
	auth := purchase.Authorization{IntentID: "pi_123", ClientSecret: "secret"}

	s.captcha.EXPECT().Consume(gomock.Any(), b.CaptchaToken).Return(nil)
	s.products.EXPECT().FindByID(gomock.Any(), b.ProductID, catalog.KindCourse).Return(product, nil)
	s.attempts.EXPECT().Start(gomock.Any(), gomock.Any()).Return(nil)

	gomock.InOrder(
		s.payments.EXPECT().CreateAuthorization(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.CreateAuthorizationRequest) (purchase.Authorization, error) {
				s.Equal(int64(4999), req.AmountCents)
				s.Equal(catalog.USD, req.Currency)
				s.Equal(b.CaptchaToken, req.CaptchaToken)
				return auth, nil
			}),
		s.gateway.EXPECT().AttachPaymentMethod(gomock.Any(), gomock.Any(), "Ada Lovelace", b.Email).Return("pm_1", nil),
		s.gateway.EXPECT().ConfirmAuthorization(gomock.Any(), auth, "pm_1").Return(nil),
		s.registrations.EXPECT().Register(gomock.Any(), gomock.Any()).Return(registrationID, nil),
		s.registrations.EXPECT().CreateFirstLessonProgress(gomock.Any(), b.BuyerID, b.ProductID, b.OrgID).Return(nil),
		s.payments.EXPECT().Capture(gomock.Any(), "pi_123", gomock.Any()).
			Return(commands.CaptureResult{EmailWarning: true}, nil),
		s.users.EXPECT().MarkPaidRegistration(gomock.Any(), b.BuyerID, b.OrgID).Return(nil),
	)
	s.attempts.EXPECT().Finish(gomock.Any(), gomock.Any()).Return(nil)

	result, err := s.uc.Purchase(context.Background(), s.params(b))
	s.Require().NoError(err)
	s.Equal(purchase.StateCompleted, result.State)
	s.Equal(int64(4999), result.AmountCents)
	s.Equal(catalog.USD, result.Currency)
	s.False(result.Free)
	s.True(result.EmailWarning)
}

func (s *PurchaseTestSuite) TestPaidPurchaseRequiresCardDetails() {
	b := builder.NewCheckoutBuilder()
	b.Card = nil
	product := b.BuildProduct()

	s.captcha.EXPECT().Consume(gomock.Any(), b.CaptchaToken).Return(nil)
	s.products.EXPECT().FindByID(gomock.Any(), b.ProductID, catalog.KindCourse).Return(product, nil)

	_, err := s.uc.Purchase(context.Background(), s.params(b))
	s.ErrorIs(err, errs.ErrCardDetailsRequired)
}

func (s *PurchaseTestSuite) TestPaidRegistrationFlagFailureDoesNotFailPurchase() {
	b := builder.NewCheckoutBuilder()
	product := b.BuildProduct()

	s.captcha.EXPECT().Consume(gomock.Any(), b.CaptchaToken).Return(nil)
	s.products.EXPECT().FindByID(gomock.Any(), b.ProductID, catalog.KindCourse).Return(product, nil)
	s.attempts.EXPECT().Start(gomock.Any(), gomock.Any()).Return(nil)
	s.payments.EXPECT().CreateAuthorization(gomock.Any(), gomock.Any()).
		Return(purchase.Authorization{IntentID: "pi_123"}, nil)
	s.gateway.EXPECT().AttachPaymentMethod(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("pm_1", nil)
	s.gateway.EXPECT().ConfirmAuthorization(gomock.Any(), gomock.Any(), "pm_1").Return(nil)
	s.registrations.EXPECT().Register(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
	s.registrations.EXPECT().CreateFirstLessonProgress(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.payments.EXPECT().Capture(gomock.Any(), "pi_123", gomock.Any()).Return(commands.CaptureResult{}, nil)
	s.users.EXPECT().MarkPaidRegistration(gomock.Any(), b.BuyerID, b.OrgID).Return(errs.New("flaky"))
	s.attempts.EXPECT().Finish(gomock.Any(), gomock.Any()).Return(nil)

	result, err := s.uc.Purchase(context.Background(), s.params(b))
	s.Require().NoError(err)
	s.Equal(purchase.StateCompleted, result.State)
}

// ================================================================================
// Captcha gate
// ================================================================================

func (s *PurchaseTestSuite) TestMissingCaptchaRejectedBeforeAnyCall() {
	b := builder.NewCheckoutBuilder()
	b.CaptchaToken = ""

	_, err := s.uc.Purchase(context.Background(), s.params(b))
	s.ErrorIs(err, errs.ErrCaptchaTokenRequired)
}

func (s *PurchaseTestSuite) TestConsumedCaptchaRejectedBeforeAnyExternalCall() {
	b := builder.NewCheckoutBuilder()

	s.captcha.EXPECT().Consume(gomock.Any(), b.CaptchaToken).Return(errs.ErrCaptchaTokenConsumed)

	_, err := s.uc.Purchase(context.Background(), s.params(b))
	s.ErrorIs(err, errs.ErrCaptchaTokenConsumed)
}

// ================================================================================
// Buyer resolution (home-page purchase, no session)
// ================================================================================

func (s *PurchaseTestSuite) TestUnauthenticatedBuyerResolution() {
	b := builder.NewCheckoutBuilder()
	product := b.BuildProduct()
	registrationID := uuid.New()
	resolvedID := uuid.New()
	resolvedOrg := uuid.New()

	cases := []struct {
		name      string
		existence *commands.UserExistence
		errIs     error
	}{
		{
			name:      "unknown email",
			existence: &commands.UserExistence{Exists: false},
			errIs:     errs.ErrAccountNotFound,
		},
		{
			name:      "unverified email",
			existence: &commands.UserExistence{Exists: true, IsEmailVerified: false},
			errIs:     errs.ErrEmailNotVerified,
		},
		{
			name:      "already enrolled",
			existence: &commands.UserExistence{Exists: true, IsEmailVerified: true, IsEnrolled: true},
			errIs:     errs.ErrAlreadyEnrolled,
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			params := s.params(b)
			params.Buyer = nil

			s.captcha.EXPECT().Consume(gomock.Any(), b.CaptchaToken).Return(nil)
			s.users.EXPECT().CheckUserExists(gomock.Any(), b.Email, gomock.Any()).Return(tc.existence, nil)

			_, err := s.uc.Purchase(context.Background(), params)
			s.ErrorIs(err, tc.errIs)
		})
	}

	s.Run("resolved buyer completes the purchase", func() {
		params := s.params(b)
		params.Buyer = nil

		s.captcha.EXPECT().Consume(gomock.Any(), b.CaptchaToken).Return(nil)
		s.users.EXPECT().CheckUserExists(gomock.Any(), b.Email, gomock.Any()).Return(&commands.UserExistence{
			Exists:          true,
			IsEmailVerified: true,
			UserID:          resolvedID,
			OrgID:           resolvedOrg,
			CountryCode:     "GB",
			FirstName:       "Grace",
			LastName:        "Hopper",
		}, nil)
		s.products.EXPECT().FindByID(gomock.Any(), b.ProductID, catalog.KindCourse).Return(product, nil)
		s.attempts.EXPECT().Start(gomock.Any(), gomock.Any()).Return(nil)
		// GB buyer with a USD-only price list falls back to the USD entry.
		s.payments.EXPECT().CreateAuthorization(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.CreateAuthorizationRequest) (purchase.Authorization, error) {
				s.Equal(catalog.USD, req.Currency)
				s.Equal(resolvedID, req.Buyer.UserID)
				return purchase.Authorization{IntentID: "pi_9"}, nil
			})
		s.gateway.EXPECT().AttachPaymentMethod(gomock.Any(), gomock.Any(), "Grace Hopper", b.Email).Return("pm_9", nil)
		s.gateway.EXPECT().ConfirmAuthorization(gomock.Any(), gomock.Any(), "pm_9").Return(nil)
		s.registrations.EXPECT().Register(gomock.Any(), gomock.Any()).Return(registrationID, nil)
		s.registrations.EXPECT().CreateFirstLessonProgress(gomock.Any(), resolvedID, b.ProductID, b.OrgID).Return(nil)
		s.payments.EXPECT().Capture(gomock.Any(), "pi_9", gomock.Any()).Return(commands.CaptureResult{}, nil)
		s.users.EXPECT().MarkPaidRegistration(gomock.Any(), resolvedID, resolvedOrg).Return(nil)
		s.attempts.EXPECT().Finish(gomock.Any(), gomock.Any()).Return(nil)

		result, err := s.uc.Purchase(context.Background(), params)
		s.Require().NoError(err)
		s.Equal(registrationID, result.RegistrationID)
	})
}

// ================================================================================
// Single flight
// ================================================================================

func (s *PurchaseTestSuite) TestConcurrentAttemptRejectedBeforeAuthorization() {
	b := builder.NewCheckoutBuilder()
	product := b.BuildProduct()

	s.captcha.EXPECT().Consume(gomock.Any(), b.CaptchaToken).Return(nil)
	s.products.EXPECT().FindByID(gomock.Any(), b.ProductID, catalog.KindCourse).Return(product, nil)
	s.attempts.EXPECT().Start(gomock.Any(), gomock.Any()).Return(errs.ErrPurchaseInProgress)

	_, err := s.uc.Purchase(context.Background(), s.params(b))
	s.ErrorIs(err, errs.ErrPurchaseInProgress)
}

// ================================================================================
// Card failures (pre-registration, no compensation)
// ================================================================================

func (s *PurchaseTestSuite) TestCardDeclineFailsAttemptWithoutCompensation() {
	b := builder.NewCheckoutBuilder()
	product := b.BuildProduct()

	s.captcha.EXPECT().Consume(gomock.Any(), b.CaptchaToken).Return(nil)
	s.products.EXPECT().FindByID(gomock.Any(), b.ProductID, catalog.KindCourse).Return(product, nil)
	s.attempts.EXPECT().Start(gomock.Any(), gomock.Any()).Return(nil)
	s.payments.EXPECT().CreateAuthorization(gomock.Any(), gomock.Any()).
		Return(purchase.Authorization{IntentID: "pi_1"}, nil)
	s.gateway.EXPECT().AttachPaymentMethod(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("pm_1", nil)
	s.gateway.EXPECT().ConfirmAuthorization(gomock.Any(), gomock.Any(), "pm_1").
		Return(&errs.CardError{Code: errs.CardDeclined})
	s.attempts.EXPECT().Finish(gomock.Any(), gomock.Any()).Return(nil)
	// No Register, no Rollback: the hold never confirmed.

	_, err := s.uc.Purchase(context.Background(), s.params(b))
	cardErr, ok := errs.AsCardError(err)
	s.Require().True(ok)
	s.Equal(errs.CardDeclined, cardErr.Code)
}

// ================================================================================
// Post-authorization failures (compensation)
// ================================================================================

func (s *PurchaseTestSuite) TestRegistrationFailureRollsBack() {
	b := builder.NewCheckoutBuilder()
	product := b.BuildProduct()

	s.captcha.EXPECT().Consume(gomock.Any(), b.CaptchaToken).Return(nil)
	s.products.EXPECT().FindByID(gomock.Any(), b.ProductID, catalog.KindCourse).Return(product, nil)
	s.attempts.EXPECT().Start(gomock.Any(), gomock.Any()).Return(nil)
	s.payments.EXPECT().CreateAuthorization(gomock.Any(), gomock.Any()).
		Return(purchase.Authorization{IntentID: "pi_2"}, nil)
	s.gateway.EXPECT().AttachPaymentMethod(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("pm_2", nil)
	s.gateway.EXPECT().ConfirmAuthorization(gomock.Any(), gomock.Any(), "pm_2").Return(nil)
	s.registrations.EXPECT().Register(gomock.Any(), gomock.Any()).Return(uuid.Nil, errs.New("backend down"))
	s.registrations.EXPECT().Rollback(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req commands.RegistrationRollbackRequest) error {
			s.Equal(b.BuyerID, req.BuyerID)
			s.Equal(b.ProductID, req.ProductID)
			s.Equal("pi_2", req.IntentID)
			return nil
		})
	s.attempts.EXPECT().Finish(gomock.Any(), gomock.Any()).Return(nil)

	_, err := s.uc.Purchase(context.Background(), s.params(b))
	s.ErrorIs(err, errs.ErrRegistrationFailed)
}

func (s *PurchaseTestSuite) TestFirstLessonProgressFailureAlsoRollsBack() {
	b := builder.NewCheckoutBuilder()
	product := b.BuildProduct()

	s.captcha.EXPECT().Consume(gomock.Any(), b.CaptchaToken).Return(nil)
	s.products.EXPECT().FindByID(gomock.Any(), b.ProductID, catalog.KindCourse).Return(product, nil)
	s.attempts.EXPECT().Start(gomock.Any(), gomock.Any()).Return(nil)
	s.payments.EXPECT().CreateAuthorization(gomock.Any(), gomock.Any()).
		Return(purchase.Authorization{IntentID: "pi_3"}, nil)
	s.gateway.EXPECT().AttachPaymentMethod(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("pm_3", nil)
	s.gateway.EXPECT().ConfirmAuthorization(gomock.Any(), gomock.Any(), "pm_3").Return(nil)
	s.registrations.EXPECT().Register(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
	s.registrations.EXPECT().CreateFirstLessonProgress(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errs.New("progress table locked"))
	s.registrations.EXPECT().Rollback(gomock.Any(), gomock.Any()).Return(nil)
	s.attempts.EXPECT().Finish(gomock.Any(), gomock.Any()).Return(nil)

	_, err := s.uc.Purchase(context.Background(), s.params(b))
	s.ErrorIs(err, errs.ErrRegistrationFailed)
}

func (s *PurchaseTestSuite) TestCaptureFailureRollsBackRegistration() {
	b := builder.NewCheckoutBuilder()
	product := b.BuildProduct()

	s.captcha.EXPECT().Consume(gomock.Any(), b.CaptchaToken).Return(nil)
	s.products.EXPECT().FindByID(gomock.Any(), b.ProductID, catalog.KindCourse).Return(product, nil)
	s.attempts.EXPECT().Start(gomock.Any(), gomock.Any()).Return(nil)
	s.payments.EXPECT().CreateAuthorization(gomock.Any(), gomock.Any()).
		Return(purchase.Authorization{IntentID: "pi_4"}, nil)
	s.gateway.EXPECT().AttachPaymentMethod(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("pm_4", nil)
	s.gateway.EXPECT().ConfirmAuthorization(gomock.Any(), gomock.Any(), "pm_4").Return(nil)
	s.registrations.EXPECT().Register(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
	s.registrations.EXPECT().CreateFirstLessonProgress(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.payments.EXPECT().Capture(gomock.Any(), "pi_4", gomock.Any()).
		Return(commands.CaptureResult{}, &errs.NetworkError{Kind: errs.NetworkTimeout, Op: "payments.capture"})
	s.registrations.EXPECT().Rollback(gomock.Any(), gomock.Any()).Return(nil)
	s.attempts.EXPECT().Finish(gomock.Any(), gomock.Any()).Return(nil)

	_, err := s.uc.Purchase(context.Background(), s.params(b))
	s.ErrorIs(err, errs.ErrCaptureFailed)
}

// ================================================================================
// Promo codes
// ================================================================================

func (s *PurchaseTestSuite) TestPromoDiscountsLockedAmountAndCommitsAfterCapture() {
	code := "WELCOME10"
	b := builder.NewCheckoutBuilder().With(func(b *builder.CheckoutBuilder) {
		b.PromoCode = &code
	})
	product := b.BuildProduct()
	snapshot := b.BuildPromoSnapshot(10)

	s.captcha.EXPECT().Consume(gomock.Any(), b.CaptchaToken).Return(nil)
	s.products.EXPECT().FindByID(gomock.Any(), b.ProductID, catalog.KindCourse).Return(product, nil)
	s.promoAPI.EXPECT().Apply(gomock.Any(), code, b.ProductID, b.BuyerID, b.OrgID, b.Email).Return(snapshot, nil)
	s.attempts.EXPECT().Start(gomock.Any(), gomock.Any()).Return(nil)

	gomock.InOrder(
		s.payments.EXPECT().CreateAuthorization(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.CreateAuthorizationRequest) (purchase.Authorization, error) {
				// 4999 minus 10 percent.
				s.Equal(int64(4500), req.AmountCents)
				return purchase.Authorization{IntentID: "pi_5"}, nil
			}),
		s.gateway.EXPECT().AttachPaymentMethod(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("pm_5", nil),
		s.gateway.EXPECT().ConfirmAuthorization(gomock.Any(), gomock.Any(), "pm_5").Return(nil),
		s.registrations.EXPECT().Register(gomock.Any(), gomock.Any()).Return(uuid.New(), nil),
		s.registrations.EXPECT().CreateFirstLessonProgress(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
		s.payments.EXPECT().Capture(gomock.Any(), "pi_5", gomock.Any()).Return(commands.CaptureResult{}, nil),
		s.users.EXPECT().MarkPaidRegistration(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
		s.promoAPI.EXPECT().UpdateUsedBy(gomock.Any(), snapshot.LedgerID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, usedBy []uuid.UUID) error {
				s.Contains(usedBy, b.BuyerID)
				return nil
			}),
	)
	s.attempts.EXPECT().Finish(gomock.Any(), gomock.Any()).Return(nil)

	result, err := s.uc.Purchase(context.Background(), s.params(b))
	s.Require().NoError(err)
	s.Equal(int64(4500), result.AmountCents)
}

func (s *PurchaseTestSuite) TestPromoRejectionStopsBeforeAuthorization() {
	code := "EXPIRED"
	b := builder.NewCheckoutBuilder().With(func(b *builder.CheckoutBuilder) {
		b.PromoCode = &code
	})
	product := b.BuildProduct()
	snapshot := b.BuildPromoSnapshot(10)
	past := s.clk.Now().Add(-time.Hour)
	snapshot.ExpiresAt = &past

	s.captcha.EXPECT().Consume(gomock.Any(), b.CaptchaToken).Return(nil)
	s.products.EXPECT().FindByID(gomock.Any(), b.ProductID, catalog.KindCourse).Return(product, nil)
	s.promoAPI.EXPECT().Apply(gomock.Any(), code, b.ProductID, b.BuyerID, b.OrgID, b.Email).Return(snapshot, nil)

	_, err := s.uc.Purchase(context.Background(), s.params(b))
	s.ErrorIs(err, errs.ErrPromoExpired)
}

func (s *PurchaseTestSuite) TestPromoRolledBackWhenRegistrationFails() {
	code := "WELCOME10"
	b := builder.NewCheckoutBuilder().With(func(b *builder.CheckoutBuilder) {
		b.PromoCode = &code
	})
	product := b.BuildProduct()
	snapshot := b.BuildPromoSnapshot(10)

	s.captcha.EXPECT().Consume(gomock.Any(), b.CaptchaToken).Return(nil)
	s.products.EXPECT().FindByID(gomock.Any(), b.ProductID, catalog.KindCourse).Return(product, nil)
	s.promoAPI.EXPECT().Apply(gomock.Any(), code, b.ProductID, b.BuyerID, b.OrgID, b.Email).Return(snapshot, nil)
	s.attempts.EXPECT().Start(gomock.Any(), gomock.Any()).Return(nil)
	s.payments.EXPECT().CreateAuthorization(gomock.Any(), gomock.Any()).
		Return(purchase.Authorization{IntentID: "pi_6"}, nil)
	s.gateway.EXPECT().AttachPaymentMethod(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("pm_6", nil)
	s.gateway.EXPECT().ConfirmAuthorization(gomock.Any(), gomock.Any(), "pm_6").Return(nil)
	s.registrations.EXPECT().Register(gomock.Any(), gomock.Any()).Return(uuid.Nil, errs.New("backend down"))
	s.registrations.EXPECT().Rollback(gomock.Any(), gomock.Any()).Return(nil)
	s.promoAPI.EXPECT().UpdateUsedBy(gomock.Any(), snapshot.LedgerID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, usedBy []uuid.UUID) error {
			s.NotContains(usedBy, b.BuyerID)
			return nil
		})
	s.attempts.EXPECT().Finish(gomock.Any(), gomock.Any()).Return(nil)

	_, err := s.uc.Purchase(context.Background(), s.params(b))
	s.ErrorIs(err, errs.ErrRegistrationFailed)
}

func (s *PurchaseTestSuite) TestRollbackStepFailuresDoNotMaskCause() {
	code := "WELCOME10"
	b := builder.NewCheckoutBuilder().With(func(b *builder.CheckoutBuilder) {
		b.PromoCode = &code
	})
	product := b.BuildProduct()
	snapshot := b.BuildPromoSnapshot(10)

	s.captcha.EXPECT().Consume(gomock.Any(), b.CaptchaToken).Return(nil)
	s.products.EXPECT().FindByID(gomock.Any(), b.ProductID, catalog.KindCourse).Return(product, nil)
	s.promoAPI.EXPECT().Apply(gomock.Any(), code, b.ProductID, b.BuyerID, b.OrgID, b.Email).Return(snapshot, nil)
	s.attempts.EXPECT().Start(gomock.Any(), gomock.Any()).Return(nil)
	s.payments.EXPECT().CreateAuthorization(gomock.Any(), gomock.Any()).
		Return(purchase.Authorization{IntentID: "pi_8"}, nil)
	s.gateway.EXPECT().AttachPaymentMethod(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("pm_8", nil)
	s.gateway.EXPECT().ConfirmAuthorization(gomock.Any(), gomock.Any(), "pm_8").Return(nil)
	s.registrations.EXPECT().Register(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
	s.registrations.EXPECT().CreateFirstLessonProgress(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.payments.EXPECT().Capture(gomock.Any(), "pi_8", gomock.Any()).
		Return(commands.CaptureResult{}, &errs.NetworkError{Kind: errs.NetworkUnreachable, Op: "payments.capture"})
	// Both reversal steps fail. The promo rollback must still run after the
	// registration rollback errored, and neither failure may replace the
	// capture failure the buyer is shown.
	s.registrations.EXPECT().Rollback(gomock.Any(), gomock.Any()).Return(errs.New("rollback endpoint down"))
	s.promoAPI.EXPECT().UpdateUsedBy(gomock.Any(), snapshot.LedgerID, gomock.Any()).Return(errs.New("ledger busy"))
	s.attempts.EXPECT().Finish(gomock.Any(), gomock.Any()).Return(nil)

	_, err := s.uc.Purchase(context.Background(), s.params(b))
	s.ErrorIs(err, errs.ErrCaptureFailed)
	s.NotErrorIs(err, errs.ErrRegistrationFailed)
}

func (s *PurchaseTestSuite) TestPromoCommitFailureDoesNotFailPurchase() {
	code := "WELCOME10"
	b := builder.NewCheckoutBuilder().With(func(b *builder.CheckoutBuilder) {
		b.PromoCode = &code
	})
	product := b.BuildProduct()
	snapshot := b.BuildPromoSnapshot(10)

	s.captcha.EXPECT().Consume(gomock.Any(), b.CaptchaToken).Return(nil)
	s.products.EXPECT().FindByID(gomock.Any(), b.ProductID, catalog.KindCourse).Return(product, nil)
	s.promoAPI.EXPECT().Apply(gomock.Any(), code, b.ProductID, b.BuyerID, b.OrgID, b.Email).Return(snapshot, nil)
	s.attempts.EXPECT().Start(gomock.Any(), gomock.Any()).Return(nil)
	s.payments.EXPECT().CreateAuthorization(gomock.Any(), gomock.Any()).
		Return(purchase.Authorization{IntentID: "pi_7"}, nil)
	s.gateway.EXPECT().AttachPaymentMethod(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("pm_7", nil)
	s.gateway.EXPECT().ConfirmAuthorization(gomock.Any(), gomock.Any(), "pm_7").Return(nil)
	s.registrations.EXPECT().Register(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
	s.registrations.EXPECT().CreateFirstLessonProgress(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.payments.EXPECT().Capture(gomock.Any(), "pi_7", gomock.Any()).Return(commands.CaptureResult{}, nil)
	s.users.EXPECT().MarkPaidRegistration(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.promoAPI.EXPECT().UpdateUsedBy(gomock.Any(), snapshot.LedgerID, gomock.Any()).Return(errs.New("ledger busy"))
	s.attempts.EXPECT().Finish(gomock.Any(), gomock.Any()).Return(nil)

	result, err := s.uc.Purchase(context.Background(), s.params(b))
	s.Require().NoError(err)
	s.Equal(purchase.StateCompleted, result.State)
}
