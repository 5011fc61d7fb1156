package api

import (
	"errors"
	"net/http"

	"learnscape-checkout/internal/domain/catalog"
	"learnscape-checkout/internal/domain/purchase"
	reqdto "learnscape-checkout/internal/handler/dto/request"
	resdto "learnscape-checkout/internal/handler/dto/response"
	"learnscape-checkout/internal/handler/httperr"
	"learnscape-checkout/internal/handler/middleware"
	"learnscape-checkout/internal/pkg/errs"
	"learnscape-checkout/internal/pkg/sessiontoken"
	"learnscape-checkout/internal/usecase/commands"
	"learnscape-checkout/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	purchaseUseCase commands.PurchaseCommands
	quoteUseCase    queries.QuoteQueries
}

func NewCheckoutHandler(purchaseUseCase commands.PurchaseCommands, quoteUseCase queries.QuoteQueries) *CheckoutHandler {
	return &CheckoutHandler{
		purchaseUseCase: purchaseUseCase,
		quoteUseCase:    quoteUseCase,
	}
}

// Checkout runs one purchase attempt end to end. The session is optional:
// without one the buyer is resolved by email.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req reqdto.CheckoutRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	kind, err := catalog.NewKind(req.Kind)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product kind", nil)
		return
	}

	params := commands.PurchaseParams{
		Email:        req.Email,
		ProductID:    req.ProductID,
		Kind:         kind,
		CaptchaToken: req.CaptchaToken,
		PromoCode:    req.GetPromoCode(),
		Card:         req.GetCard(),
	}

	if claims, ok := middleware.GetSessionClaims(c); ok {
		if !claims.EmailVerified {
			h.renderError(c, errs.ErrEmailNotVerified)
			return
		}
		params.Buyer = buyerFromClaims(claims)
		params.Email = claims.Email
	}

	result, err := h.purchaseUseCase.Purchase(c.Request.Context(), params)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromPurchaseResult(result))
}

// Quote resolves the price for the buyer's country and previews a promo code
// without consuming anything.
func (h *CheckoutHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	kind, err := catalog.NewKind(req.Kind)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product kind", nil)
		return
	}

	params := queries.QuoteParams{
		ProductID:   req.ProductID,
		Kind:        kind,
		CountryCode: req.CountryCode,
		Email:       req.Email,
		PromoCode:   req.GetPromoCode(),
	}
	if claims, ok := middleware.GetSessionClaims(c); ok {
		params.BuyerID = claims.UserID
		params.OrgID = claims.OrgID
		params.Email = claims.Email
		if params.CountryCode == "" {
			params.CountryCode = claims.CountryCode
		}
	}

	view, err := h.quoteUseCase.GetQuote(c.Request.Context(), params)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}

// renderError maps usecase errors onto user-facing responses. Pre-flight
// rejections carry instructions; post-authorization failures all collapse to
// the same message because compensation already ran and the buyer was not
// charged.
func (h *CheckoutHandler) renderError(c *gin.Context, err error) {
	if cardErr, ok := errs.AsCardError(err); ok {
		httperr.AbortWithError(c, http.StatusPaymentRequired, err, cardErr.Message(), nil)
		return
	}
	if netErr, ok := errs.AsNetworkError(err); ok {
		status := http.StatusBadGateway
		if netErr.Kind == errs.NetworkTimeout {
			status = http.StatusGatewayTimeout
		}
		httperr.AbortWithError(c, status, err, netErr.Message(), nil)
		return
	}

	switch {
	case errors.Is(err, errs.ErrCaptchaTokenRequired):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Captcha verification is required", nil)
	case errors.Is(err, errs.ErrCaptchaTokenConsumed):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Captcha verification expired, please try again", nil)
	case errors.Is(err, errs.ErrAccountNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "No account exists for this email address", nil)
	case errors.Is(err, errs.ErrEmailNotVerified):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Please verify your email address before purchasing", nil)
	case errors.Is(err, errs.ErrAlreadyEnrolled):
		httperr.AbortWithError(c, http.StatusConflict, err, "You already have access to this product", nil)
	case errors.Is(err, errs.ErrCardDetailsRequired):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Card details are required for paid products", nil)
	case errors.Is(err, errs.ErrProductNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
	case errors.Is(err, catalog.ErrNoPriceEntry):
		httperr.AbortWithError(c, http.StatusNotFound, err, "No price is available for this product", nil)
	case errs.IsPromoRejection(err):
		httperr.AbortWithError(c, http.StatusBadRequest, err, errs.PromoRejectionMessage(err), nil)
	case errors.Is(err, errs.ErrPurchaseInProgress):
		httperr.AbortWithError(c, http.StatusConflict, err, "A purchase for this product is already being processed", nil)
	case errors.Is(err, errs.ErrRegistrationFailed), errors.Is(err, errs.ErrCaptureFailed):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Your purchase could not be completed. You have not been charged.", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func buyerFromClaims(claims *sessiontoken.Claims) *purchase.Buyer {
	return &purchase.Buyer{
		UserID:      claims.UserID,
		OrgID:       claims.OrgID,
		Email:       claims.Email,
		FirstName:   claims.FirstName,
		LastName:    claims.LastName,
		CountryCode: claims.CountryCode,
	}
}
