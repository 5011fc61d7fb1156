package learnapi

import (
	"context"
	"net/http"

	"learnscape-checkout/internal/domain/purchase"
	"learnscape-checkout/internal/usecase/commands"
)

type createPaymentRequest struct {
	Amount         int64  `json:"amount"`
	Currency       string `json:"currency"`
	OrgID          string `json:"orgId"`
	BuyerID        string `json:"buyerId"`
	ProductID      string `json:"productId"`
	Email          string `json:"email"`
	Name           string `json:"name"`
	PaymentType    string `json:"paymentType"`
	RecaptchaToken string `json:"recaptchaToken"`
}

type createPaymentResponse struct {
	ClientSecret string `json:"clientSecret"`
	IntentID     string `json:"intentId"`
}

// CreateAuthorization asks the backend to open a pending hold for the locked
// amount. The backend verifies the recaptcha token against the provider.
func (c *Client) CreateAuthorization(ctx context.Context, req commands.CreateAuthorizationRequest) (purchase.Authorization, error) {
	body := createPaymentRequest{
		Amount:         req.AmountCents,
		Currency:       req.Currency.String(),
		OrgID:          req.Buyer.OrgID.String(),
		BuyerID:        req.Buyer.UserID.String(),
		ProductID:      req.ProductID.String(),
		Email:          req.Buyer.Email,
		Name:           req.Buyer.FullName(),
		PaymentType:    req.PaymentType.String(),
		RecaptchaToken: req.CaptchaToken,
	}

	var out createPaymentResponse
	if err := c.do(ctx, "payments.create", http.MethodPost, "/payments", body, &out); err != nil {
		return purchase.Authorization{}, err
	}
	return purchase.Authorization{
		IntentID:     out.IntentID,
		ClientSecret: out.ClientSecret,
	}, nil
}

type capturePaymentRequest struct {
	BuyerID     string `json:"buyerId"`
	OrgID       string `json:"orgId"`
	ProductID   string `json:"productId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PaymentType string `json:"paymentType"`
}

type capturePaymentResponse struct {
	EmailWarning bool `json:"emailWarning"`
}

// Capture settles the hold. The backend treats a capture against an
// already-settled intent as a no-op success, so a retry never blocks the
// terminal state.
func (c *Client) Capture(ctx context.Context, intentID string, req commands.CaptureRequest) (commands.CaptureResult, error) {
	body := capturePaymentRequest{
		BuyerID:     req.Buyer.UserID.String(),
		OrgID:       req.Buyer.OrgID.String(),
		ProductID:   req.ProductID.String(),
		Name:        req.Buyer.FullName(),
		Email:       req.Buyer.Email,
		PaymentType: req.PaymentType.String(),
	}

	var out capturePaymentResponse
	if err := c.do(ctx, "payments.capture", http.MethodPatch, "/payments/capture/"+intentID, body, &out); err != nil {
		return commands.CaptureResult{}, err
	}
	return commands.CaptureResult{EmailWarning: out.EmailWarning}, nil
}
