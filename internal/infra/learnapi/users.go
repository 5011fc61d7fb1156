package learnapi

import (
	"context"
	"net/http"

	"learnscape-checkout/internal/usecase/commands"

	"github.com/google/uuid"
)

type checkUserExistsRequest struct {
	Email     string  `json:"email"`
	ProductID *string `json:"productId,omitempty"`
}

type checkUserExistsResponse struct {
	Exists             bool      `json:"exists"`
	IsEmailVerified    bool      `json:"isEmailVerified"`
	IsEnrolledInCourse bool      `json:"isEnrolledInCourse"`
	UserID             uuid.UUID `json:"userId"`
	OrgID              uuid.UUID `json:"orgId"`
	CountryCode        string    `json:"countryCode"`
	FirstName          string    `json:"firstName"`
	LastName           string    `json:"lastName"`
}

// CheckUserExists resolves a home-page buyer by email. The productID, when
// set, also answers whether that buyer already holds the product.
func (c *Client) CheckUserExists(ctx context.Context, email string, productID *uuid.UUID) (*commands.UserExistence, error) {
	body := checkUserExistsRequest{Email: email}
	if productID != nil {
		id := productID.String()
		body.ProductID = &id
	}

	var out checkUserExistsResponse
	if err := c.do(ctx, "users.check_exists", http.MethodPost, "/users/check-user-exists", body, &out); err != nil {
		return nil, err
	}
	return &commands.UserExistence{
		Exists:          out.Exists,
		IsEmailVerified: out.IsEmailVerified,
		IsEnrolled:      out.IsEnrolledInCourse,
		UserID:          out.UserID,
		OrgID:           out.OrgID,
		CountryCode:     out.CountryCode,
		FirstName:       out.FirstName,
		LastName:        out.LastName,
	}, nil
}

type markPaidRequest struct {
	OrgID string `json:"orgId"`
}

// MarkPaidRegistration flips the buyer's paid-registration flag. The backend
// update is idempotent; callers treat failure as best-effort.
func (c *Client) MarkPaidRegistration(ctx context.Context, userID, orgID uuid.UUID) error {
	body := markPaidRequest{OrgID: orgID.String()}
	return c.do(ctx, "users.mark_paid", http.MethodPatch, "/users/"+userID.String()+"/paid-registration", body, nil)
}
