package learnapi

import (
	"context"
	"net/http"

	"learnscape-checkout/internal/domain/catalog"
	"learnscape-checkout/internal/pkg/errs"
	"learnscape-checkout/internal/usecase/commands"

	"github.com/google/uuid"
)

type registerRequest struct {
	BuyerID   string `json:"buyerId"`
	ProductID string `json:"productId"`
	OrgID     string `json:"orgId"`
	Email     string `json:"email"`
}

type registerResponse struct {
	ID uuid.UUID `json:"id"`
}

// Register creates the durable record: an enrollment for courses, a purchase
// row for documents and subscriptions.
func (c *Client) Register(ctx context.Context, req commands.RegisterRequest) (uuid.UUID, error) {
	path := "/purchases"
	if req.Kind == catalog.KindCourse {
		path = "/enrollments"
	}

	body := registerRequest{
		BuyerID:   req.Buyer.UserID.String(),
		ProductID: req.ProductID.String(),
		OrgID:     req.Buyer.OrgID.String(),
		Email:     req.Buyer.Email,
	}

	var out registerResponse
	if err := c.do(ctx, "registrations.create", http.MethodPost, path, body, &out); err != nil {
		return uuid.Nil, err
	}
	return out.ID, nil
}

type firstLessonProgressRequest struct {
	BuyerID   string `json:"buyerId"`
	ProductID string `json:"productId"`
	OrgID     string `json:"orgId"`
}

func (c *Client) CreateFirstLessonProgress(ctx context.Context, buyerID, productID, orgID uuid.UUID) error {
	body := firstLessonProgressRequest{
		BuyerID:   buyerID.String(),
		ProductID: productID.String(),
		OrgID:     orgID.String(),
	}
	return c.do(ctx, "registrations.first_lesson_progress", http.MethodPost, "/enrollments/first-lesson-progress", body, nil)
}

type rollbackRequest struct {
	BuyerID   string `json:"buyerId"`
	ProductID string `json:"productId"`
	Email     string `json:"email"`
	IntentID  string `json:"intentId"`
}

// Rollback voids the registration through the sessionless endpoint. A 404
// means the record is already gone, which is the state rollback wants.
func (c *Client) Rollback(ctx context.Context, req commands.RegistrationRollbackRequest) error {
	body := rollbackRequest{
		BuyerID:   req.BuyerID.String(),
		ProductID: req.ProductID.String(),
		Email:     req.Email,
		IntentID:  req.IntentID,
	}

	err := c.do(ctx, "registrations.rollback", http.MethodPost, "/enrollments/public-rollback", body, nil)
	if err != nil {
		if apiErr, ok := asAPIError(err); ok && apiErr.Status == http.StatusNotFound {
			return nil
		}
		return errs.Wrap(err, "registration rollback")
	}
	return nil
}
