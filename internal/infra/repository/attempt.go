package repository

import (
	"context"
	"errors"

	"learnscape-checkout/internal/domain/purchase"
	"learnscape-checkout/internal/infra"
	"learnscape-checkout/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

// AttemptRepository persists purchase attempts. A partial unique index on
// (buyer_id, product_id) over non-terminal states makes Start the
// single-flight gate: a second submit while the first is processing hits the
// index and is rejected. Terminal rows stay behind as the audit trail.
type AttemptRepository struct {
	pool *pgxpool.Pool
}

func NewAttemptRepository(pool *pgxpool.Pool) *AttemptRepository {
	return &AttemptRepository{pool: pool}
}

func (r *AttemptRepository) Start(ctx context.Context, attempt *purchase.Attempt) error {
	locked, err := attempt.LockedPrice()
	if err != nil {
		return infra.WrapRepoErr("attempt started without a locked price", err)
	}
	buyer := attempt.Buyer()

	_, err = r.pool.Exec(ctx, `
		INSERT INTO purchase_attempts
			(id, buyer_id, product_id, org_id, kind, state, amount_cents, currency, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())`,
		attempt.ID(), buyer.UserID, attempt.ProductID(), buyer.OrgID,
		attempt.Kind().String(), attempt.State().String(), locked.Cents(), locked.Currency().String(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return errs.Mark(err, errs.ErrPurchaseInProgress)
		}
		return infra.WrapRepoErr("failed to insert purchase attempt", err)
	}
	return nil
}

func (r *AttemptRepository) Finish(ctx context.Context, attempt *purchase.Attempt) error {
	var intentID *string
	if attempt.IntentID() != "" {
		id := attempt.IntentID()
		intentID = &id
	}

	tag, err := r.pool.Exec(ctx, `
		UPDATE purchase_attempts
		SET state = $2, intent_id = $3, promo_ledger_id = $4, updated_at = now()
		WHERE id = $1`,
		attempt.ID(), attempt.State().String(), intentID, attempt.PromoLedgerID(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update purchase attempt", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("purchase attempt not found", nil, infra.KindNotFound)
	}
	return nil
}
