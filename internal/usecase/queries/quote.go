package queries

import (
	"context"

	"learnscape-checkout/internal/domain/catalog"
	"learnscape-checkout/internal/domain/promocode"
	"learnscape-checkout/internal/pkg/clock"
	"learnscape-checkout/internal/pkg/errs"
	"learnscape-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=quote.go -destination=../../../tests/mock/queries/quote.go -package=queriesmock

type ProductReadStore interface {
	FindByID(ctx context.Context, productID uuid.UUID, kind catalog.Kind) (*catalog.Product, error)
}

type PromoReadStore interface {
	Apply(ctx context.Context, code string, productID, buyerID, orgID uuid.UUID, email string) (*shared.PromoSnapshot, error)
}

type QuoteParams struct {
	ProductID   uuid.UUID
	Kind        catalog.Kind
	CountryCode string
	BuyerID     uuid.UUID
	OrgID       uuid.UUID
	Email       string
	PromoCode   *string
}

type QuoteView struct {
	ProductID       uuid.UUID
	Kind            catalog.Kind
	Currency        catalog.Currency
	AmountCents     int64
	Free            bool
	PromoApplied    bool
	DiscountPercent float64
	// PromoRejection carries the rejection reason when a code was supplied
	// but did not apply; the quoted amount reverts to the undiscounted price.
	PromoRejection string
}

type QuoteQueries interface {
	GetQuote(ctx context.Context, params QuoteParams) (*QuoteView, error)
}

// quoteQueriesImpl backs the dialog's price display. It has no side effects:
// a previewed promo code is not consumed.
type quoteQueriesImpl struct {
	products ProductReadStore
	promos   PromoReadStore
	clock    clock.Clock
}

func NewQuoteQueries(products ProductReadStore, promos PromoReadStore, clk clock.Clock) QuoteQueries {
	return &quoteQueriesImpl{
		products: products,
		promos:   promos,
		clock:    clk,
	}
}

func (q *quoteQueriesImpl) GetQuote(ctx context.Context, params QuoteParams) (*QuoteView, error) {
	product, err := q.products.FindByID(ctx, params.ProductID, params.Kind)
	if err != nil {
		return nil, err
	}

	price, err := catalog.ResolvePrice(product, params.CountryCode)
	if err != nil {
		return nil, err
	}

	view := &QuoteView{
		ProductID: product.ID(),
		Kind:      product.Kind(),
		Currency:  price.Currency,
	}

	if price.IsFree() {
		view.Free = true
		return view, nil
	}

	baseCents, err := price.MinorUnits()
	if err != nil {
		return nil, err
	}
	view.AmountCents = baseCents

	if params.PromoCode == nil {
		return view, nil
	}

	pc, err := q.previewPromo(ctx, *params.PromoCode, product, params)
	if err != nil {
		if _, ok := errs.AsNetworkError(err); ok {
			return nil, err
		}
		// Only the curated rejection text goes out; the cause may carry
		// backend error bodies.
		view.PromoRejection = errs.PromoRejectionMessage(err)
		return view, nil
	}

	view.PromoApplied = true
	view.DiscountPercent = pc.PercentOff()
	view.AmountCents = promocode.ApplyDiscount(baseCents, pc.PercentOff())
	return view, nil
}

func (q *quoteQueriesImpl) previewPromo(ctx context.Context, code string, product *catalog.Product, params QuoteParams) (*promocode.PromoCode, error) {
	snapshot, err := q.promos.Apply(ctx, code, product.ID(), params.BuyerID, params.OrgID, params.Email)
	if err != nil {
		return nil, err
	}

	pc, err := promocode.NewPromoCode(
		snapshot.LedgerID,
		snapshot.Code,
		snapshot.PercentOff,
		snapshot.ExpiresAt,
		snapshot.MaxUses,
		snapshot.ProductIDs,
		snapshot.AllProducts,
		snapshot.UsedBy,
		snapshot.AllowSubscriptions,
	)
	if err != nil {
		return nil, err
	}

	if err := pc.ValidateUsage(product.ID(), params.BuyerID, product.Kind(), q.clock.Now()); err != nil {
		return nil, err
	}
	return pc, nil
}
