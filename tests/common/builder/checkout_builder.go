//go:build unit || e2e

package builder

import (
	"learnscape-checkout/internal/domain/catalog"
	"learnscape-checkout/internal/domain/purchase"
	reqdto "learnscape-checkout/internal/handler/dto/request"
	"learnscape-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

type CheckoutBuilder struct {
	ProductID    uuid.UUID
	OrgID        uuid.UUID
	BuyerID      uuid.UUID
	Kind         catalog.Kind
	Title        string
	Prices       []catalog.Price
	External     bool
	Email        string
	CaptchaToken string
	PromoCode    *string
	Card         *reqdto.CardRequest
}

func NewCheckoutBuilder() *CheckoutBuilder {
	return &CheckoutBuilder{
		ProductID:    uuid.New(),
		OrgID:        uuid.New(),
		BuyerID:      uuid.New(),
		Kind:         catalog.KindCourse,
		Title:        "Intro to Astronomy",
		Prices:       []catalog.Price{{Currency: catalog.USD, Amount: "49.99"}},
		External:     false,
		Email:        "buyer@example.com",
		CaptchaToken: "captcha-token-1",
		Card: &reqdto.CardRequest{
			Number:   "4242424242424242",
			ExpMonth: 12,
			ExpYear:  2030,
			CVC:      "123",
		},
	}
}

func (b *CheckoutBuilder) With(mutate func(*CheckoutBuilder)) *CheckoutBuilder {
	mutate(b)
	return b
}

func (b *CheckoutBuilder) Free() *CheckoutBuilder {
	b.Prices = []catalog.Price{{Currency: catalog.USD, Amount: "Free"}}
	b.Card = nil
	return b
}

func (b *CheckoutBuilder) BuildProduct() *catalog.Product {
	product, err := catalog.NewProduct(b.ProductID, b.OrgID, b.Kind, b.Title, b.Prices, b.External)
	if err != nil {
		panic(err)
	}
	return product
}

func (b *CheckoutBuilder) BuildBuyer() purchase.Buyer {
	return purchase.Buyer{
		UserID:      b.BuyerID,
		OrgID:       b.OrgID,
		Email:       b.Email,
		FirstName:   "Ada",
		LastName:    "Lovelace",
		CountryCode: "US",
	}
}

func (b *CheckoutBuilder) BuildCheckoutRequestDTO() reqdto.CheckoutRequest {
	return reqdto.CheckoutRequest{
		ProductID:    b.ProductID,
		Kind:         b.Kind.String(),
		Email:        b.Email,
		CaptchaToken: b.CaptchaToken,
		PromoCode:    b.PromoCode,
		Card:         b.Card,
	}
}

func (b *CheckoutBuilder) BuildQuoteRequestDTO() reqdto.QuoteRequest {
	return reqdto.QuoteRequest{
		ProductID:   b.ProductID,
		Kind:        b.Kind.String(),
		CountryCode: "US",
		Email:       b.Email,
		PromoCode:   b.PromoCode,
	}
}

func (b *CheckoutBuilder) BuildPromoSnapshot(percentOff float64) *shared.PromoSnapshot {
	return &shared.PromoSnapshot{
		LedgerID:    uuid.New(),
		Code:        "WELCOME10",
		PercentOff:  percentOff,
		MaxUses:     0,
		AllProducts: true,
	}
}
