package request

import (
	"strings"

	"learnscape-checkout/internal/domain/purchase"

	"github.com/google/uuid"
)

type CardRequest struct {
	Number   string `json:"number" binding:"required"`
	ExpMonth int64  `json:"exp_month" binding:"required,min=1,max=12"`
	ExpYear  int64  `json:"exp_year" binding:"required"`
	CVC      string `json:"cvc" binding:"required"`
}

type CheckoutRequest struct {
	ProductID    uuid.UUID    `json:"product_id" binding:"required"`
	Kind         string       `json:"kind" binding:"required"`
	Email        string       `json:"email,omitempty" binding:"omitempty,email"`
	CaptchaToken string       `json:"captcha_token"`
	PromoCode    *string      `json:"promo_code,omitempty"`
	Card         *CardRequest `json:"card,omitempty"`
}

func (r CheckoutRequest) GetPromoCode() *string {
	if r.PromoCode == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.PromoCode)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (r CheckoutRequest) GetCard() *purchase.Card {
	if r.Card == nil {
		return nil
	}
	return &purchase.Card{
		Number:   strings.ReplaceAll(r.Card.Number, " ", ""),
		ExpMonth: r.Card.ExpMonth,
		ExpYear:  r.Card.ExpYear,
		CVC:      r.Card.CVC,
	}
}

type QuoteRequest struct {
	ProductID   uuid.UUID `json:"product_id" binding:"required"`
	Kind        string    `json:"kind" binding:"required"`
	CountryCode string    `json:"country_code,omitempty"`
	Email       string    `json:"email,omitempty" binding:"omitempty,email"`
	PromoCode   *string   `json:"promo_code,omitempty"`
}

func (r QuoteRequest) GetPromoCode() *string {
	if r.PromoCode == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.PromoCode)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
