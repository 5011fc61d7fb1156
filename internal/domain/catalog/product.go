package catalog

import (
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidKind   = errors.New("invalid product kind")
	ErrInvalidAmount = errors.New("invalid price amount")
)

type Kind string

const (
	KindCourse       Kind = "course"
	KindDocument     Kind = "document"
	KindSubscription Kind = "subscription"
)

func NewKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.IsValid() {
		return "", ErrInvalidKind
	}
	return k, nil
}

func (k Kind) IsValid() bool {
	switch k {
	case KindCourse, KindDocument, KindSubscription:
		return true
	default:
		return false
	}
}

func (k Kind) String() string {
	return string(k)
}

type Currency string

const (
	USD Currency = "usd"
	GBP Currency = "gbp"
	EUR Currency = "eur"
	TRY Currency = "try"
)

func (c Currency) String() string {
	return string(c)
}

// Price is one entry of a product's per-currency price list. Amount is kept
// as the raw catalog string: upstream stores "", "0" and "Free" for free
// products and all three must stay equivalent until the backend data is
// cleaned up.
type Price struct {
	Currency Currency
	Amount   string
}

const freeSentinel = "free"

func (p Price) IsFree() bool {
	amount := strings.TrimSpace(p.Amount)
	if amount == "" {
		return true
	}
	if amount == "0" {
		return true
	}
	return strings.ToLower(amount) == freeSentinel
}

// MinorUnits parses the catalog amount into minor currency units (cents).
// Free prices parse to 0. At most two decimal places are accepted.
func (p Price) MinorUnits() (int64, error) {
	if p.IsFree() {
		return 0, nil
	}

	amount := strings.TrimSpace(p.Amount)
	whole, frac, hasFrac := strings.Cut(amount, ".")

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || units < 0 {
		return 0, ErrInvalidAmount
	}

	cents := units * 100
	if hasFrac {
		if len(frac) == 0 || len(frac) > 2 {
			return 0, ErrInvalidAmount
		}
		if len(frac) == 1 {
			frac += "0"
		}
		f, err := strconv.ParseInt(frac, 10, 64)
		if err != nil || f < 0 {
			return 0, ErrInvalidAmount
		}
		cents += f
	}
	return cents, nil
}

type Product struct {
	id       uuid.UUID
	orgID    uuid.UUID
	kind     Kind
	title    string
	prices   []Price
	external bool
}

func NewProduct(id, orgID uuid.UUID, kind Kind, title string, prices []Price, external bool) (*Product, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	return &Product{
		id:       id,
		orgID:    orgID,
		kind:     kind,
		title:    title,
		prices:   prices,
		external: external,
	}, nil
}

func (p *Product) ID() uuid.UUID    { return p.id }
func (p *Product) OrgID() uuid.UUID { return p.orgID }
func (p *Product) Kind() Kind       { return p.kind }
func (p *Product) Title() string    { return p.title }
func (p *Product) Prices() []Price  { return p.prices }

// IsExternal reports whether the product is hosted outside the platform.
// External courses get no first-lesson progress record on enrollment.
func (p *Product) IsExternal() bool { return p.external }

func (p *Product) IsCourse() bool       { return p.kind == KindCourse }
func (p *Product) IsSubscription() bool { return p.kind == KindSubscription }
