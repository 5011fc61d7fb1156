package learnapi

import (
	"context"
	"net/http"

	"learnscape-checkout/internal/domain/catalog"
	"learnscape-checkout/internal/pkg/errs"

	"github.com/google/uuid"
)

type productPrice struct {
	Currency string `json:"currency"`
	Amount   string `json:"amount"`
}

type productResponse struct {
	ID       uuid.UUID      `json:"id"`
	OrgID    uuid.UUID      `json:"orgId"`
	Kind     string         `json:"kind"`
	Title    string         `json:"title"`
	Prices   []productPrice `json:"prices"`
	External bool           `json:"external"`
}

// FindByID loads the product with its per-currency price list. Price amounts
// come through as the raw catalog strings so the free sentinels survive.
func (c *Client) FindByID(ctx context.Context, productID uuid.UUID, kind catalog.Kind) (*catalog.Product, error) {
	var out productResponse
	path := "/products/" + productID.String() + "?kind=" + kind.String()
	if err := c.do(ctx, "products.find", http.MethodGet, path, nil, &out); err != nil {
		if apiErr, ok := asAPIError(err); ok && apiErr.Status == http.StatusNotFound {
			return nil, errs.Mark(err, errs.ErrProductNotFound)
		}
		return nil, err
	}

	prices := make([]catalog.Price, 0, len(out.Prices))
	for _, p := range out.Prices {
		prices = append(prices, catalog.Price{
			Currency: catalog.Currency(p.Currency),
			Amount:   p.Amount,
		})
	}

	product, err := catalog.NewProduct(out.ID, out.OrgID, catalog.Kind(out.Kind), out.Title, prices, out.External)
	if err != nil {
		return nil, errs.Wrap(err, "products.find: invalid product payload")
	}
	return product, nil
}
