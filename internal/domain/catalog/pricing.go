package catalog

import (
	"errors"
	"strings"
)

var ErrNoPriceEntry = errors.New("product has no price entry for the resolved currency")

// Eurozone members as of the catalog's country table.
var eurozone = map[string]struct{}{
	"AT": {}, "BE": {}, "CY": {}, "DE": {}, "EE": {}, "ES": {}, "FI": {},
	"FR": {}, "GR": {}, "HR": {}, "IE": {}, "IT": {}, "LT": {}, "LU": {},
	"LV": {}, "MT": {}, "NL": {}, "PT": {}, "SI": {}, "SK": {},
}

// CurrencyForCountry maps a buyer country to a charge currency.
// Unknown countries charge in USD.
func CurrencyForCountry(countryCode string) Currency {
	code := strings.ToUpper(strings.TrimSpace(countryCode))
	switch code {
	case "GB":
		return GBP
	case "US":
		return USD
	case "TR":
		return TRY
	}
	if _, ok := eurozone[code]; ok {
		return EUR
	}
	return USD
}

// ResolvePrice picks the price entry matching the buyer's currency, falling
// back to the USD entry when the product has no entry for that currency.
func ResolvePrice(p *Product, countryCode string) (Price, error) {
	currency := CurrencyForCountry(countryCode)

	if price, ok := priceFor(p, currency); ok {
		return price, nil
	}
	if price, ok := priceFor(p, USD); ok {
		return price, nil
	}
	return Price{}, ErrNoPriceEntry
}

func priceFor(p *Product, currency Currency) (Price, bool) {
	for _, price := range p.Prices() {
		if price.Currency == currency {
			return price, true
		}
	}
	return Price{}, false
}
