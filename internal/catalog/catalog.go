// Package catalog is the mock data provider: a fixed country catalog and
// the bill templates used to fabricate outstanding bills for a currency.
package catalog

import (
	"github.com/openremit/billpay-demo/internal/model"
)

var countries = []model.Country{
	{Code: "UK", Name: "United Kingdom", Currency: "GBP", Flag: "🇬🇧"},
	{Code: "CN", Name: "China", Currency: "CNY", Flag: "🇨🇳"},
	{Code: "BR", Name: "Brazil", Currency: "BRL", Flag: "🇧🇷"},
	{Code: "DE", Name: "Germany", Currency: "EUR", Flag: "🇩🇪"},
	{Code: "FR", Name: "France", Currency: "EUR", Flag: "🇫🇷"},
	{Code: "AE", Name: "UAE", Currency: "AED", Flag: "🇦🇪"},
}

var billTemplates = []struct {
	ID          string
	Amount      float64
	Description string
	DueDate     string
}{
	{"BILL-001", 1000, "Software License", "2024-04-01"},
	{"BILL-002", 750, "Consulting Services", "2024-04-15"},
	{"BILL-003", 5000, "Hardware Purchase", "2024-04-30"},
}

// Countries returns the catalog in its fixed order. The first entry is the
// default selection for a new session.
func Countries() []model.Country {
	out := make([]model.Country, len(countries))
	copy(out, countries)
	return out
}

func DefaultCountry() model.Country {
	return countries[0]
}

func CountryByCode(code string) (model.Country, bool) {
	for _, c := range countries {
		if c.Code == code {
			return c, true
		}
	}
	return model.Country{}, false
}

// GenerateBills fabricates the outstanding bills for a currency. Bills are
// regenerated on every country change, so ids are only meaningful within
// one currency context.
func GenerateBills(currency string) []model.Bill {
	bills := make([]model.Bill, len(billTemplates))
	for i, t := range billTemplates {
		bills[i] = model.Bill{
			ID:          t.ID,
			Amount:      t.Amount,
			Currency:    currency,
			Description: t.Description,
			DueDate:     t.DueDate,
		}
	}
	return bills
}
