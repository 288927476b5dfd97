package service

import (
	"context"

	"github.com/openremit/billpay-demo/internal/model"
)

// usdRates is the simulated exchange-rate feed. One static rate per source
// currency, always quoting against USD.
var usdRates = map[string]float64{
	"GBP": 1.27,
	"EUR": 1.08,
	"CNY": 0.14,
	"BRL": 0.20,
	"AED": 0.27,
}

type RateService struct{}

func NewRateService() *RateService {
	return &RateService{}
}

// GetRate returns the fixed rate for a source currency, or 1 when the
// currency is not in the table.
func (s *RateService) GetRate(ctx context.Context, sourceCurrency string) (model.ExchangeRate, error) {
	if err := ctx.Err(); err != nil {
		return model.ExchangeRate{}, err
	}

	rate, ok := usdRates[sourceCurrency]
	if !ok {
		rate = 1
	}

	return model.ExchangeRate{
		Rate:   rate,
		Source: sourceCurrency,
		Target: "USD",
	}, nil
}
