package service

import (
	"context"
	"fmt"

	"github.com/openremit/billpay-demo/internal/domain"
	"github.com/openremit/billpay-demo/internal/model"
)

// countryLabels maps a catalog country code to the label the method feed is
// keyed by. Both GB and UK resolve to the UK list so the catalog entry and
// the ISO code behave the same. Unmapped codes are rejected outright
// instead of being passed through raw.
var countryLabels = map[string]string{
	"GB": "UK",
	"UK": "UK",
	"CN": "China",
	"BR": "Brazil",
	"DE": "Germany",
	"FR": "France",
	"AE": "UAE",
}

type methodSpec struct {
	Name string
	Icon string
}

var methodCatalog = map[string][]methodSpec{
	"UK": {
		{"Bank Transfer (BACS)", "🏦"},
		{"Faster Payments", "⚡"},
		{"CHAPS", "💷"},
		{"Debit Card", "💳"},
		{"Credit Card", "💳"},
	},
	"China": {
		{"UnionPay", "💳"},
		{"Alipay", "📱"},
		{"WeChat Pay", "💬"},
		{"Bank Transfer (CNAPS)", "🏦"},
	},
	"Brazil": {
		{"PIX", "⚡"},
		{"Boleto", "📃"},
		{"Bank Transfer (TED)", "🏦"},
		{"Credit Card", "💳"},
	},
	"Germany": {
		{"SEPA Transfer", "🏦"},
		{"SOFORT", "⚡"},
		{"Giropay", "🏦"},
		{"Credit Card", "💳"},
	},
	"France": {
		{"SEPA Transfer", "🏦"},
		{"Carte Bancaire", "💳"},
		{"Credit Card", "💳"},
	},
	"UAE": {
		{"Bank Transfer", "🏦"},
		{"UAEFTS", "⚡"},
		{"Credit Card", "💳"},
	},
}

type MethodService struct{}

func NewMethodService() *MethodService {
	return &MethodService{}
}

// GetPaymentMethods returns the method list for a country. Ids are composed
// as label-index; the index also fixes which detail form the method renders,
// carried explicitly as the Form discriminant.
func (s *MethodService) GetPaymentMethods(ctx context.Context, countryCode string) ([]model.PaymentMethod, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	label, ok := countryLabels[countryCode]
	if !ok {
		return nil, domain.ErrCountryNotSupported
	}

	specs := methodCatalog[label]
	methods := make([]model.PaymentMethod, len(specs))
	for i, spec := range specs {
		methods[i] = model.PaymentMethod{
			ID:   fmt.Sprintf("%s-%d", label, i),
			Name: spec.Name,
			Icon: spec.Icon,
			Form: model.FormKindForIndex(i),
		}
	}
	return methods, nil
}
