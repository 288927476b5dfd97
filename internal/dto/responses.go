package dto

import (
	"github.com/openremit/billpay-demo/internal/model"
)

type SelectionResponse struct {
	ID              string          `json:"id"`
	Country         model.Country   `json:"country"`
	Bills           []model.Bill    `json:"bills"`
	SelectedBillIDs []string        `json:"selected_bill_ids"`
	TotalSource     float64         `json:"total_source"`
	Countries       []model.Country `json:"countries,omitempty"`
}

// FormDescriptor tells the client which detail form to render for the
// selected method and which fields it must collect.
type FormDescriptor struct {
	Kind           model.FormKind `json:"kind"`
	RequiredFields []string       `json:"required_fields"`
	Supported      bool           `json:"supported"`
}

type CheckoutResponse struct {
	ID               string                `json:"id"`
	State            model.CheckoutState   `json:"state"`
	Country          model.Country         `json:"country"`
	Bills            []model.Bill          `json:"bills"`
	Methods          []model.PaymentMethod `json:"methods"`
	SelectedMethodID string                `json:"selected_method_id,omitempty"`
	Form             *FormDescriptor       `json:"form,omitempty"`
	Rate             model.ExchangeRate    `json:"rate"`
	Fields           map[string]string     `json:"fields"`
	TotalSource      float64               `json:"total_source"`
	TotalUSD         float64               `json:"total_usd"`
	Payment          *model.Payment        `json:"payment,omitempty"`
	LastError        string                `json:"last_error,omitempty"`
}

type TrackingStage struct {
	Label string `json:"label"`
	Done  bool   `json:"done"`
}

type TrackingResponse struct {
	TrackingID string          `json:"tracking_id"`
	Stages     []TrackingStage `json:"stages"`
}

type ErrorResponse struct {
	Error    string `json:"error"`
	Code     string `json:"code,omitempty"`
	Redirect string `json:"redirect,omitempty"`
}
