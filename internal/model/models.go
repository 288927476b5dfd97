package model

import (
	"time"
)

type Country struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Currency string `json:"currency"`
	Flag     string `json:"flag"`
}

type Bill struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Description string  `json:"description"`
	DueDate     string  `json:"due_date"`
}

// FormKind tells the client which payment-detail form to render for a
// method. It is assigned once when the method list is built, from the
// method's position in its country's list.
type FormKind string

const (
	FormCard         FormKind = "CARD"
	FormWallet       FormKind = "WALLET"
	FormQR           FormKind = "QR"
	FormBankTransfer FormKind = "BANK_TRANSFER"
	FormUnsupported  FormKind = "UNSUPPORTED"
)

func FormKindForIndex(index int) FormKind {
	switch index {
	case 0:
		return FormCard
	case 1:
		return FormWallet
	case 2:
		return FormQR
	case 3:
		return FormBankTransfer
	default:
		return FormUnsupported
	}
}

// RequiredFields lists the field names the form must collect before a
// payment can be submitted. QR renders no inputs at all.
func (k FormKind) RequiredFields() []string {
	switch k {
	case FormCard:
		return []string{"cardNumber", "expiryDate", "cvv", "name"}
	case FormWallet:
		return []string{"phoneNumber", "password"}
	case FormBankTransfer:
		return []string{"name", "bankAccount", "idNumber"}
	default:
		return nil
	}
}

type PaymentMethod struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Icon string   `json:"icon"`
	Form FormKind `json:"form"`
}

type ExchangeRate struct {
	Rate   float64 `json:"rate"`
	Source string  `json:"source"`
	Target string  `json:"target"`
}

type PaymentRequest struct {
	Amount         float64  `json:"amount"`
	Currency       string   `json:"currency"`
	SourceCurrency string   `json:"source_currency"`
	PaymentMethod  string   `json:"payment_method"`
	BillIDs        []string `json:"bill_ids"`
}

type Payment struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"`
	TrackingID     string    `json:"tracking_id"`
	Amount         float64   `json:"amount"`
	Currency       string    `json:"currency"`
	SourceCurrency string    `json:"source_currency"`
	PaymentMethod  string    `json:"payment_method"`
	BillIDs        []string  `json:"bill_ids"`
	CreatedAt      time.Time `json:"created_at"`
}

// CheckoutState is the lifecycle of a checkout session. Failed keeps the
// entered form data so the user can resubmit.
type CheckoutState string

const (
	StateLoading    CheckoutState = "LOADING"
	StateReady      CheckoutState = "READY"
	StateSubmitting CheckoutState = "SUBMITTING"
	StateCompleted  CheckoutState = "COMPLETED"
	StateFailed     CheckoutState = "FAILED"
)
