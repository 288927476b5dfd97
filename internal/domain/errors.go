package domain

import (
	"fmt"
	"net/http"
	"strings"
)

// Error is a domain error that knows how it should surface over HTTP.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newError(code string, status int, message string) *Error {
	return &Error{Code: code, Message: message, Status: status}
}

var (
	ErrSessionNotFound  = newError("SESSION_NOT_FOUND", http.StatusNotFound, "bill selection session not found")
	ErrCheckoutNotFound = newError("CHECKOUT_NOT_FOUND", http.StatusNotFound, "checkout session not found")
	ErrCountryNotFound  = newError("COUNTRY_NOT_FOUND", http.StatusNotFound, "country is not in the catalog")

	ErrCountryNotSupported = newError("COUNTRY_NOT_SUPPORTED", http.StatusUnprocessableEntity, "no payment methods available for this country")
	ErrNoBillsSelected     = newError("NO_BILLS_SELECTED", http.StatusBadRequest, "at least one bill must be selected")
	ErrBillNotFound        = newError("BILL_NOT_FOUND", http.StatusNotFound, "bill is not in the current bill list")

	ErrNoMethodSelected   = newError("NO_METHOD_SELECTED", http.StatusBadRequest, "no payment method selected")
	ErrMethodNotFound     = newError("METHOD_NOT_FOUND", http.StatusNotFound, "payment method not offered for this checkout")
	ErrMethodNotSupported = newError("METHOD_NOT_SUPPORTED", http.StatusUnprocessableEntity, "payment method is not supported")
	ErrUnknownField       = newError("UNKNOWN_FIELD", http.StatusBadRequest, "field does not belong to the active payment form")

	ErrInvalidState  = newError("INVALID_STATE", http.StatusConflict, "operation not allowed in the current checkout state")
	ErrPaymentFailed = newError("PAYMENT_FAILED", http.StatusBadGateway, "payment submission failed")
)

// MissingFields reports which required fields of the active form are still
// blank. Presence is the only check performed; formats are not validated.
func MissingFields(fields ...string) *Error {
	return newError("MISSING_FIELDS", http.StatusBadRequest,
		"required fields missing: "+strings.Join(fields, ", "))
}

// IsNavigation reports whether the error means the caller arrived without
// the state a screen depends on and should be sent back to the start.
func IsNavigation(err *Error) bool {
	switch err.Code {
	case "SESSION_NOT_FOUND", "CHECKOUT_NOT_FOUND":
		return true
	}
	return false
}
