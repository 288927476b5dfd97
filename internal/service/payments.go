package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/openremit/billpay-demo/internal/model"
)

// PaymentService fabricates payment confirmations. Every submission
// succeeds; the tracking id is an opaque token the tracking view keys on.
type PaymentService struct{}

func NewPaymentService() *PaymentService {
	return &PaymentService{}
}

func (s *PaymentService) CreatePayment(ctx context.Context, req model.PaymentRequest) (model.Payment, error) {
	if err := ctx.Err(); err != nil {
		return model.Payment{}, err
	}

	return model.Payment{
		ID:             "PAY-" + token(),
		Status:         "completed",
		TrackingID:     "TRK-" + token(),
		Amount:         req.Amount,
		Currency:       req.Currency,
		SourceCurrency: req.SourceCurrency,
		PaymentMethod:  req.PaymentMethod,
		BillIDs:        req.BillIDs,
		CreatedAt:      time.Now().UTC(),
	}, nil
}

func token() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
}
