package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/openremit/billpay-demo/internal/domain"
	"github.com/openremit/billpay-demo/internal/model"
	"github.com/openremit/billpay-demo/internal/session"
)

// MethodFetcher, RateFetcher and PaymentCreator are the backend contracts
// the checkout flow consumes. The in-process mock services satisfy them.
type MethodFetcher interface {
	GetPaymentMethods(ctx context.Context, countryCode string) ([]model.PaymentMethod, error)
}

type RateFetcher interface {
	GetRate(ctx context.Context, sourceCurrency string) (model.ExchangeRate, error)
}

type PaymentCreator interface {
	CreatePayment(ctx context.Context, req model.PaymentRequest) (model.Payment, error)
}

// CheckoutSession holds everything the payment screen owns: the transferred
// bills and country, the fetched methods and rate, the form field values
// and the lifecycle state. Mutations serialize on the session mutex.
type CheckoutSession struct {
	mu sync.Mutex

	ID               string
	State            model.CheckoutState
	Bills            []model.Bill
	Country          model.Country
	Methods          []model.PaymentMethod
	SelectedMethodID string
	Rate             model.ExchangeRate
	Fields           map[string]string
	Payment          *model.Payment
	LastError        string
}

// CheckoutSnapshot is a consistent copy of a session, safe to hand to
// handlers without holding the session lock.
type CheckoutSnapshot struct {
	ID               string
	State            model.CheckoutState
	Bills            []model.Bill
	Country          model.Country
	Methods          []model.PaymentMethod
	SelectedMethodID string
	ActiveForm       model.FormKind
	RequiredFields   []string
	Rate             model.ExchangeRate
	Fields           map[string]string
	TotalSource      float64
	TotalUSD         float64
	Payment          *model.Payment
	LastError        string
}

type CheckoutService struct {
	methods       MethodFetcher
	rates         RateFetcher
	payments      PaymentCreator
	store         *session.Store[*CheckoutSession]
	submitTimeout time.Duration
}

func NewCheckoutService(methods MethodFetcher, rates RateFetcher, payments PaymentCreator, ttl, submitTimeout time.Duration) *CheckoutService {
	return &CheckoutService{
		methods:       methods,
		rates:         rates,
		payments:      payments,
		store:         session.NewStore[*CheckoutSession](ttl),
		submitTimeout: submitTimeout,
	}
}

func (s *CheckoutService) ActiveSessions() int {
	return s.store.Len()
}

// Start enters checkout with the transfer payload from bill selection.
// Methods and rate are fetched concurrently; a rate failure falls back to
// rate 1, a method failure leaves the list empty with submission guarded.
// The session lands in Ready.
func (s *CheckoutService) Start(ctx context.Context, bills []model.Bill, country model.Country) (CheckoutSnapshot, error) {
	if len(bills) == 0 {
		return CheckoutSnapshot{}, domain.ErrNoBillsSelected
	}

	sess := &CheckoutSession{
		ID:      uuid.NewString(),
		State:   model.StateLoading,
		Bills:   bills,
		Country: country,
		Rate:    model.ExchangeRate{Rate: 1, Source: country.Currency, Target: "USD"},
		Fields:  make(map[string]string),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		methods, err := s.methods.GetPaymentMethods(gctx, country.Code)
		if err != nil {
			return err
		}
		sess.Methods = methods
		return nil
	})

	g.Go(func() error {
		rate, err := s.rates.GetRate(gctx, country.Currency)
		if err != nil {
			// Keep the pinned default rate; the checkout still works.
			log.Warn().Err(err).Str("currency", country.Currency).Msg("rate fetch failed, using default rate")
			return nil
		}
		sess.Rate = rate
		return nil
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, domain.ErrCountryNotSupported) {
			return CheckoutSnapshot{}, domain.ErrCountryNotSupported
		}
		log.Warn().Err(err).Str("country", country.Code).Msg("method fetch failed, continuing without methods")
	}

	if len(sess.Methods) > 0 {
		sess.SelectedMethodID = sess.Methods[0].ID
	}
	sess.State = model.StateReady

	// Snapshot before publishing the session to the store.
	snap := snapshotLocked(sess)
	s.store.Put(sess.ID, sess)

	log.Info().
		Str("checkout_id", sess.ID).
		Str("country", country.Code).
		Int("bills", len(bills)).
		Int("methods", len(sess.Methods)).
		Msg("checkout started")

	return snap, nil
}

func (s *CheckoutService) get(id string) (*CheckoutSession, error) {
	sess, ok := s.store.Get(id)
	if !ok {
		return nil, domain.ErrCheckoutNotFound
	}
	return sess, nil
}

func (s *CheckoutService) Snapshot(id string) (CheckoutSnapshot, error) {
	sess, err := s.get(id)
	if err != nil {
		return CheckoutSnapshot{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return snapshotLocked(sess), nil
}

// SelectMethod sets the active payment method and thereby the detail form
// variant. Only valid while the checkout accepts input.
func (s *CheckoutService) SelectMethod(id, methodID string) (CheckoutSnapshot, error) {
	sess, err := s.get(id)
	if err != nil {
		return CheckoutSnapshot{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if !acceptsInput(sess.State) {
		return CheckoutSnapshot{}, domain.ErrInvalidState
	}
	if _, ok := methodByID(sess.Methods, methodID); !ok {
		return CheckoutSnapshot{}, domain.ErrMethodNotFound
	}

	sess.SelectedMethodID = methodID
	return snapshotLocked(sess), nil
}

// SetField stores one form value. The name must belong to the field set of
// the form the selected method renders.
func (s *CheckoutService) SetField(id, name, value string) (CheckoutSnapshot, error) {
	sess, err := s.get(id)
	if err != nil {
		return CheckoutSnapshot{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if !acceptsInput(sess.State) {
		return CheckoutSnapshot{}, domain.ErrInvalidState
	}
	if sess.SelectedMethodID == "" {
		return CheckoutSnapshot{}, domain.ErrNoMethodSelected
	}

	kind := activeFormLocked(sess)
	if kind == model.FormUnsupported {
		return CheckoutSnapshot{}, domain.ErrMethodNotSupported
	}
	if !contains(kind.RequiredFields(), name) {
		return CheckoutSnapshot{}, domain.ErrUnknownField
	}

	sess.Fields[name] = value
	return snapshotLocked(sess), nil
}

// Submit drives Ready -> Submitting -> Completed, or Failed on a payment
// error. A failed submission keeps the method and every entered field so
// the user can retry. Submitting blocks concurrent submits.
func (s *CheckoutService) Submit(ctx context.Context, id string) (model.Payment, error) {
	sess, err := s.get(id)
	if err != nil {
		return model.Payment{}, err
	}

	sess.mu.Lock()
	if !acceptsInput(sess.State) {
		sess.mu.Unlock()
		return model.Payment{}, domain.ErrInvalidState
	}
	if sess.SelectedMethodID == "" {
		sess.mu.Unlock()
		return model.Payment{}, domain.ErrNoMethodSelected
	}

	kind := activeFormLocked(sess)
	if kind == model.FormUnsupported {
		sess.mu.Unlock()
		return model.Payment{}, domain.ErrMethodNotSupported
	}

	var missing []string
	for _, field := range kind.RequiredFields() {
		if strings.TrimSpace(sess.Fields[field]) == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		sess.mu.Unlock()
		return model.Payment{}, domain.MissingFields(missing...)
	}

	sess.State = model.StateSubmitting
	req := model.PaymentRequest{
		Amount:         roundUSD(totalSource(sess.Bills) * sess.Rate.Rate),
		Currency:       "USD",
		SourceCurrency: sess.Country.Currency,
		PaymentMethod:  sess.SelectedMethodID,
		BillIDs:        billIDs(sess.Bills),
	}
	sess.mu.Unlock()

	callCtx, cancel := context.WithTimeout(ctx, s.submitTimeout)
	defer cancel()

	payment, err := s.payments.CreatePayment(callCtx, req)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err != nil {
		sess.State = model.StateFailed
		sess.LastError = err.Error()
		log.Error().Err(err).Str("checkout_id", sess.ID).Msg("payment submission failed")
		return model.Payment{}, domain.ErrPaymentFailed
	}

	sess.State = model.StateCompleted
	sess.Payment = &payment
	sess.LastError = ""

	log.Info().
		Str("checkout_id", sess.ID).
		Str("payment_id", payment.ID).
		Str("tracking_id", payment.TrackingID).
		Float64("amount_usd", payment.Amount).
		Msg("payment completed")

	return payment, nil
}

func acceptsInput(state model.CheckoutState) bool {
	return state == model.StateReady || state == model.StateFailed
}

func activeFormLocked(sess *CheckoutSession) model.FormKind {
	m, ok := methodByID(sess.Methods, sess.SelectedMethodID)
	if !ok {
		return model.FormUnsupported
	}
	return m.Form
}

func methodByID(methods []model.PaymentMethod, id string) (model.PaymentMethod, bool) {
	for _, m := range methods {
		if m.ID == id {
			return m, true
		}
	}
	return model.PaymentMethod{}, false
}

func snapshotLocked(sess *CheckoutSession) CheckoutSnapshot {
	fields := make(map[string]string, len(sess.Fields))
	for k, v := range sess.Fields {
		fields[k] = v
	}

	snap := CheckoutSnapshot{
		ID:               sess.ID,
		State:            sess.State,
		Bills:            append([]model.Bill(nil), sess.Bills...),
		Country:          sess.Country,
		Methods:          append([]model.PaymentMethod(nil), sess.Methods...),
		SelectedMethodID: sess.SelectedMethodID,
		Rate:             sess.Rate,
		Fields:           fields,
		TotalSource:      totalSource(sess.Bills),
		LastError:        sess.LastError,
	}
	snap.TotalUSD = roundUSD(snap.TotalSource * sess.Rate.Rate)

	if sess.SelectedMethodID != "" {
		kind := activeFormLocked(sess)
		snap.ActiveForm = kind
		snap.RequiredFields = kind.RequiredFields()
	}
	if sess.Payment != nil {
		p := *sess.Payment
		snap.Payment = &p
	}

	return snap
}

func totalSource(bills []model.Bill) float64 {
	var total float64
	for _, b := range bills {
		total += b.Amount
	}
	return total
}

func billIDs(bills []model.Bill) []string {
	ids := make([]string, len(bills))
	for i, b := range bills {
		ids[i] = b.ID
	}
	return ids
}

// roundUSD rounds display and settlement amounts to cents. Source-currency
// totals stay unrounded.
func roundUSD(v float64) float64 {
	return math.Round(v*100) / 100
}
