package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/openremit/billpay-demo/internal/catalog"
	"github.com/openremit/billpay-demo/internal/domain"
	"github.com/openremit/billpay-demo/internal/model"
	"github.com/openremit/billpay-demo/internal/session"
)

// SelectionSession is the bill-selection screen's state: the active country,
// the bills generated for its currency and the checked bill ids, in the
// order they were checked.
type SelectionSession struct {
	mu sync.Mutex

	ID       string
	Country  model.Country
	Bills    []model.Bill
	Selected []string
}

type SelectionSnapshot struct {
	ID          string
	Country     model.Country
	Bills       []model.Bill
	Selected    []string
	TotalSource float64
}

// SelectionService owns bill-selection sessions and hands off to checkout.
type SelectionService struct {
	store    *session.Store[*SelectionSession]
	checkout *CheckoutService
}

func NewSelectionService(checkout *CheckoutService, ttl time.Duration) *SelectionService {
	return &SelectionService{
		store:    session.NewStore[*SelectionSession](ttl),
		checkout: checkout,
	}
}

func (s *SelectionService) ActiveSessions() int {
	return s.store.Len()
}

// Start opens a session with the first catalog country selected and its
// bills generated.
func (s *SelectionService) Start() SelectionSnapshot {
	country := catalog.DefaultCountry()
	sess := &SelectionSession{
		ID:      uuid.NewString(),
		Country: country,
		Bills:   catalog.GenerateBills(country.Currency),
	}
	s.store.Put(sess.ID, sess)

	log.Info().Str("session_id", sess.ID).Str("country", country.Code).Msg("bill selection started")
	return selectionSnapshotLocked(sess)
}

func (s *SelectionService) get(id string) (*SelectionSession, error) {
	sess, ok := s.store.Get(id)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return sess, nil
}

func (s *SelectionService) Snapshot(id string) (SelectionSnapshot, error) {
	sess, err := s.get(id)
	if err != nil {
		return SelectionSnapshot{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return selectionSnapshotLocked(sess), nil
}

// SelectCountry switches the active country, regenerates the bills for its
// currency and drops the previous selection. Bill ids from the old currency
// context must never survive the switch.
func (s *SelectionService) SelectCountry(id, code string) (SelectionSnapshot, error) {
	country, ok := catalog.CountryByCode(code)
	if !ok {
		return SelectionSnapshot{}, domain.ErrCountryNotFound
	}

	sess, err := s.get(id)
	if err != nil {
		return SelectionSnapshot{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.Country = country
	sess.Bills = catalog.GenerateBills(country.Currency)
	sess.Selected = nil

	return selectionSnapshotLocked(sess), nil
}

// ToggleBill checks or unchecks a bill. Ids not in the current bill list
// are ignored.
func (s *SelectionService) ToggleBill(id, billID string) (SelectionSnapshot, error) {
	sess, err := s.get(id)
	if err != nil {
		return SelectionSnapshot{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if _, ok := billByID(sess.Bills, billID); ok {
		if i := indexOf(sess.Selected, billID); i >= 0 {
			sess.Selected = append(sess.Selected[:i], sess.Selected[i+1:]...)
		} else {
			sess.Selected = append(sess.Selected, billID)
		}
	}

	return selectionSnapshotLocked(sess), nil
}

// Proceed hands the selected bills and country off to checkout. With an
// explicit id list the selection is narrowed to those bills first; an empty
// argument means "whatever is currently checked". Proceeding with nothing
// selected is rejected.
func (s *SelectionService) Proceed(ctx context.Context, id string, billIDs []string) (CheckoutSnapshot, error) {
	sess, err := s.get(id)
	if err != nil {
		return CheckoutSnapshot{}, err
	}

	sess.mu.Lock()

	wanted := billIDs
	if len(wanted) == 0 {
		wanted = sess.Selected
	}

	// Transfer bills in bill-list order, keeping only ids that exist in
	// the current currency context.
	var bills []model.Bill
	for _, b := range sess.Bills {
		if indexOf(wanted, b.ID) >= 0 {
			bills = append(bills, b)
		}
	}
	country := sess.Country
	sess.mu.Unlock()

	if len(bills) == 0 {
		return CheckoutSnapshot{}, domain.ErrNoBillsSelected
	}

	return s.checkout.Start(ctx, bills, country)
}

// PayOne is the per-bill shortcut: exactly that bill, straight to checkout.
func (s *SelectionService) PayOne(ctx context.Context, id, billID string) (CheckoutSnapshot, error) {
	sess, err := s.get(id)
	if err != nil {
		return CheckoutSnapshot{}, err
	}

	sess.mu.Lock()
	bill, ok := billByID(sess.Bills, billID)
	country := sess.Country
	sess.mu.Unlock()

	if !ok {
		return CheckoutSnapshot{}, domain.ErrBillNotFound
	}

	return s.checkout.Start(ctx, []model.Bill{bill}, country)
}

func selectionSnapshotLocked(sess *SelectionSession) SelectionSnapshot {
	var total float64
	for _, b := range sess.Bills {
		if indexOf(sess.Selected, b.ID) >= 0 {
			total += b.Amount
		}
	}

	return SelectionSnapshot{
		ID:          sess.ID,
		Country:     sess.Country,
		Bills:       append([]model.Bill(nil), sess.Bills...),
		Selected:    append([]string(nil), sess.Selected...),
		TotalSource: total,
	}
}

func billByID(bills []model.Bill, id string) (model.Bill, bool) {
	for _, b := range bills {
		if b.ID == id {
			return b, true
		}
	}
	return model.Bill{}, false
}

func indexOf(list []string, v string) int {
	for i, s := range list {
		if s == v {
			return i
		}
	}
	return -1
}

func contains(list []string, v string) bool {
	return indexOf(list, v) >= 0
}
