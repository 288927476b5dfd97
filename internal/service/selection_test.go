package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openremit/billpay-demo/internal/domain"
	"github.com/openremit/billpay-demo/internal/model"
)

func newTestServices(t *testing.T) (*SelectionService, *CheckoutService) {
	t.Helper()
	checkout := NewCheckoutService(NewMethodService(), NewRateService(), NewPaymentService(),
		time.Minute, time.Second)
	return NewSelectionService(checkout, time.Minute), checkout
}

func TestSelectionService_Start(t *testing.T) {
	svc, _ := newTestServices(t)

	snap := svc.Start()
	assert.NotEmpty(t, snap.ID)
	assert.Equal(t, "UK", snap.Country.Code, "first catalog entry is the default")
	require.Len(t, snap.Bills, 3)
	assert.Equal(t, "GBP", snap.Bills[0].Currency)
	assert.Empty(t, snap.Selected)
	assert.Zero(t, snap.TotalSource)
}

func TestSelectionService_SelectCountry(t *testing.T) {
	svc, _ := newTestServices(t)
	sess := svc.Start()

	t.Run("happy: switching regenerates bills and clears selection", func(t *testing.T) {
		_, err := svc.ToggleBill(sess.ID, "BILL-001")
		require.NoError(t, err)

		snap, err := svc.SelectCountry(sess.ID, "CN")
		require.NoError(t, err)
		assert.Equal(t, "CNY", snap.Country.Currency)
		for _, b := range snap.Bills {
			assert.Equal(t, "CNY", b.Currency)
		}
		assert.Empty(t, snap.Selected, "selection never survives a country switch")
		assert.Zero(t, snap.TotalSource)
	})

	t.Run("bad: unknown country", func(t *testing.T) {
		_, err := svc.SelectCountry(sess.ID, "XX")
		assert.ErrorIs(t, err, domain.ErrCountryNotFound)
	})

	t.Run("bad: unknown session", func(t *testing.T) {
		_, err := svc.SelectCountry("missing", "CN")
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})
}

func TestSelectionService_ToggleBill(t *testing.T) {
	svc, _ := newTestServices(t)
	sess := svc.Start()

	t.Run("happy: toggle on accumulates the total", func(t *testing.T) {
		snap, err := svc.ToggleBill(sess.ID, "BILL-001")
		require.NoError(t, err)
		assert.Equal(t, []string{"BILL-001"}, snap.Selected)
		assert.Equal(t, 1000.0, snap.TotalSource)

		snap, err = svc.ToggleBill(sess.ID, "BILL-002")
		require.NoError(t, err)
		assert.Equal(t, []string{"BILL-001", "BILL-002"}, snap.Selected)
		assert.Equal(t, 1750.0, snap.TotalSource)
	})

	t.Run("happy: toggle off removes it", func(t *testing.T) {
		snap, err := svc.ToggleBill(sess.ID, "BILL-001")
		require.NoError(t, err)
		assert.Equal(t, []string{"BILL-002"}, snap.Selected)
		assert.Equal(t, 750.0, snap.TotalSource)
	})

	t.Run("happy: unknown bill id is ignored", func(t *testing.T) {
		snap, err := svc.ToggleBill(sess.ID, "BILL-999")
		require.NoError(t, err)
		assert.Equal(t, []string{"BILL-002"}, snap.Selected)
	})
}

func TestSelectionService_Proceed(t *testing.T) {
	ctx := context.Background()

	t.Run("happy: hands off selected bills in list order", func(t *testing.T) {
		svc, _ := newTestServices(t)
		sess := svc.Start()
		_, err := svc.SelectCountry(sess.ID, "CN")
		require.NoError(t, err)
		// Check out of list order on purpose.
		_, err = svc.ToggleBill(sess.ID, "BILL-002")
		require.NoError(t, err)
		_, err = svc.ToggleBill(sess.ID, "BILL-001")
		require.NoError(t, err)

		checkout, err := svc.Proceed(ctx, sess.ID, nil)
		require.NoError(t, err)

		assert.Equal(t, model.StateReady, checkout.State)
		assert.Equal(t, "CN", checkout.Country.Code)
		require.Len(t, checkout.Bills, 2)
		assert.Equal(t, "BILL-001", checkout.Bills[0].ID)
		assert.Equal(t, "BILL-002", checkout.Bills[1].ID)
		assert.Equal(t, 1750.0, checkout.TotalSource)
	})

	t.Run("happy: explicit bill ids narrow the selection", func(t *testing.T) {
		svc, _ := newTestServices(t)
		sess := svc.Start()

		checkout, err := svc.Proceed(ctx, sess.ID, []string{"BILL-003"})
		require.NoError(t, err)
		require.Len(t, checkout.Bills, 1)
		assert.Equal(t, "BILL-003", checkout.Bills[0].ID)
	})

	t.Run("bad: nothing selected", func(t *testing.T) {
		svc, _ := newTestServices(t)
		sess := svc.Start()

		_, err := svc.Proceed(ctx, sess.ID, nil)
		assert.ErrorIs(t, err, domain.ErrNoBillsSelected)
	})

	t.Run("bad: only stale ids", func(t *testing.T) {
		svc, _ := newTestServices(t)
		sess := svc.Start()

		_, err := svc.Proceed(ctx, sess.ID, []string{"BILL-999"})
		assert.ErrorIs(t, err, domain.ErrNoBillsSelected)
	})
}

func TestSelectionService_PayOne(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)
	sess := svc.Start()

	t.Run("happy: single bill straight to checkout", func(t *testing.T) {
		checkout, err := svc.PayOne(ctx, sess.ID, "BILL-002")
		require.NoError(t, err)
		require.Len(t, checkout.Bills, 1)
		assert.Equal(t, "BILL-002", checkout.Bills[0].ID)
		assert.Equal(t, 750.0, checkout.TotalSource)
	})

	t.Run("bad: unknown bill", func(t *testing.T) {
		_, err := svc.PayOne(ctx, sess.ID, "BILL-999")
		assert.ErrorIs(t, err, domain.ErrBillNotFound)
	})
}
