package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openremit/billpay-demo/internal/dto"
)

func TestSelectionHandler(t *testing.T) {
	router := setupRouter(t)

	t.Run("happy: create session with defaults", func(t *testing.T) {
		w := doJSON(t, router, "POST", "/api/v1/sessions", nil)
		require.Equal(t, http.StatusCreated, w.Code)

		resp := decode[dto.SelectionResponse](t, w)
		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, "UK", resp.Country.Code)
		assert.Len(t, resp.Bills, 3)
		assert.Len(t, resp.Countries, 6)
		assert.Empty(t, resp.SelectedBillIDs)
	})

	t.Run("happy: toggle bills and read totals", func(t *testing.T) {
		created := decode[dto.SelectionResponse](t, doJSON(t, router, "POST", "/api/v1/sessions", nil))

		w := doJSON(t, router, "POST", "/api/v1/sessions/"+created.ID+"/bills/BILL-001/toggle", nil)
		require.Equal(t, http.StatusOK, w.Code)
		w = doJSON(t, router, "POST", "/api/v1/sessions/"+created.ID+"/bills/BILL-002/toggle", nil)
		require.Equal(t, http.StatusOK, w.Code)

		resp := decode[dto.SelectionResponse](t, w)
		assert.Equal(t, []string{"BILL-001", "BILL-002"}, resp.SelectedBillIDs)
		assert.Equal(t, 1750.0, resp.TotalSource)
	})

	t.Run("happy: country switch clears selection", func(t *testing.T) {
		created := decode[dto.SelectionResponse](t, doJSON(t, router, "POST", "/api/v1/sessions", nil))
		doJSON(t, router, "POST", "/api/v1/sessions/"+created.ID+"/bills/BILL-001/toggle", nil)

		w := doJSON(t, router, "PUT", "/api/v1/sessions/"+created.ID+"/country", dto.SelectCountryRequest{Code: "BR"})
		require.Equal(t, http.StatusOK, w.Code)

		resp := decode[dto.SelectionResponse](t, w)
		assert.Equal(t, "BRL", resp.Country.Currency)
		assert.Empty(t, resp.SelectedBillIDs)
		for _, b := range resp.Bills {
			assert.Equal(t, "BRL", b.Currency)
		}
	})

	t.Run("bad: proceed with nothing selected", func(t *testing.T) {
		created := decode[dto.SelectionResponse](t, doJSON(t, router, "POST", "/api/v1/sessions", nil))

		w := doJSON(t, router, "POST", "/api/v1/sessions/"+created.ID+"/proceed", dto.ProceedRequest{})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		resp := decode[dto.ErrorResponse](t, w)
		assert.Equal(t, "NO_BILLS_SELECTED", resp.Code)
	})

	t.Run("bad: unknown session redirects to start", func(t *testing.T) {
		w := doJSON(t, router, "GET", "/api/v1/sessions/missing", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)

		resp := decode[dto.ErrorResponse](t, w)
		assert.Equal(t, "SESSION_NOT_FOUND", resp.Code)
		assert.Equal(t, "/", resp.Redirect)
	})

	t.Run("bad: unknown country code", func(t *testing.T) {
		created := decode[dto.SelectionResponse](t, doJSON(t, router, "POST", "/api/v1/sessions", nil))

		w := doJSON(t, router, "PUT", "/api/v1/sessions/"+created.ID+"/country", dto.SelectCountryRequest{Code: "XX"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("bad: missing body on country switch", func(t *testing.T) {
		created := decode[dto.SelectionResponse](t, doJSON(t, router, "POST", "/api/v1/sessions", nil))

		w := doJSON(t, router, "PUT", "/api/v1/sessions/"+created.ID+"/country", map[string]string{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("happy: pay one bill goes straight to checkout", func(t *testing.T) {
		created := decode[dto.SelectionResponse](t, doJSON(t, router, "POST", "/api/v1/sessions", nil))

		w := doJSON(t, router, "POST", "/api/v1/sessions/"+created.ID+"/pay-one", dto.PayOneRequest{BillID: "BILL-003"})
		require.Equal(t, http.StatusCreated, w.Code)

		resp := decode[dto.CheckoutResponse](t, w)
		require.Len(t, resp.Bills, 1)
		assert.Equal(t, "BILL-003", resp.Bills[0].ID)
		assert.Equal(t, 5000.0, resp.TotalSource)
	})

	t.Run("happy: countries endpoint", func(t *testing.T) {
		w := doJSON(t, router, "GET", "/api/v1/countries", nil)
		require.Equal(t, http.StatusOK, w.Code)
		resp := decode[map[string][]map[string]string](t, w)
		assert.Len(t, resp["countries"], 6)
	})
}

func TestHealthHandler(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, "GET", "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
}
