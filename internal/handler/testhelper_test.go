package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/openremit/billpay-demo/internal/middleware"
	"github.com/openremit/billpay-demo/internal/service"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	checkoutSvc := service.NewCheckoutService(
		service.NewMethodService(),
		service.NewRateService(),
		service.NewPaymentService(),
		time.Minute,
		time.Second,
	)
	selectionSvc := service.NewSelectionService(checkoutSvc, time.Minute)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.ErrorHandler())

	countryHandler := NewCountryHandler()
	selectionHandler := NewSelectionHandler(selectionSvc)
	checkoutHandler := NewCheckoutHandler(checkoutSvc)
	trackingHandler := NewTrackingHandler()
	healthHandler := NewHealthHandler(selectionSvc, checkoutSvc)

	router.GET("/health", healthHandler.Health)

	api := router.Group("/api/v1")
	api.GET("/countries", countryHandler.List)
	api.POST("/sessions", selectionHandler.Create)
	api.GET("/sessions/:id", selectionHandler.Get)
	api.PUT("/sessions/:id/country", selectionHandler.SelectCountry)
	api.POST("/sessions/:id/bills/:billID/toggle", selectionHandler.ToggleBill)
	api.POST("/sessions/:id/proceed", selectionHandler.Proceed)
	api.POST("/sessions/:id/pay-one", selectionHandler.PayOne)
	api.GET("/checkouts/:id", checkoutHandler.Get)
	api.PUT("/checkouts/:id/method", checkoutHandler.SelectMethod)
	api.PUT("/checkouts/:id/fields", checkoutHandler.SetField)
	api.POST("/checkouts/:id/submit", checkoutHandler.Submit)
	api.GET("/tracking/:id", trackingHandler.Get)

	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	w := httptest.NewRecorder()
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}
