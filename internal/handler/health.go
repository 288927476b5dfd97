package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openremit/billpay-demo/internal/service"
)

type HealthHandler struct {
	selection *service.SelectionService
	checkout  *service.CheckoutService
}

func NewHealthHandler(selection *service.SelectionService, checkout *service.CheckoutService) *HealthHandler {
	return &HealthHandler{selection: selection, checkout: checkout}
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":             "healthy",
		"selection_sessions": h.selection.ActiveSessions(),
		"checkout_sessions":  h.checkout.ActiveSessions(),
	})
}
