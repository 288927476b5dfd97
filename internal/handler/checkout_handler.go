package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openremit/billpay-demo/internal/dto"
	"github.com/openremit/billpay-demo/internal/model"
	"github.com/openremit/billpay-demo/internal/service"
)

type CheckoutHandler struct {
	svc *service.CheckoutService
}

func NewCheckoutHandler(svc *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{svc: svc}
}

func (h *CheckoutHandler) Get(c *gin.Context) {
	snap, err := h.svc.Snapshot(c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, checkoutResponse(snap))
}

func (h *CheckoutHandler) SelectMethod(c *gin.Context) {
	var req dto.SelectMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "validation failed: " + err.Error()})
		return
	}

	snap, err := h.svc.SelectMethod(c.Param("id"), req.MethodID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, checkoutResponse(snap))
}

func (h *CheckoutHandler) SetField(c *gin.Context) {
	var req dto.SetFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "validation failed: " + err.Error()})
		return
	}

	snap, err := h.svc.SetField(c.Param("id"), req.Name, req.Value)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, checkoutResponse(snap))
}

func (h *CheckoutHandler) Submit(c *gin.Context) {
	payment, err := h.svc.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

func checkoutResponse(snap service.CheckoutSnapshot) dto.CheckoutResponse {
	resp := dto.CheckoutResponse{
		ID:               snap.ID,
		State:            snap.State,
		Country:          snap.Country,
		Bills:            snap.Bills,
		Methods:          snap.Methods,
		SelectedMethodID: snap.SelectedMethodID,
		Rate:             snap.Rate,
		Fields:           snap.Fields,
		TotalSource:      snap.TotalSource,
		TotalUSD:         snap.TotalUSD,
		Payment:          snap.Payment,
		LastError:        snap.LastError,
	}

	if snap.SelectedMethodID != "" {
		resp.Form = &dto.FormDescriptor{
			Kind:           snap.ActiveForm,
			RequiredFields: snap.RequiredFields,
			Supported:      snap.ActiveForm != model.FormUnsupported,
		}
	}

	return resp
}
