package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openremit/billpay-demo/internal/catalog"
	"github.com/openremit/billpay-demo/internal/dto"
	"github.com/openremit/billpay-demo/internal/service"
)

type SelectionHandler struct {
	svc *service.SelectionService
}

func NewSelectionHandler(svc *service.SelectionService) *SelectionHandler {
	return &SelectionHandler{svc: svc}
}

func (h *SelectionHandler) Create(c *gin.Context) {
	snap := h.svc.Start()
	resp := selectionResponse(snap)
	resp.Countries = catalog.Countries()
	c.JSON(http.StatusCreated, resp)
}

func (h *SelectionHandler) Get(c *gin.Context) {
	snap, err := h.svc.Snapshot(c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, selectionResponse(snap))
}

func (h *SelectionHandler) SelectCountry(c *gin.Context) {
	var req dto.SelectCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "validation failed: " + err.Error()})
		return
	}

	snap, err := h.svc.SelectCountry(c.Param("id"), req.Code)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, selectionResponse(snap))
}

func (h *SelectionHandler) ToggleBill(c *gin.Context) {
	snap, err := h.svc.ToggleBill(c.Param("id"), c.Param("billID"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, selectionResponse(snap))
}

func (h *SelectionHandler) Proceed(c *gin.Context) {
	var req dto.ProceedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "validation failed: " + err.Error()})
		return
	}

	snap, err := h.svc.Proceed(c.Request.Context(), c.Param("id"), req.BillIDs)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, checkoutResponse(snap))
}

func (h *SelectionHandler) PayOne(c *gin.Context) {
	var req dto.PayOneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "validation failed: " + err.Error()})
		return
	}

	snap, err := h.svc.PayOne(c.Request.Context(), c.Param("id"), req.BillID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, checkoutResponse(snap))
}

func selectionResponse(snap service.SelectionSnapshot) dto.SelectionResponse {
	return dto.SelectionResponse{
		ID:              snap.ID,
		Country:         snap.Country,
		Bills:           snap.Bills,
		SelectedBillIDs: snap.Selected,
		TotalSource:     snap.TotalSource,
	}
}
