package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openremit/billpay-demo/internal/dto"
)

// TrackingHandler renders the post-payment status view. The id is echoed
// verbatim; the stages are fixed, there is nothing to look up.
type TrackingHandler struct{}

func NewTrackingHandler() *TrackingHandler {
	return &TrackingHandler{}
}

func (h *TrackingHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, dto.TrackingResponse{
		TrackingID: c.Param("id"),
		Stages: []dto.TrackingStage{
			{Label: "Payment received", Done: true},
			{Label: "Processing payment", Done: false},
		},
	})
}
