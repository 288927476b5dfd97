package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openremit/billpay-demo/internal/catalog"
)

type CountryHandler struct{}

func NewCountryHandler() *CountryHandler {
	return &CountryHandler{}
}

func (h *CountryHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"countries": catalog.Countries()})
}
