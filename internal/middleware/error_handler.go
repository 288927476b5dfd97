package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/openremit/billpay-demo/internal/domain"
	"github.com/openremit/billpay-demo/internal/dto"
)

// MapError translates a domain error into its HTTP shape. Errors that mean
// "you landed here without the state this screen needs" carry a redirect
// back to the start screen instead of crashing the flow.
func MapError(err error) (int, dto.ErrorResponse) {
	var derr *domain.Error
	if errors.As(err, &derr) {
		resp := dto.ErrorResponse{
			Error: derr.Message,
			Code:  derr.Code,
		}
		if domain.IsNavigation(derr) {
			resp.Redirect = "/"
		}
		return derr.Status, resp
	}

	log.Error().Err(err).Msg("unhandled error")
	return http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"}
}

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			status, resp := MapError(err)
			c.JSON(status, resp)
		}
	}
}
