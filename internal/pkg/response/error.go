package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/halisaha/field-booking-backend/internal/pkg/apperror"
)

// MsgInternal is returned for any failure that is not an AppError.
const MsgInternal = "Bir hata oluştu. Lütfen tekrar deneyin."

// ErrorResponse defines the JSON structure for error responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// Error sends a JSON error response.
// It checks if the error is an AppError to determine the status code.
// If it's not an AppError, it logs the error and defaults to 500 Internal Server Error.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		if appErr.Code >= http.StatusInternalServerError {
			zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("request failed")
		}
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message, Details: appErr.Details})
		return
	}

	zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("unhandled error")
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: MsgInternal})
}

// BadRequest sends a 400 response for payloads that failed binding.
func BadRequest(c *gin.Context, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	c.JSON(http.StatusBadRequest, resp)
}
