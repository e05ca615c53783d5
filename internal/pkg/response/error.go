package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tidewater-dev/hotel-booking-backend/internal/pkg/apperror"
	"github.com/tidewater-dev/hotel-booking-backend/internal/pkg/fielderr"
)

// ErrorResponse is the JSON shape for error replies. Fields is present only
// for validation failures and maps each failing form field to its message.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// Error writes a JSON error reply. Field-level validation errors become a
// 422 with the per-field messages; AppErrors use their own status; anything
// else is reported as a plain 500.
func Error(c *gin.Context, err error) {
	if fe := fielderr.From(err); fe != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:  "validation failed",
			Fields: fe.Fields(),
		})
		return
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}
