package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rangeroper/healthcare-scheduler/internal/domain/records"
	"github.com/rangeroper/healthcare-scheduler/internal/httperr"
)

var messages = map[string]string{
	"invalid_request":            "Request body or query is invalid.",
	"invalid_id":                 "Id is invalid.",
	"invalid_date":               "Date must be YYYY-MM-DD.",
	"invalid_time":               "Time must be HH:MM.",
	"invalid_month":              "Month must be between 1 and 12.",
	"invalid_schedule":           "Provider schedule is invalid.",
	"invalid_status":             "Unknown appointment status.",
	"invalid_state":              "Status change not allowed.",
	"slot_unavailable":           "Time slot is not available.",
	"patient_not_found":          "Patient not found.",
	"provider_not_found":         "Provider not found.",
	"appointment_not_found":      "Appointment not found.",
	"appointment_type_not_found": "Appointment type not found.",
	"duplicate_id":               "A record with this id already exists.",
	"internal_error":             "Unexpected error.",
}

func message(code string) string {
	if m, ok := messages[code]; ok {
		return m
	}
	return code
}

// statusFor maps a business code to its HTTP status.
func statusFor(code string) int {
	switch {
	case strings.HasSuffix(code, "_not_found"):
		return http.StatusNotFound
	case code == "slot_unavailable", code == "invalid_state", code == "duplicate_id":
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

// respondError writes err as {error_code, message}. Unknown errors are
// logged and reported as 500. notFoundCode names store misses.
func respondError(c *gin.Context, log *zap.Logger, err error, notFoundCode string) {
	if code := httperr.Code(err); code != "" {
		httperr.Write(c, statusFor(code), code, message(code))
		return
	}

	switch {
	case errors.Is(err, records.ErrNotFound):
		httperr.NotFound(c, notFoundCode, message(notFoundCode))
	case errors.Is(err, records.ErrDuplicate):
		httperr.Conflict(c, "duplicate_id", message("duplicate_id"))
	default:
		log.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		httperr.Internal(c, "internal_error", message("internal_error"))
	}
}

func badRequest(c *gin.Context, code string) {
	httperr.BadRequest(c, code, message(code))
}
