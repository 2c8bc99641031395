package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Haseem12/ArewaRide/internal/domain"
	"github.com/Haseem12/ArewaRide/internal/http/middleware"
)

func respondError(c *gin.Context, status int, code, message string, details any) {
	if code == "" {
		code = http.StatusText(status)
	}
	payload := gin.H{
		"error": message,
		"code":  code,
	}
	if details != nil {
		payload["details"] = details
	}
	if reqID := middleware.GetRequestID(c); reqID != "" {
		payload["request_id"] = reqID
	}
	c.JSON(status, payload)
}

// RespondDomainError maps domain errors to HTTP responses. CapacityExhausted
// maps like Unavailable for the caller, with its own code so clients know the
// availability they saw was stale and should re-query before retrying.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error(), nil)
	case domain.IsUnavailable(err):
		respondError(c, http.StatusConflict, "unavailable", err.Error(), nil)
	case domain.IsCapacityExhausted(err):
		respondError(c, http.StatusConflict, "capacity_exhausted", err.Error(), nil)
	case domain.IsPersistence(err):
		respondError(c, http.StatusInternalServerError, "persistence_error", err.Error(), nil)
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", "something went wrong", nil)
	}
}
