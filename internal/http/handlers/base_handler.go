// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"atlas/internal/modules/plan"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writePlanError maps the plan error kinds onto status codes: caller faults
// are 400/404, model faults are 502, everything else is an opaque 500.
func writePlanError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, plan.ErrValidation):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, plan.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, plan.ErrGeneration),
		errors.Is(err, plan.ErrMalformedResponse),
		errors.Is(err, plan.ErrSchemaMismatch):
		writeError(c, http.StatusBadGateway, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
