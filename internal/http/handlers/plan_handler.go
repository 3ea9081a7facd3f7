// README: Plan handlers for generate/history/detail/delete.
package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"atlas/internal/modules/plan"
)

const (
	// The model call is the long pole; everything else is local I/O.
	generateTimeout = 60 * time.Second
	historyTimeout  = 10 * time.Second
)

type PlanHandler struct {
	plan *plan.Service
}

func NewPlanHandler(svc *plan.Service) *PlanHandler {
	return &PlanHandler{plan: svc}
}

// Create handles POST /plan.
func (h *PlanHandler) Create(c *gin.Context) {
	var req plan.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), generateTimeout)
	defer cancel()

	resp, err := h.plan.Generate(ctx, req)
	if err != nil {
		writePlanError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, resp)
}

// History handles GET /history.
func (h *PlanHandler) History(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), historyTimeout)
	defer cancel()

	items, err := h.plan.History(ctx, plan.DefaultHistoryLimit)
	if err != nil {
		writePlanError(c, err)
		return
	}
	if items == nil {
		items = []plan.RecordSummary{}
	}
	writeJSON(c, http.StatusOK, items)
}

// Detail handles GET /history/:id, returning the stored itinerary.
func (h *PlanHandler) Detail(c *gin.Context) {
	id, ok := recordID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), historyTimeout)
	defer cancel()

	resp, err := h.plan.HistoryDetail(ctx, id)
	if err != nil {
		writePlanError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, resp)
}

// Delete handles DELETE /history/:id.
func (h *PlanHandler) Delete(c *gin.Context) {
	id, ok := recordID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), historyTimeout)
	defer cancel()

	if err := h.plan.DeleteRecord(ctx, id); err != nil {
		writePlanError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"message": "record deleted successfully", "id": id})
}

func recordID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(c, http.StatusBadRequest, "invalid record id")
		return 0, false
	}
	return id, true
}
