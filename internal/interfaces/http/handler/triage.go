package handler

import (
	triageapp "github.com/carshowroom/backend/internal/application/triage"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TriageHandler handles employee-facing request review endpoints
type TriageHandler struct {
	BaseHandler
	triageService *triageapp.Service
}

// NewTriageHandler creates a new TriageHandler
func NewTriageHandler(triageService *triageapp.Service) *TriageHandler {
	return &TriageHandler{triageService: triageService}
}

// ListRequests returns incoming requests, optionally narrowed by kind
// and status
func (h *TriageHandler) ListRequests(c *gin.Context) {
	actorID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filter triageapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}

	rows, err := h.triageService.ListRequests(c.Request.Context(), actorID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rows)
}

// ListEntries returns the raw application ledger
func (h *TriageHandler) ListEntries(c *gin.Context) {
	actorID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filter triageapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}

	entries, err := h.triageService.ListEntries(c.Request.Context(), actorID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, entries)
}

// Resolve returns a ledger entry together with the request it points at
func (h *TriageHandler) Resolve(c *gin.Context) {
	actorID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid entry ID")
		return
	}

	resolved, err := h.triageService.Resolve(c.Request.Context(), actorID, entryID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resolved)
}

// ChangeStatus moves a request to a new status within its kind's
// status set
func (h *TriageHandler) ChangeStatus(c *gin.Context) {
	actorID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid request ID")
		return
	}

	var req triageapp.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	summary, err := h.triageService.ChangeStatus(c.Request.Context(), actorID, c.Param("kind"), requestID, req.Status)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}
