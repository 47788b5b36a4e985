package handler

import (
	intakeapp "github.com/carshowroom/backend/internal/application/intake"
	"github.com/gin-gonic/gin"
)

// IntakeHandler handles client-facing request submission endpoints
type IntakeHandler struct {
	BaseHandler
	intakeService *intakeapp.Service
}

// NewIntakeHandler creates a new IntakeHandler
func NewIntakeHandler(intakeService *intakeapp.Service) *IntakeHandler {
	return &IntakeHandler{intakeService: intakeService}
}

// SubmitTradeIn files a trade-in request for the caller
func (h *IntakeHandler) SubmitTradeIn(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req intakeapp.SubmitTradeInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.intakeService.SubmitTradeIn(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// SubmitCarOrder files a car order request for the caller
func (h *IntakeHandler) SubmitCarOrder(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req intakeapp.SubmitCarOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.intakeService.SubmitCarOrder(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// SubmitCredit files a credit request for the caller
func (h *IntakeHandler) SubmitCredit(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req intakeapp.SubmitCreditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.intakeService.SubmitCredit(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// SubmitTestDrive books a test drive for the caller
func (h *IntakeHandler) SubmitTestDrive(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req intakeapp.SubmitTestDriveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.intakeService.SubmitTestDrive(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// ListMyApplications returns the caller's ledger entries, newest first
func (h *IntakeHandler) ListMyApplications(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	page, pageSize := getPagination(c)
	entries, err := h.intakeService.ListMyApplications(c.Request.Context(), ownerID, page, pageSize)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, entries)
}

// ListMyTestDrives returns the caller's test drive bookings
func (h *IntakeHandler) ListMyTestDrives(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	page, pageSize := getPagination(c)
	drives, err := h.intakeService.ListMyTestDrives(c.Request.Context(), ownerID, page, pageSize)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, drives)
}
