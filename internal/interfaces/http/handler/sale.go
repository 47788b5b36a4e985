package handler

import (
	saleapp "github.com/carshowroom/backend/internal/application/sale"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SaleHandler handles sale contract endpoints. Creation, signing and
// cancellation are employee operations; clients can list their own
// contracts.
type SaleHandler struct {
	BaseHandler
	saleService *saleapp.Service
}

// NewSaleHandler creates a new SaleHandler
func NewSaleHandler(saleService *saleapp.Service) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// Create drafts a contract for a car and buyer
func (h *SaleHandler) Create(c *gin.Context) {
	employeeID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req saleapp.CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	contract, err := h.saleService.Create(c.Request.Context(), employeeID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, contract)
}

// Sign signs a draft contract and marks the car sold
func (h *SaleHandler) Sign(c *gin.Context) {
	employeeID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	contractID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid contract ID")
		return
	}

	contract, err := h.saleService.Sign(c.Request.Context(), employeeID, contractID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, contract)
}

// Cancel voids a draft contract
func (h *SaleHandler) Cancel(c *gin.Context) {
	employeeID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	contractID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid contract ID")
		return
	}

	var req saleapp.CancelContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	contract, err := h.saleService.Cancel(c.Request.Context(), employeeID, contractID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, contract)
}

// Get returns a contract by ID
func (h *SaleHandler) Get(c *gin.Context) {
	employeeID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	contractID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid contract ID")
		return
	}

	contract, err := h.saleService.Get(c.Request.Context(), employeeID, contractID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, contract)
}

// List returns all contracts page by page
func (h *SaleHandler) List(c *gin.Context) {
	employeeID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	page, pageSize := getPagination(c)
	contracts, total, err := h.saleService.List(c.Request.Context(), employeeID, page, pageSize)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, contracts, total, page, pageSize)
}

// ListMine returns the caller's own contracts
func (h *SaleHandler) ListMine(c *gin.Context) {
	buyerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	page, pageSize := getPagination(c)
	contracts, err := h.saleService.ListMine(c.Request.Context(), buyerID, page, pageSize)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, contracts)
}
