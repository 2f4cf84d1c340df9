package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/luxemods/economy-backend/internal/services"
)

// SpinHandler handles spin-wheel HTTP requests
type SpinHandler struct {
	spinService services.SpinService
}

// NewSpinHandler creates a new SpinHandler
func NewSpinHandler(spinService services.SpinService) *SpinHandler {
	return &SpinHandler{
		spinService: spinService,
	}
}

// Spin handles POST /spin/:account
func (h *SpinHandler) Spin(c *gin.Context) {
	account := c.Param("account")
	result, err := h.spinService.Spin(c.Request.Context(), account)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListPrizes handles GET /spin/prizes
func (h *SpinHandler) ListPrizes(c *gin.Context) {
	prizes, err := h.spinService.ListActivePrizes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"prizes": prizes})
}

// GetHistory handles GET /spin/:account/history
func (h *SpinHandler) GetHistory(c *gin.Context) {
	account := c.Param("account")
	page, limit := pagination(c)
	records, err := h.spinService.GetHistory(c.Request.Context(), account, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"account": account, "history": records, "page": page, "limit": limit})
}

// GetTickets handles GET /tickets/:account
func (h *SpinHandler) GetTickets(c *gin.Context) {
	account := c.Param("account")
	remaining, err := h.spinService.GetRemaining(c.Request.Context(), account)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"account": account, "remaining": remaining})
}
