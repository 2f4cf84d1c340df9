package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/luxemods/economy-backend/internal/models"
	"github.com/luxemods/economy-backend/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminHandler handles catalog, settings, and eligibility admin requests
type AdminHandler struct {
	prizeService       services.PrizeService
	eligibilityService services.EligibilityService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(prizeService services.PrizeService, eligibilityService services.EligibilityService) *AdminHandler {
	return &AdminHandler{
		prizeService:       prizeService,
		eligibilityService: eligibilityService,
	}
}

// PrizeRequest is the payload for creating or updating a prize
type PrizeRequest struct {
	Name   string  `json:"name" binding:"required"`
	Type   string  `json:"type" binding:"required"`
	Value  int64   `json:"value"`
	Weight float64 `json:"weight"`
	Active bool    `json:"active"`
}

// CreatePrize handles POST /admin/prizes
func (h *AdminHandler) CreatePrize(c *gin.Context) {
	var request PrizeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prize := &models.Prize{
		Name:   request.Name,
		Type:   models.PrizeType(request.Type),
		Value:  request.Value,
		Weight: request.Weight,
		Active: request.Active,
	}
	if err := h.prizeService.CreatePrize(c.Request.Context(), prize); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, prize)
}

// UpdatePrize handles PUT /admin/prizes/:id
func (h *AdminHandler) UpdatePrize(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var request PrizeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prize := &models.Prize{
		ID:     id,
		Name:   request.Name,
		Type:   models.PrizeType(request.Type),
		Value:  request.Value,
		Weight: request.Weight,
		Active: request.Active,
	}
	if err := h.prizeService.UpdatePrize(c.Request.Context(), prize); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, prize)
}

// DeletePrize handles DELETE /admin/prizes/:id
func (h *AdminHandler) DeletePrize(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}
	if err := h.prizeService.DeletePrize(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id.Hex()})
}

// ListPrizes handles GET /admin/prizes
func (h *AdminHandler) ListPrizes(c *gin.Context) {
	prizes, err := h.prizeService.ListPrizes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"prizes": prizes})
}

// GetSettings handles GET /admin/settings
func (h *AdminHandler) GetSettings(c *gin.Context) {
	settings, err := h.prizeService.GetSettings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// SettingsRequest is the payload for PUT /admin/settings
type SettingsRequest struct {
	SpinCost       int64 `json:"spinCost"`
	DailySpinCount int   `json:"dailySpinCount"`
	Enabled        bool  `json:"enabled"`
}

// UpdateSettings handles PUT /admin/settings
func (h *AdminHandler) UpdateSettings(c *gin.Context) {
	var request SettingsRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings := &models.WheelSettings{
		SpinCost:       request.SpinCost,
		DailySpinCount: request.DailySpinCount,
		Enabled:        request.Enabled,
		UpdatedBy:      c.GetString("AdminID"),
	}
	if err := h.prizeService.UpdateSettings(c.Request.Context(), settings); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// GrantRequest is the payload for POST /admin/eligibility/:account
type GrantRequest struct {
	Count     int64      `json:"count" binding:"required,gt=0"`
	Reason    string     `json:"reason"`
	ExpiresAt *time.Time `json:"expiresAt"`
}

// GrantBonusSpins handles POST /admin/eligibility/:account
func (h *AdminHandler) GrantBonusSpins(c *gin.Context) {
	account := c.Param("account")
	var request GrantRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	grant, err := h.eligibilityService.GrantBonusSpins(c.Request.Context(), account, request.Count, request.Reason, request.ExpiresAt, c.GetString("AdminID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, grant)
}

// RevokeEligibility handles DELETE /admin/eligibility/:account
func (h *AdminHandler) RevokeEligibility(c *gin.Context) {
	account := c.Param("account")
	if err := h.eligibilityService.RevokeEligibility(c.Request.Context(), account); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"revoked": account})
}

// ForceWinRequest is the payload for POST /admin/force-win/:account
type ForceWinRequest struct {
	PrizeID string `json:"prizeId" binding:"required"`
}

// ForceNextWin handles POST /admin/force-win/:account
func (h *AdminHandler) ForceNextWin(c *gin.Context) {
	account := c.Param("account")
	var request ForceWinRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prizeID, err := primitive.ObjectIDFromHex(request.PrizeID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid prize ID format"})
		return
	}

	if err := h.eligibilityService.ForceNextWin(c.Request.Context(), account, prizeID, c.GetString("AdminID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"account": account, "prizeId": prizeID.Hex()})
}
