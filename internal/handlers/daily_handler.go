package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/luxemods/economy-backend/internal/services"
)

// DailyHandler handles daily reward HTTP requests
type DailyHandler struct {
	dailyService services.DailyRewardService
}

// NewDailyHandler creates a new DailyHandler
func NewDailyHandler(dailyService services.DailyRewardService) *DailyHandler {
	return &DailyHandler{
		dailyService: dailyService,
	}
}

// Claim handles POST /daily/:account/claim. The clock is read once here and
// threaded through so the whole claim sees a single UTC day.
func (h *DailyHandler) Claim(c *gin.Context) {
	account := c.Param("account")
	result, err := h.dailyService.Claim(c.Request.Context(), account, time.Now().UTC())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
