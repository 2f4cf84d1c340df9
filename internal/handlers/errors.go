package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/luxemods/economy-backend/internal/repositories"
	"github.com/luxemods/economy-backend/internal/services"
)

// respondError maps the service error taxonomy to HTTP responses. Typed
// errors carry their detail into the body so the UI can render an actionable
// message.
func respondError(c *gin.Context, err error) {
	var insufficient *services.InsufficientFundsError
	if errors.As(err, &insufficient) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Insufficient funds",
			"required":  insufficient.Required,
			"available": insufficient.Available,
		})
		return
	}

	var claimed *services.AlreadyClaimedError
	if errors.As(err, &claimed) {
		c.JSON(http.StatusConflict, gin.H{
			"error":          "Daily reward already claimed",
			"nextEligibleAt": claimed.NextEligibleAt,
		})
		return
	}

	switch {
	case errors.Is(err, services.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	case errors.Is(err, repositories.ErrNoTickets):
		c.JSON(http.StatusConflict, gin.H{"error": "No tickets available"})
	case errors.Is(err, services.ErrNoPrizesAvailable):
		c.JSON(http.StatusConflict, gin.H{"error": "No prizes available"})
	case errors.Is(err, services.ErrSpinsDisabled):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Spin wheel is disabled"})
	case errors.Is(err, repositories.ErrAccountNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
	case errors.Is(err, repositories.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, repositories.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Store temporarily unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
