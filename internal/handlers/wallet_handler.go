package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/luxemods/economy-backend/internal/models"
	"github.com/luxemods/economy-backend/internal/services"
)

// WalletHandler handles wallet-related HTTP requests
type WalletHandler struct {
	walletService services.WalletService
}

// NewWalletHandler creates a new WalletHandler
func NewWalletHandler(walletService services.WalletService) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// GetBalance handles GET /wallet/:account
func (h *WalletHandler) GetBalance(c *gin.Context) {
	account := c.Param("account")
	balance, err := h.walletService.GetBalance(c.Request.Context(), account)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"account": account, "balance": balance})
}

// GetLedger handles GET /wallet/:account/ledger
func (h *WalletHandler) GetLedger(c *gin.Context) {
	account := c.Param("account")
	page, limit := pagination(c)
	entries, err := h.walletService.GetLedger(c.Request.Context(), account, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"account": account, "entries": entries, "page": page, "limit": limit})
}

// DebitRequest is the payload for POST /wallet/:account/debit
type DebitRequest struct {
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	Description string `json:"description"`
}

// Debit handles POST /wallet/:account/debit (the purchase path)
func (h *WalletHandler) Debit(c *gin.Context) {
	account := c.Param("account")
	var request DebitRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.walletService.Debit(c.Request.Context(), account, request.Amount, models.LedgerKindPurchase, request.Description)
	if err != nil {
		respondError(c, err)
		return
	}

	balance, err := h.walletService.GetBalance(c.Request.Context(), account)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entry": entry, "balance": balance})
}

// CreditRequest is the payload for POST /admin/wallet/:account/credit
type CreditRequest struct {
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	Kind        string `json:"kind"`
	Description string `json:"description"`
}

// Credit handles POST /admin/wallet/:account/credit
func (h *WalletHandler) Credit(c *gin.Context) {
	account := c.Param("account")
	var request CreditRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	kind := models.LedgerKind(request.Kind)
	if request.Kind == "" {
		kind = models.LedgerKindAdminAdjust
	}

	entry, err := h.walletService.Credit(c.Request.Context(), account, request.Amount, kind, request.Description)
	if err != nil {
		respondError(c, err)
		return
	}

	balance, err := h.walletService.GetBalance(c.Request.Context(), account)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entry": entry, "balance": balance})
}

// pagination reads page/limit query params with sane bounds
func pagination(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}
