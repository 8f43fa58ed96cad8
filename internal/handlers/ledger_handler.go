package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "skillmart/internal/errors"
	"skillmart/internal/services"
)

// LedgerHandler handles balance-related requests.
type LedgerHandler struct {
	ledgerService services.LedgerServicer
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerService services.LedgerServicer) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService}
}

// DepositRequest represents the request payload for a deposit.
type DepositRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// WithdrawRequest represents the request payload for a withdrawal.
type WithdrawRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// BalanceResponse represents a principal's balance.
type BalanceResponse struct {
	Principal string `json:"principal"`
	Balance   int64  `json:"balance"`
}

// GetBalance returns the caller's balance
// @Summary     Get balance
// @Description Get the caller's current balance in the internal currency unit
// @Tags        ledger
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} BalanceResponse "Balance"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /ledger/balance [get]
func (h *LedgerHandler) GetBalance(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	balance := h.ledgerService.BalanceOf(principal)
	c.JSON(http.StatusOK, BalanceResponse{Principal: principal.String(), Balance: balance})
}

// GetRoyalties returns the caller's cumulative creator royalties
// @Summary     Get royalties earned
// @Description Get the cumulative royalties the caller has received as a creator
// @Tags        ledger
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Royalties earned"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /ledger/royalties [get]
func (h *LedgerHandler) GetRoyalties(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	earned := h.ledgerService.RoyaltyEarnedOf(principal)
	c.JSON(http.StatusOK, gin.H{"principal": principal, "royalty_earned": earned})
}

// Deposit credits the caller's balance
// @Summary     Deposit funds
// @Description Credit the caller's balance; stands in for external funding
// @Tags        ledger
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body DepositRequest true "Amount to deposit"
// @Success     200 {object} BalanceResponse "New balance"
// @Failure     400 {object} ErrorResponse "Invalid amount"
// @Router      /ledger/deposit [post]
func (h *LedgerHandler) Deposit(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	balance, err := h.ledgerService.Deposit(principal, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, BalanceResponse{Principal: principal.String(), Balance: balance})
}

// Withdraw debits the caller's balance
// @Summary     Withdraw funds
// @Description Debit the caller's balance; fails if the balance would go negative
// @Tags        ledger
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body WithdrawRequest true "Amount to withdraw"
// @Success     200 {object} BalanceResponse "New balance"
// @Failure     400 {object} ErrorResponse "Invalid amount or insufficient funds"
// @Router      /ledger/withdraw [post]
func (h *LedgerHandler) Withdraw(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	balance, err := h.ledgerService.Withdraw(principal, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, BalanceResponse{Principal: principal.String(), Balance: balance})
}
