package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumasoft/lending-ledger/internal/apperrors"
	"github.com/lumasoft/lending-ledger/internal/dto"
	"github.com/lumasoft/lending-ledger/internal/middleware"

	portssvc "github.com/lumasoft/lending-ledger/internal/core/ports/services"
)

// loanHandler handles HTTP requests for loans and their schedules.
type loanHandler struct {
	loanService         portssvc.LoanSvcFacade
	balanceService      portssvc.BalanceSvcFacade
	subscriptionService portssvc.SubscriptionSvcFacade
}

func newLoanHandler(ls portssvc.LoanSvcFacade, bs portssvc.BalanceSvcFacade, ss portssvc.SubscriptionSvcFacade) *loanHandler {
	return &loanHandler{
		loanService:         ls,
		balanceService:      bs,
		subscriptionService: ss,
	}
}

// registerLoanRoutes registers routes for loans, installments and fees.
func registerLoanRoutes(rg *gin.RouterGroup, ls portssvc.LoanSvcFacade, bs portssvc.BalanceSvcFacade, ss portssvc.SubscriptionSvcFacade) {
	h := newLoanHandler(ls, bs, ss)

	loans := rg.Group("/loans")
	{
		loans.POST("", h.disburseLoan)
		loans.POST("/:id/approve", h.approveLoan)
		loans.GET("/:id", h.getLoan)
		loans.GET("/:id/installments", h.listInstallments)
		loans.GET("/:id/outstanding", h.getOutstanding)
	}

	fees := rg.Group("/subscription-fees")
	{
		fees.POST("", h.chargeSubscriptionFee)
	}
}

func (h *loanHandler) disburseLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.DisburseLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for DisburseLoan", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	loan, err := h.loanService.DisburseLoan(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrInsufficientFunds):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrActiveLoanConflict):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrLoanLimitViolation),
			errors.Is(err, apperrors.ErrAccountNotActive),
			errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to disburse loan", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to disburse loan"})
		}
		return
	}

	logger.Info("Loan disbursed",
		slog.String("loan_id", loan.LoanID),
		slog.String("account_id", loan.AccountID))
	c.JSON(http.StatusCreated, dto.ToLoanResponse(loan))
}

func (h *loanHandler) approveLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	loanID := c.Param("id")

	loan, err := h.loanService.ApproveLoan(c.Request.Context(), loanID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound), errors.Is(err, apperrors.ErrJournalNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to approve loan", slog.String("loan_id", loanID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve loan"})
		}
		return
	}

	logger.Info("Loan approved", slog.String("loan_id", loan.LoanID))
	c.JSON(http.StatusOK, dto.ToLoanResponse(loan))
}

func (h *loanHandler) getLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	loanID := c.Param("id")

	loan, err := h.loanService.GetLoanByID(c.Request.Context(), loanID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to get loan", slog.String("loan_id", loanID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve loan"})
		return
	}

	c.JSON(http.StatusOK, dto.ToLoanResponse(loan))
}

func (h *loanHandler) listInstallments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	loanID := c.Param("id")

	installments, err := h.loanService.ListInstallments(c.Request.Context(), loanID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to list installments", slog.String("loan_id", loanID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list installments"})
		return
	}

	c.JSON(http.StatusOK, dto.ToInstallmentResponses(installments))
}

func (h *loanHandler) getOutstanding(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	loanID := c.Param("id")

	outstanding, err := h.balanceService.GetLoanOutstanding(c.Request.Context(), loanID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to get loan outstanding", slog.String("loan_id", loanID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get loan outstanding"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"loanID": loanID, "outstanding": outstanding})
}

func (h *loanHandler) chargeSubscriptionFee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ChargeSubscriptionFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ChargeSubscriptionFee", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	fee, err := h.subscriptionService.ChargeSubscriptionFee(c.Request.Context(), req.AccountID, req.Period)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrAccountNotActive), errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to charge subscription fee", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to charge subscription fee"})
		}
		return
	}

	logger.Info("Subscription fee charged",
		slog.String("subscription_fee_id", fee.SubscriptionFeeID),
		slog.String("period", fee.Period))
	c.JSON(http.StatusCreated, dto.ToSubscriptionFeeResponse(fee))
}
