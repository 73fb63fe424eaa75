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

// ledgerHandler handles HTTP requests for journals, entries and balances.
type ledgerHandler struct {
	postingService    portssvc.PostingSvcFacade
	allocationService portssvc.AllocationSvcFacade
	balanceService    portssvc.BalanceSvcFacade
}

// newLedgerHandler creates a new ledgerHandler.
func newLedgerHandler(ps portssvc.PostingSvcFacade, as portssvc.AllocationSvcFacade, bs portssvc.BalanceSvcFacade) *ledgerHandler {
	return &ledgerHandler{
		postingService:    ps,
		allocationService: as,
		balanceService:    bs,
	}
}

// registerLedgerRoutes registers routes for journals, entries and balances.
func registerLedgerRoutes(rg *gin.RouterGroup, ps portssvc.PostingSvcFacade, as portssvc.AllocationSvcFacade, bs portssvc.BalanceSvcFacade) {
	h := newLedgerHandler(ps, as, bs)

	journals := rg.Group("/journals")
	{
		journals.POST("", h.createJournal)
		journals.GET("/:id", h.getJournal)
		journals.POST("/:id/entries", h.addEntry)
	}

	entries := rg.Group("/entries")
	{
		entries.DELETE("/:id", h.removeEntry)
	}

	ledgerAccounts := rg.Group("/ledger-accounts")
	{
		ledgerAccounts.GET("", h.listLedgerAccounts)
		ledgerAccounts.GET("/:code/balance", h.getAccountBalance)
	}

	rg.GET("/lending-capacity", h.getLendingCapacity)
}

func (h *ledgerHandler) createJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateJournal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	journal, err := h.postingService.CreateJournal(c.Request.Context(), req)
	if err != nil {
		var unbalanced *apperrors.UnbalancedJournalError
		switch {
		case errors.As(err, &unbalanced):
			logger.Warn("Rejected unbalanced journal",
				slog.String("debit_total", unbalanced.DebitTotal),
				slog.String("credit_total", unbalanced.CreditTotal))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrUnknownLedgerAccount), errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error creating journal", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create journal", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create journal"})
		}
		return
	}

	logger.Info("Journal created", slog.String("journal_id", journal.JournalID))
	c.JSON(http.StatusCreated, dto.ToJournalResponse(journal))
}

func (h *ledgerHandler) getJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	journalID := c.Param("id")

	journal, err := h.postingService.GetJournalByID(c.Request.Context(), journalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrJournalNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to get journal", slog.String("journal_id", journalID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get journal"})
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}

func (h *ledgerHandler) addEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	journalID := c.Param("id")

	var req dto.AddEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	journal, err := h.allocationService.AddEntry(c.Request.Context(), journalID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrJournalNotFound), errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrJournalNotPending):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to add entry", slog.String("journal_id", journalID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add entry"})
		}
		return
	}

	logger.Info("Entry added", slog.String("journal_id", journalID))
	c.JSON(http.StatusCreated, dto.ToJournalResponse(journal))
}

func (h *ledgerHandler) removeEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("id")

	err := h.allocationService.RemoveEntry(c.Request.Context(), entryID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrEntryNotFound), errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrEntryNotRemovable), errors.Is(err, apperrors.ErrJournalNotPending):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to remove entry", slog.String("entry_id", entryID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove entry"})
		}
		return
	}

	logger.Info("Entry removed", slog.String("entry_id", entryID))
	c.Status(http.StatusNoContent)
}

func (h *ledgerHandler) listLedgerAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accounts, err := h.balanceService.ListLedgerAccounts(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list ledger accounts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list ledger accounts"})
		return
	}

	c.JSON(http.StatusOK, accounts)
}

func (h *ledgerHandler) getAccountBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Param("code")

	var window dto.BalanceWindow
	if err := c.ShouldBindQuery(&window); err != nil {
		logger.Warn("Failed to bind query for GetAccountBalance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	balance, err := h.balanceService.GetAccountBalance(c.Request.Context(), code, window)
	if err != nil {
		if errors.Is(err, apperrors.ErrLedgerAccountNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to get account balance", slog.String("code", code), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get account balance"})
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{Code: code, Balance: balance})
}

func (h *ledgerHandler) getLendingCapacity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	capacity, err := h.balanceService.GetLendingCapacity(c.Request.Context())
	if err != nil {
		logger.Error("Failed to get lending capacity", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get lending capacity"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"lendingCapacity": capacity})
}
