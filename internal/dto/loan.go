package dto

import (
	"time"

	"github.com/lumasoft/lending-ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DisburseLoanRequest creates and books a new loan on an account.
type DisburseLoanRequest struct {
	AccountID     string          `json:"accountID" binding:"required"`
	LoanTypeID    string          `json:"loanTypeID" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	PaymentMonths int             `json:"paymentMonths" binding:"required,min=1"`
	StartDate     time.Time       `json:"startDate" binding:"required"`
}

// LoanResponse defines the data returned for a loan.
type LoanResponse struct {
	LoanID           string          `json:"loanID"`
	AccountID        string          `json:"accountID"`
	LoanTypeID       string          `json:"loanTypeID"`
	Amount           decimal.Decimal `json:"amount"`
	CommissionAmount decimal.Decimal `json:"commissionAmount"`
	PaymentMonths    int             `json:"paymentMonths"`
	StartDate        time.Time       `json:"startDate"`
	Status           string          `json:"status"`
}

// InstallmentResponse defines the data returned for one installment.
type InstallmentResponse struct {
	InstallmentID string          `json:"installmentID"`
	Sequence      int             `json:"sequence"`
	Amount        decimal.Decimal `json:"amount"`
	DueDate       time.Time       `json:"dueDate"`
	Status        string          `json:"status"`
}

// ToLoanResponse converts a domain.Loan to LoanResponse DTO.
func ToLoanResponse(l *domain.Loan) LoanResponse {
	return LoanResponse{
		LoanID:           l.LoanID,
		AccountID:        l.AccountID,
		LoanTypeID:       l.LoanTypeID,
		Amount:           l.Amount,
		CommissionAmount: l.CommissionAmount,
		PaymentMonths:    l.PaymentMonths,
		StartDate:        l.StartDate,
		Status:           string(l.Status),
	}
}

// ToInstallmentResponses converts domain installments to DTOs.
func ToInstallmentResponses(installments []domain.Installment) []InstallmentResponse {
	responses := make([]InstallmentResponse, len(installments))
	for i, inst := range installments {
		responses[i] = InstallmentResponse{
			InstallmentID: inst.InstallmentID,
			Sequence:      inst.Sequence,
			Amount:        inst.Amount,
			DueDate:       inst.DueDate,
			Status:        string(inst.Status),
		}
	}
	return responses
}
