package mapping

import (
	"github.com/lumasoft/lending-ledger/internal/core/domain"
	"github.com/lumasoft/lending-ledger/internal/models"
)

// ToModelTransaction converts a domain transaction to its row representation.
func ToModelTransaction(t domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: t.TransactionID,
		AccountID:     t.AccountID,
		Kind:          string(t.Kind),
		Amount:        t.Amount,
		Status:        string(t.Status),
		ExternalRef:   t.ExternalRef,
		Note:          t.Note,
		AuditFields:   toModelAudit(t.AuditFields),
	}
}

// ToDomainTransaction converts a transaction row to the domain type.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		AccountID:     m.AccountID,
		Kind:          domain.TransactionKind(m.Kind),
		Amount:        m.Amount,
		Status:        domain.TransactionStatus(m.Status),
		ExternalRef:   m.ExternalRef,
		Note:          m.Note,
		AuditFields:   toDomainAudit(m.AuditFields),
	}
}

// ToDomainAccount converts an account row to the domain type.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:   m.AccountID,
		Number:      m.Number,
		OwnerName:   m.OwnerName,
		Status:      domain.AccountStatus(m.Status),
		AuditFields: toDomainAudit(m.AuditFields),
	}
}

// ToModelAccount converts a domain account to its row representation.
func ToModelAccount(a domain.Account) models.Account {
	return models.Account{
		AccountID:   a.AccountID,
		Number:      a.Number,
		OwnerName:   a.OwnerName,
		Status:      string(a.Status),
		AuditFields: toModelAudit(a.AuditFields),
	}
}

// ToDomainLoanType converts a loan type row to the domain type.
func ToDomainLoanType(m models.LoanType) domain.LoanType {
	return domain.LoanType{
		LoanTypeID:           m.LoanTypeID,
		Name:                 m.Name,
		MinMonths:            m.MinMonths,
		MaxMonths:            m.MaxMonths,
		CommissionPercentage: m.CommissionPercentage,
		AuditFields:          toDomainAudit(m.AuditFields),
	}
}

// ToModelLoan converts a domain loan to its row representation.
func ToModelLoan(l domain.Loan) models.Loan {
	return models.Loan{
		LoanID:           l.LoanID,
		AccountID:        l.AccountID,
		LoanTypeID:       l.LoanTypeID,
		Amount:           l.Amount,
		CommissionAmount: l.CommissionAmount,
		PaymentMonths:    l.PaymentMonths,
		StartDate:        l.StartDate,
		Status:           string(l.Status),
		AuditFields:      toModelAudit(l.AuditFields),
	}
}

// ToDomainLoan converts a loan row to the domain type.
func ToDomainLoan(m models.Loan) domain.Loan {
	return domain.Loan{
		LoanID:           m.LoanID,
		AccountID:        m.AccountID,
		LoanTypeID:       m.LoanTypeID,
		Amount:           m.Amount,
		CommissionAmount: m.CommissionAmount,
		PaymentMonths:    m.PaymentMonths,
		StartDate:        m.StartDate,
		Status:           domain.LoanStatus(m.Status),
		AuditFields:      toDomainAudit(m.AuditFields),
	}
}

// ToModelInstallment converts a domain installment to its row representation.
func ToModelInstallment(i domain.Installment) models.Installment {
	return models.Installment{
		InstallmentID:  i.InstallmentID,
		LoanID:         i.LoanID,
		Sequence:       i.Sequence,
		Amount:         i.Amount,
		DueDate:        i.DueDate,
		Status:         string(i.Status),
		JournalEntryID: i.JournalEntryID,
		AuditFields:    toModelAudit(i.AuditFields),
	}
}

// ToDomainInstallment converts an installment row to the domain type.
func ToDomainInstallment(m models.Installment) domain.Installment {
	return domain.Installment{
		InstallmentID:  m.InstallmentID,
		LoanID:         m.LoanID,
		Sequence:       m.Sequence,
		Amount:         m.Amount,
		DueDate:        m.DueDate,
		Status:         domain.InstallmentStatus(m.Status),
		JournalEntryID: m.JournalEntryID,
		AuditFields:    toDomainAudit(m.AuditFields),
	}
}

// ToDomainSubscriptionFee converts a fee row to the domain type.
func ToDomainSubscriptionFee(m models.SubscriptionFee) domain.SubscriptionFee {
	return domain.SubscriptionFee{
		SubscriptionFeeID: m.SubscriptionFeeID,
		AccountID:         m.AccountID,
		Period:            m.Period,
		Amount:            m.Amount,
		Status:            domain.SubscriptionFeeStatus(m.Status),
		JournalEntryID:    m.JournalEntryID,
		AuditFields:       toDomainAudit(m.AuditFields),
	}
}

// ToModelSubscriptionFee converts a domain fee to its row representation.
func ToModelSubscriptionFee(f domain.SubscriptionFee) models.SubscriptionFee {
	return models.SubscriptionFee{
		SubscriptionFeeID: f.SubscriptionFeeID,
		AccountID:         f.AccountID,
		Period:            f.Period,
		Amount:            f.Amount,
		Status:            string(f.Status),
		JournalEntryID:    f.JournalEntryID,
		AuditFields:       toModelAudit(f.AuditFields),
	}
}
