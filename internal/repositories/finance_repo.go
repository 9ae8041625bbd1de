package repositories

import (
	"chauffeur-admin/internal/domain"
	"chauffeur-admin/internal/domain/models"
)

const (
	TransactionPrefix = "T"
	InvoicePrefix     = "INV-"
)

type TransactionRepo struct {
	*EntityStore[models.Transaction]
}

func NewTransactionRepo(cfg Config, seed []models.Transaction) TransactionRepo {
	opts := storeOptions[models.Transaction](cfg, "transaction", "Transaction", TransactionPrefix)
	return TransactionRepo{NewEntityStore(opts, seed)}
}

func TransactionPredicate(c domain.Criteria) Predicate[models.Transaction] {
	return func(t models.Transaction) bool {
		return MatchSearch(c.Search, t.ID, t.Description) &&
			MatchExact(c.Type, string(t.Type)) &&
			MatchExact(c.Status, string(t.Status)) &&
			MatchDateRange(t.Date, c.DateFrom, c.DateTo)
	}
}

type InvoiceRepo struct {
	*EntityStore[models.Invoice]
}

func NewInvoiceRepo(cfg Config, seed []models.Invoice) InvoiceRepo {
	opts := storeOptions[models.Invoice](cfg, "invoice", "Invoice", InvoicePrefix)
	return InvoiceRepo{NewEntityStore(opts, seed)}
}

func InvoicePredicate(c domain.Criteria) Predicate[models.Invoice] {
	return func(i models.Invoice) bool {
		return MatchSearch(c.Search, i.ID, i.Customer) &&
			MatchExact(c.Status, string(i.Status)) &&
			MatchDateRange(i.DueDate, c.DateFrom, c.DateTo)
	}
}
