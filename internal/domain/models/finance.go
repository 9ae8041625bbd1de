package models

type TransactionType string

const (
	TransactionRevenue TransactionType = "revenue"
	TransactionExpense TransactionType = "expense"
)

type TransactionStatus string

const (
	TransactionCompleted TransactionStatus = "completed"
	TransactionPending   TransactionStatus = "pending"
)

// Transaction is a ledger line. Expenses carry a negative Amount.
type Transaction struct {
	ID          string            `json:"id" yaml:"id"`
	Type        TransactionType   `json:"type" yaml:"type"`
	Description string            `json:"description" yaml:"description"`
	Amount      float64           `json:"amount" yaml:"amount"`
	Date        string            `json:"date" yaml:"date"`
	Status      TransactionStatus `json:"status" yaml:"status"`
}

func (t Transaction) GetID() string { return t.ID }

func (t Transaction) WithID(id string) Transaction {
	t.ID = id
	return t
}

func (t Transaction) Clone() Transaction { return t }

type InvoiceStatus string

const (
	InvoicePending InvoiceStatus = "pending"
	InvoiceOverdue InvoiceStatus = "overdue"
	InvoicePaid    InvoiceStatus = "paid"
)

type Invoice struct {
	ID          string        `json:"id" yaml:"id"`
	Customer    string        `json:"customer" yaml:"customer"`
	Amount      float64       `json:"amount" yaml:"amount"`
	DueDate     string        `json:"dueDate" yaml:"dueDate"`
	Status      InvoiceStatus `json:"status" yaml:"status"`
	DaysOverdue int           `json:"daysOverdue" yaml:"daysOverdue"`
}

func (i Invoice) GetID() string { return i.ID }

func (i Invoice) WithID(id string) Invoice {
	i.ID = id
	return i
}

func (i Invoice) Clone() Invoice { return i }

// Outstanding reports whether the invoice still awaits payment.
func (i Invoice) Outstanding() bool {
	return i.Status == InvoicePending || i.Status == InvoiceOverdue
}

// FinancialSummary is the overview shown above the ledger.
type FinancialSummary struct {
	Revenue             float64 `json:"revenue"`
	Expenses            float64 `json:"expenses"`
	Profit              float64 `json:"profit"`
	ProfitMargin        float64 `json:"profitMargin"`
	OutstandingInvoices int     `json:"outstandingInvoices"`
	TotalOutstanding    float64 `json:"totalOutstanding"`
	PendingRevenue      float64 `json:"pendingRevenue"`
}
