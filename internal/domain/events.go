package domain

import "time"

// Event types
const (
	EventTypePaymentReceived = "payment.received"
	EventTypeLoanOriginated  = "loan.originated"
)

// Aggregate types
const (
	AggregateTypeLoan    = "loan"
	AggregateTypePayment = "payment"
)

// OutboxEvent represents an event to be published
type OutboxEvent struct {
	ID            string
	AggregateID   string
	AggregateType string
	EventType     string
	Payload       map[string]any
	CreatedAt     time.Time
	PublishedAt   *time.Time
	Published     bool
}

// PaymentReceivedEvent payload
type PaymentReceivedEvent struct {
	PaymentID          string `json:"payment_id"`
	LoanAccountID      string `json:"loan_account_id"`
	LoanReference      string `json:"loan_reference"`
	AppliedAmount      string `json:"applied_amount"`
	OutstandingBalance string `json:"outstanding_balance"`
	Source             string `json:"source"`
	TransactionDate    string `json:"transaction_date"`
}

// LoanOriginatedEvent payload
type LoanOriginatedEvent struct {
	LoanAccountID string `json:"loan_account_id"`
	LoanReference string `json:"loan_reference"`
	Principal     string `json:"principal"`
	TermMonths    int    `json:"term_months"`
}
