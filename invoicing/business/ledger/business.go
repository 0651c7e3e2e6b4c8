package ledger

import (
	"context"

	"encore.app/invoicing/domain"
	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/payments"
)

// Policy holds the explicit ledger policy decisions.
type Policy struct {
	// AllowOverpayment permits confirmed payments to push the balance past
	// the invoice total, leaving the excess as a credit. When false
	// (default) such a payment is rejected before any write.
	AllowOverpayment bool
}

// Result is the outcome of a ledger mutation: the payment record, the
// confirmed balance after the mutation and whether the invoice transitioned
// to paid as part of it.
type Result struct {
	Payment          *model.Payment
	PaidBalanceCents int64
	InvoicePaid      bool

	// InvoiceWorkflowID carries the lifecycle workflow id of the locked
	// invoice so the API layer can signal it without a second read.
	InvoiceWorkflowID string
}

type Business interface {
	RecordPayment(ctx context.Context, invoiceID int32, payment *model.Payment) (*Result, error)
	ConfirmPayment(ctx context.Context, invoiceID, paymentID int32) (*Result, error)
	ListPayments(ctx context.Context, invoiceID int32) ([]model.Payment, error)
	ConfirmedBalance(ctx context.Context, invoiceID int32) (int64, error)
}

// business records payments against invoices and reconciles the running
// paid balance
type business struct {
	paymentRepo  payments.Querier
	stateMachine domain.StateMachine
	policy       Policy
}

// NewLedgerBusiness creates the ledger business layer
func NewLedgerBusiness(paymentRepo payments.Querier, stateMachine domain.StateMachine, policy Policy) Business {
	return &business{
		paymentRepo:  paymentRepo,
		stateMachine: stateMachine,
		policy:       policy,
	}
}
