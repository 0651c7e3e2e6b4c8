package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.dev/beta/errs"

	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/invoices"
	"encore.app/invoicing/repository/items"
	"encore.app/invoicing/repository/payments"
)

// StateMachine defines the interface for invoice state transitions and
// transaction management
type StateMachine interface {
	// ExecuteWithLock performs any operation against an invoice with
	// row-level locking and transaction management. The callback receives
	// the locked row and a transaction scope owned by this call alone, so
	// concurrent locks never share repositories. Guards always run against
	// the locked row, never a client view.
	ExecuteWithLock(ctx context.Context, invoiceID int32, businessLogic func(tx InvoiceTx, current invoices.Invoice) error) error
}

// InvoiceTx is the transaction scope handed to ExecuteWithLock callbacks.
// All repository access and transition helpers inside the callback go
// through it; every method operates on the transaction that holds the
// invoice row lock.
type InvoiceTx interface {
	// InvoiceRepo returns the transaction-aware invoice repository
	InvoiceRepo() invoices.Querier

	// ItemRepo returns the transaction-aware item repository
	ItemRepo() items.Querier

	// PaymentRepo returns the transaction-aware payment repository
	PaymentRepo() payments.Querier

	// Transition applies a non-issue action to the locked invoice
	Transition(ctx context.Context, current invoices.Invoice, action model.Action, actor model.Actor) (invoices.Invoice, error)

	// Issue applies the issue action, fixing issued_at, due_at and the
	// lifecycle workflow id
	Issue(ctx context.Context, current invoices.Invoice, actor model.Actor, issuedAt, dueAt time.Time, workflowID string) (invoices.Invoice, error)

	// RecomputeTotals recalculates invoice subtotal/total within the transaction
	RecomputeTotals(ctx context.Context, id int32) error
}

// InvoiceStateMachine handles all invoice state transitions and owns the
// transaction boundary for per-invoice mutations.
type InvoiceStateMachine struct {
	db          *pgxpool.Pool
	invoiceRepo invoices.Querier
	itemRepo    items.Querier
	paymentRepo payments.Querier
}

// NewInvoiceStateMachine creates a new invoice state machine with database
// and repository access
func NewInvoiceStateMachine(db *pgxpool.Pool, invoiceRepo invoices.Querier, itemRepo items.Querier, paymentRepo payments.Querier) *InvoiceStateMachine {
	return &InvoiceStateMachine{
		db:          db,
		invoiceRepo: invoiceRepo,
		itemRepo:    itemRepo,
		paymentRepo: paymentRepo,
	}
}

// ExecuteWithLock starts a transaction, locks the invoice row with
// SELECT ... FOR UPDATE and runs the callback while the lock is held.
// Concurrent mutations against the same invoice serialize here, so a
// ledger threshold check always sees an up-to-date balance. The scope is
// built per call; the state machine itself holds no transaction state.
func (sm *InvoiceStateMachine) ExecuteWithLock(ctx context.Context, invoiceID int32, businessLogic func(tx InvoiceTx, current invoices.Invoice) error) error {
	tx, err := sm.db.Begin(ctx)
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to start transaction"}
	}
	defer tx.Rollback(ctx)

	scope := &invoiceTx{
		invoices: sm.invoiceRepo.WithTx(tx),
		items:    sm.itemRepo.WithTx(tx),
		payments: sm.paymentRepo.WithTx(tx),
	}

	currentInvoice, err := scope.invoices.GetInvoiceForUpdate(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &errs.Error{Code: errs.NotFound, Message: "invoice not found"}
		}
		return &errs.Error{Code: errs.Internal, Message: "failed to lock invoice"}
	}

	// The row stays locked until the transaction commits or rolls back
	if err := businessLogic(scope, currentInvoice); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to commit invoice mutation"}
	}

	return nil
}

// invoiceTx carries the transaction-bound repositories for one
// ExecuteWithLock call.
type invoiceTx struct {
	invoices invoices.Querier
	items    items.Querier
	payments payments.Querier
}

// InvoiceRepo returns the transaction-aware invoice repository
func (tx *invoiceTx) InvoiceRepo() invoices.Querier {
	return tx.invoices
}

// ItemRepo returns the transaction-aware item repository
func (tx *invoiceTx) ItemRepo() items.Querier {
	return tx.items
}

// PaymentRepo returns the transaction-aware payment repository
func (tx *invoiceTx) PaymentRepo() payments.Querier {
	return tx.payments
}

// Transition validates the requested edge and the actor's capability
// against the locked row, then applies the status update. Edge validation
// runs before the capability check: an edge that does not exist fails the
// same way for every role.
func (tx *invoiceTx) Transition(ctx context.Context, current invoices.Invoice, action model.Action, actor model.Actor) (invoices.Invoice, error) {
	next, err := NextStatus(model.InvoiceStatus(current.Status), action)
	if err != nil {
		return invoices.Invoice{}, err
	}

	if !RoleAllows(actor.Role, action) {
		return invoices.Invoice{}, &errs.Error{
			Code:    errs.PermissionDenied,
			Message: fmt.Sprintf("role %s may not %s an invoice", actor.Role, action),
		}
	}

	if action == model.ActionPay {
		balance, err := tx.payments.GetConfirmedBalance(ctx, pgtype.Int4{Int32: current.ID, Valid: true})
		if err != nil {
			return invoices.Invoice{}, &errs.Error{Code: errs.Internal, Message: "failed to compute paid balance"}
		}
		if balance < current.TotalCents {
			return invoices.Invoice{}, &errs.Error{
				Code:    errs.FailedPrecondition,
				Message: "confirmed balance has not reached the invoice total",
			}
		}
	}

	updated, err := tx.invoices.UpdateInvoiceStatus(ctx, invoices.UpdateInvoiceStatusParams{
		ID:     current.ID,
		Status: string(next),
	})
	if err != nil {
		return invoices.Invoice{}, &errs.Error{Code: errs.Internal, Message: "failed to update invoice status"}
	}

	return updated, nil
}

// Issue validates the issue edge and guard (number fixed, actor can
// issue) and activates the invoice for payment, freezing item composition.
func (tx *invoiceTx) Issue(ctx context.Context, current invoices.Invoice, actor model.Actor, issuedAt, dueAt time.Time, workflowID string) (invoices.Invoice, error) {
	next, err := NextStatus(model.InvoiceStatus(current.Status), model.ActionIssue)
	if err != nil {
		return invoices.Invoice{}, err
	}

	if !RoleAllows(actor.Role, model.ActionIssue) {
		return invoices.Invoice{}, &errs.Error{
			Code:    errs.PermissionDenied,
			Message: fmt.Sprintf("role %s may not issue an invoice", actor.Role),
		}
	}

	if current.Number == "" {
		return invoices.Invoice{}, &errs.Error{
			Code:    errs.FailedPrecondition,
			Message: "invoice number must be set before issuing",
		}
	}

	updated, err := tx.invoices.UpdateInvoiceIssue(ctx, invoices.UpdateInvoiceIssueParams{
		ID:         current.ID,
		Status:     string(next),
		IssuedAt:   pgtype.Timestamptz{Time: issuedAt, Valid: true},
		DueAt:      pgtype.Timestamptz{Time: dueAt, Valid: true},
		WorkflowID: pgtype.Text{String: workflowID, Valid: workflowID != ""},
	})
	if err != nil {
		return invoices.Invoice{}, &errs.Error{Code: errs.Internal, Message: "failed to issue invoice"}
	}

	return updated, nil
}

// RecomputeTotals recalculates subtotal and total from the item rows
// within the current transaction. Totals are never written independently
// of their inputs.
func (tx *invoiceTx) RecomputeTotals(ctx context.Context, id int32) error {
	_, err := tx.invoices.UpdateInvoiceTotals(ctx, id)
	return err
}
