package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/invoicing/domain"
	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/invoices"
	"encore.app/invoicing/repository/payments"
)

// RecordPayment appends a payment to the invoice ledger under the invoice
// row lock. Two concurrent submissions serialize on the lock, so the
// balance threshold is always checked against a committed balance and the
// pay transition fires exactly once. A resubmitted txid returns the
// original payment untouched.
func (b *business) RecordPayment(ctx context.Context, invoiceID int32, payment *model.Payment) (*Result, error) {
	if payment.AmountCents <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "amount: must be greater than zero"}
	}
	if !payment.Method.Valid() {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "method: unknown payment method"}
	}

	var result *Result

	err := b.stateMachine.ExecuteWithLock(ctx, invoiceID, func(tx domain.InvoiceTx, current invoices.Invoice) error {
		paymentRepo := tx.PaymentRepo()

		// Retried submission: return the existing record, no new ledger
		// entry. The lookup runs before any status gate so a retry after
		// the original submission drove the invoice to paid still gets the
		// original outcome back.
		if payment.Txid != nil {
			existing, err := paymentRepo.GetPaymentByTxid(ctx, payments.GetPaymentByTxidParams{
				InvoiceID: pgtype.Int4{Int32: invoiceID, Valid: true},
				Txid:      pgtype.Text{String: *payment.Txid, Valid: true},
			})
			if err == nil {
				balance, balErr := paymentRepo.GetConfirmedBalance(ctx, pgtype.Int4{Int32: invoiceID, Valid: true})
				if balErr != nil {
					return &errs.Error{Code: errs.Internal, Message: "failed to compute paid balance"}
				}
				result = &Result{
					Payment:           convertDBPaymentToModel(existing),
					PaidBalanceCents:  balance,
					InvoicePaid:       false,
					InvoiceWorkflowID: current.WorkflowID.String,
				}
				return nil
			}
			if !errors.Is(err, pgx.ErrNoRows) {
				return &errs.Error{Code: errs.Internal, Message: "failed to look up payment by txid"}
			}
		}

		switch model.InvoiceStatus(current.Status) {
		case model.InvoiceStatusPending, model.InvoiceStatusOverdue:
			// accepting payments
		case model.InvoiceStatusDraft:
			return &errs.Error{Code: errs.FailedPrecondition, Message: "invoice has not been issued"}
		default:
			return &errs.Error{
				Code:    errs.FailedPrecondition,
				Message: fmt.Sprintf("invoice in status %s accepts no payments", current.Status),
			}
		}

		if payment.Currency != current.Currency {
			return &errs.Error{
				Code:    errs.InvalidArgument,
				Message: fmt.Sprintf("currency: payment currency %s does not match invoice currency %s", payment.Currency, current.Currency),
			}
		}

		balance, err := paymentRepo.GetConfirmedBalance(ctx, pgtype.Int4{Int32: invoiceID, Valid: true})
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to compute paid balance"}
		}

		status := payment.Status
		if status == "" {
			status = model.PaymentStatusConfirmed
		}

		if status == model.PaymentStatusConfirmed && !b.policy.AllowOverpayment &&
			balance+payment.AmountCents > current.TotalCents {
			return &errs.Error{
				Code:    errs.FailedPrecondition,
				Message: "payment exceeds remaining balance",
			}
		}

		paidAt := payment.PaidAt
		if paidAt.IsZero() {
			paidAt = time.Now()
		}

		dbPayment, err := paymentRepo.CreatePayment(ctx, payments.CreatePaymentParams{
			InvoiceID:   pgtype.Int4{Int32: invoiceID, Valid: true},
			AmountCents: payment.AmountCents,
			Currency:    payment.Currency,
			Method:      string(payment.Method),
			Gateway:     textFromPtr(payment.Gateway),
			Txid:        textFromPtr(payment.Txid),
			Status:      string(status),
			PaidAt:      pgtype.Timestamptz{Time: paidAt, Valid: true},
		})
		if err != nil {
			var e *pgconn.PgError
			if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
				return &errs.Error{Code: errs.AlreadyExists, Message: "payment with this txid already recorded"}
			}
			return &errs.Error{Code: errs.Internal, Message: "failed to record payment"}
		}

		result = &Result{
			Payment:           convertDBPaymentToModel(dbPayment),
			PaidBalanceCents:  balance,
			InvoiceWorkflowID: current.WorkflowID.String,
		}

		if status != model.PaymentStatusConfirmed {
			return nil
		}

		result.PaidBalanceCents = balance + payment.AmountCents

		// Reaching the total drives the pay transition within this same
		// transaction, as the system actor.
		if result.PaidBalanceCents >= current.TotalCents {
			if _, err := tx.Transition(ctx, current, model.ActionPay, model.SystemActor); err != nil {
				return err
			}
			result.InvoicePaid = true
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func textFromPtr(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
