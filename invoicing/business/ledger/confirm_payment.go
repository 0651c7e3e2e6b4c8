package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/invoicing/domain"
	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/invoices"
	"encore.app/invoicing/repository/payments"
)

// ConfirmPayment flips a pending ledger entry to confirmed under the
// invoice row lock, applying the same overpayment policy and pay-threshold
// logic as a directly confirmed payment.
func (b *business) ConfirmPayment(ctx context.Context, invoiceID, paymentID int32) (*Result, error) {
	var result *Result

	err := b.stateMachine.ExecuteWithLock(ctx, invoiceID, func(tx domain.InvoiceTx, current invoices.Invoice) error {
		// Terminal and paid invoices accept no further ledger mutation;
		// confirming is gated exactly like recording.
		switch model.InvoiceStatus(current.Status) {
		case model.InvoiceStatusPending, model.InvoiceStatusOverdue:
			// accepting payments
		default:
			return &errs.Error{
				Code:    errs.FailedPrecondition,
				Message: fmt.Sprintf("invoice in status %s accepts no payments", current.Status),
			}
		}

		paymentRepo := tx.PaymentRepo()

		dbPayment, err := paymentRepo.GetPayment(ctx, payments.GetPaymentParams{
			ID:        paymentID,
			InvoiceID: pgtype.Int4{Int32: invoiceID, Valid: true},
		})
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return &errs.Error{Code: errs.NotFound, Message: "payment not found"}
			}
			return &errs.Error{Code: errs.Internal, Message: "failed to get payment"}
		}

		if dbPayment.Status != string(model.PaymentStatusPending) {
			return &errs.Error{
				Code:    errs.FailedPrecondition,
				Message: "only pending payments can be confirmed",
			}
		}

		balance, err := paymentRepo.GetConfirmedBalance(ctx, pgtype.Int4{Int32: invoiceID, Valid: true})
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to compute paid balance"}
		}

		if !b.policy.AllowOverpayment && balance+dbPayment.AmountCents > current.TotalCents {
			return &errs.Error{
				Code:    errs.FailedPrecondition,
				Message: "payment exceeds remaining balance",
			}
		}

		confirmed, err := paymentRepo.UpdatePaymentStatus(ctx, payments.UpdatePaymentStatusParams{
			ID:        paymentID,
			InvoiceID: pgtype.Int4{Int32: invoiceID, Valid: true},
			Status:    string(model.PaymentStatusConfirmed),
		})
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to confirm payment"}
		}

		result = &Result{
			Payment:           convertDBPaymentToModel(confirmed),
			PaidBalanceCents:  balance + dbPayment.AmountCents,
			InvoiceWorkflowID: current.WorkflowID.String,
		}

		if result.PaidBalanceCents >= current.TotalCents &&
			model.InvoiceStatus(current.Status) != model.InvoiceStatusPaid {
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
