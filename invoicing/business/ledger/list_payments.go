package ledger

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/invoicing/model"
)

// ListPayments returns the full ledger history for an invoice. Terminal
// invoices keep their history for audit, so no status filter is applied.
func (b *business) ListPayments(ctx context.Context, invoiceID int32) ([]model.Payment, error) {
	dbPayments, err := b.paymentRepo.ListPaymentsByInvoice(ctx, pgtype.Int4{Int32: invoiceID, Valid: true})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []model.Payment{}, nil
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list payments"}
	}

	result := make([]model.Payment, len(dbPayments))
	for i, dbPayment := range dbPayments {
		result[i] = *convertDBPaymentToModel(dbPayment)
	}

	return result, nil
}

// ConfirmedBalance returns the running sum of confirmed payments.
func (b *business) ConfirmedBalance(ctx context.Context, invoiceID int32) (int64, error) {
	balance, err := b.paymentRepo.GetConfirmedBalance(ctx, pgtype.Int4{Int32: invoiceID, Valid: true})
	if err != nil {
		return 0, &errs.Error{Code: errs.Internal, Message: "failed to compute paid balance"}
	}
	return balance, nil
}
