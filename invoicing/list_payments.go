package invoicing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/invoicing/model"
)

type ListPaymentsResponse struct {
	Payments         []model.Payment `json:"payments"`
	PaidBalanceCents int64           `json:"paid_balance_cents"`
}

//encore:api public path=/v1/invoices/:id/payments method=GET
func (s *Service) ListPayments(ctx context.Context, id int) (*ListPaymentsResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid invoice ID"}
	}

	// Existence check keeps the 404 contract consistent with the detail endpoint
	if _, err := s.business.GetInvoice(ctx, int32(id)); err != nil {
		return nil, err
	}

	payments, err := s.ledger.ListPayments(ctx, int32(id))
	if err != nil {
		rlog.Error("failed to list payments", "error", err, "invoice_id", id)
		return nil, err
	}

	balance, err := s.ledger.ConfirmedBalance(ctx, int32(id))
	if err != nil {
		rlog.Error("failed to get confirmed balance", "error", err, "invoice_id", id)
		return nil, err
	}

	return &ListPaymentsResponse{
		Payments:         payments,
		PaidBalanceCents: balance,
	}, nil
}
