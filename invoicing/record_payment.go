package invoicing

import (
	"context"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/invoicing/business/ledger"
	"encore.app/invoicing/model"
	"encore.app/invoicing/workflow"
)

type RecordPaymentRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	AmountCents int64      `json:"amount_cents" validate:"required,min=1"`
	Currency    string     `json:"currency" validate:"required,len=3,alpha"`
	Method      string     `json:"method" validate:"required"`
	Gateway     *string    `json:"gateway,omitempty" validate:"omitempty,max=64"`
	Txid        *string    `json:"txid,omitempty" validate:"omitempty,max=128"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`

	// Pending records the payment without counting it toward the balance;
	// a later confirm flips it
	Pending bool `json:"pending,omitempty"`
}

type RecordPaymentResponse struct {
	Payment          model.Payment `json:"payment"`
	PaidBalanceCents int64         `json:"paid_balance_cents"`
	InvoicePaid      bool          `json:"invoice_paid"`
}

//encore:api public path=/v1/invoices/:id/payments method=POST tag:idempotency
func (s *Service) RecordPayment(ctx context.Context, id int, req *RecordPaymentRequest) (*RecordPaymentResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid invoice ID"}
	}

	payment := &model.Payment{
		AmountCents: req.AmountCents,
		Currency:    req.Currency,
		Method:      model.PaymentMethod(req.Method),
		Gateway:     req.Gateway,
		Txid:        req.Txid,
	}
	if req.PaidAt != nil {
		payment.PaidAt = *req.PaidAt
	}
	if req.Pending {
		payment.Status = model.PaymentStatusPending
	}

	result, err := s.ledger.RecordPayment(ctx, int32(id), payment)
	if err != nil {
		rlog.Error("failed to record payment", "error", err, "invoice_id", id)
		return nil, err
	}

	s.notifyPaymentRecorded(result)

	return &RecordPaymentResponse{
		Payment:          *result.Payment,
		PaidBalanceCents: result.PaidBalanceCents,
		InvoicePaid:      result.InvoicePaid,
	}, nil
}

type ConfirmPaymentResponse struct {
	Payment          model.Payment `json:"payment"`
	PaidBalanceCents int64         `json:"paid_balance_cents"`
	InvoicePaid      bool          `json:"invoice_paid"`
}

//encore:api public path=/v1/invoices/:id/payments/:paymentID/confirm method=POST
func (s *Service) ConfirmPayment(ctx context.Context, id, paymentID int) (*ConfirmPaymentResponse, error) {
	if id <= 0 || paymentID <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid invoice or payment ID"}
	}

	result, err := s.ledger.ConfirmPayment(ctx, int32(id), int32(paymentID))
	if err != nil {
		rlog.Error("failed to confirm payment", "error", err, "invoice_id", id, "payment_id", paymentID)
		return nil, err
	}

	s.notifyPaymentRecorded(result)

	return &ConfirmPaymentResponse{
		Payment:          *result.Payment,
		PaidBalanceCents: result.PaidBalanceCents,
		InvoicePaid:      result.InvoicePaid,
	}, nil
}

// Validate implements validation for RecordPaymentRequest
func (r *RecordPaymentRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	if !model.PaymentMethod(r.Method).Valid() {
		return &errs.Error{Code: errs.InvalidArgument, Message: "method: unknown payment method"}
	}

	return nil
}

// notifyPaymentRecorded signals the lifecycle workflow after the ledger
// write has committed; signal failures never fail the request
func (s *Service) notifyPaymentRecorded(result *ledger.Result) {
	if result.InvoiceWorkflowID == "" || result.Payment == nil {
		return
	}

	workflowID := result.InvoiceWorkflowID
	signal := workflow.PaymentRecordedSignal{
		PaymentID:   result.Payment.ID,
		InvoicePaid: result.InvoicePaid,
	}

	runAsync("signal-payment-recorded", func(ctx context.Context) error {
		return s.temporal.SignalWorkflow(ctx, workflowID, "", workflow.PaymentRecordedSignalName, signal)
	})
}
