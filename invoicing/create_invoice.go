package invoicing

import (
	"context"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/invoicing/composer"
	"encore.app/invoicing/model"
)

type CreateInvoiceRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	Number        string               `json:"number" validate:"required,max=64"`
	OwnerID       string               `json:"owner_id" validate:"omitempty,max=100"`
	Currency      string               `json:"currency" validate:"required,len=3,alpha"`
	DiscountCents int64                `json:"discount_cents" validate:"min=0"`
	TaxCents      int64                `json:"tax_cents" validate:"min=0"`
	DueAt         *time.Time           `json:"due_at"`
	Notes         *string              `json:"notes"`
	Items         []composer.ItemInput `json:"items"`
}

type InvoiceResponse struct {
	Invoice model.Invoice `json:"invoice"`
}

//encore:api public path=/v1/invoices method=POST tag:idempotency
func (s *Service) CreateInvoice(ctx context.Context, req *CreateInvoiceRequest) (*InvoiceResponse, error) {
	inv := &model.Invoice{
		Number:        req.Number,
		OwnerID:       req.OwnerID,
		Currency:      req.Currency,
		DiscountCents: req.DiscountCents,
		TaxCents:      req.TaxCents,
		DueAt:         req.DueAt,
		Notes:         req.Notes,
	}

	inv.Items = make([]model.InvoiceItem, len(req.Items))
	for i, item := range req.Items {
		inv.Items[i] = model.InvoiceItem{
			Type:           item.Type,
			RefID:          item.RefID,
			Description:    item.Description,
			Qty:            item.Qty,
			UnitPriceCents: item.UnitPriceCents,
			Meta:           item.Meta,
		}
	}

	result, err := s.business.CreateInvoice(ctx, inv)
	if err != nil {
		rlog.Error("failed to create invoice", "error", err, "number", req.Number)
		return nil, err
	}

	return &InvoiceResponse{
		Invoice: *result,
	}, nil
}

// Validate implements validation for CreateInvoiceRequest
func (r *CreateInvoiceRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
