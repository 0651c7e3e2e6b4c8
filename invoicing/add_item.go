package invoicing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/invoicing/composer"
	"encore.app/invoicing/model"
)

type AddInvoiceItemRequest struct {
	Type           string         `json:"type,omitempty"`
	RefID          string         `json:"ref_id,omitempty"`
	Description    string         `json:"description" validate:"required,max=255"`
	Qty            int64          `json:"qty" validate:"required,min=1"`
	UnitPriceCents int64          `json:"unit_price_cents" validate:"min=0"`
	Meta           map[string]any `json:"meta,omitempty"`
}

type InvoiceItemResponse struct {
	Item model.InvoiceItem `json:"item"`
}

//encore:api public path=/v1/invoices/:id/items method=POST
func (s *Service) AddInvoiceItem(ctx context.Context, id int, req *AddInvoiceItemRequest) (*InvoiceItemResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid invoice ID"}
	}

	item, err := s.business.AddItem(ctx, int32(id), req.toItemInput())
	if err != nil {
		rlog.Error("failed to add invoice item", "error", err, "invoice_id", id)
		return nil, err
	}

	return &InvoiceItemResponse{Item: *item}, nil
}

// Validate implements validation for AddInvoiceItemRequest
func (r *AddInvoiceItemRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}

func (r *AddInvoiceItemRequest) toItemInput() composer.ItemInput {
	return composer.ItemInput{
		Type:           r.Type,
		RefID:          r.RefID,
		Description:    r.Description,
		Qty:            r.Qty,
		UnitPriceCents: r.UnitPriceCents,
		Meta:           r.Meta,
	}
}
