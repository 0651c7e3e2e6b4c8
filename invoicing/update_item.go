package invoicing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/invoicing/composer"
)

type UpdateInvoiceItemRequest struct {
	Type           string         `json:"type,omitempty"`
	RefID          string         `json:"ref_id,omitempty"`
	Description    string         `json:"description" validate:"required,max=255"`
	Qty            int64          `json:"qty" validate:"required,min=1"`
	UnitPriceCents int64          `json:"unit_price_cents" validate:"min=0"`
	Meta           map[string]any `json:"meta,omitempty"`
}

//encore:api public path=/v1/invoices/:id/items/:itemID method=PUT
func (s *Service) UpdateInvoiceItem(ctx context.Context, id, itemID int, req *UpdateInvoiceItemRequest) (*InvoiceItemResponse, error) {
	if id <= 0 || itemID <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid invoice or item ID"}
	}

	input := composer.ItemInput{
		Type:           req.Type,
		RefID:          req.RefID,
		Description:    req.Description,
		Qty:            req.Qty,
		UnitPriceCents: req.UnitPriceCents,
		Meta:           req.Meta,
	}

	item, err := s.business.UpdateItem(ctx, int32(id), int32(itemID), input)
	if err != nil {
		rlog.Error("failed to update invoice item", "error", err, "invoice_id", id, "item_id", itemID)
		return nil, err
	}

	return &InvoiceItemResponse{Item: *item}, nil
}

// Validate implements validation for UpdateInvoiceItemRequest
func (r *UpdateInvoiceItemRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}
