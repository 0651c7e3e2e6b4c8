package invoicing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

//encore:api public path=/v1/invoices/:id/items/:itemID method=DELETE
func (s *Service) RemoveInvoiceItem(ctx context.Context, id, itemID int) error {
	if id <= 0 || itemID <= 0 {
		return &errs.Error{Code: errs.InvalidArgument, Message: "invalid invoice or item ID"}
	}

	if err := s.business.RemoveItem(ctx, int32(id), int32(itemID)); err != nil {
		rlog.Error("failed to remove invoice item", "error", err, "invoice_id", id, "item_id", itemID)
		return err
	}

	return nil
}
