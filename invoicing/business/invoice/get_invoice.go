package invoice

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/invoicing/model"
)

// GetInvoice retrieves an invoice by ID together with its items
func (b *business) GetInvoice(ctx context.Context, id int32) (*model.Invoice, error) {
	dbInv, err := b.invoiceRepo.GetInvoice(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "invoice not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get invoice"}
	}

	inv := convertDBInvoiceToModel(dbInv)

	dbItems, err := b.itemRepo.GetItemsByInvoice(ctx, pgtype.Int4{Int32: id, Valid: true})
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get invoice items"}
	}

	inv.Items = make([]model.InvoiceItem, len(dbItems))
	for i, dbItem := range dbItems {
		inv.Items[i] = *convertDBItemToModel(dbItem)
	}

	return inv, nil
}
