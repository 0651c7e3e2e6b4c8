package invoice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/invoicing/composer"
	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/invoices"
	"encore.app/invoicing/repository/items"
)

// CreateInvoice persists a draft invoice together with its composed items
// in a single transaction. A multi-step composition never leaves a
// partially-persisted invoice behind: either the whole draft lands or
// nothing does.
func (b *business) CreateInvoice(ctx context.Context, inv *model.Invoice) (*model.Invoice, error) {
	if inv.Number == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "number: must not be empty"}
	}
	if inv.DiscountCents < 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "discount: must not be negative"}
	}
	if inv.TaxCents < 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "tax: must not be negative"}
	}

	comp := composer.New()
	for i, item := range inv.Items {
		if _, err := comp.Add(composer.ItemInput{
			Type:           item.Type,
			RefID:          item.RefID,
			Description:    item.Description,
			Qty:            item.Qty,
			UnitPriceCents: item.UnitPriceCents,
			Meta:           item.Meta,
		}); err != nil {
			var e *errs.Error
			if errors.As(err, &e) {
				return nil, &errs.Error{Code: e.Code, Message: fmt.Sprintf("items[%d].%s", i, e.Message)}
			}
			return nil, err
		}
	}

	tx, err := b.db.Begin(ctx)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to start transaction"}
	}
	defer tx.Rollback(ctx)

	invoiceTx := b.invoiceRepo.WithTx(tx)
	itemTx := b.itemRepo.WithTx(tx)

	dbInv, err := invoiceTx.CreateInvoice(ctx, invoices.CreateInvoiceParams{
		Number:        inv.Number,
		OwnerID:       pgtype.Text{String: inv.OwnerID, Valid: inv.OwnerID != ""},
		Currency:      inv.Currency,
		Status:        string(model.InvoiceStatusDraft),
		DiscountCents: inv.DiscountCents,
		TaxCents:      inv.TaxCents,
		DueAt:         timestamptzFromPtr(inv.DueAt),
		Notes:         textFromPtr(inv.Notes),
	})
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return nil, &errs.Error{Code: errs.AlreadyExists, Message: "invoice number already exists"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to create invoice"}
	}

	created := make([]model.InvoiceItem, 0, len(comp.Items()))
	for _, item := range comp.Items() {
		var metaJSON []byte
		if item.Meta != nil {
			metaJSON, err = json.Marshal(item.Meta)
			if err != nil {
				return nil, &errs.Error{Code: errs.Internal, Message: "failed to marshal item meta"}
			}
		}

		dbItem, err := itemTx.CreateInvoiceItem(ctx, items.CreateInvoiceItemParams{
			InvoiceID:      pgtype.Int4{Int32: dbInv.ID, Valid: true},
			ItemType:       pgtype.Text{String: item.Type, Valid: item.Type != ""},
			RefID:          pgtype.Text{String: item.RefID, Valid: item.RefID != ""},
			Description:    item.Description,
			Qty:            item.Qty,
			UnitPriceCents: item.UnitPriceCents,
			Meta:           metaJSON,
		})
		if err != nil {
			return nil, &errs.Error{Code: errs.Internal, Message: "failed to create invoice item"}
		}
		created = append(created, *convertDBItemToModel(dbItem))
	}

	dbInv, err = invoiceTx.UpdateInvoiceTotals(ctx, dbInv.ID)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to compute invoice totals"}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to commit invoice creation"}
	}

	result := convertDBInvoiceToModel(dbInv)
	result.Items = created
	return result, nil
}

func timestamptzFromPtr(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: *t, Valid: true}
}

func textFromPtr(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
