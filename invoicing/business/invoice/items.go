package invoice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/invoicing/composer"
	"encore.app/invoicing/domain"
	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/invoices"
	"encore.app/invoicing/repository/items"
)

// AddItem appends an item to a persisted draft invoice. The invoice row is
// locked for the duration so the totals recompute sees a consistent item
// set. Item mutation outside draft fails: issuing freezes composition.
func (b *business) AddItem(ctx context.Context, invoiceID int32, input composer.ItemInput) (*model.InvoiceItem, error) {
	var result *model.InvoiceItem

	err := b.stateMachine.ExecuteWithLock(ctx, invoiceID, func(tx domain.InvoiceTx, current invoices.Invoice) error {
		if err := requireDraft(current); err != nil {
			return err
		}

		item, err := validateItem(input)
		if err != nil {
			return err
		}

		metaJSON, err := marshalMeta(item.Meta)
		if err != nil {
			return err
		}

		dbItem, err := tx.ItemRepo().CreateInvoiceItem(ctx, items.CreateInvoiceItemParams{
			InvoiceID:      pgtype.Int4{Int32: invoiceID, Valid: true},
			ItemType:       pgtype.Text{String: item.Type, Valid: item.Type != ""},
			RefID:          pgtype.Text{String: item.RefID, Valid: item.RefID != ""},
			Description:    item.Description,
			Qty:            item.Qty,
			UnitPriceCents: item.UnitPriceCents,
			Meta:           metaJSON,
		})
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to create invoice item"}
		}

		if err := tx.RecomputeTotals(ctx, invoiceID); err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to recompute invoice totals"}
		}

		result = convertDBItemToModel(dbItem)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// UpdateItem replaces an item on a draft invoice and recomputes totals.
func (b *business) UpdateItem(ctx context.Context, invoiceID, itemID int32, input composer.ItemInput) (*model.InvoiceItem, error) {
	var result *model.InvoiceItem

	err := b.stateMachine.ExecuteWithLock(ctx, invoiceID, func(tx domain.InvoiceTx, current invoices.Invoice) error {
		if err := requireDraft(current); err != nil {
			return err
		}

		item, err := validateItem(input)
		if err != nil {
			return err
		}

		metaJSON, err := marshalMeta(item.Meta)
		if err != nil {
			return err
		}

		itemRepo := tx.ItemRepo()
		if _, err := itemRepo.GetInvoiceItem(ctx, items.GetInvoiceItemParams{
			ID:        itemID,
			InvoiceID: pgtype.Int4{Int32: invoiceID, Valid: true},
		}); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return &errs.Error{Code: errs.NotFound, Message: "invoice item not found"}
			}
			return &errs.Error{Code: errs.Internal, Message: "failed to get invoice item"}
		}

		dbItem, err := itemRepo.UpdateInvoiceItem(ctx, items.UpdateInvoiceItemParams{
			ID:             itemID,
			InvoiceID:      pgtype.Int4{Int32: invoiceID, Valid: true},
			ItemType:       pgtype.Text{String: item.Type, Valid: item.Type != ""},
			RefID:          pgtype.Text{String: item.RefID, Valid: item.RefID != ""},
			Description:    item.Description,
			Qty:            item.Qty,
			UnitPriceCents: item.UnitPriceCents,
			Meta:           metaJSON,
		})
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to update invoice item"}
		}

		if err := tx.RecomputeTotals(ctx, invoiceID); err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to recompute invoice totals"}
		}

		result = convertDBItemToModel(dbItem)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// RemoveItem deletes an item from a draft invoice and recomputes totals.
func (b *business) RemoveItem(ctx context.Context, invoiceID, itemID int32) error {
	return b.stateMachine.ExecuteWithLock(ctx, invoiceID, func(tx domain.InvoiceTx, current invoices.Invoice) error {
		if err := requireDraft(current); err != nil {
			return err
		}

		deleted, err := tx.ItemRepo().DeleteInvoiceItem(ctx, items.DeleteInvoiceItemParams{
			ID:        itemID,
			InvoiceID: pgtype.Int4{Int32: invoiceID, Valid: true},
		})
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to delete invoice item"}
		}
		if deleted == 0 {
			return &errs.Error{Code: errs.NotFound, Message: "invoice item not found"}
		}

		if err := tx.RecomputeTotals(ctx, invoiceID); err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to recompute invoice totals"}
		}

		return nil
	})
}

// requireDraft rejects item mutation on any invoice that has left draft.
func requireDraft(current invoices.Invoice) error {
	if current.Status != string(model.InvoiceStatusDraft) {
		return &errs.Error{
			Code:    errs.FailedPrecondition,
			Message: fmt.Sprintf("items are mutable only in draft status, invoice is %s", current.Status),
		}
	}
	return nil
}

// validateItem runs a single item through the composer's validation.
func validateItem(input composer.ItemInput) (*model.InvoiceItem, error) {
	comp := composer.New()
	return comp.Add(input)
}

func marshalMeta(meta map[string]any) ([]byte, error) {
	if meta == nil {
		return nil, nil
	}
	raw, err := json.Marshal(meta)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to marshal item meta"}
	}
	return raw, nil
}
