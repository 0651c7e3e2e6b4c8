package invoice

import (
	"encoding/json"

	"encore.dev/rlog"

	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/invoices"
	"encore.app/invoicing/repository/items"
)

// convertDBInvoiceToModel converts a database Invoice to a domain model Invoice
func convertDBInvoiceToModel(dbInv invoices.Invoice) *model.Invoice {
	inv := &model.Invoice{
		ID:            dbInv.ID,
		Number:        dbInv.Number,
		Currency:      dbInv.Currency,
		Status:        model.InvoiceStatus(dbInv.Status),
		SubtotalCents: dbInv.SubtotalCents,
		DiscountCents: dbInv.DiscountCents,
		TaxCents:      dbInv.TaxCents,
		TotalCents:    dbInv.TotalCents,
		CreatedAt:     dbInv.CreatedAt.Time,
		UpdatedAt:     dbInv.UpdatedAt.Time,
	}

	if dbInv.OwnerID.Valid {
		inv.OwnerID = dbInv.OwnerID.String
	}

	if dbInv.IssuedAt.Valid {
		inv.IssuedAt = &dbInv.IssuedAt.Time
	}

	if dbInv.DueAt.Valid {
		inv.DueAt = &dbInv.DueAt.Time
	}

	if dbInv.Notes.Valid {
		inv.Notes = &dbInv.Notes.String
	}

	if dbInv.WorkflowID.Valid {
		inv.WorkflowID = &dbInv.WorkflowID.String
	}

	return inv
}

// convertDBItemToModel converts a database InvoiceItem to a domain model item
func convertDBItemToModel(dbItem items.InvoiceItem) *model.InvoiceItem {
	item := &model.InvoiceItem{
		ID:             dbItem.ID,
		InvoiceID:      dbItem.InvoiceID.Int32,
		Description:    dbItem.Description,
		Qty:            dbItem.Qty,
		UnitPriceCents: dbItem.UnitPriceCents,
		LineTotalCents: dbItem.LineTotalCents,
		CreatedAt:      dbItem.CreatedAt.Time,
		UpdatedAt:      dbItem.UpdatedAt.Time,
	}

	if dbItem.ItemType.Valid {
		item.Type = dbItem.ItemType.String
	}

	if dbItem.RefID.Valid {
		item.RefID = dbItem.RefID.String
	}

	if len(dbItem.Meta) > 0 {
		var meta map[string]any
		if err := json.Unmarshal(dbItem.Meta, &meta); err != nil {
			rlog.Error("failed to unmarshal item meta", "error", err, "item_id", dbItem.ID)
		} else {
			item.Meta = meta
		}
	}

	return item
}
