package model

import (
	"time"
)

type InvoiceItem struct {
	ID             int32          `json:"id"`
	InvoiceID      int32          `json:"invoice_id"`
	Type           string         `json:"type,omitempty"`
	RefID          string         `json:"ref_id,omitempty"`
	Description    string         `json:"description"`
	Qty            int64          `json:"qty"`
	UnitPriceCents int64          `json:"unit_price_cents"`
	LineTotalCents int64          `json:"line_total_cents"`
	Meta           map[string]any `json:"meta,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// LineTotal computes qty x unit price. The persisted line_total_cents column
// is written from the same expression in SQL; this helper serves draft items
// that have no row yet.
func (i *InvoiceItem) LineTotal() int64 {
	return i.Qty * i.UnitPriceCents
}
