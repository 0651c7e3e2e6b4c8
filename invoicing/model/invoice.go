package model

import (
	"time"
)

type Invoice struct {
	ID            int32         `json:"id"`
	Number        string        `json:"number"`
	OwnerID       string        `json:"owner_id,omitempty"`
	Currency      string        `json:"currency"`
	Status        InvoiceStatus `json:"status"`
	Items         []InvoiceItem `json:"items,omitempty"`
	SubtotalCents int64         `json:"subtotal_cents"`
	DiscountCents int64         `json:"discount_cents"`
	TaxCents      int64         `json:"tax_cents"`
	TotalCents    int64         `json:"total_cents"`
	IssuedAt      *time.Time    `json:"issued_at,omitempty"`
	DueAt         *time.Time    `json:"due_at,omitempty"`
	Notes         *string       `json:"notes,omitempty"`
	WorkflowID    *string       `json:"workflow_id,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

type InvoiceStatus string

const (
	InvoiceStatusDraft    InvoiceStatus = "draft"
	InvoiceStatusPending  InvoiceStatus = "pending"
	InvoiceStatusPaid     InvoiceStatus = "paid"
	InvoiceStatusOverdue  InvoiceStatus = "overdue"
	InvoiceStatusCanceled InvoiceStatus = "canceled"
	InvoiceStatusRefunded InvoiceStatus = "refunded"
)

// Valid reports whether s is a member of the closed status enumeration.
func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusPending, InvoiceStatusPaid,
		InvoiceStatusOverdue, InvoiceStatusCanceled, InvoiceStatusRefunded:
		return true
	}
	return false
}
