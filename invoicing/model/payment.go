package model

import (
	"time"
)

type Payment struct {
	ID          int32         `json:"id"`
	InvoiceID   int32         `json:"invoice_id"`
	AmountCents int64         `json:"amount_cents"`
	Currency    string        `json:"currency"`
	Method      PaymentMethod `json:"method"`
	Gateway     *string       `json:"gateway,omitempty"`
	Txid        *string       `json:"txid,omitempty"`
	Status      PaymentStatus `json:"status"`
	PaidAt      time.Time     `json:"paid_at"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type PaymentMethod string

const (
	PaymentMethodManual       PaymentMethod = "manual"
	PaymentMethodPix          PaymentMethod = "pix"
	PaymentMethodCreditCard   PaymentMethod = "credit_card"
	PaymentMethodBoleto       PaymentMethod = "boleto"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodManual, PaymentMethodPix, PaymentMethodCreditCard,
		PaymentMethodBoleto, PaymentMethodBankTransfer:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusConfirmed PaymentStatus = "confirmed"
	PaymentStatusFailed    PaymentStatus = "failed"
)
