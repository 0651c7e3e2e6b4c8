package ledger

import (
	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/payments"
)

// convertDBPaymentToModel converts a database Payment to a domain model Payment
func convertDBPaymentToModel(dbPayment payments.Payment) *model.Payment {
	payment := &model.Payment{
		ID:          dbPayment.ID,
		InvoiceID:   dbPayment.InvoiceID.Int32,
		AmountCents: dbPayment.AmountCents,
		Currency:    dbPayment.Currency,
		Method:      model.PaymentMethod(dbPayment.Method),
		Status:      model.PaymentStatus(dbPayment.Status),
		PaidAt:      dbPayment.PaidAt.Time,
		CreatedAt:   dbPayment.CreatedAt.Time,
		UpdatedAt:   dbPayment.UpdatedAt.Time,
	}

	if dbPayment.Gateway.Valid {
		payment.Gateway = &dbPayment.Gateway.String
	}

	if dbPayment.Txid.Valid {
		payment.Txid = &dbPayment.Txid.String
	}

	return payment
}
