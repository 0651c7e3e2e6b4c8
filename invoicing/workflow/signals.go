package workflow

const (
	// Signal names
	PaymentRecordedSignalName = "payment-recorded"
	StatusChangedSignalName   = "status-changed"
)

// PaymentRecordedSignal notifies the lifecycle workflow that a ledger entry
// landed. InvoicePaid is set when the payment drove the auto-pay transition.
type PaymentRecordedSignal struct {
	PaymentID   int32 `json:"payment_id"`
	InvoicePaid bool  `json:"invoice_paid"`
}

// StatusChangedSignal notifies the workflow of a manual status transition
// (cancel, refund, reopen) so it can settle or keep watching.
type StatusChangedSignal struct {
	Status string `json:"status"`
}
