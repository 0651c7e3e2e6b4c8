package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

// InvoiceLifecycleParams contains parameters for starting the lifecycle workflow
type InvoiceLifecycleParams struct {
	InvoiceID int32     `json:"invoice_id"`
	DueAt     time.Time `json:"due_at"`
}

// InvoiceLifecycle watches an issued invoice until it settles. It arms a
// timer for the due date and marks the invoice overdue if the timer fires
// before the ledger reports full payment. Payment and status signals end
// the watch when the invoice reaches a settled state.
func InvoiceLifecycle(ctx workflow.Context, params InvoiceLifecycleParams) error {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting invoice lifecycle workflow", "invoiceID", params.InvoiceID, "dueAt", params.DueAt)

	dueIn := params.DueAt.Sub(workflow.Now(ctx))
	var dueTimer workflow.Future
	if dueIn > 0 {
		dueTimer = workflow.NewTimer(ctx, dueIn)
	} else {
		// Issued already past due (reopen after the due date): mark immediately
		logger.Info("Due date already passed, marking overdue", "invoiceID", params.InvoiceID)
		if err := markOverdue(ctx, params.InvoiceID); err != nil {
			return err
		}
	}

	paymentCh := workflow.GetSignalChannel(ctx, PaymentRecordedSignalName)
	statusCh := workflow.GetSignalChannel(ctx, StatusChangedSignalName)

	settled := false

	for !settled {
		selector := workflow.NewSelector(ctx)

		selector.AddReceive(paymentCh, func(c workflow.ReceiveChannel, more bool) {
			var signal PaymentRecordedSignal
			c.Receive(ctx, &signal)
			logger.Info("Payment recorded", "invoiceID", params.InvoiceID, "paymentID", signal.PaymentID, "invoicePaid", signal.InvoicePaid)
			if signal.InvoicePaid {
				settled = true
			}
		})

		selector.AddReceive(statusCh, func(c workflow.ReceiveChannel, more bool) {
			var signal StatusChangedSignal
			c.Receive(ctx, &signal)
			logger.Info("Invoice status changed", "invoiceID", params.InvoiceID, "status", signal.Status)
			switch signal.Status {
			case "paid", "canceled", "refunded":
				settled = true
			}
		})

		if dueTimer != nil {
			selector.AddFuture(dueTimer, func(f workflow.Future) {
				dueTimer = nil
				logger.Info("Due date reached, marking invoice overdue", "invoiceID", params.InvoiceID)
				if err := markOverdue(ctx, params.InvoiceID); err != nil {
					logger.Error("Failed to mark invoice overdue", "invoiceID", params.InvoiceID, "error", err)
				}
			})
		}

		selector.Select(ctx)
	}

	logger.Info("Invoice lifecycle workflow completed", "invoiceID", params.InvoiceID)
	return nil
}

// markOverdue executes the MarkOverdue activity
func markOverdue(ctx workflow.Context, invoiceID int32) error {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    15 * time.Second,
			MaximumAttempts:    6,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	return workflow.ExecuteActivity(activityCtx, MarkOverdueActivity, invoiceID).Get(ctx, nil)
}
