package workflow

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"encore.dev/beta/errs"

	"encore.app/invoicing/business/invoice"
	"encore.app/invoicing/model"
)

// ActivityDependencies holds the dependencies needed by activities
type ActivityDependencies struct {
	InvoiceBusiness invoice.Business
}

var activityDeps *ActivityDependencies

// SetActivityDependencies sets the dependencies for activities
func SetActivityDependencies(invoiceBusiness invoice.Business) {
	activityDeps = &ActivityDependencies{
		InvoiceBusiness: invoiceBusiness,
	}
}

// MarkOverdueActivity transitions an unpaid invoice to overdue once the due
// date passes. A FailedPrecondition from the state machine means the
// invoice settled between the timer firing and the activity running; that
// is not a failure.
func MarkOverdueActivity(ctx context.Context, invoiceID int32) error {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing mark overdue activity", "invoiceID", invoiceID)

	if activityDeps == nil || activityDeps.InvoiceBusiness == nil {
		logger.Error("Activity dependencies not set")
		return temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	_, _, err := activityDeps.InvoiceBusiness.ChangeStatus(ctx, invoiceID, model.InvoiceStatusOverdue, model.SystemActor)
	if err != nil {
		var e *errs.Error
		if errors.As(err, &e) && e.Code == errs.FailedPrecondition {
			logger.Info("Invoice no longer eligible for overdue marking", "invoiceID", invoiceID, "error", err)
			return nil
		}
		logger.Error("Failed to mark invoice overdue", "invoiceID", invoiceID, "error", err)
		return err
	}

	logger.Info("Successfully marked invoice overdue", "invoiceID", invoiceID)
	return nil
}
