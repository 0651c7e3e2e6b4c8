package invoice

import (
	"context"
	"fmt"
	"time"

	"encore.dev/beta/errs"

	"encore.app/invoicing/domain"
	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/invoices"
)

// defaultDueDays is applied when an invoice is issued without a due date.
const defaultDueDays = 30

// ChangeStatus applies a status transition requested as a target status.
// The action is derived from the edge between the persisted status and the
// target, and all guards run against the locked row. Returns the updated
// invoice and the action that was applied.
func (b *business) ChangeStatus(ctx context.Context, id int32, target model.InvoiceStatus, actor model.Actor) (*model.Invoice, model.Action, error) {
	if !target.Valid() {
		return nil, "", &errs.Error{Code: errs.InvalidArgument, Message: "status: unknown invoice status"}
	}

	var applied model.Action
	var updated invoices.Invoice

	err := b.stateMachine.ExecuteWithLock(ctx, id, func(tx domain.InvoiceTx, current invoices.Invoice) error {
		action, err := domain.ActionForTarget(model.InvoiceStatus(current.Status), target)
		if err != nil {
			return err
		}
		applied = action

		if action == model.ActionIssue {
			issuedAt := time.Now()
			dueAt := issuedAt.AddDate(0, 0, defaultDueDays)
			if current.DueAt.Valid {
				dueAt = current.DueAt.Time
			}
			workflowID := fmt.Sprintf("invoice-lifecycle-%d", current.ID)

			updated, err = tx.Issue(ctx, current, actor, issuedAt, dueAt, workflowID)
			return err
		}

		updated, err = tx.Transition(ctx, current, action, actor)
		return err
	})
	if err != nil {
		return nil, "", err
	}

	return convertDBInvoiceToModel(updated), applied, nil
}
