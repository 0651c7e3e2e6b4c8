package invoicing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"encore.app/invoicing/domain"
	"encore.app/invoicing/model"
	"encore.app/invoicing/workflow"
)

type UpdateInvoiceStatusRequest struct {
	ActorRole string `header:"X-Actor-Role" json:"-"`
	ActorID   string `header:"X-Actor-ID" json:"-"`

	Status string `json:"status" validate:"required"`
}

type UpdateInvoiceStatusResponse struct {
	Invoice     model.Invoice      `json:"invoice"`
	Permissions model.Capabilities `json:"permissions"`
}

//encore:api public path=/v1/invoices/:id/status method=PATCH
func (s *Service) UpdateInvoiceStatus(ctx context.Context, id int, req *UpdateInvoiceStatusRequest) (*UpdateInvoiceStatusResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid invoice ID"}
	}

	actor, err := parseActor(req.ActorRole, req.ActorID)
	if err != nil {
		return nil, err
	}

	inv, action, err := s.business.ChangeStatus(ctx, int32(id), model.InvoiceStatus(req.Status), actor)
	if err != nil {
		rlog.Error("failed to change invoice status", "error", err, "id", id, "target", req.Status)
		return nil, err
	}

	switch action {
	case model.ActionIssue, model.ActionReopen:
		// Issue and reopen both leave the invoice pending, which needs a
		// live lifecycle workflow watching the due date. The transition
		// has committed; a workflow start failure is logged, not surfaced.
		if wfErr := s.startLifecycleWorkflow(ctx, inv); wfErr != nil {
			rlog.Error("workflow start issue", "invoice_id", inv.ID, "error", wfErr)
		}
	default:
		if inv.WorkflowID != nil {
			workflowID := *inv.WorkflowID
			status := inv.Status
			runAsync("signal-status-changed", func(ctx context.Context) error {
				return s.signalStatusChanged(ctx, workflowID, status)
			})
		}
	}

	return &UpdateInvoiceStatusResponse{
		Invoice:     *inv,
		Permissions: domain.Resolve(actor.Role, inv.Status),
	}, nil
}

// Validate implements validation for UpdateInvoiceStatusRequest
func (r *UpdateInvoiceStatusRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	if !model.InvoiceStatus(r.Status).Valid() {
		return &errs.Error{Code: errs.InvalidArgument, Message: "status: unknown invoice status"}
	}

	return nil
}

// startLifecycleWorkflow starts the Temporal workflow that watches an
// issued invoice until it settles
func (s *Service) startLifecycleWorkflow(ctx context.Context, inv *model.Invoice) error {
	if inv.WorkflowID == nil || inv.DueAt == nil {
		return nil
	}

	options := client.StartWorkflowOptions{
		ID:        *inv.WorkflowID,
		TaskQueue: taskQueue,
	}

	params := workflow.InvoiceLifecycleParams{
		InvoiceID: inv.ID,
		DueAt:     *inv.DueAt,
	}

	_, err := s.temporal.ExecuteWorkflow(ctx, options, workflow.InvoiceLifecycle, params)
	if err != nil {
		// Reopen re-issues against the same workflow id; already started is benign
		if temporal.IsWorkflowExecutionAlreadyStartedError(err) {
			rlog.Info("workflow already started", "invoice_id", inv.ID, "workflow_id", *inv.WorkflowID)
			return nil
		}
		return err
	}
	return nil
}

// signalStatusChanged tells the lifecycle workflow about a manual transition
func (s *Service) signalStatusChanged(ctx context.Context, workflowID string, status model.InvoiceStatus) error {
	signal := workflow.StatusChangedSignal{
		Status: string(status),
	}

	return s.temporal.SignalWorkflow(ctx, workflowID, "", workflow.StatusChangedSignalName, signal)
}
