package domain

import (
	"fmt"

	"encore.dev/beta/errs"

	"encore.app/invoicing/model"
)

// transitions is the single definition of the invoice status graph. Both the
// state machine guards and the permission resolver read from it, so the
// server-enforced edges and the client-facing hints cannot drift apart.
var transitions = map[model.InvoiceStatus]map[model.Action]model.InvoiceStatus{
	model.InvoiceStatusDraft: {
		model.ActionIssue:  model.InvoiceStatusPending,
		model.ActionCancel: model.InvoiceStatusCanceled,
	},
	model.InvoiceStatusPending: {
		model.ActionPay:     model.InvoiceStatusPaid,
		model.ActionOverdue: model.InvoiceStatusOverdue,
		model.ActionCancel:  model.InvoiceStatusCanceled,
	},
	model.InvoiceStatusOverdue: {
		model.ActionPay:    model.InvoiceStatusPaid,
		model.ActionCancel: model.InvoiceStatusCanceled,
		model.ActionReopen: model.InvoiceStatusPending,
	},
	model.InvoiceStatusPaid: {
		model.ActionRefund: model.InvoiceStatusRefunded,
		model.ActionReopen: model.InvoiceStatusPending,
	},
	model.InvoiceStatusCanceled: {
		model.ActionReopen: model.InvoiceStatusPending,
	},
	model.InvoiceStatusRefunded: {},
}

// capabilities lists the actions each role may request. The system role is
// restricted to the machine-driven edges (auto-pay, overdue marking).
var capabilities = map[model.Role]map[model.Action]bool{
	model.RoleViewer: {
		model.ActionPay: true,
	},
	model.RoleOperator: {
		model.ActionIssue:  true,
		model.ActionPay:    true,
		model.ActionCancel: true,
		model.ActionRefund: true,
	},
	model.RoleAdmin: {
		model.ActionIssue:  true,
		model.ActionPay:    true,
		model.ActionCancel: true,
		model.ActionRefund: true,
		model.ActionReopen: true,
	},
	model.RoleSystem: {
		model.ActionPay:     true,
		model.ActionOverdue: true,
	},
}

// NextStatus resolves the target status for an action from the current
// status. A missing edge is an invalid transition regardless of the actor.
func NextStatus(current model.InvoiceStatus, action model.Action) (model.InvoiceStatus, error) {
	next, ok := transitions[current][action]
	if !ok {
		return "", &errs.Error{
			Code:    errs.FailedPrecondition,
			Message: fmt.Sprintf("invalid transition: no %s edge from status %s", action, current),
		}
	}
	return next, nil
}

// ActionForTarget resolves which action moves the invoice from current to
// target, for callers that request a desired status rather than an action.
func ActionForTarget(current, target model.InvoiceStatus) (model.Action, error) {
	for action, next := range transitions[current] {
		if next == target {
			return action, nil
		}
	}
	return "", &errs.Error{
		Code:    errs.FailedPrecondition,
		Message: fmt.Sprintf("invalid transition: no edge from status %s to %s", current, target),
	}
}

// RoleAllows reports whether the role holds the capability for an action.
func RoleAllows(role model.Role, action model.Action) bool {
	return capabilities[role][action]
}

// Resolve computes the advisory capability flags for a role against an
// invoice status. The flags mirror exactly what the state machine would
// permit; the presentation layer renders them but they are never trusted
// as input.
func Resolve(role model.Role, status model.InvoiceStatus) model.Capabilities {
	allowed := func(action model.Action) bool {
		if _, ok := transitions[status][action]; !ok {
			return false
		}
		return RoleAllows(role, action)
	}

	return model.Capabilities{
		CanIssue:  allowed(model.ActionIssue),
		CanPay:    allowed(model.ActionPay),
		CanCancel: allowed(model.ActionCancel),
		CanRefund: allowed(model.ActionRefund),
		CanReopen: allowed(model.ActionReopen),
	}
}
