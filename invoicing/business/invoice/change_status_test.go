package invoice

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/invoicing/domain"
	"encore.app/invoicing/mocks/domain/state_machine"
	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/invoices"
)

func TestChangeStatus(t *testing.T) {
	testCases := []struct {
		name            string
		target          model.InvoiceStatus
		actor           model.Actor
		currentInvoice  invoices.Invoice
		expectIssue     bool
		expectTransit   bool
		transitAction   model.Action
		mockError       error
		expectedError   string
		expectedAction  model.Action
		expectedStatus  model.InvoiceStatus
		expectedDueDays int
	}{
		{
			name:   "issue_draft_invoice",
			target: model.InvoiceStatusPending,
			actor:  model.Actor{Role: model.RoleOperator, ID: "op-1"},
			currentInvoice: invoices.Invoice{
				ID:     1,
				Number: "INV-001",
				Status: string(model.InvoiceStatusDraft),
			},
			expectIssue:     true,
			expectedAction:  model.ActionIssue,
			expectedStatus:  model.InvoiceStatusPending,
			expectedDueDays: defaultDueDays,
		},
		{
			name:   "issue_keeps_preset_due_date",
			target: model.InvoiceStatusPending,
			actor:  model.Actor{Role: model.RoleOperator, ID: "op-1"},
			currentInvoice: invoices.Invoice{
				ID:     2,
				Number: "INV-002",
				Status: string(model.InvoiceStatusDraft),
				DueAt:  pgtype.Timestamptz{Time: time.Now().AddDate(0, 0, 7), Valid: true},
			},
			expectIssue:     true,
			expectedAction:  model.ActionIssue,
			expectedStatus:  model.InvoiceStatusPending,
			expectedDueDays: 7,
		},
		{
			name:   "cancel_pending_invoice",
			target: model.InvoiceStatusCanceled,
			actor:  model.Actor{Role: model.RoleOperator, ID: "op-1"},
			currentInvoice: invoices.Invoice{
				ID:     3,
				Number: "INV-003",
				Status: string(model.InvoiceStatusPending),
			},
			expectTransit:  true,
			transitAction:  model.ActionCancel,
			expectedAction: model.ActionCancel,
			expectedStatus: model.InvoiceStatusCanceled,
		},
		{
			name:   "reopen_canceled_invoice",
			target: model.InvoiceStatusPending,
			actor:  model.Actor{Role: model.RoleAdmin, ID: "adm-1"},
			currentInvoice: invoices.Invoice{
				ID:     4,
				Number: "INV-004",
				Status: string(model.InvoiceStatusCanceled),
			},
			expectTransit:  true,
			transitAction:  model.ActionReopen,
			expectedAction: model.ActionReopen,
			expectedStatus: model.InvoiceStatusPending,
		},
		{
			name:   "refund_paid_invoice",
			target: model.InvoiceStatusRefunded,
			actor:  model.Actor{Role: model.RoleOperator, ID: "op-1"},
			currentInvoice: invoices.Invoice{
				ID:     5,
				Number: "INV-005",
				Status: string(model.InvoiceStatusPaid),
			},
			expectTransit:  true,
			transitAction:  model.ActionRefund,
			expectedAction: model.ActionRefund,
			expectedStatus: model.InvoiceStatusRefunded,
		},
		{
			name:          "unknown_target_status",
			target:        model.InvoiceStatus("archived"),
			actor:         model.Actor{Role: model.RoleAdmin, ID: "adm-1"},
			expectedError: "unknown invoice status",
		},
		{
			name:   "no_edge_for_target",
			target: model.InvoiceStatusRefunded,
			actor:  model.Actor{Role: model.RoleAdmin, ID: "adm-1"},
			currentInvoice: invoices.Invoice{
				ID:     6,
				Number: "INV-006",
				Status: string(model.InvoiceStatusDraft),
			},
			expectedError: "invalid transition",
		},
		{
			name:   "permission_denied_propagates",
			target: model.InvoiceStatusCanceled,
			actor:  model.Actor{Role: model.RoleViewer, ID: "v-1"},
			currentInvoice: invoices.Invoice{
				ID:     7,
				Number: "INV-007",
				Status: string(model.InvoiceStatusPending),
			},
			expectTransit: true,
			transitAction: model.ActionCancel,
			mockError:     &errs.Error{Code: errs.PermissionDenied, Message: "role viewer may not cancel an invoice"},
			expectedError: "role viewer may not cancel an invoice",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSM := state_machine.NewMockStateMachine(ctrl)
			mockTx := state_machine.NewMockInvoiceTx(ctrl)
			b := &business{stateMachine: mockSM}

			if tc.expectIssue || tc.expectTransit || tc.expectedError == "invalid transition" {
				mockSM.EXPECT().
					ExecuteWithLock(gomock.Any(), tc.currentInvoice.ID, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ int32, fn func(domain.InvoiceTx, invoices.Invoice) error) error {
						return fn(mockTx, tc.currentInvoice)
					})
			}

			if tc.expectIssue {
				mockTx.EXPECT().
					Issue(gomock.Any(), tc.currentInvoice, tc.actor, gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, current invoices.Invoice, _ model.Actor, issuedAt, dueAt time.Time, workflowID string) (invoices.Invoice, error) {
						assert.Equal(t, fmt.Sprintf("invoice-lifecycle-%d", current.ID), workflowID)
						assert.WithinDuration(t, issuedAt.AddDate(0, 0, tc.expectedDueDays), dueAt, 2*time.Second)

						updated := current
						updated.Status = string(model.InvoiceStatusPending)
						updated.IssuedAt = pgtype.Timestamptz{Time: issuedAt, Valid: true}
						updated.DueAt = pgtype.Timestamptz{Time: dueAt, Valid: true}
						updated.WorkflowID = pgtype.Text{String: workflowID, Valid: true}
						return updated, nil
					})
			}

			if tc.expectTransit {
				if tc.mockError != nil {
					mockTx.EXPECT().
						Transition(gomock.Any(), tc.currentInvoice, tc.transitAction, tc.actor).
						Return(invoices.Invoice{}, tc.mockError)
				} else {
					updated := tc.currentInvoice
					updated.Status = string(tc.expectedStatus)
					mockTx.EXPECT().
						Transition(gomock.Any(), tc.currentInvoice, tc.transitAction, tc.actor).
						Return(updated, nil)
				}
			}

			inv, action, err := b.ChangeStatus(context.Background(), tc.currentInvoice.ID, tc.target, tc.actor)

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.Nil(t, inv)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, inv)
				assert.Equal(t, tc.expectedAction, action)
				assert.Equal(t, tc.expectedStatus, inv.Status)
			}
		})
	}
}
