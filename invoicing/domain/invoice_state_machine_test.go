package domain

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.app/invoicing/mocks/repository/invoice_repo"
	"encore.app/invoicing/mocks/repository/payment_repo"
	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/invoices"
)

func TestInvoiceTxTransition(t *testing.T) {
	testCases := []struct {
		name           string
		current        invoices.Invoice
		action         model.Action
		actor          model.Actor
		balance        int64
		expectBalance  bool
		expectUpdate   bool
		expectedStatus model.InvoiceStatus
		expectedError  string
	}{
		{
			name: "cancel_pending_invoice",
			current: invoices.Invoice{
				ID:     1,
				Status: string(model.InvoiceStatusPending),
			},
			action:         model.ActionCancel,
			actor:          model.Actor{Role: model.RoleOperator, ID: "op-1"},
			expectUpdate:   true,
			expectedStatus: model.InvoiceStatusCanceled,
		},
		{
			name: "no_edge_fails_before_any_guard",
			current: invoices.Invoice{
				ID:     2,
				Status: string(model.InvoiceStatusRefunded),
			},
			action:        model.ActionPay,
			actor:         model.Actor{Role: model.RoleAdmin, ID: "adm-1"},
			expectedError: "invalid transition",
		},
		{
			name: "viewer_may_not_cancel",
			current: invoices.Invoice{
				ID:     3,
				Status: string(model.InvoiceStatusPending),
			},
			action:        model.ActionCancel,
			actor:         model.Actor{Role: model.RoleViewer, ID: "v-1"},
			expectedError: "role viewer may not cancel an invoice",
		},
		{
			name: "pay_below_total_rejected",
			current: invoices.Invoice{
				ID:         4,
				Status:     string(model.InvoiceStatusPending),
				TotalCents: 10000,
			},
			action:        model.ActionPay,
			actor:         model.SystemActor,
			balance:       5000,
			expectBalance: true,
			expectedError: "confirmed balance has not reached the invoice total",
		},
		{
			name: "pay_at_total_transitions",
			current: invoices.Invoice{
				ID:         5,
				Status:     string(model.InvoiceStatusOverdue),
				TotalCents: 10000,
			},
			action:         model.ActionPay,
			actor:          model.SystemActor,
			balance:        10000,
			expectBalance:  true,
			expectUpdate:   true,
			expectedStatus: model.InvoiceStatusPaid,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockInvoiceRepo := invoice_repo.NewMockQuerier(ctrl)
			mockPaymentRepo := payment_repo.NewMockQuerier(ctrl)
			tx := &invoiceTx{invoices: mockInvoiceRepo, payments: mockPaymentRepo}

			if tc.expectBalance {
				mockPaymentRepo.EXPECT().
					GetConfirmedBalance(gomock.Any(), pgtype.Int4{Int32: tc.current.ID, Valid: true}).
					Return(tc.balance, nil)
			}

			if tc.expectUpdate {
				updated := tc.current
				updated.Status = string(tc.expectedStatus)
				mockInvoiceRepo.EXPECT().
					UpdateInvoiceStatus(gomock.Any(), invoices.UpdateInvoiceStatusParams{
						ID:     tc.current.ID,
						Status: string(tc.expectedStatus),
					}).
					Return(updated, nil)
			}

			updated, err := tx.Transition(context.Background(), tc.current, tc.action, tc.actor)

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, string(tc.expectedStatus), updated.Status)
			}
		})
	}
}

func TestInvoiceTxIssue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInvoiceRepo := invoice_repo.NewMockQuerier(ctrl)
	tx := &invoiceTx{invoices: mockInvoiceRepo}

	current := invoices.Invoice{
		ID:     1,
		Number: "INV-001",
		Status: string(model.InvoiceStatusDraft),
	}
	issuedAt := time.Now()
	dueAt := issuedAt.AddDate(0, 0, 30)

	mockInvoiceRepo.EXPECT().
		UpdateInvoiceIssue(gomock.Any(), invoices.UpdateInvoiceIssueParams{
			ID:         1,
			Status:     string(model.InvoiceStatusPending),
			IssuedAt:   pgtype.Timestamptz{Time: issuedAt, Valid: true},
			DueAt:      pgtype.Timestamptz{Time: dueAt, Valid: true},
			WorkflowID: pgtype.Text{String: "invoice-lifecycle-1", Valid: true},
		}).
		DoAndReturn(func(_ context.Context, arg invoices.UpdateInvoiceIssueParams) (invoices.Invoice, error) {
			updated := current
			updated.Status = arg.Status
			updated.IssuedAt = arg.IssuedAt
			updated.DueAt = arg.DueAt
			updated.WorkflowID = arg.WorkflowID
			return updated, nil
		})

	actor := model.Actor{Role: model.RoleOperator, ID: "op-1"}
	updated, err := tx.Issue(context.Background(), current, actor, issuedAt, dueAt, "invoice-lifecycle-1")

	assert.NoError(t, err)
	assert.Equal(t, string(model.InvoiceStatusPending), updated.Status)
	assert.Equal(t, "invoice-lifecycle-1", updated.WorkflowID.String)
}

func TestInvoiceTxIssueWithoutNumber(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tx := &invoiceTx{invoices: invoice_repo.NewMockQuerier(ctrl)}

	current := invoices.Invoice{ID: 1, Status: string(model.InvoiceStatusDraft)}
	actor := model.Actor{Role: model.RoleOperator, ID: "op-1"}

	_, err := tx.Issue(context.Background(), current, actor, time.Now(), time.Now().AddDate(0, 0, 30), "wf-1")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invoice number must be set before issuing")
}

func TestInvoiceTxScopesAreIndependent(t *testing.T) {
	// Each lock callback owns its own transaction scope: a write through
	// one scope must never land in another scope's repositories, even when
	// the scopes exist at the same time.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoA := invoice_repo.NewMockQuerier(ctrl)
	repoB := invoice_repo.NewMockQuerier(ctrl)
	txA := &invoiceTx{invoices: repoA}
	txB := &invoiceTx{invoices: repoB}

	invoiceA := invoices.Invoice{ID: 1, Status: string(model.InvoiceStatusPending)}
	invoiceB := invoices.Invoice{ID: 2, Status: string(model.InvoiceStatusPending)}
	actor := model.Actor{Role: model.RoleOperator, ID: "op-1"}

	repoA.EXPECT().
		UpdateInvoiceStatus(gomock.Any(), invoices.UpdateInvoiceStatusParams{
			ID:     1,
			Status: string(model.InvoiceStatusCanceled),
		}).
		Return(invoices.Invoice{ID: 1, Status: string(model.InvoiceStatusCanceled)}, nil).
		Times(1)
	repoB.EXPECT().
		UpdateInvoiceStatus(gomock.Any(), invoices.UpdateInvoiceStatusParams{
			ID:     2,
			Status: string(model.InvoiceStatusCanceled),
		}).
		Return(invoices.Invoice{ID: 2, Status: string(model.InvoiceStatusCanceled)}, nil).
		Times(1)

	updatedA, errA := txA.Transition(context.Background(), invoiceA, model.ActionCancel, actor)
	updatedB, errB := txB.Transition(context.Background(), invoiceB, model.ActionCancel, actor)

	assert.NoError(t, errA)
	assert.NoError(t, errB)
	assert.Equal(t, int32(1), updatedA.ID)
	assert.Equal(t, int32(2), updatedB.ID)
}
