package invoicing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.temporal.io/sdk/mocks"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/invoicing/mocks/business/invoice_business"
	"encore.app/invoicing/model"
	"encore.app/invoicing/workflow"
)

func stringPtr(s string) *string {
	return &s
}

func TestUpdateInvoiceStatus(t *testing.T) {
	now := time.Now()
	dueAt := now.AddDate(0, 0, 30)

	testCases := []struct {
		name               string
		invoiceID          int
		request            *UpdateInvoiceStatusRequest
		mockReturn         *model.Invoice
		mockAction         model.Action
		mockError          error
		expectChangeStatus bool
		expectWorkflowRun  bool
		expectSignal       bool
		expectedError      string
	}{
		{
			name:      "issue_starts_lifecycle_workflow",
			invoiceID: 1,
			request: &UpdateInvoiceStatusRequest{
				ActorRole: "operator",
				ActorID:   "op-1",
				Status:    "pending",
			},
			mockReturn: &model.Invoice{
				ID:         1,
				Number:     "INV-001",
				Status:     model.InvoiceStatusPending,
				IssuedAt:   &now,
				DueAt:      &dueAt,
				WorkflowID: stringPtr("invoice-lifecycle-1"),
			},
			mockAction:         model.ActionIssue,
			expectChangeStatus: true,
			expectWorkflowRun:  true,
		},
		{
			name:      "cancel_signals_running_workflow",
			invoiceID: 2,
			request: &UpdateInvoiceStatusRequest{
				ActorRole: "operator",
				Status:    "canceled",
			},
			mockReturn: &model.Invoice{
				ID:         2,
				Number:     "INV-002",
				Status:     model.InvoiceStatusCanceled,
				WorkflowID: stringPtr("invoice-lifecycle-2"),
			},
			mockAction:         model.ActionCancel,
			expectChangeStatus: true,
			expectSignal:       true,
		},
		{
			name:      "cancel_draft_without_workflow",
			invoiceID: 3,
			request: &UpdateInvoiceStatusRequest{
				ActorRole: "operator",
				Status:    "canceled",
			},
			mockReturn: &model.Invoice{
				ID:     3,
				Number: "INV-003",
				Status: model.InvoiceStatusCanceled,
			},
			mockAction:         model.ActionCancel,
			expectChangeStatus: true,
		},
		{
			name:      "reopen_restarts_lifecycle_workflow",
			invoiceID: 4,
			request: &UpdateInvoiceStatusRequest{
				ActorRole: "admin",
				Status:    "pending",
			},
			mockReturn: &model.Invoice{
				ID:         4,
				Number:     "INV-004",
				Status:     model.InvoiceStatusPending,
				DueAt:      &dueAt,
				WorkflowID: stringPtr("invoice-lifecycle-4"),
			},
			mockAction:         model.ActionReopen,
			expectChangeStatus: true,
			expectWorkflowRun:  true,
		},
		{
			name:      "invalid_id",
			invoiceID: 0,
			request: &UpdateInvoiceStatusRequest{
				ActorRole: "operator",
				Status:    "pending",
			},
			expectedError: "invalid invoice ID",
		},
		{
			name:      "missing_actor_role",
			invoiceID: 1,
			request: &UpdateInvoiceStatusRequest{
				Status: "pending",
			},
			expectedError: "X-Actor-Role header must be one of",
		},
		{
			name:      "permission_denied",
			invoiceID: 1,
			request: &UpdateInvoiceStatusRequest{
				ActorRole: "viewer",
				Status:    "canceled",
			},
			mockError:          &errs.Error{Code: errs.PermissionDenied, Message: "role viewer may not cancel an invoice"},
			expectChangeStatus: true,
			expectedError:      "role viewer may not cancel an invoice",
		},
		{
			name:      "invalid_transition",
			invoiceID: 1,
			request: &UpdateInvoiceStatusRequest{
				ActorRole: "operator",
				Status:    "refunded",
			},
			mockError:          &errs.Error{Code: errs.FailedPrecondition, Message: "invalid transition: no edge from status draft to refunded"},
			expectChangeStatus: true,
			expectedError:      "invalid transition",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Signals run synchronously so the mock sees them before assert
			originalRunAsync := runAsync
			runAsync = func(op string, fn func(ctx context.Context) error) { _ = fn(context.Background()) }
			defer func() { runAsync = originalRunAsync }()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockBusiness := invoice_business.NewMockBusiness(ctrl)
			mockTemporal := mocks.NewClient(t)
			service := &Service{business: mockBusiness, temporal: mockTemporal}

			if tc.expectChangeStatus {
				mockBusiness.EXPECT().
					ChangeStatus(gomock.Any(), int32(tc.invoiceID), model.InvoiceStatus(tc.request.Status), gomock.Any()).
					Return(tc.mockReturn, tc.mockAction, tc.mockError)
			}

			if tc.expectWorkflowRun {
				mockTemporal.On("ExecuteWorkflow", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(nil, nil).Once()
			}

			if tc.expectSignal {
				mockTemporal.On("SignalWorkflow", mock.Anything, *tc.mockReturn.WorkflowID, "",
					workflow.StatusChangedSignalName, workflow.StatusChangedSignal{Status: string(tc.mockReturn.Status)}).
					Return(nil).Once()
			}

			response, err := service.UpdateInvoiceStatus(context.Background(), tc.invoiceID, tc.request)

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.Nil(t, response)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, response)
				assert.Equal(t, tc.mockReturn.Status, response.Invoice.Status)
				mockTemporal.AssertExpectations(t)
			}
		})
	}
}

func TestUpdateInvoiceStatusRequestValidation(t *testing.T) {
	testCases := []struct {
		name          string
		request       *UpdateInvoiceStatusRequest
		expectedError string
	}{
		{
			name:    "valid_target",
			request: &UpdateInvoiceStatusRequest{Status: "pending"},
		},
		{
			name:          "missing_status",
			request:       &UpdateInvoiceStatusRequest{},
			expectedError: "required",
		},
		{
			name:          "unknown_status",
			request:       &UpdateInvoiceStatusRequest{Status: "archived"},
			expectedError: "unknown invoice status",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.request.Validate()

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
