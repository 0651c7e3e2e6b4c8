package invoicing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.temporal.io/sdk/mocks"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/invoicing/business/ledger"
	"encore.app/invoicing/mocks/business/invoice_business"
	"encore.app/invoicing/mocks/business/ledger_business"
	"encore.app/invoicing/model"
	"encore.app/invoicing/workflow"
)

func TestRecordPayment(t *testing.T) {
	testCases := []struct {
		name          string
		invoiceID     int
		request       *RecordPaymentRequest
		mockResult    *ledger.Result
		mockError     error
		expectRecord  bool
		expectSignal  bool
		expectedError string
	}{
		{
			name:      "partial_payment",
			invoiceID: 1,
			request: &RecordPaymentRequest{
				AmountCents: 6000,
				Currency:    "BRL",
				Method:      "pix",
			},
			mockResult: &ledger.Result{
				Payment:           &model.Payment{ID: 1, AmountCents: 6000, Status: model.PaymentStatusConfirmed},
				PaidBalanceCents:  6000,
				InvoicePaid:       false,
				InvoiceWorkflowID: "invoice-lifecycle-1",
			},
			expectRecord: true,
			expectSignal: true,
		},
		{
			name:      "final_payment_pays_invoice",
			invoiceID: 1,
			request: &RecordPaymentRequest{
				AmountCents: 4000,
				Currency:    "BRL",
				Method:      "pix",
				Txid:        stringPtr("t1"),
			},
			mockResult: &ledger.Result{
				Payment:           &model.Payment{ID: 2, AmountCents: 4000, Status: model.PaymentStatusConfirmed},
				PaidBalanceCents:  10000,
				InvoicePaid:       true,
				InvoiceWorkflowID: "invoice-lifecycle-1",
			},
			expectRecord: true,
			expectSignal: true,
		},
		{
			name:      "no_workflow_no_signal",
			invoiceID: 2,
			request: &RecordPaymentRequest{
				AmountCents: 100,
				Currency:    "BRL",
				Method:      "manual",
			},
			mockResult: &ledger.Result{
				Payment:          &model.Payment{ID: 3, AmountCents: 100, Status: model.PaymentStatusConfirmed},
				PaidBalanceCents: 100,
			},
			expectRecord: true,
		},
		{
			name:          "invalid_id",
			invoiceID:     0,
			request:       &RecordPaymentRequest{AmountCents: 100, Currency: "BRL", Method: "pix"},
			expectedError: "invalid invoice ID",
		},
		{
			name:      "draft_invoice_rejected",
			invoiceID: 3,
			request: &RecordPaymentRequest{
				AmountCents: 100,
				Currency:    "BRL",
				Method:      "pix",
			},
			mockError:     &errs.Error{Code: errs.FailedPrecondition, Message: "invoice has not been issued"},
			expectRecord:  true,
			expectedError: "invoice has not been issued",
		},
		{
			name:      "overpayment_rejected",
			invoiceID: 1,
			request: &RecordPaymentRequest{
				AmountCents: 100000,
				Currency:    "BRL",
				Method:      "pix",
			},
			mockError:     &errs.Error{Code: errs.FailedPrecondition, Message: "payment exceeds remaining balance"},
			expectRecord:  true,
			expectedError: "payment exceeds remaining balance",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			originalRunAsync := runAsync
			runAsync = func(op string, fn func(ctx context.Context) error) { _ = fn(context.Background()) }
			defer func() { runAsync = originalRunAsync }()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockLedger := ledger_business.NewMockBusiness(ctrl)
			mockTemporal := mocks.NewClient(t)
			service := &Service{ledger: mockLedger, temporal: mockTemporal}

			if tc.expectRecord {
				mockLedger.EXPECT().
					RecordPayment(gomock.Any(), int32(tc.invoiceID), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ int32, p *model.Payment) (*ledger.Result, error) {
						assert.Equal(t, tc.request.AmountCents, p.AmountCents)
						assert.Equal(t, tc.request.Currency, p.Currency)
						assert.Equal(t, model.PaymentMethod(tc.request.Method), p.Method)
						return tc.mockResult, tc.mockError
					})
			}

			if tc.expectSignal {
				mockTemporal.On("SignalWorkflow", mock.Anything, tc.mockResult.InvoiceWorkflowID, "",
					workflow.PaymentRecordedSignalName, workflow.PaymentRecordedSignal{
						PaymentID:   tc.mockResult.Payment.ID,
						InvoicePaid: tc.mockResult.InvoicePaid,
					}).
					Return(nil).Once()
			}

			response, err := service.RecordPayment(context.Background(), tc.invoiceID, tc.request)

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.Nil(t, response)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, response)
				assert.Equal(t, tc.mockResult.PaidBalanceCents, response.PaidBalanceCents)
				assert.Equal(t, tc.mockResult.InvoicePaid, response.InvoicePaid)
				mockTemporal.AssertExpectations(t)
			}
		})
	}
}

func TestRecordPaymentRequestValidation(t *testing.T) {
	testCases := []struct {
		name          string
		request       *RecordPaymentRequest
		expectedError string
	}{
		{
			name:    "valid_request",
			request: &RecordPaymentRequest{AmountCents: 100, Currency: "BRL", Method: "pix"},
		},
		{
			name:          "zero_amount",
			request:       &RecordPaymentRequest{Currency: "BRL", Method: "pix"},
			expectedError: "required",
		},
		{
			name:          "negative_amount",
			request:       &RecordPaymentRequest{AmountCents: -5, Currency: "BRL", Method: "pix"},
			expectedError: "min",
		},
		{
			name:          "unknown_method",
			request:       &RecordPaymentRequest{AmountCents: 100, Currency: "BRL", Method: "cash"},
			expectedError: "unknown payment method",
		},
		{
			name:          "bad_currency",
			request:       &RecordPaymentRequest{AmountCents: 100, Currency: "REAIS", Method: "pix"},
			expectedError: "len",
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

func TestConfirmPayment(t *testing.T) {
	originalRunAsync := runAsync
	runAsync = func(op string, fn func(ctx context.Context) error) { _ = fn(context.Background()) }
	defer func() { runAsync = originalRunAsync }()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := ledger_business.NewMockBusiness(ctrl)
	mockTemporal := mocks.NewClient(t)
	service := &Service{ledger: mockLedger, temporal: mockTemporal}

	result := &ledger.Result{
		Payment:           &model.Payment{ID: 5, AmountCents: 4000, Status: model.PaymentStatusConfirmed},
		PaidBalanceCents:  10000,
		InvoicePaid:       true,
		InvoiceWorkflowID: "invoice-lifecycle-1",
	}

	mockLedger.EXPECT().
		ConfirmPayment(gomock.Any(), int32(1), int32(5)).
		Return(result, nil)
	mockTemporal.On("SignalWorkflow", mock.Anything, "invoice-lifecycle-1", "",
		workflow.PaymentRecordedSignalName, workflow.PaymentRecordedSignal{PaymentID: 5, InvoicePaid: true}).
		Return(nil).Once()

	response, err := service.ConfirmPayment(context.Background(), 1, 5)

	assert.NoError(t, err)
	assert.NotNil(t, response)
	assert.True(t, response.InvoicePaid)
	assert.Equal(t, int64(10000), response.PaidBalanceCents)
	mockTemporal.AssertExpectations(t)
}

func TestListPayments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBusiness := invoice_business.NewMockBusiness(ctrl)
	mockLedger := ledger_business.NewMockBusiness(ctrl)
	service := &Service{business: mockBusiness, ledger: mockLedger}

	mockBusiness.EXPECT().
		GetInvoice(gomock.Any(), int32(1)).
		Return(&model.Invoice{ID: 1, Status: model.InvoiceStatusPending}, nil)
	mockLedger.EXPECT().
		ListPayments(gomock.Any(), int32(1)).
		Return([]model.Payment{
			{ID: 1, AmountCents: 6000, Status: model.PaymentStatusConfirmed},
			{ID: 2, AmountCents: 4000, Status: model.PaymentStatusPending},
		}, nil)
	mockLedger.EXPECT().
		ConfirmedBalance(gomock.Any(), int32(1)).
		Return(int64(6000), nil)

	response, err := service.ListPayments(context.Background(), 1)

	assert.NoError(t, err)
	assert.Len(t, response.Payments, 2)
	assert.Equal(t, int64(6000), response.PaidBalanceCents)
}
