package invoicing

import (
	"context"

	"encore.dev/rlog"

	"encore.app/invoicing/business/invoice"
	"encore.app/invoicing/model"
)

type ListInvoicesRequest struct {
	Search string `query:"search"`
	Status string `query:"status"`
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
}

type ListInvoicesResponse struct {
	Invoices   []model.Invoice `json:"invoices"`
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
}

//encore:api public path=/v1/invoices method=GET
func (s *Service) ListInvoices(ctx context.Context, req *ListInvoicesRequest) (*ListInvoicesResponse, error) {
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.Limit <= 0 {
		req.Limit = 10
	}
	if req.Limit > 100 {
		req.Limit = 100
	}

	invoices, totalCount, err := s.business.ListInvoices(ctx, invoice.ListParams{
		Search: req.Search,
		Status: req.Status,
		Limit:  int32(req.Limit),
		Offset: int32((req.Page - 1) * req.Limit),
	})
	if err != nil {
		rlog.Error("failed to list invoices", "error", err)
		return nil, err
	}

	response := &ListInvoicesResponse{
		Invoices:   make([]model.Invoice, len(invoices)),
		TotalCount: totalCount,
		Page:       req.Page,
		Limit:      req.Limit,
	}

	for i, inv := range invoices {
		response.Invoices[i] = *inv
	}

	return response, nil
}
