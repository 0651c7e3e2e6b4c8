package invoice

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/invoices"
)

// ListInvoices returns a page of invoices matching the search and status
// filters, plus the total count for pagination.
func (b *business) ListInvoices(ctx context.Context, params ListParams) ([]*model.Invoice, int64, error) {
	if params.Status != "" && !model.InvoiceStatus(params.Status).Valid() {
		return nil, 0, &errs.Error{Code: errs.InvalidArgument, Message: "status: unknown invoice status"}
	}

	search := pgtype.Text{String: params.Search, Valid: params.Search != ""}
	status := pgtype.Text{String: params.Status, Valid: params.Status != ""}

	dbInvoices, err := b.invoiceRepo.ListInvoices(ctx, invoices.ListInvoicesParams{
		Search: search,
		Status: status,
		Limit:  params.Limit,
		Offset: params.Offset,
	})
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to list invoices"}
	}

	totalCount, err := b.invoiceRepo.CountInvoices(ctx, invoices.CountInvoicesParams{
		Search: search,
		Status: status,
	})
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to count invoices"}
	}

	result := make([]*model.Invoice, len(dbInvoices))
	for i, dbInv := range dbInvoices {
		result[i] = convertDBInvoiceToModel(dbInv)
	}

	return result, totalCount, nil
}
