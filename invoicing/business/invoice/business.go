package invoice

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"encore.app/invoicing/composer"
	"encore.app/invoicing/domain"
	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/invoices"
	"encore.app/invoicing/repository/items"
)

// ListParams carries the list filter: free-text search over number/notes,
// an optional status filter and paging.
type ListParams struct {
	Search string
	Status string
	Limit  int32
	Offset int32
}

type Business interface {
	CreateInvoice(ctx context.Context, inv *model.Invoice) (*model.Invoice, error)
	GetInvoice(ctx context.Context, id int32) (*model.Invoice, error)
	ListInvoices(ctx context.Context, params ListParams) ([]*model.Invoice, int64, error)
	ChangeStatus(ctx context.Context, id int32, target model.InvoiceStatus, actor model.Actor) (*model.Invoice, model.Action, error)

	AddItem(ctx context.Context, invoiceID int32, input composer.ItemInput) (*model.InvoiceItem, error)
	UpdateItem(ctx context.Context, invoiceID, itemID int32, input composer.ItemInput) (*model.InvoiceItem, error)
	RemoveItem(ctx context.Context, invoiceID, itemID int32) error
}

// business handles invoice aggregate logic: creation, reads and the
// draft-only item mutations
type business struct {
	db           *pgxpool.Pool
	invoiceRepo  invoices.Querier
	itemRepo     items.Querier
	stateMachine domain.StateMachine
}

// NewInvoiceBusiness creates the invoice business layer
func NewInvoiceBusiness(
	db *pgxpool.Pool,
	invoiceRepo invoices.Querier,
	itemRepo items.Querier,
	stateMachine domain.StateMachine,
) Business {
	return &business{
		db:           db,
		invoiceRepo:  invoiceRepo,
		itemRepo:     itemRepo,
		stateMachine: stateMachine,
	}
}
