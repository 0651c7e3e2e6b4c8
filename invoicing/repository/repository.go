package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.app/invoicing/repository/invoices"
	"encore.app/invoicing/repository/items"
	"encore.app/invoicing/repository/payments"
)

// Repository combines all domain-specific queriers
type Repository struct {
	Invoices invoices.Querier
	Items    items.Querier
	Payments payments.Querier
}

// NewRepository creates a new Repository with all domain queriers
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		Invoices: invoices.New(db),
		Items:    items.New(db),
		Payments: payments.New(db),
	}
}
