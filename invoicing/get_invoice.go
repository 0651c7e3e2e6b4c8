package invoicing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/invoicing/domain"
	"encore.app/invoicing/model"
)

type GetInvoiceRequest struct {
	ActorRole string `header:"X-Actor-Role" json:"-"`
	ActorID   string `header:"X-Actor-ID" json:"-"`
}

type InvoiceDetailResponse struct {
	Invoice               model.Invoice      `json:"invoice"`
	PaidBalanceCents      int64              `json:"paid_balance_cents"`
	RemainingBalanceCents int64              `json:"remaining_balance_cents"`
	Permissions           model.Capabilities `json:"permissions"`
}

//encore:api public path=/v1/invoices/:id method=GET
func (s *Service) GetInvoice(ctx context.Context, id int, req *GetInvoiceRequest) (*InvoiceDetailResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid invoice ID"}
	}

	// Reads default to the weakest role; the hints are advisory only and
	// every mutation re-checks server-side.
	actor := model.Actor{Role: model.RoleViewer}
	if req.ActorRole != "" {
		var err error
		actor, err = parseActor(req.ActorRole, req.ActorID)
		if err != nil {
			return nil, err
		}
	}

	inv, err := s.business.GetInvoice(ctx, int32(id))
	if err != nil {
		rlog.Error("failed to get invoice", "error", err, "id", id)
		return nil, err
	}

	balance, err := s.ledger.ConfirmedBalance(ctx, inv.ID)
	if err != nil {
		rlog.Error("failed to get paid balance", "error", err, "id", id)
		return nil, err
	}

	remaining := inv.TotalCents - balance
	if remaining < 0 {
		remaining = 0
	}

	return &InvoiceDetailResponse{
		Invoice:               *inv,
		PaidBalanceCents:      balance,
		RemainingBalanceCents: remaining,
		Permissions:           domain.Resolve(actor.Role, inv.Status),
	}, nil
}
