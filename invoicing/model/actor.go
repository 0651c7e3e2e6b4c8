package model

// Role is the closed enumeration of console roles. Ad hoc role strings from
// the client are parsed into this set before any guard runs.
type Role string

const (
	RoleViewer   Role = "viewer"
	RoleOperator Role = "operator"
	RoleAdmin    Role = "admin"

	// RoleSystem is never accepted from a request. It is the internal actor
	// used by the ledger's auto-pay transition and the lifecycle workflow.
	RoleSystem Role = "system"
)

// ParseRole maps an externally supplied role string onto the closed set.
// RoleSystem is deliberately not parseable.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleViewer, RoleOperator, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

type Actor struct {
	ID   string `json:"id,omitempty"`
	Role Role   `json:"role"`
}

// SystemActor is the actor attached to machine-driven transitions
// (ledger auto-pay, workflow overdue marking).
var SystemActor = Actor{ID: "system", Role: RoleSystem}

// Action names a requested state transition.
type Action string

const (
	ActionIssue   Action = "issue"
	ActionPay     Action = "pay"
	ActionCancel  Action = "cancel"
	ActionRefund  Action = "refund"
	ActionReopen  Action = "reopen"
	ActionOverdue Action = "overdue"
)

// Capabilities is the read-only projection of what the acting role may do
// with an invoice in its current status. It is recomputed server-side on
// every response and never accepted as input.
type Capabilities struct {
	CanIssue  bool `json:"can_issue"`
	CanPay    bool `json:"can_pay"`
	CanCancel bool `json:"can_cancel"`
	CanRefund bool `json:"can_refund"`
	CanReopen bool `json:"can_reopen"`
}
