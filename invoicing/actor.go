package invoicing

import (
	"encore.dev/beta/errs"

	"encore.app/invoicing/model"
)

// parseActor maps the gateway-supplied role header onto the closed role
// enumeration. The gateway authenticates the session; this service only
// trusts the role after it parses into the known set.
func parseActor(roleHeader, actorID string) (model.Actor, error) {
	role, ok := model.ParseRole(roleHeader)
	if !ok {
		return model.Actor{}, &errs.Error{
			Code:    errs.InvalidArgument,
			Message: "X-Actor-Role header must be one of: viewer, operator, admin",
		}
	}

	return model.Actor{ID: actorID, Role: role}, nil
}
