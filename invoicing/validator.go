package invoicing

import (
	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance used by all request types
var validate = validator.New()
