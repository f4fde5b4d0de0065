// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// newValidator returns a validator with the "notfuture" rule, which
// rejects integer years after the current year as reported by now.
func newValidator(now func() time.Time) *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("notfuture", func(fl validator.FieldLevel) bool {
		return fl.Field().Int() <= int64(now().Year())
	})
	return v
}
