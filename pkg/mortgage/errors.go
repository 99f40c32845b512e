// Package mortgage implements the closed-form mortgage calculations behind
// the calculator: monthly payment amortization, affordability estimation,
// and upfront-cost breakdowns against jurisdiction fee schedules. All
// functions are pure; results are unrounded except where noted.
package mortgage

import (
	"errors"

	"github.com/iwvelando/mortgage-math/pkg/feeschedule"
)

// ErrInvalidInput reports a supplied scalar outside its domain. Errors wrap
// this sentinel so callers can discriminate with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// ErrInvalidConfig reports a malformed fee schedule table.
var ErrInvalidConfig = feeschedule.ErrInvalidConfig
