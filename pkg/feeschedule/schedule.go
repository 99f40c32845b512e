// Package feeschedule models tiered upfront-cost fee curves as ordered data
// tables. A schedule is pure data; adding a jurisdiction is a table change,
// not a code change.
package feeschedule

import (
	"errors"
	"fmt"
	"math"

	"github.com/iwvelando/mortgage-math/pkg/constants"
	"github.com/iwvelando/mortgage-math/pkg/mathutil"
)

// ErrInvalidConfig reports a malformed fee schedule table. Shipped tables
// must never trip this; it exists for user-supplied schedules.
var ErrInvalidConfig = errors.New("invalid fee schedule")

// Unbounded marks the upper edge of a schedule's final tier.
const Unbounded = math.MaxFloat64

// Tier is one segment of a piecewise-linear fee curve. An amount falling at
// or below UpperBound is charged BaseFee plus MarginalRatePercent of the
// excess over MarginalBase.
type Tier struct {
	UpperBound          float64
	BaseFee             float64
	MarginalRatePercent float64
	MarginalBase        float64
}

// Schedule is an ordered, contiguous sequence of tiers. MinimumFee, when
// positive, is a floor applied to the computed fee.
type Schedule struct {
	Name       string
	MinimumFee float64
	Tiers      []Tier
}

// Validate checks that the tier table is well-formed: at least one tier,
// strictly increasing upper bounds, no gaps between a tier's marginal base
// and the previous tier's upper bound, non-negative rates, and an unbounded
// final tier.
func (s Schedule) Validate() error {
	if len(s.Tiers) == 0 {
		return fmt.Errorf("%w: schedule %q has no tiers", ErrInvalidConfig, s.Name)
	}
	if s.Tiers[0].MarginalBase != 0 {
		return fmt.Errorf("%w: schedule %q first tier must start at 0, got %.2f",
			ErrInvalidConfig, s.Name, s.Tiers[0].MarginalBase)
	}
	for i, tier := range s.Tiers {
		if tier.MarginalRatePercent < 0 {
			return fmt.Errorf("%w: schedule %q tier %d has negative rate %.2f",
				ErrInvalidConfig, s.Name, i, tier.MarginalRatePercent)
		}
		if i == 0 {
			continue
		}
		previous := s.Tiers[i-1]
		if tier.UpperBound <= previous.UpperBound {
			return fmt.Errorf("%w: schedule %q tier bounds not strictly increasing at tier %d",
				ErrInvalidConfig, s.Name, i)
		}
		if tier.MarginalBase != previous.UpperBound {
			return fmt.Errorf("%w: schedule %q has a gap before tier %d (marginal base %.2f != previous bound %.2f)",
				ErrInvalidConfig, s.Name, i, tier.MarginalBase, previous.UpperBound)
		}
	}
	if s.Tiers[len(s.Tiers)-1].UpperBound != Unbounded {
		return fmt.Errorf("%w: schedule %q final tier must be unbounded", ErrInvalidConfig, s.Name)
	}
	return nil
}

// Fee evaluates the schedule at the given amount. The schedule must have
// passed Validate; the final unbounded tier guarantees a match.
func (s Schedule) Fee(amount float64) float64 {
	for _, tier := range s.Tiers {
		if amount <= tier.UpperBound {
			fee := tier.BaseFee + tier.MarginalRatePercent/constants.PercentageMultiplier*(amount-tier.MarginalBase)
			return mathutil.Max(fee, s.MinimumFee)
		}
	}
	return s.MinimumFee
}
