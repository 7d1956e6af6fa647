package usecase

import (
	"time"

	"github.com/halcyon-ops/hourglass/pkg/domain/model"
)

// DefaultPeriodWindow is how many pay periods back the navigator exposes
// (the current period plus six before it).
const DefaultPeriodWindow = 7

// PeriodNavigator tracks a selected pay-period offset within a bounded
// look-back window. It never navigates past the current period forward nor
// beyond the retention window backward.
type PeriodNavigator struct {
	windowSize int
	offset     int
}

// NewPeriodNavigator creates a navigator with the given window size,
// positioned on the current period. Sizes below 1 fall back to the default.
func NewPeriodNavigator(windowSize int) *PeriodNavigator {
	if windowSize < 1 {
		windowSize = DefaultPeriodWindow
	}
	return &PeriodNavigator{windowSize: windowSize}
}

// ListAvailablePeriods returns the selectable periods, newest first: offsets
// 0 through -(windowSize-1) relative to the reference date.
func (n *PeriodNavigator) ListAvailablePeriods(ref time.Time) []model.PayPeriod {
	periods := make([]model.PayPeriod, 0, n.windowSize)
	for i := 0; i < n.windowSize; i++ {
		periods = append(periods, model.CalculatePeriod(ref, -i))
	}
	return periods
}

// ChangePeriod selects a new offset, clamped to the navigator's bounds, and
// returns the resulting period. Out-of-range requests land on the nearest
// bound instead of erroring.
func (n *PeriodNavigator) ChangePeriod(ref time.Time, offset int) model.PayPeriod {
	n.offset = clampOffset(offset, n.windowSize)
	return model.CalculatePeriod(ref, n.offset)
}

// Current returns the period at the navigator's selected offset.
func (n *PeriodNavigator) Current(ref time.Time) model.PayPeriod {
	return model.CalculatePeriod(ref, n.offset)
}

// Offset returns the selected offset.
func (n *PeriodNavigator) Offset() int {
	return n.offset
}

func clampOffset(offset, windowSize int) int {
	if offset > 0 {
		return 0
	}
	if min := -(windowSize - 1); offset < min {
		return min
	}
	return offset
}
