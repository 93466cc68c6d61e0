package engine

import (
	"fmt"
	"math"

	"github.com/foodbridge/foodbridge/internal/repository"
)

// ReservePolicy controls what happens when a reservation exceeds remaining
// capacity. Clamping is the historical behavior: an org can top up to 100%
// utilization but never past it.
type ReservePolicy int

const (
	ReserveClamp ReservePolicy = iota
	ReserveStrict
)

// Ledger tracks an org's daily intake capacity.
type Ledger struct {
	Policy ReservePolicy
}

func (l Ledger) Remaining(org *repository.Org) int {
	remaining := org.DailyCapacity - org.UsedCapacity
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (l Ledger) RemainingPercent(org *repository.Org) float64 {
	if org.DailyCapacity <= 0 {
		return 0
	}
	return float64(l.Remaining(org)) / float64(org.DailyCapacity) * 100
}

func (l Ledger) Utilization(org *repository.Org) int {
	if org.DailyCapacity <= 0 {
		return 0
	}
	return int(math.Round(float64(org.UsedCapacity) / float64(org.DailyCapacity) * 100))
}

// Reserve consumes capacity on the org in place and returns the amount
// actually consumed. Under ReserveStrict a reservation past the remaining
// capacity is rejected instead of clamped.
func (l Ledger) Reserve(org *repository.Org, amount int) (int, error) {
	if amount < 0 {
		return 0, fmt.Errorf("%w: reserve amount must be non-negative, got %d", ErrValidation, amount)
	}

	remaining := l.Remaining(org)
	if amount > remaining {
		if l.Policy == ReserveStrict {
			return 0, fmt.Errorf("%w: reservation of %d exceeds remaining capacity %d", ErrValidation, amount, remaining)
		}
		org.UsedCapacity = org.DailyCapacity
		return remaining, nil
	}

	org.UsedCapacity += amount
	return amount, nil
}
