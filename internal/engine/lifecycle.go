package engine

import "fmt"

type Status string

const (
	StatusPosted    Status = "POSTED"
	StatusMatched   Status = "MATCHED"
	StatusAccepted  Status = "ACCEPTED"
	StatusPickedUp  Status = "PICKED_UP"
	StatusDelivered Status = "DELIVERED"
	StatusExpired   Status = "EXPIRED"
)

// statusOrder is the forward lifecycle. EXPIRED sits outside the order: it is
// reachable from any pre-Delivered state via the expiry signal and is never
// subject to the index rule.
var statusOrder = []Status{
	StatusPosted,
	StatusMatched,
	StatusAccepted,
	StatusPickedUp,
	StatusDelivered,
}

func statusIndex(s Status) int {
	for i, st := range statusOrder {
		if st == s {
			return i
		}
	}
	return -1
}

func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusExpired
}

func ValidStatus(s Status) bool {
	return statusIndex(s) >= 0 || s == StatusExpired
}

// TransitionPolicy controls how strict the forward-only rule is. The lenient
// default mirrors the historical behavior: any strictly forward move is legal,
// including jumps over intermediate states.
type TransitionPolicy int

const (
	TransitionSkip TransitionPolicy = iota
	TransitionAdjacent
)

// CheckTransition reports whether current -> target is a legal move under the
// given policy.
func CheckTransition(current, target Status, policy TransitionPolicy) error {
	if !ValidStatus(target) {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, target)
	}
	if !ValidStatus(current) {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, current)
	}

	if current.Terminal() {
		return fmt.Errorf("%w: %s is terminal", ErrInvalidState, current)
	}

	if target == StatusExpired {
		return nil
	}

	ci := statusIndex(current)
	ti := statusIndex(target)
	if ti <= ci {
		return fmt.Errorf("%w: cannot move from %s to %s", ErrInvalidState, current, target)
	}
	if policy == TransitionAdjacent && ti != ci+1 {
		return fmt.Errorf("%w: cannot skip from %s to %s", ErrInvalidState, current, target)
	}
	return nil
}
