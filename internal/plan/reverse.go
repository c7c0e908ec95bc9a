package plan

import (
	"fmt"

	"github.com/zoneops/ovhsync/internal/domain"
	"github.com/zoneops/ovhsync/internal/entities"
	"github.com/zoneops/ovhsync/internal/providers/reverse"
)

// ReverseChange converges the PTR attachment of one IP. IPReverse is the
// provider identifier of the entry a delete removes.
type ReverseChange struct {
	Type      ChangeType
	Before    string
	After     string
	IPReverse string
}

// PlanReverse diffs the desired reverse against the current one; current is
// nil when no reverse is set. A present state without a reverse value is a
// pure check: it fails when nothing is set and changes nothing otherwise.
func PlanReverse(desired *entities.ReverseSpec, current *reverse.Reverse) (*ReverseChange, error) {
	currentValue := ""
	if current != nil {
		currentValue = current.Reverse
	}

	if desired.State == entities.StateAbsent {
		if current == nil {
			return &ReverseChange{Type: ChangeTypeNoop}, nil
		}
		return &ReverseChange{Type: ChangeTypeDelete, Before: currentValue, IPReverse: current.IPReverse}, nil
	}

	if desired.Reverse == "" {
		if current == nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrReverseNotSet, desired.IP)
		}
		return &ReverseChange{Type: ChangeTypeNoop, Before: currentValue, After: currentValue}, nil
	}

	if current == nil {
		return &ReverseChange{Type: ChangeTypeCreate, After: desired.Reverse}, nil
	}
	if currentValue != desired.Reverse {
		return &ReverseChange{Type: ChangeTypeUpdate, Before: currentValue, After: desired.Reverse}, nil
	}
	return &ReverseChange{Type: ChangeTypeNoop, Before: currentValue, After: currentValue}, nil
}
