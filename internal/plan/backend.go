package plan

import (
	"github.com/zoneops/ovhsync/internal/entities"
	"github.com/zoneops/ovhsync/internal/providers/lb"
)

// BackendChange is the single operation converging one backend attachment.
// Probe and weight are mutated by separate provider calls, so an update
// records which of the two differ.
type BackendChange struct {
	Type          ChangeType
	Old           *lb.Backend
	New           *lb.Backend
	ProbeChanged  bool
	WeightChanged bool
}

// PlanBackend diffs the desired attachment against the current one; current
// is nil when the IP is not attached.
func PlanBackend(desired *entities.BackendSpec, current *lb.Backend) *BackendChange {
	if desired.State == entities.StateAbsent {
		if current == nil {
			return &BackendChange{Type: ChangeTypeNoop}
		}
		return &BackendChange{Type: ChangeTypeDelete, Old: current}
	}

	want := &lb.Backend{IP: desired.IP, Probe: string(desired.Probe), Weight: desired.Weight}
	if current == nil {
		return &BackendChange{Type: ChangeTypeCreate, New: want}
	}

	ch := &BackendChange{
		Old:           current,
		New:           want,
		ProbeChanged:  current.Probe != want.Probe,
		WeightChanged: current.Weight != want.Weight,
	}
	if ch.ProbeChanged || ch.WeightChanged {
		ch.Type = ChangeTypeUpdate
	} else {
		ch.Type = ChangeTypeNoop
	}
	return ch
}
