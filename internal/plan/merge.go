package plan

import (
	"fmt"
)

// Merge combines the change sets of several desired records targeting the
// same zone so the zone is mutated and refreshed once per invocation. Two
// declarations touching the same live record would break the disjoint
// identifier invariant, so that is rejected rather than resolved silently.
func Merge(zone string, sets ...*ChangeSet) (*ChangeSet, error) {
	merged := NewChangeSet(zone)
	seen := make(map[string]string)

	claim := func(id, op string) error {
		if prev, ok := seen[id]; ok {
			return fmt.Errorf("conflicting declarations for record %s in zone %s: %s and %s", id, zone, prev, op)
		}
		seen[id] = op
		return nil
	}

	for _, cs := range sets {
		if cs.Zone != zone {
			return nil, fmt.Errorf("change set for zone %s cannot merge into zone %s", cs.Zone, zone)
		}
		for _, del := range cs.Deletes {
			if err := claim(del.ID, "delete"); err != nil {
				return nil, err
			}
			merged.Deletes = append(merged.Deletes, del)
		}
		for _, upd := range cs.Updates {
			if err := claim(upd.ID, "update"); err != nil {
				return nil, err
			}
			merged.Updates = append(merged.Updates, upd)
		}
		merged.Creates = append(merged.Creates, cs.Creates...)
	}
	return merged, nil
}
