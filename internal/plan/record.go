package plan

import (
	"github.com/zoneops/ovhsync/internal/entities"
	"github.com/zoneops/ovhsync/internal/providers/dns"
)

// PlanRecord computes the ChangeSet converging the live records of a zone to
// one DesiredRecord. It performs no I/O; live is the snapshot fetched for this
// invocation. The planner applies its own name/type filtering, so the result
// does not depend on how narrowly the caller fetched.
func PlanRecord(desired *entities.DesiredRecord, live []dns.Record) (*ChangeSet, error) {
	cs := NewChangeSet(desired.Domain)

	switch desired.State {
	case entities.StateAppend:
		// Appending adds one more value to the set and never disturbs
		// existing records, duplicates included.
		cs.Creates = append(cs.Creates, specFor(desired))
		return cs, nil
	case entities.StatePresent:
		if desired.Replace != "" {
			return planReplace(cs, desired, live)
		}
		return planPresent(cs, desired, live)
	case entities.StateAbsent:
		return planAbsent(cs, desired, live)
	}
	return cs, nil
}

func specFor(desired *entities.DesiredRecord) dns.RecordSpec {
	return dns.RecordSpec{
		SubDomain: desired.Name,
		FieldType: string(desired.Type),
		Target:    desired.Value,
		TTL:       desired.TTL,
	}
}

// planPresent is the idempotent-create path: an exact (name, type, value)
// match means the record exists; only a differing ttl is corrected. Sibling
// values under the same name are left alone.
func planPresent(cs *ChangeSet, desired *entities.DesiredRecord, live []dns.Record) (*ChangeSet, error) {
	found := false
	for _, r := range live {
		if r.SubDomain != desired.Name || r.FieldType != string(desired.Type) {
			continue
		}
		if r.Target != desired.Value {
			continue
		}
		found = true
		if r.TTL != desired.TTL {
			cs.Updates = append(cs.Updates, RecordUpdate{ID: r.ID, Old: r, Spec: specFor(desired)})
		}
	}
	if !found {
		cs.Creates = append(cs.Creates, specFor(desired))
	}
	return cs, nil
}

// planReplace retargets every record of (name, type) whose value matches the
// replace pattern. All matches are updated, not just the first. Matches
// already at the desired value and ttl are skipped so a second run is a no-op.
func planReplace(cs *ChangeSet, desired *entities.DesiredRecord, live []dns.Record) (*ChangeSet, error) {
	matcher, err := entities.NewMatcher(desired.Replace)
	if err != nil {
		return nil, err
	}

	matched := false
	for _, r := range live {
		if r.SubDomain != desired.Name || r.FieldType != string(desired.Type) {
			continue
		}
		if !matcher.Matches(r.Target) {
			continue
		}
		matched = true
		if r.Target == desired.Value && r.TTL == desired.TTL {
			continue
		}
		cs.Updates = append(cs.Updates, RecordUpdate{ID: r.ID, Old: r, Spec: specFor(desired)})
	}

	if !matched && desired.Create {
		cs.Creates = append(cs.Creates, specFor(desired))
	}
	return cs, nil
}

// planAbsent deletes the records selected by the desired constraints: exact
// value, (name, type), name alone, or a removes pattern over values. With a
// removes pattern and an empty name the name is unconstrained, enabling
// zone-wide cleanup of e.g. expired validation-challenge TXT records.
func planAbsent(cs *ChangeSet, desired *entities.DesiredRecord, live []dns.Record) (*ChangeSet, error) {
	var matcher *entities.Matcher
	if desired.Removes != "" {
		var err error
		matcher, err = entities.NewMatcher(desired.Removes)
		if err != nil {
			return nil, err
		}
	}

	nameConstrained := matcher == nil || desired.Name != ""

	for _, r := range live {
		if nameConstrained && r.SubDomain != desired.Name {
			continue
		}
		if desired.Type != "" && r.FieldType != string(desired.Type) {
			continue
		}
		if desired.Value != "" && r.Target != desired.Value {
			continue
		}
		if matcher != nil && !matcher.Matches(r.Target) {
			continue
		}
		cs.Deletes = append(cs.Deletes, RecordDelete{ID: r.ID, Old: r})
	}
	return cs, nil
}
