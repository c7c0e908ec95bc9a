package plan

import (
	"testing"

	"github.com/zoneops/ovhsync/internal/entities"
	"github.com/zoneops/ovhsync/internal/providers/dns"
)

func desired(mutate func(*entities.DesiredRecord)) *entities.DesiredRecord {
	d := &entities.DesiredRecord{
		Domain: "example.com",
		Name:   "www",
		Type:   entities.RecordTypeA,
		Value:  "10.0.0.1",
		TTL:    3600,
		State:  entities.StatePresent,
	}
	if mutate != nil {
		mutate(d)
	}
	return d
}

func record(id, name, fieldType, target string, ttl int) dns.Record {
	return dns.Record{
		ID:        id,
		Zone:      "example.com",
		SubDomain: name,
		FieldType: fieldType,
		Target:    target,
		TTL:       ttl,
	}
}

func assertCounts(t *testing.T, cs *ChangeSet, deletes, updates, creates int) {
	t.Helper()
	if len(cs.Deletes) != deletes || len(cs.Updates) != updates || len(cs.Creates) != creates {
		t.Errorf("expected %d/%d/%d changes, got %s", deletes, updates, creates, cs.Summary())
	}
}

func TestPlanRecord_PresentCreatesWhenMissing(t *testing.T) {
	cs, err := PlanRecord(desired(nil), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertCounts(t, cs, 0, 0, 1)

	spec := cs.Creates[0]
	if spec.SubDomain != "www" || spec.FieldType != "A" || spec.Target != "10.0.0.1" || spec.TTL != 3600 {
		t.Errorf("unexpected create spec: %+v", spec)
	}
}

func TestPlanRecord_PresentIsIdempotent(t *testing.T) {
	live := []dns.Record{record("1", "www", "A", "10.0.0.1", 3600)}

	cs, err := PlanRecord(desired(nil), live)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cs.IsEmpty() {
		t.Errorf("expected empty change set, got %s", cs.Summary())
	}
}

func TestPlanRecord_PresentUpdatesTTLOnly(t *testing.T) {
	live := []dns.Record{record("1", "www", "A", "10.0.0.1", 300)}

	cs, err := PlanRecord(desired(nil), live)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertCounts(t, cs, 0, 1, 0)
	if cs.Updates[0].ID != "1" || cs.Updates[0].Spec.TTL != 3600 {
		t.Errorf("unexpected update: %+v", cs.Updates[0])
	}
}

func TestPlanRecord_PresentLeavesSiblingValuesAlone(t *testing.T) {
	live := []dns.Record{
		record("1", "db1", "A", "10.0.0.1", 3600),
		record("2", "db1", "A", "10.0.0.2", 3600),
	}
	d := desired(func(d *entities.DesiredRecord) {
		d.Name = "db1"
		d.Value = "10.0.0.3"
	})

	cs, err := PlanRecord(d, live)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertCounts(t, cs, 0, 0, 1)
	if cs.Creates[0].Target != "10.0.0.3" {
		t.Errorf("unexpected create target: %s", cs.Creates[0].Target)
	}
}

func TestPlanRecord_PresentIgnoresOtherNamesAndTypes(t *testing.T) {
	live := []dns.Record{
		record("1", "mail", "A", "10.0.0.1", 3600),
		record("2", "www", "AAAA", "::1", 3600),
	}

	cs, err := PlanRecord(desired(nil), live)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertCounts(t, cs, 0, 0, 1)
}

func TestPlanRecord_AppendAlwaysCreates(t *testing.T) {
	live := []dns.Record{record("1", "www", "A", "10.0.0.1", 3600)}
	d := desired(func(d *entities.DesiredRecord) {
		d.State = entities.StateAppend
	})

	cs, err := PlanRecord(d, live)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertCounts(t, cs, 0, 0, 1)
}

func TestPlanRecord_ReplaceUpdatesAllMatches(t *testing.T) {
	live := []dns.Record{
		record("1", "db1", "A", "10.10.10.1", 3600),
		record("2", "db1", "A", "10.10.10.2", 3600),
		record("3", "db2", "A", "10.10.10.3", 3600),
	}
	d := desired(func(d *entities.DesiredRecord) {
		d.Name = "db1"
		d.Value = "10.10.10.25"
		d.Replace = "10\\.10\\.10\\.[0-9]*"
	})

	cs, err := PlanRecord(d, live)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertCounts(t, cs, 0, 2, 0)
	for _, upd := range cs.Updates {
		if upd.Spec.Target != "10.10.10.25" {
			t.Errorf("update %s: expected target 10.10.10.25, got %s", upd.ID, upd.Spec.Target)
		}
		if upd.Old.SubDomain != "db1" {
			t.Errorf("update %s touched name %s", upd.ID, upd.Old.SubDomain)
		}
	}
}

func TestPlanRecord_ReplaceSkipsConvergedMatches(t *testing.T) {
	// The pattern matches the desired value itself, so a second run after
	// convergence must plan nothing.
	live := []dns.Record{record("1", "db1", "A", "10.10.10.25", 3600)}
	d := desired(func(d *entities.DesiredRecord) {
		d.Name = "db1"
		d.Value = "10.10.10.25"
		d.Replace = "10\\.10\\.10\\.[0-9]*"
	})

	cs, err := PlanRecord(d, live)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cs.IsEmpty() {
		t.Errorf("expected empty change set, got %s", cs.Summary())
	}
}

func TestPlanRecord_ReplaceNoMatchWithoutCreate(t *testing.T) {
	live := []dns.Record{record("1", "db1", "A", "192.168.1.1", 3600)}
	d := desired(func(d *entities.DesiredRecord) {
		d.Name = "db1"
		d.Value = "10.10.10.25"
		d.Replace = "10\\.10\\.10\\.[0-9]*"
	})

	cs, err := PlanRecord(d, live)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cs.IsEmpty() {
		t.Errorf("expected empty change set, got %s", cs.Summary())
	}
}

func TestPlanRecord_ReplaceNoMatchWithCreate(t *testing.T) {
	live := []dns.Record{record("1", "db1", "A", "192.168.1.1", 3600)}
	d := desired(func(d *entities.DesiredRecord) {
		d.Name = "db1"
		d.Value = "10.10.10.25"
		d.Replace = "10\\.10\\.10\\.[0-9]*"
		d.Create = true
	})

	cs, err := PlanRecord(d, live)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertCounts(t, cs, 0, 0, 1)
}

func TestPlanRecord_AbsentByExactValue(t *testing.T) {
	live := []dns.Record{
		record("1", "www", "A", "10.0.0.1", 3600),
		record("2", "www", "A", "10.0.0.2", 3600),
	}
	d := desired(func(d *entities.DesiredRecord) {
		d.State = entities.StateAbsent
	})

	cs, err := PlanRecord(d, live)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertCounts(t, cs, 1, 0, 0)
	if cs.Deletes[0].ID != "1" {
		t.Errorf("expected delete of record 1, got %s", cs.Deletes[0].ID)
	}
}

func TestPlanRecord_AbsentByNameAndType(t *testing.T) {
	live := []dns.Record{
		record("1", "www", "A", "10.0.0.1", 3600),
		record("2", "www", "A", "10.0.0.2", 3600),
		record("3", "www", "AAAA", "::1", 3600),
	}
	d := desired(func(d *entities.DesiredRecord) {
		d.State = entities.StateAbsent
		d.Value = ""
	})

	cs, err := PlanRecord(d, live)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertCounts(t, cs, 2, 0, 0)
}

func TestPlanRecord_AbsentByNameAlone(t *testing.T) {
	live := []dns.Record{
		record("1", "www", "A", "10.0.0.1", 3600),
		record("2", "www", "AAAA", "::1", 3600),
		record("3", "mail", "A", "10.0.0.9", 3600),
	}
	d := desired(func(d *entities.DesiredRecord) {
		d.State = entities.StateAbsent
		d.Type = ""
		d.Value = ""
	})

	cs, err := PlanRecord(d, live)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertCounts(t, cs, 2, 0, 0)
}

func TestPlanRecord_AbsentRemovesAcrossNames(t *testing.T) {
	// Empty name plus a removes pattern leaves the name unconstrained,
	// sweeping matching values out of the whole zone.
	live := []dns.Record{
		record("1", "_acme.www", "TXT", "challenge-abc", 600),
		record("2", "_acme.mail", "TXT", "challenge-def", 600),
		record("3", "", "TXT", "v=spf1 -all", 600),
	}
	d := desired(func(d *entities.DesiredRecord) {
		d.Name = ""
		d.Type = entities.RecordTypeTXT
		d.Value = ""
		d.State = entities.StateAbsent
		d.Removes = "challenge-.*"
	})

	cs, err := PlanRecord(d, live)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertCounts(t, cs, 2, 0, 0)
	for _, del := range cs.Deletes {
		if del.Old.Target == "v=spf1 -all" {
			t.Errorf("removes pattern deleted a non-matching record")
		}
	}
}

func TestPlanRecord_AbsentRemovesWithNameConstrained(t *testing.T) {
	live := []dns.Record{
		record("1", "www", "A", "10.0.0.1", 3600),
		record("2", "mail", "A", "10.0.0.2", 3600),
	}
	d := desired(func(d *entities.DesiredRecord) {
		d.Value = ""
		d.State = entities.StateAbsent
		d.Removes = "10\\.0\\.0\\.[0-9]+"
	})

	cs, err := PlanRecord(d, live)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertCounts(t, cs, 1, 0, 0)
	if cs.Deletes[0].Old.SubDomain != "www" {
		t.Errorf("expected delete under www, got %s", cs.Deletes[0].Old.SubDomain)
	}
}

func TestPlanRecord_AbsentNothingMatches(t *testing.T) {
	live := []dns.Record{record("1", "mail", "A", "10.0.0.9", 3600)}
	d := desired(func(d *entities.DesiredRecord) {
		d.State = entities.StateAbsent
	})

	cs, err := PlanRecord(d, live)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cs.IsEmpty() {
		t.Errorf("expected empty change set, got %s", cs.Summary())
	}
}

func TestPlanRecord_ApexName(t *testing.T) {
	live := []dns.Record{record("1", "", "A", "10.0.0.1", 3600)}
	d := desired(func(d *entities.DesiredRecord) {
		d.Name = ""
	})

	cs, err := PlanRecord(d, live)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cs.IsEmpty() {
		t.Errorf("expected empty change set, got %s", cs.Summary())
	}
}
