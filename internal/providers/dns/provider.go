package dns

import (
	"context"
)

// Record is a live record as returned by the provider. Instances are fetched
// fresh on every invocation and never cached across runs.
type Record struct {
	ID        string
	Zone      string
	SubDomain string
	FieldType string
	Target    string
	TTL       int
}

// RecordSpec is the body of a record to create or the new body of a record
// to update.
type RecordSpec struct {
	SubDomain string
	FieldType string
	Target    string
	TTL       int
}

// Filter narrows a record listing. A nil SubDomain means any name; an empty
// non-nil SubDomain means the zone apex.
type Filter struct {
	FieldType string
	SubDomain *string
}

func (f Filter) Matches(r Record) bool {
	if f.FieldType != "" && r.FieldType != f.FieldType {
		return false
	}
	if f.SubDomain != nil && r.SubDomain != *f.SubDomain {
		return false
	}
	return true
}

// SubDomain builds a Filter subdomain constraint.
func SubDomain(s string) *string {
	return &s
}

// ZoneClient is the provider collaborator the reconciler is injected with.
// Mutations are staged provider-side until RefreshZone commits them; providers
// without a staging step implement RefreshZone as a no-op.
type ZoneClient interface {
	Name() string
	ZoneExists(ctx context.Context, zone string) (bool, error)
	ListRecords(ctx context.Context, zone string, filter Filter) ([]Record, error)
	CreateRecord(ctx context.Context, zone string, spec RecordSpec) (string, error)
	UpdateRecord(ctx context.Context, zone string, id string, spec RecordSpec) error
	DeleteRecord(ctx context.Context, zone string, id string) error
	RefreshZone(ctx context.Context, zone string) error
}
