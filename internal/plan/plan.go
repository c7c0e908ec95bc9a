package plan

import (
	"fmt"

	"github.com/zoneops/ovhsync/internal/providers/dns"
)

type ChangeType int

const (
	ChangeTypeNoop ChangeType = iota
	ChangeTypeCreate
	ChangeTypeUpdate
	ChangeTypeDelete
)

func (ct ChangeType) String() string {
	switch ct {
	case ChangeTypeNoop:
		return "NOOP"
	case ChangeTypeCreate:
		return "CREATE"
	case ChangeTypeUpdate:
		return "UPDATE"
	case ChangeTypeDelete:
		return "DELETE"
	default:
		return "UNKNOWN"
	}
}

type RecordDelete struct {
	ID  string
	Old dns.Record
}

type RecordUpdate struct {
	ID   string
	Old  dns.Record
	Spec dns.RecordSpec
}

// ChangeSet is the reconciler's only output: the identifiers to delete, the
// per-identifier new bodies to update, and the bodies to create. The three
// lists are disjoint in identifier space and are applied in that order.
type ChangeSet struct {
	Zone    string
	Deletes []RecordDelete
	Updates []RecordUpdate
	Creates []dns.RecordSpec
}

func NewChangeSet(zone string) *ChangeSet {
	return &ChangeSet{Zone: zone}
}

func (cs *ChangeSet) IsEmpty() bool {
	return len(cs.Deletes) == 0 && len(cs.Updates) == 0 && len(cs.Creates) == 0
}

func (cs *ChangeSet) Len() int {
	return len(cs.Deletes) + len(cs.Updates) + len(cs.Creates)
}

func (cs *ChangeSet) Summary() string {
	return fmt.Sprintf("%d to delete, %d to update, %d to create",
		len(cs.Deletes), len(cs.Updates), len(cs.Creates))
}
