package apply

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/zoneops/ovhsync/internal/domain"
	"github.com/zoneops/ovhsync/internal/entities"
	"github.com/zoneops/ovhsync/internal/logger"
	"github.com/zoneops/ovhsync/internal/plan"
	"github.com/zoneops/ovhsync/internal/providers/dns"
)

// Result reports how far an apply got. Applied < Total means the invocation
// aborted mid-way and the zone holds a partial, uncommitted state.
type Result struct {
	Zone      string
	Applied   int
	Total     int
	Refreshed bool
}

// Executor applies record change sets against a zone client. Mutations run
// sequentially in a fixed order (deletes, updates, creates) and the first
// provider failure aborts the rest. The zone refresh is posted exactly once,
// after all mutations succeeded; a process killed between the last mutation
// and the refresh leaves applied-but-uncommitted changes behind, which is
// inherent to the provider's two-phase protocol.
type Executor struct {
	client  dns.ZoneClient
	lockDir string
}

func NewExecutor(client dns.ZoneClient) *Executor {
	return &Executor{
		client:  client,
		lockDir: os.TempDir(),
	}
}

func (e *Executor) SetLockDir(dir string) {
	e.lockDir = dir
}

// FetchLive re-reads the current records relevant to the desired record.
// Every invocation fetches fresh state; nothing is cached across runs.
func (e *Executor) FetchLive(ctx context.Context, desired *entities.DesiredRecord) ([]dns.Record, error) {
	exists, err := e.client.ZoneExists(ctx, desired.Domain)
	if err != nil {
		return nil, domain.WrapOp("check zone", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrZoneNotFound, desired.Domain)
	}
	return e.client.ListRecords(ctx, desired.Domain, filterFor(desired))
}

// filterFor narrows the listing as far as the provider allows. A removes
// pattern with an empty name spans the whole zone, so only the type is
// constrained there.
func filterFor(desired *entities.DesiredRecord) dns.Filter {
	f := dns.Filter{FieldType: string(desired.Type)}
	if desired.Removes == "" || desired.Name != "" {
		f.SubDomain = dns.SubDomain(desired.Name)
	}
	return f
}

func (e *Executor) Apply(ctx context.Context, cs *plan.ChangeSet) (*Result, error) {
	result := &Result{Zone: cs.Zone, Total: cs.Len()}
	if cs.IsEmpty() {
		return result, nil
	}

	lock := flock.New(filepath.Join(e.lockDir, "ovhsync-"+cs.Zone+".lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return result, domain.WrapOp("acquire zone lock", err)
	}
	if !locked {
		return result, fmt.Errorf("%w: %s", domain.ErrLockBusy, cs.Zone)
	}
	defer lock.Unlock()

	for _, del := range cs.Deletes {
		if err := e.client.DeleteRecord(ctx, cs.Zone, del.ID); err != nil {
			return result, e.abort(result, fmt.Sprintf("delete %s %s.%s", del.Old.FieldType, del.Old.SubDomain, cs.Zone), err)
		}
		logger.Debug("deleted record", "zone", cs.Zone, "id", del.ID)
		result.Applied++
	}

	for _, upd := range cs.Updates {
		if err := e.client.UpdateRecord(ctx, cs.Zone, upd.ID, upd.Spec); err != nil {
			return result, e.abort(result, fmt.Sprintf("update %s %s.%s", upd.Spec.FieldType, upd.Spec.SubDomain, cs.Zone), err)
		}
		logger.Debug("updated record", "zone", cs.Zone, "id", upd.ID, "target", upd.Spec.Target)
		result.Applied++
	}

	for _, spec := range cs.Creates {
		if _, err := e.client.CreateRecord(ctx, cs.Zone, spec); err != nil {
			return result, e.abort(result, fmt.Sprintf("create %s %s.%s", spec.FieldType, spec.SubDomain, cs.Zone), err)
		}
		logger.Debug("created record", "zone", cs.Zone, "type", spec.FieldType, "name", spec.SubDomain)
		result.Applied++
	}

	if err := e.client.RefreshZone(ctx, cs.Zone); err != nil {
		return result, fmt.Errorf("applied %d of %d changes to zone %s but refresh failed, changes are uncommitted: %w",
			result.Applied, result.Total, cs.Zone, err)
	}
	result.Refreshed = true
	logger.Info("zone refreshed", "zone", cs.Zone, "changes", result.Applied)
	return result, nil
}

// abort wraps a mutation failure with enough context to tell which operation
// stopped the run and how much was already applied (and left uncommitted).
func (e *Executor) abort(result *Result, op string, err error) error {
	return fmt.Errorf("applied %d of %d changes to zone %s, aborted (uncommitted): %w",
		result.Applied, result.Total, result.Zone, domain.NewOpError(op, err))
}
