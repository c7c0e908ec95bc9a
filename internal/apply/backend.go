package apply

import (
	"context"
	"fmt"

	"github.com/zoneops/ovhsync/internal/domain"
	"github.com/zoneops/ovhsync/internal/entities"
	"github.com/zoneops/ovhsync/internal/logger"
	"github.com/zoneops/ovhsync/internal/plan"
	"github.com/zoneops/ovhsync/internal/providers/lb"
)

// BackendExecutor applies a single backend change. Probe and weight are
// separate provider calls; when both differ the probe is set first and a
// failure in between is reported as a partial update.
type BackendExecutor struct {
	client lb.Client
}

func NewBackendExecutor(client lb.Client) *BackendExecutor {
	return &BackendExecutor{client: client}
}

// FetchCurrent checks the balancer exists and returns the current attachment,
// nil when the IP is not attached.
func (e *BackendExecutor) FetchCurrent(ctx context.Context, spec *entities.BackendSpec) (*lb.Backend, error) {
	exists, err := e.client.LoadBalancerExists(ctx, spec.Name)
	if err != nil {
		return nil, domain.WrapOp("check load balancer", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrLoadBalancerNotFound, spec.Name)
	}
	return e.client.GetBackend(ctx, spec.Name, spec.IP)
}

func (e *BackendExecutor) Apply(ctx context.Context, spec *entities.BackendSpec, ch *plan.BackendChange) error {
	switch ch.Type {
	case plan.ChangeTypeNoop:
		return nil
	case plan.ChangeTypeCreate:
		if err := e.client.CreateBackend(ctx, spec.Name, *ch.New); err != nil {
			return domain.NewOpError(fmt.Sprintf("create backend %s on %s", spec.IP, spec.Name), err)
		}
		logger.Info("backend created", "lb", spec.Name, "ip", spec.IP, "probe", ch.New.Probe, "weight", ch.New.Weight)
		return nil
	case plan.ChangeTypeUpdate:
		if ch.ProbeChanged {
			if err := e.client.SetProbe(ctx, spec.Name, spec.IP, ch.New.Probe); err != nil {
				return domain.NewOpError(fmt.Sprintf("set probe of %s on %s", spec.IP, spec.Name), err)
			}
			logger.Info("backend probe updated", "lb", spec.Name, "ip", spec.IP, "probe", ch.New.Probe)
		}
		if ch.WeightChanged {
			if err := e.client.SetWeight(ctx, spec.Name, spec.IP, ch.New.Weight); err != nil {
				if ch.ProbeChanged {
					return fmt.Errorf("probe updated but weight not: %w",
						domain.NewOpError(fmt.Sprintf("set weight of %s on %s", spec.IP, spec.Name), err))
				}
				return domain.NewOpError(fmt.Sprintf("set weight of %s on %s", spec.IP, spec.Name), err)
			}
			logger.Info("backend weight updated", "lb", spec.Name, "ip", spec.IP, "weight", ch.New.Weight)
		}
		return nil
	case plan.ChangeTypeDelete:
		if err := e.client.DeleteBackend(ctx, spec.Name, spec.IP); err != nil {
			return domain.NewOpError(fmt.Sprintf("delete backend %s on %s", spec.IP, spec.Name), err)
		}
		logger.Info("backend deleted", "lb", spec.Name, "ip", spec.IP)
		return nil
	}
	return nil
}
