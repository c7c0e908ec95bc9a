package apply

import (
	"context"
	"fmt"

	"github.com/zoneops/ovhsync/internal/domain"
	"github.com/zoneops/ovhsync/internal/entities"
	"github.com/zoneops/ovhsync/internal/logger"
	"github.com/zoneops/ovhsync/internal/plan"
	"github.com/zoneops/ovhsync/internal/providers/reverse"
)

// ReverseExecutor applies a single reverse change.
type ReverseExecutor struct {
	client reverse.Client
}

func NewReverseExecutor(client reverse.Client) *ReverseExecutor {
	return &ReverseExecutor{client: client}
}

func (e *ReverseExecutor) FetchCurrent(ctx context.Context, spec *entities.ReverseSpec) (*reverse.Reverse, error) {
	current, err := e.client.Get(ctx, spec.IP)
	if err != nil {
		return nil, domain.WrapOp("get reverse", err)
	}
	return current, nil
}

func (e *ReverseExecutor) Apply(ctx context.Context, spec *entities.ReverseSpec, ch *plan.ReverseChange) error {
	switch ch.Type {
	case plan.ChangeTypeNoop:
		return nil
	case plan.ChangeTypeCreate, plan.ChangeTypeUpdate:
		if err := e.client.Set(ctx, spec.IP, ch.After); err != nil {
			return domain.NewOpError(fmt.Sprintf("set reverse of %s", spec.IP), err)
		}
		logger.Info("reverse set", "ip", spec.IP, "reverse", ch.After)
		return nil
	case plan.ChangeTypeDelete:
		if err := e.client.Delete(ctx, spec.IP, ch.IPReverse); err != nil {
			return domain.NewOpError(fmt.Sprintf("delete reverse of %s", spec.IP), err)
		}
		logger.Info("reverse deleted", "ip", spec.IP)
		return nil
	}
	return nil
}
