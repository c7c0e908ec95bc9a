package plan

import (
	"testing"

	"github.com/zoneops/ovhsync/internal/entities"
	"github.com/zoneops/ovhsync/internal/providers/lb"
)

func backendSpec(state entities.RecordState, probe entities.ProbeType, weight int) *entities.BackendSpec {
	return &entities.BackendSpec{
		Name:   "ip-1.1.1.1",
		IP:     "10.0.0.1",
		Probe:  probe,
		Weight: weight,
		State:  state,
	}
}

func TestPlanBackend(t *testing.T) {
	tests := []struct {
		name              string
		spec              *entities.BackendSpec
		current           *lb.Backend
		wantType          ChangeType
		wantProbeChanged  bool
		wantWeightChanged bool
	}{
		{
			name:     "create when not attached",
			spec:     backendSpec(entities.StatePresent, entities.ProbeHTTP, 8),
			current:  nil,
			wantType: ChangeTypeCreate,
		},
		{
			name:     "noop when converged",
			spec:     backendSpec(entities.StatePresent, entities.ProbeHTTP, 8),
			current:  &lb.Backend{IP: "10.0.0.1", Probe: "http", Weight: 8},
			wantType: ChangeTypeNoop,
		},
		{
			name:             "probe drift",
			spec:             backendSpec(entities.StatePresent, entities.ProbeICMP, 8),
			current:          &lb.Backend{IP: "10.0.0.1", Probe: "http", Weight: 8},
			wantType:         ChangeTypeUpdate,
			wantProbeChanged: true,
		},
		{
			name:              "weight drift",
			spec:              backendSpec(entities.StatePresent, entities.ProbeHTTP, 50),
			current:           &lb.Backend{IP: "10.0.0.1", Probe: "http", Weight: 8},
			wantType:          ChangeTypeUpdate,
			wantWeightChanged: true,
		},
		{
			name:              "probe and weight drift",
			spec:              backendSpec(entities.StatePresent, entities.ProbeOCO, 50),
			current:           &lb.Backend{IP: "10.0.0.1", Probe: "http", Weight: 8},
			wantType:          ChangeTypeUpdate,
			wantProbeChanged:  true,
			wantWeightChanged: true,
		},
		{
			name:     "delete when attached",
			spec:     backendSpec(entities.StateAbsent, entities.ProbeNone, 8),
			current:  &lb.Backend{IP: "10.0.0.1", Probe: "http", Weight: 8},
			wantType: ChangeTypeDelete,
		},
		{
			name:     "absent already detached",
			spec:     backendSpec(entities.StateAbsent, entities.ProbeNone, 8),
			current:  nil,
			wantType: ChangeTypeNoop,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch := PlanBackend(tt.spec, tt.current)
			if ch.Type != tt.wantType {
				t.Errorf("expected %s, got %s", tt.wantType, ch.Type)
			}
			if ch.ProbeChanged != tt.wantProbeChanged {
				t.Errorf("ProbeChanged: expected %v, got %v", tt.wantProbeChanged, ch.ProbeChanged)
			}
			if ch.WeightChanged != tt.wantWeightChanged {
				t.Errorf("WeightChanged: expected %v, got %v", tt.wantWeightChanged, ch.WeightChanged)
			}
		})
	}
}
