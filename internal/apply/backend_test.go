package apply

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/zoneops/ovhsync/internal/domain"
	"github.com/zoneops/ovhsync/internal/entities"
	"github.com/zoneops/ovhsync/internal/plan"
	"github.com/zoneops/ovhsync/internal/providers/lb"
)

type mockLBClient struct {
	exists  bool
	backend *lb.Backend

	calls []string

	createErr error
	probeErr  error
	weightErr error
	deleteErr error
}

func (m *mockLBClient) Name() string { return "mock" }

func (m *mockLBClient) LoadBalancerExists(ctx context.Context, name string) (bool, error) {
	return m.exists, nil
}

func (m *mockLBClient) GetBackend(ctx context.Context, name, ip string) (*lb.Backend, error) {
	return m.backend, nil
}

func (m *mockLBClient) CreateBackend(ctx context.Context, name string, backend lb.Backend) error {
	m.calls = append(m.calls, "create")
	return m.createErr
}

func (m *mockLBClient) SetProbe(ctx context.Context, name, ip, probe string) error {
	m.calls = append(m.calls, "probe "+probe)
	return m.probeErr
}

func (m *mockLBClient) SetWeight(ctx context.Context, name, ip string, weight int) error {
	m.calls = append(m.calls, "weight")
	return m.weightErr
}

func (m *mockLBClient) DeleteBackend(ctx context.Context, name, ip string) error {
	m.calls = append(m.calls, "delete")
	return m.deleteErr
}

func testBackendSpec() *entities.BackendSpec {
	return &entities.BackendSpec{
		Name:   "ip-1.1.1.1",
		IP:     "10.0.0.1",
		Probe:  entities.ProbeHTTP,
		Weight: 50,
		State:  entities.StatePresent,
	}
}

func TestBackendExecutor_FetchCurrentNotFound(t *testing.T) {
	e := NewBackendExecutor(&mockLBClient{exists: false})

	_, err := e.FetchCurrent(context.Background(), testBackendSpec())
	if !errors.Is(err, domain.ErrLoadBalancerNotFound) {
		t.Errorf("expected ErrLoadBalancerNotFound, got %v", err)
	}
}

func TestBackendExecutor_ApplyUpdateOrdersProbeFirst(t *testing.T) {
	client := &mockLBClient{exists: true}
	e := NewBackendExecutor(client)

	ch := &plan.BackendChange{
		Type:          plan.ChangeTypeUpdate,
		Old:           &lb.Backend{IP: "10.0.0.1", Probe: "none", Weight: 8},
		New:           &lb.Backend{IP: "10.0.0.1", Probe: "http", Weight: 50},
		ProbeChanged:  true,
		WeightChanged: true,
	}
	if err := e.Apply(context.Background(), testBackendSpec(), ch); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"probe http", "weight"}
	if len(client.calls) != 2 || client.calls[0] != want[0] || client.calls[1] != want[1] {
		t.Errorf("expected calls %v, got %v", want, client.calls)
	}
}

func TestBackendExecutor_ApplyPartialUpdateReported(t *testing.T) {
	client := &mockLBClient{exists: true, weightErr: errors.New("boom")}
	e := NewBackendExecutor(client)

	ch := &plan.BackendChange{
		Type:          plan.ChangeTypeUpdate,
		Old:           &lb.Backend{IP: "10.0.0.1", Probe: "none", Weight: 8},
		New:           &lb.Backend{IP: "10.0.0.1", Probe: "http", Weight: 50},
		ProbeChanged:  true,
		WeightChanged: true,
	}
	err := e.Apply(context.Background(), testBackendSpec(), ch)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "probe updated but weight not") {
		t.Errorf("expected partial update message, got %v", err)
	}
}

func TestBackendExecutor_ApplyNoopTouchesNothing(t *testing.T) {
	client := &mockLBClient{exists: true}
	e := NewBackendExecutor(client)

	if err := e.Apply(context.Background(), testBackendSpec(), &plan.BackendChange{Type: plan.ChangeTypeNoop}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(client.calls) != 0 {
		t.Errorf("expected no calls, got %v", client.calls)
	}
}

func TestBackendExecutor_ApplyDelete(t *testing.T) {
	client := &mockLBClient{exists: true, backend: &lb.Backend{IP: "10.0.0.1", Probe: "http", Weight: 50}}
	e := NewBackendExecutor(client)

	ch := &plan.BackendChange{Type: plan.ChangeTypeDelete, Old: client.backend}
	if err := e.Apply(context.Background(), testBackendSpec(), ch); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(client.calls) != 1 || client.calls[0] != "delete" {
		t.Errorf("expected a single delete call, got %v", client.calls)
	}
}
