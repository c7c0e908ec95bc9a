package entities

import (
	"errors"
	"testing"

	"github.com/zoneops/ovhsync/internal/domain"
)

func TestBackendSpec_ApplyDefaults(t *testing.T) {
	spec := BackendSpec{Name: "ip-1.1.1.1", IP: "10.0.0.1"}
	spec.ApplyDefaults()

	if spec.State != StatePresent {
		t.Errorf("expected state present, got %s", spec.State)
	}
	if spec.Probe != ProbeNone {
		t.Errorf("expected probe none, got %s", spec.Probe)
	}
	if spec.Weight != DefaultWeight {
		t.Errorf("expected weight %d, got %d", DefaultWeight, spec.Weight)
	}
}

func TestBackendSpec_Validate(t *testing.T) {
	tests := []struct {
		name    string
		spec    BackendSpec
		wantErr error
	}{
		{
			name: "valid backend",
			spec: BackendSpec{Name: "ip-1.1.1.1", IP: "10.0.0.1", Probe: ProbeHTTP, Weight: 8, State: StatePresent},
		},
		{
			name:    "missing name",
			spec:    BackendSpec{IP: "10.0.0.1", Probe: ProbeNone, Weight: 8, State: StatePresent},
			wantErr: domain.ErrRequired,
		},
		{
			name:    "missing ip",
			spec:    BackendSpec{Name: "ip-1.1.1.1", Probe: ProbeNone, Weight: 8, State: StatePresent},
			wantErr: domain.ErrRequired,
		},
		{
			name:    "malformed ip",
			spec:    BackendSpec{Name: "ip-1.1.1.1", IP: "not-an-ip", Probe: ProbeNone, Weight: 8, State: StatePresent},
			wantErr: domain.ErrInvalidIP,
		},
		{
			name:    "append is not a backend state",
			spec:    BackendSpec{Name: "ip-1.1.1.1", IP: "10.0.0.1", Probe: ProbeNone, Weight: 8, State: StateAppend},
			wantErr: domain.ErrInvalidState,
		},
		{
			name:    "unknown probe",
			spec:    BackendSpec{Name: "ip-1.1.1.1", IP: "10.0.0.1", Probe: "tcp", Weight: 8, State: StatePresent},
			wantErr: domain.ErrInvalidProbe,
		},
		{
			name:    "weight too low",
			spec:    BackendSpec{Name: "ip-1.1.1.1", IP: "10.0.0.1", Probe: ProbeNone, Weight: 0, State: StatePresent},
			wantErr: domain.ErrInvalidWeight,
		},
		{
			name:    "weight too high",
			spec:    BackendSpec{Name: "ip-1.1.1.1", IP: "10.0.0.1", Probe: ProbeNone, Weight: 101, State: StatePresent},
			wantErr: domain.ErrInvalidWeight,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("expected nil error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestReverseSpec_Validate(t *testing.T) {
	tests := []struct {
		name    string
		spec    ReverseSpec
		wantErr error
	}{
		{
			name: "valid ipv4",
			spec: ReverseSpec{IP: "198.27.92.1", Reverse: "host.example.com", State: StatePresent},
		},
		{
			name: "valid ipv6",
			spec: ReverseSpec{IP: "2001:db8::1", Reverse: "host.example.com", State: StatePresent},
		},
		{
			name: "check-only without reverse",
			spec: ReverseSpec{IP: "198.27.92.1", State: StatePresent},
		},
		{
			name:    "missing ip",
			spec:    ReverseSpec{Reverse: "host.example.com", State: StatePresent},
			wantErr: domain.ErrRequired,
		},
		{
			name:    "malformed ip",
			spec:    ReverseSpec{IP: "example.com", State: StatePresent},
			wantErr: domain.ErrInvalidIP,
		},
		{
			name:    "append is not a reverse state",
			spec:    ReverseSpec{IP: "198.27.92.1", State: StateAppend},
			wantErr: domain.ErrInvalidState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("expected nil error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
