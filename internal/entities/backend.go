package entities

import (
	"fmt"
	"net"

	"github.com/zoneops/ovhsync/internal/domain"
)

type ProbeType string

const (
	ProbeNone ProbeType = "none"
	ProbeHTTP ProbeType = "http"
	ProbeICMP ProbeType = "icmp"
	ProbeOCO  ProbeType = "oco"
)

const DefaultWeight = 8

// BackendSpec is the desired attachment of one backend IP to a legacy OVH IP
// load balancer (the ip-X.X.X.X service name).
type BackendSpec struct {
	Name   string      `yaml:"name"`
	IP     string      `yaml:"ip"`
	Probe  ProbeType   `yaml:"probe,omitempty"`
	Weight int         `yaml:"weight,omitempty"`
	State  RecordState `yaml:"state,omitempty"`
}

func (b *BackendSpec) ApplyDefaults() {
	if b.State == "" {
		b.State = StatePresent
	}
	if b.Probe == "" {
		b.Probe = ProbeNone
	}
	if b.Weight == 0 {
		b.Weight = DefaultWeight
	}
}

func (b *BackendSpec) Validate() error {
	if b.Name == "" {
		return domain.RequiredField("name")
	}
	if b.IP == "" {
		return domain.RequiredField("ip")
	}
	if net.ParseIP(b.IP) == nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidIP, b.IP)
	}
	switch b.State {
	case StatePresent, StateAbsent:
	default:
		return fmt.Errorf("%w: %s", domain.ErrInvalidState, b.State)
	}
	switch b.Probe {
	case ProbeNone, ProbeHTTP, ProbeICMP, ProbeOCO:
	default:
		return fmt.Errorf("%w: %s", domain.ErrInvalidProbe, b.Probe)
	}
	if b.Weight < 1 || b.Weight > 100 {
		return fmt.Errorf("%w: %d (must be 1-100)", domain.ErrInvalidWeight, b.Weight)
	}
	return nil
}
