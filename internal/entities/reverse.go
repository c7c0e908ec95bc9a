package entities

import (
	"fmt"
	"net"

	"github.com/zoneops/ovhsync/internal/domain"
)

// ReverseSpec is the desired PTR attachment of an IP address. An empty
// Reverse with state=present means "check one exists", not "set one".
type ReverseSpec struct {
	IP      string      `yaml:"ip"`
	Reverse string      `yaml:"reverse,omitempty"`
	State   RecordState `yaml:"state,omitempty"`
}

func (r *ReverseSpec) ApplyDefaults() {
	if r.State == "" {
		r.State = StatePresent
	}
}

func (r *ReverseSpec) Validate() error {
	if r.IP == "" {
		return domain.RequiredField("ip")
	}
	if net.ParseIP(r.IP) == nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidIP, r.IP)
	}
	switch r.State {
	case StatePresent, StateAbsent:
	default:
		return fmt.Errorf("%w: %s", domain.ErrInvalidState, r.State)
	}
	return nil
}
