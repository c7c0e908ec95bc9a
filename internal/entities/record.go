package entities

import (
	"fmt"

	"github.com/zoneops/ovhsync/internal/domain"
)

type RecordType string

const (
	RecordTypeA     RecordType = "A"
	RecordTypeAAAA  RecordType = "AAAA"
	RecordTypeCAA   RecordType = "CAA"
	RecordTypeCNAME RecordType = "CNAME"
	RecordTypeDKIM  RecordType = "DKIM"
	RecordTypeLOC   RecordType = "LOC"
	RecordTypeMX    RecordType = "MX"
	RecordTypeNAPTR RecordType = "NAPTR"
	RecordTypeNS    RecordType = "NS"
	RecordTypePTR   RecordType = "PTR"
	RecordTypeSPF   RecordType = "SPF"
	RecordTypeSRV   RecordType = "SRV"
	RecordTypeSSHFP RecordType = "SSHFP"
	RecordTypeTLSA  RecordType = "TLSA"
	RecordTypeTXT   RecordType = "TXT"
)

var validRecordTypes = map[RecordType]bool{
	RecordTypeA:     true,
	RecordTypeAAAA:  true,
	RecordTypeCAA:   true,
	RecordTypeCNAME: true,
	RecordTypeDKIM:  true,
	RecordTypeLOC:   true,
	RecordTypeMX:    true,
	RecordTypeNAPTR: true,
	RecordTypeNS:    true,
	RecordTypePTR:   true,
	RecordTypeSPF:   true,
	RecordTypeSRV:   true,
	RecordTypeSSHFP: true,
	RecordTypeTLSA:  true,
	RecordTypeTXT:   true,
}

type RecordState string

const (
	StatePresent RecordState = "present"
	StateAbsent  RecordState = "absent"
	StateAppend  RecordState = "append"
)

const DefaultTTL = 3600

// DesiredRecord is the operator's intent for one record, or one regex-matched
// group of records, inside a zone. Name "" addresses the zone apex. An empty
// Type means "any type" on absent paths and defaults to A elsewhere.
type DesiredRecord struct {
	Domain  string      `yaml:"domain"`
	Name    string      `yaml:"name"`
	Type    RecordType  `yaml:"type,omitempty"`
	Value   string      `yaml:"value,omitempty"`
	TTL     int         `yaml:"ttl,omitempty"`
	State   RecordState `yaml:"state,omitempty"`
	Removes string      `yaml:"removes,omitempty"`
	Replace string      `yaml:"replace,omitempty"`
	Create  bool        `yaml:"create,omitempty"`
}

func (r *DesiredRecord) ApplyDefaults() {
	if r.State == "" {
		r.State = StatePresent
	}
	if r.TTL == 0 {
		r.TTL = DefaultTTL
	}
	if r.Type == "" && r.State != StateAbsent {
		r.Type = RecordTypeA
	}
}

// Validate rejects malformed intent before any provider call is made.
func (r *DesiredRecord) Validate() error {
	if r.Domain == "" {
		return domain.RequiredField("domain")
	}
	if r.Type != "" && !validRecordTypes[r.Type] {
		return fmt.Errorf("%w: %s", domain.ErrInvalidType, r.Type)
	}
	switch r.State {
	case StatePresent, StateAbsent, StateAppend:
	default:
		return fmt.Errorf("%w: %s", domain.ErrInvalidState, r.State)
	}
	if r.TTL < 0 {
		return fmt.Errorf("%w: ttl must be non-negative", domain.ErrInvalidTTL)
	}
	if r.State == StatePresent || r.State == StateAppend {
		if r.Value == "" {
			return domain.RequiredField("value")
		}
	}
	if r.Removes != "" {
		if r.State != StateAbsent {
			return fmt.Errorf("%w: removes requires state=absent", domain.ErrInvalidState)
		}
		if _, err := NewMatcher(r.Removes); err != nil {
			return err
		}
	}
	if r.Replace != "" {
		if r.State != StatePresent {
			return fmt.Errorf("%w: replace requires state=present", domain.ErrInvalidState)
		}
		if _, err := NewMatcher(r.Replace); err != nil {
			return err
		}
	}
	return nil
}
