package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidType    = errors.New("invalid record type")
	ErrInvalidState   = errors.New("invalid state")
	ErrInvalidTTL     = errors.New("invalid TTL")
	ErrInvalidPattern = errors.New("invalid pattern")
	ErrInvalidProbe   = errors.New("invalid probe")
	ErrInvalidWeight  = errors.New("invalid weight")
	ErrInvalidIP      = errors.New("invalid IP address")
	ErrEmptyValue     = errors.New("empty value")
	ErrRequired       = errors.New("required field missing")

	ErrZoneNotFound         = errors.New("zone not found")
	ErrRecordNotFound       = errors.New("record not found")
	ErrLoadBalancerNotFound = errors.New("load balancer not found")
	ErrReverseNotSet        = errors.New("no reverse set for IP")

	ErrConfigReadFailed  = errors.New("config read failed")
	ErrConfigParseFailed = errors.New("config parse failed")

	ErrLockBusy = errors.New("another invocation holds the zone lock")
)

func RequiredField(field string) error {
	return fmt.Errorf("%w: %s", ErrRequired, field)
}

func WrapOp(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}

func WrapEntity(entity, name string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s[%s]: %w", entity, name, err)
}

// OpError carries the provider operation that failed so a partially applied
// invocation can report exactly where it stopped.
type OpError struct {
	Op    string
	Cause error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

func (e *OpError) Unwrap() error {
	return e.Cause
}

func NewOpError(op string, cause error) error {
	return &OpError{Op: op, Cause: cause}
}
