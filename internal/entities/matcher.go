package entities

import (
	"fmt"
	"regexp"

	"github.com/zoneops/ovhsync/internal/domain"
)

// Matcher matches record values either by literal equality or by a regular
// expression anchored to the full value. The variant is picked once when the
// pattern is parsed: a pattern with no regex metacharacters is a literal.
type Matcher struct {
	pattern string
	re      *regexp.Regexp
}

func NewMatcher(pattern string) (*Matcher, error) {
	if regexp.QuoteMeta(pattern) == pattern {
		return &Matcher{pattern: pattern}, nil
	}
	re, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", domain.ErrInvalidPattern, pattern, err)
	}
	return &Matcher{pattern: pattern, re: re}, nil
}

func (m *Matcher) Matches(value string) bool {
	if m.re != nil {
		return m.re.MatchString(value)
	}
	return value == m.pattern
}

func (m *Matcher) IsRegex() bool {
	return m.re != nil
}

func (m *Matcher) String() string {
	return m.pattern
}
