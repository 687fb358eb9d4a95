package enum

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Parse resolves input to a member using one of three mutually exclusive
// forms, tried in order: an object identifier in UUID form, a signed integer
// value in int32 range, or display text compared under mode. A successful
// syntactic parse pins the form — an input that reads as a UUID is only ever
// matched against OIDs, even when no member carries it. Identifier and
// integer forms tolerate surrounding whitespace; text is matched as given.
// Blank input is a miss.
func (s *Set[T]) Parse(input string, mode TextMatch) (T, bool) {
	var zero T
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return zero, false
	}
	if id, err := uuid.Parse(trimmed); err == nil {
		return s.LookupOID(id)
	}
	if v, err := strconv.ParseInt(trimmed, 10, 32); err == nil {
		return s.LookupValue(int32(v))
	}
	return s.LookupText(input, mode)
}

// MustParse is Parse, panicking on a miss. Reserve it for inputs fixed at
// compile time.
func (s *Set[T]) MustParse(input string, mode TextMatch) T {
	m, ok := s.Parse(input, mode)
	if !ok {
		panic(fmt.Sprintf("enum: set %q: no member matches %q", s.name, input))
	}
	return m
}

// ParseIdentity resolves input like Parse and detaches the hit.
func (s *Set[T]) ParseIdentity(input string, mode TextMatch) (Identity, bool) {
	m, ok := s.Parse(input, mode)
	if !ok {
		return Identity{}, false
	}
	return m.base().Identity(), true
}
