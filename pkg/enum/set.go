package enum

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// TextMatch selects how text lookups compare member text against input.
type TextMatch int

const (
	// MatchExact compares text byte for byte.
	MatchExact TextMatch = iota

	// MatchFold compares text case-insensitively under Unicode case folding.
	MatchFold
)

// memberSpec collects the optional attributes of a member being registered.
type memberSpec struct {
	oid      uuid.UUID
	value    int32
	index    int32
	hasValue bool
	hasIndex bool
	hidden   bool
}

// MemberOption customizes a single member registration.
type MemberOption func(*memberSpec)

// WithValue pins the member's numeric value instead of auto-assigning one.
func WithValue(v int32) MemberOption {
	return func(spec *memberSpec) { spec.value, spec.hasValue = v, true }
}

// WithIndex pins the member's sort index instead of auto-assigning one.
func WithIndex(i int32) MemberOption {
	return func(spec *memberSpec) { spec.index, spec.hasIndex = i, true }
}

// WithOID pins the member's object identifier instead of generating one.
// Used when declaring members whose identities already live in persisted
// catalogs.
func WithOID(id uuid.UUID) MemberOption {
	return func(spec *memberSpec) { spec.oid = id }
}

// Hidden excludes the member from visible-only views.
func Hidden() MemberOption {
	return func(spec *memberSpec) { spec.hidden = true }
}

// Set is the registry for the members of a single enumeration type T.
// Registration order is preserved, numeric values and sort indices are unique
// within the set, and all operations are safe for concurrent use.
//
// A Set is created once per enumeration type, typically as a package-level
// var alongside its member registrations:
//
//	type Severity struct{ enum.Entry }
//
//	var (
//		Severities = enum.NewSet[*Severity]("severity")
//		Low        = Severities.MustRegister(&Severity{}, "Low", enum.WithValue(10))
//		High       = Severities.MustRegister(&Severity{}, "High", enum.WithValue(30))
//	)
type Set[T Member] struct {
	name string

	mu    sync.Mutex
	items []T // registration order, append-only

	usedValues  map[int32]struct{}
	usedIndices map[int32]struct{}
	maxValue    int32
	maxIndex    int32

	def        T
	hasDefault bool
}

// NewSet creates the registry for one enumeration type and publishes it in
// the process-wide directory under name. It panics if name is blank or
// already taken; both indicate a miswired enumeration package rather than a
// runtime condition.
func NewSet[T Member](name string) *Set[T] {
	if strings.TrimSpace(name) == "" {
		panic("enum: set name must not be blank")
	}
	s := &Set[T]{
		name:        name,
		usedValues:  make(map[int32]struct{}),
		usedIndices: make(map[int32]struct{}),
		maxValue:    math.MinInt32,
		maxIndex:    math.MinInt32,
	}
	if err := publish(s); err != nil {
		panic(fmt.Sprintf("enum: %v", err))
	}
	return s
}

// Name returns the set's directory name.
func (s *Set[T]) Name() string { return s.name }

// Len returns the number of registered members.
func (s *Set[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Register fills m's embedded Entry from text and opts and appends it to the
// set. Omitted values and indices are auto-assigned the smallest free number
// above the set's current maximum, starting at math.MinInt32+1 in an empty
// set; omitted OIDs are generated. A failed registration leaves both m and
// the set untouched.
func (s *Set[T]) Register(m T, text string, opts ...MemberOption) (T, error) {
	var zero T
	if isNilMember(m) {
		return zero, fmt.Errorf("set %q: nil member: %w", s.name, ErrInvalidArgument)
	}

	var spec memberSpec
	for _, opt := range opts {
		opt(&spec)
	}

	e := m.base()

	s.mu.Lock()
	defer s.mu.Unlock()

	if e.oid != uuid.Nil {
		return zero, fmt.Errorf("set %q: member %q already registered: %w", s.name, e.text, ErrInvalidArgument)
	}

	value := spec.value
	if spec.hasValue {
		if _, taken := s.usedValues[value]; taken {
			return zero, fmt.Errorf("set %q: member %q: value %d already registered: %w", s.name, text, value, ErrDuplicateValue)
		}
	} else {
		v, ok := nextFree(s.maxValue, s.usedValues)
		if !ok {
			return zero, fmt.Errorf("set %q: member %q: no values free above %d: %w", s.name, text, s.maxValue, ErrValueSpaceExhausted)
		}
		value = v
	}

	index := spec.index
	if spec.hasIndex {
		if _, taken := s.usedIndices[index]; taken {
			return zero, fmt.Errorf("set %q: member %q: index %d already registered: %w", s.name, text, index, ErrDuplicateIndex)
		}
	} else {
		i, ok := nextFree(s.maxIndex, s.usedIndices)
		if !ok {
			return zero, fmt.Errorf("set %q: member %q: no indices free above %d: %w", s.name, text, s.maxIndex, ErrIndexSpaceExhausted)
		}
		index = i
	}

	oid := spec.oid
	if oid == uuid.Nil {
		oid = uuid.New()
	}

	e.oid = oid
	e.text = text
	e.value = value
	e.index = index
	e.visible = !spec.hidden

	s.items = append(s.items, m)
	s.usedValues[value] = struct{}{}
	s.usedIndices[index] = struct{}{}
	if value > s.maxValue {
		s.maxValue = value
	}
	if index > s.maxIndex {
		s.maxIndex = index
	}
	return m, nil
}

// MustRegister is Register, panicking on error. It keeps package-level member
// declarations terse; a misregistration is a programming error surfaced at
// package init.
func (s *Set[T]) MustRegister(m T, text string, opts ...MemberOption) T {
	m, err := s.Register(m, text, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// SetDefault records m as the set's default member. The default can be set
// exactly once, and m must already be registered in this set.
func (s *Set[T]) SetDefault(m T) error {
	if isNilMember(m) {
		return fmt.Errorf("set %q: nil member: %w", s.name, ErrInvalidArgument)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hasDefault {
		return fmt.Errorf("set %q: %w", s.name, ErrDefaultAlreadySet)
	}
	if !s.containsLocked(m) {
		return fmt.Errorf("set %q: default member %q not registered here: %w", s.name, m.base().text, ErrInvalidArgument)
	}
	s.def, s.hasDefault = m, true
	return nil
}

// Default returns the set's default member, if one has been set.
func (s *Set[T]) Default() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.def, s.hasDefault
}

// Redefine overwrites a registered member's text and numeric value in place.
// It exists for startup-time migrations of persisted catalogs and re-runs the
// uniqueness check before mutating anything: a value held by another member
// fails with ErrDuplicateValue and leaves both members untouched. Call it
// before the set is shared with concurrent readers.
func (s *Set[T]) Redefine(m T, text string, value int32) error {
	if isNilMember(m) {
		return fmt.Errorf("set %q: nil member: %w", s.name, ErrInvalidArgument)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e := m.base()
	if !s.containsLocked(m) {
		return fmt.Errorf("set %q: member %q not registered here: %w", s.name, e.text, ErrInvalidArgument)
	}
	if _, taken := s.usedValues[value]; taken && value != e.value {
		return fmt.Errorf("set %q: member %q: value %d already registered: %w", s.name, text, value, ErrDuplicateValue)
	}

	delete(s.usedValues, e.value)
	s.usedValues[value] = struct{}{}
	e.text = text
	e.value = value

	// The old value may have carried the maximum.
	s.maxValue = math.MinInt32
	for v := range s.usedValues {
		if v > s.maxValue {
			s.maxValue = v
		}
	}
	return nil
}

// ByOID returns the member carrying the given object identifier.
func (s *Set[T]) ByOID(id uuid.UUID) (T, error) {
	if m, ok := s.LookupOID(id); ok {
		return m, nil
	}
	var zero T
	return zero, fmt.Errorf("set %q: oid %s: %w", s.name, id, ErrNotFound)
}

// LookupOID is ByOID without the error path; the second return reports a hit.
func (s *Set[T]) LookupOID(id uuid.UUID) (T, bool) {
	for _, m := range s.snapshot() {
		if m.base().oid == id {
			return m, true
		}
	}
	var zero T
	return zero, false
}

// ByValue returns the first member, in registration order, carrying the given
// numeric value.
func (s *Set[T]) ByValue(v int32) (T, error) {
	if m, ok := s.LookupValue(v); ok {
		return m, nil
	}
	var zero T
	return zero, fmt.Errorf("set %q: value %d: %w", s.name, v, ErrNotFound)
}

// LookupValue is ByValue without the error path.
func (s *Set[T]) LookupValue(v int32) (T, bool) {
	for _, m := range s.snapshot() {
		if m.base().value == v {
			return m, true
		}
	}
	var zero T
	return zero, false
}

// ByText returns the member whose text matches input under mode. Blank input
// is rejected with ErrInvalidArgument before any scan.
func (s *Set[T]) ByText(text string, mode TextMatch) (T, error) {
	var zero T
	if strings.TrimSpace(text) == "" {
		return zero, fmt.Errorf("set %q: blank text: %w", s.name, ErrInvalidArgument)
	}
	if m, ok := s.LookupText(text, mode); ok {
		return m, nil
	}
	return zero, fmt.Errorf("set %q: text %q: %w", s.name, text, ErrNotFound)
}

// LookupText is ByText without the error path; blank input is simply a miss.
func (s *Set[T]) LookupText(text string, mode TextMatch) (T, bool) {
	var zero T
	if strings.TrimSpace(text) == "" {
		return zero, false
	}
	for _, m := range s.snapshot() {
		if matchText(m.base().text, text, mode) {
			return m, true
		}
	}
	return zero, false
}

// Members returns the set's members in registration order. The returned slice
// is freshly allocated; callers may reorder or truncate it freely.
func (s *Set[T]) Members() []T {
	s.mu.Lock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	s.mu.Unlock()
	return out
}

// Sorted returns every member ordered by sort index, ascending.
func (s *Set[T]) Sorted() []T {
	out := s.Members()
	sort.Slice(out, func(i, j int) bool { return out[i].base().index < out[j].base().index })
	return out
}

// VisibleMembers returns the visible members ordered by sort index, ascending.
func (s *Set[T]) VisibleMembers() []T {
	all := s.Members()
	out := make([]T, 0, len(all))
	for _, m := range all {
		if m.base().visible {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].base().index < out[j].base().index })
	return out
}

// Identities returns detached member snapshots in registration order.
func (s *Set[T]) Identities() []Identity { return identities(s.Members()) }

// SortedIdentities returns detached member snapshots ordered by sort index.
func (s *Set[T]) SortedIdentities() []Identity { return identities(s.Sorted()) }

// VisibleIdentities returns detached snapshots of the visible members ordered
// by sort index.
func (s *Set[T]) VisibleIdentities() []Identity { return identities(s.VisibleMembers()) }

// DefaultIdentity returns the default member's snapshot, if one has been set.
func (s *Set[T]) DefaultIdentity() (Identity, bool) {
	m, ok := s.Default()
	if !ok {
		return Identity{}, false
	}
	return m.base().Identity(), true
}

// snapshot returns the current members without copying. Items are append-only
// and registered entries are immutable, so a length-capped alias is safe to
// scan outside the lock.
func (s *Set[T]) snapshot() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items[:len(s.items):len(s.items)]
}

func (s *Set[T]) containsLocked(m T) bool {
	for _, it := range s.items {
		if any(it) == any(m) {
			return true
		}
	}
	return false
}

func identities[T Member](members []T) []Identity {
	out := make([]Identity, len(members))
	for i, m := range members {
		out[i] = m.base().Identity()
	}
	return out
}

// nextFree returns the smallest number greater than max not present in used,
// or false when the int32 range has no number left to give.
func nextFree(max int32, used map[int32]struct{}) (int32, bool) {
	n := max
	for {
		if n == math.MaxInt32 {
			return 0, false
		}
		n++
		if _, taken := used[n]; !taken {
			return n, true
		}
	}
}

func matchText(have, want string, mode TextMatch) bool {
	if mode == MatchFold {
		return strings.EqualFold(have, want)
	}
	return have == want
}

// isNilMember reports whether m is nil or a typed nil pointer. Members are
// always pointers, so a kind check is enough.
func isNilMember(m Member) bool {
	if m == nil {
		return true
	}
	rv := reflect.ValueOf(m)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
