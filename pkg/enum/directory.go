package enum

import (
	"fmt"
	"sort"
	"sync"
)

// SetView is the type-erased, read-only face of a Set. The process directory
// hands these to generic consumers that enumerate sets without knowing their
// member types.
type SetView interface {
	// Name returns the set's directory name.
	Name() string

	// Len returns the number of registered members.
	Len() int

	// Identities returns detached member snapshots in registration order.
	Identities() []Identity

	// SortedIdentities returns detached member snapshots ordered by sort index.
	SortedIdentities() []Identity

	// VisibleIdentities returns detached snapshots of the visible members
	// ordered by sort index.
	VisibleIdentities() []Identity

	// DefaultIdentity returns the default member's snapshot, if one is set.
	DefaultIdentity() (Identity, bool)

	// ParseIdentity resolves input like Set.Parse and detaches the hit.
	ParseIdentity(input string, mode TextMatch) (Identity, bool)
}

var _ SetView = (*Set[Member])(nil)

// directory is the process-wide index of sets, keyed by name. Sets publish
// themselves at creation, in package init order, the way database/sql drivers
// register.
var directory = struct {
	mu   sync.RWMutex
	sets map[string]SetView
}{sets: make(map[string]SetView)}

func publish(v SetView) error {
	directory.mu.Lock()
	defer directory.mu.Unlock()
	if _, exists := directory.sets[v.Name()]; exists {
		return fmt.Errorf("set %q already registered", v.Name())
	}
	directory.sets[v.Name()] = v
	return nil
}

// Lookup returns the set published under name.
func Lookup(name string) (SetView, bool) {
	directory.mu.RLock()
	defer directory.mu.RUnlock()
	v, ok := directory.sets[name]
	return v, ok
}

// Sets returns every published set, ordered by name.
func Sets() []SetView {
	directory.mu.RLock()
	out := make([]SetView, 0, len(directory.sets))
	for _, v := range directory.sets {
		out = append(out, v)
	}
	directory.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}
