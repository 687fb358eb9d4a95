package enum_test

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/enumkit/pkg/enum"
)

// TicketState is the package-wide fixture type. Its members mirror how
// production code declares an enumeration: package-level vars registered at
// init with a mix of explicit and automatic numbering.
type TicketState struct{ enum.Entry }

var (
	ticketStates = enum.NewSet[*TicketState]("ticket_state")

	ticketOpen     = ticketStates.MustRegister(&TicketState{}, "Open", enum.WithValue(1), enum.WithIndex(3))
	ticketInReview = ticketStates.MustRegister(&TicketState{}, "In Review", enum.WithValue(2), enum.WithIndex(1))
	ticketClosed   = ticketStates.MustRegister(&TicketState{}, "Closed", enum.WithValue(3), enum.WithIndex(2))
	ticketArchived = ticketStates.MustRegister(&TicketState{}, "Archived", enum.WithValue(4), enum.WithIndex(4), enum.Hidden())
)

func init() {
	if err := ticketStates.SetDefault(ticketOpen); err != nil {
		panic(err)
	}
}

var setSeq atomic.Int64

// freshSet creates an isolated set whose name is unique across the test
// binary, keeping the process directory free of collisions between tests.
func freshSet[T enum.Member](prefix string) *enum.Set[T] {
	return enum.NewSet[T](fmt.Sprintf("%s_%d", prefix, setSeq.Add(1)))
}

// TestSet_RegisterAutoNumbering verifies that omitted values and indices are
// assigned sequentially from the bottom of the int32 range.
func TestSet_RegisterAutoNumbering(t *testing.T) {
	s := freshSet[*TicketState]("auto")

	first, err := s.Register(&TicketState{}, "First")
	require.NoError(t, err)
	second, err := s.Register(&TicketState{}, "Second")
	require.NoError(t, err)
	third, err := s.Register(&TicketState{}, "Third")
	require.NoError(t, err)

	assert.Equal(t, int32(math.MinInt32+1), first.Value())
	assert.Equal(t, int32(math.MinInt32+2), second.Value())
	assert.Equal(t, int32(math.MinInt32+3), third.Value())

	assert.Equal(t, int32(math.MinInt32+1), first.Index())
	assert.Equal(t, int32(math.MinInt32+2), second.Index())
	assert.Equal(t, int32(math.MinInt32+3), third.Index())

	assert.True(t, first.Visible())
	assert.NotEqual(t, uuid.Nil, first.OID())
	assert.Equal(t, "First", first.Text())
	assert.Equal(t, 3, s.Len())
}

// TestSet_RegisterExplicitValue verifies that auto-assignment continues above
// the highest value seen so far, even when later members register below it.
func TestSet_RegisterExplicitValue(t *testing.T) {
	s := freshSet[*TicketState]("explicit")

	pinned, err := s.Register(&TicketState{}, "Pinned", enum.WithValue(10))
	require.NoError(t, err)
	require.Equal(t, int32(10), pinned.Value())

	auto, err := s.Register(&TicketState{}, "Auto")
	require.NoError(t, err)
	assert.Equal(t, int32(11), auto.Value())

	low, err := s.Register(&TicketState{}, "Low", enum.WithValue(5))
	require.NoError(t, err)
	assert.Equal(t, int32(5), low.Value())

	next, err := s.Register(&TicketState{}, "Next")
	require.NoError(t, err)
	assert.Equal(t, int32(12), next.Value())
}

func TestSet_RegisterSuppliedOID(t *testing.T) {
	s := freshSet[*TicketState]("oid")
	want := uuid.MustParse("4f9b1c2e-8a47-4d36-9db0-5b1f6c1d2a3e")

	m, err := s.Register(&TicketState{}, "Fixed", enum.WithOID(want))
	require.NoError(t, err)
	assert.Equal(t, want, m.OID())
}

func TestSet_RegisterDuplicateValue(t *testing.T) {
	s := freshSet[*TicketState]("dupval")

	_, err := s.Register(&TicketState{}, "First", enum.WithValue(7))
	require.NoError(t, err)

	failed := &TicketState{}
	_, err = s.Register(failed, "Second", enum.WithValue(7))
	require.Error(t, err)
	assert.True(t, errors.Is(err, enum.ErrDuplicateValue))
	assert.Contains(t, err.Error(), "Second")
	assert.Contains(t, err.Error(), "7")

	// The failed member and the set are both untouched.
	assert.Equal(t, uuid.Nil, failed.OID())
	assert.Equal(t, 1, s.Len())
}

func TestSet_RegisterDuplicateIndex(t *testing.T) {
	s := freshSet[*TicketState]("dupidx")

	_, err := s.Register(&TicketState{}, "First", enum.WithIndex(2))
	require.NoError(t, err)

	_, err = s.Register(&TicketState{}, "Second", enum.WithIndex(2))
	require.Error(t, err)
	assert.True(t, errors.Is(err, enum.ErrDuplicateIndex))
	assert.Equal(t, 1, s.Len())
}

// TestSet_RegisterValueSpaceExhausted verifies that automatic assignment
// refuses to wrap once the top of the int32 range is taken.
func TestSet_RegisterValueSpaceExhausted(t *testing.T) {
	s := freshSet[*TicketState]("exhaustval")

	_, err := s.Register(&TicketState{}, "Ceiling", enum.WithValue(math.MaxInt32))
	require.NoError(t, err)

	_, err = s.Register(&TicketState{}, "Overflow")
	require.Error(t, err)
	assert.True(t, errors.Is(err, enum.ErrValueSpaceExhausted))
	assert.Equal(t, 1, s.Len())
}

func TestSet_RegisterIndexSpaceExhausted(t *testing.T) {
	s := freshSet[*TicketState]("exhaustidx")

	_, err := s.Register(&TicketState{}, "Ceiling", enum.WithIndex(math.MaxInt32), enum.WithValue(1))
	require.NoError(t, err)

	_, err = s.Register(&TicketState{}, "Overflow", enum.WithValue(2))
	require.Error(t, err)
	assert.True(t, errors.Is(err, enum.ErrIndexSpaceExhausted))

	// The aborted registration must not have claimed its auto value.
	m, err := s.Register(&TicketState{}, "Recovered", enum.WithIndex(1))
	require.NoError(t, err)
	assert.Equal(t, int32(2), m.Value())
}

func TestSet_RegisterSameMemberTwice(t *testing.T) {
	s := freshSet[*TicketState]("twice")

	m, err := s.Register(&TicketState{}, "Once")
	require.NoError(t, err)

	_, err = s.Register(m, "Again")
	require.Error(t, err)
	assert.True(t, errors.Is(err, enum.ErrInvalidArgument))
	assert.Equal(t, 1, s.Len())
}

func TestSet_RegisterNilMember(t *testing.T) {
	s := freshSet[*TicketState]("nilmember")

	var m *TicketState
	_, err := s.Register(m, "Nil")
	require.Error(t, err)
	assert.True(t, errors.Is(err, enum.ErrInvalidArgument))
}

func TestSet_MustRegisterPanicsOnDuplicate(t *testing.T) {
	s := freshSet[*TicketState]("mustdup")
	s.MustRegister(&TicketState{}, "First", enum.WithValue(1))

	defer func() {
		require.NotNil(t, recover())
	}()
	s.MustRegister(&TicketState{}, "Second", enum.WithValue(1))
}

func TestNewSet_BlankNamePanics(t *testing.T) {
	defer func() {
		require.NotNil(t, recover())
	}()
	enum.NewSet[*TicketState]("   ")
}

func TestNewSet_DuplicateNamePanics(t *testing.T) {
	defer func() {
		require.NotNil(t, recover())
	}()
	enum.NewSet[*TicketState]("ticket_state")
}

func TestSet_SetDefault(t *testing.T) {
	s := freshSet[*TicketState]("default")
	m := s.MustRegister(&TicketState{}, "Primary")

	require.NoError(t, s.SetDefault(m))

	got, ok := s.Default()
	require.True(t, ok)
	assert.Same(t, m, got)

	id, ok := s.DefaultIdentity()
	require.True(t, ok)
	assert.Equal(t, "Primary", id.Text)

	t.Run("second assignment is rejected", func(t *testing.T) {
		err := s.SetDefault(m)
		require.Error(t, err)
		assert.True(t, errors.Is(err, enum.ErrDefaultAlreadySet))
	})

	t.Run("foreign member is rejected", func(t *testing.T) {
		other := freshSet[*TicketState]("default_other")
		stranger := other.MustRegister(&TicketState{}, "Stranger")

		target := freshSet[*TicketState]("default_target")
		target.MustRegister(&TicketState{}, "Member")

		err := target.SetDefault(stranger)
		require.Error(t, err)
		assert.True(t, errors.Is(err, enum.ErrInvalidArgument))
	})
}

func TestSet_DefaultUnsetByDefault(t *testing.T) {
	s := freshSet[*TicketState]("nodefault")
	s.MustRegister(&TicketState{}, "Only")

	_, ok := s.Default()
	assert.False(t, ok)
	_, ok = s.DefaultIdentity()
	assert.False(t, ok)
}

func TestSet_Redefine(t *testing.T) {
	s := freshSet[*TicketState]("redefine")
	keep := s.MustRegister(&TicketState{}, "Keep", enum.WithValue(1))
	moved := s.MustRegister(&TicketState{}, "Old Name", enum.WithValue(2))
	oid := moved.OID()

	require.NoError(t, s.Redefine(moved, "New Name", 20))

	assert.Equal(t, "New Name", moved.Text())
	assert.Equal(t, int32(20), moved.Value())
	assert.Equal(t, oid, moved.OID(), "redefine must not touch identity")

	_, ok := s.LookupValue(2)
	assert.False(t, ok, "old value must be released")
	got, ok := s.LookupValue(20)
	require.True(t, ok)
	assert.Same(t, moved, got)

	t.Run("conflicting value is rejected without mutation", func(t *testing.T) {
		err := s.Redefine(moved, "Clobber", keep.Value())
		require.Error(t, err)
		assert.True(t, errors.Is(err, enum.ErrDuplicateValue))
		assert.Equal(t, "New Name", moved.Text())
		assert.Equal(t, int32(20), moved.Value())
	})

	t.Run("released value is reusable", func(t *testing.T) {
		m, err := s.Register(&TicketState{}, "Recycled", enum.WithValue(2))
		require.NoError(t, err)
		assert.Equal(t, int32(2), m.Value())
	})

	t.Run("keeping the current value only renames", func(t *testing.T) {
		require.NoError(t, s.Redefine(moved, "Renamed Again", 20))
		assert.Equal(t, "Renamed Again", moved.Text())
	})

	t.Run("unregistered member is rejected", func(t *testing.T) {
		err := s.Redefine(&TicketState{}, "Ghost", 99)
		require.Error(t, err)
		assert.True(t, errors.Is(err, enum.ErrInvalidArgument))
	})
}

// TestSet_RedefineRecomputesCeiling verifies that moving the highest value
// downward lowers the floor for subsequent automatic assignment.
func TestSet_RedefineRecomputesCeiling(t *testing.T) {
	s := freshSet[*TicketState]("redefine_max")
	s.MustRegister(&TicketState{}, "Low", enum.WithValue(1))
	high := s.MustRegister(&TicketState{}, "High", enum.WithValue(100))

	require.NoError(t, s.Redefine(high, "High", 5))

	m, err := s.Register(&TicketState{}, "Auto")
	require.NoError(t, err)
	assert.Equal(t, int32(6), m.Value())
}

// TestSet_ConcurrentRegister hammers one set from many goroutines and checks
// that no registration is lost and no value or index is handed out twice.
func TestSet_ConcurrentRegister(t *testing.T) {
	const (
		workers = 8
		perG    = 50
	)
	s := freshSet[*TicketState]("concurrent")

	var wg sync.WaitGroup
	for g := 0; g < workers; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < perG; i++ {
				if _, err := s.Register(&TicketState{}, fmt.Sprintf("W%d-%d", g, i)); err != nil {
					t.Errorf("register: %v", err)
					return
				}
				// Interleave reads with registrations.
				_ = s.Members()
				_, _ = s.LookupValue(int32(math.MinInt32 + 1 + i))
			}
		}(g)
	}
	wg.Wait()

	members := s.Members()
	require.Len(t, members, workers*perG)

	values := make(map[int32]struct{}, len(members))
	indices := make(map[int32]struct{}, len(members))
	for _, m := range members {
		_, dup := values[m.Value()]
		require.False(t, dup, "value %d assigned twice", m.Value())
		values[m.Value()] = struct{}{}

		_, dup = indices[m.Index()]
		require.False(t, dup, "index %d assigned twice", m.Index())
		indices[m.Index()] = struct{}{}
	}
}
