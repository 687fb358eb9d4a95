package enum_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/enumkit/pkg/enum"
)

func TestSet_ByOID(t *testing.T) {
	oid := uuid.MustParse("9d2f1a6c-3b8e-4f50-a1c7-2e9d4b6f8a01")
	s := freshSet[*TicketState]("byoid")
	m := s.MustRegister(&TicketState{}, "Pinned", enum.WithOID(oid))

	got, err := s.ByOID(oid)
	require.NoError(t, err)
	assert.Same(t, m, got)

	_, err = s.ByOID(uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, enum.ErrNotFound))

	_, ok := s.LookupOID(uuid.New())
	assert.False(t, ok)
}

func TestSet_ByValue(t *testing.T) {
	got, err := ticketStates.ByValue(2)
	require.NoError(t, err)
	assert.Same(t, ticketInReview, got)

	_, err = ticketStates.ByValue(99)
	require.Error(t, err)
	assert.True(t, errors.Is(err, enum.ErrNotFound))

	m, ok := ticketStates.LookupValue(3)
	require.True(t, ok)
	assert.Same(t, ticketClosed, m)

	_, ok = ticketStates.LookupValue(99)
	assert.False(t, ok)
}

func TestSet_ByText(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		mode    enum.TextMatch
		want    *TicketState
		wantErr error
	}{
		{name: "exact hit", input: "Open", mode: enum.MatchExact, want: ticketOpen},
		{name: "exact is case sensitive", input: "open", mode: enum.MatchExact, wantErr: enum.ErrNotFound},
		{name: "fold hit", input: "open", mode: enum.MatchFold, want: ticketOpen},
		{name: "fold hit with spaces in text", input: "in review", mode: enum.MatchFold, want: ticketInReview},
		{name: "unknown text", input: "Reopened", mode: enum.MatchFold, wantErr: enum.ErrNotFound},
		{name: "blank is invalid", input: "", mode: enum.MatchExact, wantErr: enum.ErrInvalidArgument},
		{name: "whitespace only is invalid", input: "   ", mode: enum.MatchFold, wantErr: enum.ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ticketStates.ByText(tt.input, tt.mode)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Same(t, tt.want, got)
		})
	}
}

// TestSet_LookupText verifies the optional text family treats blank input as
// a plain miss rather than an error.
func TestSet_LookupText(t *testing.T) {
	m, ok := ticketStates.LookupText("closed", enum.MatchFold)
	require.True(t, ok)
	assert.Same(t, ticketClosed, m)

	_, ok = ticketStates.LookupText("closed", enum.MatchExact)
	assert.False(t, ok)

	_, ok = ticketStates.LookupText("", enum.MatchFold)
	assert.False(t, ok)

	_, ok = ticketStates.LookupText("  \t ", enum.MatchFold)
	assert.False(t, ok)
}

// TestSet_LookupHiddenMembers verifies visibility never filters lookups, only
// the visible-only views.
func TestSet_LookupHiddenMembers(t *testing.T) {
	m, ok := ticketStates.LookupValue(4)
	require.True(t, ok)
	assert.Same(t, ticketArchived, m)

	got, err := ticketStates.ByText("Archived", enum.MatchExact)
	require.NoError(t, err)
	assert.Same(t, ticketArchived, got)
}
