package enum

import "github.com/google/uuid"

// Entry is the base value object embedded in every member of a rich
// enumeration type. It carries the member's display text, its stable numeric
// value, a presentation sort index, a 128-bit object identifier, and a
// visibility flag for list-style UI surfaces.
//
// Entries are populated exclusively through a Set's Register call and are
// immutable afterwards, with the single exception of Set.Redefine. The zero
// Entry is unregistered and carries no identity.
type Entry struct {
	// Identity.
	oid uuid.UUID

	// Projection and presentation.
	text    string
	value   int32
	index   int32
	visible bool
}

// Member is the interface satisfied by every enumeration member type. It is
// sealed: only pointer types embedding Entry implement it.
type Member interface {
	base() *Entry
}

func (e *Entry) base() *Entry { return e }

// Text returns the member's display text.
func (e *Entry) Text() string { return e.text }

// Value returns the member's stable numeric value. The value is unique within
// the member's Set and doubles as its equality and hash key, so comparing a
// member against a raw integer is simply e.Value() == n.
func (e *Entry) Value() int32 { return e.value }

// Index returns the member's presentation sort index, unique within its Set.
func (e *Entry) Index() int32 { return e.index }

// OID returns the member's object identifier. OIDs identify a member across
// serialization boundaries, independent of text and value.
func (e *Entry) OID() uuid.UUID { return e.oid }

// Visible reports whether the member should appear in list-style UI surfaces.
func (e *Entry) Visible() bool { return e.visible }

// String returns the display text. This implements fmt.Stringer.
func (e *Entry) String() string { return e.text }

// Identity returns a detached snapshot of the member. Mutating the returned
// value has no effect on the member or its Set.
func (e *Entry) Identity() Identity {
	return Identity{
		Text:    e.text,
		Value:   e.value,
		Index:   e.index,
		OID:     e.oid,
		Visible: e.visible,
	}
}
