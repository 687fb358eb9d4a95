package enum

import "github.com/google/uuid"

// Identity is the detached, serializable projection of a member. It mirrors
// the member's fields one for one and shares no state with the Set the member
// was registered in, so callers may hold and mutate it freely.
type Identity struct {
	Text    string    `json:"text"`
	Value   int32     `json:"value"`
	Index   int32     `json:"index"`
	OID     uuid.UUID `json:"oid"`
	Visible bool      `json:"isVisible"`
}
