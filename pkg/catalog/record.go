package catalog

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ahrav/enumkit/pkg/enum"
)

// Record is the wire form of a member identity. The field set and names are
// the on-disk contract; decoders accept them case-insensitively.
type Record struct {
	Text    string `json:"text" yaml:"text" validate:"max=256"`
	Value   int32  `json:"value" yaml:"value"`
	Index   int32  `json:"index" yaml:"index"`
	OID     string `json:"oid" yaml:"oid" validate:"required,uuid"`
	Visible bool   `json:"isVisible" yaml:"isVisible"`
}

// RecordOf projects a detached identity into its wire form. The OID is
// rendered in canonical 8-4-4-4-12 text.
func RecordOf(id enum.Identity) Record {
	return Record{
		Text:    id.Text,
		Value:   id.Value,
		Index:   id.Index,
		OID:     id.OID.String(),
		Visible: id.Visible,
	}
}

// Identity converts the record back into a detached identity. A malformed
// OID fails with enum.ErrInvalidArgument.
func (r Record) Identity() (enum.Identity, error) {
	oid, err := uuid.Parse(r.OID)
	if err != nil {
		return enum.Identity{}, fmt.Errorf("record %q: bad oid %q: %w", r.Text, r.OID, enum.ErrInvalidArgument)
	}
	return enum.Identity{
		Text:    r.Text,
		Value:   r.Value,
		Index:   r.Index,
		OID:     oid,
		Visible: r.Visible,
	}, nil
}

// Snapshot captures a set's members in registration order as records.
func Snapshot(view enum.SetView) []Record {
	ids := view.Identities()
	out := make([]Record, len(ids))
	for i, id := range ids {
		out[i] = RecordOf(id)
	}
	return out
}
