package catalog

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Check validates recs field by field and rejects duplicate values, indices,
// or OIDs within the slice. Errors name the first offending record so a bad
// catalog file can be fixed by hand.
func Check(recs []Record) error {
	values := make(map[int32]string, len(recs))
	indices := make(map[int32]string, len(recs))
	oids := make(map[string]string, len(recs))

	for i, r := range recs {
		if err := validate.Struct(r); err != nil {
			return fmt.Errorf("record %d (%q): %w", i, r.Text, err)
		}

		if prev, dup := values[r.Value]; dup {
			return fmt.Errorf("record %d (%q): value %d already used by %q", i, r.Text, r.Value, prev)
		}
		values[r.Value] = r.Text

		if prev, dup := indices[r.Index]; dup {
			return fmt.Errorf("record %d (%q): index %d already used by %q", i, r.Text, r.Index, prev)
		}
		indices[r.Index] = r.Text

		oid := canonicalOID(r.OID)
		if prev, dup := oids[oid]; dup {
			return fmt.Errorf("record %d (%q): oid %s already used by %q", i, r.Text, oid, prev)
		}
		oids[oid] = r.Text
	}
	return nil
}

// canonicalOID lowers an OID into its canonical text so records written with
// different casings still collide.
func canonicalOID(s string) string {
	id, err := uuid.Parse(s)
	if err != nil {
		return s
	}
	return id.String()
}
