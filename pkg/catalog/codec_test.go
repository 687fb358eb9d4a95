package catalog_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/enumkit/pkg/catalog"
	"github.com/ahrav/enumkit/pkg/enum"
)

const testOID = "7a1e9f04-2c3b-4d58-86a1-0f9e8d7c6b5a"

func sampleRecords() []catalog.Record {
	return []catalog.Record{
		{Text: "Low", Value: 10, Index: 1, OID: testOID, Visible: true},
	}
}

// TestEncodeJSON_Layout pins the on-disk layout: a pretty-printed array with
// two-space indent, the contract field names, and a trailing newline.
func TestEncodeJSON_Layout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, catalog.EncodeJSON(&buf, sampleRecords()))

	want := `[
  {
    "text": "Low",
    "value": 10,
    "index": 1,
    "oid": "` + testOID + `",
    "isVisible": true
  }
]
`
	assert.Equal(t, want, buf.String())
}

func TestEncodeJSON_NilIsEmptyArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, catalog.EncodeJSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

// TestDecodeJSON_CaseInsensitiveFields verifies field names decode regardless
// of casing, which is what lets catalogs written by other tooling load.
func TestDecodeJSON_CaseInsensitiveFields(t *testing.T) {
	doc := `[{"TEXT":"Low","VALUE":10,"Index":1,"Oid":"` + testOID + `","ISVISIBLE":true}]`

	recs, err := catalog.DecodeJSON(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Low", recs[0].Text)
	assert.Equal(t, int32(10), recs[0].Value)
	assert.Equal(t, int32(1), recs[0].Index)
	assert.Equal(t, testOID, recs[0].OID)
	assert.True(t, recs[0].Visible)
}

func TestDecodeJSON_UnknownFieldsIgnored(t *testing.T) {
	doc := `[{"text":"Low","value":10,"index":1,"oid":"` + testOID + `","isVisible":true,"color":"red"}]`

	recs, err := catalog.DecodeJSON(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Low", recs[0].Text)
}

func TestDecodeJSON_Malformed(t *testing.T) {
	_, err := catalog.DecodeJSON(strings.NewReader(`{"not":"an array"}`))
	require.Error(t, err)

	_, err = catalog.DecodeJSON(strings.NewReader(`[{"value":"ten"}]`))
	require.Error(t, err)
}

func TestEncodeYAML_UsesContractKeys(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, catalog.EncodeYAML(&buf, sampleRecords()))

	out := buf.String()
	assert.Contains(t, out, "- text: Low")
	assert.Contains(t, out, "isVisible: true")
	assert.Contains(t, out, "oid: "+testOID)

	recs, err := catalog.DecodeYAML(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, sampleRecords(), recs)
}

func TestDecodeYAML_EmptyDocument(t *testing.T) {
	recs, err := catalog.DecodeYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestRecord_Identity(t *testing.T) {
	r := sampleRecords()[0]

	id, err := r.Identity()
	require.NoError(t, err)
	assert.Equal(t, "Low", id.Text)
	assert.Equal(t, testOID, id.OID.String())

	t.Run("malformed oid", func(t *testing.T) {
		r := r
		r.OID = "not-a-uuid"
		_, err := r.Identity()
		require.Error(t, err)
		assert.True(t, errors.Is(err, enum.ErrInvalidArgument))
	})
}

// Cider members back the Snapshot test with a set whose records are known.
type Cider struct{ enum.Entry }

var (
	ciders     = enum.NewSet[*Cider]("cider")
	ciderDry   = ciders.MustRegister(&Cider{}, "Dry", enum.WithValue(1), enum.WithIndex(2))
	ciderSweet = ciders.MustRegister(&Cider{}, "Sweet", enum.WithValue(2), enum.WithIndex(1))
)

func TestSnapshot(t *testing.T) {
	view, ok := enum.Lookup("cider")
	require.True(t, ok)

	recs := catalog.Snapshot(view)
	require.Len(t, recs, 2)

	assert.Equal(t, "Dry", recs[0].Text)
	assert.Equal(t, int32(1), recs[0].Value)
	assert.Equal(t, ciderDry.OID().String(), recs[0].OID)
	assert.Equal(t, "Sweet", recs[1].Text)
	assert.Equal(t, ciderSweet.OID().String(), recs[1].OID)
	assert.True(t, recs[1].Visible)
}
