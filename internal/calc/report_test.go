package calc

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func relate(t *testing.T, a, b string) *Report {
	t.Helper()
	e, err := New(ValueTypeInt, nil)
	require.NoError(t, err)
	r, err := e.Relate(a, b)
	require.NoError(t, err)
	return r
}

func TestReport_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, relate(t, "[0, 10]", "[5, 15]").Write(&buf, "text"))
	assert.Equal(t, `[0, 10] overlaps [5, 15]
holds:        overlaps, can-unify, can-subtract
intersection: [5, 10]
union:        [0, 15]
difference:   [0, 5)
`, buf.String())

	buf.Reset()
	require.NoError(t, relate(t, "[0, 10]", "[20, 30]").Write(&buf, ""))
	assert.Equal(t, `[0, 10] disjoint [20, 30]
holds:        disjoint, can-subtract
intersection: ∅
union:        unrepresentable
difference:   [0, 10]
`, buf.String())
}

func TestReport_Holds(t *testing.T) {
	assert.Equal(t, []string{"includes", "can-unify"}, relate(t, "[0, 10]", "[2, 3]").Holds())
	assert.Equal(t,
		[]string{"disjoint", "consecutive", "strictly-consecutive", "can-unify", "can-subtract"},
		relate(t, "(20, 30]", "(30, 40)").Holds())
	assert.Equal(t, []string{"includes", "included-by", "can-unify", "can-subtract"}, relate(t, "[0, 1]", "[0, 1]").Holds())
}

func TestReport_StructuredFormats(t *testing.T) {
	r := relate(t, "[0, 10]", "[2, 3]")

	var buf bytes.Buffer
	require.NoError(t, r.Write(&buf, "json"))
	var fromJSON Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fromJSON))
	assert.Equal(t, *r, fromJSON)
	assert.NotContains(t, buf.String(), "difference")

	buf.Reset()
	require.NoError(t, r.Write(&buf, "yaml"))
	var fromYAML Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &fromYAML))
	assert.Equal(t, *r, fromYAML)
	assert.Contains(t, buf.String(), "relation: includes\n")

	assert.Error(t, r.Write(&buf, "xml"))
}
