package request_models

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTags(t *testing.T) {
	cases := map[string][]string{
		`["unesco","architecture"]`: {"unesco", "architecture"},
		"nature, hiking ,,views":    {"nature", "hiking", "views"},
		"single":                    {"single"},
		"   ":                       nil,
		"[not json":                 {"[not json"},
	}
	for in, want := range cases {
		assert.Equal(t, want, DecodeTags(in), in)
	}
}

func TestNormalizeTags(t *testing.T) {
	got := NormalizeTags([]string{" UNESCO", "heritage", "unesco", "", "Heritage "})
	assert.Equal(t, []string{"unesco", "heritage"}, got)
}

func TestTags_UnmarshalJSON(t *testing.T) {
	var v struct {
		A Tags `json:"a"`
		B Tags `json:"b"`
		C Tags `json:"c"`
	}
	raw := `{"a":["x","y"],"b":"[\"p\",\"q\"]","c":"m, n"}`
	require.NoError(t, json.Unmarshal([]byte(raw), &v))

	assert.Equal(t, Tags{"x", "y"}, v.A)
	assert.Equal(t, Tags{"p", "q"}, v.B)
	assert.Equal(t, Tags{"m", "n"}, v.C)

	assert.Error(t, json.Unmarshal([]byte(`{"a":42}`), &v))
}

func TestVisitedPlace_Day(t *testing.T) {
	assert.Equal(t, 1, VisitedPlace{}.Day())
	assert.Equal(t, 3, VisitedPlace{PlannedDay: 3}.Day())
}
