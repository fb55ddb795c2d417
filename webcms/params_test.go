package webcms

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsEncodeOrder(t *testing.T) {
	p := NewParams().
		Set("zeta", "last-alphabetically").
		Set("alpha", "first-alphabetically").
		Set("limit", 5)

	// Insertion order, not url.Values' sorted order.
	assert.Equal(t, "zeta=last-alphabetically&alpha=first-alphabetically&limit=5", p.Encode())
	assert.Equal(t, []string{"zeta", "alpha", "limit"}, p.Keys())
}

func TestParamsEncodeRoundTrip(t *testing.T) {
	p := NewParams().
		Set("name", "summer festival").
		Set("limit", 10).
		Set("start", 0).
		Set("has_uploaded_file", true).
		Set("prefix", "a&b=c")

	parsed, err := url.ParseQuery(p.Encode())
	require.NoError(t, err)

	want := url.Values{
		"name":              {"summer festival"},
		"limit":             {"10"},
		"start":             {"0"},
		"has_uploaded_file": {"true"},
		"prefix":            {"a&b=c"},
	}
	assert.Equal(t, want, parsed)
}

func TestParamsSetReplaces(t *testing.T) {
	p := NewParams().
		Set("limit", 5).
		Set("start", 10).
		Set("limit", 20)

	// Replacing keeps the original position.
	assert.Equal(t, "limit=20&start=10", p.Encode())
	assert.Equal(t, 2, p.Len())
}

func TestParamsGet(t *testing.T) {
	p := NewParams().
		Set("name", "welcome").
		Set("limit", 5).
		Set("published", false)

	tests := []struct {
		key   string
		want  string
		found bool
	}{
		{"name", "welcome", true},
		{"limit", "5", true},
		{"published", "false", true},
		{"missing", "", false},
	}

	for _, tt := range tests {
		got, ok := p.Get(tt.key)
		assert.Equal(t, tt.found, ok, tt.key)
		assert.Equal(t, tt.want, got, tt.key)
	}
}

func TestParamsNilReceiver(t *testing.T) {
	var p *Params
	assert.Equal(t, 0, p.Len())
	assert.Nil(t, p.Keys())

	_, ok := p.Get("anything")
	assert.False(t, ok)
}

func TestParamsMarshalJSON(t *testing.T) {
	p := NewParams().
		Set("timeline", "upcoming").
		Set("limit", 5).
		Set("archived", false)

	b, err := json.Marshal(p)
	require.NoError(t, err)

	// Insertion order and native scalar types survive.
	assert.Equal(t, `{"timeline":"upcoming","limit":5,"archived":false}`, string(b))
}

func TestParamsMarshalJSONEmpty(t *testing.T) {
	b, err := json.Marshal(NewParams())
	require.NoError(t, err)
	assert.Equal(t, "{}", string(b))
}

func TestParamsNonScalarFallback(t *testing.T) {
	p := NewParams().Set("ids", []int{1, 2, 3})

	got, ok := p.Get("ids")
	require.True(t, ok)
	assert.Equal(t, "[1 2 3]", got)
}
