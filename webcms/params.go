package webcms

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Params is an ordered set of request parameters. url.Values sorts
// keys on Encode, but the API expects parameters in the order the
// caller supplied them, so Params keeps insertion order. The client
// does not validate which keys an endpoint accepts.
type Params struct {
	keys   []string
	values map[string]any
}

// NewParams returns an empty parameter set.
func NewParams() *Params {
	return &Params{values: make(map[string]any)}
}

// Set adds or replaces a parameter and returns the receiver for
// chaining. Strings, integers and booleans keep their native JSON
// type; anything else is stored through fmt.Sprint.
func (p *Params) Set(key string, value any) *Params {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	switch value.(type) {
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		p.values[key] = value
	default:
		p.values[key] = fmt.Sprint(value)
	}
	return p
}

// Get returns the string form of a parameter value.
func (p *Params) Get(key string) (string, bool) {
	if p == nil {
		return "", false
	}
	v, ok := p.values[key]
	if !ok {
		return "", false
	}
	return stringify(v), true
}

// Len returns the number of parameters. A nil receiver is empty.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Keys returns parameter names in insertion order.
func (p *Params) Keys() []string {
	if p == nil {
		return nil
	}
	keys := make([]string, len(p.keys))
	copy(keys, p.keys)
	return keys
}

// Encode serializes the parameters as a standard form-encoded query
// string, in insertion order.
func (p *Params) Encode() string {
	if p.Len() == 0 {
		return ""
	}
	var b strings.Builder
	for i, k := range p.keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(stringify(p.values[k])))
	}
	return b.String()
}

// MarshalJSON emits a JSON object preserving insertion order and
// native scalar types. This is the request body for non-GET calls.
func (p *Params) MarshalJSON() ([]byte, error) {
	if p.Len() == 0 {
		return []byte("{}"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(p.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		return fmt.Sprint(t)
	}
}
