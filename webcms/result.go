package webcms

// Result is the decoded payload of an API call.
//
// When the client itself detects a failure it synthesizes a map with
// "status", "message" and "data" keys. On success the decoded payload
// is returned untouched, so the two shapes are intentionally not
// uniform; existing consumers of the upstream API rely on success
// payloads arriving without a wrapper.
type Result map[string]any

// OK reports whether the result carries a failure marker. A payload
// without a boolean "status" key counts as OK.
func (r Result) OK() bool {
	status, ok := r["status"].(bool)
	return !ok || status
}

// Message returns the "message" field, or "" when absent.
func (r Result) Message() string {
	m, _ := r["message"].(string)
	return m
}

// Data returns the "data" field, or nil when absent.
func (r Result) Data() any {
	return r["data"]
}

// Items extracts the "data" array as a slice of objects, for callers
// that post-process list payloads. Payloads whose data is not a list
// yield nil.
func (r Result) Items() []map[string]any {
	list, ok := r["data"].([]any)
	if !ok {
		return nil
	}
	items := make([]map[string]any, 0, len(list))
	for _, entry := range list {
		if m, ok := entry.(map[string]any); ok {
			items = append(items, m)
		}
	}
	return items
}
