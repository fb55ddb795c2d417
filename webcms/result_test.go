package webcms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultOK(t *testing.T) {
	tests := []struct {
		name string
		res  Result
		want bool
	}{
		{"nil result", nil, true},
		{"no status key", Result{"items": []any{}}, true},
		{"status true", Result{"status": true}, true},
		{"status false", Result{"status": false}, false},
		{"non-boolean status", Result{"status": "ok"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.res.OK())
		})
	}
}

func TestResultMessage(t *testing.T) {
	assert.Equal(t, "boom", Result{"message": "boom"}.Message())
	assert.Equal(t, "", Result{}.Message())
	assert.Equal(t, "", Result{"message": 7}.Message())
}

func TestResultData(t *testing.T) {
	assert.Equal(t, "payload", Result{"data": "payload"}.Data())
	assert.Nil(t, Result{}.Data())
}

func TestResultItems(t *testing.T) {
	t.Run("object list", func(t *testing.T) {
		res := Result{"data": []any{
			map[string]any{"id": float64(1)},
			map[string]any{"id": float64(2)},
			"stray scalar entry",
		}}

		items := res.Items()
		assert.Len(t, items, 2)
		assert.Equal(t, float64(1), items[0]["id"])
	})

	t.Run("data is not a list", func(t *testing.T) {
		assert.Nil(t, Result{"data": map[string]any{"id": float64(1)}}.Items())
		assert.Nil(t, Result{}.Items())
	})
}
