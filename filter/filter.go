package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// ItemFilter is a compiled expression evaluated against one payload
// item. Item fields are exposed as top-level variables, so an
// expression like
//
//	content_type == "news" && int(id) > 100
//
// works directly against the decoded JSON objects.
type ItemFilter struct {
	program *vm.Program
	expr    string
}

// Compile compiles a filter expression.
func Compile(expression string) (*ItemFilter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, fmt.Errorf("empty filter expression")
	}

	program, err := expr.Compile(expression,
		expr.Env(helperEnv(nil)),
		expr.AllowUndefinedVariables(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compile filter expression: %w", err)
	}

	return &ItemFilter{
		program: program,
		expr:    expression,
	}, nil
}

// String returns the source expression.
func (f *ItemFilter) String() string {
	return f.expr
}

// Evaluate reports whether the item passes the filter. Evaluation
// errors and non-boolean results count as no match.
func (f *ItemFilter) Evaluate(item map[string]any) bool {
	out, err := expr.Run(f.program, helperEnv(item))
	if err != nil {
		return false
	}
	matched, ok := out.(bool)
	return ok && matched
}

// Apply returns the items that pass the filter. A nil filter passes
// everything through.
func Apply(items []map[string]any, f *ItemFilter) []map[string]any {
	if f == nil {
		return items
	}
	var matched []map[string]any
	for _, item := range items {
		if f.Evaluate(item) {
			matched = append(matched, item)
		}
	}
	return matched
}

// helperEnv builds the evaluation environment: helper functions plus
// the item's own fields as variables. Item fields win on collision so
// payload data is never shadowed by a helper.
func helperEnv(item map[string]any) map[string]any {
	env := map[string]any{
		"Item": item,
		// String helpers
		"contains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"startsWith": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"endsWith": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
		// Date helpers
		"daysSince": func(t time.Time) int {
			return int(time.Since(t).Hours() / 24)
		},
		"parseDate": func(dateStr string) time.Time {
			t, _ := time.Parse("2006-01-02", dateStr)
			return t
		},
		"now": time.Now,
	}
	for k, v := range item {
		env[k] = v
	}
	return env
}
