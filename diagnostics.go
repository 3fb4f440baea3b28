package providermock

import (
	"fmt"
	"strings"

	"github.com/google/go-cmp/cmp"

	"github.com/pay-theory/providermock/pkg/expectation"
)

// listOf renders expectations as "[a, b, c]"
func listOf[T fmt.Stringer](items []T) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = item.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// queryDiffs describes how call differs from each candidate for the same URI
func queryDiffs(candidates []*expectation.Query, call expectation.QueryCall) string {
	var b strings.Builder
	for _, q := range candidates {
		if q.URI() != call.URI {
			continue
		}
		diff := safeDiff(q.Expected(call), call)
		if diff == "" {
			continue
		}
		fmt.Fprintf(&b, "\n  vs %s (-expected +actual):\n%s", q, diff)
	}
	return b.String()
}

// insertDiffs describes how call differs from each candidate for the same URI
func insertDiffs(candidates []*expectation.Insert, call expectation.InsertCall) string {
	var b strings.Builder
	for _, ins := range candidates {
		if ins.URI() != call.URI {
			continue
		}
		diff := safeDiff(ins.Values(), call.Values)
		if diff == "" {
			continue
		}
		fmt.Fprintf(&b, "\n  vs %s (-expected +actual):\n%s", ins, diff)
	}
	return b.String()
}

// safeDiff returns cmp.Diff(x, y), or "" when the values cannot be compared
// (for example structs with unexported fields).
func safeDiff(x, y any) (diff string) {
	defer func() {
		if recover() != nil {
			diff = ""
		}
	}()
	return cmp.Diff(x, y)
}
