// Package expectation holds the expectations registered against the
// provider double and the store that matches live calls against them.
//
// Expectations are matched in registration order; the first whose
// non-wildcarded criteria all equal the call wins. Non-repeatable
// expectations are removed as soon as they match.
package expectation

import (
	"fmt"
	"strings"

	"github.com/pay-theory/providermock/pkg/resource"
	"github.com/pay-theory/providermock/pkg/values"
)

// QueryCall is a query issued by the code under test
type QueryCall struct {
	URI        resource.URI
	Columns    []string
	Filter     string
	FilterArgs []any
	OrderBy    string
}

// String renders the call as "uri [cols] filter: 'expr'[args] order: 'expr'"
func (c QueryCall) String() string {
	return formatQuery(c.URI, c.Columns, c.Filter, c.FilterArgs, c.OrderBy)
}

// InsertCall is an insert issued by the code under test
type InsertCall struct {
	URI    resource.URI
	Values values.Values
}

// String implements fmt.Stringer
func (c InsertCall) String() string {
	return fmt.Sprintf("Insert{uri=%s, values=%s}", c.URI, c.Values)
}

func formatQuery(uri resource.URI, columns []string, filter string, args []any, orderBy string) string {
	var b strings.Builder
	b.WriteString(uri.String())
	b.WriteByte(' ')
	if columns != nil {
		fmt.Fprintf(&b, "%v", columns)
	} else {
		b.WriteString("[]")
	}
	if filter != "" {
		fmt.Fprintf(&b, " filter: '%s'", filter)
		if args != nil {
			fmt.Fprintf(&b, "%v", args)
		} else {
			b.WriteString("[]")
		}
	}
	if orderBy != "" {
		fmt.Fprintf(&b, " order: '%s'", orderBy)
	}
	return b.String()
}
