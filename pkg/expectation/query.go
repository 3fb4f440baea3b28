package expectation

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"

	"github.com/pay-theory/providermock/pkg/resource"
	"github.com/pay-theory/providermock/pkg/resultset"
	"github.com/pay-theory/providermock/pkg/values"
)

// Query is an expected query. The handle returned at registration is live:
// configuration applied through its methods takes effect for every later
// call, so finish configuring it before exercising the code under test.
type Query struct {
	uri            resource.URI
	columns        []string
	defaultColumns []string
	filter         string
	filterArgs     []any
	orderBy        string
	rows           []resultset.Row
	setupErr       error

	anyColumns       bool
	anyFilter        bool
	anyOrderBy       bool
	anyNumberOfTimes bool

	calls int
}

// NewQuery creates a query expectation for uri with no columns, filter or
// ordering, returning no rows.
func NewQuery(uri resource.URI) *Query {
	return &Query{uri: uri}
}

// WithColumns expects exactly these columns, in this order
func (q *Query) WithColumns(columns ...string) *Query {
	q.columns = columns
	if q.columns == nil {
		q.columns = []string{}
	}
	return q
}

// WithDefaultColumns sets the result schema used when no exact columns are
// expected. It does not take part in matching.
func (q *Query) WithDefaultColumns(columns ...string) *Query {
	q.defaultColumns = columns
	return q
}

// WithAnyColumns matches any requested columns and shapes the result with
// the columns the caller requested.
func (q *Query) WithAnyColumns() *Query {
	q.anyColumns = true
	return q
}

// WithFilter expects exactly this filter expression and arguments
func (q *Query) WithFilter(filter string, args ...any) *Query {
	q.filter = filter
	q.filterArgs = args
	return q
}

// WithAnyFilter matches any filter expression and any filter arguments
func (q *Query) WithAnyFilter() *Query {
	q.anyFilter = true
	return q
}

// WithOrderBy expects exactly this ordering expression
func (q *Query) WithOrderBy(orderBy string) *Query {
	q.orderBy = orderBy
	return q
}

// WithAnyOrderBy matches any ordering expression
func (q *Query) WithAnyOrderBy() *Query {
	q.anyOrderBy = true
	return q
}

// ReturnRow appends a row given as a field map
func (q *Query) ReturnRow(row values.Values) *Query {
	q.rows = append(q.rows, resultset.ByField(row))
	return q
}

// ReturnValues appends a row given positionally in result column order
func (q *Query) ReturnValues(vals ...any) *Query {
	q.rows = append(q.rows, resultset.ByPosition(vals...))
	return q
}

// ReturnItem appends a row given as a DynamoDB item. Conversion errors are
// reported when the expectation is matched.
func (q *Query) ReturnItem(item map[string]types.AttributeValue) *Query {
	row, err := values.FromItem(item)
	if err != nil {
		q.setupErr = fmt.Errorf("ReturnItem: %w", err)
		return q
	}
	return q.ReturnRow(row)
}

// ReturnEmpty discards any rows added so far so the query yields an empty result
func (q *Query) ReturnEmpty() *Query {
	q.rows = nil
	return q
}

// AnyNumberOfTimes lets the expectation match repeatedly and exempts it from
// removal on match.
func (q *Query) AnyNumberOfTimes() *Query {
	q.anyNumberOfTimes = true
	return q
}

// URI returns the expected resource
func (q *Query) URI() resource.URI {
	return q.uri
}

// Repeatable reports whether AnyNumberOfTimes was set
func (q *Query) Repeatable() bool {
	return q.anyNumberOfTimes
}

// Executed reports whether the expectation matched at least once
func (q *Query) Executed() bool {
	return q.calls > 0
}

// Calls returns how many times the expectation matched
func (q *Query) Calls() int {
	return q.calls
}

// Matches reports whether call satisfies every non-wildcarded criterion
func (q *Query) Matches(call QueryCall) bool {
	if call.URI != q.uri {
		return false
	}
	if !q.anyColumns && !columnsEqual(call.Columns, q.columns) {
		return false
	}
	if !q.anyFilter && (call.Filter != q.filter || !argsEqual(call.FilterArgs, q.filterArgs)) {
		return false
	}
	if !q.anyOrderBy && call.OrderBy != q.orderBy {
		return false
	}
	return true
}

// Expected returns the call this expectation describes, with wildcarded
// criteria copied from call so that only real differences remain.
func (q *Query) Expected(call QueryCall) QueryCall {
	want := QueryCall{
		URI:        q.uri,
		Columns:    q.columns,
		Filter:     q.filter,
		FilterArgs: q.filterArgs,
		OrderBy:    q.orderBy,
	}
	if q.anyColumns {
		want.Columns = call.Columns
	}
	if q.anyFilter {
		want.Filter = call.Filter
		want.FilterArgs = call.FilterArgs
	}
	if q.anyOrderBy {
		want.OrderBy = call.OrderBy
	}
	return want
}

// ResultColumns resolves the result schema for a call that requested columns
func (q *Query) ResultColumns(requested []string) []string {
	if q.anyColumns {
		return requested
	}
	if q.columns != nil {
		return q.columns
	}
	return q.defaultColumns
}

// Result builds the canned result for a call that requested columns
func (q *Query) Result(requested []string) (*resultset.ResultSet, error) {
	if q.setupErr != nil {
		return nil, q.setupErr
	}
	return resultset.Build(q.ResultColumns(requested), q.rows)
}

// String renders the expectation; wildcarded criteria print as "*"
func (q *Query) String() string {
	var b strings.Builder
	b.WriteString(q.uri.String())
	b.WriteByte(' ')
	switch {
	case q.anyColumns:
		b.WriteString("[*]")
	case q.columns != nil:
		fmt.Fprintf(&b, "%v", q.columns)
	default:
		b.WriteString("[]")
	}
	switch {
	case q.anyFilter:
		b.WriteString(" filter: *")
	case q.filter != "":
		fmt.Fprintf(&b, " filter: '%s'%v", q.filter, formatArgs(q.filterArgs))
	}
	switch {
	case q.anyOrderBy:
		b.WriteString(" order: *")
	case q.orderBy != "":
		fmt.Fprintf(&b, " order: '%s'", q.orderBy)
	}
	if q.anyNumberOfTimes {
		b.WriteString(" (any number of times)")
	}
	return b.String()
}

func (q *Query) markExecuted() {
	q.calls++
}

// columnsEqual distinguishes a nil projection from an empty one
func columnsEqual(a, b []string) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return slices.Equal(a, b)
}

// argsEqual treats nil and empty argument lists as equal
func argsEqual(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !assert.ObjectsAreEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func formatArgs(args []any) string {
	if args == nil {
		return "[]"
	}
	return fmt.Sprintf("%v", args)
}
