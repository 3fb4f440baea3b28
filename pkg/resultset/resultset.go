// Package resultset builds the row-oriented results returned from provider
// queries and exposes them through a forward-only cursor.
package resultset

import (
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/pay-theory/providermock/internal/expr"
	mockerrors "github.com/pay-theory/providermock/pkg/errors"
	"github.com/pay-theory/providermock/pkg/values"
)

// Row is a canned result row: either a field map or positional values.
type Row interface {
	// resolve lays the row out against the resolved column list
	resolve(columns []string) ([]any, error)
	fmt.Stringer
}

// FieldRow is a row given as a field/value map
type FieldRow struct {
	Values values.Values
}

// PositionalRow is a row given as values in column order
type PositionalRow struct {
	Values []any
}

// ByField returns a row whose columns are looked up by name
func ByField(v values.Values) Row {
	return FieldRow{Values: v}
}

// ByPosition returns a row whose values map 1:1 onto the resolved columns
func ByPosition(vals ...any) Row {
	return PositionalRow{Values: vals}
}

func (r FieldRow) resolve(columns []string) ([]any, error) {
	out := make([]any, len(columns))
	for i, col := range columns {
		// Missing fields resolve to nil.
		out[i] = r.Values[col]
	}
	return out, nil
}

func (r FieldRow) String() string {
	return r.Values.String()
}

func (r PositionalRow) resolve(columns []string) ([]any, error) {
	if len(r.Values) != len(columns) {
		return nil, fmt.Errorf("%w: %d values for %d columns %v",
			mockerrors.ErrRowShape, len(r.Values), len(columns), columns)
	}
	return append([]any(nil), r.Values...), nil
}

func (r PositionalRow) String() string {
	return fmt.Sprintf("%v", r.Values)
}

// ResultSet is an in-memory, row-oriented query result
type ResultSet struct {
	columns []string
	rows    [][]any
	pos     int
	closed  bool
}

// Build lays out rows against columns, preserving row order. An empty rows
// slice yields a valid result set with no rows.
func Build(columns []string, rows []Row) (*ResultSet, error) {
	rs := &ResultSet{
		columns: append([]string(nil), columns...),
		rows:    make([][]any, 0, len(rows)),
		pos:     -1,
	}
	for i, row := range rows {
		resolved, err := row.resolve(rs.columns)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		rs.rows = append(rs.rows, resolved)
	}
	return rs, nil
}

// Empty returns a result set with the given columns and no rows
func Empty(columns ...string) *ResultSet {
	rs, _ := Build(columns, nil)
	return rs
}

// Columns returns the result schema
func (rs *ResultSet) Columns() []string {
	return append([]string(nil), rs.columns...)
}

// Len returns the number of rows
func (rs *ResultSet) Len() int {
	return len(rs.rows)
}

// Row returns a copy of row i
func (rs *ResultSet) Row(i int) []any {
	return append([]any(nil), rs.rows[i]...)
}

// ColumnIndex returns the position of name in the schema, or -1
func (rs *ResultSet) ColumnIndex(name string) int {
	for i, col := range rs.columns {
		if col == name {
			return i
		}
	}
	return -1
}

// Next advances the cursor and reports whether a row is available
func (rs *ResultSet) Next() bool {
	if rs.closed || rs.pos+1 >= len(rs.rows) {
		rs.pos = len(rs.rows)
		return false
	}
	rs.pos++
	return true
}

// Values returns the current row
func (rs *ResultSet) Values() ([]any, error) {
	if err := rs.checkPosition(); err != nil {
		return nil, err
	}
	return rs.Row(rs.pos), nil
}

// Get returns the named column of the current row
func (rs *ResultSet) Get(column string) (any, error) {
	if err := rs.checkPosition(); err != nil {
		return nil, err
	}
	i := rs.ColumnIndex(column)
	if i < 0 {
		return nil, fmt.Errorf("resultset: no column %q in %v", column, rs.columns)
	}
	return rs.rows[rs.pos][i], nil
}

// Scan copies the current row into dest, which must hold one pointer per
// column. A nil dest entry skips that column.
func (rs *ResultSet) Scan(dest ...any) error {
	if err := rs.checkPosition(); err != nil {
		return err
	}
	if len(dest) != len(rs.columns) {
		return fmt.Errorf("resultset: expected %d destination arguments in Scan, got %d", len(rs.columns), len(dest))
	}
	for i, d := range dest {
		if d == nil {
			continue
		}
		if err := assign(d, rs.rows[rs.pos][i]); err != nil {
			return fmt.Errorf("resultset: column %q: %w", rs.columns[i], err)
		}
	}
	return nil
}

// Close releases the cursor; further Next calls return false
func (rs *ResultSet) Close() error {
	rs.closed = true
	return nil
}

// Maps returns every row keyed by column name
func (rs *ResultSet) Maps() []values.Values {
	out := make([]values.Values, len(rs.rows))
	for i, row := range rs.rows {
		m := make(values.Values, len(rs.columns))
		for j, col := range rs.columns {
			m[col] = row[j]
		}
		out[i] = m
	}
	return out
}

// Items renders every row as a DynamoDB item
func (rs *ResultSet) Items() ([]map[string]types.AttributeValue, error) {
	maps := rs.Maps()
	items := make([]map[string]types.AttributeValue, len(maps))
	for i, m := range maps {
		item, err := expr.ToItem(m)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		items[i] = item
	}
	return items, nil
}

// String renders the schema and rows for diagnostics
func (rs *ResultSet) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v", rs.columns)
	for _, row := range rs.rows {
		fmt.Fprintf(&b, " %v", row)
	}
	return b.String()
}

func (rs *ResultSet) checkPosition() error {
	if rs.closed {
		return fmt.Errorf("resultset: closed")
	}
	if rs.pos < 0 || rs.pos >= len(rs.rows) {
		return fmt.Errorf("resultset: no current row")
	}
	return nil
}
