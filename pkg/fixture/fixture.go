// Package fixture loads expectations from YAML documents so that large
// canned datasets can live next to the tests that use them.
//
// A fixture looks like:
//
//	types:
//	  - uri: content://contacts/people/1
//	    type: vnd.example.item/person
//	queries:
//	  - uri: content://contacts/people
//	    columns: [id, name]
//	    filter: name = ?
//	    filter_args: [alice]
//	    order_by: id ASC
//	    rows:
//	      - {id: 1, name: alice}
//	    values:
//	      - [2, bob]
//	  - uri: content://contacts/groups
//	    any_columns: true
//	    any_filter: true
//	    any_order_by: true
//	    any_number_of_times: true
//	    empty: true
//	inserts:
//	  - uri: content://contacts/people
//	    values: {name: carol}
//	    result: content://contacts/people/3
//
// Field rows (rows) are added before positional rows (values).
package fixture

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pay-theory/providermock/pkg/core"
	"github.com/pay-theory/providermock/pkg/resource"
	"github.com/pay-theory/providermock/pkg/values"
)

// Fixture is a set of expectations
type Fixture struct {
	Types   []TypeFixture   `yaml:"types"`
	Queries []QueryFixture  `yaml:"queries"`
	Inserts []InsertFixture `yaml:"inserts"`
}

// TypeFixture is a type lookup expectation
type TypeFixture struct {
	URI  string `yaml:"uri"`
	Type string `yaml:"type"`
}

// QueryFixture is a query expectation
type QueryFixture struct {
	URI              string           `yaml:"uri"`
	Columns          []string         `yaml:"columns"`
	DefaultColumns   []string         `yaml:"default_columns"`
	Filter           string           `yaml:"filter"`
	FilterArgs       []any            `yaml:"filter_args"`
	OrderBy          string           `yaml:"order_by"`
	AnyColumns       bool             `yaml:"any_columns"`
	AnyFilter        bool             `yaml:"any_filter"`
	AnyOrderBy       bool             `yaml:"any_order_by"`
	AnyNumberOfTimes bool             `yaml:"any_number_of_times"`
	Empty            bool             `yaml:"empty"`
	Rows             []map[string]any `yaml:"rows"`
	Values           [][]any          `yaml:"values"`
}

// InsertFixture is an insert expectation
type InsertFixture struct {
	URI              string         `yaml:"uri"`
	Values           map[string]any `yaml:"values"`
	Result           string         `yaml:"result"`
	AnyNumberOfTimes bool           `yaml:"any_number_of_times"`
}

// Parse decodes a fixture and validates its URIs
func Parse(r io.Reader) (*Fixture, error) {
	var f Fixture
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return &f, nil
		}
		return nil, fmt.Errorf("failed to decode fixture: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Load reads and parses the fixture file at path
func Load(path string) (*Fixture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fixture: %w", err)
	}
	defer file.Close()

	f, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Validate checks every URI and the required insert fields
func (f *Fixture) Validate() error {
	for i, tf := range f.Types {
		if _, err := resource.Parse(tf.URI); err != nil {
			return fmt.Errorf("types[%d]: %w", i, err)
		}
	}
	for i, qf := range f.Queries {
		if _, err := resource.Parse(qf.URI); err != nil {
			return fmt.Errorf("queries[%d]: %w", i, err)
		}
	}
	for i, inf := range f.Inserts {
		if _, err := resource.Parse(inf.URI); err != nil {
			return fmt.Errorf("inserts[%d]: %w", i, err)
		}
		if inf.Values == nil {
			return fmt.Errorf("inserts[%d]: values are required", i)
		}
		if _, err := resource.Parse(inf.Result); err != nil {
			return fmt.Errorf("inserts[%d]: result: %w", i, err)
		}
	}
	return nil
}

// Apply registers every expectation with e: types first, then queries and
// inserts in document order.
func (f *Fixture) Apply(e core.Expecter) {
	for _, tf := range f.Types {
		e.ExpectTypeQuery(resource.URI(tf.URI), tf.Type)
	}

	for _, qf := range f.Queries {
		q := e.ExpectQuery(resource.URI(qf.URI))
		if q == nil {
			continue
		}
		if qf.Columns != nil {
			q.WithColumns(qf.Columns...)
		}
		if qf.DefaultColumns != nil {
			q.WithDefaultColumns(qf.DefaultColumns...)
		}
		if qf.Filter != "" || qf.FilterArgs != nil {
			q.WithFilter(qf.Filter, qf.FilterArgs...)
		}
		if qf.OrderBy != "" {
			q.WithOrderBy(qf.OrderBy)
		}
		if qf.AnyColumns {
			q.WithAnyColumns()
		}
		if qf.AnyFilter {
			q.WithAnyFilter()
		}
		if qf.AnyOrderBy {
			q.WithAnyOrderBy()
		}
		for _, row := range qf.Rows {
			q.ReturnRow(values.Values(row))
		}
		for _, row := range qf.Values {
			q.ReturnValues(row...)
		}
		if qf.Empty {
			q.ReturnEmpty()
		}
		if qf.AnyNumberOfTimes {
			q.AnyNumberOfTimes()
		}
	}

	for _, inf := range f.Inserts {
		ins := e.ExpectInsert(resource.URI(inf.URI), values.Values(inf.Values), resource.URI(inf.Result))
		if ins != nil && inf.AnyNumberOfTimes {
			ins.AnyNumberOfTimes()
		}
	}
}

// LoadInto loads the fixture at path and applies it to e
func LoadInto(e core.Expecter, path string) error {
	f, err := Load(path)
	if err != nil {
		return err
	}
	f.Apply(e)
	return nil
}
