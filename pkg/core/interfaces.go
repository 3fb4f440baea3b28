// Package core defines the core interfaces for providermock
package core

import (
	"github.com/pay-theory/providermock/pkg/expectation"
	"github.com/pay-theory/providermock/pkg/resource"
	"github.com/pay-theory/providermock/pkg/resultset"
	"github.com/pay-theory/providermock/pkg/values"
)

// ContentProvider is the structured-query data provider the code under test
// talks to. Resources are addressed by URI.
type ContentProvider interface {
	// Query returns the rows of uri restricted to columns, filtered by
	// filter/filterArgs and ordered by orderBy. Empty strings mean "absent"
	// and nil columns mean "provider default".
	Query(uri resource.URI, columns []string, filter string, filterArgs []any, orderBy string) (*resultset.ResultSet, error)

	// GetType returns the type string of uri
	GetType(uri resource.URI) (string, error)

	// Insert stores fields below uri and returns the URI of the new item
	Insert(uri resource.URI, fields values.Values) (resource.URI, error)
}

// Expecter registers expectations against a provider double
type Expecter interface {
	// ExpectQuery registers a query expectation and returns it for configuration
	ExpectQuery(uri resource.URI) *expectation.Query

	// ExpectTypeQuery registers the type returned for uri
	ExpectTypeQuery(uri resource.URI, typ string)

	// ExpectInsert registers an insert expectation; nil is returned when an
	// argument is missing
	ExpectInsert(uri resource.URI, fields values.Values, result resource.URI) *expectation.Insert
}
