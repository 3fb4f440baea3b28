package expectation

import (
	"slices"
	"sort"

	"github.com/pay-theory/providermock/pkg/resource"
)

// Store holds outstanding expectations. It is not safe for concurrent use;
// a Store belongs to the goroutine driving a single test.
type Store struct {
	queries []*Query
	types   map[resource.URI]string
	inserts []*Insert
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{types: make(map[resource.URI]string)}
}

// AddQuery appends q to the outstanding queries
func (s *Store) AddQuery(q *Query) {
	s.queries = append(s.queries, q)
}

// SetType registers the type for uri, replacing any earlier registration.
// It reports whether an earlier registration was replaced.
func (s *Store) SetType(uri resource.URI, typ string) (replaced bool) {
	_, replaced = s.types[uri]
	s.types[uri] = typ
	return replaced
}

// AddInsert appends i to the outstanding inserts
func (s *Store) AddInsert(i *Insert) {
	s.inserts = append(s.inserts, i)
}

// HasQueries reports whether any query expectation is outstanding
func (s *Store) HasQueries() bool {
	return len(s.queries) > 0
}

// HasTypes reports whether any type lookup is registered
func (s *Store) HasTypes() bool {
	return len(s.types) > 0
}

// HasInserts reports whether any insert expectation is outstanding
func (s *Store) HasInserts() bool {
	return len(s.inserts) > 0
}

// MatchQuery finds the first outstanding query matching call, marks it
// executed and removes it unless it is repeatable.
func (s *Store) MatchQuery(call QueryCall) (*Query, bool) {
	for i, q := range s.queries {
		if !q.Matches(call) {
			continue
		}
		q.markExecuted()
		if !q.anyNumberOfTimes {
			s.queries = slices.Delete(s.queries, i, i+1)
		}
		return q, true
	}
	return nil, false
}

// LookupType returns the type registered for uri
func (s *Store) LookupType(uri resource.URI) (string, bool) {
	typ, ok := s.types[uri]
	return typ, ok
}

// MatchInsert finds the first outstanding insert matching call, marks it
// executed and removes it unless it is repeatable.
func (s *Store) MatchInsert(call InsertCall) (*Insert, bool) {
	for i, ins := range s.inserts {
		if !ins.Matches(call) {
			continue
		}
		ins.markExecuted()
		if !ins.anyNumberOfTimes {
			s.inserts = slices.Delete(s.inserts, i, i+1)
		}
		return ins, true
	}
	return nil, false
}

// Queries returns the outstanding query expectations in registration order
func (s *Store) Queries() []*Query {
	return slices.Clone(s.queries)
}

// Inserts returns the outstanding insert expectations in registration order
func (s *Store) Inserts() []*Insert {
	return slices.Clone(s.inserts)
}

// Types returns the registered type lookups sorted by URI
func (s *Store) Types() []TypeLookup {
	out := make([]TypeLookup, 0, len(s.types))
	for uri, typ := range s.types {
		out = append(out, TypeLookup{URI: uri, Type: typ})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].URI < out[j].URI })
	return out
}

// MissedQueries returns non-repeatable query expectations that never matched
func (s *Store) MissedQueries() []*Query {
	var missed []*Query
	for _, q := range s.queries {
		if !q.anyNumberOfTimes && !q.Executed() {
			missed = append(missed, q)
		}
	}
	return missed
}

// MissedInserts returns non-repeatable insert expectations that never matched
func (s *Store) MissedInserts() []*Insert {
	var missed []*Insert
	for _, ins := range s.inserts {
		if !ins.anyNumberOfTimes && !ins.Executed() {
			missed = append(missed, ins)
		}
	}
	return missed
}

// Reset discards every expectation
func (s *Store) Reset() {
	s.queries = nil
	s.inserts = nil
	s.types = make(map[resource.URI]string)
}
