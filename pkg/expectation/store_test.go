package expectation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pay-theory/providermock/pkg/expectation"
	"github.com/pay-theory/providermock/pkg/resource"
	"github.com/pay-theory/providermock/pkg/values"
)

func mustInsert(t *testing.T, uri resource.URI, v values.Values, result resource.URI) *expectation.Insert {
	t.Helper()
	ins, err := expectation.NewInsert(uri, v, result)
	require.NoError(t, err)
	return ins
}

func TestStore_MatchQueryFirstMatchWins(t *testing.T) {
	s := expectation.NewStore()
	first := expectation.NewQuery(peopleURI).WithAnyColumns()
	second := expectation.NewQuery(peopleURI).WithColumns("id")
	s.AddQuery(first)
	s.AddQuery(second)

	call := expectation.QueryCall{URI: peopleURI, Columns: []string{"id"}}

	got, ok := s.MatchQuery(call)
	require.True(t, ok)
	assert.Same(t, first, got)
	assert.True(t, first.Executed())
	assert.Equal(t, []*expectation.Query{second}, s.Queries())

	got, ok = s.MatchQuery(call)
	require.True(t, ok)
	assert.Same(t, second, got)
	assert.False(t, s.HasQueries())

	_, ok = s.MatchQuery(call)
	assert.False(t, ok)
}

func TestStore_MatchQuerySkipsNonMatching(t *testing.T) {
	s := expectation.NewStore()
	a := expectation.NewQuery(peopleURI).WithColumns("a")
	b := expectation.NewQuery(peopleURI).WithColumns("b")
	c := expectation.NewQuery(peopleURI).WithColumns("c")
	s.AddQuery(a)
	s.AddQuery(b)
	s.AddQuery(c)

	got, ok := s.MatchQuery(expectation.QueryCall{URI: peopleURI, Columns: []string{"b"}})
	require.True(t, ok)
	assert.Same(t, b, got)
	assert.Equal(t, []*expectation.Query{a, c}, s.Queries(), "remaining order is preserved")
}

func TestStore_RepeatableQueryStays(t *testing.T) {
	s := expectation.NewStore()
	q := expectation.NewQuery(peopleURI).AnyNumberOfTimes()
	s.AddQuery(q)

	for i := 0; i < 5; i++ {
		got, ok := s.MatchQuery(expectation.QueryCall{URI: peopleURI})
		require.True(t, ok)
		assert.Same(t, q, got)
	}
	assert.Equal(t, 5, q.Calls())
	assert.True(t, s.HasQueries())
	assert.Empty(t, s.MissedQueries())
}

func TestStore_Types(t *testing.T) {
	s := expectation.NewStore()
	assert.False(t, s.HasTypes())

	assert.False(t, s.SetType(peopleURI, "first"))
	assert.True(t, s.SetType(peopleURI, "second"), "later registration overwrites")
	s.SetType("content://a/b", "other")

	typ, ok := s.LookupType(peopleURI)
	require.True(t, ok)
	assert.Equal(t, "second", typ)

	_, ok = s.LookupType("content://missing/x")
	assert.False(t, ok)

	assert.Equal(t, []expectation.TypeLookup{
		{URI: "content://a/b", Type: "other"},
		{URI: peopleURI, Type: "second"},
	}, s.Types())
}

func TestStore_MatchInsert(t *testing.T) {
	s := expectation.NewStore()
	once := mustInsert(t, peopleURI, values.Of("a", 1), resultURI)
	always := mustInsert(t, peopleURI, values.Of("a", 2), "content://contacts/people/8").AnyNumberOfTimes()
	s.AddInsert(once)
	s.AddInsert(always)

	got, ok := s.MatchInsert(expectation.InsertCall{URI: peopleURI, Values: values.Of("a", 1)})
	require.True(t, ok)
	assert.Same(t, once, got)

	_, ok = s.MatchInsert(expectation.InsertCall{URI: peopleURI, Values: values.Of("a", 1)})
	assert.False(t, ok, "non-repeatable insert is consumed")

	for i := 0; i < 3; i++ {
		got, ok = s.MatchInsert(expectation.InsertCall{URI: peopleURI, Values: values.Of("a", 2)})
		require.True(t, ok)
		assert.Same(t, always, got)
	}
	assert.Equal(t, []*expectation.Insert{always}, s.Inserts())
}

func TestStore_Missed(t *testing.T) {
	s := expectation.NewStore()
	used := expectation.NewQuery(peopleURI).WithColumns("used")
	unused := expectation.NewQuery(peopleURI).WithColumns("unused")
	repeatableUnused := expectation.NewQuery(peopleURI).WithColumns("rep").AnyNumberOfTimes()
	s.AddQuery(used)
	s.AddQuery(unused)
	s.AddQuery(repeatableUnused)

	insUnused := mustInsert(t, peopleURI, values.Of("a", 1), resultURI)
	insRepeatable := mustInsert(t, peopleURI, values.Of("a", 2), resultURI).AnyNumberOfTimes()
	s.AddInsert(insUnused)
	s.AddInsert(insRepeatable)
	s.SetType(peopleURI, "never-used")

	_, ok := s.MatchQuery(expectation.QueryCall{URI: peopleURI, Columns: []string{"used"}})
	require.True(t, ok)

	assert.Equal(t, []*expectation.Query{unused}, s.MissedQueries())
	assert.Equal(t, []*expectation.Insert{insUnused}, s.MissedInserts())
}

func TestStore_Reset(t *testing.T) {
	s := expectation.NewStore()
	s.AddQuery(expectation.NewQuery(peopleURI))
	s.AddInsert(mustInsert(t, peopleURI, values.Of("a", 1), resultURI))
	s.SetType(peopleURI, "t")

	s.Reset()
	assert.False(t, s.HasQueries())
	assert.False(t, s.HasInserts())
	assert.False(t, s.HasTypes())
	assert.Empty(t, s.MissedQueries())
	assert.Empty(t, s.MissedInserts())
}
