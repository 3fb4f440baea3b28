package expectation_test

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pay-theory/providermock/pkg/expectation"
	"github.com/pay-theory/providermock/pkg/resource"
	"github.com/pay-theory/providermock/pkg/values"
)

const peopleURI = resource.URI("content://contacts/people")

func exactQuery() *expectation.Query {
	return expectation.NewQuery(peopleURI).
		WithColumns("id", "name").
		WithFilter("name = ?", "alice").
		WithOrderBy("id ASC")
}

func exactCall() expectation.QueryCall {
	return expectation.QueryCall{
		URI:        peopleURI,
		Columns:    []string{"id", "name"},
		Filter:     "name = ?",
		FilterArgs: []any{"alice"},
		OrderBy:    "id ASC",
	}
}

func TestQueryMatches_Exact(t *testing.T) {
	q := exactQuery()
	assert.True(t, q.Matches(exactCall()))

	tests := []struct {
		name   string
		mutate func(c *expectation.QueryCall)
	}{
		{"uri", func(c *expectation.QueryCall) { c.URI = "content://contacts/groups" }},
		{"columns order", func(c *expectation.QueryCall) { c.Columns = []string{"name", "id"} }},
		{"columns subset", func(c *expectation.QueryCall) { c.Columns = []string{"id"} }},
		{"columns nil", func(c *expectation.QueryCall) { c.Columns = nil }},
		{"filter", func(c *expectation.QueryCall) { c.Filter = "name = ? OR 1" }},
		{"filter absent", func(c *expectation.QueryCall) { c.Filter = "" }},
		{"filter arg value", func(c *expectation.QueryCall) { c.FilterArgs = []any{"bob"} }},
		{"filter arg type", func(c *expectation.QueryCall) { c.FilterArgs = []any{1} }},
		{"filter arg count", func(c *expectation.QueryCall) { c.FilterArgs = []any{"alice", "bob"} }},
		{"order", func(c *expectation.QueryCall) { c.OrderBy = "id DESC" }},
		{"order absent", func(c *expectation.QueryCall) { c.OrderBy = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			call := exactCall()
			tt.mutate(&call)
			assert.False(t, q.Matches(call))
		})
	}
}

func TestQueryMatches_NilVersusEmptyColumns(t *testing.T) {
	noProjection := expectation.NewQuery(peopleURI)
	emptyProjection := expectation.NewQuery(peopleURI).WithColumns()

	assert.True(t, noProjection.Matches(expectation.QueryCall{URI: peopleURI}))
	assert.False(t, noProjection.Matches(expectation.QueryCall{URI: peopleURI, Columns: []string{}}))
	assert.True(t, emptyProjection.Matches(expectation.QueryCall{URI: peopleURI, Columns: []string{}}))
	assert.False(t, emptyProjection.Matches(expectation.QueryCall{URI: peopleURI}))
}

func TestQueryMatches_NilAndEmptyFilterArgsAreEqual(t *testing.T) {
	q := expectation.NewQuery(peopleURI).WithFilter("deleted = 0")

	assert.True(t, q.Matches(expectation.QueryCall{URI: peopleURI, Filter: "deleted = 0"}))
	assert.True(t, q.Matches(expectation.QueryCall{URI: peopleURI, Filter: "deleted = 0", FilterArgs: []any{}}))
}

func TestQueryMatches_Wildcards(t *testing.T) {
	t.Run("any columns", func(t *testing.T) {
		q := exactQuery().WithAnyColumns()
		call := exactCall()
		call.Columns = []string{"whatever"}
		assert.True(t, q.Matches(call))
		call.Columns = nil
		assert.True(t, q.Matches(call))
	})

	t.Run("any filter covers expression and args", func(t *testing.T) {
		q := exactQuery().WithAnyFilter()
		call := exactCall()
		call.Filter = "other"
		call.FilterArgs = []any{1, 2, 3}
		assert.True(t, q.Matches(call))

		call.Filter = ""
		call.FilterArgs = nil
		assert.True(t, q.Matches(call))
	})

	t.Run("any order", func(t *testing.T) {
		q := exactQuery().WithAnyOrderBy()
		call := exactCall()
		call.OrderBy = "name DESC"
		assert.True(t, q.Matches(call))
	})

	t.Run("uri is never wildcarded", func(t *testing.T) {
		q := expectation.NewQuery(peopleURI).WithAnyColumns().WithAnyFilter().WithAnyOrderBy()
		assert.True(t, q.Matches(expectation.QueryCall{URI: peopleURI, Columns: []string{"x"}, Filter: "f", OrderBy: "o"}))
		assert.False(t, q.Matches(expectation.QueryCall{URI: "content://contacts/other"}))
	})

	t.Run("wildcard only skips its own criterion", func(t *testing.T) {
		q := exactQuery().WithAnyColumns()
		call := exactCall()
		call.Columns = []string{"x"}
		call.OrderBy = "changed"
		assert.False(t, q.Matches(call))
	})
}

func TestQueryResult_Columns(t *testing.T) {
	t.Run("exact columns", func(t *testing.T) {
		q := expectation.NewQuery(peopleURI).WithColumns("a", "b").ReturnRow(values.Of("a", 1, "b", 2))
		rs, err := q.Result([]string{"a", "b"})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, rs.Columns())
		assert.Equal(t, []any{1, 2}, rs.Row(0))
	})

	t.Run("wildcard uses requested columns", func(t *testing.T) {
		q := expectation.NewQuery(peopleURI).
			WithColumns("a", "b").
			WithAnyColumns().
			ReturnRow(values.Of("a", 1, "b", 2, "c", 3))
		rs, err := q.Result([]string{"c", "a"})
		require.NoError(t, err)
		assert.Equal(t, []string{"c", "a"}, rs.Columns())
		assert.Equal(t, []any{3, 1}, rs.Row(0))
	})

	t.Run("default columns when none expected", func(t *testing.T) {
		q := expectation.NewQuery(peopleURI).WithDefaultColumns("id").ReturnValues(7)
		rs, err := q.Result(nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"id"}, rs.Columns())
		assert.Equal(t, []any{7}, rs.Row(0))
	})

	t.Run("exact columns win over default", func(t *testing.T) {
		q := expectation.NewQuery(peopleURI).WithColumns("a").WithDefaultColumns("b")
		assert.Equal(t, []string{"a"}, q.ResultColumns(nil))
	})
}

func TestQueryResult_Rows(t *testing.T) {
	t.Run("return empty clears rows", func(t *testing.T) {
		q := expectation.NewQuery(peopleURI).WithColumns("a").ReturnValues(1).ReturnValues(2).ReturnEmpty()
		rs, err := q.Result([]string{"a"})
		require.NoError(t, err)
		assert.Equal(t, 0, rs.Len())
	})

	t.Run("positional shape mismatch", func(t *testing.T) {
		q := expectation.NewQuery(peopleURI).WithColumns("a", "b").ReturnValues(1)
		_, err := q.Result([]string{"a", "b"})
		assert.Error(t, err)
	})

	t.Run("dynamodb item", func(t *testing.T) {
		q := expectation.NewQuery(peopleURI).WithColumns("id", "n").ReturnItem(map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: "x"},
			"n":  &types.AttributeValueMemberN{Value: "4"},
		})
		rs, err := q.Result([]string{"id", "n"})
		require.NoError(t, err)
		assert.Equal(t, []any{"x", int64(4)}, rs.Row(0))
	})

	t.Run("bad dynamodb item surfaces at result time", func(t *testing.T) {
		q := expectation.NewQuery(peopleURI).ReturnItem(map[string]types.AttributeValue{
			"n": &types.AttributeValueMemberN{Value: "not-a-number"},
		})
		_, err := q.Result(nil)
		assert.Error(t, err)
	})
}

func TestQueryString(t *testing.T) {
	assert.Equal(t,
		"content://contacts/people [id name] filter: 'name = ?'[alice] order: 'id ASC'",
		exactQuery().String())

	assert.Equal(t,
		"content://contacts/people [*] filter: * order: * (any number of times)",
		expectation.NewQuery(peopleURI).WithAnyColumns().WithAnyFilter().WithAnyOrderBy().AnyNumberOfTimes().String())

	assert.Equal(t, "content://contacts/people []", expectation.NewQuery(peopleURI).String())
	assert.Equal(t,
		"content://contacts/people [id name] filter: 'name = ?'[alice] order: 'id ASC'",
		exactCall().String())
}

func TestQueryState(t *testing.T) {
	q := expectation.NewQuery(peopleURI)
	assert.Equal(t, peopleURI, q.URI())
	assert.False(t, q.Repeatable())
	assert.False(t, q.Executed())
	assert.Equal(t, 0, q.Calls())

	q.AnyNumberOfTimes()
	assert.True(t, q.Repeatable())
}
