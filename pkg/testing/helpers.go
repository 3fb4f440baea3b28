package testing

import (
	"github.com/stretchr/testify/require"

	"github.com/pay-theory/providermock"
	"github.com/pay-theory/providermock/pkg/expectation"
	"github.com/pay-theory/providermock/pkg/resource"
	"github.com/pay-theory/providermock/pkg/values"
)

// NewProvider creates a Provider that verifies itself when t finishes. The
// provider is named after the test when t exposes Name.
func NewProvider(t require.TestingT, opts ...providermock.Option) *providermock.Provider {
	base := []providermock.Option{providermock.WithVerifyOnCleanup()}
	if named, ok := t.(interface{ Name() string }); ok {
		base = append(base, providermock.WithName(named.Name()))
	}
	return providermock.New(t, append(base, opts...)...)
}

// CommonScenarios registers frequently needed expectation shapes
type CommonScenarios struct {
	p *providermock.Provider
}

// NewCommonScenarios wraps p
func NewCommonScenarios(p *providermock.Provider) *CommonScenarios {
	return &CommonScenarios{p: p}
}

// ExpectRows registers a query for exactly columns returning rows once.
// Nil columns expect a query without a projection.
func (s *CommonScenarios) ExpectRows(uri resource.URI, columns []string, rows ...values.Values) *expectation.Query {
	q := s.p.ExpectQuery(uri)
	if columns != nil {
		q.WithColumns(columns...)
	}
	for _, row := range rows {
		q.ReturnRow(row)
	}
	return q
}

// ExpectEmptyResult registers a query on uri that matches any columns,
// filter and ordering once and yields no rows.
func (s *CommonScenarios) ExpectEmptyResult(uri resource.URI) *expectation.Query {
	return s.p.ExpectQuery(uri).
		WithAnyColumns().
		WithAnyFilter().
		WithAnyOrderBy().
		ReturnEmpty()
}

// ExpectStaticTable serves rows for any query on uri, any number of times.
// Result columns follow the caller's projection.
func (s *CommonScenarios) ExpectStaticTable(uri resource.URI, rows ...values.Values) *expectation.Query {
	q := s.p.ExpectQuery(uri).
		WithAnyColumns().
		WithAnyFilter().
		WithAnyOrderBy().
		AnyNumberOfTimes()
	for _, row := range rows {
		q.ReturnRow(row)
	}
	return q
}

// ExpectItem registers the type of an item URI together with a single-row
// query for it.
func (s *CommonScenarios) ExpectItem(uri resource.URI, typ string, columns []string, row values.Values) *expectation.Query {
	s.p.ExpectTypeQuery(uri, typ)
	return s.ExpectRows(uri, columns, row)
}

// ExpectInsertWithGeneratedID registers an insert of fields into uri and
// returns the freshly generated URI the insert will answer with.
func (s *CommonScenarios) ExpectInsertWithGeneratedID(uri resource.URI, fields values.Values) resource.URI {
	result := resource.NewUnique(uri)
	if s.p.ExpectInsert(uri, fields, result) == nil {
		return ""
	}
	return result
}
