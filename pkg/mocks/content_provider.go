package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/pay-theory/providermock/pkg/core"
	"github.com/pay-theory/providermock/pkg/expectation"
	"github.com/pay-theory/providermock/pkg/resource"
	"github.com/pay-theory/providermock/pkg/resultset"
	"github.com/pay-theory/providermock/pkg/values"
)

var _ core.ContentProvider = (*MockContentProvider)(nil)

// MockContentProvider is a mock implementation of the core.ContentProvider interface.
//
// Example usage:
//
//	provider := new(mocks.MockContentProvider)
//	provider.On("GetType", uri).Return("vnd.example.item/person", nil)
type MockContentProvider struct {
	mock.Mock
}

// Query returns the stubbed result set
func (m *MockContentProvider) Query(uri resource.URI, columns []string, filter string, filterArgs []any, orderBy string) (*resultset.ResultSet, error) {
	args := m.Called(uri, columns, filter, filterArgs, orderBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resultset.ResultSet), args.Error(1)
}

// GetType returns the stubbed type string
func (m *MockContentProvider) GetType(uri resource.URI) (string, error) {
	args := m.Called(uri)
	return args.String(0), args.Error(1)
}

// Insert returns the stubbed result URI
func (m *MockContentProvider) Insert(uri resource.URI, fields values.Values) (resource.URI, error) {
	args := m.Called(uri, fields)
	return args.Get(0).(resource.URI), args.Error(1)
}

// MockExpecter is a mock implementation of the core.Expecter interface. It
// is useful for testing code that registers expectations, such as fixtures.
type MockExpecter struct {
	mock.Mock
}

var _ core.Expecter = (*MockExpecter)(nil)

// ExpectQuery returns the stubbed query handle
func (m *MockExpecter) ExpectQuery(uri resource.URI) *expectation.Query {
	args := m.Called(uri)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*expectation.Query)
}

// ExpectTypeQuery records the registration
func (m *MockExpecter) ExpectTypeQuery(uri resource.URI, typ string) {
	m.Called(uri, typ)
}

// ExpectInsert returns the stubbed insert handle
func (m *MockExpecter) ExpectInsert(uri resource.URI, fields values.Values, result resource.URI) *expectation.Insert {
	args := m.Called(uri, fields, result)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*expectation.Insert)
}
