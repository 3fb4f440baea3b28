// Package mocks provides testify/mock implementations of the providermock
// interfaces.
//
// The programmable double in the root package is usually the better fit: it
// matches calls in order, consumes expectations and builds result sets.
// MockContentProvider is for tests that already standardise on
// github.com/stretchr/testify/mock and want On/Return style stubbing.
//
// # Basic Usage
//
//	func TestImporter(t *testing.T) {
//	    provider := new(mocks.MockContentProvider)
//	    provider.On("Insert", people, values.Of("name", "alice")).
//	        Return(resource.URI("content://contacts/people/1"), nil).Once()
//
//	    err := NewImporter(provider).Import("alice")
//	    require.NoError(t, err)
//
//	    provider.AssertExpectations(t)
//	}
//
// # Returning Rows
//
// Build the result with the resultset package:
//
//	rs, _ := resultset.Build([]string{"id"}, []resultset.Row{resultset.ByPosition(1)})
//	provider.On("Query", people, mock.Anything, "", mock.Anything, "").Return(rs, nil)
//
// # Tips
//
// 1. Use mock.Anything for arguments you don't care about
// 2. Use mock.MatchedBy for partial matching of values.Values
// 3. Always assert expectations were met with AssertExpectations
package mocks

// Helper type aliases for convenience
type (
	// ContentProvider is an alias for MockContentProvider to allow shorter declarations
	ContentProvider = MockContentProvider

	// Expecter is an alias for MockExpecter to allow shorter declarations
	Expecter = MockExpecter
)
