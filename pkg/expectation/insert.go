package expectation

import (
	"fmt"

	mockerrors "github.com/pay-theory/providermock/pkg/errors"
	"github.com/pay-theory/providermock/pkg/resource"
	"github.com/pay-theory/providermock/pkg/values"
)

// Insert is an expected insert and the URI to return when it matches
type Insert struct {
	uri              resource.URI
	values           values.Values
	result           resource.URI
	anyNumberOfTimes bool
	calls            int
}

// NewInsert creates an insert expectation. Every argument is required; a
// missing one yields an error wrapping errors.ErrInvalidArgument.
func NewInsert(uri resource.URI, vals values.Values, result resource.URI) (*Insert, error) {
	switch {
	case uri.IsZero():
		return nil, mockerrors.NewErrorWithDetail("ExpectInsert", "", mockerrors.ErrInvalidArgument, "uri is required")
	case vals == nil:
		return nil, mockerrors.NewErrorWithDetail("ExpectInsert", uri.String(), mockerrors.ErrInvalidArgument, "values are required")
	case result.IsZero():
		return nil, mockerrors.NewErrorWithDetail("ExpectInsert", uri.String(), mockerrors.ErrInvalidArgument, "result uri is required")
	}
	return &Insert{
		uri:    uri,
		values: vals.Clone(),
		result: result,
	}, nil
}

// AnyNumberOfTimes lets the expectation match repeatedly and exempts it from
// removal on match.
func (i *Insert) AnyNumberOfTimes() *Insert {
	i.anyNumberOfTimes = true
	return i
}

// URI returns the expected resource
func (i *Insert) URI() resource.URI {
	return i.uri
}

// Values returns a copy of the expected field map
func (i *Insert) Values() values.Values {
	return i.values.Clone()
}

// ResultURI returns the URI handed back on match
func (i *Insert) ResultURI() resource.URI {
	return i.result
}

// Repeatable reports whether AnyNumberOfTimes was set
func (i *Insert) Repeatable() bool {
	return i.anyNumberOfTimes
}

// Executed reports whether the expectation matched at least once
func (i *Insert) Executed() bool {
	return i.calls > 0
}

// Calls returns how many times the expectation matched
func (i *Insert) Calls() int {
	return i.calls
}

// Matches requires an equal URI and an equal field map
func (i *Insert) Matches(call InsertCall) bool {
	return i.uri == call.URI && i.values.Equal(call.Values)
}

// Equal compares URI, field map and result URI. Match state is ignored.
func (i *Insert) Equal(other *Insert) bool {
	if i == nil || other == nil {
		return i == other
	}
	return i.uri == other.uri && i.values.Equal(other.values) && i.result == other.result
}

// String implements fmt.Stringer
func (i *Insert) String() string {
	s := fmt.Sprintf("Insert{uri=%s, values=%s, result=%s}", i.uri, i.values, i.result)
	if i.anyNumberOfTimes {
		s += " (any number of times)"
	}
	return s
}

func (i *Insert) markExecuted() {
	i.calls++
}
