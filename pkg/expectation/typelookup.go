package expectation

import (
	"fmt"

	"github.com/pay-theory/providermock/pkg/resource"
)

// TypeLookup maps a resource to the type string returned for it
type TypeLookup struct {
	URI  resource.URI
	Type string
}

// String implements fmt.Stringer
func (t TypeLookup) String() string {
	return fmt.Sprintf("%s --> %s", t.URI, t.Type)
}
