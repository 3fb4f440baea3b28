// Package values provides the field/value maps exchanged with a content
// provider on insert and returned as canned query rows.
package values

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"

	"github.com/pay-theory/providermock/internal/expr"
)

// Values maps field names to values. A nil Values is distinct from an empty one.
type Values map[string]any

// Of builds Values from alternating key/value pairs. It panics on an odd
// argument count or a non-string key, which only happens in test setup.
func Of(kv ...any) Values {
	if len(kv)%2 != 0 {
		panic(fmt.Sprintf("values.Of: odd number of arguments (%d)", len(kv)))
	}
	v := make(Values, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			panic(fmt.Sprintf("values.Of: key at position %d is %T, not string", i, kv[i]))
		}
		v[key] = kv[i+1]
	}
	return v
}

// Get returns the value stored under key and whether it was present
func (v Values) Get(key string) (any, bool) {
	val, ok := v[key]
	return val, ok
}

// Keys returns the field names in sorted order
func (v Values) Keys() []string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a shallow copy, preserving nil
func (v Values) Clone() Values {
	if v == nil {
		return nil
	}
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Equal reports whether both maps hold the same keys with equal values.
// A nil map only equals another nil map.
func (v Values) Equal(other Values) bool {
	if (v == nil) != (other == nil) {
		return false
	}
	if len(v) != len(other) {
		return false
	}
	for k, val := range v {
		otherVal, ok := other[k]
		if !ok || !assert.ObjectsAreEqual(val, otherVal) {
			return false
		}
	}
	return true
}

// String renders the map with sorted keys so diagnostics are stable
func (v Values) String() string {
	if v == nil {
		return "null"
	}
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range v.Keys() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%v", k, v[k])
	}
	b.WriteByte('}')
	return b.String()
}

// FromItem converts a DynamoDB item into Values
func FromItem(item map[string]types.AttributeValue) (Values, error) {
	fields, err := expr.FromItem(item)
	if err != nil {
		return nil, err
	}
	return Values(fields), nil
}

// ToItem converts Values into a DynamoDB item
func (v Values) ToItem() (map[string]types.AttributeValue, error) {
	return expr.ToItem(v)
}
