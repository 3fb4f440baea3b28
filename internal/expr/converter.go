// Package expr converts between DynamoDB attribute values and the plain Go
// values stored in canned rows and field maps.
package expr

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ToAttributeValue converts a Go value to a DynamoDB AttributeValue
func ToAttributeValue(value any) (types.AttributeValue, error) {
	if value == nil {
		return &types.AttributeValueMemberNULL{Value: true}, nil
	}

	if av, ok := value.(types.AttributeValue); ok {
		return av, nil
	}
	if t, ok := value.(time.Time); ok {
		return &types.AttributeValueMemberS{Value: t.Format(time.RFC3339Nano)}, nil
	}

	v := reflect.ValueOf(value)

	switch v.Kind() {
	case reflect.String:
		return &types.AttributeValueMemberS{Value: v.String()}, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return &types.AttributeValueMemberN{Value: strconv.FormatInt(v.Int(), 10)}, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &types.AttributeValueMemberN{Value: strconv.FormatUint(v.Uint(), 10)}, nil

	case reflect.Float32, reflect.Float64:
		return &types.AttributeValueMemberN{Value: strconv.FormatFloat(v.Float(), 'g', -1, 64)}, nil

	case reflect.Bool:
		return &types.AttributeValueMemberBOOL{Value: v.Bool()}, nil

	case reflect.Slice, reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint8 && v.Kind() == reflect.Slice {
			return &types.AttributeValueMemberB{Value: v.Bytes()}, nil
		}
		list := make([]types.AttributeValue, v.Len())
		for i := 0; i < v.Len(); i++ {
			item, err := ToAttributeValue(v.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			list[i] = item
		}
		return &types.AttributeValueMemberL{Value: list}, nil

	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("unsupported map key type: %v", v.Type().Key())
		}
		m := make(map[string]types.AttributeValue, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			val, err := ToAttributeValue(iter.Value().Interface())
			if err != nil {
				return nil, err
			}
			m[iter.Key().String()] = val
		}
		return &types.AttributeValueMemberM{Value: m}, nil

	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return &types.AttributeValueMemberNULL{Value: true}, nil
		}
		return ToAttributeValue(v.Elem().Interface())

	default:
		return nil, fmt.Errorf("unsupported type: %v", v.Type())
	}
}

// FromAttributeValue converts a DynamoDB AttributeValue to a Go value.
// Numbers become int64 when they are integral and float64 otherwise; sets
// become sorted slices.
func FromAttributeValue(av types.AttributeValue) (any, error) {
	switch v := av.(type) {
	case nil:
		return nil, nil
	case *types.AttributeValueMemberNULL:
		return nil, nil
	case *types.AttributeValueMemberS:
		return v.Value, nil
	case *types.AttributeValueMemberN:
		return parseNumber(v.Value)
	case *types.AttributeValueMemberBOOL:
		return v.Value, nil
	case *types.AttributeValueMemberB:
		return v.Value, nil
	case *types.AttributeValueMemberSS:
		out := append([]string(nil), v.Value...)
		sort.Strings(out)
		return out, nil
	case *types.AttributeValueMemberNS:
		out := make([]any, 0, len(v.Value))
		for _, n := range v.Value {
			num, err := parseNumber(n)
			if err != nil {
				return nil, err
			}
			out = append(out, num)
		}
		return out, nil
	case *types.AttributeValueMemberBS:
		return append([][]byte(nil), v.Value...), nil
	case *types.AttributeValueMemberL:
		out := make([]any, len(v.Value))
		for i, item := range v.Value {
			val, err := FromAttributeValue(item)
			if err != nil {
				return nil, err
			}
			out[i] = val
		}
		return out, nil
	case *types.AttributeValueMemberM:
		return FromItem(v.Value)
	default:
		return nil, fmt.Errorf("unsupported attribute value type: %T", av)
	}
}

// FromItem converts a DynamoDB item into a plain field map
func FromItem(item map[string]types.AttributeValue) (map[string]any, error) {
	if item == nil {
		return nil, nil
	}
	out := make(map[string]any, len(item))
	for k, av := range item {
		val, err := FromAttributeValue(av)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", k, err)
		}
		out[k] = val
	}
	return out, nil
}

// ToItem converts a plain field map into a DynamoDB item
func ToItem(fields map[string]any) (map[string]types.AttributeValue, error) {
	item := make(map[string]types.AttributeValue, len(fields))
	for k, val := range fields {
		av, err := ToAttributeValue(val)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", k, err)
		}
		item[k] = av
	}
	return item, nil
}

func parseNumber(s string) (any, error) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return f, nil
}
