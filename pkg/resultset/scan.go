package resultset

import (
	"fmt"
	"reflect"
)

// assign copies src into the value dst points to using reflection.
// Numeric and string kinds are converted when the types differ.
func assign(dst, src any) error {
	dstVal := reflect.ValueOf(dst)
	if dstVal.Kind() != reflect.Ptr || dstVal.IsNil() {
		return fmt.Errorf("destination must be a non-nil pointer, got %T", dst)
	}
	elem := dstVal.Elem()

	if src == nil {
		elem.Set(reflect.Zero(elem.Type()))
		return nil
	}

	srcVal := reflect.ValueOf(src)
	switch {
	case srcVal.Type().AssignableTo(elem.Type()):
		elem.Set(srcVal)
	case convertible(srcVal.Kind(), elem.Kind()) && srcVal.Type().ConvertibleTo(elem.Type()):
		elem.Set(srcVal.Convert(elem.Type()))
	default:
		return fmt.Errorf("cannot assign %T to %s", src, elem.Type())
	}
	return nil
}

func convertible(from, to reflect.Kind) bool {
	return (isNumber(from) && isNumber(to)) || (from == reflect.String && to == reflect.String)
}

func isNumber(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
