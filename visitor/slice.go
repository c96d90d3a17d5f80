package visitor

import (
	"fmt"
	"reflect"
)

// SliceOf creates a visitor for any slice or array value, key is element index
func SliceOf(value interface{}) (Visitor[int, interface{}], error) {
	if items, ok := value.([]interface{}); ok {
		return func(f func(key int, element interface{}) (bool, error)) error {
			for i, item := range items {
				next, err := f(i, item)
				if err != nil || !next {
					return err
				}
			}
			return nil
		}, nil
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return nil, fmt.Errorf("expected slice, got %T", value)
	}
	return func(f func(key int, element interface{}) (bool, error)) error {
		for i := 0; i < rValue.Len(); i++ {
			next, err := f(i, rValue.Index(i).Interface())
			if err != nil || !next {
				return err
			}
		}
		return nil
	}, nil
}
