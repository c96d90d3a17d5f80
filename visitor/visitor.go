package visitor

import (
	"fmt"
	"reflect"
)

// Visitor visits pairs of (key, element).
// If the callback returns (false, nil), the Visit stops.
// If the callback returns an error, the Visit stops and returns that error.
type Visitor[K any, E any] func(func(key K, element E) (bool, error)) error

// Of returns a visitor for supplied slice, array, map or struct value
func Of(value interface{}) (Visitor[interface{}, interface{}], error) {
	if value == nil {
		return nil, fmt.Errorf("expected container, got nil")
	}
	rType := reflect.TypeOf(value)
	kind := rType.Kind()
	if kind == reflect.Ptr && rType.Elem().Kind() == reflect.Struct {
		kind = reflect.Struct
	}
	switch kind {
	case reflect.Slice, reflect.Array:
		visit, err := SliceOf(value)
		if err != nil {
			return nil, err
		}
		return anyKey(visit), nil
	case reflect.Map:
		return MapOf(value)
	case reflect.Struct:
		visit, err := StructOf(value)
		if err != nil {
			return nil, err
		}
		return anyKey(visit), nil
	}
	return nil, fmt.Errorf("expected slice, map or struct, got %T", value)
}

func anyKey[K any](visit Visitor[K, interface{}]) Visitor[interface{}, interface{}] {
	return func(f func(key interface{}, element interface{}) (bool, error)) error {
		return visit(func(key K, element interface{}) (bool, error) {
			return f(key, element)
		})
	}
}
