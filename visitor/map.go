package visitor

import (
	"fmt"
	"reflect"
)

// MapOf creates a visitor for any map value, iteration order is unspecified
func MapOf(value interface{}) (Visitor[interface{}, interface{}], error) {
	if aMap, ok := value.(map[string]interface{}); ok {
		return func(f func(key interface{}, element interface{}) (bool, error)) error {
			for k, v := range aMap {
				next, err := f(k, v)
				if err != nil || !next {
					return err
				}
			}
			return nil
		}, nil
	}
	rValue := reflect.ValueOf(value)
	if rValue.Kind() != reflect.Map {
		return nil, fmt.Errorf("expected map, got %T", value)
	}
	return func(f func(key interface{}, element interface{}) (bool, error)) error {
		iter := rValue.MapRange()
		for iter.Next() {
			next, err := f(iter.Key().Interface(), iter.Value().Interface())
			if err != nil || !next {
				return err
			}
		}
		return nil
	}, nil
}
