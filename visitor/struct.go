package visitor

import (
	"fmt"
	"go/token"
	"reflect"

	"github.com/viant/xunsafe"
)

var structCache = NewCache[reflect.Type, *xunsafe.Struct]()

// StructOf creates a visitor for struct or struct pointer value, key is field name.
// Unexported and blank fields are skipped.
func StructOf(value interface{}) (Visitor[string, interface{}], error) {
	structType := reflect.TypeOf(value)
	switch structType.Kind() {
	case reflect.Ptr:
		if structType = structType.Elem(); structType.Kind() != reflect.Struct {
			return nil, fmt.Errorf("expected struct or pointer to struct, got %T", value)
		}
		if reflect.ValueOf(value).IsNil() {
			return nil, fmt.Errorf("expected struct, got nil %T", value)
		}
	case reflect.Struct:
		rPointer := reflect.New(structType)
		rPointer.Elem().Set(reflect.ValueOf(value))
		value = rPointer.Interface()
	default:
		return nil, fmt.Errorf("expected struct or pointer to struct, got %T", value)
	}
	xStruct := StructType(structType)
	ptr := xunsafe.AsPointer(value)
	return func(f func(key string, element interface{}) (bool, error)) error {
		for i := range xStruct.Fields {
			field := &xStruct.Fields[i]
			if field.Name == "_" || !token.IsExported(field.Name) {
				continue
			}
			next, err := f(field.Name, field.Value(ptr))
			if err != nil || !next {
				return err
			}
		}
		return nil
	}, nil
}

// StructType returns cached xunsafe struct for supplied struct type
func StructType(structType reflect.Type) *xunsafe.Struct {
	return structCache.Load(structType, func() *xunsafe.Struct {
		return xunsafe.NewStruct(structType)
	})
}
