package visitology

import (
	"reflect"
	"unsafe"

	"github.com/viant/visitology/visitor"
	"github.com/viant/xunsafe"
)

// Element represents an element exposing its own dispatch key
type Element interface {
	VisitKey() string
}

type (
	//typeKey represents resolved type key, either static name or discriminant field
	typeKey struct {
		name         string
		discriminant *xunsafe.Field
		err          error
	}

	resolver struct {
		opts  *options
		cache *visitor.Cache[reflect.Type, *typeKey]
	}
)

// resolve returns element key name, false for nil element or unset discriminant holder
func (r *resolver) resolve(element interface{}) (string, bool, error) {
	if element == nil {
		return "", false, nil
	}
	if actual, ok := element.(Element); ok {
		return actual.VisitKey(), true, nil
	}
	rType := reflect.TypeOf(element)
	key := r.cache.Load(rType, func() *typeKey {
		return r.typeKey(rType)
	})
	if key.err != nil {
		return "", false, key.err
	}
	if key.discriminant == nil {
		return key.name, true, nil
	}
	ptr, ok := structPointer(element)
	if !ok {
		return "", false, nil
	}
	return key.discriminant.String(ptr), true, nil
}

func (r *resolver) typeKey(rType reflect.Type) *typeKey {
	tag, err := lookupKeyTag(rType, r.opts.tagName)
	if err != nil {
		return &typeKey{err: err}
	}
	if tag != nil {
		return &typeKey{name: tag.name, discriminant: tag.discriminant}
	}
	return &typeKey{name: typeName(rType, r.opts.qualified, r.opts.caseFormat)}
}

func structPointer(element interface{}) (ptr unsafe.Pointer, ok bool) {
	value := reflect.ValueOf(element)
	switch value.Kind() {
	case reflect.Ptr:
		for value.Kind() == reflect.Ptr {
			if value.IsNil() {
				return nil, false
			}
			if value.Elem().Kind() == reflect.Struct {
				return xunsafe.AsPointer(value.Interface()), true
			}
			value = value.Elem()
		}
		return nil, false
	case reflect.Struct:
		rPointer := reflect.New(value.Type())
		rPointer.Elem().Set(value)
		return xunsafe.AsPointer(rPointer.Interface()), true
	}
	return nil, false
}

func newResolver(opts *options) *resolver {
	return &resolver{opts: opts, cache: visitor.NewCache[reflect.Type, *typeKey]()}
}
