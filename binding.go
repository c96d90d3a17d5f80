package visitology

import (
	"fmt"
	"reflect"
)

var (
	errorType = reflect.TypeOf((*error)(nil)).Elem()
	auxType   = reflect.TypeOf((*interface{})(nil)).Elem()
)

type (
	//Handler represents element handler, handle is mutable, aux is read only
	Handler[H, R any] func(element interface{}, handle *H, aux interface{}) (R, error)

	//Binding represents a handler bound to registry entry
	Binding[H, R any] struct {
		handler interface{}
		method  string
		fn      Handler[H, R]
	}
)

// Handler returns bound handler object, nil for func binding
func (b *Binding[H, R]) Handler() interface{} {
	return b.handler
}

// Method returns bound method name, empty for func binding
func (b *Binding[H, R]) Method() string {
	return b.method
}

// Call calls bound handler
func (b *Binding[H, R]) Call(element interface{}, handle *H, aux interface{}) (R, error) {
	return b.fn(element, handle, aux)
}

func (b *Binding[H, R]) String() string {
	if b.handler == nil {
		return "func"
	}
	return fmt.Sprintf("%T.%s", b.handler, b.method)
}

// BindFunc creates a binding for supplied handler func
func BindFunc[H, R any](fn Handler[H, R]) (*Binding[H, R], error) {
	if fn == nil {
		return nil, newError(ErrInvalidBinding, CodeMissingHandler, "binding handler func was nil")
	}
	return &Binding[H, R]{fn: fn}, nil
}

// Bind creates a binding for handler method with the following signature:
//
//	func(element E, handle *H, aux interface{}) (R, error)
//
// E can be any type the dispatched elements are assignable to.
func Bind[H, R any](handler interface{}, method string) (*Binding[H, R], error) {
	if handler == nil {
		return nil, newError(ErrInvalidBinding, CodeMissingHandler, "binding requires handler object and method name, handler was nil")
	}
	value := reflect.ValueOf(handler)
	switch value.Kind() {
	case reflect.Ptr:
		if value.IsNil() {
			return nil, newError(ErrInvalidBinding, CodeMissingHandler, "binding requires handler object and method name, handler was nil %T", handler)
		}
	case reflect.Struct:
	default:
		return nil, newError(ErrInvalidBinding, CodeInvalidHandler, "cannot call a method on a non-object, given %T", handler)
	}
	if method == "" {
		return nil, newError(ErrInvalidBinding, CodeMissingMethod, "binding requires handler object and method name, only %T was given", handler)
	}
	fnValue := value.MethodByName(method)
	if !fnValue.IsValid() {
		return nil, newError(ErrUnknownMethod, CodeUnknownMethod, "method %s does not exist on %T", method, handler)
	}
	handleType := reflect.TypeOf((*H)(nil))
	resultType := reflect.TypeOf((*R)(nil)).Elem()
	fnType := fnValue.Type()
	if !isHandlerSignature(fnType, handleType, resultType) {
		return nil, newError(ErrInvalidBinding, CodeInvalidSignature,
			"method %s on %T has signature %s, expected func(element, %s, interface{}) (%s, error)",
			method, handler, fnType.String(), handleType.String(), resultType.String())
	}
	elementType := fnType.In(0)
	ret := &Binding[H, R]{handler: handler, method: method}
	ret.fn = func(element interface{}, handle *H, aux interface{}) (R, error) {
		var result R
		elementValue, err := elementArg(element, elementType)
		if err != nil {
			return result, newError(ErrElementMismatch, CodeElementMismatch,
				"element %T is not assignable to %s expected by %s", element, elementType.String(), ret.String())
		}
		out := fnValue.Call([]reflect.Value{elementValue, reflect.ValueOf(handle), reflect.ValueOf(&aux).Elem()})
		if candidate, ok := out[0].Interface().(R); ok {
			result = candidate
		}
		if callErr := out[1].Interface(); callErr != nil {
			return result, callErr.(error)
		}
		return result, nil
	}
	return ret, nil
}

func isHandlerSignature(fnType, handleType, resultType reflect.Type) bool {
	if fnType.NumIn() != 3 || fnType.NumOut() != 2 || fnType.IsVariadic() {
		return false
	}
	return fnType.In(1) == handleType &&
		fnType.In(2) == auxType &&
		fnType.Out(0) == resultType &&
		fnType.Out(1) == errorType
}

func elementArg(element interface{}, elementType reflect.Type) (reflect.Value, error) {
	if element == nil {
		switch elementType.Kind() {
		case reflect.Interface, reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return reflect.Zero(elementType), nil
		}
		return reflect.Value{}, fmt.Errorf("nil element")
	}
	value := reflect.ValueOf(element)
	if !value.Type().AssignableTo(elementType) {
		return reflect.Value{}, fmt.Errorf("not assignable")
	}
	return value, nil
}
