package visitology

import (
	"reflect"

	"github.com/viant/tagly/format/text"
)

func ensureStruct(t reflect.Type) reflect.Type {
	switch t.Kind() {
	case reflect.Struct:
		return t
	case reflect.Ptr:
		return ensureStruct(t.Elem())
	}
	return nil
}

func elemType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

// typeName returns element type name, pointers are dereferenced
func typeName(t reflect.Type, qualified bool, caseFormat text.CaseFormat) string {
	t = elemType(t)
	name := t.Name()
	if name == "" {
		return t.String()
	}
	if caseFormat.IsDefined() {
		name = text.DetectCaseFormat(name).Format(name, caseFormat)
	}
	if qualified && t.PkgPath() != "" {
		return t.PkgPath() + "." + name
	}
	return name
}
