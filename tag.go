package visitology

import (
	"fmt"
	"reflect"

	"github.com/viant/visitology/tags"
	"github.com/viant/visitology/visitor"
	"github.com/viant/xunsafe"
)

//TagName defines default element key tag
const TagName = "visit"

// keyTag represents element key declared with struct tag
type keyTag struct {
	name         string
	discriminant *xunsafe.Field
}

// lookupKeyTag returns element key tag, nil if struct does not declare one
func lookupKeyTag(t reflect.Type, tagName string) (*keyTag, error) {
	structType := ensureStruct(t)
	if structType == nil {
		return nil, nil
	}
	xStruct := visitor.StructType(structType)
	var ret *keyTag
	for i := range xStruct.Fields {
		field := &xStruct.Fields[i]
		literal, ok := field.Tag.Lookup(tagName)
		if !ok {
			continue
		}
		if ret != nil {
			return nil, fmt.Errorf("%s: duplicate %s tag on field %s", structType.String(), tagName, field.Name)
		}
		tag, err := tags.Parse(literal)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", structType.String(), field.Name, err)
		}
		if !tag.IsDefined() {
			continue
		}
		ret = &keyTag{name: tag.Name}
		if tag.Discriminant {
			if field.Type.Kind() != reflect.String {
				return nil, fmt.Errorf("%s.%s: discriminant has to be a string, but had %s", structType.String(), field.Name, field.Type.String())
			}
			ret.discriminant = field
		}
	}
	return ret, nil
}
