package tags

import (
	"fmt"
	"strings"
)

// Tag represents element key tag, i.e. `visit:"name=Apple"` or `visit:"discriminant"`
type Tag struct {
	Name         string
	Discriminant bool
}

// IsDefined returns true if tag declares element key
func (t *Tag) IsDefined() bool {
	return t != nil && (t.Name != "" || t.Discriminant)
}

// Parse parses tag literal
func Parse(literal string) (*Tag, error) {
	ret := &Tag{}
	err := Values(literal).MatchPairs(func(key, value string) error {
		switch strings.ToLower(key) {
		case "name":
			if value == "" {
				return fmt.Errorf("name value was empty")
			}
			ret.Name = value
		case "discriminant":
			ret.Discriminant = true
		default:
			return fmt.Errorf("unsupported tag option: %v", key)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid tag %q: %w", literal, err)
	}
	if ret.Name != "" && ret.Discriminant {
		return nil, fmt.Errorf("invalid tag %q: name and discriminant are mutually exclusive", literal)
	}
	return ret, nil
}
