package visitology

import "strconv"

// Key represents registry entry key, either element type name or default key
type Key struct {
	name      string
	isDefault bool
}

// Default represents fallback entry key
var Default = Key{isDefault: true}

// Named returns element type name key
func Named(name string) Key {
	return Key{name: name}
}

// Name returns key element type name, empty for default key
func (k Key) Name() string {
	return k.name
}

// IsDefault returns true for default key
func (k Key) IsDefault() bool {
	return k.isDefault
}

func (k Key) String() string {
	if k.isDefault {
		return "<default>"
	}
	return strconv.Quote(k.name)
}

func (k Key) less(o Key) bool {
	if k.isDefault != o.isDefault {
		return k.isDefault
	}
	return k.name < o.name
}
