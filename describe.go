package visitology

import "github.com/francoispqt/gojay"

// MarshalJSONObject encodes entries as key to handler pairs
func (r *Registry[H, R]) MarshalJSONObject(enc *gojay.Encoder) {
	for _, entry := range r.Entries() {
		name := entry.Key.Name()
		if entry.Key.IsDefault() {
			name = "<default>"
		}
		enc.StringKey(name, entry.Binding.String())
	}
}

// IsNil returns true for nil registry
func (r *Registry[H, R]) IsNil() bool {
	return r == nil
}

// Describe returns JSON representation of registry entries, i.e. {"<default>":"*app.Printer.Visit","Apple":"func"}
func (r *Registry[H, R]) Describe() ([]byte, error) {
	return gojay.MarshalJSONObject(r)
}
