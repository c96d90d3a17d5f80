package visitology

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"
	"github.com/viant/visitology/visitor"
)

// OverwritePolicy defines how an existing entry is treated
type OverwritePolicy bool

const (
	//DoNotOverwrite fails adding an entry that already exists
	DoNotOverwrite OverwritePolicy = false
	//Overwrite replaces an existing entry
	Overwrite OverwritePolicy = true
)

type (
	//Registry dispatches visited elements to handlers bound to element keys.
	//Registry is not safe for concurrent mutation.
	Registry[H, R any] struct {
		entries  map[Key]*Binding[H, R]
		resolver *resolver
		logger   zerolog.Logger
	}

	//Entry represents registry entry
	Entry[H, R any] struct {
		Key     Key
		Binding *Binding[H, R]
	}
)

// AddEntry adds binding for supplied key
func (r *Registry[H, R]) AddEntry(key Key, binding *Binding[H, R], policy OverwritePolicy) error {
	if binding == nil || binding.fn == nil {
		return newError(ErrInvalidBinding, CodeMissingHandler, "entry %s requires a binding, but had nil", key)
	}
	_, exists := r.entries[key]
	if exists && policy == DoNotOverwrite {
		return newError(ErrDuplicateEntry, CodeDuplicateEntry, "entry %s already exists", key)
	}
	r.entries[key] = binding
	r.logger.Debug().Stringer("key", key).Stringer("binding", binding).Bool("overwritten", exists).Msg("entry added")
	return nil
}

// Register adds binding for supplied key, it fails if entry already exists
func (r *Registry[H, R]) Register(key Key, binding *Binding[H, R]) error {
	return r.AddEntry(key, binding, DoNotOverwrite)
}

// EntryExists returns true if entry exists
func (r *Registry[H, R]) EntryExists(key Key) bool {
	_, ok := r.entries[key]
	return ok
}

// RemoveEntry removes an entry, absent entry is ignored
func (r *Registry[H, R]) RemoveEntry(key Key) {
	if _, ok := r.entries[key]; !ok {
		return
	}
	delete(r.entries, key)
	r.logger.Debug().Stringer("key", key).Msg("entry removed")
}

// GetEntry returns entry binding or false if entry does not exist
func (r *Registry[H, R]) GetEntry(key Key) (*Binding[H, R], bool) {
	binding, ok := r.entries[key]
	return binding, ok
}

// GetDefaultEntry returns default entry binding or false if entry does not exist
func (r *Registry[H, R]) GetDefaultEntry() (*Binding[H, R], bool) {
	return r.GetEntry(Default)
}

// Entries returns entries sorted by key, default entry goes first
func (r *Registry[H, R]) Entries() []Entry[H, R] {
	result := make([]Entry[H, R], 0, len(r.entries))
	for key, binding := range r.entries {
		result = append(result, Entry[H, R]{Key: key, Binding: binding})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Key.less(result[j].Key)
	})
	return result
}

// Len returns number of entries
func (r *Registry[H, R]) Len() int {
	return len(r.entries)
}

// KeyOf returns element key
func (r *Registry[H, R]) KeyOf(element interface{}) (Key, error) {
	name, ok, err := r.resolver.resolve(element)
	if err != nil {
		return Key{}, err
	}
	if !ok {
		return Key{}, newError(ErrNoMatchingEntry, CodeNoMatchingEntry, "no key for element %T", element)
	}
	return Named(name), nil
}

// VisitEntry calls handler bound to supplied key
func (r *Registry[H, R]) VisitEntry(key Key, element interface{}, handle *H, aux interface{}) (R, error) {
	binding, ok := r.entries[key]
	if !ok {
		var result R
		return result, newError(ErrUnknownEntry, CodeUnknownEntry, "entry %s does not exist", key)
	}
	return binding.Call(element, handle, aux)
}

// Visit calls handler bound to element key, or default entry handler if element key is not registered
func (r *Registry[H, R]) Visit(element interface{}, handle *H, aux interface{}) (R, error) {
	var result R
	name, ok, err := r.resolver.resolve(element)
	if err != nil {
		return result, err
	}
	if ok {
		if binding, has := r.entries[Named(name)]; has {
			return binding.Call(element, handle, aux)
		}
	} else {
		name = fmt.Sprintf("%T", element)
	}
	binding, has := r.entries[Default]
	if !has {
		return result, newError(ErrNoMatchingEntry, CodeNoMatchingEntry, "no entry matches element %s", name)
	}
	r.logger.Debug().Str("element", name).Msg("visiting default entry")
	return binding.Call(element, handle, aux)
}

// VisitEach visits every element of supplied slice, map or struct, nested containers are not descended.
// It stops on the first error.
func (r *Registry[H, R]) VisitEach(container interface{}, handle *H, aux interface{}) ([]R, error) {
	visit, err := visitor.Of(container)
	if err != nil {
		return nil, err
	}
	var results []R
	err = visit(func(key interface{}, element interface{}) (bool, error) {
		result, err := r.Visit(element, handle, aux)
		if err != nil {
			return false, fmt.Errorf("failed to visit %v: %w", key, err)
		}
		results = append(results, result)
		return true, nil
	})
	return results, err
}

// New creates a registry
func New[H, R any](opts ...Option) *Registry[H, R] {
	options := newOptions(opts)
	return &Registry[H, R]{
		entries:  make(map[Key]*Binding[H, R]),
		resolver: newResolver(options),
		logger:   options.logger,
	}
}
