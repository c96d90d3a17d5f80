// Package visitology provides a visitor dispatch registry.
//
// A Registry maps element keys to handler bindings and routes visited elements
// to the handler bound to the element key, falling back to the Default entry:
//
//	registry := visitology.New[Stats, string]()
//	binding, _ := visitology.Bind[Stats, string](printer, "VisitApple")
//	_ = registry.Register(visitology.Named("Apple"), binding)
//	result, err := registry.Visit(&Apple{}, &stats, nil)
//
// Element keys are resolved in the following order: Element.VisitKey(), struct field `visit` tag
// (either `visit:"name=Apple"` or `visit:"discriminant"` on a string field), Go type name.
//
// Handlers take the visited element, a mutable handle and a read only aux value.
// Registry is not safe for concurrent mutation.
package visitology
