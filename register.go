package dotenv

import (
	"fmt"
	"reflect"
	"sync"
)

// CoercionFunc converts the raw value of a field into the field's type.
// all holds every entry of the store the field is bound from.
type CoercionFunc func(raw string, all map[string]string) (any, error)

// Registry maps field types the binder does not handle natively to the
// coercion used for them. Registering the same type again replaces the
// previous coercion. All methods are safe for concurrent use.
type Registry struct {
	coercions map[reflect.Type]CoercionFunc
	mutex     sync.RWMutex
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		coercions: make(map[reflect.Type]CoercionFunc),
	}
}

// Register sets the coercion for typ, overwriting any earlier registration.
func (r *Registry) Register(typ reflect.Type, fn CoercionFunc) error {
	if typ == nil {
		return fmt.Errorf("coercion type cannot be nil")
	}
	if fn == nil {
		return fmt.Errorf("coercion for %s cannot be nil", typ)
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.coercions[typ] = fn
	return nil
}

// Unregister removes the coercion for typ, if any.
func (r *Registry) Unregister(typ reflect.Type) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	delete(r.coercions, typ)
}

// Lookup returns the coercion registered for exactly typ.
func (r *Registry) Lookup(typ reflect.Type) (CoercionFunc, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	fn, ok := r.coercions[typ]
	return fn, ok
}

// Types returns the registered types.
func (r *Registry) Types() []reflect.Type {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	types := make([]reflect.Type, 0, len(r.coercions))
	for typ := range r.coercions {
		types = append(types, typ)
	}
	return types
}

// Clone returns an independent copy of the registry.
func (r *Registry) Clone() *Registry {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	clone := NewRegistry()
	for typ, fn := range r.coercions {
		clone.coercions[typ] = fn
	}
	return clone
}

// RegisterFunc registers a typed coercion for T.
func RegisterFunc[T any](r *Registry, fn func(raw string, all map[string]string) (T, error)) error {
	if fn == nil {
		return fmt.Errorf("coercion for %s cannot be nil", reflect.TypeFor[T]())
	}
	return r.Register(reflect.TypeFor[T](), func(raw string, all map[string]string) (any, error) {
		return fn(raw, all)
	})
}
