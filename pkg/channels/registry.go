package channels

import (
	"reflect"
	"sync"
)

// entry is the registry's type-erased storage for one channel. value always
// holds a pointer of the fixed type, shared by every reader and writer bound
// against that name.
type entry struct {
	typ   reflect.Type
	value interface{}
}

// Registry is the engine's channel registry: a named, typed store of shared
// mutable cells. A cell's Go type is fixed the first time its name is used
// and can never change for the life of the Registry.
//
// The engine itself runs single-threaded and cooperative (see the execution
// model), but Registry guards its internal map with a mutex so that
// accidental concurrent use during weaving is serialized instead of
// corrupting the map.
type Registry struct {
	mu    sync.RWMutex
	cells map[string]entry
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		cells: make(map[string]entry),
	}
}

// Has reports whether name is already registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.cells[name]
	return ok
}

// Put inserts or overwrites the cell for name with value. The type tag for
// name is fixed on first insert; re-inserting under a different Go type
// returns a *TypeMismatchError. Overwriting writes value into the existing
// shared cell, so readers and writers already bound to name see it.
func Put[T any](r *Registry, name string, value T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	typ := reflect.TypeOf((*T)(nil)).Elem()
	if existing, ok := r.cells[name]; ok {
		if existing.typ != typ {
			return &TypeMismatchError{Key: name, Expected: existing.typ.String(), Found: typ.String()}
		}
		*existing.value.(*T) = value
		return nil
	}

	v := value
	r.cells[name] = entry{typ: typ, value: &v}
	return nil
}

// Get returns the shared cell for name, or an error if name is absent or was
// fixed to a different type.
func Get[T any](r *Registry, name string) (*T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.cells[name]
	if !ok {
		return nil, &KeyNotFoundError{Key: name}
	}

	typ := reflect.TypeOf((*T)(nil)).Elem()
	if e.typ != typ {
		return nil, &TypeMismatchError{Key: name, Expected: typ.String(), Found: e.typ.String()}
	}

	return e.value.(*T), nil
}

// Ensure returns the shared cell for name, creating a zero-valued one if
// absent. It is idempotent: calling it twice for the same name returns the
// same pointer. It fails with *TypeMismatchError if name already exists
// under a different type.
func Ensure[T any](r *Registry, name string) (*T, error) {
	if cell, err := Get[T](r, name); err == nil {
		return cell, nil
	} else if _, isMismatch := err.(*TypeMismatchError); isMismatch {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	typ := reflect.TypeOf((*T)(nil)).Elem()
	if e, ok := r.cells[name]; ok {
		if e.typ != typ {
			return nil, &TypeMismatchError{Key: name, Expected: typ.String(), Found: e.typ.String()}
		}
		return e.value.(*T), nil
	}

	var zero T
	r.cells[name] = entry{typ: typ, value: &zero}
	return &zero, nil
}
