package frame

import (
	"reflect"
	"unsafe"
)

// Singleton gives typed access to one value in Resources. Systems embed
// Singleton fields and the Scheduler initialises them on Register. T must
// be a concrete type; wrap interfaces in a struct.
type Singleton[T any] struct {
	resources *Resources
	dataPtr   unsafe.Pointer
}

// NewSingleton returns an accessor for T, creating the value from
// initializer (or the zero value) when it is missing.
func NewSingleton[T any](resources *Resources, initializer ...T) *Singleton[T] {
	typ := reflect.TypeFor[T]()
	if resources.entry(typ) == nil {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		resources.Add(value)
	}

	return &Singleton[T]{
		resources: resources,
		dataPtr:   resources.entry(typ).dataPtr,
	}
}

// Init binds the accessor to resources. Called by Scheduler.Register.
func (s *Singleton[T]) Init(resources *Resources) {
	s.resources = resources
	s.dataPtr = nil
	s.updateCache()
}

// Get returns a pointer to the value, or nil if it has not been added.
func (s *Singleton[T]) Get() *T {
	if s.dataPtr == nil {
		s.updateCache()
	}
	if s.dataPtr == nil {
		return nil
	}
	return (*T)(s.dataPtr)
}

// Exists reports whether the value has been added.
func (s *Singleton[T]) Exists() bool {
	return s.Get() != nil
}

func (s *Singleton[T]) updateCache() {
	if s.resources == nil {
		return
	}
	if entry := s.resources.entry(reflect.TypeFor[T]()); entry != nil {
		s.dataPtr = entry.dataPtr
	}
}
