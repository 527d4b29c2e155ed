package frame

import (
	"fmt"
	"reflect"
	"unsafe"
)

type resourceEntry struct {
	dataPtr unsafe.Pointer
	value   reflect.Value
}

// Resources holds at most one value per type. Values live in stable heap
// slots, so pointers handed out by Singleton stay valid when a value is
// replaced with Add.
type Resources struct {
	entries map[reflect.Type]*resourceEntry
	order   []reflect.Type
}

// NewResources creates an empty resource table.
func NewResources() *Resources {
	return &Resources{
		entries: make(map[reflect.Type]*resourceEntry),
	}
}

// Add stores value under its dynamic type, overwriting an existing value
// of the same type in place.
func (r *Resources) Add(value any) {
	if value == nil {
		panic("frame: cannot add a nil resource")
	}
	typ := reflect.TypeOf(value)
	if entry, ok := r.entries[typ]; ok {
		entry.value.Elem().Set(reflect.ValueOf(value))
		return
	}

	ptr := reflect.New(typ)
	ptr.Elem().Set(reflect.ValueOf(value))
	r.entries[typ] = &resourceEntry{
		dataPtr: ptr.UnsafePointer(),
		value:   ptr,
	}
	r.order = append(r.order, typ)
}

// Read sets *out to the stored value of type T when out is a **T.
// It reports whether such a value exists.
func (r *Resources) Read(out any) bool {
	outVal := reflect.ValueOf(out)
	if outVal.Kind() != reflect.Ptr || outVal.Elem().Kind() != reflect.Ptr {
		panic(fmt.Sprintf("frame: Read expects a pointer to a pointer, got %T", out))
	}

	entry := r.entries[outVal.Elem().Type().Elem()]
	if entry == nil {
		return false
	}
	outVal.Elem().Set(entry.value)
	return true
}

// Len returns the number of stored resources.
func (r *Resources) Len() int {
	return len(r.entries)
}

// Types lists the stored resource types in insertion order.
func (r *Resources) Types() []string {
	names := make([]string, len(r.order))
	for i, typ := range r.order {
		names[i] = typ.String()
	}
	return names
}

// Each calls fn with a pointer to every stored value, in insertion order.
func (r *Resources) Each(fn func(typ reflect.Type, ptr reflect.Value)) {
	for _, typ := range r.order {
		fn(typ, r.entries[typ].value)
	}
}

func (r *Resources) entry(typ reflect.Type) *resourceEntry {
	return r.entries[typ]
}
