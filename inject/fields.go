package inject

import (
	"reflect"
	"strings"
	"unsafe"
)

// DefaultTagKey is the struct tag read by ReflectEnumerator.
//
// A field tagged `inject:"-"` or `inject:"optional"` is not enumerated.
const DefaultTagKey = "inject"

// Field is a read-only view of one top-level field.
type Field struct {
	Name  string
	Value reflect.Value
}

// NewField builds a Field from a plain value. It is meant for FieldLister
// implementations.
func NewField(name string, value any) Field {
	return Field{Name: name, Value: reflect.ValueOf(value)}
}

// Enumerator lists the top-level fields of an object in a stable order.
type Enumerator interface {
	Fields(obj any) []Field
}

// EnumeratorFunc adapts a function to Enumerator.
type EnumeratorFunc func(obj any) []Field

// Fields implements Enumerator.
func (f EnumeratorFunc) Fields(obj any) []Field { return f(obj) }

// FieldLister lets a type enumerate its own fields instead of being reflected
// over. The default checker prefers it when present.
type FieldLister interface {
	InjectionFields() []Field
}

// ReflectEnumerator enumerates struct fields in declaration order.
//
// Pointers are followed to reach the struct. Unexported and embedded fields
// are included; embedded fields are named after their type. Blank (_) fields
// and fields opted out through TagKey are skipped. Anything that is not a
// struct, including a nil pointer, has no fields.
type ReflectEnumerator struct {
	// TagKey overrides DefaultTagKey when set.
	TagKey string
}

// Fields implements Enumerator.
func (e ReflectEnumerator) Fields(obj any) []Field {
	rv := reflect.ValueOf(obj)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}
	if !rv.CanAddr() {
		// Addressable copy so unexported fields can be read through NewAt.
		cp := reflect.New(rv.Type()).Elem()
		cp.Set(rv)
		rv = cp
	}

	key := e.TagKey
	if key == "" {
		key = DefaultTagKey
	}

	t := rv.Type()
	fields := make([]Field, 0, t.NumField())
	for i := range t.NumField() {
		sf := t.Field(i)
		if sf.Name == "_" || optedOut(sf.Tag.Get(key)) {
			continue
		}
		fv := rv.Field(i)
		if !sf.IsExported() {
			fv = reflect.NewAt(sf.Type, unsafe.Pointer(fv.UnsafeAddr())).Elem()
		}
		fields = append(fields, Field{Name: sf.Name, Value: fv})
	}
	return fields
}

func optedOut(tag string) bool {
	if tag == "" {
		return false
	}
	for _, opt := range strings.Split(tag, ",") {
		switch strings.TrimSpace(opt) {
		case "-", "optional":
			return true
		}
	}
	return false
}

func isNilPointer(obj any) bool {
	rv := reflect.ValueOf(obj)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
