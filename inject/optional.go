package inject

import "reflect"

// maxLayers bounds unwrapping for self-referential pointer types (type P *P).
const maxLayers = 64

// Maybe is implemented by optional-like containers.
//
// Absent reports whether the container is empty. Inner returns the held value
// and is only called when Absent returns false.
type Maybe interface {
	Absent() bool
	Inner() any
}

var maybeType = reflect.TypeOf((*Maybe)(nil)).Elem()

// Optional is an explicit present-or-absent value.
//
// The zero value is absent.
type Optional[T any] struct {
	value T
	ok    bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] { return Optional[T]{value: v, ok: true} }

// None returns an absent Optional.
func None[T any]() Optional[T] { return Optional[T]{} }

// Get returns the held value and whether it is present.
func (o Optional[T]) Get() (T, bool) { return o.value, o.ok }

// OrElse returns the held value, or def when absent.
func (o Optional[T]) OrElse(def T) T {
	if !o.ok {
		return def
	}
	return o.value
}

// Absent implements Maybe.
func (o Optional[T]) Absent() bool { return !o.ok }

// Inner implements Maybe.
func (o Optional[T]) Inner() any {
	if !o.ok {
		return nil
	}
	return o.value
}

// Unwrap peels optional layers off v until a concrete value or an absent
// layer is reached.
//
// It returns the innermost value and true when present, or an invalid Value
// and false when absent. Values that are not optional-like are returned
// unchanged.
func Unwrap(v reflect.Value) (reflect.Value, bool) {
	for range maxLayers {
		if !v.IsValid() {
			return reflect.Value{}, false
		}

		switch v.Kind() {
		case reflect.Interface:
			if v.IsNil() {
				return reflect.Value{}, false
			}
			v = v.Elem()
			continue
		case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
			if v.IsNil() {
				return reflect.Value{}, false
			}
		}

		if m, ok := asMaybe(v); ok {
			inner, present := open(m)
			if !present {
				return reflect.Value{}, false
			}
			v = reflect.ValueOf(inner)
			continue
		}

		if v.Kind() == reflect.Pointer && optionalLike(v.Type().Elem()) {
			v = v.Elem()
			continue
		}
		return v, true
	}
	return v, true
}

// IsAbsent reports whether x is absent after unwrapping every optional layer.
func IsAbsent(x any) bool {
	_, ok := Unwrap(reflect.ValueOf(x))
	return !ok
}

// asMaybe returns v as a Maybe. Addressable values whose Maybe methods have
// pointer receivers are taken by address.
func asMaybe(v reflect.Value) (Maybe, bool) {
	if !v.CanInterface() {
		return nil, false
	}
	if v.Type().Implements(maybeType) {
		m, ok := v.Interface().(Maybe)
		return m, ok
	}
	if v.CanAddr() && reflect.PointerTo(v.Type()).Implements(maybeType) {
		m, ok := v.Addr().Interface().(Maybe)
		return m, ok
	}
	return nil, false
}

// open reads m. Maybe methods promoted through a nil embedded pointer panic
// on call; such a container holds nothing and is reported absent.
func open(m Maybe) (inner any, present bool) {
	defer func() {
		if rec := recover(); rec != nil {
			inner, present = nil, false
		}
	}()

	if m.Absent() {
		return nil, false
	}
	return m.Inner(), true
}

// optionalLike reports whether a pointer to t adds another optional layer
// that must be looked through. Pointers to Maybe types never get here: the
// pointer's method set already satisfies Maybe.
func optionalLike(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return true
	}
	return false
}
