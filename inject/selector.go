package inject

import (
	"errors"
	"reflect"
)

var (
	// ErrNotStructPtr is returned by FieldOf when the object is not a non-nil
	// pointer to a struct.
	ErrNotStructPtr = errors.New("inject: object must be a non-nil pointer to struct")

	// ErrFieldNotFound is returned by FieldOf when the field pointer does not
	// address a top-level field of the object.
	ErrFieldNotFound = errors.New("inject: field pointer does not address a field of the object")
)

// Selector names a field to leave out of a check.
//
// FieldName must return exactly the name the field is enumerated under
// (the Go field name for struct fields).
type Selector interface {
	FieldName() string
}

// Name is a plain field name selector.
type Name string

// FieldName implements Selector.
func (n Name) FieldName() string { return string(n) }

// Names converts plain strings into selectors.
func Names(names ...string) []Selector {
	out := make([]Selector, 0, len(names))
	for _, n := range names {
		out = append(out, Name(n))
	}
	return out
}

// Enum adapts a string-backed enumeration value into a selector.
//
// Example:
//
//	type Dep string
//	const DepCache Dep = "Cache"
//
//	inject.Check(svc, inject.Enum(DepCache))
func Enum[E ~string](v E) Selector { return Name(v) }

// Enums adapts several string-backed enumeration values into selectors.
func Enums[E ~string](vs ...E) []Selector {
	out := make([]Selector, 0, len(vs))
	for _, v := range vs {
		out = append(out, Name(v))
	}
	return out
}

// StructField selects the field described by f.
func StructField(f reflect.StructField) Selector { return Name(f.Name) }

// FieldOf selects the field of structPtr whose address is fieldPtr.
//
//	sel, err := inject.FieldOf(svc, &svc.Cache)
//
// The field pointer must have the field's exact type, so an embedded struct is
// not confused with its first field.
func FieldOf(structPtr, fieldPtr any) (Selector, error) {
	sv := reflect.ValueOf(structPtr)
	if sv.Kind() != reflect.Pointer || sv.IsNil() || sv.Elem().Kind() != reflect.Struct {
		return nil, ErrNotStructPtr
	}
	fp := reflect.ValueOf(fieldPtr)
	if fp.Kind() != reflect.Pointer || fp.IsNil() {
		return nil, ErrFieldNotFound
	}

	s := sv.Elem()
	t := s.Type()
	for i := range t.NumField() {
		sf := t.Field(i)
		if sf.Type != fp.Type().Elem() {
			continue
		}
		if s.Field(i).Addr().Pointer() == fp.Pointer() {
			return Name(sf.Name), nil
		}
	}
	return nil, ErrFieldNotFound
}

// MustFieldOf is FieldOf that panics on error.
func MustFieldOf(structPtr, fieldPtr any) Selector {
	sel, err := FieldOf(structPtr, fieldPtr)
	if err != nil {
		panic(err)
	}
	return sel
}

// IgnoreSet is the set of field names resolved from selectors.
type IgnoreSet map[string]struct{}

// Has reports whether name is in the set.
func (s IgnoreSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

func (s IgnoreSet) add(selectors ...Selector) {
	for _, sel := range selectors {
		if sel == nil {
			continue
		}
		s[sel.FieldName()] = struct{}{}
	}
}

// Resolve collects the canonical names of selectors into a set.
//
// Duplicates collapse and nil selectors are skipped. An empty list yields an
// empty, non-nil set.
func Resolve(selectors ...Selector) IgnoreSet {
	s := make(IgnoreSet, len(selectors))
	s.add(selectors...)
	return s
}
