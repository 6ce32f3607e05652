package inject

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
)

// ErrNotInjected matches every *NotInjectedError under errors.Is.
var ErrNotInjected = errors.New("inject: dependencies not injected")

// NotInjectedError is returned when one or more checked fields are absent.
type NotInjectedError struct {
	// Properties lists the absent field names in enumeration order.
	Properties []string

	// Subject is the object that was checked.
	Subject any
}

// Error implements the error interface.
func (e *NotInjectedError) Error() string {
	// Example: inject: not injected: "DB", "Logger" in *app.UserService
	var b strings.Builder
	b.WriteString("inject: not injected: ")
	for i, p := range e.Properties {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Quote(p))
	}
	if e.Subject != nil {
		b.WriteString(" in ")
		b.WriteString(reflect.TypeOf(e.Subject).String())
	}
	return b.String()
}

// Is reports whether target is ErrNotInjected.
func (e *NotInjectedError) Is(target error) bool { return target == ErrNotInjected }
