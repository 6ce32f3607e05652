package inject

// Checker finds absent fields on an object.
//
// A Checker is immutable after New and safe for concurrent use.
type Checker struct {
	enumerator Enumerator
	tagKey     string
	ignored    []Selector
}

// Option configures a Checker.
type Option func(*Checker)

// WithEnumerator replaces field enumeration. FieldLister implementations are
// not consulted when an enumerator is set.
func WithEnumerator(e Enumerator) Option {
	return func(c *Checker) {
		c.enumerator = e
	}
}

// WithTagKey changes the struct tag used to opt fields out. It only affects
// the default reflection enumerator.
func WithTagKey(key string) Option {
	return func(c *Checker) {
		c.tagKey = key
	}
}

// WithIgnored adds selectors ignored on every check, merged with the
// per-call ones.
func WithIgnored(selectors ...Selector) Option {
	return func(c *Checker) {
		c.ignored = append(c.ignored, selectors...)
	}
}

// New returns a Checker configured by opts.
func New(opts ...Option) *Checker {
	c := &Checker{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultChecker = New()

// Check reports the absent, non-ignored top-level fields of obj.
//
// It returns nil when every field is present, otherwise a *NotInjectedError
// listing the absent names in enumeration order. obj is never modified.
//
// Nil slices and maps count as absent, like nil pointers. Initialise such
// fields (e.g. Tags: []string{}) or ignore them when nil is a valid state.
func (c *Checker) Check(obj any, ignoring ...Selector) error {
	ignore := Resolve(ignoring...)
	ignore.add(c.ignored...)

	var missing []string
	for _, f := range c.fields(obj) {
		if ignore.Has(f.Name) {
			continue
		}
		if _, ok := Unwrap(f.Value); !ok {
			missing = append(missing, f.Name)
		}
	}

	if len(missing) > 0 {
		return &NotInjectedError{Properties: missing, Subject: obj}
	}
	return nil
}

func (c *Checker) fields(obj any) []Field {
	if c.enumerator != nil {
		return c.enumerator.Fields(obj)
	}
	if l, ok := obj.(FieldLister); ok && !isNilPointer(obj) {
		return l.InjectionFields()
	}
	return ReflectEnumerator{TagKey: c.tagKey}.Fields(obj)
}

// CheckWith runs c against obj and returns obj itself on success.
//
// On failure it returns the zero T and a *NotInjectedError whose Subject is obj.
func CheckWith[T any](c *Checker, obj T, ignoring ...Selector) (T, error) {
	if c == nil {
		c = defaultChecker
	}
	if err := c.Check(obj, ignoring...); err != nil {
		var zero T
		return zero, err
	}
	return obj, nil
}

// Check runs the default checker against obj. See (*Checker).Check.
func Check[T any](obj T, ignoring ...Selector) (T, error) {
	return CheckWith(defaultChecker, obj, ignoring...)
}

// MustCheck returns obj or panics with the *NotInjectedError.
// Useful in composition roots where missing wiring should fail fast.
func MustCheck[T any](obj T, ignoring ...Selector) T {
	v, err := Check(obj, ignoring...)
	if err != nil {
		panic(err)
	}
	return v
}
