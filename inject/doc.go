// Package inject verifies that an object's dependencies were wired before use.
//
// It inspects the top-level fields of a value (usually a pointer to a service
// struct built in a composition root) and reports every field that is still
// absent. Absent means "no value": a nil pointer, interface, map, slice,
// channel or func, or an Optional / Maybe that holds nothing. Zero values such
// as "", 0 or an empty non-nil slice are present.
//
// Optional layers are peeled recursively, so a **DB whose inner pointer is nil,
// a pointer to a nil map or slice, an interface holding a nil pointer, or an
// Optional[Optional[T]] that is empty at the bottom are all absent. A pointer
// to a struct is present; the struct itself is not scanned.
//
// A nil slice or map field is reported like a nil pointer, even though Go
// treats it as a usable empty value.
//
// Basic usage:
//
//	svc := &UserService{DB: db}
//	svc, err := inject.Check(svc)
//	// err: inject: not injected: "Logger" in *app.UserService
//
// Fields can be left out of the check with selectors:
//
//	inject.Check(svc, inject.Name("Cache"))
//	inject.Check(svc, inject.Enums(DepCache, DepTracer)...)
//	inject.Check(svc, inject.MustFieldOf(svc, &svc.Cache))
//
// or declaratively with a struct tag:
//
//	type UserService struct {
//		DB    *DB
//		Cache *Cache `inject:"optional"`
//	}
//
// DebugCheck is the non-failing form. In strict mode it hands the error to an
// ErrorHandler (panics by default); otherwise it logs through zap and returns
// ok=false. ModeFromEnv reads the mode from INJECTION_CHECK_ENABLED.
//
// Only the object passed in is scanned. Nested objects are not traversed.
//
// Import
//
//	"github.com/sghaida/injectcheck/inject"
package inject
