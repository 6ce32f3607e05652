// Package injectcheck catches missing dependency wiring at runtime.
//
// After a composition root builds its services by hand, a forgotten
// assignment leaves a nil collaborator that only surfaces when it is first
// called. injectcheck scans an object's top-level fields and reports every
// one that is still absent, so the mistake fails at startup instead.
//
// See subpackages:
//   - inject: Check / MustCheck / DebugCheck, selectors, Optional
//   - examples/wiring: a runnable composition root using inject
package injectcheck
