package inject

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/united-manufacturing-hub/umh-utils/env"
	"go.uber.org/zap"
)

// EnvStrict is the environment variable read by ModeFromEnv.
const EnvStrict = "INJECTION_CHECK_ENABLED"

// Mode selects what DebugCheck does on failure.
//
// Strict hands the error to the ErrorHandler. Otherwise the error is logged
// and DebugCheck returns ok=false.
type Mode struct {
	Strict bool
}

// ModeFromEnv reads Mode.Strict from INJECTION_CHECK_ENABLED (default false).
func ModeFromEnv() (Mode, error) {
	strict, err := env.GetAsBool(EnvStrict, false, false)
	if err != nil {
		return Mode{}, fmt.Errorf("inject: %w", err)
	}
	return Mode{Strict: strict}, nil
}

// ErrorHandler receives the check error in strict mode.
type ErrorHandler func(err error)

// PanicHandler is the default ErrorHandler. It aborts by panicking with err.
func PanicHandler(err error) { panic(err) }

type debugConfig struct {
	mode    Mode
	onError ErrorHandler
	logger  *zap.SugaredLogger
	checker *Checker
}

// DebugOption configures DebugCheck.
type DebugOption func(*debugConfig)

// WithMode sets the failure mode.
func WithMode(m Mode) DebugOption {
	return func(c *debugConfig) {
		c.mode = m
	}
}

// Strict is shorthand for WithMode(Mode{Strict: true}).
func Strict() DebugOption { return WithMode(Mode{Strict: true}) }

// WithErrorHandler replaces PanicHandler. A nil handler is ignored.
func WithErrorHandler(h ErrorHandler) DebugOption {
	return func(c *debugConfig) {
		if h != nil {
			c.onError = h
		}
	}
}

// WithLogger sets the logger used outside strict mode. Defaults to zap.S().
func WithLogger(l *zap.SugaredLogger) DebugOption {
	return func(c *debugConfig) {
		c.logger = l
	}
}

// WithChecker runs DebugCheck through c instead of the default checker.
func WithChecker(ch *Checker) DebugOption {
	return func(c *debugConfig) {
		c.checker = ch
	}
}

// DebugCheck is the non-failing form of Check.
//
// On success it returns (obj, true). On failure it returns the zero T and
// false after either calling the ErrorHandler once (strict mode) or logging
// the error.
func DebugCheck[T any](obj T, ignoring []Selector, opts ...DebugOption) (T, bool) {
	cfg := debugConfig{onError: PanicHandler}
	for _, opt := range opts {
		opt(&cfg)
	}

	got, err := CheckWith(cfg.checker, obj, ignoring...)
	if err == nil {
		return got, true
	}

	if cfg.mode.Strict {
		cfg.onError(err)
	} else {
		logger := cfg.logger
		if logger == nil {
			logger = zap.S()
		}
		logger.Errorw("Injection check error",
			"error", err,
			"properties", propertiesOf(err),
			"subject", subjectType(obj),
		)
	}

	var zero T
	return zero, false
}

func propertiesOf(err error) []string {
	var nie *NotInjectedError
	if errors.As(err, &nie) {
		return nie.Properties
	}
	return nil
}

func subjectType(obj any) string {
	t := reflect.TypeOf(obj)
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
