package inject_test

import (
	"os"
	"testing"

	"github.com/sghaida/injectcheck/inject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observedLogger() (*zap.SugaredLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core).Sugar(), logs
}

//
// -----------------------------------------------------------------------------
// DebugCheck
// -----------------------------------------------------------------------------

// TestDebugCheck_SuccessReturnsObject verifies success returns the object in both modes without handler calls or logs.
func TestDebugCheck_SuccessReturnsObject(t *testing.T) {
	t.Parallel()

	logger, logs := observedLogger()
	calls := 0
	svc := newWiredUser()

	for _, mode := range []inject.Mode{{Strict: true}, {Strict: false}} {
		got, ok := inject.DebugCheck(svc, nil,
			inject.WithMode(mode),
			inject.WithLogger(logger),
			inject.WithErrorHandler(func(error) { calls++ }),
		)
		require.True(t, ok)
		assert.Same(t, svc, got)
	}

	assert.Zero(t, calls)
	assert.Zero(t, logs.Len())
}

// TestDebugCheck_StrictCallsHandlerOnce verifies strict mode calls the handler exactly once and does not log.
func TestDebugCheck_StrictCallsHandlerOnce(t *testing.T) {
	t.Parallel()

	logger, logs := observedLogger()
	var handled []error

	got, ok := inject.DebugCheck(&UserService{DB: &DB{}}, nil,
		inject.Strict(),
		inject.WithLogger(logger),
		inject.WithErrorHandler(func(err error) { handled = append(handled, err) }),
	)

	assert.False(t, ok)
	assert.Nil(t, got)
	require.Len(t, handled, 1)
	requireNotInjected(t, handled[0], "Logger", "Basket")
	assert.Zero(t, logs.Len(), "strict mode must not log")
}

// TestDebugCheck_StrictDefaultHandlerPanics verifies the default strict handler panics with the check error.
func TestDebugCheck_StrictDefaultHandlerPanics(t *testing.T) {
	t.Parallel()

	require.PanicsWithError(t, `inject: not injected: "b", "c" in *inject_test.abc`, func() {
		_, _ = inject.DebugCheck(newABC(), nil, inject.Strict())
	})

	// A nil handler keeps the default.
	require.Panics(t, func() {
		_, _ = inject.DebugCheck(newABC(), nil, inject.Strict(), inject.WithErrorHandler(nil))
	})
}

// TestDebugCheck_ReleaseLogsAndContinues verifies release mode logs one entry and never calls the handler.
func TestDebugCheck_ReleaseLogsAndContinues(t *testing.T) {
	t.Parallel()

	logger, logs := observedLogger()
	calls := 0

	got, ok := inject.DebugCheck(&UserService{DB: &DB{}}, nil,
		inject.WithLogger(logger),
		inject.WithErrorHandler(func(error) { calls++ }),
	)

	assert.False(t, ok)
	assert.Nil(t, got)
	assert.Zero(t, calls, "handler must not run outside strict mode")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.ErrorLevel, entry.Level)
	assert.Equal(t, "Injection check error", entry.Message)

	ctx := entry.ContextMap()
	assert.Equal(t, []interface{}{"Logger", "Basket"}, ctx["properties"])
	assert.Equal(t, "*inject_test.UserService", ctx["subject"])
	assert.Contains(t, ctx["error"], `"Logger", "Basket"`)
}

// TestDebugCheck_ReleaseDefaultsToGlobalLogger verifies release mode logs through zap.S() when no logger is set.
func TestDebugCheck_ReleaseDefaultsToGlobalLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	defer restore()

	_, ok := inject.DebugCheck(newABC(), nil)
	assert.False(t, ok)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, []interface{}{"b", "c"}, logs.All()[0].ContextMap()["properties"])
}

// TestDebugCheck_Ignoring verifies ignored fields do not trigger the handler.
func TestDebugCheck_Ignoring(t *testing.T) {
	t.Parallel()

	o := newABC()
	got, ok := inject.DebugCheck(o, inject.Enums(DepB, DepC), inject.Strict())
	require.True(t, ok)
	assert.Same(t, o, got)
}

// TestDebugCheck_WithChecker verifies DebugCheck runs through a custom checker.
func TestDebugCheck_WithChecker(t *testing.T) {
	t.Parallel()

	c := inject.New(inject.WithIgnored(inject.Names("b", "c")...))
	o := newABC()

	got, ok := inject.DebugCheck(o, nil, inject.Strict(), inject.WithChecker(c))
	require.True(t, ok)
	assert.Same(t, o, got)
}

//
// -----------------------------------------------------------------------------
// ModeFromEnv
// -----------------------------------------------------------------------------

// TestModeFromEnv verifies INJECTION_CHECK_ENABLED parsing, including invalid values.
func TestModeFromEnv(t *testing.T) {
	cases := []struct {
		name    string
		value   string
		want    inject.Mode
		wantErr bool
	}{
		{name: "true", value: "true", want: inject.Mode{Strict: true}},
		{name: "one", value: "1", want: inject.Mode{Strict: true}},
		{name: "false", value: "false", want: inject.Mode{Strict: false}},
		{name: "invalid", value: "sometimes", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(inject.EnvStrict, tc.value)

			got, err := inject.ModeFromEnv()
			if tc.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), inject.EnvStrict)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestModeFromEnv_Unset verifies an unset variable yields release mode.
func TestModeFromEnv_Unset(t *testing.T) {
	t.Setenv(inject.EnvStrict, "")
	require.NoError(t, os.Unsetenv(inject.EnvStrict))

	got, err := inject.ModeFromEnv()
	require.NoError(t, err)
	assert.False(t, got.Strict)
}
