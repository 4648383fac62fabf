package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	application, err := New("1.2.3", "abc123", "2026-03-14", "test")
	require.NoError(t, err)

	assert.Equal(t, "1.2.3", application.Version())
	assert.Equal(t, "abc123", application.Commit())
	assert.Equal(t, "2026-03-14", application.Date())
	assert.Equal(t, "test", application.BuiltBy())
	assert.NotNil(t, application.Config())
	assert.NotNil(t, application.Logger())
}

func TestTrackerIsSingleton(t *testing.T) {
	application, err := New("dev", "", "", "")
	require.NoError(t, err)

	first, err := application.Tracker()
	require.NoError(t, err)
	second, err := application.Tracker()
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestDetermineLogLevel(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		want   string
	}{
		{"default", Config{}, "info"},
		{"verbose", Config{Verbose: true}, "debug"},
		{"quiet", Config{Quiet: true}, "warn"},
		{"both means quiet", Config{Verbose: true, Quiet: true}, "warn"},
		{"explicit wins", Config{Verbose: true, LogLevel: "error"}, "error"},
		{"invalid falls back", Config{LogLevel: "noisy"}, "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, determineLogLevel(&tt.config))
		})
	}
}

func TestUpdateFromFlags(t *testing.T) {
	config := &Config{DataDir: "data", Format: "json"}

	config.UpdateFromFlags(true, false, true, "", "elsewhere", "")

	assert.True(t, config.Verbose)
	assert.True(t, config.NoColor)
	assert.Equal(t, "elsewhere", config.DataDir)
	assert.Equal(t, "json", config.Format, "empty flag leaves config value alone")
}

func TestExitError(t *testing.T) {
	inner := errors.New("two brands failed")
	err := &ExitError{Code: 2, Err: inner}

	assert.Equal(t, "two brands failed", err.Error())
	assert.ErrorIs(t, err, inner)

	var exitErr *ExitError
	require.ErrorAs(t, error(err), &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}
