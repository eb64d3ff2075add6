package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/halvardk/cdclsat/internal/sat"
)

func TestResultString(t *testing.T) {
	require.Equal(t, "Sat", resultString(sat.True))
	require.Equal(t, "Unsat", resultString(sat.False))
	require.Equal(t, "Unknown", resultString(sat.Unknown))
}

func TestSetupLogger_NilWhenLOGUnset(t *testing.T) {
	t.Setenv("LOG", "")
	require.Nil(t, setupLogger())
}

func TestSetupLogger_TraceLevelWhenLOGSet(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	defer os.Chdir(wd)
	require.NoError(t, os.Chdir(dir))

	t.Setenv("LOG", "1")
	log := setupLogger()
	require.NotNil(t, log)
	require.Equal(t, "trace", log.GetLevel().String())

	_, err = os.Stat("output.log")
	require.NoError(t, err)
}
