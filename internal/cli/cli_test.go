package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/leofalp/mathkit/providers/observability/slogobs"
)

// execute runs the root command with args and returns stdout, stderr, and
// the error Execute produced.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := NewRootCommand()
	require.NotNil(t, cmd)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// quietEnv pins logging to INFO/compact so output does not depend on the
// developer's environment.
func quietEnv(t *testing.T) {
	t.Helper()
	t.Setenv("MATHKIT_LOG_LEVEL", "INFO")
	t.Setenv("MATHKIT_LOG_FORMAT", string(slogobs.FormatCompact))
}
