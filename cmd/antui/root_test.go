package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootRejectsUnknownLogFormat(t *testing.T) {
	_, _, err := execute(t, "--log-format", "xml", "version")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown log format")
}

func TestVerboseJSONLogsGoToStderr(t *testing.T) {
	stdout, stderr, err := execute(t, "-v", "--log-format", "json",
		"place", "--anchor", "0,0,10,2", "--content", "4,1", "--placement", "bottom")
	require.NoError(t, err)
	require.Contains(t, stdout, "placement: bottom")
	require.Contains(t, stderr, `"message":"placement resolved"`)
	require.Contains(t, stderr, `"resolved":"bottom"`)
}

func TestCommandErrorUnwraps(t *testing.T) {
	_, _, err := execute(t, "layout", "does-not-exist.yaml")
	require.Error(t, err)

	var cmdErr *commandError
	require.ErrorAs(t, err, &cmdErr)
	require.Contains(t, err.Error(), "Failed to evaluate layout")
	require.Contains(t, err.Error(), "Suggestion:")
	require.NotNil(t, cmdErr.Unwrap())
}
