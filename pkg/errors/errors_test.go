package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInvalidSpecErrorMatchesSentinel(t *testing.T) {
	t.Parallel()

	err := NewInvalidSpecError("columns[2].span", 30, "must be within [0,24]")

	var specErr *InvalidSpecError
	require.ErrorAs(t, err, &specErr)
	require.Equal(t, "columns[2].span", specErr.Field)
	require.Equal(t, 30, specErr.Value)
	require.True(t, stdErrors.Is(err, ErrInvalidSpec))
	require.Contains(t, err.Error(), "columns[2].span=30")
}

func TestWrapInvalidSpecKeepsCause(t *testing.T) {
	t.Parallel()

	cause := stdErrors.New("min")
	err := fmt.Errorf("row header: %w", WrapInvalidSpec("offset", "failed validation", cause))

	require.True(t, stdErrors.Is(err, ErrInvalidSpec))
	require.True(t, stdErrors.Is(err, cause))
	require.Contains(t, err.Error(), "invalid spec: offset")
}

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("layout.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "layout.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "layout.yaml:12")
	require.False(t, stdErrors.Is(err, ErrInvalidSpec))
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("rows[1].columns", "at least one column is required", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "rows[1].columns", validationErr.Field)
	require.Contains(t, validationErr.Message, "at least one column")
}
