package rules

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	err := &ValidationError{Field: "setTemp", Reason: "must be between 16 and 30"}

	assert.Equal(t, "invalid setTemp: must be between 16 and 30", err.Error())
	wrappedErr := fmt.Errorf("wrapped: %w", err)
	assert.ErrorIs(t, wrappedErr, &ValidationError{})
	var err2 *ValidationError
	require.ErrorAs(t, wrappedErr, &err2)
	assert.Equal(t, "setTemp", err2.Field)
}
