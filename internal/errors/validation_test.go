package errors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/dungeoncrawl/internal/errors"
)

func TestValidationBuilderNoErrors(t *testing.T) {
	assert.NoError(t, errors.NewValidationBuilder().Build())
}

func TestValidationBuilder(t *testing.T) {
	err := errors.NewValidationBuilder().
		RequiredField("Store").
		Fieldf("Width", "must be positive, got %d", 0).
		RequiredField("Console").
		Build()
	require.Error(t, err)

	assert.True(t, errors.IsInvalidArgument(err))
	assert.Equal(t,
		"validation failed: Console: is required; Store: is required; Width: must be positive, got 0",
		errors.GetMessage(err))
}
