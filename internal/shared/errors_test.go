package shared

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFieldErrorsMatchValidation(t *testing.T) {
	err := FieldErrors{"title": "required"}
	require.ErrorIs(t, err, ErrValidation)
	require.False(t, errors.Is(err, ErrNotFound))
}

func TestFieldErrorsMessage(t *testing.T) {
	err := FieldErrors{"title": "required", "id": "must be an integer"}
	require.Equal(t, "validation failed: id: must be an integer; title: required", err.Error())
	require.Equal(t, ErrValidation.Error(), FieldErrors{}.Error())
}
