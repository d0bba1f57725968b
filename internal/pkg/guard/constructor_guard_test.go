package guard_test

import (
	"errors"
	"testing"

	"catering/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		assert.NotNil(t, g)

		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		err := g.Validate(errors.New("not constructed"))

		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		customError := errors.New("not constructed")

		err := g.Validate(customError)

		require.Error(t, err)
		assert.Equal(t, customError, err)
	})

	t.Run("zero_value_guard_with_nil_error_returns_default", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}
