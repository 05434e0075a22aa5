package guard_test

import (
	"errors"
	"testing"

	"github.com/hmucanze19/algafood-api/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	customErr := errors.New("thing must be created via NewThing")

	t.Run("constructed guard passes", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		require.NoError(t, g.Validate(customErr))
	})

	t.Run("zero-value guard fails with the provided error", func(t *testing.T) {
		var g guard.ConstructorGuard
		err := g.Validate(customErr)
		assert.Equal(t, customErr, err)
	})

	t.Run("zero-value guard falls back to the default error", func(t *testing.T) {
		var g guard.ConstructorGuard
		err := g.Validate(nil)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuard_EmbeddedUsage(t *testing.T) {
	type command struct {
		guard guard.ConstructorGuard
	}

	constructed := command{guard: guard.NewConstructorGuard()}
	require.NoError(t, constructed.guard.Validate(nil))

	var zero command
	require.Error(t, zero.guard.Validate(nil))
}
