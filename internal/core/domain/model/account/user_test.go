package account_test

import (
	"testing"
	"time"

	"github.com/hmucanze19/algafood-api/internal/core/domain/model/account"
	"github.com/hmucanze19/algafood-api/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("valid user", func(t *testing.T) {
		u, err := account.NewUser("Helder", "Helder@Example.COM ", "$2a$10$hash")
		require.NoError(t, err)
		require.NoError(t, u.Validate())

		assert.Equal(t, "helder@example.com", u.Email())
		assert.Zero(t, u.ID())
		assert.False(t, u.CreatedAt().IsZero())
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := account.NewUser("", "a@b.com", "h")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = account.NewUser("Helder", "", "h")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = account.NewUser("Helder", "a@b.com", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid email", func(t *testing.T) {
		_, err := account.NewUser("Helder", "not-an-email", "h")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestUser_AssignID(t *testing.T) {
	u, err := account.NewUser("Helder", "a@b.com", "h")
	require.NoError(t, err)

	u.AssignID(5)
	u.AssignID(9)
	assert.EqualValues(t, 5, u.ID())
}

func TestRestoreUser(t *testing.T) {
	created := time.Now().Add(-time.Hour)
	u := account.RestoreUser(3, "Ana", "ana@b.com", "h", created)

	require.NoError(t, u.Validate())
	assert.EqualValues(t, 3, u.ID())
	assert.Equal(t, created, u.CreatedAt())
}

func TestUser_Validate_ZeroValue(t *testing.T) {
	var u account.User
	require.ErrorIs(t, u.Validate(), account.ErrUserIsNotConstructed)
}
