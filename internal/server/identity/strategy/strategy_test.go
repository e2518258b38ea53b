package strategy

import (
	"context"
	"errors"
	"testing"

	"secretkeeper/internal/common/identity/tools/hasher"
	"secretkeeper/internal/repositories/identity"
	"secretkeeper/internal/repositories/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalVerify(t *testing.T) {
	// регистрирую мок хранилища учетных записей
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := mocks.NewMockIdentifier(ctrl)

	ctx := context.Background()

	// подготавливаю соленый хэш правильного пароля
	encoded, err := hasher.HashPassword("correct password")
	require.NoError(t, err)

	// Test. success verify -------------------------------------------------------
	m.EXPECT().Authorize(gomock.Any(), "success login").Return(identity.AuthorizationData{
		PasswordHash: encoded,
		ID:           "success id",
	}, true, nil)

	local := NewLocal(m)
	assert.Equal(t, "local", local.Name())

	id, err := local.Verify(ctx, "success login", "correct password")
	require.NoError(t, err)
	assert.Equal(t, "success id", id)

	// Test. wrong password -------------------------------------------------------
	m.EXPECT().Authorize(gomock.Any(), "success login").Return(identity.AuthorizationData{
		PasswordHash: encoded,
		ID:           "success id",
	}, true, nil)

	_, err = local.Verify(ctx, "success login", "wrong password")
	require.Error(t, err)
	assert.Equal(t, true, errors.Is(err, ErrInvalidCredentials))

	// Test. unknown login --------------------------------------------------------
	m.EXPECT().Authorize(gomock.Any(), "unknown login").Return(identity.AuthorizationData{}, false, nil)

	_, err = local.Verify(ctx, "unknown login", "any password")
	require.Error(t, err)
	// ошибка для незарегистрированного логина не отличается от ошибки неверного пароля
	assert.Equal(t, true, errors.Is(err, ErrInvalidCredentials))

	// Test. storage error --------------------------------------------------------
	m.EXPECT().Authorize(gomock.Any(), "error login").Return(identity.AuthorizationData{}, false, errors.New("some storage error"))

	_, err = local.Verify(ctx, "error login", "any password")
	require.Error(t, err)
	assert.Equal(t, false, errors.Is(err, ErrInvalidCredentials))
}
