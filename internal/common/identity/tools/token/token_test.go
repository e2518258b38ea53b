package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetSecretKey(t *testing.T) {
	testKey := "test key"
	SetSecretKey(testKey)
	assert.Equal(t, testKey, secretKey)
}

func TestSetExpireHour(t *testing.T) {
	testExpire := 235235
	SetExpireHour(testExpire)
	assert.Equal(t, testExpire, expireHour)
	assert.Equal(t, testExpire, GetExpireHour())
}

func TestBuildJWT(t *testing.T) {
	SetSecretKey("test key")
	SetExpireHour(1)

	// генерирую токен
	id := "41614361346161346"
	token, err := BuildJWT(id)
	require.NoError(t, err)

	// получаю идентификатор учетной записи из токена
	getID, err := GetAccountIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, getID)

	// генерирую новый токен
	id2 := "527274747542747"
	token2, err := BuildJWT(id2)
	require.NoError(t, err)

	// получаю идентификатор учетной записи из токена
	getID2, err := GetAccountIDFromToken(token2)
	require.NoError(t, err)
	assert.Equal(t, id2, getID2)
	assert.NotEqual(t, getID, getID2)

	// тест с ошибкой. Токен с истекшим сроком действия
	SetExpireHour(-1)
	expiredToken, err := BuildJWT(id)
	require.NoError(t, err)
	_, err = GetAccountIDFromToken(expiredToken)
	require.Error(t, err)
	SetExpireHour(1)

	// тест с ошибкой. При попытке извлечь идентификатор из токена устанавливаю неверный секретный ключ
	SetSecretKey("wrong key")
	_, err = GetAccountIDFromToken(token2)
	require.Error(t, err)
}
