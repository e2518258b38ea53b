package info

import (
	"sync"
	"testing"

	"secretkeeper/internal/client/identity"

	"github.com/stretchr/testify/assert"
)

func TestUserInfoStorage(t *testing.T) {
	stor := NewUserInfoStorage()

	// данные сессии еще не установлены
	authData, token := stor.Get()
	assert.Equal(t, identity.AuthData{}, authData)
	assert.Equal(t, "", token)

	// устанавливаю данные сессии
	wantData := identity.AuthData{
		Login:    "test login",
		Password: "test password",
	}
	stor.Set(wantData, "test token")

	authData, token = stor.Get()
	assert.Equal(t, wantData, authData)
	assert.Equal(t, "test token", token)

	// обновляю токен сессии, данные пользователя при этом не меняются
	stor.SetToken("new token")
	authData, token = stor.Get()
	assert.Equal(t, wantData, authData)
	assert.Equal(t, "new token", token)
}

func TestUserInfoStorageConcurrent(t *testing.T) {
	stor := NewUserInfoStorage()

	// проверка потокобезопасности методов хранилища
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			stor.Set(identity.AuthData{Login: "login", Password: "password"}, "token")
		}()
		go func() {
			defer wg.Done()
			_, _ = stor.Get()
		}()
	}
	wg.Wait()

	authData, token := stor.Get()
	assert.Equal(t, "login", authData.Login)
	assert.Equal(t, "token", token)
}
