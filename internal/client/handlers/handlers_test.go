package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"secretkeeper/internal/client/identity"
	"secretkeeper/internal/client/storage/info"
	repoIdent "secretkeeper/internal/repositories/identity"
	"secretkeeper/internal/repositories/secrets"

	"github.com/go-chi/chi/v5"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	// тестовый сервер, который притворяется сервером secretkeeper
	r := chi.NewRouter()
	r.Post("/register", func(res http.ResponseWriter, req *http.Request) {
		var getData repoIdent.IdentityData
		err := json.NewDecoder(req.Body).Decode(&getData)
		require.NoError(t, err)

		switch getData.Login {
		case "success login":
			res.Header().Set("Authorization", "Bearer test-token")
			res.WriteHeader(http.StatusOK)
		case "already login":
			res.WriteHeader(http.StatusConflict)
		default:
			res.WriteHeader(http.StatusInternalServerError)
		}
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	ctx := context.Background()
	client := resty.New()

	{
		// Тест с успешной регистрацией. Данные сессии должны установиться в хранилище
		stor := info.NewUserInfoStorage()
		authData := &identity.AuthData{Login: "success login", Password: "password"}

		ok, err := Register(ctx, srv.URL+"/register", authData, client, stor)
		require.NoError(t, err)
		assert.Equal(t, true, ok)

		getData, token := stor.Get()
		assert.Equal(t, *authData, getData)
		assert.Equal(t, "test-token", token)
	}
	{
		// Тест с уже занятым логином
		stor := info.NewUserInfoStorage()
		authData := &identity.AuthData{Login: "already login", Password: "password"}

		ok, err := Register(ctx, srv.URL+"/register", authData, client, stor)
		require.NoError(t, err)
		assert.Equal(t, false, ok)
	}
	{
		// Тест с внутренней ошибкой сервера
		stor := info.NewUserInfoStorage()
		authData := &identity.AuthData{Login: "error login", Password: "password"}

		_, err := Register(ctx, srv.URL+"/register", authData, client, stor)
		require.Error(t, err)
	}
	{
		// Тест с пустым логином
		stor := info.NewUserInfoStorage()
		authData := &identity.AuthData{Login: "", Password: "password"}

		_, err := Register(ctx, srv.URL+"/register", authData, client, stor)
		require.Error(t, err)
	}
	{
		// Тест с пустым паролем
		stor := info.NewUserInfoStorage()
		authData := &identity.AuthData{Login: "login", Password: ""}

		_, err := Register(ctx, srv.URL+"/register", authData, client, stor)
		require.Error(t, err)
	}
}

func TestLogin(t *testing.T) {
	// тестовый сервер, который притворяется сервером secretkeeper
	r := chi.NewRouter()
	r.Post("/login", func(res http.ResponseWriter, req *http.Request) {
		var getData repoIdent.IdentityData
		err := json.NewDecoder(req.Body).Decode(&getData)
		require.NoError(t, err)

		switch getData.Login {
		case "success login":
			res.Header().Set("Authorization", "Bearer test-token")
			res.WriteHeader(http.StatusOK)
		case "wrong login":
			res.WriteHeader(http.StatusUnauthorized)
		default:
			res.WriteHeader(http.StatusInternalServerError)
		}
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	ctx := context.Background()
	client := resty.New()

	{
		// Тест с успешным входом. Данные сессии должны установиться в хранилище
		stor := info.NewUserInfoStorage()
		authData := &identity.AuthData{Login: "success login", Password: "password"}

		ok, err := Login(ctx, srv.URL+"/login", authData, client, stor)
		require.NoError(t, err)
		assert.Equal(t, true, ok)

		getData, token := stor.Get()
		assert.Equal(t, *authData, getData)
		assert.Equal(t, "test-token", token)
	}
	{
		// Тест с отклоненной парой логин-пароль
		stor := info.NewUserInfoStorage()
		authData := &identity.AuthData{Login: "wrong login", Password: "password"}

		ok, err := Login(ctx, srv.URL+"/login", authData, client, stor)
		require.NoError(t, err)
		assert.Equal(t, false, ok)

		// данные сессии не должны установиться
		_, token := stor.Get()
		assert.Equal(t, "", token)
	}
	{
		// Тест с внутренней ошибкой сервера
		stor := info.NewUserInfoStorage()
		authData := &identity.AuthData{Login: "error login", Password: "password"}

		_, err := Login(ctx, srv.URL+"/login", authData, client, stor)
		require.Error(t, err)
	}
}

func TestListSecrets(t *testing.T) {
	wantSecrets := []secrets.AccountSecrets{
		{
			AccountID: "first id",
			Secrets:   []string{"First secret", "Second secret"},
		},
		{
			AccountID: "second id",
			Secrets:   []string{"Another secret"},
		},
	}

	// тестовый сервер, который притворяется сервером secretkeeper
	r := chi.NewRouter()
	r.Get("/secrets", func(res http.ResponseWriter, req *http.Request) {
		res.Header().Set("Content-Type", "application/json")
		res.WriteHeader(http.StatusOK)
		err := json.NewEncoder(res).Encode(wantSecrets)
		require.NoError(t, err)
	})
	r.Get("/secrets-error", func(res http.ResponseWriter, req *http.Request) {
		res.WriteHeader(http.StatusInternalServerError)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	ctx := context.Background()
	client := resty.New()

	{
		// Тест с успешной выгрузкой секретов
		getSecrets, err := ListSecrets(ctx, srv.URL+"/secrets", client)
		require.NoError(t, err)
		assert.Equal(t, wantSecrets, getSecrets)
	}
	{
		// Тест с ошибкой сервера
		_, err := ListSecrets(ctx, srv.URL+"/secrets-error", client)
		require.Error(t, err)
	}
}

func TestSubmitSecret(t *testing.T) {
	// тестовый сервер, который притворяется сервером secretkeeper
	r := chi.NewRouter()
	r.Post("/secrets", func(res http.ResponseWriter, req *http.Request) {
		var getData secrets.SubmitData
		err := json.NewDecoder(req.Body).Decode(&getData)
		require.NoError(t, err)

		if getData.Secret == "error secret" {
			res.WriteHeader(http.StatusInternalServerError)
			return
		}
		assert.Equal(t, "my secret", getData.Secret)
		res.WriteHeader(http.StatusOK)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	ctx := context.Background()
	client := resty.New()

	{
		// Тест с успешным добавлением секрета
		err := SubmitSecret(ctx, srv.URL+"/secrets", "my secret", client)
		require.NoError(t, err)
	}
	{
		// Тест с ошибкой сервера
		err := SubmitSecret(ctx, srv.URL+"/secrets", "error secret", client)
		require.Error(t, err)
	}
	{
		// Тест с пустым секретом
		err := SubmitSecret(ctx, srv.URL+"/secrets", "", client)
		require.Error(t, err)
	}
}
