package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"secretkeeper/internal/client/identity"
	"secretkeeper/internal/client/storage/info"
	"secretkeeper/internal/common/identity/tools/header"
	repoIdent "secretkeeper/internal/repositories/identity"

	"github.com/go-chi/chi/v5"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnBeforeMiddleware(t *testing.T) {
	// вспомогательная функция
	testHandler := func(token string) http.HandlerFunc {
		return func(res http.ResponseWriter, req *http.Request) {
			if token == "" {
				// токен сессии еще не установлен, запрос должен прийти без заголовка
				assert.Equal(t, "", req.Header.Get("Authorization"))
				res.WriteHeader(200)
				return
			}

			// Проверяю токен, установленный в заголовок
			getToken, err := header.GetTokenFromHeader(req)
			require.NoError(t, err)
			assert.Equal(t, token, getToken)

			// устанавливаю нужный статус в ответ
			res.WriteHeader(200)
		}
	}

	{
		// Тест с успешной установкой заголовка
		stor := info.NewUserInfoStorage()
		stor.Set(identity.AuthData{Login: "login", Password: "password"}, "success-token")

		r := chi.NewRouter()
		r.Get("/test", testHandler("success-token"))
		srv := httptest.NewServer(r)
		defer srv.Close()

		client := resty.New()
		client.OnBeforeRequest(OnBeforeMiddleware(stor))

		resp, err := client.R().Get(srv.URL + "/test")
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode())
	}
	{
		// Тест с еще не установленной сессией
		stor := info.NewUserInfoStorage()

		r := chi.NewRouter()
		r.Get("/test", testHandler(""))
		srv := httptest.NewServer(r)
		defer srv.Close()

		client := resty.New()
		client.OnBeforeRequest(OnBeforeMiddleware(stor))

		resp, err := client.R().Get(srv.URL + "/test")
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode())
	}
}

func TestOnAfterMiddleware(t *testing.T) {
	authData := identity.AuthData{
		Login:    "test login",
		Password: "test password",
	}

	// тестовый сервер: защищенный маршрут принимает только свежий токен,
	// маршрут входа выдает свежий токен при верных данных
	r := chi.NewRouter()
	r.Get("/protected", func(res http.ResponseWriter, req *http.Request) {
		getToken, err := header.GetTokenFromHeader(req)
		if err != nil || getToken != "fresh-token" {
			res.WriteHeader(http.StatusUnauthorized)
			return
		}
		res.WriteHeader(http.StatusOK)
	})
	r.Post("/login", func(res http.ResponseWriter, req *http.Request) {
		var getData repoIdent.IdentityData
		err := json.NewDecoder(req.Body).Decode(&getData)
		require.NoError(t, err)

		if getData.Login != authData.Login || getData.Password != authData.Password {
			res.WriteHeader(http.StatusUnauthorized)
			return
		}
		res.Header().Set("Authorization", "Bearer fresh-token")
		res.WriteHeader(http.StatusOK)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	{
		// Тест с истекшим токеном. Мидлварь должна войти повторно и обновить токен сессии
		stor := info.NewUserInfoStorage()
		stor.Set(authData, "stale-token")

		client := resty.New()
		client.OnBeforeRequest(OnBeforeMiddleware(stor))
		client.OnAfterResponse(OnAfterMiddleware(stor, srv.URL+"/login"))

		resp, err := client.R().Get(srv.URL + "/protected")
		require.NoError(t, err)
		// оригинальный запрос завершился статусом 401, но токен сессии обновлен
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())

		_, token := stor.Get()
		assert.Equal(t, "fresh-token", token)

		// повторный запрос уходит уже со свежим токеном
		resp, err = client.R().Get(srv.URL + "/protected")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode())
	}
	{
		// Тест с неверными данными сессии. Повторный вход не удается, токен не обновляется
		stor := info.NewUserInfoStorage()
		stor.Set(identity.AuthData{Login: "wrong login", Password: "wrong password"}, "stale-token")

		client := resty.New()
		client.OnBeforeRequest(OnBeforeMiddleware(stor))
		client.OnAfterResponse(OnAfterMiddleware(stor, srv.URL+"/login"))

		resp, err := client.R().Get(srv.URL + "/protected")
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())

		_, token := stor.Get()
		assert.Equal(t, "stale-token", token)
	}
}
