package auth

import (
	"fmt"
	"net/http"

	"secretkeeper/internal/client/identity"
	"secretkeeper/internal/common/identity/tools/header"
	repoIdent "secretkeeper/internal/repositories/identity"

	"github.com/go-resty/resty/v2"
)

// OnBeforeMiddleware - мидлварь для установки токена сессии перед отправкой запроса на сервер.
func OnBeforeMiddleware(info identity.IUserInfoStorage) resty.RequestMiddleware {
	return func(c *resty.Client, req *resty.Request) error {
		// Извлекаю токен текущей сессии
		_, token := info.Get()
		if token == "" {
			// Сессия еще не установлена, запрос уходит без токена
			return nil
		}

		// Устанавливаю токен в заголовок запроса
		req.Header.Set("Authorization", "Bearer "+token)
		return nil
	}
}

// OnAfterMiddleware - мидлварь для обновления токена сессии на случай, если сервер вернет статус 401.
// Статус 401 может возникнуть по причине истечения срока действия JWT. Из-за хранения токена в оперативной
// памяти клиента требуется ручное обновление через повторный вход.
func OnAfterMiddleware(info identity.IUserInfoStorage, loginURL string) resty.ResponseMiddleware {
	return func(c *resty.Client, res *resty.Response) error {
		// Запрос повторного входа тоже проходит через мидлварь. Его отказ не обрабатываю,
		// иначе неверные данные сессии приведут к зацикливанию.
		if res.Request.URL == loginURL {
			return nil
		}

		// Проверяю статус ответа сервера
		if res.StatusCode() == http.StatusUnauthorized {
			// Сессия недействительна, пробую войти повторно с сохраненными данными

			// Извлекаю данные текущей сессии из хранилища
			authData, _ := info.Get()

			// Отправляю запрос на вход на сервере
			resp, err := c.R().
				SetHeader("Content-Type", "application/json").
				SetBody(repoIdent.IdentityData{
					Login:    authData.Login,
					Password: authData.Password,
				}).
				Post(loginURL)

			if err != nil {
				return fmt.Errorf("failed to post login request to server, %w", err)
			}

			// Проверяю ответ сервера, если статус код == 200, то обновляю токен в хранилище сессии.
			if resp.StatusCode() == http.StatusOK {
				// извлекаю новый токен из заголовка ответа сервера
				newToken, err := header.GetTokenFromRestyResponseHeader(resp)
				if err != nil {
					return fmt.Errorf("failed to get token from server responce, %w", err)
				}

				// Обновляю токен в хранилище сессии
				info.SetToken(newToken)
			} else {
				// Если статус ответа сервера другой, то заменяю ответ клиенту после оригинального запроса на ответ,
				// который был получен при попытке входа на сервер.
				*res = *resp
			}
		}
		return nil
	}
}
