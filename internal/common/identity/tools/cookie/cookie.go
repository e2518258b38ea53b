// cookie - пакет для установки и извлечения cookie сессии.
// В cookie хранится тот же токен сессии, что и в заголовке Authorization,
// чтобы браузер пользователя не проходил аутентификацию на каждый запрос.
package cookie

import (
	"fmt"
	"net/http"
	"time"
)

// SessionCookie - имя cookie с токеном сессии.
const SessionCookie = "secretkeeper_session"

// SetSession - функция для установки токена сессии в cookie ответа сервера.
// Cookie устанавливается с флагом HttpOnly, чтобы токен не был доступен из скриптов на странице.
func SetSession(res http.ResponseWriter, token string, expires time.Time) {
	http.SetCookie(res, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// GetSession - функция для извлечения токена сессии из cookie запроса.
func GetSession(req *http.Request) (string, error) {
	c, err := req.Cookie(SessionCookie)
	if err != nil {
		return "", fmt.Errorf("missing session cookie, %w", err)
	}
	if c.Value == "" {
		return "", fmt.Errorf("session cookie is empty")
	}
	return c.Value, nil
}

// ClearSession - функция для удаления cookie сессии. Используется при выходе пользователя из системы.
// Учетная запись пользователя при этом не удаляется, завершается только текущая сессия.
func ClearSession(res http.ResponseWriter) {
	http.SetCookie(res, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
