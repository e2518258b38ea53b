// auth - пакет, который реализует middleware для аутентификации пользователя.
package auth

import (
	"context"
	"net/http"

	"secretkeeper/internal/common/identity/tools/cookie"
	"secretkeeper/internal/common/identity/tools/header"
	"secretkeeper/internal/common/identity/tools/token"
	"secretkeeper/internal/repositories/identity"
	"secretkeeper/internal/server/logger"

	"go.uber.org/zap"
)

type contextKey string

// AccountIDKey - ключ для установки идентификатора учетной записи в контекст.
const AccountIDKey = contextKey("accountID")

// LoginPath - адрес, на который перенаправляются неаутентифицированные пользователи браузера.
const LoginPath = "/login"

// Middleware - проверяет токен сессии входящих запросов к серверу.
// Токен извлекается из cookie сессии, а при её отсутствии - из заголовка Authorization.
// Из полученного токена извлекается идентификатор учетной записи, наличие самой записи
// проверяется в хранилище, после чего идентификатор устанавливается в контекст запроса.
// Запросы без действующей сессии до защищенных обработчиков не доходят: запрос с заголовком
// Authorization получает статус 401, запрос браузера перенаправляется на страницу входа.
func Middleware(keeper identity.Keeper) func(http.Handler) http.HandlerFunc {
	return func(h http.Handler) http.HandlerFunc {
		return func(res http.ResponseWriter, req *http.Request) {
			// определяю, обратился ли программный клиент с заголовком Authorization
			fromHeader := req.Header.Get("Authorization") != ""

			getToken, err := getSessionToken(req, fromHeader)
			if err != nil {
				logger.ServerLog.Info("request without session token", zap.String("address", req.URL.String()))
				deny(res, req, fromHeader)
				return
			}

			id, err := token.GetAccountIDFromToken(getToken)
			if err != nil {
				logger.ServerLog.Info("failed to get account id from token", zap.String("address", req.URL.String()), zap.String("error", err.Error()))
				deny(res, req, fromHeader)
				return
			}

			// проверяю, что учетная запись из токена все еще существует в хранилище.
			// Токен может пережить учетную запись, такой токен недействителен.
			_, ok, err := keeper.GetAccount(req.Context(), id)
			if err != nil {
				logger.ServerLog.Error("failed to get account from storage", zap.String("address", req.URL.String()), zap.String("error", err.Error()))
				http.Error(res, "failed to get account from storage", http.StatusInternalServerError)
				return
			}
			if !ok {
				logger.ServerLog.Info("token is not bound to any account", zap.String("address", req.URL.String()))
				deny(res, req, fromHeader)
				return
			}

			// В случае успешного получения идентификатора устанавливаю его в контекст для дальнейшей обработки.
			ctx := context.WithValue(req.Context(), AccountIDKey, id)

			// вызываю основной обработчик
			h.ServeHTTP(res, req.WithContext(ctx))
		}
	}
}

// getSessionToken - извлекает токен сессии из запроса.
// Программный клиент передает токен в заголовке Authorization, браузер - в cookie сессии.
func getSessionToken(req *http.Request, fromHeader bool) (string, error) {
	if fromHeader {
		return header.GetTokenFromHeader(req)
	}
	return cookie.GetSession(req)
}

// deny - обрабатывает запрос без действующей сессии. Никакие защищенные данные при этом не возвращаются.
func deny(res http.ResponseWriter, req *http.Request, fromHeader bool) {
	if fromHeader {
		http.Error(res, "authentication required", http.StatusUnauthorized)
		return
	}
	// сбрасываю недействительную cookie, чтобы браузер не присылал её повторно
	cookie.ClearSession(res)
	http.Redirect(res, req, LoginPath, http.StatusFound)
}
