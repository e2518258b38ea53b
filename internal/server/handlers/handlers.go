package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"secretkeeper/internal/common/identity/tools/checker"
	"secretkeeper/internal/common/identity/tools/cookie"
	"secretkeeper/internal/common/identity/tools/hasher"
	"secretkeeper/internal/common/identity/tools/id"
	"secretkeeper/internal/common/identity/tools/token"
	"secretkeeper/internal/common/secrets/normalizer"
	"secretkeeper/internal/repositories/identity"
	"secretkeeper/internal/repositories/secrets"
	"secretkeeper/internal/server/identity/auth"
	"secretkeeper/internal/server/identity/strategy"
	"secretkeeper/internal/server/logger"
	"secretkeeper/internal/server/oauth"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// setSession - устанавливает токен учетной записи в заголовок ответа и в сессионную cookie.
// Токен в заголовке использует TUI клиент, cookie - браузер.
func setSession(res http.ResponseWriter, accountID string) error {
	t, err := token.BuildJWT(accountID)
	if err != nil {
		return fmt.Errorf("build JWT error, %w", err)
	}
	// устанавливаю токен в заголовок
	res.Header().Set("Authorization", "Bearer "+t)
	// устанавливаю токен в сессионную cookie с тем же сроком жизни, что и у токена
	cookie.SetSession(res, t, time.Now().Add(time.Hour*time.Duration(token.GetExpireHour())))
	return nil
}

// Register - хэндлер для регистрации новой учетной записи с локальным логином и паролем.
// При успешной регистрации устанавливается сессия.
func Register(res http.ResponseWriter, req *http.Request, ident identity.Identifier) {
	res.Header().Set("Content-Type", "text/plain")
	defer req.Body.Close()

	var regData identity.IdentityData
	if err := json.NewDecoder(req.Body).Decode(&regData); err != nil {
		logger.ServerLog.Error("failed to parse identity data to structer", zap.String("address", req.URL.String()), zap.String("error", error.Error(err)))
		http.Error(res, fmt.Errorf("failed to parse identity data to structer, %w", err).Error(), http.StatusBadRequest)
		return
	}

	// Проверяю корректность логина
	if ok := checker.CheckLogin(regData.Login); !ok {
		logger.ServerLog.Error("login is not valid", zap.String("address", req.URL.String()))
		http.Error(res, "login is not valid", http.StatusBadRequest)
		return
	}
	// Проверяю корректность пароля
	if ok := checker.CheckPassword(regData.Password); !ok {
		logger.ServerLog.Error("password is not valid", zap.String("address", req.URL.String()))
		http.Error(res, "password is not valid", http.StatusBadRequest)
		return
	}

	// вычисляю соленый хэш пароля. Пароль в открытом виде в хранилище не попадает
	passwordHash, err := hasher.HashPassword(regData.Password)
	if err != nil {
		logger.ServerLog.Error("failed to hash password", zap.String("address", req.URL.String()), zap.String("error", error.Error(err)))
		http.Error(res, fmt.Errorf("failed to hash password, %w", err).Error(), http.StatusInternalServerError)
		return
	}

	// вычисляю идентификатор учетной записи
	newID, err := id.GenerateId()
	if err != nil {
		logger.ServerLog.Error("failed to generate id", zap.String("address", req.URL.String()), zap.String("error", error.Error(err)))
		http.Error(res, fmt.Errorf("failed to generate id, %w", err).Error(), http.StatusInternalServerError)
		return
	}

	// Регистрирую учетную запись в хранилище
	err = ident.Register(req.Context(), regData.Login, passwordHash, newID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// учетная запись с данным логином уже зарегистрирована
			logger.ServerLog.Error(fmt.Sprintf("login %s already exists", regData.Login), zap.String("address", req.URL.String()))
			http.Error(res, fmt.Sprintf("login %s already exists", regData.Login), http.StatusConflict)
		} else {
			logger.ServerLog.Error("register account error", zap.String("address", req.URL.String()), zap.String("error", error.Error(err)))
			http.Error(res, fmt.Errorf("register account error, %w", err).Error(), http.StatusInternalServerError)
		}
		return
	}

	// При успешной регистрации устанавливаю сессию
	if err := setSession(res, newID); err != nil {
		logger.ServerLog.Error("set session error", zap.String("address", req.URL.String()), zap.String("error", error.Error(err)))
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}
	res.WriteHeader(200)
}

// RegisterHandler - обертка над функцией Register.
func RegisterHandler(ident identity.Identifier) http.HandlerFunc {
	fn := func(res http.ResponseWriter, req *http.Request) {
		Register(res, req, ident)
	}
	return fn
}

// Login - хэндлер для входа по локальному логину и паролю. Проверка пары выполняется
// локальной стратегией. При успешном входе устанавливается сессия.
func Login(res http.ResponseWriter, req *http.Request, verifier strategy.Verifier) {
	res.Header().Set("Content-Type", "text/plain")
	defer req.Body.Close()

	var regData identity.IdentityData
	if err := json.NewDecoder(req.Body).Decode(&regData); err != nil {
		logger.ServerLog.Error("failed to parse identity data to structer", zap.String("address", req.URL.String()), zap.String("error", error.Error(err)))
		http.Error(res, fmt.Errorf("failed to parse identity data to structer, %w", err).Error(), http.StatusBadRequest)
		return
	}

	// Проверяю корректность логина
	if ok := checker.CheckLogin(regData.Login); !ok {
		logger.ServerLog.Error("login is not valid", zap.String("address", req.URL.String()))
		http.Error(res, "login is not valid", http.StatusBadRequest)
		return
	}
	// Проверяю корректность пароля
	if ok := checker.CheckPassword(regData.Password); !ok {
		logger.ServerLog.Error("password is not valid", zap.String("address", req.URL.String()))
		http.Error(res, "password is not valid", http.StatusBadRequest)
		return
	}

	// Проверяю пару логин-пароль
	accountID, err := verifier.Verify(req.Context(), regData.Login, regData.Password)
	if err != nil {
		if errors.Is(err, strategy.ErrInvalidCredentials) {
			// сообщение об ошибке не уточняет, что именно неверно: логин или пароль
			logger.ServerLog.Error("invalid credentials", zap.String("address", req.URL.String()))
			http.Error(res, strategy.ErrInvalidCredentials.Error(), http.StatusUnauthorized)
			return
		}
		logger.ServerLog.Error("verify credentials error", zap.String("address", req.URL.String()), zap.String("error", error.Error(err)))
		http.Error(res, fmt.Errorf("verify credentials error, %w", err).Error(), http.StatusInternalServerError)
		return
	}

	// При успешном входе устанавливаю сессию
	if err := setSession(res, accountID); err != nil {
		logger.ServerLog.Error("set session error", zap.String("address", req.URL.String()), zap.String("error", error.Error(err)))
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}
	res.WriteHeader(200)
}

// LoginHandler - обертка над функцией Login.
func LoginHandler(verifier strategy.Verifier) http.HandlerFunc {
	fn := func(res http.ResponseWriter, req *http.Request) {
		Login(res, req, verifier)
	}
	return fn
}

// Logout - хэндлер для завершения сессии. Сессионная cookie удаляется,
// после чего пользователь перенаправляется на домашнюю страницу.
func Logout() http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		cookie.ClearSession(res)
		http.Redirect(res, req, "/", http.StatusFound)
	}
}

// LoginEntry - хэндлер страницы входа, на которую перенаправляются неавторизованные
// браузерные запросы к защищенным ресурсам.
func LoginEntry() http.HandlerFunc {
	return func(res http.ResponseWriter, _ *http.Request) {
		res.Header().Set("Content-Type", "text/plain")
		res.WriteHeader(http.StatusUnauthorized)
		res.Write([]byte("authentication required"))
	}
}

// FederatedLogin - хэндлер начала входа через внешнего провайдера. Устанавливает
// одноразовое значение state в cookie и перенаправляет пользователя на страницу согласия.
func FederatedLogin(res http.ResponseWriter, req *http.Request, provider strategy.Federated) {
	state, err := oauth.SetState(res)
	if err != nil {
		logger.ServerLog.Error("failed to set oauth state", zap.String("address", req.URL.String()), zap.String("error", error.Error(err)))
		http.Error(res, fmt.Errorf("failed to set oauth state, %w", err).Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(res, req, provider.AuthCodeURL(state), http.StatusFound)
}

// FederatedLoginHandler - обертка над функцией FederatedLogin.
func FederatedLoginHandler(provider strategy.Federated) http.HandlerFunc {
	fn := func(res http.ResponseWriter, req *http.Request) {
		FederatedLogin(res, req, provider)
	}
	return fn
}

// FederatedCallback - хэндлер завершения входа через внешнего провайдера. Обменивает код
// на идентификатор пользователя у провайдера и находит либо создает учетную запись.
// Любой сбой рукопожатия завершается перенаправлением на страницу входа.
func FederatedCallback(res http.ResponseWriter, req *http.Request, provider strategy.Federated, resolver identity.Resolver) {
	// значение state одноразовое, сбрасываю cookie до записи ответа
	oauth.ClearState(res)

	// проверяю, что значение state вернулось неизменным
	state := req.URL.Query().Get("state")
	if !oauth.CheckState(req, state) {
		logger.ServerLog.Error("oauth state mismatch", zap.String("address", req.URL.String()))
		http.Redirect(res, req, auth.LoginPath, http.StatusFound)
		return
	}

	// обмениваю код на идентификатор пользователя у провайдера
	code := req.URL.Query().Get("code")
	providerID, err := provider.Identity(req.Context(), code)
	if err != nil {
		logger.ServerLog.Error("failed to get identity from provider", zap.String("address", req.URL.String()), zap.String("error", error.Error(err)))
		http.Redirect(res, req, auth.LoginPath, http.StatusFound)
		return
	}

	// вычисляю идентификатор на случай, если учетную запись придется создать
	newID, err := id.GenerateId()
	if err != nil {
		logger.ServerLog.Error("failed to generate id", zap.String("address", req.URL.String()), zap.String("error", error.Error(err)))
		http.Error(res, fmt.Errorf("failed to generate id, %w", err).Error(), http.StatusInternalServerError)
		return
	}

	accountID, _, err := resolver.FindOrCreate(req.Context(), provider.Name(), providerID, newID)
	if err != nil {
		logger.ServerLog.Error("find or create account error", zap.String("address", req.URL.String()), zap.String("error", error.Error(err)))
		http.Error(res, fmt.Errorf("find or create account error, %w", err).Error(), http.StatusInternalServerError)
		return
	}

	// При успешном входе устанавливаю сессию и перенаправляю к секретам
	if err := setSession(res, accountID); err != nil {
		logger.ServerLog.Error("set session error", zap.String("address", req.URL.String()), zap.String("error", error.Error(err)))
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(res, req, "/api/client/secrets", http.StatusFound)
}

// FederatedCallbackHandler - обертка над функцией FederatedCallback.
func FederatedCallbackHandler(provider strategy.Federated, resolver identity.Resolver) http.HandlerFunc {
	fn := func(res http.ResponseWriter, req *http.Request) {
		FederatedCallback(res, req, provider, resolver)
	}
	return fn
}

// ListSecrets - хэндлер для выгрузки секретов всех учетных записей.
// Доступен любой авторизованной учетной записи, авторство секретов не раскрывается.
func ListSecrets(res http.ResponseWriter, req *http.Request, lister secrets.Lister) {
	defer req.Body.Close()

	allSecrets, err := lister.AllSecrets(req.Context())
	if err != nil {
		logger.ServerLog.Error("get all secrets from storage error", zap.String("address", req.URL.String()), zap.String("error", err.Error()))
		http.Error(res, fmt.Errorf("get all secrets from storage error, %w", err).Error(), http.StatusInternalServerError)
		return
	}

	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(http.StatusOK)

	enc := json.NewEncoder(res)
	if err := enc.Encode(allSecrets); err != nil {
		logger.ServerLog.Error("encoding response error", zap.String("error", error.Error(err)))
		http.Error(res, fmt.Errorf("encoding response error, %w", err).Error(), http.StatusInternalServerError)
		return
	}
	logger.ServerLog.Debug("successful return all secrets to client")
}

// ListSecretsHandler - обертка над функцией ListSecrets.
func ListSecretsHandler(lister secrets.Lister) http.HandlerFunc {
	fn := func(res http.ResponseWriter, req *http.Request) {
		ListSecrets(res, req, lister)
	}
	return fn
}

// SubmitSecret - хэндлер для добавления нового секрета текущей учетной записи.
// Перед сохранением первая буква секрета приводится к верхнему регистру.
func SubmitSecret(res http.ResponseWriter, req *http.Request, appender secrets.Appender) {
	// получаю идентификатор учетной записи из контекста
	accountID, ok := req.Context().Value(auth.AccountIDKey).(string)
	if !ok {
		logger.ServerLog.Error("account ID not found in context", zap.String("address", req.URL.String()))
		http.Error(res, "account ID not found in context", http.StatusInternalServerError)
		return
	}
	defer req.Body.Close()

	// Сериализую данные из запроса клиента
	var submitData secrets.SubmitData
	if err := json.NewDecoder(req.Body).Decode(&submitData); err != nil {
		logger.ServerLog.Error("can't parse data from request", zap.String("address", req.URL.String()), zap.String("error", err.Error()))
		http.Error(res, "can't parse data from request", http.StatusBadRequest)
		return
	}

	// Проверяю корректность секрета
	if ok := checker.CheckSecret(submitData.Secret); !ok {
		logger.ServerLog.Error("secret is not valid", zap.String("address", req.URL.String()))
		http.Error(res, "secret is not valid", http.StatusBadRequest)
		return
	}

	// Добавляю новый секрет в хранилище
	err := appender.AppendSecret(req.Context(), accountID, normalizer.CapitalizeFirst(submitData.Secret))
	if err != nil {
		logger.ServerLog.Error("append secret to storage error", zap.String("address", req.URL.String()), zap.String("error", err.Error()))
		http.Error(res, fmt.Errorf("append secret to storage error, %w", err).Error(), http.StatusInternalServerError)
		return
	}

	res.WriteHeader(http.StatusOK)
	logger.ServerLog.Debug("successful append secret to storage")
}

// SubmitSecretHandler - обертка над функцией SubmitSecret.
func SubmitSecretHandler(appender secrets.Appender) http.HandlerFunc {
	fn := func(res http.ResponseWriter, req *http.Request) {
		SubmitSecret(res, req, appender)
	}
	return fn
}

// HandleOtherRequest - обработка нераспознанных http запросов к сервису.
func HandleOtherRequest() http.HandlerFunc {
	return func(res http.ResponseWriter, _ *http.Request) {
		res.Header().Set("Content-Type", "text/plain")
		res.WriteHeader(http.StatusNotFound)
	}
}
