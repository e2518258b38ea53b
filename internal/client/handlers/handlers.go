package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"secretkeeper/internal/client/identity"
	"secretkeeper/internal/client/logger"
	"secretkeeper/internal/common/identity/tools/checker"
	"secretkeeper/internal/common/identity/tools/header"
	repoIdent "secretkeeper/internal/repositories/identity"
	"secretkeeper/internal/repositories/secrets"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Register - хэндлер для регистрации новой учетной записи на сервере.
// Для успешной регистрации обязательно быть онлайн.
func Register(ctx context.Context, url string, authData *identity.AuthData, client *resty.Client,
	info identity.IUserInfoStorage) (bool, error) {
	// проверяю корректность логина
	ok := checker.CheckLogin(authData.Login)
	if !ok {
		return false, fmt.Errorf("login is not valid")
	}

	// проверяю корректность пароля
	ok = checker.CheckPassword(authData.Password)
	if !ok {
		return false, fmt.Errorf("password is not valid")
	}

	// Создаю тело запроса
	regData := repoIdent.IdentityData{
		Login:    authData.Login,
		Password: authData.Password,
	}

	// Отправляю запрос регистрации учетной записи на сервер
	resp, err := client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(regData).
		Post(url)

	// Не удалось установить соединение с сервером или другая ошибка подобного рода.
	if err != nil {
		logger.ClientLog.Error("sending registration request failed", zap.String("error", error.Error(err)))
		return false, fmt.Errorf("sending registration request failed, %w", err)
	}

	// учетная запись с таким логином уже зарегистрирована, возвращаю false.
	if resp.StatusCode() == http.StatusConflict {
		logger.ClientLog.Error("such login already exist", zap.String("login", authData.Login))
		return false, nil
	}

	if resp.StatusCode() != http.StatusOK {
		logger.ClientLog.Error("bad server status", zap.String("status", fmt.Sprint(resp.StatusCode())))
		return false, fmt.Errorf("bad server status %d", resp.StatusCode())
	}

	// Сервер успешно обработал запрос на регистрацию
	logger.ClientLog.Debug("successful register new account on server")

	// Получаю токен из заголовка, который отправил сервер.
	token, err := header.GetTokenFromRestyResponseHeader(resp)
	if err != nil {
		logger.ClientLog.Error("failed to get JWT from server responce", zap.String("error", error.Error(err)))
		return false, fmt.Errorf("failed to get JWT from server responce, %w", err)
	}

	// Сохраняю данные сессии в оперативной памяти на время работы клиента
	info.Set(*authData, token)

	// Успешная регистрация новой учетной записи
	logger.ClientLog.Info("new account successfully has been registered", zap.String("login", authData.Login))
	return true, nil
}

// Login - хэндлер для входа по логину и паролю.
// ok == false означает, что сервер отклонил пару логин-пароль.
// После успешного входа данные сессии устанавливаются в хранилище для использования в других методах.
func Login(ctx context.Context, url string, authData *identity.AuthData, client *resty.Client,
	info identity.IUserInfoStorage) (bool, error) {
	// проверяю корректность логина
	ok := checker.CheckLogin(authData.Login)
	if !ok {
		return false, fmt.Errorf("login is not valid")
	}

	// проверяю корректность пароля
	ok = checker.CheckPassword(authData.Password)
	if !ok {
		return false, fmt.Errorf("password is not valid")
	}

	// Создаю тело запроса
	loginData := repoIdent.IdentityData{
		Login:    authData.Login,
		Password: authData.Password,
	}

	// Отправляю запрос входа на сервер
	resp, err := client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(loginData).
		Post(url)

	// Не удалось установить соединение с сервером или другая ошибка подобного рода.
	if err != nil {
		logger.ClientLog.Error("sending login request failed", zap.String("error", error.Error(err)))
		return false, fmt.Errorf("sending login request failed, %w", err)
	}

	// Сервер отклонил пару логин-пароль. Причина не уточняется.
	if resp.StatusCode() == http.StatusUnauthorized {
		logger.ClientLog.Error("invalid login or password", zap.String("login", authData.Login))
		return false, nil
	}

	if resp.StatusCode() != http.StatusOK {
		logger.ClientLog.Error("bad server status", zap.String("status", fmt.Sprint(resp.StatusCode())))
		return false, fmt.Errorf("bad server status %d", resp.StatusCode())
	}

	// Получаю токен из заголовка, который отправил сервер.
	token, err := header.GetTokenFromRestyResponseHeader(resp)
	if err != nil {
		logger.ClientLog.Error("failed to get JWT from server responce", zap.String("error", error.Error(err)))
		return false, fmt.Errorf("failed to get JWT from server responce, %w", err)
	}

	// Сохраняю данные сессии в оперативной памяти на время работы клиента
	info.Set(*authData, token)

	// Успешный вход
	logger.ClientLog.Info("successful login", zap.String("login", authData.Login))
	return true, nil
}

// ListSecrets - хэндлер для выгрузки секретов всех учетных записей с сервера.
// Требуется действующая сессия, токен устанавливает мидлварь клиента.
func ListSecrets(ctx context.Context, url string, client *resty.Client) ([]secrets.AccountSecrets, error) {
	resp, err := client.R().
		SetContext(ctx).
		Get(url)

	if err != nil {
		logger.ClientLog.Error("sending list secrets request failed", zap.String("error", error.Error(err)))
		return nil, fmt.Errorf("sending list secrets request failed, %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		logger.ClientLog.Error("bad server status", zap.String("status", fmt.Sprint(resp.StatusCode())))
		return nil, fmt.Errorf("bad server status %d", resp.StatusCode())
	}

	var allSecrets []secrets.AccountSecrets
	if err := json.Unmarshal(resp.Body(), &allSecrets); err != nil {
		logger.ClientLog.Error("failed to parse secrets from server responce", zap.String("error", error.Error(err)))
		return nil, fmt.Errorf("failed to parse secrets from server responce, %w", err)
	}

	logger.ClientLog.Debug("successful get all secrets from server")
	return allSecrets, nil
}

// SubmitSecret - хэндлер для добавления нового секрета текущей учетной записи.
// Требуется действующая сессия, токен устанавливает мидлварь клиента.
func SubmitSecret(ctx context.Context, url, secret string, client *resty.Client) error {
	// проверяю корректность секрета
	if ok := checker.CheckSecret(secret); !ok {
		return fmt.Errorf("secret is not valid")
	}

	resp, err := client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(secrets.SubmitData{Secret: secret}).
		Post(url)

	if err != nil {
		logger.ClientLog.Error("sending submit secret request failed", zap.String("error", error.Error(err)))
		return fmt.Errorf("sending submit secret request failed, %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		logger.ClientLog.Error("bad server status", zap.String("status", fmt.Sprint(resp.StatusCode())))
		return fmt.Errorf("bad server status %d", resp.StatusCode())
	}

	logger.ClientLog.Debug("successful submit new secret to server")
	return nil
}
