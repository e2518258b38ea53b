// strategy - пакет со стратегиями установления личности пользователя.
// Каждая стратегия приводит пользователя к единой учетной записи: локальная - через проверку
// логина и пароля, внешняя - через пару (провайдер, идентификатор у провайдера).
package strategy

import (
	"context"
	"errors"

	"secretkeeper/internal/common/identity/tools/hasher"
	"secretkeeper/internal/repositories/identity"
)

// ErrInvalidCredentials - единая ошибка неудачной локальной аутентификации.
// По ней нельзя отличить незарегистрированный логин от неверного пароля.
var ErrInvalidCredentials = errors.New("invalid login or password")

// Strategy - способ установления личности пользователя.
type Strategy interface {
	Name() string // имя стратегии, например "local" или "google"
}

// Verifier - стратегия проверки локальных авторизационных данных.
type Verifier interface {
	Strategy
	// Verify - проверяет пару логин-пароль и возвращает идентификатор учетной записи.
	// Любая неудача проверки возвращается как ErrInvalidCredentials.
	Verify(ctx context.Context, login, password string) (accountID string, err error)
}

// Federated - стратегия аутентификации через внешнего провайдера.
// Сам обмен с провайдером выполняется вне этого пакета, стратегия только
// формирует адрес согласия и преобразует код подтверждения в идентификатор пользователя у провайдера.
type Federated interface {
	Strategy
	AuthCodeURL(state string) string                                        // адрес страницы согласия провайдера
	Identity(ctx context.Context, code string) (providerID string, err error) // обмен кода подтверждения на идентификатор пользователя у провайдера
}

// Local - локальная стратегия на основе хранилища учетных записей.
type Local struct {
	ident identity.Identifier
}

// NewLocal - фабричная функция локальной стратегии.
func NewLocal(ident identity.Identifier) *Local {
	return &Local{ident: ident}
}

// Name - имя локальной стратегии.
func (l *Local) Name() string {
	return "local"
}

// Verify - проверяет авторизационные данные пользователя по хранилищу.
// Пароль сравнивается с сохраненным соленым хэшем за постоянное время.
func (l *Local) Verify(ctx context.Context, login, password string) (string, error) {
	data, ok, err := l.ident.Authorize(ctx, login)
	if err != nil {
		return "", err
	}
	if !ok {
		// не найдено записей по представленному логину.
		// Возвращаю ту же ошибку, что и при неверном пароле.
		return "", ErrInvalidCredentials
	}

	if !hasher.VerifyPassword(data.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}
	return data.ID, nil
}
