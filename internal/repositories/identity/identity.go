package identity

import "context"

// Account - единая учетная запись пользователя. Адресуется либо по локальному логину,
// либо по паре (провайдер, идентификатор пользователя у провайдера).
type Account struct {
	ID    string // уникальный идентификатор учетной записи, назначается при создании
	Login string // локальный логин. Пустая строка для учетных записей, созданных через внешнего провайдера
}

// Identifier - интерфейс для реализации процедур регистрации и авторизации пользователя по локальному паролю.
type Identifier interface {
	Register(ctx context.Context, login, passwordHash, id string) error                       // Метод для регистрации пользователя.
	Authorize(ctx context.Context, login string) (data AuthorizationData, ok bool, err error) // Метод для получения авторизационных данных пользователя.
}

// Resolver - интерфейс для поиска или атомарного создания учетной записи по внешней идентификации.
// Для одной пары (provider, providerID) в хранилище может существовать не более одной учетной записи,
// даже при конкурентных вызовах.
type Resolver interface {
	// FindOrCreate - ищет учетную запись по паре (provider, providerID), а при её отсутствии создает новую
	// с идентификатором newID. Возвращает идентификатор итоговой учетной записи и признак того, была ли она создана.
	FindOrCreate(ctx context.Context, provider, providerID, newID string) (accountID string, created bool, err error)
}

// Keeper - интерфейс для загрузки учетной записи по её идентификатору.
// Используется при восстановлении учетной записи из токена сессии.
type Keeper interface {
	GetAccount(ctx context.Context, id string) (account Account, ok bool, err error)
}

// IdentityData - структура данных для аутентификации пользователя.
type IdentityData struct {
	Login    string `json:"login"`    // логин пользователя
	Password string `json:"password"` // пароль пользователя
}

// AuthorizationData - структура для авторизационных данных пользователя.
type AuthorizationData struct {
	PasswordHash string // соленый хэш пароля в закодированном виде
	ID           string
}
