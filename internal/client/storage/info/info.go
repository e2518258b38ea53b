package info

import (
	"sync"

	"secretkeeper/internal/client/identity"
)

// UserInfoStorage - потокобезопасная структура для хранения данных текущей сессии (логин, пароль, токен) в оперативной памяти.
// Предоставляет методы для потокобезопасного использования.
type UserInfoStorage struct {
	mu       sync.RWMutex
	authData identity.AuthData
	token    string
}

// Установка данных сессии.
func (s *UserInfoStorage) Set(authData identity.AuthData, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authData = authData
	s.token = token
}

// Получение данных сессии.
func (s *UserInfoStorage) Get() (identity.AuthData, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authData, s.token
}

// Обновление токена сессии.
func (s *UserInfoStorage) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// NewUserInfoStorage - фабричная функция структуры хранения данных сессии UserInfoStorage.
func NewUserInfoStorage() *UserInfoStorage {
	return &UserInfoStorage{}
}
