package identity

// AuthData - структура для хранения логина и пароля, введенных пользователем.
type AuthData struct {
	Login    string
	Password string
}

// IUserInfoStorage - интерфейс для сохранения и получения данных текущей сессии из оперативной памяти.
type IUserInfoStorage interface {
	Set(authData AuthData, token string)  // метод для установки данных сессии после входа.
	Get() (AuthData, string)              // метод для получения данных сессии.
	SetToken(token string)                // метод для обновления токена сессии.
}
