package checker

// CheckLogin - функция для проверки корректности логина.
func CheckLogin(login string) bool {
	// проверяю, что логин не является пустой строкой
	return login != ""
}

// CheckPassword - функция для проверки корректности пароля.
func CheckPassword(password string) bool {
	// проверяю, что пароль не является пустой строкой
	return password != ""
}

// CheckSecret - функция для проверки корректности секрета.
func CheckSecret(secret string) bool {
	// проверяю, что секрет не является пустой строкой
	return secret != ""
}
