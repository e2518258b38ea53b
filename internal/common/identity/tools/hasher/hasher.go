// hasher - пакет для хэширования пароля пользователя с индивидуальной солью.
// В хранилище попадает только закодированная пара соль+хэш, пароль в открытом виде не сохраняется.
package hasher

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltLength = 16      // длина соли в байтах
	keyLength  = 32      // длина ключа в байтах
	iterations = 100_000 // количество итераций (чем больше, тем лучше защита)
)

// HashPassword - функция для хэширования пароля с помощью алгоритма PBKDF2 со случайной солью.
// Возвращает строку вида hex(salt)$hex(hash).
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt, %w", err)
	}

	// вычисляю хэш пароля с полученной солью
	hash := pbkdf2.Key([]byte(password), salt, iterations, keyLength, sha256.New)

	// кодирую соль и хэш в строку для сохранения в хранилище
	return hex.EncodeToString(salt) + "$" + hex.EncodeToString(hash), nil
}

// VerifyPassword - функция для проверки пароля по закодированной паре соль+хэш.
// Пересчитывает хэш представленного пароля с сохраненной солью и сравнивает результат за постоянное время.
// Возвращает false в том числе и при некорректном формате закодированной строки.
func VerifyPassword(encoded, password string) bool {
	parts := strings.Split(encoded, "$")
	if len(parts) != 2 {
		return false
	}

	salt, err := hex.DecodeString(parts[0])
	if err != nil {
		return false
	}
	wantHash, err := hex.DecodeString(parts[1])
	if err != nil {
		return false
	}

	// пересчитываю хэш с сохраненной солью
	getHash := pbkdf2.Key([]byte(password), salt, iterations, len(wantHash), sha256.New)

	// сравнение за постоянное время, чтобы по времени ответа нельзя было судить о совпадении префикса
	return subtle.ConstantTimeCompare(wantHash, getHash) == 1
}
