package storage

import (
	"secretkeeper/internal/repositories/identity"
	"secretkeeper/internal/repositories/secrets"
)

// IServerStorage - интерфейс сервера для хранения учетных записей и их секретов.
// Все изменения выполняются в пределах одной учетной записи.
type IServerStorage interface {
	identity.Identifier
	identity.Resolver
	identity.Keeper
	secrets.Ledger
}
