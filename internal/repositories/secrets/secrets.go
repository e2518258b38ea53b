package secrets

import "context"

// AccountSecrets - структура для передачи секретов одной учетной записи между сервером и клиентом.
// Секреты хранятся в порядке добавления.
type AccountSecrets struct {
	AccountID string   `json:"account_id"` // идентификатор учетной записи, которой принадлежат секреты
	Secrets   []string `json:"secrets"`    // список секретов в порядке добавления
}

// SubmitData - структура для передачи нового секрета от клиента на сервер.
type SubmitData struct {
	Secret string `json:"secret"` // произвольный текст секрета
}

// Appender - интерфейс для добавления нового секрета в список секретов учетной записи.
// Секреты после добавления не изменяются и не удаляются.
type Appender interface {
	AppendSecret(ctx context.Context, accountID, secret string) error
}

// Lister - интерфейс для выгрузки секретов всех учетных записей, у которых список секретов не пуст.
type Lister interface {
	AllSecrets(ctx context.Context) ([]AccountSecrets, error)
}

// Ledger - интерфейс списка секретов.
type Ledger interface {
	Appender
	Lister
}
