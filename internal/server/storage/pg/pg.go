package pg

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"secretkeeper/internal/repositories/identity"
	"secretkeeper/internal/repositories/secrets"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// Store - реализует интерфейс storage.IServerStorage и позволяет взаимодествовать с СУБД PostgreSQL.
type Store struct {
	// Поле conn содержит объект соединения с СУБД
	conn *sql.DB
}

// NewStore - применяет миграции и возвращает новый экземпляр PostgreSQL-хранилища.
func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if err := runMigrations(dsn); err != nil {
		return nil, fmt.Errorf("failed to run DB migrations: %w", err)
	}

	// Подключение к базе данных
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("error connection to database: %v by address %s", err, dsn)
	}

	// Проверка соединения с БД
	err = db.PingContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("error checking connection with database: %v", err)
	}

	return &Store{
		conn: db,
	}, nil
}

//go:embed migrations/*.sql
var migrationsDir embed.FS

func runMigrations(dsn string) error {
	d, err := iofs.New(migrationsDir, "migrations")
	if err != nil {
		return fmt.Errorf("failed to return an iofs driver: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", d, dsn)
	if err != nil {
		return fmt.Errorf("failed to get a new migrate instance: %w", err)
	}
	if err := m.Up(); err != nil {
		if !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("failed to apply migrations to the DB: %w", err)
		}
	}
	return nil
}

// Disable - очищает БД, удаляя записи из таблиц.
// Метод необходим для тестирования, чтобы в процессе удалять тестовые записи.
func (s Store) Disable(ctx context.Context) error {
	// запускаем транзакцию
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction error, %w", err)
	}
	// в случае неупешного коммита все изменения транзакции будут отменены
	defer tx.Rollback()

	// удаляю все записи в таблице federated_identities----------------------
	_, err = tx.ExecContext(ctx, `
		TRUNCATE TABLE federated_identities
	`)
	if err != nil {
		return fmt.Errorf("truncate table federated_identities error, %w", err)
	}

	// удаляю все записи в таблице accounts----------------------
	_, err = tx.ExecContext(ctx, `
		TRUNCATE TABLE accounts CASCADE
	`)
	if err != nil {
		return fmt.Errorf("truncate table accounts error, %w", err)
	}

	// коммитим транзакцию
	return tx.Commit()
}

// Register - сохраняет в базу данные новой учетной записи с локальным логином.
// Пароль передается уже в виде соленого хэша. Если логин занят, вернется ошибка
// с кодом unique_violation от СУБД.
func (s Store) Register(ctx context.Context, login, passwordHash, id string) error {
	query := `
	INSERT INTO accounts (id, login, password_hash)
	VALUES ($1, $2, $3)
`
	stmt, err := s.conn.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare context error, %w", err)
	}
	defer stmt.Close()
	_, err = stmt.ExecContext(ctx, id, login, passwordHash)
	return err
}

// Authorize - получаю авторизационные данные учетной записи (соленый хэш пароля) по логину.
// В случае, если учетная запись с переданным логином не найдена, возвращается ok == false.
func (s Store) Authorize(ctx context.Context, login string) (data identity.AuthorizationData, ok bool, err error) {
	query := `
		SELECT  password_hash,
				id
		FROM accounts
		WHERE login = $1
	`
	stmt, err := s.conn.PrepareContext(ctx, query)
	if err != nil {
		err = fmt.Errorf("prepare context error, %w", err)
		return
	}
	defer stmt.Close()
	row := stmt.QueryRowContext(ctx, login)

	var passwordHash sql.NullString
	err = row.Scan(&passwordHash, &data.ID)
	if err != nil {
		// учетная запись не найдена
		err = nil
		ok = false
		return
	}
	data.PasswordHash = passwordHash.String
	ok = true
	return
}

// GetAccount - загружает учетную запись по её идентификатору.
// Используется при восстановлении учетной записи из токена сессии.
func (s Store) GetAccount(ctx context.Context, id string) (account identity.Account, ok bool, err error) {
	query := `
		SELECT  id,
				login
		FROM accounts
		WHERE id = $1
	`
	stmt, err := s.conn.PrepareContext(ctx, query)
	if err != nil {
		err = fmt.Errorf("prepare context error, %w", err)
		return
	}
	defer stmt.Close()
	row := stmt.QueryRowContext(ctx, id)

	var login sql.NullString
	err = row.Scan(&account.ID, &login)
	if err != nil {
		// учетная запись не найдена
		err = nil
		ok = false
		return
	}
	account.Login = login.String
	ok = true
	return
}

// FindOrCreate - ищет учетную запись по паре (provider, providerID), а при её отсутствии создает
// новую с идентификатором newID. Последовательность "проверить и создать" защищена от гонки
// уникальным ограничением на пару в таблице federated_identities: при конкурентном создании
// выигрывает одна транзакция, проигравшая перечитывает запись победителя.
func (s Store) FindOrCreate(ctx context.Context, provider, providerID, newID string) (string, bool, error) {
	// быстрый путь: учетная запись для этой пары уже существует
	accountID, ok, err := s.findFederated(ctx, provider, providerID)
	if err != nil {
		return "", false, fmt.Errorf("find federated identity error, %w", err)
	}
	if ok {
		return accountID, false, nil
	}

	// учетной записи нет - создаю новую вместе с внешней идентификацией в одной транзакции
	created, err := s.createFederated(ctx, provider, providerID, newID)
	if err != nil {
		return "", false, fmt.Errorf("create federated account error, %w", err)
	}
	if created {
		return newID, true, nil
	}

	// проигрыш гонки: другая транзакция успела создать учетную запись для этой пары.
	// Перечитываю один раз и возвращаю запись победителя.
	accountID, ok, err = s.findFederated(ctx, provider, providerID)
	if err != nil {
		return "", false, fmt.Errorf("find federated identity after conflict error, %w", err)
	}
	if !ok {
		return "", false, fmt.Errorf("account for provider %s is neither created nor found", provider)
	}
	return accountID, false, nil
}

// findFederated - ищет идентификатор учетной записи по паре (provider, providerID).
func (s Store) findFederated(ctx context.Context, provider, providerID string) (accountID string, ok bool, err error) {
	query := `
		SELECT account_id
		FROM federated_identities
		WHERE provider = $1 AND provider_id = $2
	`
	stmt, err := s.conn.PrepareContext(ctx, query)
	if err != nil {
		err = fmt.Errorf("prepare context error, %w", err)
		return
	}
	defer stmt.Close()
	row := stmt.QueryRowContext(ctx, provider, providerID)

	err = row.Scan(&accountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// записей для данной пары не найдено
			err = nil
		}
		ok = false
		return
	}
	ok = true
	return
}

// createFederated - создает новую учетную запись и её внешнюю идентификацию в одной транзакции.
// В случае нарушения уникальности пары (provider, providerID) транзакция откатывается
// вместе с созданной учетной записью и возвращается false.
func (s Store) createFederated(ctx context.Context, provider, providerID, newID string) (bool, error) {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin transaction error, %w", err)
	}
	// откат транзакции в случае ошибки
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO accounts (id)
		VALUES ($1)
	`, newID)
	if err != nil {
		return false, fmt.Errorf("insert account error, %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO federated_identities (provider, provider_id, account_id)
		VALUES ($1, $2, $3)
	`, provider, providerID, newID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// Код ошибки 23505 - unique_violation
			// конкурентная транзакция уже создала учетную запись для этой пары
			return false, nil
		}
		return false, fmt.Errorf("insert federated identity error, %w", err)
	}

	// коммитим транзакцию
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit transaction error, %w", err)
	}
	return true, nil
}

// AppendSecret - добавляет новый секрет в конец списка секретов учетной записи.
// Добавление выполняется одним запросом в пределах одной строки, поэтому конкурентные
// добавления к одной учетной записи сериализуются СУБД и не теряются.
func (s Store) AppendSecret(ctx context.Context, accountID, secret string) error {
	query := `
	UPDATE accounts
	SET secret = array_append(secret, $2)
	WHERE id = $1
`
	stmt, err := s.conn.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare context error, %w", err)
	}
	defer stmt.Close()
	result, err := stmt.ExecContext(ctx, accountID, secret)
	if err != nil {
		return fmt.Errorf("query execution error, %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		// попытка добавить секрет к учетной записи, которой не существует
		return fmt.Errorf("account %s not found", accountID)
	}
	return nil
}

// AllSecrets - метод для выгрузки секретов всех учетных записей, у которых список секретов не пуст.
// Внутри одной учетной записи секреты возвращаются в порядке добавления.
func (s Store) AllSecrets(ctx context.Context) ([]secrets.AccountSecrets, error) {
	query := `
	SELECT  id,
			secret
	FROM accounts
	WHERE cardinality(secret) > 0
	ORDER BY id
	`
	stmt, err := s.conn.PrepareContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("prepare context error, %w", err)
	}
	defer stmt.Close()
	rows, err := stmt.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("query execution error, %w", err)
	}

	result := make([]secrets.AccountSecrets, 0)
	defer rows.Close()
	for rows.Next() {
		var accountSecrets secrets.AccountSecrets

		// получаю список секретов учетной записи в порядке добавления
		secretList := make([]string, 0)

		err = rows.Scan(&accountSecrets.AccountID, pq.Array(&secretList))
		if err != nil {
			return nil, fmt.Errorf("scan error, %w", err)
		}
		accountSecrets.Secrets = secretList
		result = append(result, accountSecrets)
	}
	// проверяем на ошибки
	err = rows.Err()
	if err != nil {
		return nil, err
	}
	return result, nil
}
