// Package dbtest готовит базу Postgres для интеграционных тестов репозиториев.
package dbtest

import (
	"fmt"
	"os"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib" // golang postgres driver
	"github.com/jmoiron/sqlx"
)

// EnvDSN задаёт подключение к тестовой базе. Без неё тесты пропускаются.
const EnvDSN = "TEST_PG_DSN"

// Open подключается к тестовой базе и накатывает миграции. Соединение
// закрывается по окончании теста.
func Open(tb testing.TB, migrations ...string) *sqlx.DB {
	tb.Helper()

	dsn := os.Getenv(EnvDSN)
	if dsn == "" {
		tb.Skip(EnvDSN + " is not set")
	}

	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		tb.Fatalf("sqlx.Connect: %v", err)
	}

	tb.Cleanup(func() { _ = db.Close() })

	if err = MigrateFromFile(db, migrations...); err != nil {
		tb.Fatalf("dbtest.MigrateFromFile: %v", err)
	}

	return db
}

// MigrateFromFile выполняет SQL из файлов по порядку.
func MigrateFromFile(db *sqlx.DB, fileNames ...string) error {
	for _, fileName := range fileNames {
		query, err := os.ReadFile(fileName)
		if err != nil {
			return fmt.Errorf("os.ReadFile: %w", err)
		}

		if _, err = db.Exec(string(query)); err != nil {
			return fmt.Errorf("db.Exec %s: %w", fileName, err)
		}
	}

	return nil
}
