package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestEnsureSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()
	ctx := context.Background()

	t.Run("Creates all tables", func(t *testing.T) {
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS customers").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS shelves").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS sales").WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, EnsureSchema(ctx, db))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Stops at first failure", func(t *testing.T) {
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS customers").WillReturnError(errors.New("permission denied"))

		err := EnsureSchema(ctx, db)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to bootstrap schema")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOpen(t *testing.T) {
	t.Run("Supported drivers", func(t *testing.T) {
		for _, driver := range []string{"postgres", "pgx"} {
			db, err := Open(driver, "postgres://u:p@localhost:5432/db?sslmode=disable")
			assert.NoError(t, err)
			assert.NotNil(t, db)
			db.Close()
		}
	})

	t.Run("Unsupported driver", func(t *testing.T) {
		_, err := Open("mysql", "dsn")
		assert.Error(t, err)
	})
}

func TestStore_PingContext(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	store := NewStore(db)
	mock.ExpectPing().WillReturnError(errors.New("no route to host"))

	assert.Error(t, store.PingContext(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
