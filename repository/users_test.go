package repository

import (
	"database/sql"
	"log"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/juanFRANvelilla/backendTFG/model"
)

func NewMock() (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		log.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}

	return db, mock
}

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "username", "password", "first_name", "last_name", "email"})
}

func TestUserRepoMysql_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock := NewMock()
		repo := NewUserRepoMysql(db)

		statement := "INSERT INTO users"
		mock.ExpectExec(statement).
			WithArgs("600111222", "hash", "Ana", "Garcia", "ana@example.com").
			WillReturnResult(sqlmock.NewResult(7, 1))

		user, err := repo.Create(&model.User{
			Username:  "600111222",
			Password:  "hash",
			FirstName: "Ana",
			LastName:  "Garcia",
			Email:     "ana@example.com",
		})
		assert.NoError(t, err)
		assert.Equal(t, 7, user.ID)
	})

	t.Run("duplicate phone", func(t *testing.T) {
		db, mock := NewMock()
		repo := NewUserRepoMysql(db)

		statement := "INSERT INTO users"
		mock.ExpectExec(statement).
			WithArgs("600111222", "hash", "", "", "").
			WillReturnError(sql.ErrConnDone)

		_, err := repo.Create(&model.User{Username: "600111222", Password: "hash"})
		assert.Error(t, err)
	})
}

func TestUserRepoMysql_FindByUsername(t *testing.T) {
	t.Run("user exists", func(t *testing.T) {
		db, mock := NewMock()
		repo := NewUserRepoMysql(db)

		statement := "SELECT id, username"
		rows := userRows().AddRow(1, "600111222", "hash", "Ana", "Garcia", "ana@example.com")
		mock.ExpectQuery(statement).WithArgs("600111222").WillReturnRows(rows)

		user, err := repo.FindByUsername("600111222")
		assert.NoError(t, err)
		assert.Equal(t, 1, user.ID)
		assert.Equal(t, "Ana", user.FirstName)
	})

	t.Run("user does not exist", func(t *testing.T) {
		db, mock := NewMock()
		repo := NewUserRepoMysql(db)

		statement := "SELECT id, username"
		mock.ExpectQuery(statement).WithArgs("699999999").WillReturnRows(userRows())

		_, err := repo.FindByUsername("699999999")
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestUserRepoMysql_FindByID(t *testing.T) {
	db, mock := NewMock()
	repo := NewUserRepoMysql(db)

	statement := "SELECT id, username"
	rows := userRows().AddRow(2, "600333444", "hash", "Pedro", "", "")
	mock.ExpectQuery(statement).WithArgs(2).WillReturnRows(rows)

	user, err := repo.FindByID(2)
	assert.NoError(t, err)
	assert.Equal(t, "600333444", user.Username)
}
