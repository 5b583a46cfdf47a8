package repository

import (
	"database/sql"

	"github.com/juanFRANvelilla/backendTFG/model"
)

type UserRepoMysql struct {
	db *sql.DB
}

func NewUserRepoMysql(db *sql.DB) *UserRepoMysql {
	return &UserRepoMysql{db: db}
}

func (u *UserRepoMysql) Create(user *model.User) (*model.User, error) {
	statement := "INSERT INTO users(username, password, first_name, last_name, email) VALUES(?, ?, ?, ?, ?)"
	result, err := u.db.Exec(statement, user.Username, user.Password, user.FirstName, user.LastName, user.Email)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	user.ID = int(id)

	return user, nil
}

func (u *UserRepoMysql) FindByID(id int) (*model.User, error) {
	statement := "SELECT id, username, password, first_name, last_name, email FROM users WHERE id = ?"
	user := &model.User{}
	err := u.db.QueryRow(statement, id).
		Scan(&user.ID, &user.Username, &user.Password, &user.FirstName, &user.LastName, &user.Email)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (u *UserRepoMysql) FindByUsername(username string) (*model.User, error) {
	statement := "SELECT id, username, password, first_name, last_name, email FROM users WHERE username = ?"
	user := &model.User{}
	err := u.db.QueryRow(statement, username).
		Scan(&user.ID, &user.Username, &user.Password, &user.FirstName, &user.LastName, &user.Email)
	if err != nil {
		return nil, err
	}
	return user, nil
}
