package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type ContactRepoMysql struct {
	db *sql.DB
}

func NewContactRepoMysql(db *sql.DB) *ContactRepoMysql {
	return &ContactRepoMysql{db: db}
}

func (c *ContactRepoMysql) IsContact(userID, contactID int) (bool, error) {
	statement := "SELECT COUNT(*) FROM contacts WHERE user_id = ? AND contact_id = ?"
	var count int
	if err := c.db.QueryRow(statement, userID, contactID).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (c *ContactRepoMysql) FindContactIDs(userID int) ([]int, error) {
	statement := "SELECT contact_id FROM contacts WHERE user_id = ?"
	rows, err := c.db.Query(statement, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contacts := []int{}
	for rows.Next() {
		var contactID int
		if err := rows.Scan(&contactID); err != nil {
			return nil, err
		}
		contacts = append(contacts, contactID)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return contacts, nil
}

// Accept marks the pending request rows in both directions as accepted
// and stores the contact pair both ways, so neither side keeps a stale
// pending request. Returns false when no pending request existed.
func (c *ContactRepoMysql) Accept(userID, contactID int) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	conn, err := c.db.Conn(ctx)
	if err != nil {
		return false, err
	}
	defer conn.Close()

	// BEGIN TRANSACTION
	tx, err := conn.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return false, err
	}

	// DEFER ROLLBACK
	defer tx.Rollback()

	statement := "UPDATE contact_requests SET accepted = true WHERE user_id = ? AND requester_id = ? AND accepted = false"
	accepted := int64(0)

	result, err := tx.ExecContext(ctx, statement, userID, contactID)
	if err != nil {
		return false, err
	}
	numRows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	accepted += numRows

	result, err = tx.ExecContext(ctx, statement, contactID, userID)
	if err != nil {
		return false, err
	}
	numRows, err = result.RowsAffected()
	if err != nil {
		return false, err
	}
	accepted += numRows

	if accepted == 0 {
		return false, nil
	}

	statement = "INSERT INTO contacts(user_id, contact_id) VALUES(?, ?)"
	if _, err := tx.ExecContext(ctx, statement, userID, contactID); err != nil {
		return false, err
	}
	if _, err := tx.ExecContext(ctx, statement, contactID, userID); err != nil {
		return false, err
	}

	// COMMIT TRANSACTION
	if err := tx.Commit(); err != nil {
		msg := fmt.Sprintf("error accepting contact request: %s", err)
		return false, errors.New(msg)
	}
	return true, nil
}

type ContactRequestRepoMysql struct {
	db *sql.DB
}

func NewContactRequestRepoMysql(db *sql.DB) *ContactRequestRepoMysql {
	return &ContactRequestRepoMysql{db: db}
}

func (c *ContactRequestRepoMysql) Create(userID, requesterID int) error {
	statement := "INSERT INTO contact_requests(user_id, requester_id, accepted) VALUES(?, ?, false)"
	_, err := c.db.Exec(statement, userID, requesterID)
	return err
}

func (c *ContactRequestRepoMysql) Exists(userID, requesterID int) (bool, error) {
	statement := "SELECT COUNT(*) FROM contact_requests WHERE user_id = ? AND requester_id = ?"
	var count int
	if err := c.db.QueryRow(statement, userID, requesterID).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (c *ContactRequestRepoMysql) FindRequesterIDs(userID int) ([]int, error) {
	statement := "SELECT requester_id FROM contact_requests WHERE user_id = ? AND accepted = false"
	rows, err := c.db.Query(statement, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requesters := []int{}
	for rows.Next() {
		var requesterID int
		if err := rows.Scan(&requesterID); err != nil {
			return nil, err
		}
		requesters = append(requesters, requesterID)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return requesters, nil
}
