package repository

import (
	"database/sql"

	"github.com/juanFRANvelilla/backendTFG/model"
)

type NotificationRepoMysql struct {
	db *sql.DB
}

func NewNotificationRepoMysql(db *sql.DB) *NotificationRepoMysql {
	return &NotificationRepoMysql{db: db}
}

func (n *NotificationRepoMysql) Create(notification *model.Notification) error {
	statement := "INSERT INTO notifications(user_id, debt_id, text, date) VALUES(?, ?, ?, ?)"
	_, err := n.db.Exec(statement, notification.UserID, notification.DebtID, notification.Text, notification.Date)
	return err
}

func (n *NotificationRepoMysql) FindByUser(userID int) ([]model.Notification, error) {
	statement := "SELECT id, user_id, debt_id, text, date FROM notifications WHERE user_id = ? ORDER BY date DESC"
	rows, err := n.db.Query(statement, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := []model.Notification{}
	for rows.Next() {
		var notification model.Notification
		err := rows.Scan(&notification.ID, &notification.UserID, &notification.DebtID, &notification.Text, &notification.Date)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, notification)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (n *NotificationRepoMysql) DeleteByDebt(debtID int64) error {
	statement := "DELETE FROM notifications WHERE debt_id = ?"
	_, err := n.db.Exec(statement, debtID)
	return err
}
