package model

import "time"

// Notification tells a debtor that a new unpaid debt was recorded
// against them. Rows are deleted when the debt is paid off.
type Notification struct {
	ID     int64     `json:"id"`
	UserID int       `json:"userID"`
	DebtID int64     `json:"debtID"`
	Text   string    `json:"text"`
	Date   time.Time `json:"date"`
}
