package service

import "github.com/juanFRANvelilla/backendTFG/model"

// Notifications lists the caller's open debt notifications, newest
// first (the store orders them).
func (s *DebtService) Notifications(callerID int) ([]model.Notification, error) {
	return s.notifications.FindByUser(callerID)
}
