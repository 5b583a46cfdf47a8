package contract

import "github.com/juanFRANvelilla/backendTFG/model"

type UserRepo interface {
	Create(user *model.User) (*model.User, error)
	FindByID(id int) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
}

type PhoneValidationRepo interface {
	Start(validation *model.PhoneValidation) error
	Find(phone string) (*model.PhoneValidation, error)
	IncreaseAttempts(phone string) error
	Delete(phone string) error
}

type ContactRepo interface {
	IsContact(userID, contactID int) (bool, error)
	FindContactIDs(userID int) ([]int, error)
	// Accept validates the pending request rows in both directions and
	// inserts the two contact rows, all in one transaction. Returns
	// false when no pending request existed.
	Accept(userID, contactID int) (bool, error)
}

type ContactRequestRepo interface {
	Create(userID, requesterID int) error
	Exists(userID, requesterID int) (bool, error)
	FindRequesterIDs(userID int) ([]int, error)
}

type DebtRepo interface {
	FindUnpaidByCreditor(creditorID int) ([]model.Debt, error)
	FindUnpaidByDebtor(debtorID int) ([]model.Debt, error)
	// FindAllBetween returns paid and unpaid entries in both directions.
	FindAllBetween(userOne, userTwo int) ([]model.Debt, error)
	FindByID(id int64) (*model.Debt, error)
	// Settle locks the unpaid entries with exactly this creditor and
	// debtor, hands them to plan oldest first, and applies the returned
	// write set, all in one transaction. Returns the id of the inserted
	// entry. Concurrent settlements on the same pair run one after the
	// other and each plans against the other's committed writes.
	Settle(creditorID, debtorID int, plan func(prior []model.Debt) *model.Settlement) (int64, error)
	MarkPaid(id int64) error
}

type NotificationRepo interface {
	Create(notification *model.Notification) error
	FindByUser(userID int) ([]model.Notification, error)
	DeleteByDebt(debtID int64) error
}
