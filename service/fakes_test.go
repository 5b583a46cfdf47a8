package service

import (
	"database/sql"
	"sort"
	"sync"

	"github.com/juanFRANvelilla/backendTFG/model"
)

// In-memory repo fakes implementing the contract interfaces.

type fakeUserRepo struct {
	users  map[int]*model.User
	nextID int
}

func newFakeUserRepo(users ...*model.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: map[int]*model.User{}, nextID: 1}
	for _, user := range users {
		repo.users[user.ID] = user
		if user.ID >= repo.nextID {
			repo.nextID = user.ID + 1
		}
	}
	return repo
}

func (f *fakeUserRepo) Create(user *model.User) (*model.User, error) {
	user.ID = f.nextID
	f.nextID++
	stored := *user
	f.users[user.ID] = &stored
	return user, nil
}

func (f *fakeUserRepo) FindByID(id int) (*model.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	found := *user
	return &found, nil
}

func (f *fakeUserRepo) FindByUsername(username string) (*model.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			found := *user
			return &found, nil
		}
	}
	return nil, sql.ErrNoRows
}

type fakeDebtRepo struct {
	mu     sync.Mutex
	debts  map[int64]*model.Debt
	nextID int64
}

func newFakeDebtRepo() *fakeDebtRepo {
	return &fakeDebtRepo{debts: map[int64]*model.Debt{}, nextID: 1}
}

func (f *fakeDebtRepo) add(debt model.Debt) int64 {
	debt.ID = f.nextID
	f.nextID++
	f.debts[debt.ID] = &debt
	return debt.ID
}

// Settle mirrors the store transaction: the read, the plan and the
// writes all happen under one lock.
func (f *fakeDebtRepo) Settle(creditorID, debtorID int, plan func(prior []model.Debt) *model.Settlement) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	prior := []model.Debt{}
	for _, debt := range f.debts {
		if debt.CreditorID == creditorID && debt.DebtorID == debtorID && !debt.Paid {
			prior = append(prior, *debt)
		}
	}
	sort.Slice(prior, func(i, j int) bool { return prior[i].Date.Before(prior[j].Date) })

	settlement := plan(prior)
	for _, id := range settlement.PaidIDs {
		f.debts[id].Paid = true
	}
	if settlement.ReducedID != 0 {
		f.debts[settlement.ReducedID].Amount = settlement.ReducedAmount
	}
	return f.add(settlement.New), nil
}

func (f *fakeDebtRepo) FindUnpaidByCreditor(creditorID int) ([]model.Debt, error) {
	matches := []model.Debt{}
	for _, debt := range f.debts {
		if debt.CreditorID == creditorID && !debt.Paid {
			matches = append(matches, *debt)
		}
	}
	return matches, nil
}

func (f *fakeDebtRepo) FindUnpaidByDebtor(debtorID int) ([]model.Debt, error) {
	matches := []model.Debt{}
	for _, debt := range f.debts {
		if debt.DebtorID == debtorID && !debt.Paid {
			matches = append(matches, *debt)
		}
	}
	return matches, nil
}

func (f *fakeDebtRepo) FindAllBetween(userOne, userTwo int) ([]model.Debt, error) {
	matches := []model.Debt{}
	for _, debt := range f.debts {
		between := (debt.CreditorID == userOne && debt.DebtorID == userTwo) ||
			(debt.CreditorID == userTwo && debt.DebtorID == userOne)
		if between {
			matches = append(matches, *debt)
		}
	}
	return matches, nil
}

func (f *fakeDebtRepo) FindByID(id int64) (*model.Debt, error) {
	debt, ok := f.debts[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	found := *debt
	return &found, nil
}

func (f *fakeDebtRepo) MarkPaid(id int64) error {
	debt, ok := f.debts[id]
	if !ok {
		return sql.ErrNoRows
	}
	debt.Paid = true
	return nil
}

func (f *fakeDebtRepo) unpaid() []model.Debt {
	matches := []model.Debt{}
	for _, debt := range f.debts {
		if !debt.Paid {
			matches = append(matches, *debt)
		}
	}
	return matches
}

type fakeNotificationRepo struct {
	notifications []model.Notification
	nextID        int64
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{nextID: 1}
}

func (f *fakeNotificationRepo) Create(notification *model.Notification) error {
	notification.ID = f.nextID
	f.nextID++
	f.notifications = append(f.notifications, *notification)
	return nil
}

func (f *fakeNotificationRepo) FindByUser(userID int) ([]model.Notification, error) {
	matches := []model.Notification{}
	for _, notification := range f.notifications {
		if notification.UserID == userID {
			matches = append(matches, notification)
		}
	}
	return matches, nil
}

func (f *fakeNotificationRepo) DeleteByDebt(debtID int64) error {
	kept := f.notifications[:0]
	for _, notification := range f.notifications {
		if notification.DebtID != debtID {
			kept = append(kept, notification)
		}
	}
	f.notifications = kept
	return nil
}

type pair [2]int

type fakeContactRequestRepo struct {
	rows map[pair]*model.ContactRequest
}

func newFakeContactRequestRepo() *fakeContactRequestRepo {
	return &fakeContactRequestRepo{rows: map[pair]*model.ContactRequest{}}
}

func (f *fakeContactRequestRepo) Create(userID, requesterID int) error {
	f.rows[pair{userID, requesterID}] = &model.ContactRequest{UserID: userID, RequesterID: requesterID}
	return nil
}

func (f *fakeContactRequestRepo) Exists(userID, requesterID int) (bool, error) {
	_, ok := f.rows[pair{userID, requesterID}]
	return ok, nil
}

func (f *fakeContactRequestRepo) FindRequesterIDs(userID int) ([]int, error) {
	requesters := []int{}
	for key, request := range f.rows {
		if key[0] == userID && !request.Accepted {
			requesters = append(requesters, request.RequesterID)
		}
	}
	sort.Ints(requesters)
	return requesters, nil
}

type fakeContactRepo struct {
	pairs    map[pair]bool
	requests *fakeContactRequestRepo
}

func newFakeContactRepo(requests *fakeContactRequestRepo) *fakeContactRepo {
	return &fakeContactRepo{pairs: map[pair]bool{}, requests: requests}
}

func (f *fakeContactRepo) IsContact(userID, contactID int) (bool, error) {
	return f.pairs[pair{userID, contactID}], nil
}

func (f *fakeContactRepo) FindContactIDs(userID int) ([]int, error) {
	contacts := []int{}
	for key := range f.pairs {
		if key[0] == userID {
			contacts = append(contacts, key[1])
		}
	}
	sort.Ints(contacts)
	return contacts, nil
}

func (f *fakeContactRepo) Accept(userID, contactID int) (bool, error) {
	accepted := false
	for _, key := range []pair{{userID, contactID}, {contactID, userID}} {
		if request, ok := f.requests.rows[key]; ok && !request.Accepted {
			request.Accepted = true
			accepted = true
		}
	}
	if !accepted {
		return false, nil
	}
	f.pairs[pair{userID, contactID}] = true
	f.pairs[pair{contactID, userID}] = true
	return true, nil
}

type fakePhoneValidationRepo struct {
	validations map[string]*model.PhoneValidation
}

func newFakePhoneValidationRepo() *fakePhoneValidationRepo {
	return &fakePhoneValidationRepo{validations: map[string]*model.PhoneValidation{}}
}

func (f *fakePhoneValidationRepo) Start(validation *model.PhoneValidation) error {
	stored := *validation
	stored.Attempts = 0
	f.validations[validation.Phone] = &stored
	return nil
}

func (f *fakePhoneValidationRepo) Find(phone string) (*model.PhoneValidation, error) {
	validation, ok := f.validations[phone]
	if !ok {
		return nil, nil
	}
	found := *validation
	return &found, nil
}

func (f *fakePhoneValidationRepo) IncreaseAttempts(phone string) error {
	if validation, ok := f.validations[phone]; ok {
		validation.Attempts++
	}
	return nil
}

func (f *fakePhoneValidationRepo) Delete(phone string) error {
	delete(f.validations, phone)
	return nil
}
