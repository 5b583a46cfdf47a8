package service

import (
	"database/sql"
	"errors"

	"github.com/juanFRANvelilla/backendTFG/contract"
	"github.com/juanFRANvelilla/backendTFG/model"
)

// ContactService runs the two-sided request/accept handshake.
type ContactService struct {
	users    contract.UserRepo
	contacts contract.ContactRepo
	requests contract.ContactRequestRepo
}

func NewContactService(users contract.UserRepo, contacts contract.ContactRepo, requests contract.ContactRequestRepo) *ContactService {
	return &ContactService{users: users, contacts: contacts, requests: requests}
}

// RequestContact sends a contact request to the user behind username,
// unless they are the caller, already a contact, or already asked.
func (s *ContactService) RequestContact(callerID int, username string) error {
	contact, err := s.resolveCounterparty(callerID, username)
	if err != nil {
		return err
	}

	isContact, err := s.contacts.IsContact(callerID, contact.ID)
	if err != nil {
		return err
	}
	if isContact {
		return ErrAlreadyContacts
	}

	exists, err := s.requests.Exists(contact.ID, callerID)
	if err != nil {
		return err
	}
	if exists {
		return ErrRequestAlreadySent
	}

	return s.requests.Create(contact.ID, callerID)
}

// PendingRequests lists the users waiting for the caller to accept.
func (s *ContactService) PendingRequests(callerID int) ([]model.UserView, error) {
	requesterIDs, err := s.requests.FindRequesterIDs(callerID)
	if err != nil {
		return nil, err
	}
	return s.profiles(requesterIDs)
}

// AcceptRequest completes the handshake: both pending directions are
// accepted and the pair becomes mutual contacts in one transaction.
func (s *ContactService) AcceptRequest(callerID int, username string) error {
	contact, err := s.resolveCounterparty(callerID, username)
	if err != nil {
		return err
	}

	isContact, err := s.contacts.IsContact(callerID, contact.ID)
	if err != nil {
		return err
	}
	if isContact {
		return ErrAlreadyContacts
	}

	accepted, err := s.contacts.Accept(callerID, contact.ID)
	if err != nil {
		return err
	}
	if !accepted {
		return ErrNoPendingRequest
	}
	return nil
}

func (s *ContactService) Contacts(callerID int) ([]model.UserView, error) {
	contactIDs, err := s.contacts.FindContactIDs(callerID)
	if err != nil {
		return nil, err
	}
	return s.profiles(contactIDs)
}

func (s *ContactService) resolveCounterparty(callerID int, username string) (*model.User, error) {
	user, err := s.users.FindByUsername(username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInvalidCounterparty
	}
	if err != nil {
		return nil, err
	}
	if user.ID == callerID {
		return nil, ErrInvalidCounterparty
	}
	return user, nil
}

func (s *ContactService) profiles(ids []int) ([]model.UserView, error) {
	views := make([]model.UserView, 0, len(ids))
	for _, id := range ids {
		user, err := s.users.FindByID(id)
		if err != nil {
			return nil, err
		}
		views = append(views, user.View())
	}
	return views, nil
}
