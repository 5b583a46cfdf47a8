package service

import (
	"database/sql"
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"

	"github.com/juanFRANvelilla/backendTFG/contract"
	"github.com/juanFRANvelilla/backendTFG/model"
)

const (
	maxCodeAttempts = 3
	tokenLifetime   = time.Minute * 30
)

// AccessService handles the two-step phone registration and login.
type AccessService struct {
	users       contract.UserRepo
	validations contract.PhoneValidationRepo
	jwtSecret   []byte
}

func NewAccessService(users contract.UserRepo, validations contract.PhoneValidationRepo, jwtSecret []byte) *AccessService {
	return &AccessService{users: users, validations: validations, jwtSecret: jwtSecret}
}

// ConfirmPhone opens a verification window for the phone: the code is
// stored with a TTL and the attempts counter starts at zero. Calling it
// again before the window closes reissues the code.
func (s *AccessService) ConfirmPhone(phone, code string) error {
	if _, err := s.users.FindByUsername(phone); err == nil {
		return ErrPhoneTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	return s.validations.Start(&model.PhoneValidation{Phone: phone, Code: code})
}

// ValidatePhone checks the submitted code against the stored one and,
// on a match, creates the account with a bcrypt-hashed password. Three
// wrong codes close the window.
func (s *AccessService) ValidatePhone(create *model.CreateUser) (*model.User, error) {
	if _, err := s.users.FindByUsername(create.Username); err == nil {
		return nil, ErrPhoneTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	validation, err := s.validations.Find(create.Username)
	if err != nil {
		return nil, err
	}
	if validation == nil {
		return nil, ErrValidationNotStarted
	}
	if validation.Attempts >= maxCodeAttempts {
		return nil, ErrTooManyAttempts
	}
	if validation.Code != create.VerificationCode {
		if err := s.validations.IncreaseAttempts(create.Username); err != nil {
			return nil, err
		}
		return nil, ErrWrongCode
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(create.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:  create.Username,
		Password:  string(hash),
		FirstName: create.FirstName,
		LastName:  create.LastName,
		Email:     create.Email,
	}
	if user, err = s.users.Create(user); err != nil {
		return nil, err
	}

	if err := s.validations.Delete(create.Username); err != nil {
		log.Printf("could not drop phone validation for %s: %v", create.Username, err)
	}

	user.Password = ""
	return user, nil
}

// Login verifies the credentials and returns a signed token plus the
// user, with the password hash blanked.
func (s *AccessService) Login(username, password string) (string, *model.User, error) {
	user, err := s.users.FindByUsername(username)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	claims := &model.UserToken{
		UserID:   strconv.Itoa(user.ID),
		Username: user.Username,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(tokenLifetime).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", nil, err
	}

	user.Password = ""
	return tokenString, user, nil
}

// Profile returns the caller's own account, password blanked.
func (s *AccessService) Profile(userID int) (*model.User, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return user, nil
}
