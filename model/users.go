package model

import "github.com/dgrijalva/jwt-go"

// User is keyed by phone number: Username holds the phone the account
// was registered with.
type User struct {
	ID        int    `json:"id" validate:"numeric,gte=0"`
	Username  string `json:"username" validate:"required,min=9,max=15"`
	Password  string `json:"password,omitempty"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email" validate:"omitempty,email"`
}

// UserView is the public profile shape returned to other users.
type UserView struct {
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type UserToken struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
	jwt.StandardClaims
}

type UserLogin struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateUser is the second step of registration: the phone was already
// confirmed and the verification code sent.
type CreateUser struct {
	Username         string `json:"username" validate:"required,min=9,max=15"`
	Password         string `json:"password" validate:"required,min=4,max=64"`
	Email            string `json:"email" validate:"omitempty,email"`
	FirstName        string `json:"firstName" validate:"required,max=32"`
	LastName         string `json:"lastName" validate:"max=32"`
	VerificationCode string `json:"verificationCode" validate:"required,len=6"`
}

type ConfirmPhone struct {
	Username         string `json:"username" validate:"required,min=9,max=15"`
	VerificationCode string `json:"verificationCode" validate:"required,len=6"`
}

type PhoneValidation struct {
	Phone    string
	Code     string
	Attempts int
}

func (u *User) View() UserView {
	return UserView{
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}
