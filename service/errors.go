package service

import "errors"

// Client-caused failures. Handlers map these to 4xx responses; any other
// error is a server fault and surfaces as a 500.
var (
	ErrInvalidCounterparty  = errors.New("cannot use that user as counterparty")
	ErrInvalidAmount        = errors.New("debt amount must be positive")
	ErrDebtNotFound         = errors.New("debt does not exist")
	ErrNotCreditor          = errors.New("only the creditor of this debt can settle it")
	ErrAlreadyContacts      = errors.New("users are already contacts")
	ErrRequestAlreadySent   = errors.New("contact request already sent")
	ErrNoPendingRequest     = errors.New("no pending contact request from that user")
	ErrPhoneTaken           = errors.New("phone number is already registered")
	ErrWrongCode            = errors.New("wrong verification code")
	ErrTooManyAttempts      = errors.New("too many verification attempts")
	ErrValidationNotStarted = errors.New("phone verification was never started or has expired")
	ErrInvalidCredentials   = errors.New("invalid login credentials")
)
