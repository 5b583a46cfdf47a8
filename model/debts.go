package model

import "time"

// Debt is a single ledger entry: Creditor lent Amount to Debtor.
// Amounts are integer minor units (cents) so settlement arithmetic is
// exact. Paid only ever flips from false to true.
type Debt struct {
	ID          int64     `json:"id"`
	CreditorID  int       `json:"creditorID"`
	DebtorID    int       `json:"debtorID"`
	Amount      int64     `json:"amount"`
	Date        time.Time `json:"date"`
	Description string    `json:"description,omitempty"`
	Paid        bool      `json:"paid"`
}

// I've lent 50 to Peter for "dinner"
type CreateDebt struct {
	DebtorUsername string `json:"debtorUsername" validate:"required"`
	Amount         int64  `json:"amount" validate:"required,gt=0"`
	Description    string `json:"description,omitempty" validate:"max=255"`
}

// DebtView is a debt as seen by one of its two parties.
type DebtView struct {
	ID           int64    `json:"id"`
	IsCreditor   bool     `json:"isCreditor"`
	Amount       int64    `json:"amount"`
	Date         string   `json:"date"`
	Description  string   `json:"description,omitempty"`
	Paid         bool     `json:"paid"`
	Counterparty UserView `json:"counterpartyUser"`
}

type Balance struct {
	Owe  int64 `json:"owe"`
	Owed int64 `json:"owed"`
}

// Settlement is the write plan produced by netting a new claim against
// prior opposite-direction unpaid debts. All of it must be applied in
// one transaction: mark PaidIDs paid, reduce ReducedID to ReducedAmount,
// insert New.
type Settlement struct {
	PaidIDs       []int64
	ReducedID     int64
	ReducedAmount int64
	New           Debt
}
