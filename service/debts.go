package service

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/juanFRANvelilla/backendTFG/contract"
	"github.com/juanFRANvelilla/backendTFG/model"
)

const dateLayout = "2006-01-02 15:04:05"

// DebtService is the settlement engine plus the ledger queries. Every
// operation takes the caller's resolved user id explicitly.
type DebtService struct {
	debts         contract.DebtRepo
	users         contract.UserRepo
	notifications contract.NotificationRepo
	now           func() time.Time
}

func NewDebtService(debts contract.DebtRepo, users contract.UserRepo, notifications contract.NotificationRepo) *DebtService {
	return &DebtService{
		debts:         debts,
		users:         users,
		notifications: notifications,
		now:           time.Now,
	}
}

// RecordDebt stores a new claim of the caller against debtorUsername,
// first netting it against unpaid debts running the opposite direction.
// Prior entries are consumed oldest first; whatever remains of the new
// amount is stored as the new entry, already marked paid when the claim
// was fully absorbed. The plan is computed inside the store transaction
// that applies it, so a concurrent claim on the same pair cannot net
// against the same entry twice.
func (s *DebtService) RecordDebt(callerID int, debtorUsername string, amount int64, description string) (*model.Debt, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	debtor, err := s.users.FindByUsername(debtorUsername)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInvalidCounterparty
	}
	if err != nil {
		return nil, err
	}
	if debtor.ID == callerID {
		return nil, ErrInvalidCounterparty
	}

	var settlement *model.Settlement
	id, err := s.debts.Settle(debtor.ID, callerID, func(prior []model.Debt) *model.Settlement {
		plan, remaining, settled := planSettlement(prior, amount)
		plan.New = model.Debt{
			CreditorID:  callerID,
			DebtorID:    debtor.ID,
			Amount:      remaining,
			Date:        s.now(),
			Description: description,
			Paid:        settled,
		}
		settlement = &plan
		return &plan
	})
	if err != nil {
		return nil, err
	}
	settlement.New.ID = id

	if !settlement.New.Paid {
		s.notifyDebtor(&settlement.New)
	}
	return &settlement.New, nil
}

// planSettlement nets amount against the prior opposite-direction
// entries, in order, and returns the write plan together with the
// residual amount and whether the new claim ended up settled.
func planSettlement(prior []model.Debt, amount int64) (model.Settlement, int64, bool) {
	plan := model.Settlement{}
	remaining := amount

	for _, debt := range prior {
		switch {
		case remaining < debt.Amount:
			// the prior entry absorbs the whole claim
			plan.ReducedID = debt.ID
			plan.ReducedAmount = debt.Amount - remaining
			return plan, remaining, true
		case remaining == debt.Amount:
			// both sides cancel out exactly
			plan.PaidIDs = append(plan.PaidIDs, debt.ID)
			return plan, remaining, true
		default:
			// the prior entry is consumed, keep netting the rest
			plan.PaidIDs = append(plan.PaidIDs, debt.ID)
			remaining -= debt.Amount
		}
	}
	return plan, remaining, false
}

// PayOff flips the debt to paid. Only the creditor may do it, and doing
// it twice is not an error. Notifications tied to the debt are cleared.
func (s *DebtService) PayOff(callerID int, debtID int64) error {
	debt, err := s.debts.FindByID(debtID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrDebtNotFound
	}
	if err != nil {
		return err
	}
	if debt.CreditorID != callerID {
		return ErrNotCreditor
	}

	if !debt.Paid {
		if err := s.debts.MarkPaid(debtID); err != nil {
			return err
		}
	}
	return s.notifications.DeleteByDebt(debtID)
}

func (s *DebtService) Balance(callerID int) (*model.Balance, error) {
	asDebtor, err := s.debts.FindUnpaidByDebtor(callerID)
	if err != nil {
		return nil, err
	}
	asCreditor, err := s.debts.FindUnpaidByCreditor(callerID)
	if err != nil {
		return nil, err
	}

	return &model.Balance{
		Owe:  totalAmount(asDebtor),
		Owed: totalAmount(asCreditor),
	}, nil
}

// CurrentDebts returns every open entry the caller is part of, newest
// first, framed from the caller's perspective.
func (s *DebtService) CurrentDebts(callerID int) ([]model.DebtView, error) {
	asCreditor, err := s.debts.FindUnpaidByCreditor(callerID)
	if err != nil {
		return nil, err
	}
	asDebtor, err := s.debts.FindUnpaidByDebtor(callerID)
	if err != nil {
		return nil, err
	}

	merged := append(asCreditor, asDebtor...)
	sortByDateDesc(merged)
	return s.project(callerID, merged)
}

// HistoricalDebts returns every entry, paid or not, between the caller
// and the counterparty, newest first.
func (s *DebtService) HistoricalDebts(callerID int, counterpartyUsername string) ([]model.DebtView, error) {
	counterparty, err := s.users.FindByUsername(counterpartyUsername)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInvalidCounterparty
	}
	if err != nil {
		return nil, err
	}
	if counterparty.ID == callerID {
		return nil, ErrInvalidCounterparty
	}

	debts, err := s.debts.FindAllBetween(callerID, counterparty.ID)
	if err != nil {
		return nil, err
	}

	sortByDateDesc(debts)
	return s.project(callerID, debts)
}

func (s *DebtService) notifyDebtor(debt *model.Debt) {
	creditor, err := s.users.FindByID(debt.CreditorID)
	if err != nil {
		log.Printf("could not resolve creditor %d for notification: %v", debt.CreditorID, err)
		return
	}

	notification := &model.Notification{
		UserID: debt.DebtorID,
		DebtID: debt.ID,
		Text:   fmt.Sprintf("%s has recorded a debt of %d against you", creditor.Username, debt.Amount),
		Date:   debt.Date,
	}
	if err := s.notifications.Create(notification); err != nil {
		log.Printf("could not create notification for debt %d: %v", debt.ID, err)
	}
}

func (s *DebtService) project(viewerID int, debts []model.Debt) ([]model.DebtView, error) {
	profiles := map[int]model.UserView{}
	views := make([]model.DebtView, 0, len(debts))

	for _, debt := range debts {
		isCreditor := debt.CreditorID == viewerID
		otherID := debt.DebtorID
		if !isCreditor {
			otherID = debt.CreditorID
		}

		profile, ok := profiles[otherID]
		if !ok {
			other, err := s.users.FindByID(otherID)
			if err != nil {
				return nil, err
			}
			profile = other.View()
			profiles[otherID] = profile
		}

		views = append(views, model.DebtView{
			ID:           debt.ID,
			IsCreditor:   isCreditor,
			Amount:       debt.Amount,
			Date:         debt.Date.Format(dateLayout),
			Description:  debt.Description,
			Paid:         debt.Paid,
			Counterparty: profile,
		})
	}
	return views, nil
}

func totalAmount(debts []model.Debt) int64 {
	var total int64
	for _, debt := range debts {
		total += debt.Amount
	}
	return total
}

func sortByDateDesc(debts []model.Debt) {
	sort.SliceStable(debts, func(i, j int) bool {
		return debts[i].Date.After(debts[j].Date)
	})
}
