package rest

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/juanFRANvelilla/backendTFG/model"
)

func (a *App) getBalance(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, err.Error())
		return
	}

	balance, err := a.Debts.Balance(userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, balance)
}

func (a *App) getCurrentDebts(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, err.Error())
		return
	}

	debts, err := a.Debts.CurrentDebts(userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, debts)
}

func (a *App) getHistoricalDebts(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, err.Error())
		return
	}

	request := &model.RequestContact{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := a.Validator.Struct(request); err != nil {
		errs := err.(validator.ValidationErrors)
		respondWithValidationError(errs.Translate(a.Translator), w)
		return
	}

	debts, err := a.Debts.HistoricalDebts(userID, request.Username)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, debts)
}

func (a *App) saveDebt(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, err.Error())
		return
	}

	createDebt := &model.CreateDebt{}
	if err := json.NewDecoder(r.Body).Decode(createDebt); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := a.Validator.Struct(createDebt); err != nil {
		errs := err.(validator.ValidationErrors)
		respondWithValidationError(errs.Translate(a.Translator), w)
		return
	}

	if _, err := a.Debts.RecordDebt(userID, createDebt.DebtorUsername, createDebt.Amount, createDebt.Description); err != nil {
		respondServiceError(w, err)
		return
	}
	respondWithResponse(w, http.StatusOK, "Debt saved")
}

func (a *App) payOffDebt(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, err.Error())
		return
	}

	vars := mux.Vars(r)
	debtID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid debt ID")
		return
	}

	if err := a.Debts.PayOff(userID, debtID); err != nil {
		respondServiceError(w, err)
		return
	}
	respondWithResponse(w, http.StatusOK, "Debt paid")
}

func (a *App) showNotifications(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, err.Error())
		return
	}

	notifications, err := a.Debts.Notifications(userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, notifications)
}
