package rest

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/juanFRANvelilla/backendTFG/model"
)

func (a *App) showContacts(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, err.Error())
		return
	}

	contacts, err := a.Contacts.Contacts(userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, model.Contacts{Contacts: contacts})
}

func (a *App) requestContact(w http.ResponseWriter, r *http.Request) {
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

	if err := a.Contacts.RequestContact(userID, request.Username); err != nil {
		respondServiceError(w, err)
		return
	}
	respondWithResponse(w, http.StatusOK, "Contact request sent")
}

func (a *App) showRequestContact(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, err.Error())
		return
	}

	pending, err := a.Contacts.PendingRequests(userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, pending)
}

func (a *App) acceptRequestContact(w http.ResponseWriter, r *http.Request) {
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

	if err := a.Contacts.AcceptRequest(userID, request.Username); err != nil {
		respondServiceError(w, err)
		return
	}
	respondWithResponse(w, http.StatusOK, "Contact added")
}
