package rest

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/juanFRANvelilla/backendTFG/model"
)

func (a *App) confirmPhone(w http.ResponseWriter, r *http.Request) {
	confirm := &model.ConfirmPhone{}
	if err := json.NewDecoder(r.Body).Decode(confirm); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := a.Validator.Struct(confirm); err != nil {
		errs := err.(validator.ValidationErrors)
		respondWithValidationError(errs.Translate(a.Translator), w)
		return
	}

	if err := a.Access.ConfirmPhone(confirm.Username, confirm.VerificationCode); err != nil {
		respondServiceError(w, err)
		return
	}
	respondWithResponse(w, http.StatusCreated, "Phone verification started")
}

func (a *App) validatePhone(w http.ResponseWriter, r *http.Request) {
	create := &model.CreateUser{}
	if err := json.NewDecoder(r.Body).Decode(create); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := a.Validator.Struct(create); err != nil {
		errs := err.(validator.ValidationErrors)
		respondWithValidationError(errs.Translate(a.Translator), w)
		return
	}

	user, err := a.Access.ValidatePhone(create)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, user)
}

func (a *App) login(w http.ResponseWriter, r *http.Request) {
	userCredentials := &model.UserLogin{}
	if err := json.NewDecoder(r.Body).Decode(userCredentials); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	token, user, err := a.Access.Login(userCredentials.Username, userCredentials.Password)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

func (a *App) welcome(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, err.Error())
		return
	}

	user, err := a.Access.Profile(userID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	greeting := fmt.Sprintf("Hello %s, your phone is %s", user.FirstName, user.Username)
	respondWithResponse(w, http.StatusOK, greeting)
}
