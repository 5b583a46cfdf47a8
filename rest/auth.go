package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/dgrijalva/jwt-go"

	"github.com/juanFRANvelilla/backendTFG/model"
)

type contextKey string

const userContextKey = contextKey("user")

func (a *App) JwtVerify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			respondWithError(w, http.StatusUnauthorized, "Missing auth token")
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == "" {
			respondWithError(w, http.StatusUnauthorized, "Missing auth token")
			return
		}

		claims := &model.UserToken{}
		_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return a.jwtSecret, nil
		})
		if err != nil {
			respondWithError(w, http.StatusForbidden, err.Error())
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userIDFromRequest resolves the caller identity stored by JwtVerify.
func userIDFromRequest(r *http.Request) (int, error) {
	claims, ok := r.Context().Value(userContextKey).(*model.UserToken)
	if !ok {
		return 0, errors.New("no user in request context")
	}
	return strconv.Atoi(claims.UserID)
}
