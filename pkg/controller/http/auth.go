package http

import (
	"net/http"

	"github.com/geunaseh/jeumala/pkg/domain/model/auth"
	"github.com/geunaseh/jeumala/pkg/usecase"
)

type AuthUseCase = usecase.AuthUseCaseInterface

// authSignupHandler creates an admin account
func authSignupHandler(authUC AuthUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input usecase.SignupInput
		if err := decodeJSON(w, r, &input); err != nil {
			handleError(r.Context(), w, err)
			return
		}

		result, err := authUC.Signup(r.Context(), input)
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}
		writeJSON(r.Context(), w, http.StatusOK, result)
	}
}

// authLoginHandler exchanges credentials for a bearer token
func authLoginHandler(authUC AuthUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input usecase.LoginInput
		if err := decodeJSON(w, r, &input); err != nil {
			handleError(r.Context(), w, err)
			return
		}

		result, err := authUC.Login(r.Context(), input)
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}
		writeJSON(r.Context(), w, http.StatusOK, result)
	}
}

// authMeHandler returns current user information
func authMeHandler(authUC AuthUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := auth.TokenFromContext(r.Context())
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}

		user, err := authUC.CurrentUser(r.Context(), token)
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}
		writeJSON(r.Context(), w, http.StatusOK, user)
	}
}
