package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/techpulse/internal/domain"
	"github.com/kahvecikaan/techpulse/internal/service"
)

type AuthHandler struct {
	authService service.AuthService
	logger      hclog.Logger
}

func NewAuthHandler(as service.AuthService, log hclog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: as,
		logger:      log,
	}
}

// SignIn handles POST /auth/signin
//
// swagger:route POST /auth/signin auth signIn
//
// Signs a shopper in, registering them on first use, and returns a session token.
//
// Responses:
//
//	200: signInResponse
//	400: errorResponse
//	422: validationErrorResponse
//	500: errorResponse
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	req, ok := bodyFromContext[domain.SignInRequest](r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid sign-in request")
		return
	}

	token, user, err := h.authService.SignIn(r.Context(), req.Email, req.Name)
	if err != nil {
		h.logger.Error("Error signing in", "error", err)
		writeError(w, http.StatusInternalServerError, "unable to sign in")
		return
	}

	json.NewEncoder(w).Encode(SignInResponse{Token: token, User: user})
}

// SignOut handles POST /auth/signout
//
// swagger:route POST /auth/signout auth signOut
//
// Revokes the caller's session token.
//
// Responses:
//
//	204: noContentResponse
//	401: errorResponse
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	err := h.authService.SignOut(r.Context(), sessionFromContext(r))
	if err != nil {
		if errors.Is(err, domain.ErrUnauthenticated) {
			writeError(w, http.StatusUnauthorized, err.Error())
			return
		}
		h.logger.Error("Error signing out", "error", err)
		writeError(w, http.StatusInternalServerError, "unable to sign out")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
