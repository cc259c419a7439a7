package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ayurtrack/authd/internal/auth/service"
	"github.com/ayurtrack/authd/pkg/authsdk"
	"github.com/ayurtrack/authd/pkg/httpx"
	"github.com/ayurtrack/authd/pkg/slogx"
)

type SigninHandler struct {
	UserService  *service.UserService
	TokenService *service.TokenService
}

// ServeHTTP handles credential exchange for a bearer token.
//
//	@Summary		Sign in with username and password
//	@Description	Verifies credentials and returns a one-hour JWT access token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.SigninRequest	true	"username, password"
//	@Success		200		{object}	authsdk.Envelope		"Signin successful (token included)"
//	@Failure		400		{object}	authsdk.Envelope		"Invalid input (per-field errors map)"
//	@Failure		401		{object}	authsdk.Envelope		"Username is incorrect / Password is incorrect"
//	@Failure		500		{object}	authsdk.Envelope		"Internal server error"
//	@Router			/api/v1/signin [post].
func (h *SigninHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req authsdk.SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidInput(w, map[string]string{"body": "must be valid JSON"})
		return
	}

	if fieldErrs := req.Validate(); len(fieldErrs) > 0 {
		writeInvalidInput(w, fieldErrs)
		return
	}

	user, err := h.UserService.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownUsername):
			writeUnauthorized(w, "Username is incorrect")
		case errors.Is(err, service.ErrPasswordIncorrect):
			writeUnauthorized(w, "Password is incorrect")
		default:
			log.Error("signin failed", "username", req.Username, "err", err)
			writeServerError(w)
		}
		return
	}

	token, err := h.TokenService.Issue(user)
	if err != nil {
		log.Error("token issue failed", "username", user.Username, "err", err)
		writeServerError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.Envelope{
		Status:  http.StatusOK,
		Message: "Signin successful",
		Data:    &authsdk.UserData{Username: user.Username},
		Token:   token,
	})
}
