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

type SignupHandler struct {
	UserService *service.UserService
}

// ServeHTTP handles account creation.
//
//	@Summary		Register a new account
//	@Description	Creates a user with a unique username and a bcrypt-hashed password.
//	@Description	Returns 409 when the username is already taken.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.SignupRequest	true	"username, password, confirmPassword"
//	@Success		201		{object}	authsdk.Envelope		"Signup successful"
//	@Failure		400		{object}	authsdk.Envelope		"Invalid input (per-field errors map)"
//	@Failure		409		{object}	authsdk.Envelope		"User already exists"
//	@Failure		500		{object}	authsdk.Envelope		"Internal server error"
//	@Router			/api/v1/signup [post].
func (h *SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req authsdk.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidInput(w, map[string]string{"body": "must be valid JSON"})
		return
	}

	if fieldErrs := req.Validate(); len(fieldErrs) > 0 {
		writeInvalidInput(w, fieldErrs)
		return
	}

	user, err := h.UserService.Signup(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			httpx.WriteJSON(w, http.StatusConflict, authsdk.Envelope{
				Status:  http.StatusConflict,
				Message: "User already exists",
			})
			return
		}
		log.Error("signup failed", "username", req.Username, "err", err)
		writeServerError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, authsdk.Envelope{
		Status:  http.StatusCreated,
		Message: "Signup successful",
		Data:    &authsdk.UserData{Username: user.Username},
	})
}

func writeInvalidInput(w http.ResponseWriter, fieldErrs map[string]string) {
	httpx.WriteJSON(w, http.StatusBadRequest, authsdk.Envelope{
		Status:  http.StatusBadRequest,
		Message: "Invalid input",
		Errors:  fieldErrs,
	})
}

func writeServerError(w http.ResponseWriter) {
	httpx.WriteJSON(w, http.StatusInternalServerError, authsdk.Envelope{
		Status:  http.StatusInternalServerError,
		Message: "Internal server error",
	})
}
