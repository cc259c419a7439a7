package http

import (
	"net/http"

	"github.com/ayurtrack/authd/pkg/authsdk"
	"github.com/ayurtrack/authd/pkg/httpx"
)

type MeHandler struct{}

// ServeHTTP returns the identity of the authenticated caller.
//
//	@Summary		Get current user
//	@Description	Returns the username bound to the presented access token.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	authsdk.Envelope	"data.username of the caller"
//	@Failure		401	{object}	authsdk.Envelope	"Invalid or missing access token"
//	@Router			/api/v1/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	username := httpx.UsernameFromCtx(ctx)
	if username == "" {
		writeUnauthorized(w, "Token is invalid or expired")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.Envelope{
		Status: http.StatusOK,
		Data:   &authsdk.UserData{Username: username},
	})
}
