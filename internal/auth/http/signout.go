package http

import (
	"net/http"

	"github.com/ayurtrack/authd/pkg/authsdk"
	"github.com/ayurtrack/authd/pkg/httpx"
	"github.com/ayurtrack/authd/pkg/slogx"
)

type SignoutHandler struct{}

// ServeHTTP handles signout.
//
// Tokens are stateless so there is nothing to revoke server-side. The
// endpoint still requires a valid token; the acknowledgement is the client's
// cue to discard it. The token stays valid until its expiry.
//
//	@Summary		Sign out
//	@Description	Acknowledges signout for the authenticated user. Clients discard the token; it is not revoked server-side.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	authsdk.Envelope	"Signout successful"
//	@Failure		401	{object}	authsdk.Envelope	"Invalid or missing access token"
//	@Router			/api/v1/signout [post].
func (h *SignoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	slogx.FromContext(ctx).Info("user signed out", "username", httpx.UsernameFromCtx(ctx))

	httpx.WriteJSON(w, http.StatusOK, authsdk.Envelope{
		Status:  http.StatusOK,
		Message: "Signout successful",
	})
}
