package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/nzoschke/productivity/internal/ctxkeys"
	"github.com/nzoschke/productivity/internal/service"
	"github.com/nzoschke/productivity/internal/ui"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if !h.authService.Enabled() {
		ui.Error(w, http.StatusNotFound, "authentication is disabled")
		return
	}

	var in struct {
		Password string `json:"password"`
	}
	err := decode(r, &in)
	if err != nil {
		ui.Error(w, http.StatusBadRequest, "invalid request")
		return
	}

	token, expiry, err := h.authService.Login(in.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			ui.Error(w, http.StatusUnauthorized, "invalid password")
			return
		}
		slog.Error("failed to log in", "error", err)
		ui.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.authService.SetJWTCookie(w, token, expiry)
	ui.JSON(w, http.StatusOK, map[string]any{"authenticated": true, "expiresAt": expiry})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.ClearJWTCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// Session reports the login state and hands out the CSRF token that
// state-changing requests must echo in X-CSRF-Token.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	ui.JSON(w, http.StatusOK, map[string]any{
		"authenticated": ctxkeys.Authenticated(r.Context()),
		"authEnabled":   h.authService.Enabled(),
		"csrfToken":     ctxkeys.CSRFToken(r.Context()),
	})
}
