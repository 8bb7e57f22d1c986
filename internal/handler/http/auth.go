package http

import (
	"fmt"
	"net/http"

	"github.com/saarzint/candle-recall/internal/logger"
	"github.com/saarzint/candle-recall/internal/utils"
	"github.com/saarzint/candle-recall/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if !decodeJSON(w, r, &req, "*Handler.register") {
		return
	}

	user, err := h.services.AuthService.RegisterUser(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "*Handler.register")
		return
	}

	h.issueToken(w, r, user, http.StatusCreated, "*Handler.register")
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeJSON(w, r, &req, "*Handler.login") {
		return
	}

	user, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "*Handler.login")
		return
	}

	logger.FromRequest(r).Debug().Int64("id", user.UserID).Msg("user successfully logged in")
	h.issueToken(w, r, user, http.StatusOK, "*Handler.login")
}

// issueToken sends the bearer token in the Authorization header and the
// body, together with the profile.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request, user models.User, status int, fn string) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeError(w, r, err, fn)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.AuthResponse{Token: token.SignedString, Profile: user.Profile()}, status)
}

func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ForgotPasswordRequest
	if !decodeJSON(w, r, &req, "*Handler.forgotPassword") {
		return
	}

	resp, err := h.services.AuthService.ForgotPassword(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "*Handler.forgotPassword")
		return
	}

	utils.WriteJSON(w, resp, http.StatusAccepted)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordRequest
	if !decodeJSON(w, r, &req, "*Handler.resetPassword") {
		return
	}

	if err := h.services.AuthService.ResetPassword(r.Context(), req); err != nil {
		writeError(w, r, err, "*Handler.resetPassword")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
