// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/saarzint/candle-recall/internal/utils"
	"github.com/saarzint/candle-recall/models"
)

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r, "*Handler.profile")
	if !ok {
		return
	}

	profile, err := h.services.AccountService.Profile(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "*Handler.profile")
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) changeUsername(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r, "*Handler.changeUsername")
	if !ok {
		return
	}
	var req models.UsernameChangeRequest
	if !decodeJSON(w, r, &req, "*Handler.changeUsername") {
		return
	}

	profile, err := h.services.AccountService.ChangeUsername(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err, "*Handler.changeUsername")
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r, "*Handler.changePassword")
	if !ok {
		return
	}
	var req models.PasswordChangeRequest
	if !decodeJSON(w, r, &req, "*Handler.changePassword") {
		return
	}

	if err := h.services.AccountService.ChangePassword(r.Context(), id, req); err != nil {
		writeError(w, r, err, "*Handler.changePassword")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ── Email change wizard ──────────────────────────────────────────────────────

func (h *Handler) startEmailChange(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r, "*Handler.startEmailChange")
	if !ok {
		return
	}
	var req models.PasswordConfirmRequest
	if !decodeJSON(w, r, &req, "*Handler.startEmailChange") {
		return
	}

	state, err := h.services.AccountService.StartEmailChange(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err, "*Handler.startEmailChange")
		return
	}

	utils.WriteJSON(w, state, http.StatusOK)
}

func (h *Handler) verifyCurrentEmail(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r, "*Handler.verifyCurrentEmail")
	if !ok {
		return
	}
	var req models.CodeRequest
	if !decodeJSON(w, r, &req, "*Handler.verifyCurrentEmail") {
		return
	}

	state, err := h.services.AccountService.VerifyCurrentEmail(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err, "*Handler.verifyCurrentEmail")
		return
	}

	utils.WriteJSON(w, state, http.StatusOK)
}

func (h *Handler) submitNewEmail(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r, "*Handler.submitNewEmail")
	if !ok {
		return
	}
	var req models.NewEmailRequest
	if !decodeJSON(w, r, &req, "*Handler.submitNewEmail") {
		return
	}

	state, err := h.services.AccountService.SubmitNewEmail(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err, "*Handler.submitNewEmail")
		return
	}

	utils.WriteJSON(w, state, http.StatusOK)
}

func (h *Handler) confirmNewEmail(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r, "*Handler.confirmNewEmail")
	if !ok {
		return
	}
	var req models.CodeRequest
	if !decodeJSON(w, r, &req, "*Handler.confirmNewEmail") {
		return
	}

	profile, err := h.services.AccountService.ConfirmNewEmail(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err, "*Handler.confirmNewEmail")
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) resendEmailCode(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r, "*Handler.resendEmailCode")
	if !ok {
		return
	}

	state, err := h.services.AccountService.ResendEmailCode(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "*Handler.resendEmailCode")
		return
	}

	utils.WriteJSON(w, state, http.StatusOK)
}

// ── Account deletion ─────────────────────────────────────────────────────────

func (h *Handler) requestDeletionCode(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r, "*Handler.requestDeletionCode")
	if !ok {
		return
	}

	resp, err := h.services.AccountService.RequestDeletionCode(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "*Handler.requestDeletionCode")
		return
	}

	utils.WriteJSON(w, resp, http.StatusAccepted)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r, "*Handler.deleteAccount")
	if !ok {
		return
	}
	var req models.DeleteAccountRequest
	if !decodeJSON(w, r, &req, "*Handler.deleteAccount") {
		return
	}

	if err := h.services.AccountService.DeleteAccount(r.Context(), id, req); err != nil {
		writeError(w, r, err, "*Handler.deleteAccount")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
