package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-market-keeper/internal/logger"
	"github.com/MKhiriev/go-market-keeper/internal/utils"
	"github.com/MKhiriev/go-market-keeper/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := h.decodeAndValidate(w, r, &credentials); err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.Authenticate(ctx, credentials.Username, credentials.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("admin_id", token.AdminID).Msg("admin logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.LoginResponse{
		Token:     token.SignedString,
		ExpiresAt: token.ExpiresAt.UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	adminID, ok := utils.GetAdminIDFromContext(r.Context())
	if !ok {
		unauthorized(w)
		return
	}

	utils.WriteJSON(w, models.MeResponse{AdminID: adminID}, http.StatusOK)
}

func (h *Handler) createAdmin(w http.ResponseWriter, r *http.Request) {
	var input models.AdminInput
	if err := h.decodeAndValidate(w, r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	admin, err := h.services.AuthService.CreateAdmin(r.Context(), input.Username, input.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, admin, http.StatusCreated)
}

func (h *Handler) deleteAdmin(w http.ResponseWriter, r *http.Request) {
	adminID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.AuthService.DeleteAdmin(r.Context(), adminID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
