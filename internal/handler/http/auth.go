package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/habit-tracker/internal/app"
	"github.com/MKhiriev/habit-tracker/internal/logger"
	"github.com/MKhiriev/habit-tracker/internal/utils"
	"github.com/MKhiriev/habit-tracker/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Detail: app.MsgInvalidJSON}, http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.Register(ctx, credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", token.Claims.Subject()).Msg("user successfully registered")

	utils.WriteJSON(w, models.NewAccessTokenResponse(token), http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Detail: app.MsgInvalidJSON}, http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", token.Claims.Subject()).Msg("user successfully logged in")

	utils.WriteJSON(w, models.NewAccessTokenResponse(token), http.StatusOK)
}

// me returns the account resolved by the auth middleware.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Err(ErrNoUserInContext).Msg("protected route without auth middleware")
		utils.WriteJSON(w, models.ErrorResponse{Detail: app.MsgInternalServerError}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.NewUserOut(user), http.StatusOK)
}
