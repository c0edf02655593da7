package http

import (
	"net/http"

	"github.com/MKhiriev/habit-tracker/internal/app"
	"github.com/MKhiriev/habit-tracker/internal/utils"
	"github.com/MKhiriev/habit-tracker/models"
)

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgAPIRunning}, http.StatusOK)
}

// health reports 200 when the storage answers a ping and 503 otherwise.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if h.services.HealthService != nil {
		if err := h.services.HealthService.Check(r.Context()); err != nil {
			utils.WriteJSON(w, models.StatusResponse{Status: app.StatusUnhealthy}, http.StatusServiceUnavailable)
			return
		}
	}

	utils.WriteJSON(w, models.StatusResponse{Status: app.StatusHealthy}, http.StatusOK)
}
