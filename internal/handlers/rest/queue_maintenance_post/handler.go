package queue_maintenance_post

import (
	"encoding/json"
	"net/http"

	"dispatch/internal/generated/dto"
	"dispatch/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.RunMaintenance(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.QueueMaintenanceResponse{
		Skipped:          report.Skipped,
		ScoresUpdated:    report.ScoresUpdated,
		Promoted:         report.Promoted,
		UpcomingNotified: report.UpcomingNotified,
		InvitationsReset: report.InvitationsReset,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
