package waitlist_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/generated/dto"
	"dispatch/internal/service/queue"
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
	var applyDTO dto.WaitlistApply
	err := json.NewDecoder(r.Body).Decode(&applyDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	entry := entities.WaitlistEntry{
		FirstName: applyDTO.FirstName,
		LastName:  applyDTO.LastName,
		Email:     applyDTO.Email,
		RegionID:  applyDTO.RegionID,
	}
	if applyDTO.Points != nil {
		entry.Points = *applyDTO.Points
	}

	enrolled, err := h.service.Apply(r.Context(), entry)
	if err != nil {
		switch {
		case errors.Is(err, queue.ErrMissingRequiredFields),
			errors.Is(err, queue.ErrInvalidEmail),
			errors.Is(err, queue.ErrInvalidRegionID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, queue.ErrAlreadyEnrolled):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.WaitlistApplyResponse{
		ID:            enrolled.ID,
		Status:        enrolled.Status.String(),
		PriorityScore: enrolled.PriorityScore,
		EnrolledAt:    enrolled.EnrolledAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
