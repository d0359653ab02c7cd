package offer_accept_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/generated/dto"
	"dispatch/internal/service/dispatch"
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
	var acceptDTO dto.OfferActionRequest
	err := json.NewDecoder(r.Body).Decode(&acceptDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	offerEntity, err := h.service.AcceptOffer(r.Context(), acceptDTO.OrderID, acceptDTO.DriverID)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrInvalidOrderID),
			errors.Is(err, dispatch.ErrInvalidDriverID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, dispatch.ErrOfferNotFound),
			errors.Is(err, dispatch.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, dispatch.ErrOrderNoLongerAvailable):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Offer{
		ID:                  offerEntity.ID,
		OrderID:             offerEntity.OrderID,
		DriverID:            offerEntity.DriverID,
		Status:              offerEntity.Status.String(),
		ExpiresAt:           offerEntity.ExpiresAt,
		ResponseTimeSeconds: offerEntity.ResponseTimeSeconds,
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
