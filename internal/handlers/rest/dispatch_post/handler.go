package dispatch_post

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
	var dispatchDTO dto.DispatchRequest
	err := json.NewDecoder(r.Body).Decode(&dispatchDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, err := h.service.Dispatch(r.Context(), dispatchDTO.OrderID)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, dispatch.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.DispatchResponse{
		Outcome: result.Outcome.String(),
	}
	if result.Offer != nil {
		response.Offer = &dto.Offer{
			ID:        result.Offer.ID,
			OrderID:   result.Offer.OrderID,
			DriverID:  result.Offer.DriverID,
			Status:    result.Offer.Status.String(),
			ExpiresAt: result.Offer.ExpiresAt,
		}
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
