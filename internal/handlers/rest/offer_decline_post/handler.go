package offer_decline_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/generated/dto"
	"dispatch/internal/service/dispatch"
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
	var declineDTO dto.OfferActionRequest
	err := json.NewDecoder(r.Body).Decode(&declineDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.DeclineOffer(r.Context(), declineDTO.OrderID, declineDTO.DriverID)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrInvalidOrderID),
			errors.Is(err, dispatch.ErrInvalidDriverID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, dispatch.ErrOfferNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
