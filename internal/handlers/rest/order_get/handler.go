package order_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

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
	orderID := mux.Vars(r)["id"]

	orderEntity, err := h.service.GetOrder(r.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, dispatch.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	orderDTO := dto.Order{
		ID:               orderEntity.ID,
		RestaurantName:   orderEntity.RestaurantName,
		PickupAddress:    orderEntity.PickupAddress,
		DropoffAddress:   orderEntity.DropoffAddress,
		PayoutCents:      orderEntity.PayoutCents,
		DistanceKm:       orderEntity.DistanceKm,
		Status:           orderEntity.Status.String(),
		AssignedCraverID: orderEntity.AssignedCraverID,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(orderDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
