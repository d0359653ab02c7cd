package driver_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"dispatch/internal/generated/dto"
	"dispatch/internal/service/driver"
	"dispatch/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	driverEntity, err := h.service.GetDriver(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, driver.ErrDriverNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, driver.ErrInvalidDriverID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	driverDTO := dto.Driver{
		ID:              driverEntity.ID,
		FirstName:       driverEntity.FirstName,
		LastName:        driverEntity.LastName,
		Email:           driverEntity.Email,
		Online:          driverEntity.Online,
		AcceptingOrders: driverEntity.AcceptingOrders,
		Rating:          driverEntity.Rating,
		Level:           driverEntity.Level,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(driverDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
