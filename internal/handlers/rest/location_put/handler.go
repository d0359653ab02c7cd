package location_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"dispatch/internal/generated/dto"
	"dispatch/internal/service/driver"
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
	driverID := mux.Vars(r)["id"]

	var locationDTO dto.LocationUpdate
	err := json.NewDecoder(r.Body).Decode(&locationDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.RecordLocation(r.Context(), driverID, locationDTO.Lat, locationDTO.Lng)
	if err != nil {
		switch {
		case errors.Is(err, driver.ErrInvalidDriverID),
			errors.Is(err, driver.ErrInvalidCoordinates):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, driver.ErrDriverNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
