package drivers_get

import (
	"encoding/json"
	"net/http"
	"strconv"

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
	availableOnly := false
	if raw := r.URL.Query().Get("available"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		availableOnly = parsed
	}

	driverEntities, err := h.service.GetDrivers(r.Context(), availableOnly)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	driverDTOs := make([]dto.Driver, len(driverEntities))
	for i, driverEntity := range driverEntities {
		driverDTOs[i].ID = driverEntity.ID
		driverDTOs[i].FirstName = driverEntity.FirstName
		driverDTOs[i].LastName = driverEntity.LastName
		driverDTOs[i].Email = driverEntity.Email
		driverDTOs[i].Online = driverEntity.Online
		driverDTOs[i].AcceptingOrders = driverEntity.AcceptingOrders
		driverDTOs[i].Rating = driverEntity.Rating
		driverDTOs[i].Level = driverEntity.Level
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(driverDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
