package driver_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/entities"
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
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var driverUpdateDTO dto.DriverUpdate
	err := json.NewDecoder(r.Body).Decode(&driverUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	driverModifyEntity := entities.DriverModify{
		ID: &driverUpdateDTO.ID,
	}

	// Опциональные параметры
	if driverUpdateDTO.FirstName != nil {
		driverModifyEntity.FirstName = driverUpdateDTO.FirstName
	}
	if driverUpdateDTO.LastName != nil {
		driverModifyEntity.LastName = driverUpdateDTO.LastName
	}
	if driverUpdateDTO.Email != nil {
		driverModifyEntity.Email = driverUpdateDTO.Email
	}
	if driverUpdateDTO.Online != nil {
		driverModifyEntity.Online = driverUpdateDTO.Online
	}
	if driverUpdateDTO.AcceptingOrders != nil {
		driverModifyEntity.AcceptingOrders = driverUpdateDTO.AcceptingOrders
	}
	if driverUpdateDTO.Rating != nil {
		driverModifyEntity.Rating = driverUpdateDTO.Rating
	}
	if driverUpdateDTO.Level != nil {
		driverModifyEntity.Level = driverUpdateDTO.Level
	}

	res, err := h.service.UpdateDriver(r.Context(), driverModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, driver.ErrMissingRequiredFields),
			errors.Is(err, driver.ErrInvalidDriverID),
			errors.Is(err, driver.ErrInvalidName),
			errors.Is(err, driver.ErrInvalidEmail),
			errors.Is(err, driver.ErrInvalidRating),
			errors.Is(err, driver.ErrInvalidLevel):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, driver.ErrDriverNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, driver.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Driver{
		ID:              res.ID,
		FirstName:       res.FirstName,
		LastName:        res.LastName,
		Email:           res.Email,
		Online:          res.Online,
		AcceptingOrders: res.AcceptingOrders,
		Rating:          res.Rating,
		Level:           res.Level,
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
