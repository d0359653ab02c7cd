package driver_post

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
	var driverCreateDTO dto.DriverCreate
	err := json.NewDecoder(r.Body).Decode(&driverCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	driverModifyEntity := entities.DriverModify{
		FirstName: &driverCreateDTO.FirstName,
		LastName:  &driverCreateDTO.LastName,
		Email:     &driverCreateDTO.Email,
		Rating:    driverCreateDTO.Rating,
		Level:     driverCreateDTO.Level,
	}

	id, err := h.service.CreateDriver(r.Context(), driverModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, driver.ErrMissingRequiredFields),
			errors.Is(err, driver.ErrInvalidName),
			errors.Is(err, driver.ErrInvalidEmail),
			errors.Is(err, driver.ErrInvalidRating),
			errors.Is(err, driver.ErrInvalidLevel):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, driver.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.DriverCreateResponse{
		ID: id,
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
