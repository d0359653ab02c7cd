package driver

import (
	"strings"

	"dispatch/internal/entities"
)

func isValidID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}

func isValidRating(rating float64) bool {
	return rating >= entities.DriverMinRating && rating <= entities.DriverMaxRating
}

func isValidLevel(level int) bool {
	return level >= entities.DriverMinLevel
}

func isValidCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
