package geo

import (
	"math"

	"dispatch/internal/entities"
)

const earthRadiusKm = 6371.0

// DistanceKm возвращает расстояние по большому кругу между двумя точками.
func DistanceKm(a, b entities.Coord) float64 {
	lat1 := radians(a.Lat)
	lat2 := radians(b.Lat)
	dLat := radians(b.Lat - a.Lat)
	dLng := radians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// ETAMinutes оценивает время в пути по прямой при средней скорости.
// Минимум одна минута, чтобы клиенту не показывать ноль.
func ETAMinutes(distanceKm, speedKmh float64) int {
	if speedKmh <= 0 || distanceKm <= 0 {
		return 1
	}
	minutes := int(math.Ceil(distanceKm / speedKmh * 60))
	if minutes < 1 {
		return 1
	}
	return minutes
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
