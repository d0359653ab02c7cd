package offer_score

import (
	"dispatch/internal/entities"
)

const (
	defaultRatingWeight      = 10.0
	defaultLevelWeight       = 10.0
	defaultProximityBudget   = 30.0
	defaultDistancePenaltyKm = 3.0
)

// ScoreFactory считает очки кандидата на момент оффера.
// Чем выше рейтинг и уровень и чем ближе водитель, тем выше счёт;
// штраф за дистанцию линейный с полом в ноль.
type ScoreFactory struct {
	ratingWeight      float64
	levelWeight       float64
	proximityBudget   float64
	distancePenaltyKm float64
}

func New() *ScoreFactory {
	return &ScoreFactory{
		ratingWeight:      defaultRatingWeight,
		levelWeight:       defaultLevelWeight,
		proximityBudget:   defaultProximityBudget,
		distancePenaltyKm: defaultDistancePenaltyKm,
	}
}

func (f *ScoreFactory) CalculateScore(driver entities.Driver, distanceKm float64) float64 {
	ratingScore := driver.Rating * f.ratingWeight
	levelScore := float64(driver.Level) * f.levelWeight

	proximityScore := f.proximityBudget - distanceKm*f.distancePenaltyKm
	if proximityScore < 0 {
		proximityScore = 0
	}

	return ratingScore + levelScore + proximityScore
}
