package queue_score

import (
	"time"
)

const (
	defaultTenureRate     = 2
	defaultTenureBonusCap = 50
)

// ScoreFactory считает приоритет в очереди активации.
// Бонус за выслугу растёт линейно и упирается в потолок: ожидание
// улучшает позицию, но не перевешивает набранные баллы бесконечно.
type ScoreFactory struct {
	tenureRate     int
	tenureBonusCap int
}

func New() *ScoreFactory {
	return &ScoreFactory{
		tenureRate:     defaultTenureRate,
		tenureBonusCap: defaultTenureBonusCap,
	}
}

func (f *ScoreFactory) CalculateScore(points int, enrolledAt, now time.Time, referralPoints int) int {
	tenureDays := int(now.Sub(enrolledAt).Hours() / 24)
	if tenureDays < 0 {
		tenureDays = 0
	}

	tenureBonus := tenureDays * f.tenureRate
	if tenureBonus > f.tenureBonusCap {
		tenureBonus = f.tenureBonusCap
	}

	return points + tenureBonus + referralPoints
}
