package entities

import "time"

// Offer связывает заказ с кандидатом. Записи не перезаписываются:
// статус двигается только вперёд, для аудита остаётся вся цепочка.
type Offer struct {
	ID                  int64
	OrderID             string
	DriverID            string
	Status              OfferStatusType
	ExpiresAt           time.Time
	ResponseTimeSeconds *int
	CreatedAt           time.Time
}

type OfferStatusType string

const (
	OfferPending    OfferStatusType = "pending"
	OfferAccepted   OfferStatusType = "accepted"
	OfferDeclined   OfferStatusType = "declined"
	OfferExpired    OfferStatusType = "expired"
	OfferSuperseded OfferStatusType = "superseded"
)

func (s OfferStatusType) String() string {
	return string(s)
}

// Open сообщает, ждёт ли оффер ответа с учётом дедлайна.
func (o Offer) Open(now time.Time) bool {
	return o.Status == OfferPending && o.ExpiresAt.After(now)
}

// Candidate — строка ранжирования при диспетчеризации.
type Candidate struct {
	Driver     Driver
	DistanceKm float64
	Score      float64
}
