package entities

import "time"

// Region ограничивает число активных водителей квотой.
type Region struct {
	ID             string
	Name           string
	ActiveQuota    int
	Status         RegionStatusType
	LastPromotedAt *time.Time
}

type RegionStatusType string

const (
	RegionActive  RegionStatusType = "active"
	RegionLimited RegionStatusType = "limited"
	RegionClosed  RegionStatusType = "closed"
)

func (s RegionStatusType) String() string {
	return string(s)
}
