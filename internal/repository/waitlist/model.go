package waitlist

import "time"

type WaitlistEntryDB struct {
	ID            string
	FirstName     string
	LastName      string
	Email         string
	RegionID      string
	Points        int
	PriorityScore int
	Status        string
	EnrolledAt    time.Time
	InvitedAt     *time.Time
	UpdatedAt     time.Time
}
