package entities

import "time"

type WaitlistEntry struct {
	ID            string
	FirstName     string
	LastName      string
	Email         string
	RegionID      string
	Points        int
	PriorityScore int
	Status        WaitlistStatusType
	EnrolledAt    time.Time
	InvitedAt     *time.Time
	UpdatedAt     time.Time
}

type WaitlistStatusType string

const (
	WaitlistWaiting  WaitlistStatusType = "waitlist"
	WaitlistInvited  WaitlistStatusType = "invited"
	WaitlistApproved WaitlistStatusType = "approved"
)

func (s WaitlistStatusType) String() string {
	return string(s)
}

type WaitlistModify struct {
	ID            *string
	Points        *int
	PriorityScore *int
	Status        *WaitlistStatusType
	InvitedAt     *time.Time
	ClearInvited  bool
}
