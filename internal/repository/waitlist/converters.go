package waitlist

import (
	"dispatch/internal/entities"
)

func ToDomain(w *WaitlistEntryDB) *entities.WaitlistEntry {
	if w == nil {
		return nil
	}

	return &entities.WaitlistEntry{
		ID:            w.ID,
		FirstName:     w.FirstName,
		LastName:      w.LastName,
		Email:         w.Email,
		RegionID:      w.RegionID,
		Points:        w.Points,
		PriorityScore: w.PriorityScore,
		Status:        entities.WaitlistStatusType(w.Status),
		EnrolledAt:    w.EnrolledAt,
		InvitedAt:     w.InvitedAt,
		UpdatedAt:     w.UpdatedAt,
	}
}

func ToDomainList(entriesDB []WaitlistEntryDB) []entities.WaitlistEntry {
	if len(entriesDB) == 0 {
		return []entities.WaitlistEntry{}
	}

	result := make([]entities.WaitlistEntry, len(entriesDB))
	for i, entryDB := range entriesDB {
		result[i] = *ToDomain(&entryDB)
	}
	return result
}
