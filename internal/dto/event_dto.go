package dto

import "time"

type CreateEventRequest struct {
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Date            time.Time `json:"date"`
	Location        string    `json:"location"`
	Category        string    `json:"category"`
	MaxParticipants *int      `json:"max_participants"`
	SkillsNeeded    []string  `json:"skills_needed"`
}

// UpdateEventRequest is a partial merge: zero-valued fields leave the
// stored value untouched, so an empty string or 0 cannot clear a field.
type UpdateEventRequest struct {
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Date            *time.Time `json:"date"`
	Location        string     `json:"location"`
	Category        string     `json:"category"`
	MaxParticipants *int       `json:"max_participants"`
	SkillsNeeded    []string   `json:"skills_needed"`
	Status          string     `json:"status"`
}

type EventFilters struct {
	Category string
	Location string
	Status   string
}
