package dto

type CreateHelpRequestRequest struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Location       string   `json:"location"`
	Urgency        string   `json:"urgency"`
	SkillsRequired []string `json:"skills_required"`
}

// UpdateHelpRequestRequest follows the same truthy-replace merge policy as
// event updates.
type UpdateHelpRequestRequest struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Location       string   `json:"location"`
	Urgency        string   `json:"urgency"`
	SkillsRequired []string `json:"skills_required"`
	Status         string   `json:"status"`
}

// OfferHelpRequest carries an optional message; no offer record is stored.
type OfferHelpRequest struct {
	Message string `json:"message"`
}

type HelpRequestFilters struct {
	Urgency  string
	Status   string
	Location string
}
