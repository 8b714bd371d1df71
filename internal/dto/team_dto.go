package dto

type CreateTeamRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	IsPrivate   bool     `json:"is_private"`
	Focus       []string `json:"focus"`
}

// UpdateTeamRequest merges truthy fields; IsPrivate is a pointer so an
// explicit false still applies.
type UpdateTeamRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	IsPrivate   *bool    `json:"is_private"`
	Focus       []string `json:"focus"`
}
