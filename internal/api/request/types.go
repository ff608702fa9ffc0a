package request

// CreatePlayerRequest is the request body for adding a player.
// Position is the ordinal (1-4).
type CreatePlayerRequest struct {
	Name        string `json:"name"`
	Position    int    `json:"position"`
	SkillRating int    `json:"skill_rating"`
}

// UpdateSkillRequest is the request body for changing a player's skill rating
type UpdateSkillRequest struct {
	SkillRating int `json:"skill_rating"`
}
