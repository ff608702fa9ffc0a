package response

import (
	"github.com/mcoot/soccermanager/internal/model"
)

// Player represents a player in API responses
type Player struct {
	Name        string `json:"name"`
	Position    string `json:"position"`
	PositionID  int    `json:"position_id"`
	SkillRating int    `json:"skill_rating"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		Name:        p.Name,
		Position:    p.Position.String(),
		PositionID:  int(p.Position),
		SkillRating: p.SkillRating,
	}
}

// PlayerList is the response for search
type PlayerList struct {
	Players []Player `json:"players"`
}

// PlayerListFromModel converts a slice of players, never producing a nil list
func PlayerListFromModel(players []*model.Player) PlayerList {
	list := make([]Player, len(players))
	for i, p := range players {
		list[i] = PlayerFromModel(p)
	}
	return PlayerList{Players: list}
}

// MutationResponse carries the roster's result message and, when available,
// the affected player
type MutationResponse struct {
	Message string  `json:"message"`
	Player  *Player `json:"player,omitempty"`
}

// RosterResponse is the rendered roster text
type RosterResponse struct {
	Roster string `json:"roster"`
}

// HealthResponse is the health check response
type HealthResponse struct {
	Status string `json:"status"`
}
