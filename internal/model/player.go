package model

import "fmt"

// Skill rating bounds (inclusive)
const (
	MinSkillRating = 1
	MaxSkillRating = 100
)

// Player represents one roster member, keyed by Name
type Player struct {
	Name        string
	Position    Position
	SkillRating int
}

// String renders the player for single-player display
func (p *Player) String() string {
	return fmt.Sprintf("Name: %s, Position: %s, Skill Rating: %d", p.Name, p.Position, p.SkillRating)
}

// Line renders the player as a compact roster line
func (p *Player) Line() string {
	return fmt.Sprintf("%s - %s - %d", p.Name, p.Position, p.SkillRating)
}

// IsValidSkillRating reports whether rating is within the allowed range
func IsValidSkillRating(rating int) bool {
	return rating >= MinSkillRating && rating <= MaxSkillRating
}
