package roster

import "github.com/mcoot/soccermanager/internal/model"

//go:generate mockgen -destination=../../dependencies/mocks/mock_roster.go -package=mocks -source=interface.go ServiceInterface

// ServiceInterface is the consumer-facing roster surface used by the menu
// and the API
type ServiceInterface interface {
	Create(name string, position model.Position, skillRating int) string
	Remove(name string) bool
	UpdateSkillRank(name string, skillRank int) string
	GetByName(name string) *model.Player
	Search(filter Filter) []*model.Player
	String() string
}

var (
	_ ServiceInterface = (*Service)(nil)
	_ ServiceInterface = (*Synchronized)(nil)
)
