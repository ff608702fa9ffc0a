package storage

import (
	"github.com/mcoot/soccermanager/internal/model"
)

// Store defines the interface for the roster's backing collection.
// Keys are exact player names; List returns players in insertion order.
type Store interface {
	Save(player *model.Player)
	Get(name string) (*model.Player, bool)
	Delete(name string) bool
	List() []*model.Player
	Len() int
}
