package memory

import (
	"slices"

	"github.com/mcoot/soccermanager/internal/model"
	"github.com/mcoot/soccermanager/internal/storage"
)

// Storage is an in-memory, insertion-ordered implementation of the store.
// It is not safe for concurrent use.
type Storage struct {
	players map[string]*model.Player
	order   []string
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players: make(map[string]*model.Player),
	}
}

// Ensure Storage implements the interface
var _ storage.Store = (*Storage)(nil)

// Save stores the player under its name. Replacing an existing name keeps
// its original position in the iteration order.
func (s *Storage) Save(player *model.Player) {
	if _, ok := s.players[player.Name]; !ok {
		s.order = append(s.order, player.Name)
	}
	s.players[player.Name] = player
}

func (s *Storage) Get(name string) (*model.Player, bool) {
	player, ok := s.players[name]
	return player, ok
}

func (s *Storage) Delete(name string) bool {
	if _, ok := s.players[name]; !ok {
		return false
	}
	delete(s.players, name)
	if i := slices.Index(s.order, name); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
	return true
}

// List returns the stored players in insertion order. The slice is new but
// the players are the stored instances.
func (s *Storage) List() []*model.Player {
	result := make([]*model.Player, 0, len(s.order))
	for _, name := range s.order {
		result = append(result, s.players[name])
	}
	return result
}

func (s *Storage) Len() int {
	return len(s.players)
}
