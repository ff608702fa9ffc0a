package roster

import (
	"sync"

	"github.com/mcoot/soccermanager/internal/model"
)

// Synchronized guards a Service with a mutex so it can be shared between
// goroutines. GetByName and Search return copies, so callers cannot mutate
// roster state outside the lock.
type Synchronized struct {
	mu      sync.RWMutex
	service *Service
}

// NewSynchronized wraps service for concurrent use
func NewSynchronized(service *Service) *Synchronized {
	if service == nil {
		panic("roster: service is required")
	}
	return &Synchronized{service: service}
}

func (s *Synchronized) Create(name string, position model.Position, skillRating int) string {
	return s.CreateOutcome(name, position, skillRating).Message
}

func (s *Synchronized) CreateOutcome(name string, position model.Position, skillRating int) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.service.CreateOutcome(name, position, skillRating)
}

func (s *Synchronized) Remove(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.service.Remove(name)
}

func (s *Synchronized) UpdateSkillRank(name string, skillRank int) string {
	return s.UpdateSkillRankOutcome(name, skillRank).Message
}

func (s *Synchronized) UpdateSkillRankOutcome(name string, skillRank int) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.service.UpdateSkillRankOutcome(name, skillRank)
}

func (s *Synchronized) GetByName(name string) *model.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player := s.service.GetByName(name)
	if player == nil {
		return nil
	}
	cp := *player
	return &cp
}

func (s *Synchronized) Search(filter Filter) []*model.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := s.service.Search(filter)
	result := make([]*model.Player, len(players))
	for i, p := range players {
		cp := *p
		result[i] = &cp
	}
	return result
}

func (s *Synchronized) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.service.Len()
}

func (s *Synchronized) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.service.String()
}
