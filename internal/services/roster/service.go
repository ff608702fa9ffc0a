package roster

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/mcoot/soccermanager/internal/model"
	"github.com/mcoot/soccermanager/internal/services/validation"
	"github.com/mcoot/soccermanager/internal/storage"
	"github.com/mcoot/soccermanager/internal/storage/memory"
)

// Messages returned by UpdateSkillRank
const (
	MsgNameRequired = "Name is required"
	MsgSkillRank    = "Skill Rank must be between 1 and 100"
)

// OutcomeKind classifies the result of a roster mutation
type OutcomeKind int

const (
	OutcomeOK OutcomeKind = iota
	OutcomeInvalid
	OutcomeDuplicate
	OutcomeNotFound
)

// Outcome pairs the human-readable result of a mutation with its kind
type Outcome struct {
	Kind    OutcomeKind
	Message string
}

// Filter selects players in Search. Zero-valued fields are not applied.
type Filter struct {
	// Name keeps players whose name contains it, ignoring case
	Name string
	// Position keeps players in that position; undefined positions are ignored
	Position model.Position
}

// Service owns the roster of players and its operations.
// It is not safe for concurrent use; see Synchronized.
type Service struct {
	store     storage.Store
	validator validation.Validator
	logger    *slog.Logger
}

// New creates an empty roster. It panics if validator is nil.
func New(validator validation.Validator, logger *slog.Logger) *Service {
	return NewWithStore(memory.New(), validator, logger)
}

// NewWithStore creates a roster backed by the given store
func NewWithStore(store storage.Store, validator validation.Validator, logger *slog.Logger) *Service {
	if validator == nil {
		panic("roster: validator is required")
	}
	if store == nil {
		panic("roster: store is required")
	}
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Service{
		store:     store,
		validator: validator,
		logger:    logger.With(slog.String("component", "roster")),
	}
}

// Create validates and adds a player, returning the result message
func (s *Service) Create(name string, position model.Position, skillRating int) string {
	return s.CreateOutcome(name, position, skillRating).Message
}

// CreateOutcome is Create with the kind of result attached
func (s *Service) CreateOutcome(name string, position model.Position, skillRating int) Outcome {
	player := &model.Player{
		Name:        name,
		Position:    position,
		SkillRating: skillRating,
	}

	if violations := s.validator.Validate(player); len(violations) > 0 {
		s.logger.Debug("player rejected",
			slog.String("name", name),
			slog.Int("violations", len(violations)),
		)
		return Outcome{OutcomeInvalid, strings.Join(violations, "\n")}
	}

	if _, exists := s.store.Get(name); exists {
		return Outcome{OutcomeDuplicate, fmt.Sprintf("Player with name %s already exists", name)}
	}

	s.store.Save(player)
	s.logger.Info("player added",
		slog.String("name", name),
		slog.String("position", position.String()),
		slog.Int("skill_rating", skillRating),
	)
	return Outcome{OutcomeOK, fmt.Sprintf("Player %s added successfully", name)}
}

// Remove deletes the named player, reporting whether it existed
func (s *Service) Remove(name string) bool {
	removed := s.store.Delete(name)
	if removed {
		s.logger.Info("player removed", slog.String("name", name))
	}
	return removed
}

// UpdateSkillRank sets a player's skill rating, returning the result message
func (s *Service) UpdateSkillRank(name string, skillRank int) string {
	return s.UpdateSkillRankOutcome(name, skillRank).Message
}

// UpdateSkillRankOutcome is UpdateSkillRank with the kind of result attached.
// Checks short-circuit in order: name, rating range, existence.
func (s *Service) UpdateSkillRankOutcome(name string, skillRank int) Outcome {
	if strings.TrimSpace(name) == "" {
		return Outcome{OutcomeInvalid, MsgNameRequired}
	}
	if !model.IsValidSkillRating(skillRank) {
		return Outcome{OutcomeInvalid, MsgSkillRank}
	}

	player, ok := s.store.Get(name)
	if !ok {
		return Outcome{OutcomeNotFound, fmt.Sprintf("Unable to find player with name %s", name)}
	}

	player.SkillRating = skillRank
	s.logger.Info("skill rating updated",
		slog.String("name", name),
		slog.Int("skill_rating", skillRank),
	)
	return Outcome{OutcomeOK, fmt.Sprintf("%s updated successfully", player.Name)}
}

// GetByName returns the stored player or nil. The result is the live
// roster entry, not a copy.
func (s *Service) GetByName(name string) *model.Player {
	player, ok := s.store.Get(name)
	if !ok {
		return nil
	}
	return player
}

// Search returns the players matching filter in insertion order
func (s *Service) Search(filter Filter) []*model.Player {
	usePosition := filter.Position.IsValid()

	result := make([]*model.Player, 0, s.store.Len())
	for _, p := range s.store.List() {
		if filter.Name != "" && !containsFold(p.Name, filter.Name) {
			continue
		}
		if usePosition && p.Position != filter.Position {
			continue
		}
		result = append(result, p)
	}
	return result
}

// Len returns the number of players on the roster
func (s *Service) Len() int {
	return s.store.Len()
}

// String renders every player as "{name} - {position} - {skill}", one per line
func (s *Service) String() string {
	players := s.store.List()
	lines := make([]string, len(players))
	for i, p := range players {
		lines[i] = p.Line()
	}
	return strings.Join(lines, "\n")
}

// containsFold reports whether substr is within s under simple Unicode
// case folding
func containsFold(s, substr string) bool {
	n := utf8.RuneCountInString(substr)
	for i := range s {
		if prefixFold(s[i:], substr, n) {
			return true
		}
	}
	return false
}

func prefixFold(s, prefix string, runes int) bool {
	end := 0
	for k := 0; k < runes; k++ {
		if end >= len(s) {
			return false
		}
		_, size := utf8.DecodeRuneInString(s[end:])
		end += size
	}
	return strings.EqualFold(s[:end], prefix)
}
