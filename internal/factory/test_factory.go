package factory

import (
	"github.com/mcoot/soccermanager/internal/model"
	"github.com/mcoot/soccermanager/internal/services/roster"
	"github.com/mcoot/soccermanager/internal/services/validation"
	"github.com/mcoot/soccermanager/internal/storage/memory"
	"github.com/mcoot/soccermanager/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// MemoryStorage is the concrete store behind the roster
	MemoryStorage *memory.Storage
}

// NewTestApp creates an App with a fresh in-memory store and a silent logger
func NewTestApp() *TestApp {
	store := memory.New()
	app := newWithDependencies(store, validation.NewCreateValidator(), testutil.NopLogger())

	return &TestApp{
		App:           app,
		MemoryStorage: store,
	}
}

// SeedPlayer is one entry of the test squad
type SeedPlayer struct {
	Name        string
	Position    model.Position
	SkillRating int
}

// TestSquad is a small roster covering every position
var TestSquad = []SeedPlayer{
	{"Alisson Becker", model.Goalkeeper, 89},
	{"Virgil van Dijk", model.Defender, 90},
	{"Andrew Robertson", model.Defender, 85},
	{"Alexis Mac Allister", model.Midfielder, 86},
	{"Dominik Szoboszlai", model.Midfielder, 84},
	{"Mohamed Salah", model.Forward, 91},
	{"Darwin Nunez", model.Forward, 80},
}

// LoadTestSquad adds TestSquad to the roster and returns the messages of
// any rejected players
func (t *TestApp) LoadTestSquad() []string {
	var failures []string
	for _, p := range TestSquad {
		outcome := t.Roster.CreateOutcome(p.Name, p.Position, p.SkillRating)
		if outcome.Kind != roster.OutcomeOK {
			failures = append(failures, outcome.Message)
		}
	}
	return failures
}
