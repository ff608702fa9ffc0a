package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w (stdout if nil)
func NewOutput(format string, w io.Writer) *Output {
	if w == nil {
		w = os.Stdout
	}
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		o.printJSON(map[string]string{"message": msg})
	} else {
		_, _ = fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case PlayerList:
		o.printPlayerList(v)
	case Mutation:
		o.printMutation(v)
	case Roster:
		o.printRoster(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	Name        string `json:"name"`
	Position    string `json:"position"`
	PositionID  int    `json:"position_id"`
	SkillRating int    `json:"skill_rating"`
}

// PlayerList response type
type PlayerList struct {
	Players []Player `json:"players"`
}

// Mutation is the response to create and skill update calls
type Mutation struct {
	Message string  `json:"message"`
	Player  *Player `json:"player,omitempty"`
}

// Roster response type
type Roster struct {
	Roster string `json:"roster"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	_, _ = fmt.Fprintf(o.w, "Name: %s, Position: %s, Skill Rating: %d\n", p.Name, p.Position, p.SkillRating)
}

func (o *Output) printPlayerList(l PlayerList) {
	if len(l.Players) == 0 {
		_, _ = fmt.Fprintln(o.w, "No players found")
		return
	}

	table := tablewriter.NewWriter(o.w)
	table.Header("Name", "Position", "Skill Rating")
	for _, p := range l.Players {
		_ = table.Append([]string{p.Name, p.Position, strconv.Itoa(p.SkillRating)})
	}
	_ = table.Render()
}

func (o *Output) printMutation(m Mutation) {
	_, _ = fmt.Fprintln(o.w, m.Message)
}

func (o *Output) printRoster(r Roster) {
	if r.Roster == "" {
		_, _ = fmt.Fprintln(o.w, "Roster is empty")
		return
	}
	_, _ = fmt.Fprintln(o.w, r.Roster)
}

func (o *Output) printHealthResult(h HealthResult) {
	_, _ = fmt.Fprintf(o.w, "Server status: %s\n", h.Status)
}
