package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Position is the role a player occupies, stored as its ordinal (1-4)
type Position int

const (
	Goalkeeper Position = iota + 1
	Defender
	Midfielder
	Forward
)

var positionNames = map[Position]string{
	Goalkeeper: "Goalkeeper",
	Defender:   "Defender",
	Midfielder: "Midfielder",
	Forward:    "Forward",
}

// Positions returns every defined position in ordinal order
func Positions() []Position {
	return []Position{Goalkeeper, Defender, Midfielder, Forward}
}

// IsValid reports whether p is one of the defined positions
func (p Position) IsValid() bool {
	_, ok := positionNames[p]
	return ok
}

func (p Position) String() string {
	if name, ok := positionNames[p]; ok {
		return name
	}
	return "Position(" + strconv.Itoa(int(p)) + ")"
}

// ParsePosition accepts either an ordinal ("4") or a name ("forward").
// Ordinals are returned as-is even when undefined; callers decide whether
// an undefined position is an error.
func ParsePosition(s string) (Position, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return Position(n), nil
	}
	for _, p := range Positions() {
		if strings.EqualFold(positionNames[p], s) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
}
