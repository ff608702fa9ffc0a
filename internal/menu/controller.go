package menu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mcoot/soccermanager/internal/model"
	"github.com/mcoot/soccermanager/internal/services/roster"
)

// Option is a numbered entry of the main menu
type Option int

const (
	OptionNone Option = iota
	OptionCreate
	OptionRemove
	OptionUpdate
	OptionSearch
	OptionGetByName
	OptionDisplayAll
	OptionExit
)

var menuLines = []string{
	"1. Create Player",
	"2. Remove Player",
	"3. Update Skill Rating Player",
	"4. Search Players",
	"5. Get Player By Name",
	"6. Display All Players",
	"7. Exit",
}

// MaxLineLength is the longest input line the menu accepts, in bytes
const MaxLineLength = 1 << 20

// Controller drives the roster from a line-oriented text stream
type Controller struct {
	service roster.ServiceInterface
	in      *bufio.Scanner
	out     io.Writer
}

// NewController creates a menu controller. It panics if service is nil.
func NewController(service roster.ServiceInterface, in io.Reader, out io.Writer) *Controller {
	if service == nil {
		panic("menu: roster service is required")
	}
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 4096), MaxLineLength)
	return &Controller{
		service: service,
		in:      scanner,
		out:     out,
	}
}

// Run shows the menu and dispatches choices until Exit or end of input
func (c *Controller) Run() {
	for {
		for _, line := range menuLines {
			c.println(line)
		}

		input, ok := c.readLine()
		if !ok {
			return
		}

		option := OptionNone
		if n, err := strconv.Atoi(strings.TrimSpace(input)); err == nil {
			option = Option(n)
		}

		switch option {
		case OptionCreate:
			c.CreatePlayer()
		case OptionRemove:
			c.RemovePlayer()
		case OptionUpdate:
			c.UpdateSkillRating()
		case OptionSearch:
			c.SearchPlayers()
		case OptionGetByName:
			c.GetPlayerByName()
		case OptionDisplayAll:
			c.DisplayAllPlayers()
		case OptionExit:
			return
		default:
			c.println("Invalid Option please enter a number between 1 and 7")
		}
	}
}

// CreatePlayer prompts for name, position and skill rating and adds the player
func (c *Controller) CreatePlayer() {
	c.println("Enter Player Name: ")
	name, ok := c.readLine()
	if !ok {
		return
	}

	c.println("Enter Player Position: ")
	for _, p := range model.Positions() {
		c.println(fmt.Sprintf("%d. %s", int(p), p))
	}
	position, ok := c.readInt("invalid option please enter a number between 1 and 4")
	if !ok {
		return
	}

	skillRating, ok := c.readSkillRating()
	if !ok {
		return
	}

	c.println(c.service.Create(name, model.Position(position), skillRating))
}

// RemovePlayer prompts for a name and removes that player
func (c *Controller) RemovePlayer() {
	c.println("Enter Player Name: ")
	name, ok := c.readLine()
	if !ok {
		return
	}

	if c.service.Remove(name) {
		c.println("Player removed successfully")
	} else {
		c.println("Player not found")
	}
}

// UpdateSkillRating prompts for a name and new skill rating
func (c *Controller) UpdateSkillRating() {
	c.println("Enter Player Name: ")
	name, ok := c.readLine()
	if !ok {
		return
	}

	skillRating, ok := c.readSkillRating()
	if !ok {
		return
	}

	c.println(c.service.UpdateSkillRank(name, skillRating))
}

// SearchPlayers prompts for optional name and position filters and lists matches
func (c *Controller) SearchPlayers() {
	c.println("Enter Player Name or Press Enter to skip: ")
	name, ok := c.readLine()
	if !ok {
		return
	}

	c.println("Enter Player Position or Press Enter to skip: ")
	positionInput, ok := c.readLine()
	if !ok {
		return
	}

	filter := roster.Filter{Name: name}
	if n, err := strconv.Atoi(strings.TrimSpace(positionInput)); err == nil {
		filter.Position = model.Position(n)
	}

	for _, player := range c.service.Search(filter) {
		c.println(player.String())
	}
}

// GetPlayerByName prompts for a name and shows that player
func (c *Controller) GetPlayerByName() {
	c.println("Enter Player Name: ")
	name, ok := c.readLine()
	if !ok {
		return
	}

	if player := c.service.GetByName(name); player != nil {
		c.println(player.String())
	} else {
		c.println(fmt.Sprintf("Player %s not found", name))
	}
}

// DisplayAllPlayers prints the whole roster
func (c *Controller) DisplayAllPlayers() {
	c.println(c.service.String())
}

func (c *Controller) readSkillRating() (int, bool) {
	c.println("Enter Player Skill Rating: ")
	return c.readInt("invalid skill rating please enter a number")
}

// readInt reads lines until one parses as an integer, printing retryMsg
// after each failure
func (c *Controller) readInt(retryMsg string) (int, bool) {
	for {
		line, ok := c.readLine()
		if !ok {
			return 0, false
		}
		if n, err := strconv.Atoi(strings.TrimSpace(line)); err == nil {
			return n, true
		}
		c.println(retryMsg)
	}
}

// readLine returns the next input line. A read failure, such as a line over
// MaxLineLength, is reported and then ends the session like end of input.
func (c *Controller) readLine() (string, bool) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			c.println(fmt.Sprintf("Unable to read input: %v", err))
		}
		return "", false
	}
	return c.in.Text(), true
}

func (c *Controller) println(s string) {
	_, _ = fmt.Fprintln(c.out, s)
}
