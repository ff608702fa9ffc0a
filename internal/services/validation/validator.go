package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mcoot/soccermanager/internal/model"
)

// Violation messages reported by CreateValidator
const (
	MsgNameRequired     = "Name is required"
	MsgPositionRequired = "Position is required and must be between 1 and 4 inclusive"
	MsgSkillRating      = "Skill Rating must be between 1 and 100"
)

// Validator checks a candidate player and returns the violated rules as
// human-readable messages. An empty result means the player is valid.
type Validator interface {
	Validate(player *model.Player) []string
}

// rule binds one player field to a validator tag and the message reported
// when that tag fails
type rule struct {
	field   func(p *model.Player) any
	tag     string
	message string
}

// CreateValidator holds the rules a player must satisfy to be added to the roster
type CreateValidator struct {
	validate *validator.Validate
	rules    []rule
}

var _ Validator = (*CreateValidator)(nil)

// NewCreateValidator creates the validator used when adding players
func NewCreateValidator() *CreateValidator {
	v := validator.New()
	mustRegister(v, "nonblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	mustRegister(v, "position", func(fl validator.FieldLevel) bool {
		return model.Position(fl.Field().Int()).IsValid()
	})

	return &CreateValidator{
		validate: v,
		rules: []rule{
			{
				field:   func(p *model.Player) any { return p.Name },
				tag:     "nonblank",
				message: MsgNameRequired,
			},
			{
				field:   func(p *model.Player) any { return p.Position },
				tag:     "position",
				message: MsgPositionRequired,
			},
			{
				field:   func(p *model.Player) any { return p.SkillRating },
				tag:     fmt.Sprintf("min=%d,max=%d", model.MinSkillRating, model.MaxSkillRating),
				message: MsgSkillRating,
			},
		},
	}
}

// Validate evaluates every rule and returns the messages of those that
// failed, in rule order
func (c *CreateValidator) Validate(player *model.Player) []string {
	var violations []string
	for _, r := range c.rules {
		if err := c.validate.Var(r.field(player), r.tag); err != nil {
			violations = append(violations, r.message)
		}
	}
	return violations
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}
