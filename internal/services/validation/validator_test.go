package validation

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/soccermanager/internal/model"
)

type ValidatorSuite struct {
	suite.Suite
	validator *CreateValidator
}

func TestValidatorSuite(t *testing.T) {
	suite.Run(t, new(ValidatorSuite))
}

func (s *ValidatorSuite) SetupTest() {
	s.validator = NewCreateValidator()
}

func (s *ValidatorSuite) TestValidPlayer() {
	player := &model.Player{Name: "abc", Position: model.Forward, SkillRating: 80}
	s.Empty(s.validator.Validate(player))
}

func (s *ValidatorSuite) TestBoundarySkillRatingsAreValid() {
	s.Empty(s.validator.Validate(&model.Player{Name: "abc", Position: model.Goalkeeper, SkillRating: 1}))
	s.Empty(s.validator.Validate(&model.Player{Name: "abc", Position: model.Goalkeeper, SkillRating: 100}))
}

func (s *ValidatorSuite) TestEmptyName() {
	player := &model.Player{Name: "", Position: model.Forward, SkillRating: 1}
	s.Equal([]string{MsgNameRequired}, s.validator.Validate(player))
}

func (s *ValidatorSuite) TestWhitespaceName() {
	player := &model.Player{Name: "  \t", Position: model.Forward, SkillRating: 1}
	s.Equal([]string{MsgNameRequired}, s.validator.Validate(player))
}

func (s *ValidatorSuite) TestUndefinedPosition() {
	for _, pos := range []model.Position{0, 5, 100, -1} {
		player := &model.Player{Name: "abc", Position: pos, SkillRating: 1}
		s.Equal([]string{MsgPositionRequired}, s.validator.Validate(player), pos.String())
	}
}

func (s *ValidatorSuite) TestSkillRatingOutOfRange() {
	for _, rating := range []int{0, 101, -5} {
		player := &model.Player{Name: "abc", Position: model.Forward, SkillRating: rating}
		s.Equal([]string{MsgSkillRating}, s.validator.Validate(player))
	}
}

func (s *ValidatorSuite) TestAllViolationsInRuleOrder() {
	player := &model.Player{Name: " ", Position: 9, SkillRating: 0}
	s.Equal([]string{MsgNameRequired, MsgPositionRequired, MsgSkillRating}, s.validator.Validate(player))
}

func (s *ValidatorSuite) TestValidateHasNoSideEffects() {
	player := &model.Player{Name: " abc ", Position: model.Defender, SkillRating: 50}
	_ = s.validator.Validate(player)
	s.Equal(" abc ", player.Name)
}
