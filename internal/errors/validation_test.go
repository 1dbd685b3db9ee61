package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/gwforge/builds-api/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestBuilder() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("name").
		InvalidField("primary", "unknown profession").
		Fieldf("weapon_sets", "must be at most %d", 4)

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "name: is required")
	s.Assert().Contains(err.Error(), "primary: is invalid: unknown profession")
	s.Assert().Contains(err.Error(), "weapon_sets: must be at most 4")
}

func (s *ValidationTestSuite) TestBuilderNoErrors() {
	s.Assert().Nil(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestBuilderStableMessageOrder() {
	build := func() string {
		vb := errors.NewValidationBuilder()
		vb.RequiredField("secondary").
			RequiredField("name").
			RequiredField("primary")
		return vb.Build().Error()
	}

	first := build()
	s.Assert().Contains(first, "name: is required; primary: is required; secondary: is required")
	for i := 0; i < 10; i++ {
		s.Require().Equal(first, build())
	}
}

func (s *ValidationTestSuite) TestBuilderMeta() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("player_id").
		Fieldf("player_id", "must start with %q", "player_")

	err := vb.Build()
	s.Require().NotNil(err)

	fields, ok := errors.GetMeta(err)["invalid_fields"].(map[string][]string)
	s.Require().True(ok)
	s.Assert().Equal([]string{"is required", `must start with "player_"`}, fields["player_id"])
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "test", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
		{"valid with spaces", "  test  ", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("field", tc.value, vb)
			err := vb.Build()
			if tc.shouldErr {
				s.Assert().NotNil(err)
			} else {
				s.Assert().Nil(err)
			}
		})
	}
}
