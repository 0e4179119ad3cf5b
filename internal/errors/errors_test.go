package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/teamvirrey/meetup-announcer/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "pokemon not found",
			expected: "NOT_FOUND: pokemon not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "invalid level",
			expected: "INVALID_ARGUMENT: invalid level",
		},
		{
			name:     "unavailable error",
			code:     errors.CodeUnavailable,
			message:  "pogoapi unreachable",
			expected: "UNAVAILABLE: pogoapi unreachable",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.NotFound("pokemon not found").
		WithMeta("pokemon_name", "mewtwo").
		WithMeta("source", "cache")

	s.Assert().Equal("mewtwo", err.Meta["pokemon_name"])
	s.Assert().Equal("cache", err.Meta["source"])
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	inner := errors.NotFoundf("pokemon %q not found", "mewtwo")
	wrapped := errors.Wrap(inner, "failed to load pokemon")

	s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
	s.Assert().Equal(inner, wrapped.Unwrap())
	s.Assert().Contains(wrapped.Error(), "failed to load pokemon")
	s.Assert().Contains(wrapped.Error(), "mewtwo")
}

func (s *ErrorsTestSuite) TestWrapPlainError() {
	plain := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(plain, "failed to fetch")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal(plain, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "ignored"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeUnavailable, "ignored"))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	plain := fmt.Errorf("dial tcp: i/o timeout")
	wrapped := errors.WrapWithCode(plain, errors.CodeUnavailable, "pogoapi unreachable")

	s.Assert().True(errors.IsUnavailable(wrapped))
	s.Assert().Equal(plain, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestMissingVariable() {
	err := errors.MissingVariablef("shiny_text", "template %q is missing variable %q", "dynamax_monday", "shiny_text")

	s.Assert().True(errors.IsFailedPrecondition(err))
	s.Assert().Equal("shiny_text", err.Meta["placeholder"])
	s.Assert().Contains(err.Error(), "shiny_text")
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(errors.NotFound("missing")))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
}

func (s *ErrorsTestSuite) TestTypeCheckers() {
	s.Assert().True(errors.IsNotFound(errors.NotFound("x")))
	s.Assert().False(errors.IsNotFound(errors.Unavailable("x")))
	s.Assert().True(errors.IsInvalidArgument(errors.InvalidArgument("x")))
	s.Assert().True(errors.IsUnavailable(errors.Unavailable("x")))
	s.Assert().False(errors.IsUnavailable(nil))
}
