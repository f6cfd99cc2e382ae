package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/samdwyer/dungeoncrawl/internal/errors"
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
			message:  "room not found",
			expected: "NOT_FOUND: room not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "width must be positive",
			expected: "INVALID_ARGUMENT: width must be positive",
		},
		{
			name:     "data loss error",
			code:     errors.CodeDataLoss,
			message:  "unknown room type",
			expected: "DATA_LOSS: unknown room type",
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

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("disk full")
	wrapped := errors.Wrap(baseErr, "failed to write save")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to write save", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
	s.Assert().Nil(errors.Wrap(nil, "ignored"))
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	inner := errors.InvalidArgumentf("health must be positive, got %d", 0).WithMeta("health", 0)
	wrapped := errors.Wrapf(inner, "load player %q", "Hero")

	s.Assert().Equal(errors.CodeInvalidArgument, wrapped.Code)
	s.Assert().Equal(0, wrapped.Meta["health"])
	s.Assert().True(errors.IsInvalidArgument(wrapped))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	wrapped := errors.WrapWithCode(fmt.Errorf("unexpected EOF"), errors.CodeDataLoss, "corrupt save")

	s.Assert().True(errors.IsDataLoss(wrapped))
	s.Assert().Equal("DATA_LOSS: corrupt save: unexpected EOF", wrapped.Error())
}

func (s *ErrorsTestSuite) TestPredicates() {
	s.Assert().True(errors.IsNotFound(errors.NotFound("room")))
	s.Assert().False(errors.IsNotFound(errors.InvalidArgument("room")))
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	s.Assert().True(errors.Is(fmt.Errorf("ctx: %w", errors.NotFound("a")), errors.NotFound("b")))
	s.Assert().Equal("room", errors.GetMessage(errors.NotFound("room")))
	s.Assert().Equal("plain", errors.GetMessage(fmt.Errorf("plain")))

	var target *errors.Error
	s.Assert().True(errors.As(fmt.Errorf("wrapped: %w", errors.DataLoss("x")), &target))
	s.Assert().Equal(errors.CodeDataLoss, target.Code)
}
