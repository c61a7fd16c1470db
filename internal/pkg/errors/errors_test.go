package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStd = errors.New("standard error")

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		errType ErrorType
		message string
	}{
		{name: "NotFound", errType: NotFound, message: "만화 정보를 찾을 수 없습니다"},
		{name: "RateLimited", errType: RateLimited, message: "too many requests"},
		{name: "Incomplete", errType: Incomplete, message: "cover missing"},
		{name: "빈 메시지", errType: InvalidInput, message: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.errType, tt.message)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
			assert.True(t, Is(err, tt.errType))
			assert.Equal(t, tt.errType, TypeOf(err))
		})
	}
}

func TestNewf(t *testing.T) {
	t.Parallel()

	err := Newf(InvalidInput, "page must be >= %d", 1)

	assert.Contains(t, err.Error(), "page must be >= 1")
	assert.True(t, Is(err, InvalidInput))
}

func TestErrorType_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		errType  ErrorType
		expected string
	}{
		{Unknown, "Unknown"},
		{Unauthorized, "Unauthorized"},
		{Incomplete, "Incomplete"},
		{Unavailable, "Unavailable"},
		{RateLimited, "RateLimited"},
		{EmptyResponse, "EmptyResponse"},
		{ErrorType(99), "ErrorType(99)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.errType.String())
		})
	}
}

func TestErrorType_Retryable(t *testing.T) {
	t.Parallel()

	assert.True(t, Unavailable.Retryable())

	for _, typ := range []ErrorType{RateLimited, Unauthorized, Forbidden, NotFound, ExecutionFailed, EmptyResponse, InvalidInput} {
		assert.False(t, typ.Retryable(), typ.String())
	}
}

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("표준 에러 래핑", func(t *testing.T) {
		wrapped := Wrap(errStd, Unavailable, "업스트림 연결 실패")

		assert.Contains(t, wrapped.Error(), "업스트림 연결 실패")
		assert.Contains(t, wrapped.Error(), "standard error")
		assert.True(t, Is(wrapped, Unavailable))
		assert.ErrorIs(t, wrapped, errStd)
	})

	t.Run("nil 에러", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, Internal, "should be nil"))
		assert.Nil(t, Wrapf(nil, Internal, "should be %s", "nil"))
	})

	t.Run("중첩 래핑", func(t *testing.T) {
		err := Wrap(Wrap(New(RateLimited, "429"), Internal, "fetch"), System, "operation")

		assert.True(t, Is(err, System))
		assert.True(t, Is(err, Internal))
		assert.True(t, Is(err, RateLimited))
		assert.Equal(t, RateLimited, UnderlyingType(err))
		assert.Equal(t, System, TypeOf(err))
	})
}

func TestUnderlyingType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Unknown, UnderlyingType(nil))
	assert.Equal(t, Unknown, UnderlyingType(errStd))
	assert.Equal(t, NotFound, UnderlyingType(fmt.Errorf("context: %w", New(NotFound, "gone"))))
	assert.Equal(t, Unauthorized, UnderlyingType(Wrap(errStd, Unauthorized, "session expired")))
}

func TestRootCause(t *testing.T) {
	t.Parallel()

	err := Wrap(Wrap(errStd, Internal, "a"), System, "b")

	assert.Equal(t, errStd, RootCause(err))
	assert.Nil(t, RootCause(nil))
}

func TestAppError_Format(t *testing.T) {
	t.Parallel()

	err := Wrap(errStd, Unavailable, "dial failed")

	verbose := fmt.Sprintf("%+v", err)
	assert.Contains(t, verbose, "[Unavailable] dial failed")
	assert.Contains(t, verbose, "Stack trace:")
	assert.Contains(t, verbose, "Caused by:")

	assert.Equal(t, err.Error(), fmt.Sprintf("%s", err))
	assert.Equal(t, fmt.Sprintf("%q", err.Error()), fmt.Sprintf("%q", err))
}

func TestAppError_Stack(t *testing.T) {
	t.Parallel()

	var appErr *AppError
	require.True(t, As(New(Internal, "boom"), &appErr))

	stack := appErr.Stack()
	require.NotEmpty(t, stack)
	assert.LessOrEqual(t, len(stack), maxStackFrames)
	assert.Equal(t, "errors_test.go", stack[0].File)
	assert.Contains(t, stack[0].Function, "TestAppError_Stack")
}
