package httputil

import (
	"net/http"

	"github.com/darkkaiser/manga-gateway/internal/service/api/constants"
	"github.com/darkkaiser/manga-gateway/internal/service/api/model/response"
	"github.com/labstack/echo/v4"
)

// NewErrorResponse 표준 실패 응답 본문을 생성합니다.
func NewErrorResponse(message string) response.ErrorResponse {
	return response.ErrorResponse{
		Result: constants.ErrorResultValue,
		Data:   message,
	}
}

func newHTTPError(code int, message string) error {
	return echo.NewHTTPError(code, NewErrorResponse(message))
}

// NewBadRequestError 400 Bad Request 에러를 생성합니다
func NewBadRequestError(message string) error {
	return newHTTPError(http.StatusBadRequest, message)
}

// NewUnauthorizedError 401 Unauthorized 에러를 생성합니다
func NewUnauthorizedError(message string) error {
	return newHTTPError(http.StatusUnauthorized, message)
}

// NewNotFoundError 404 Not Found 에러를 생성합니다
func NewNotFoundError(message string) error {
	return newHTTPError(http.StatusNotFound, message)
}

// NewTooManyRequestsError 429 Too Many Requests 에러를 생성합니다
func NewTooManyRequestsError(message string) error {
	return newHTTPError(http.StatusTooManyRequests, message)
}

// NewInternalServerError 500 Internal Server Error 에러를 생성합니다
func NewInternalServerError(message string) error {
	return newHTTPError(http.StatusInternalServerError, message)
}
