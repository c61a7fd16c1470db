package httputil

import (
	"errors"
	"net/http"

	apperrors "github.com/darkkaiser/manga-gateway/internal/pkg/errors"
	"github.com/darkkaiser/manga-gateway/internal/service/api/constants"
	"github.com/darkkaiser/manga-gateway/internal/service/api/model/response"
	applog "github.com/darkkaiser/manga-gateway/pkg/log"
	"github.com/labstack/echo/v4"
)

// StatusCode ErrorType을 API 응답의 HTTP 상태 코드로 변환합니다.
func StatusCode(t apperrors.ErrorType) int {
	switch t {
	case apperrors.InvalidInput:
		return http.StatusBadRequest
	case apperrors.Unauthorized:
		return http.StatusUnauthorized
	case apperrors.Forbidden:
		return http.StatusForbidden
	case apperrors.NotFound, apperrors.Incomplete:
		return http.StatusNotFound
	case apperrors.RateLimited:
		return http.StatusTooManyRequests
	case apperrors.Unavailable, apperrors.EmptyResponse, apperrors.ExecutionFailed, apperrors.ParsingFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// ErrorHandler Echo 프레임워크의 전역 에러 핸들러입니다.
//
// echo.HTTPError와 AppError를 모두 {result:"error", data:<message>} 형식으로 변환합니다.
// AppError는 가장 바깥쪽 타입으로 상태 코드를 정하고, 가장 바깥쪽 메시지만 노출합니다.
// 내부 원인(업스트림 본문, 스택 트레이스)은 로그에만 남습니다.
func ErrorHandler(err error, c echo.Context) {
	code, message := resolve(err)

	fields := applog.Fields{
		"path":        c.Request().URL.Path,
		"method":      c.Request().Method,
		"status_code": code,
		"error":       err,
		"remote_ip":   c.RealIP(),
		"request_id":  c.Response().Header().Get(echo.HeaderXRequestID),
	}

	if code >= http.StatusInternalServerError {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Error(constants.LogMsgHTTP5xxServerError)
	} else if code >= http.StatusBadRequest {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Warn(constants.LogMsgHTTP4xxClientError)
	}

	// 이미 응답이 전송된 경우 이중 응답을 하지 않습니다.
	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}

	_ = c.JSON(code, NewErrorResponse(message))
}

func resolve(err error) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		message := http.StatusText(he.Code)
		switch m := he.Message.(type) {
		case string:
			message = m
		case response.ErrorResponse:
			message = m.Data
		}

		// 라우팅 실패(echo.ErrNotFound)는 한국어 메시지로 통일
		if he == echo.ErrNotFound {
			message = constants.ErrMsgNotFound
		}
		return he.Code, message
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		code := StatusCode(appErr.Type())
		if code == http.StatusInternalServerError {
			return code, constants.ErrMsgInternalServer
		}
		return code, appErr.Message()
	}

	return http.StatusInternalServerError, constants.ErrMsgInternalServer
}
