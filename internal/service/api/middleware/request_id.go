package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RequestID 각 요청에 UUID 기반 X-Request-ID를 부여합니다.
// 클라이언트가 보낸 X-Request-ID는 그대로 이어받습니다.
func RequestID() echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	})
}
