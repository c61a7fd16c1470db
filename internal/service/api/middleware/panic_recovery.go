package middleware

import (
	"net/http"
	"runtime"

	"github.com/darkkaiser/manga-gateway/internal/service/api/constants"
	applog "github.com/darkkaiser/manga-gateway/pkg/log"
	"github.com/labstack/echo/v4"
)

// stackBufferSize panic 발생 시 스택 트레이스를 저장할 버퍼 크기 (4KB)
const stackBufferSize = 4 << 10

// PanicRecovery 핸들러에서 발생한 panic을 복구하여 500 응답으로 바꾸고, 스택 트레이스를 로깅합니다.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				// http.ErrAbortHandler는 net/http가 처리하도록 다시 던집니다.
				if r == http.ErrAbortHandler {
					panic(r)
				}

				recovered, ok := r.(error)
				if !ok {
					recovered = NewErrPanicRecovered(r)
				}

				stack := make([]byte, stackBufferSize)
				length := runtime.Stack(stack, false)

				fields := applog.Fields{
					"error": recovered,
					"stack": string(stack[:length]),
				}
				if requestID := c.Response().Header().Get(echo.HeaderXRequestID); requestID != "" {
					fields["request_id"] = requestID
				}

				applog.WithComponentAndFields(constants.ComponentMiddleware, fields).Error(constants.LogMsgPanicRecovered)

				c.Error(recovered)
				err = nil
			}()

			return next(c)
		}
	}
}
