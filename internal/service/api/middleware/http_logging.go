package middleware

import (
	"net/url"
	"strconv"
	"time"

	"github.com/darkkaiser/manga-gateway/internal/service/api/constants"
	applog "github.com/darkkaiser/manga-gateway/pkg/log"
	"github.com/darkkaiser/manga-gateway/pkg/strutil"
	"github.com/labstack/echo/v4"
)

// defaultBytesIn Content-Length 헤더가 없을 때 bytes_in 필드에 기록되는 값
const defaultBytesIn = "0"

// HTTPLogger HTTP 요청/응답을 구조화된 로그로 기록하는 미들웨어를 반환합니다.
//
// sessionHeader로 전달된 세션 토큰과 constants.SensitiveQueryParams에 해당하는 쿼리 값은
// 마스킹된 형태로만 기록됩니다. 세션 쿠키 값은 기록하지 않습니다.
func HTTPLogger(sessionHeader string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := c.Response()
			start := time.Now()

			// panic이 상위로 전파되더라도 로그가 남도록 defer로 기록합니다.
			defer func() {
				latency := time.Since(start)

				path := req.URL.Path
				if path == "" {
					path = "/"
				}

				bytesIn := req.Header.Get(echo.HeaderContentLength)
				if bytesIn == "" {
					bytesIn = defaultBytesIn
				}

				fields := applog.Fields{
					"method":   req.Method,
					"path":     path,
					"uri":      maskSensitiveQueryParams(req.RequestURI),
					"host":     req.Host,
					"protocol": req.Proto,

					"remote_ip":  c.RealIP(),
					"user_agent": req.UserAgent(),

					"status":    res.Status,
					"bytes_in":  bytesIn,
					"bytes_out": strconv.FormatInt(res.Size, 10),
					"cache":     res.Header().Get(constants.HeaderXCache),

					"latency":       strconv.FormatInt(latency.Microseconds(), 10),
					"latency_human": latency.String(),

					"request_id": res.Header().Get(echo.HeaderXRequestID),
				}
				if token := req.Header.Get(sessionHeader); sessionHeader != "" && token != "" {
					fields["session"] = strutil.Mask(token)
				}

				applog.WithFields(fields).Info(constants.LogMsgHTTPRequest)
			}()

			if err := next(c); err != nil {
				c.Error(err)
			}

			return nil
		}
	}
}

// maskSensitiveQueryParams URI의 민감한 쿼리 파라미터 값을 마스킹합니다.
// 파싱에 실패하면 원본을 그대로 반환합니다.
//
//	입력: "/api/v1/bookmarks?token=abcdefgh12345678&page=2"
//	출력: "/api/v1/bookmarks?page=2&token=abcd%2A%2A%2A5678"
func maskSensitiveQueryParams(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return uri
	}

	q := u.Query()
	masked := false
	for _, param := range constants.SensitiveQueryParams {
		if q.Has(param) {
			q.Set(param, strutil.Mask(q.Get(param)))
			masked = true
		}
	}

	if !masked {
		return uri
	}

	u.RawQuery = q.Encode()
	return u.String()
}
