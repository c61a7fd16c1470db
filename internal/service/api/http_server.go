package api

import (
	"net/http"
	"time"

	"github.com/darkkaiser/manga-gateway/internal/service/api/constants"
	"github.com/darkkaiser/manga-gateway/internal/service/api/httputil"
	appmiddleware "github.com/darkkaiser/manga-gateway/internal/service/api/middleware"
	applog "github.com/darkkaiser/manga-gateway/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// HTTPServerConfig HTTP 서버 생성에 필요한 설정을 정의합니다.
type HTTPServerConfig struct {
	// Debug Echo 프레임워크의 디버그 모드 활성화 여부
	Debug bool

	// AllowOrigins CORS에서 허용할 Origin 목록
	AllowOrigins []string

	// SessionHeader 요청 로그에서 마스킹할 세션 토큰 헤더
	SessionHeader string

	// RequestTimeout 각 HTTP 요청의 최대 처리 시간. 0이면 기본값(60초)을 사용합니다.
	RequestTimeout time.Duration

	// RateLimit, RateBurst 클라이언트 IP당 초당 허용 요청 수와 버스트 허용량
	RateLimit float64
	RateBurst int
}

// NewHTTPServer 설정된 미들웨어를 포함한 Echo 인스턴스를 생성합니다.
//
// 미들웨어는 다음 순서로 적용됩니다:
//
//  1. PanicRecovery - 다른 미들웨어의 panic까지 복구하도록 가장 먼저 적용
//  2. RequestID - 로그에 request_id가 남도록 로깅보다 먼저 적용
//  3. Server 헤더 제거
//  4. HTTPLogger - 429/503 응답도 기록되도록 RateLimit/Timeout보다 먼저 적용
//  5. RateLimit - IP별 요청 제한 (초과 시 429 + Retry-After)
//  6. BodyLimit - 모든 엔드포인트가 GET이므로 작은 본문만 허용
//  7. Timeout - 요청 처리 시간 제한 (초과 시 503)
//  8. CORS - GET 요청만 허용
//  9. Secure - 보안 헤더 추가
//
// 라우트는 포함되지 않으며, 반환된 Echo 인스턴스에 별도로 등록해야 합니다.
func NewHTTPServer(cfg HTTPServerConfig) *echo.Echo {
	e := echo.New()

	e.Debug = cfg.Debug
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = constants.DefaultReadTimeout
	e.Server.ReadHeaderTimeout = constants.DefaultReadHeaderTimeout
	e.Server.WriteTimeout = constants.DefaultWriteTimeout
	e.Server.IdleTimeout = constants.DefaultIdleTimeout

	// Echo 내부 로그를 애플리케이션 로거로 통합합니다.
	e.Logger = appmiddleware.Logger{Logger: applog.StandardLogger()}

	e.HTTPErrorHandler = httputil.ErrorHandler

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = constants.DefaultRequestTimeout
	}

	e.Use(appmiddleware.PanicRecovery())
	e.Use(appmiddleware.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderServer, "")
			return next(c)
		}
	})
	e.Use(appmiddleware.HTTPLogger(cfg.SessionHeader))
	e.Use(appmiddleware.RateLimit(cfg.RateLimit, cfg.RateBurst))
	e.Use(middleware.BodyLimit(constants.DefaultMaxBodySize))
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout:      timeout,
		ErrorMessage: `{"result":"error","data":"요청 처리 시간이 초과되었습니다"}`,
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  cfg.AllowOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		ExposeHeaders: []string{constants.HeaderXCache, echo.HeaderXRequestID},
	}))
	e.Use(middleware.Secure())

	return e
}
