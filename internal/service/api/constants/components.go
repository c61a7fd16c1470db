package constants

// 로깅 시 component 필드에 기록되는 API 서비스 하위 컴포넌트 이름입니다.
const (
	ComponentService      = "api.service"
	ComponentHandler      = "api.handler"
	ComponentV1Handler    = "api.v1.handler"
	ComponentErrorHandler = "api.error_handler"
	ComponentMiddleware   = "api.middleware"
	ComponentRateLimit    = "api.middleware.rate_limit"
)
