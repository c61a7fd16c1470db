package constants

// 헬스체크 상태 값
const (
	HealthStatusHealthy   = "healthy"
	HealthStatusUnhealthy = "unhealthy"

	DependencyCache    = "cache"
	DependencyUpstream = "upstream"

	MsgDepStatusHealthy        = "정상 작동 중"
	MsgDepStatusNotInitialized = "초기화되지 않음"
)
