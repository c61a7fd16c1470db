package constants

// 응답 헤더
const (
	HeaderXCache     = "X-Cache"
	HeaderRetryAfter = "Retry-After"

	CacheHit  = "HIT"
	CacheMiss = "MISS"

	// CacheControlPrivate 세션별 응답(북마크 등)에 사용합니다.
	CacheControlPrivate = "private, no-store"

	// CacheControlNoCache 캐시되지 않은 결과(이미지 크기 조회 실패 등)에 사용합니다.
	CacheControlNoCache = "no-cache"
)

// SensitiveQueryParams 요청 로그에서 값을 마스킹하는 쿼리 파라미터
var SensitiveQueryParams = []string{
	"token",
	"session",
	"user_acc",
	"password",
}
