package constants

import "time"

// HTTP 서버 타임아웃
const (
	DefaultReadTimeout       = 15 * time.Second
	DefaultReadHeaderTimeout = 5 * time.Second
	DefaultWriteTimeout      = 90 * time.Second
	DefaultIdleTimeout       = 120 * time.Second

	// DefaultRequestTimeout 설정값이 0일 때 적용되는 요청 처리 제한 시간
	DefaultRequestTimeout = 60 * time.Second

	// DefaultMaxBodySize 모든 엔드포인트가 GET이므로 본문은 작게 제한합니다.
	DefaultMaxBodySize = "64K"

	// ShutdownTimeout 종료 신호 수신 후 진행 중인 요청을 기다리는 최대 시간
	ShutdownTimeout = 5 * time.Second
)
