package fetcher

import (
	"github.com/darkkaiser/manga-gateway/internal/config"
)

// New 업스트림 설정으로 Fetcher 체인을 구성합니다.
//
// 호출 순서: Logging -> RateLimit -> MaxBytes -> HTTP
func New(cfg config.UpstreamConfig, opts ...Option) Fetcher {
	opts = append([]Option{WithTimeout(cfg.Timeout)}, opts...)

	var f Fetcher = NewHTTPFetcher(opts...)
	f = NewMaxBytesFetcher(f, cfg.MaxBodyBytes)
	f = NewRateLimitFetcher(f, cfg.RateLimit, cfg.RateBurst)

	return NewLoggingFetcher(f)
}

// NewForwarderFromConfig 업스트림 설정으로 세션 Forwarder를 생성합니다.
func NewForwarderFromConfig(cfg config.UpstreamConfig) *Forwarder {
	return NewForwarder(cfg.BaseURL, cfg.CookieHosts, cfg.SessionCookie, cfg.UserAgent)
}
