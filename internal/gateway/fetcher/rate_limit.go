package fetcher

import (
	"net/http"

	apperrors "github.com/darkkaiser/manga-gateway/internal/pkg/errors"
	"golang.org/x/time/rate"
)

// RateLimitFetcher 프로세스 전체의 아웃바운드 요청 속도를 제한합니다.
// 업스트림의 429 응답을 유발하지 않도록 토큰 버킷이 채워질 때까지 대기합니다.
type RateLimitFetcher struct {
	delegate Fetcher
	limiter  *rate.Limiter
}

var _ Fetcher = (*RateLimitFetcher)(nil)

// NewRateLimitFetcher rps가 0 이하이면 제한 없이 delegate를 그대로 반환합니다.
func NewRateLimitFetcher(delegate Fetcher, rps float64, burst int) Fetcher {
	if rps <= 0 {
		return delegate
	}
	if burst < 1 {
		burst = 1
	}

	return &RateLimitFetcher{
		delegate: delegate,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (f *RateLimitFetcher) Do(req *http.Request) (*http.Response, error) {
	if err := f.limiter.Wait(req.Context()); err != nil {
		return nil, apperrors.Wrap(err, apperrors.Unavailable, "업스트림 요청 대기 중 요청이 취소되었습니다")
	}
	return f.delegate.Do(req)
}
