package fetcher

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
)

const (
	defaultTimeout      = 30 * time.Second
	defaultMaxRedirects = 10
	defaultUserAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
)

var errTooManyRedirects = errors.New("리다이렉트 횟수 제한을 초과했습니다")

// HTTPFetcher 실제 네트워크 호출을 수행하는 최하위 Fetcher
type HTTPFetcher struct {
	client       *http.Client
	maxRedirects int
}

var _ Fetcher = (*HTTPFetcher)(nil)

// Option HTTPFetcher 설정 함수
type Option func(*HTTPFetcher)

// WithTimeout 요청 한 건의 전체 대기 시간 상한 (연결, 응답 본문 수신 포함)
func WithTimeout(d time.Duration) Option {
	return func(h *HTTPFetcher) {
		if d > 0 {
			h.client.Timeout = d
		}
	}
}

// WithTransport 테스트 등에서 전송 계층을 교체합니다.
func WithTransport(rt http.RoundTripper) Option {
	return func(h *HTTPFetcher) {
		if rt != nil {
			h.client.Transport = rt
		}
	}
}

// WithMaxRedirects 따라갈 리다이렉트의 최대 횟수. 0이면 리다이렉트를 따라가지 않습니다.
func WithMaxRedirects(n int) Option {
	return func(h *HTTPFetcher) {
		if n >= 0 {
			h.maxRedirects = n
		}
	}
}

// NewHTTPFetcher 새로운 HTTPFetcher를 생성합니다.
func NewHTTPFetcher(opts ...Option) *HTTPFetcher {
	h := &HTTPFetcher{
		client: &http.Client{
			Timeout:   defaultTimeout,
			Transport: newTransport(),
		},
		maxRedirects: defaultMaxRedirects,
	}
	for _, opt := range opts {
		opt(h)
	}

	h.client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		if h.maxRedirects == 0 {
			return http.ErrUseLastResponse
		}
		if len(via) >= h.maxRedirects {
			return fmt.Errorf("%w (최대 %d회)", errTooManyRedirects, h.maxRedirects)
		}
		return nil
	}

	return h
}

func newTransport() *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
}

// Do User-Agent가 지정되지 않은 요청에는 기본 브라우저 User-Agent를 채워 넣습니다.
func (h *HTTPFetcher) Do(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", defaultUserAgent)
	}
	return h.client.Do(req)
}

// CloseIdleConnections 유휴 연결을 정리합니다. 서비스 종료 시 호출됩니다.
func (h *HTTPFetcher) CloseIdleConnections() {
	h.client.CloseIdleConnections()
}
