package fetcher

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	apperrors "github.com/darkkaiser/manga-gateway/internal/pkg/errors"
)

const defaultMaxBytes = 10 * 1024 * 1024

func newErrBodyTooLarge(limit int64) error {
	return apperrors.New(apperrors.ExecutionFailed, fmt.Sprintf("업스트림 응답 본문이 허용 크기(%d바이트)를 초과했습니다", limit))
}

type maxBytesReader struct {
	rc    io.ReadCloser
	limit int64
}

func (r *maxBytesReader) Read(p []byte) (int, error) {
	n, err := r.rc.Read(p)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return n, newErrBodyTooLarge(r.limit)
		}
	}
	return n, err
}

func (r *maxBytesReader) Close() error {
	return r.rc.Close()
}

// MaxBytesFetcher 응답 본문 크기를 제한하여 비정상적으로 큰 응답으로부터 메모리를 보호합니다.
type MaxBytesFetcher struct {
	delegate Fetcher
	limit    int64
}

var _ Fetcher = (*MaxBytesFetcher)(nil)

// NewMaxBytesFetcher limit이 0 이하이면 기본값(10MB)을 사용합니다.
func NewMaxBytesFetcher(delegate Fetcher, limit int64) *MaxBytesFetcher {
	if limit <= 0 {
		limit = defaultMaxBytes
	}
	return &MaxBytesFetcher{delegate: delegate, limit: limit}
}

func (f *MaxBytesFetcher) Do(req *http.Request) (*http.Response, error) {
	resp, err := f.delegate.Do(req)
	if err != nil {
		return resp, err
	}

	if resp.ContentLength > f.limit {
		drainAndCloseBody(resp.Body)
		return nil, newErrBodyTooLarge(f.limit)
	}

	if resp.Body != nil {
		resp.Body = &maxBytesReader{rc: http.MaxBytesReader(nil, resp.Body, f.limit), limit: f.limit}
	}

	return resp, nil
}
