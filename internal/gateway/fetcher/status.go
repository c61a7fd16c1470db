package fetcher

import (
	"fmt"
	"net/http"
	"net/url"

	apperrors "github.com/darkkaiser/manga-gateway/internal/pkg/errors"
)

// StatusError 2xx가 아닌 업스트림 응답. URL은 민감 정보가 마스킹된 값입니다.
type StatusError struct {
	StatusCode int
	Status     string
	URL        string
}

func (e *StatusError) Error() string {
	if e.URL == "" {
		return fmt.Sprintf("HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("HTTP %d (%s)", e.StatusCode, e.URL)
}

// StatusCode 에러 체인에서 업스트림 상태 코드를 찾아 반환합니다. 없으면 0입니다.
func StatusCode(err error) int {
	var se *StatusError
	if apperrors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}

// ClassifyStatus 업스트림 상태 코드를 에러 분류로 변환합니다. 4xx는 408을 포함해 재시도 대상이 아닙니다.
func ClassifyStatus(code int) apperrors.ErrorType {
	switch {
	case code == http.StatusUnauthorized:
		return apperrors.Unauthorized
	case code == http.StatusForbidden:
		return apperrors.Forbidden
	case code == http.StatusNotFound, code == http.StatusGone:
		return apperrors.NotFound
	case code == http.StatusTooManyRequests:
		return apperrors.RateLimited
	case code >= 500:
		return apperrors.Unavailable
	default:
		return apperrors.ExecutionFailed
	}
}

func checkStatus(resp *http.Response, u *url.URL) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	cause := &StatusError{StatusCode: resp.StatusCode, Status: resp.Status, URL: redactURL(u)}
	return apperrors.Wrap(cause, ClassifyStatus(resp.StatusCode), fmt.Sprintf("업스트림이 %d 상태 코드로 응답했습니다", resp.StatusCode))
}
