// Package testutil 여러 패키지의 테스트가 공유하는 헬퍼를 제공합니다.
package testutil

import (
	"net"
	"net/http"
	"strconv"
	"time"

	apperrors "github.com/darkkaiser/manga-gateway/internal/pkg/errors"
)

// GetFreePort 테스트 서버가 사용할 수 있는 로컬 포트를 하나 예약했다가 반환합니다.
func GetFreePort() (int, error) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, err
	}
	defer l.Close()

	return l.Addr().(*net.TCPAddr).Port, nil
}

// WaitForHTTP url이 응답할 때까지 폴링합니다. 상태 코드는 따지지 않습니다.
func WaitForHTTP(url string, timeout time.Duration) error {
	client := &http.Client{Timeout: 200 * time.Millisecond}

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			resp.Body.Close()
			return nil
		}
		time.Sleep(20 * time.Millisecond)
	}

	return apperrors.Newf(apperrors.Unavailable, "%s가 %s 안에 응답하지 않았습니다", url, timeout)
}

// LocalURL 로컬 포트의 경로에 대한 URL을 만듭니다.
func LocalURL(port int, path string) string {
	return "http://127.0.0.1:" + strconv.Itoa(port) + path
}
