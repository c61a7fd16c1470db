package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "github.com/darkkaiser/manga-gateway/internal/pkg/errors"
	"github.com/darkkaiser/manga-gateway/internal/service/api/constants"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskSensitiveQueryParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{"민감 파라미터 없음", "/api/v1/search?q=one+piece&page=2", "/api/v1/search?q=one+piece&page=2"},
		{"token 마스킹", "/api/v1/bookmarks?token=abcdefgh12345678&page=2", "/api/v1/bookmarks?page=2&token=abcd%2A%2A%2A5678"},
		{"짧은 값 마스킹", "/api/v1/bookmarks?user_acc=abc", "/api/v1/bookmarks?user_acc=%2A%2A%2A"},
		{"쿼리 없음", "/health", "/health"},
		{"파싱 실패 시 원본 유지", "%zz", "%zz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, maskSensitiveQueryParams(tt.uri))
		})
	}
}

func TestHTTPLogger(t *testing.T) {
	buf := captureLogs(t)

	e := echo.New()
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		_ = c.JSON(http.StatusBadGateway, map[string]string{"result": "error"})
	}
	e.Use(HTTPLogger("X-Session-Token"))
	e.GET("/api/v1/manga/:id", func(c echo.Context) error {
		c.Response().Header().Set(constants.HeaderXCache, constants.CacheMiss)
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/fail", func(c echo.Context) error {
		return apperrors.New(apperrors.Unavailable, "업스트림 장애")
	})

	t.Run("성공 요청 기록 및 세션 마스킹", func(t *testing.T) {
		buf.Reset()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/manga/manga-aa000001?token=abcdefgh12345678", nil)
		req.Header.Set("X-Session-Token", "session-secret-value")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		entries := logEntries(t, buf)
		require.Len(t, entries, 1)

		entry := entries[0]
		assert.Equal(t, constants.LogMsgHTTPRequest, entry["msg"])
		assert.Equal(t, http.MethodGet, entry["method"])
		assert.Equal(t, "/api/v1/manga/manga-aa000001", entry["path"])
		assert.Equal(t, float64(http.StatusOK), entry["status"])
		assert.Equal(t, constants.CacheMiss, entry["cache"])
		assert.Equal(t, "sess***alue", entry["session"])
		assert.NotContains(t, entry["uri"], "abcdefgh12345678")
		assert.NotContains(t, buf.String(), "session-secret-value")
	})

	t.Run("에러는 에러 핸들러 처리 후 상태 코드 기록", func(t *testing.T) {
		buf.Reset()

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))

		assert.Equal(t, http.StatusBadGateway, rec.Code)

		entries := logEntries(t, buf)
		require.Len(t, entries, 1)
		assert.Equal(t, float64(http.StatusBadGateway), entries[0]["status"])
		assert.NotContains(t, entries[0], "session")
	})
}
