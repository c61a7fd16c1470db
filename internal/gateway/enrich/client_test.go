package enrich

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/darkkaiser/manga-gateway/internal/config"
	apperrors "github.com/darkkaiser/manga-gateway/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := New(config.EnrichmentConfig{
		Enabled:       true,
		BaseURL:       srv.URL + "/",
		Timeout:       2 * time.Second,
		MinConfidence: 0.8,
	})
	require.NotNil(t, c)
	return c
}

func TestNew_Disabled(t *testing.T) {
	t.Parallel()

	c := New(config.EnrichmentConfig{Enabled: false, BaseURL: "http://localhost"})
	assert.Nil(t, c)

	rec, ok, err := c.Manga(context.Background(), "manga-a")
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, rec)

	covers, err := c.Covers(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, covers)
}

func TestClient_Manga(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/manga/manga-aa951409":
			_, _ = w.Write([]byte(`{"id":"manga-aa951409","coverImageUrl":"https://img.example.com/op.jpg","titles":{"en":"One Piece","ja":"ワンピース"},"confidence":0.97}`))
		case "/api/manga/manga-weak":
			_, _ = w.Write([]byte(`{"id":"manga-weak","coverImageUrl":"https://img.example.com/weak.jpg","confidence":0.3}`))
		case "/api/manga/manga-broken":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	tests := []struct {
		name    string
		id      string
		ok      bool
		errType apperrors.ErrorType
	}{
		{"신뢰도 높은 항목", "manga-aa951409", true, apperrors.Unknown},
		{"신뢰도 미달", "manga-weak", false, apperrors.Unknown},
		{"항목 없음", "manga-missing", false, apperrors.Unknown},
		{"서비스 오류", "manga-broken", false, apperrors.ExecutionFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, ok, err := c.Manga(context.Background(), tt.id)
			if tt.errType != apperrors.Unknown {
				require.Error(t, err)
				assert.True(t, apperrors.Is(err, tt.errType))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, "https://img.example.com/op.jpg", rec.CoverImageURL)
				assert.Equal(t, "ワンピース", rec.Titles["ja"])
			}
		})
	}
}

func TestClient_Covers(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/covers", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[
			{"id":"manga-a","coverImageUrl":"https://img.example.com/a.jpg","confidence":0.9},
			{"id":"manga-b","coverImageUrl":"https://img.example.com/b.jpg","confidence":0.5},
			{"id":"","coverImageUrl":"https://img.example.com/c.jpg","confidence":1}
		]}`))
	})

	covers, err := c.Covers(context.Background())
	require.NoError(t, err)
	require.Len(t, covers, 1)
	assert.Equal(t, "https://img.example.com/a.jpg", covers["manga-a"].CoverImageURL)
}

func TestClient_Unreachable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	c := New(config.EnrichmentConfig{Enabled: true, BaseURL: baseURL, Timeout: time.Second, MinConfidence: 0.8})

	_, err := c.Covers(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.Unavailable))
}
