package assemble

import (
	"testing"
	"time"

	apperrors "github.com/darkkaiser/manga-gateway/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookmarks(t *testing.T) {
	t.Parallel()

	page, err := Bookmarks(newTestDocument(t, "https://user.mngusr.com/bookmark_get_list_full", bookmarkResponseJSON))
	require.NoError(t, err)

	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Items, 2, "행 ID가 없는 항목은 제외")

	first := page.Items[0]
	assert.Equal(t, "501", first.BookmarkID)
	assert.Equal(t, "tok-501", first.DeleteToken, "HTML 조각의 행 클래스(bm-it-501)로 병합")
	assert.Equal(t, "41890", first.StoryID)
	assert.Equal(t, "manga-aa951409", first.MangaID)
	assert.Equal(t, "One Piece", first.StoryName)
	assert.True(t, first.UpToDate, "\"9\"와 \"9.0\"은 같은 챕터")
	assert.Equal(t, time.Date(2025, time.June, 14, 10, 21, 0, 0, time.UTC), first.LastUpdated)
	assert.Empty(t, first.LastUpdatedLabel)

	second := page.Items[1]
	assert.Equal(t, "502", second.BookmarkID)
	assert.Empty(t, second.DeleteToken, "HTML 조각에 없는 행은 토큰 없이 유지")
	assert.False(t, second.UpToDate)
	assert.Equal(t, "10", second.LatestChapterNumber)
	assert.Equal(t, "3 hours ago", second.LastUpdatedLabel)
	assert.Equal(t, testFetchedAt.Add(-3*time.Hour), second.LastUpdated)
}

func TestBookmarks_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		errType apperrors.ErrorType
	}{
		{"세션 만료", `{"result":"error","msg":"Please login to continue"}`, apperrors.Unauthorized},
		{"기타 거부", `{"result":"error","msg":"Too many bookmarks"}`, apperrors.ExecutionFailed},
		{"JSON 아님", `<html>maintenance</html>`, apperrors.ParsingFailed},
		{"빈 본문", "  ", apperrors.EmptyResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Bookmarks(newTestDocument(t, "https://user.mngusr.com/bookmark_get_list_full", tt.body))
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, tt.errType), "got %v", err)
		})
	}
}

func TestBookmarks_EmptyList(t *testing.T) {
	t.Parallel()

	page, err := Bookmarks(newTestDocument(t, "https://user.mngusr.com/bookmark_get_list_full", `{"result":"ok","data":[],"total_page":0}`))
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.TotalPages)
}
