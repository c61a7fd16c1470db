package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/darkkaiser/manga-gateway/internal/gateway"
	"github.com/darkkaiser/manga-gateway/internal/gateway/extract"
	"github.com/darkkaiser/manga-gateway/internal/gateway/model"
	apperrors "github.com/darkkaiser/manga-gateway/internal/pkg/errors"
	"github.com/darkkaiser/manga-gateway/internal/service/api/constants"
	"github.com/darkkaiser/manga-gateway/internal/service/api/httputil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSessionHeader = "X-Session-Token"

func newTestServer(t *testing.T) (*echo.Echo, *mockGateway) {
	t.Helper()

	g := new(mockGateway)
	t.Cleanup(func() { g.AssertExpectations(t) })

	h := NewHandler(g, Config{
		SessionCookie: "user_acc",
		SessionHeader: testSessionHeader,
		MaxPageSize:   50,
	})

	e := echo.New()
	e.HTTPErrorHandler = httputil.ErrorHandler

	api := e.Group("/api/v1")
	api.GET("/manga/:id", h.GetMangaHandler)
	api.GET("/manga/:id/chapters", h.ListChaptersHandler)
	api.GET("/manga/:id/chapters/:chapterId", h.GetChapterHandler)
	api.GET("/search", h.SearchMangaHandler)
	api.GET("/genres", h.ListByGenreHandler)
	api.GET("/genres/table", h.GenreTableHandler)
	api.GET("/bookmarks", h.ListBookmarksHandler)

	return e, g
}

func get(e *echo.Echo, target string, modify ...func(*http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, m := range modify {
		m(req)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func withHeader(key, value string) func(*http.Request) {
	return func(r *http.Request) { r.Header.Set(key, value) }
}

func withCookie(name, value string) func(*http.Request) {
	return func(r *http.Request) { r.AddCookie(&http.Cookie{Name: name, Value: value}) }
}

func TestNewHandler_NilGateway(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, constants.PanicMsgGatewayRequired, func() {
		NewHandler(nil, Config{})
	})
}

func TestGetMangaHandler(t *testing.T) {
	t.Parallel()

	manga := &model.Manga{
		ID:            "manga-aa000001",
		Titles:        map[string]string{model.TitleDefault: "One Piece"},
		CoverImageURL: "https://img.example.com/cover.jpg",
	}

	tests := []struct {
		name                 string
		result               gateway.Result[*model.Manga]
		expectedCacheControl string
		expectedXCache       string
		expectedCookies      []string
	}{
		{
			name:                 "캐시 미스 - 세션 갱신 쿠키 전달",
			result:               gateway.Result[*model.Manga]{Value: manga, SetCookies: []string{"user_acc=rotated; Path=/"}, TTL: 10 * time.Minute},
			expectedCacheControl: "private, max-age=600",
			expectedXCache:       constants.CacheMiss,
			expectedCookies:      []string{"user_acc=rotated; Path=/"},
		},
		{
			name:                 "캐시 적중 - 남은 TTL로 max-age 설정",
			result:               gateway.Result[*model.Manga]{Value: manga, CacheHit: true, TTL: 90 * time.Second},
			expectedCacheControl: "public, max-age=90",
			expectedXCache:       constants.CacheHit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e, g := newTestServer(t)
			g.On("GetManga", mock.Anything, "manga-aa000001", "tok-1").Return(tt.result, nil).Once()

			rec := get(e, "/api/v1/manga/manga-aa000001", withCookie("user_acc", "tok-1"))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.expectedCacheControl, rec.Header().Get(echo.HeaderCacheControl))
			assert.Equal(t, tt.expectedXCache, rec.Header().Get(constants.HeaderXCache))
			assert.Equal(t, tt.expectedCookies, rec.Header().Values(echo.HeaderSetCookie))

			var got model.Manga
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, "manga-aa000001", got.ID)
			assert.Equal(t, "One Piece", got.Title())
		})
	}
}

func TestGetMangaHandler_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedData   string
	}{
		{"잘못된 ID", apperrors.New(apperrors.InvalidInput, "mangaId 형식이 올바르지 않습니다"), http.StatusBadRequest, "mangaId 형식이 올바르지 않습니다"},
		{"존재하지 않는 만화", apperrors.New(apperrors.NotFound, "요청한 항목을 찾을 수 없습니다"), http.StatusNotFound, "요청한 항목을 찾을 수 없습니다"},
		{"업스트림 요청 제한", apperrors.New(apperrors.RateLimited, "업스트림이 429 상태 코드로 응답했습니다"), http.StatusTooManyRequests, "업스트림이 429 상태 코드로 응답했습니다"},
		{"업스트림 장애", apperrors.New(apperrors.Unavailable, "업스트림에 연결할 수 없습니다"), http.StatusBadGateway, "업스트림에 연결할 수 없습니다"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e, g := newTestServer(t)
			g.On("GetManga", mock.Anything, "manga-aa000001", "").Return(gateway.Result[*model.Manga]{}, tt.err).Once()

			rec := get(e, "/api/v1/manga/manga-aa000001")

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.JSONEq(t, `{"result":"error","data":"`+tt.expectedData+`"}`, rec.Body.String())
			assert.Empty(t, rec.Header().Get(echo.HeaderCacheControl))
		})
	}
}

func TestSessionToken_HeaderPrecedence(t *testing.T) {
	t.Parallel()

	e, g := newTestServer(t)
	g.On("GetManga", mock.Anything, "manga-aa000001", "from-header").
		Return(gateway.Result[*model.Manga]{Value: &model.Manga{ID: "manga-aa000001"}, TTL: time.Minute}, nil).Once()

	rec := get(e, "/api/v1/manga/manga-aa000001",
		withCookie("user_acc", "from-cookie"),
		withHeader(testSessionHeader, "from-header"),
	)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListChaptersHandler(t *testing.T) {
	t.Parallel()

	page := model.Page[model.ChapterSummary]{
		Items:      []model.ChapterSummary{{ID: "chapter-2", ParentMangaID: "manga-aa000001"}},
		TotalPages: 3,
	}
	ok := gateway.Result[model.Page[model.ChapterSummary]]{Value: page, TTL: 15 * time.Minute}

	tests := []struct {
		name             string
		query            string
		expectedPage     int
		expectedPageSize int
		expectedStatus   int
	}{
		{"파라미터 없음 - 전체 목록", "", 0, 0, http.StatusOK},
		{"페이지 지정", "?page=2&pageSize=1", 2, 1, http.StatusOK},
		{"페이지 크기 생략 시 최대값", "?page=2", 2, 50, http.StatusOK},
		{"페이지 크기 초과", "?page=1&pageSize=51", 0, 0, http.StatusBadRequest},
		{"음수 페이지", "?page=-1", 0, 0, http.StatusBadRequest},
		{"숫자가 아닌 페이지", "?page=abc", 0, 0, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e, g := newTestServer(t)
			if tt.expectedStatus == http.StatusOK {
				g.On("ListChaptersForManga", mock.Anything, "manga-aa000001", tt.expectedPage, tt.expectedPageSize, "").Return(ok, nil).Once()
			}

			rec := get(e, "/api/v1/manga/manga-aa000001/chapters"+tt.query)

			require.Equal(t, tt.expectedStatus, rec.Code, rec.Body.String())
			if tt.expectedStatus == http.StatusOK {
				assert.JSONEq(t, `{"items":[{"id":"chapter-2","parentMangaId":"manga-aa000001"}],"totalPages":3}`, extractFields(t, rec.Body.Bytes()))
				assert.Equal(t, "public, max-age=900", rec.Header().Get(echo.HeaderCacheControl))
			}
		})
	}
}

// extractFields 챕터 요약의 id/parentMangaId와 totalPages만 남겨 비교하기 쉽게 만듭니다.
func extractFields(t *testing.T, body []byte) string {
	t.Helper()

	var page model.Page[model.ChapterSummary]
	require.NoError(t, json.Unmarshal(body, &page))

	type item struct {
		ID            string `json:"id"`
		ParentMangaID string `json:"parentMangaId"`
	}
	out := struct {
		Items      []item `json:"items"`
		TotalPages int    `json:"totalPages"`
	}{TotalPages: page.TotalPages}
	for _, c := range page.Items {
		out.Items = append(out.Items, item{ID: c.ID, ParentMangaID: c.ParentMangaID})
	}

	b, err := json.Marshal(out)
	require.NoError(t, err)
	return string(b)
}

func TestGetChapterHandler(t *testing.T) {
	t.Parallel()

	chapter := &model.Chapter{
		ChapterSummary: model.ChapterSummary{ID: "chapter-12", ParentMangaID: "manga-aa000001"},
		Images:         []string{"https://img.example.com/1.png"},
	}

	tests := []struct {
		name                 string
		query                string
		withDimensions       bool
		result               gateway.Result[*model.Chapter]
		expectedCacheControl string
		expectedXCache       string
	}{
		{
			name:                 "기본 조회",
			query:                "",
			result:               gateway.Result[*model.Chapter]{Value: chapter, CacheHit: true, TTL: 5 * time.Minute},
			expectedCacheControl: "public, max-age=300",
			expectedXCache:       constants.CacheHit,
		},
		{
			name:                 "크기 조회 실패 시 캐시하지 않음",
			query:                "?dimensions=true",
			withDimensions:       true,
			result:               gateway.Result[*model.Chapter]{Value: chapter},
			expectedCacheControl: constants.CacheControlNoCache,
			expectedXCache:       constants.CacheMiss,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e, g := newTestServer(t)
			g.On("GetChapter", mock.Anything, "manga-aa000001", "chapter-12", tt.withDimensions, "").Return(tt.result, nil).Once()

			rec := get(e, "/api/v1/manga/manga-aa000001/chapters/chapter-12"+tt.query)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.expectedCacheControl, rec.Header().Get(echo.HeaderCacheControl))
			assert.Equal(t, tt.expectedXCache, rec.Header().Get(constants.HeaderXCache))
		})
	}
}

func TestSearchMangaHandler(t *testing.T) {
	t.Parallel()

	hits := model.Page[model.SearchHit]{Items: []model.SearchHit{{ID: "manga-aa000001", Title: "One Piece"}}, TotalPages: 17}

	t.Run("쿼리 파라미터 변환", func(t *testing.T) {
		t.Parallel()

		e, g := newTestServer(t)
		g.On("SearchManga", mock.Anything, gateway.SearchQuery{
			Query:   "one pecee",
			Include: []string{"Action", "Romance"},
			Exclude: []string{"Ecchi"},
			Page:    3,
			OrderBy: "topview",
		}).Return(gateway.Result[model.Page[model.SearchHit]]{Value: hits, TTL: 5 * time.Minute}, nil).Once()

		rec := get(e, "/api/v1/search?q=one+pecee&include=Action,+Romance&exclude=Ecchi&page=3&orderBy=topview")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"totalPages":17`)
		assert.Equal(t, constants.CacheMiss, rec.Header().Get(constants.HeaderXCache))
	})

	t.Run("페이지 기본값 1", func(t *testing.T) {
		t.Parallel()

		e, g := newTestServer(t)
		g.On("SearchManga", mock.Anything, gateway.SearchQuery{Page: 1}).
			Return(gateway.Result[model.Page[model.SearchHit]]{Value: hits, TTL: time.Minute}, nil).Once()

		rec := get(e, "/api/v1/search")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("페이지 0은 게이트웨이 호출 없이 400", func(t *testing.T) {
		t.Parallel()

		e, _ := newTestServer(t)

		rec := get(e, "/api/v1/search?page=0")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "page는 최소 1 이상이어야 합니다")
	})

	t.Run("식별할 수 없는 장르", func(t *testing.T) {
		t.Parallel()

		e, g := newTestServer(t)
		g.On("SearchManga", mock.Anything, mock.Anything).
			Return(gateway.Result[model.Page[model.SearchHit]]{}, apperrors.New(apperrors.InvalidInput, "식별할 수 있는 장르가 없습니다")).Once()

		rec := get(e, "/api/v1/search?include=Nope")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListByGenreHandler(t *testing.T) {
	t.Parallel()

	t.Run("정상 조회", func(t *testing.T) {
		t.Parallel()

		e, g := newTestServer(t)
		g.On("ListByGenre", mock.Anything, gateway.GenreQuery{Include: []string{"Action"}, Page: 2}).
			Return(gateway.Result[model.Page[model.SearchHit]]{Value: model.Page[model.SearchHit]{Items: []model.SearchHit{}, TotalPages: 5}, CacheHit: true, TTL: 20 * time.Minute}, nil).Once()

		rec := get(e, "/api/v1/genres?include=Action&page=2")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"items":[],"totalPages":5}`, rec.Body.String())
		assert.Equal(t, "public, max-age=1200", rec.Header().Get(echo.HeaderCacheControl))
		assert.Equal(t, constants.CacheHit, rec.Header().Get(constants.HeaderXCache))
	})

	t.Run("포함 장르 누락", func(t *testing.T) {
		t.Parallel()

		e, _ := newTestServer(t)

		rec := get(e, "/api/v1/genres")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"result":"error","data":"include는 필수입니다"}`, rec.Body.String())
	})
}

func TestGenreTableHandler(t *testing.T) {
	t.Parallel()

	e, g := newTestServer(t)
	g.On("Genres").Return([]extract.Genre{{Name: "Action", ID: 2}, {Name: "Adult", ID: 3}}).Once()

	rec := get(e, "/api/v1/genres/table")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"name":"Action","id":2},{"name":"Adult","id":3}]`, rec.Body.String())
	assert.Equal(t, "public, max-age=86400", rec.Header().Get(echo.HeaderCacheControl))
}

func TestListBookmarksHandler(t *testing.T) {
	t.Parallel()

	t.Run("세션별 응답은 캐시하지 않음", func(t *testing.T) {
		t.Parallel()

		e, g := newTestServer(t)
		g.On("ListBookmarks", mock.Anything, "tok-501", 2).Return(gateway.Result[model.Page[model.Bookmark]]{
			Value:      model.Page[model.Bookmark]{Items: []model.Bookmark{{BookmarkID: "501", StoryName: "One Piece", UpToDate: true}}, TotalPages: 1},
			SetCookies: []string{"user_acc=tok-502; Path=/"},
		}, nil).Once()

		rec := get(e, "/api/v1/bookmarks?page=2", withHeader(testSessionHeader, "tok-501"))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, constants.CacheControlPrivate, rec.Header().Get(echo.HeaderCacheControl))
		assert.Empty(t, rec.Header().Get(constants.HeaderXCache))
		assert.Equal(t, []string{"user_acc=tok-502; Path=/"}, rec.Header().Values(echo.HeaderSetCookie))
		assert.Contains(t, rec.Body.String(), `"bookmarkId":"501"`)
	})

	t.Run("세션 없음", func(t *testing.T) {
		t.Parallel()

		e, g := newTestServer(t)
		g.On("ListBookmarks", mock.Anything, "", 1).
			Return(gateway.Result[model.Page[model.Bookmark]]{}, apperrors.New(apperrors.Unauthorized, "세션 토큰이 필요합니다")).Once()

		rec := get(e, "/api/v1/bookmarks")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"result":"error","data":"세션 토큰이 필요합니다"}`, rec.Body.String())
	})
}
