package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/darkkaiser/manga-gateway/internal/gateway"
	"github.com/darkkaiser/manga-gateway/internal/gateway/extract"
	"github.com/darkkaiser/manga-gateway/internal/gateway/model"
	"github.com/darkkaiser/manga-gateway/internal/pkg/validator"
	"github.com/darkkaiser/manga-gateway/internal/service/api/constants"
	"github.com/darkkaiser/manga-gateway/internal/service/api/httputil"
	applog "github.com/darkkaiser/manga-gateway/pkg/log"
	"github.com/labstack/echo/v4"
)

// Gateway v1 핸들러가 사용하는 게이트웨이 기능
type Gateway interface {
	GetManga(ctx context.Context, mangaID, sessionToken string) (gateway.Result[*model.Manga], error)
	ListChaptersForManga(ctx context.Context, mangaID string, page, pageSize int, sessionToken string) (gateway.Result[model.Page[model.ChapterSummary]], error)
	GetChapter(ctx context.Context, mangaID, chapterID string, withDimensions bool, sessionToken string) (gateway.Result[*model.Chapter], error)
	ListBookmarks(ctx context.Context, sessionToken string, page int) (gateway.Result[model.Page[model.Bookmark]], error)
	SearchManga(ctx context.Context, q gateway.SearchQuery) (gateway.Result[model.Page[model.SearchHit]], error)
	ListByGenre(ctx context.Context, q gateway.GenreQuery) (gateway.Result[model.Page[model.SearchHit]], error)
	Genres() []extract.Genre
}

// Config v1 핸들러 동작 설정
type Config struct {
	// SessionCookie 세션 토큰을 담는 요청 쿠키 이름
	SessionCookie string

	// SessionHeader 세션 토큰을 담는 요청 헤더 이름 (쿠키보다 우선)
	SessionHeader string

	MaxPageSize int
}

// genreTableMaxAge 장르 테이블은 빌드에 포함된 정적 데이터입니다.
const genreTableMaxAge = 24 * time.Hour

// Handler 게이트웨이 작업을 REST 엔드포인트로 노출합니다.
type Handler struct {
	gateway Gateway
	config  Config
}

func NewHandler(g Gateway, cfg Config) *Handler {
	if g == nil {
		panic(constants.PanicMsgGatewayRequired)
	}

	return &Handler{
		gateway: g,
		config:  cfg,
	}
}

// sessionToken 호출자의 업스트림 세션 토큰을 헤더, 쿠키 순서로 찾습니다.
func (h *Handler) sessionToken(c echo.Context) string {
	if h.config.SessionHeader != "" {
		if token := c.Request().Header.Get(h.config.SessionHeader); token != "" {
			return token
		}
	}
	if h.config.SessionCookie != "" {
		if ck, err := c.Cookie(h.config.SessionCookie); err == nil {
			return ck.Value
		}
	}
	return ""
}

// bindQuery 쿼리 파라미터를 req에 바인딩한 뒤 검증합니다. 쿼리에 없는 필드는 req의 기존 값(기본값)을 유지합니다.
func bindQuery(c echo.Context, req any) error {
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, req); err != nil {
		return httputil.NewBadRequestError(constants.ErrMsgInvalidQuery)
	}
	if err := validator.Struct(req); err != nil {
		return httputil.NewBadRequestError(validator.FormatValidationError(err))
	}
	return nil
}

// cachePolicy 응답의 Cache-Control 정책
type cachePolicy int

const (
	// cacheShared 세션과 무관한 데이터. TTL 동안 공유 캐시에 저장 가능
	cacheShared cachePolicy = iota

	// cacheNone 세션별 데이터. 어디에도 저장하지 않음
	cacheNone
)

// respond 게이트웨이 결과를 JSON으로 응답하면서 캐시 헤더와 업스트림 Set-Cookie를 함께 내려줍니다.
func respond[T any](c echo.Context, r gateway.Result[T], policy cachePolicy) error {
	header := c.Response().Header()

	for _, cookie := range r.SetCookies {
		header.Add(echo.HeaderSetCookie, cookie)
	}

	switch {
	case policy == cacheNone:
		header.Set(echo.HeaderCacheControl, constants.CacheControlPrivate)
	case r.TTL <= 0:
		header.Set(echo.HeaderCacheControl, constants.CacheControlNoCache)
	case len(r.SetCookies) > 0:
		// 세션 쿠키가 실린 응답은 공유 캐시에 저장되면 안 됩니다.
		header.Set(echo.HeaderCacheControl, fmt.Sprintf("private, max-age=%d", maxAge(r.TTL)))
	default:
		header.Set(echo.HeaderCacheControl, fmt.Sprintf("public, max-age=%d", maxAge(r.TTL)))
	}

	if policy == cacheShared {
		if r.CacheHit {
			header.Set(constants.HeaderXCache, constants.CacheHit)
		} else {
			header.Set(constants.HeaderXCache, constants.CacheMiss)
		}
	}

	return c.JSON(http.StatusOK, r.Value)
}

func maxAge(ttl time.Duration) int64 {
	return int64(ttl / time.Second)
}

func (h *Handler) log(c echo.Context) *applog.Entry {
	return applog.WithComponentAndFields(constants.ComponentV1Handler, applog.Fields{
		"path":       c.Request().URL.Path,
		"remote_ip":  c.RealIP(),
		"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
	})
}
