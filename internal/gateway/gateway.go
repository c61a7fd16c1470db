// Package gateway 스크래핑 게이트웨이의 Facade입니다.
//
// 공개 연산은 모두 같은 흐름을 따릅니다.
//
//	캐시 키 결정 -> 캐시 적중 시 반환
//	-> 업스트림 요청 (Unavailable이면 1회 재시도) -> 실패 시 분류된 에러 반환
//	-> 엔티티 조립 -> 필수 필드 누락(Incomplete)이면 NotFound로 변환
//	-> 캐시에 저장 후 반환
//
// 업스트림 호출은 호출자의 취소와 분리되어 끝까지 수행되며(시간 제한은 Fetcher가 적용),
// 완료된 결과는 호출자가 떠났더라도 캐시에 저장됩니다.
package gateway

import (
	"context"
	"time"

	"github.com/darkkaiser/manga-gateway/internal/config"
	"github.com/darkkaiser/manga-gateway/internal/gateway/cache"
	"github.com/darkkaiser/manga-gateway/internal/gateway/enrich"
	"github.com/darkkaiser/manga-gateway/internal/gateway/extract"
	"github.com/darkkaiser/manga-gateway/internal/gateway/fetcher"
	"github.com/darkkaiser/manga-gateway/internal/gateway/imagesize"
	"github.com/darkkaiser/manga-gateway/internal/gateway/search"
	apperrors "github.com/darkkaiser/manga-gateway/internal/pkg/errors"
	applog "github.com/darkkaiser/manga-gateway/pkg/log"
)

const component = "gateway"

// 로그에 기록하는 연산 이름
const (
	opGetManga      = "getManga"
	opGetChapter    = "getChapter"
	opListChapters  = "listChaptersForManga"
	opListBookmarks = "listBookmarks"
	opSearchManga   = "searchManga"
	opListByGenre   = "listByGenre"
)

// Enricher 보조 조회 서비스. 실패와 부재는 모두 "보강 없음"으로 처리됩니다.
type Enricher interface {
	Manga(ctx context.Context, mangaID string) (enrich.Record, bool, error)
	Covers(ctx context.Context) (map[string]enrich.Record, error)
}

// Result 연산 결과와 응답 헤더 구성에 필요한 부가 정보
type Result[T any] struct {
	Value T

	// SetCookies 이번 호출에서 업스트림이 세션을 갱신한 경우의 Set-Cookie 원문. 캐시 적중 시에는 항상 비어 있습니다.
	SetCookies []string

	CacheHit bool

	// TTL 응답을 캐시해도 되는 시간. 0이면 캐시하면 안 되는 응답입니다.
	TTL time.Duration
}

// Gateway 스크래핑 게이트웨이 Facade
type Gateway struct {
	fetcher   fetcher.Fetcher
	forwarder *fetcher.Forwarder
	urls      urlBuilder

	store  *cache.Store
	policy cache.Policy

	matcher  *search.Matcher
	genres   *extract.GenreTable
	enricher Enricher
	prober   *imagesize.Prober

	images   config.ImagesConfig
	bookmark bookmarkEndpoint
}

type bookmarkEndpoint struct {
	url    string
	source string
}

// Option Gateway 생성 옵션
type Option func(*Gateway)

// WithFetcher 업스트림 Fetcher를 교체합니다. (테스트에서 목 Fetcher 주입)
func WithFetcher(f fetcher.Fetcher) Option {
	return func(g *Gateway) {
		g.fetcher = f
	}
}

// WithStore 캐시 저장소를 교체합니다.
func WithStore(s *cache.Store) Option {
	return func(g *Gateway) {
		g.store = s
	}
}

// WithEnricher 보조 조회 서비스를 교체합니다. nil이면 보강을 사용하지 않습니다.
func WithEnricher(e Enricher) Option {
	return func(g *Gateway) {
		g.enricher = e
	}
}

// New 설정으로 Gateway를 구성합니다.
func New(cfg *config.AppConfig, opts ...Option) *Gateway {
	if cfg == nil {
		panic("AppConfig는 필수입니다")
	}

	g := &Gateway{
		forwarder: fetcher.NewForwarderFromConfig(cfg.Upstream),
		urls:      newURLBuilder(cfg.Upstream.BaseURL, cfg.Upstream.ChapterBaseURL),
		policy:    cache.NewPolicy(cfg.Cache),
		matcher:   search.NewMatcher(cfg.Search.Threshold),
		genres:    extract.DefaultGenres(),
		images:    cfg.Images,
		bookmark: bookmarkEndpoint{
			url:    cfg.Upstream.BookmarkURL,
			source: cfg.Upstream.BookmarkSource,
		},
	}

	// nil *enrich.Client를 인터페이스에 담으면 nil 비교가 실패하므로 활성화된 경우에만 설정합니다.
	if c := enrich.New(cfg.Enrichment); c != nil {
		g.enricher = c
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.fetcher == nil {
		g.fetcher = fetcher.New(cfg.Upstream)
	}
	if g.store == nil {
		g.store = cache.NewStore()
	}
	g.prober = imagesize.NewProber(g.fetcher, cfg.Images, cfg.Upstream.UserAgent)

	return g
}

// Store Janitor 등 외부에서 캐시 수명주기를 관리할 때 사용합니다.
func (g *Gateway) Store() *cache.Store {
	return g.store
}

// Genres 검색에 사용할 수 있는 장르 목록
func (g *Gateway) Genres() []extract.Genre {
	return g.genres.All()
}

// fetch 업스트림 호출 한 건. 네트워크 계열 실패(Unavailable)만 지연 없이 한 번 더 시도합니다.
func (g *Gateway) fetch(ctx context.Context, op string, req fetcher.Request) (*fetcher.Document, error) {
	doc, err := fetcher.Fetch(ctx, g.fetcher, req)
	if err != nil && apperrors.UnderlyingType(err).Retryable() && ctx.Err() == nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"op":    op,
			"url":   fetcher.RedactRawURL(req.URL),
			"error": err.Error(),
		}).Warn("업스트림 호출 실패, 1회 재시도합니다")

		doc, err = fetcher.Fetch(ctx, g.fetcher, req)
	}

	if err != nil {
		return nil, err
	}
	return doc, nil
}

// session 호출자 토큰으로 요청 단위 세션을 만듭니다.
func (g *Gateway) session(token string) (*fetcher.Session, error) {
	return g.forwarder.Session(token)
}

// fail 실패를 연산 이름, 마스킹된 URL과 함께 기록하고 Facade 경계의 에러로 변환합니다.
//
// 필수 필드 누락(Incomplete)은 "요청한 엔티티가 아닌 페이지"이므로 NotFound로 바꿉니다.
func fail(op, rawURL string, err error) error {
	fields := applog.Fields{
		"op":         op,
		"error_type": apperrors.UnderlyingType(err).String(),
		"error":      err.Error(),
	}
	if rawURL != "" {
		fields["url"] = fetcher.RedactRawURL(rawURL)
	}

	entry := applog.WithComponentAndFields(component, fields)

	switch apperrors.TypeOf(err) {
	case apperrors.InvalidInput:
		entry.Debug("요청 파라미터 검증 실패")
		return err
	case apperrors.Incomplete:
		entry.Info("필수 필드가 없는 페이지를 찾을 수 없음으로 처리합니다")
		return apperrors.Wrap(err, apperrors.NotFound, "요청한 항목을 찾을 수 없습니다")
	}

	entry.Warn("게이트웨이 연산 실패")
	return err
}

// load 캐시 적재 함수를 호출자 취소와 분리하여 실행합니다.
func load[T any](ctx context.Context, g *Gateway, key string, kind cache.Kind, fn func(context.Context) (T, error)) (cache.Loaded[T], error) {
	return cache.GetOrLoad(ctx, g.store, key, g.policy.TTL(kind), func(ctx context.Context) (T, error) {
		return fn(context.WithoutCancel(ctx))
	})
}
