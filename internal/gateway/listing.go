package gateway

import (
	"context"

	"github.com/darkkaiser/manga-gateway/internal/gateway/assemble"
	"github.com/darkkaiser/manga-gateway/internal/gateway/cache"
	"github.com/darkkaiser/manga-gateway/internal/gateway/fetcher"
	"github.com/darkkaiser/manga-gateway/internal/gateway/model"
	"github.com/darkkaiser/manga-gateway/internal/gateway/search"
	apperrors "github.com/darkkaiser/manga-gateway/internal/pkg/errors"
)

// SearchQuery 검색 조건. 장르는 이름으로 받으며 알 수 없는 이름은 무시합니다.
type SearchQuery struct {
	Query   string
	Include []string
	Exclude []string
	Page    int
	OrderBy string
}

// GenreQuery 장르 목록 조건. 포함 장르가 최소 하나는 식별되어야 합니다.
type GenreQuery struct {
	Include []string
	Exclude []string
	Page    int
	OrderBy string
}

// listingParams 검증과 장르 ID 변환을 마친 목록 요청
type listingParams struct {
	include []int
	exclude []int
	orderBy string
	page    int
}

func (g *Gateway) resolveListing(include, exclude []string, page int, orderBy string, includeRequired bool) (listingParams, error) {
	if err := validatePage(page); err != nil {
		return listingParams{}, err
	}

	normalized, err := normalizeOrderBy(orderBy)
	if err != nil {
		return listingParams{}, err
	}

	p := listingParams{
		include: g.genres.IDs(include),
		exclude: g.genres.IDs(exclude),
		orderBy: normalized,
		page:    page,
	}

	// 이름을 지정했는데 하나도 식별되지 않으면 조건 없는 목록으로 바뀌므로 요청 자체를 거부합니다.
	if len(p.include) == 0 && (includeRequired || len(include) > 0) {
		return listingParams{}, apperrors.Newf(apperrors.InvalidInput, "식별 가능한 포함 장르가 없습니다: %v", include)
	}

	return p, nil
}

// SearchManga 검색어와 장르 조건으로 업스트림 고급 검색 결과 한 페이지를 조회합니다.
//
// 업스트림 결과 페이지를 캐시한 뒤 제목 퍼지 매칭으로 거르고 유사도 순으로 정렬합니다.
// 검색어가 비어 있으면 업스트림 순서를 그대로 반환합니다. totalPages는 항상 업스트림 값입니다.
func (g *Gateway) SearchManga(ctx context.Context, q SearchQuery) (Result[model.Page[model.SearchHit]], error) {
	p, err := g.resolveListing(q.Include, q.Exclude, q.Page, q.OrderBy, false)
	if err != nil {
		return Result[model.Page[model.SearchHit]]{}, fail(opSearchManga, "", err)
	}

	keyword := searchKeyword(q.Query)
	rawURL := g.urls.advancedSearch(p.include, p.exclude, p.orderBy, p.page, keyword)

	loaded, err := load(ctx, g, cache.SearchKey(keyword, p.include, p.exclude, p.orderBy, p.page), cache.KindSearch, func(ctx context.Context) (*model.Page[model.SearchHit], error) {
		return g.fetchListing(ctx, opSearchManga, rawURL)
	})
	if err != nil {
		return Result[model.Page[model.SearchHit]]{}, fail(opSearchManga, rawURL, err)
	}

	hits := search.Filter(g.matcher, q.Query, loaded.Value.Items, func(h model.SearchHit) string {
		return h.Title
	})

	return Result[model.Page[model.SearchHit]]{
		Value:    model.Page[model.SearchHit]{Items: hits, TotalPages: loaded.Value.TotalPages},
		CacheHit: loaded.Hit,
		TTL:      loaded.TTL,
	}, nil
}

// ListByGenre 장르 조건으로 업스트림 목록 한 페이지를 조회합니다.
func (g *Gateway) ListByGenre(ctx context.Context, q GenreQuery) (Result[model.Page[model.SearchHit]], error) {
	p, err := g.resolveListing(q.Include, q.Exclude, q.Page, q.OrderBy, true)
	if err != nil {
		return Result[model.Page[model.SearchHit]]{}, fail(opListByGenre, "", err)
	}

	rawURL := g.urls.advancedSearch(p.include, p.exclude, p.orderBy, p.page, "")

	loaded, err := load(ctx, g, cache.GenreKey(p.include, p.exclude, p.orderBy, p.page), cache.KindGenre, func(ctx context.Context) (*model.Page[model.SearchHit], error) {
		return g.fetchListing(ctx, opListByGenre, rawURL)
	})
	if err != nil {
		return Result[model.Page[model.SearchHit]]{}, fail(opListByGenre, rawURL, err)
	}

	return Result[model.Page[model.SearchHit]]{Value: *loaded.Value, CacheHit: loaded.Hit, TTL: loaded.TTL}, nil
}

// fetchListing 목록 페이지는 세션과 무관하므로 익명 세션으로 요청합니다.
func (g *Gateway) fetchListing(ctx context.Context, op, rawURL string) (*model.Page[model.SearchHit], error) {
	sess, err := g.session("")
	if err != nil {
		return nil, err
	}

	doc, err := g.fetch(ctx, op, fetcher.Request{URL: rawURL, Session: sess})
	if err != nil {
		return nil, err
	}

	return assemble.Listing(doc)
}
