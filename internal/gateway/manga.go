package gateway

import (
	"context"
	"strings"

	"github.com/darkkaiser/manga-gateway/internal/gateway/assemble"
	"github.com/darkkaiser/manga-gateway/internal/gateway/cache"
	"github.com/darkkaiser/manga-gateway/internal/gateway/enrich"
	"github.com/darkkaiser/manga-gateway/internal/gateway/fetcher"
	"github.com/darkkaiser/manga-gateway/internal/gateway/model"
	"github.com/darkkaiser/manga-gateway/internal/gateway/search"
	apperrors "github.com/darkkaiser/manga-gateway/internal/pkg/errors"
	applog "github.com/darkkaiser/manga-gateway/pkg/log"
	"golang.org/x/sync/errgroup"
)

// GetManga 만화 상세 정보를 조회합니다.
//
// 보조 조회 서비스가 활성화되어 있으면 페이지 요청과 동시에 조회하여 표지와 대체 제목을 보강합니다.
func (g *Gateway) GetManga(ctx context.Context, mangaID, sessionToken string) (Result[*model.Manga], error) {
	if err := validateSlug("mangaId", mangaID); err != nil {
		return Result[*model.Manga]{}, fail(opGetManga, "", err)
	}

	var setCookies []string
	loaded, err := load(ctx, g, cache.MangaKey(mangaID), cache.KindManga, func(ctx context.Context) (*model.Manga, error) {
		m, cookies, err := g.fetchManga(ctx, opGetManga, mangaID, sessionToken, true)
		setCookies = cookies
		return m, err
	})
	if err != nil {
		return Result[*model.Manga]{}, fail(opGetManga, g.urls.manga(mangaID), err)
	}

	return Result[*model.Manga]{Value: loaded.Value, SetCookies: setCookies, CacheHit: loaded.Hit, TTL: loaded.TTL}, nil
}

// ListChaptersForManga 만화의 챕터 목록을 업스트림 문서 순서대로 반환합니다.
//
// 전체 목록을 캐시한 뒤 로컬에서 잘라내며, page가 0이면 전체를 한 페이지로 반환합니다.
func (g *Gateway) ListChaptersForManga(ctx context.Context, mangaID string, page, pageSize int, sessionToken string) (Result[model.Page[model.ChapterSummary]], error) {
	if err := validateSlug("mangaId", mangaID); err != nil {
		return Result[model.Page[model.ChapterSummary]]{}, fail(opListChapters, "", err)
	}
	if page < 0 || pageSize < 0 {
		err := apperrors.Newf(apperrors.InvalidInput, "page와 pageSize는 0 이상이어야 합니다(page: %d, pageSize: %d)", page, pageSize)
		return Result[model.Page[model.ChapterSummary]]{}, fail(opListChapters, "", err)
	}

	var setCookies []string
	loaded, err := load(ctx, g, cache.ChapterListKey(mangaID), cache.KindChapterList, func(ctx context.Context) ([]model.ChapterSummary, error) {
		m, cookies, err := g.fetchManga(ctx, opListChapters, mangaID, sessionToken, false)
		if err != nil {
			return nil, err
		}
		setCookies = cookies
		return m.Chapters, nil
	})
	if err != nil {
		return Result[model.Page[model.ChapterSummary]]{}, fail(opListChapters, g.urls.manga(mangaID), err)
	}

	return Result[model.Page[model.ChapterSummary]]{
		Value:      search.Paginate(loaded.Value, page, pageSize),
		SetCookies: setCookies,
		CacheHit:   loaded.Hit,
		TTL:        loaded.TTL,
	}, nil
}

// fetchManga 만화 페이지를 가져와 조립합니다. 업스트림이 세션을 갱신했다면 Set-Cookie도 함께 반환합니다.
func (g *Gateway) fetchManga(ctx context.Context, op, mangaID, sessionToken string, withEnrichment bool) (*model.Manga, []string, error) {
	sess, err := g.session(sessionToken)
	if err != nil {
		return nil, nil, err
	}

	var (
		doc      *fetcher.Document
		rec      enrich.Record
		enriched bool
	)

	var eg errgroup.Group
	eg.Go(func() error {
		var err error
		doc, err = g.fetch(ctx, op, fetcher.Request{URL: g.urls.manga(mangaID), Session: sess})
		return err
	})
	if withEnrichment && g.enricher != nil {
		eg.Go(func() error {
			rec, enriched = g.lookupEnrichment(ctx, mangaID)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, nil, err
	}

	m, err := assemble.Manga(doc)
	if err != nil {
		return nil, nil, err
	}
	if enriched {
		applyEnrichment(m, rec)
	}

	return m, doc.SetCookies, nil
}

// lookupEnrichment 보조 서비스 실패는 로그만 남기고 "보강 없음"으로 처리합니다.
func (g *Gateway) lookupEnrichment(ctx context.Context, mangaID string) (enrich.Record, bool) {
	rec, ok, err := g.enricher.Manga(ctx, mangaID)
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"manga_id": mangaID,
			"error":    err.Error(),
		}).Warn("보강 정보 조회 실패, 페이지 정보만 사용합니다")
		return enrich.Record{}, false
	}
	return rec, ok
}

// applyEnrichment 표지는 보조 서비스 값으로 교체하고, 제목은 페이지에 없는 종류만 추가합니다.
func applyEnrichment(m *model.Manga, rec enrich.Record) {
	if rec.CoverImageURL != "" {
		m.CoverImageURL = rec.CoverImageURL
	}

	for kind, title := range rec.Titles {
		title = strings.TrimSpace(title)
		if kind == "" || title == "" {
			continue
		}
		if _, exists := m.Titles[kind]; !exists {
			m.Titles[kind] = title
		}
	}
}
