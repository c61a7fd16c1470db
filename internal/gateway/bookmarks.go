package gateway

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/darkkaiser/manga-gateway/internal/gateway/assemble"
	"github.com/darkkaiser/manga-gateway/internal/gateway/enrich"
	"github.com/darkkaiser/manga-gateway/internal/gateway/fetcher"
	"github.com/darkkaiser/manga-gateway/internal/gateway/model"
	apperrors "github.com/darkkaiser/manga-gateway/internal/pkg/errors"
	applog "github.com/darkkaiser/manga-gateway/pkg/log"
	"golang.org/x/sync/errgroup"
)

// ListBookmarks 세션 사용자의 북마크 목록을 조회합니다. 결과는 캐시하지 않습니다.
//
// 북마크 요청과 보조 서비스의 표지 목록 조회를 동시에 수행한 뒤 합칩니다.
// 보조 서비스 실패는 원래 이미지를 유지하는 것으로 끝나며 연산 전체를 실패시키지 않습니다.
func (g *Gateway) ListBookmarks(ctx context.Context, sessionToken string, page int) (Result[model.Page[model.Bookmark]], error) {
	if strings.TrimSpace(sessionToken) == "" {
		err := apperrors.New(apperrors.Unauthorized, "북마크 조회에는 세션 토큰이 필요합니다")
		return Result[model.Page[model.Bookmark]]{}, fail(opListBookmarks, "", err)
	}
	if err := validatePage(page); err != nil {
		return Result[model.Page[model.Bookmark]]{}, fail(opListBookmarks, "", err)
	}

	sess, err := g.session(sessionToken)
	if err != nil {
		return Result[model.Page[model.Bookmark]]{}, fail(opListBookmarks, g.bookmark.url, err)
	}

	req := fetcher.Request{
		Method:  "POST",
		URL:     g.bookmark.url,
		Form:    g.bookmarkForm(sessionToken, page),
		Session: sess,
	}

	// 호출자가 떠나더라도 진행 중인 업스트림 호출은 끝까지 수행합니다.
	ctx = context.WithoutCancel(ctx)

	var (
		doc    *fetcher.Document
		covers map[string]enrich.Record
	)

	var eg errgroup.Group
	eg.Go(func() error {
		var err error
		doc, err = g.fetch(ctx, opListBookmarks, req)
		return err
	})
	if g.enricher != nil {
		eg.Go(func() error {
			covers = g.lookupCovers(ctx)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Result[model.Page[model.Bookmark]]{}, fail(opListBookmarks, req.URL, err)
	}

	bookmarks, err := assemble.Bookmarks(doc)
	if err != nil {
		return Result[model.Page[model.Bookmark]]{}, fail(opListBookmarks, req.URL, err)
	}

	for i := range bookmarks.Items {
		b := &bookmarks.Items[i]
		if rec, ok := covers[b.MangaID]; ok && rec.CoverImageURL != "" {
			b.Image = rec.CoverImageURL
		}
	}

	return Result[model.Page[model.Bookmark]]{Value: *bookmarks, SetCookies: doc.SetCookies}, nil
}

func (g *Gateway) bookmarkForm(sessionToken string, page int) url.Values {
	form := url.Values{}
	form.Set("out_type", "json")
	form.Set("bm_page", strconv.Itoa(page))
	form.Set("bm_source", g.bookmark.source)
	form.Set("user_data", strings.TrimSpace(sessionToken))
	return form
}

func (g *Gateway) lookupCovers(ctx context.Context) map[string]enrich.Record {
	covers, err := g.enricher.Covers(ctx)
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"op":    opListBookmarks,
			"error": err.Error(),
		}).Warn("표지 목록 조회 실패, 업스트림 이미지를 그대로 사용합니다")
		return nil
	}
	return covers
}
