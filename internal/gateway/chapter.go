package gateway

import (
	"context"

	"github.com/darkkaiser/manga-gateway/internal/gateway/assemble"
	"github.com/darkkaiser/manga-gateway/internal/gateway/cache"
	"github.com/darkkaiser/manga-gateway/internal/gateway/fetcher"
	"github.com/darkkaiser/manga-gateway/internal/gateway/imagesize"
	"github.com/darkkaiser/manga-gateway/internal/gateway/model"
	apperrors "github.com/darkkaiser/manga-gateway/internal/pkg/errors"
	applog "github.com/darkkaiser/manga-gateway/pkg/log"
)

// GetChapter 읽기용 챕터(이미지 목록 포함)를 조회합니다.
//
// withDimensions가 true이면 이미지 크기와 읽기 모드를 함께 채웁니다. 크기 조회는 챕터와 별도의 키로 캐시되며,
// 크기를 하나도 알아내지 못한 경우에는 크기 없이(paged) 반환하고 그 결과는 캐시하지 않습니다.
func (g *Gateway) GetChapter(ctx context.Context, mangaID, chapterID string, withDimensions bool, sessionToken string) (Result[*model.Chapter], error) {
	if err := validateSlug("mangaId", mangaID); err != nil {
		return Result[*model.Chapter]{}, fail(opGetChapter, "", err)
	}
	if err := validateSlug("chapterId", chapterID); err != nil {
		return Result[*model.Chapter]{}, fail(opGetChapter, "", err)
	}

	rawURL := g.urls.chapter(mangaID, chapterID)

	var setCookies []string
	loaded, err := load(ctx, g, cache.ChapterKey(mangaID, chapterID), cache.KindChapter, func(ctx context.Context) (*model.Chapter, error) {
		sess, err := g.session(sessionToken)
		if err != nil {
			return nil, err
		}

		doc, err := g.fetch(ctx, opGetChapter, fetcher.Request{URL: rawURL, Session: sess})
		if err != nil {
			return nil, err
		}

		c, err := assemble.Chapter(doc, mangaID, chapterID)
		if err != nil {
			return nil, err
		}
		setCookies = doc.SetCookies
		return c, nil
	})
	if err != nil {
		return Result[*model.Chapter]{}, fail(opGetChapter, rawURL, err)
	}

	result := Result[*model.Chapter]{Value: loaded.Value, SetCookies: setCookies, CacheHit: loaded.Hit, TTL: loaded.TTL}
	if !withDimensions {
		return result, nil
	}

	// 캐시된 챕터는 공유 값이므로 복사본에 크기 정보를 채웁니다.
	c := *loaded.Value

	dims, err := load(ctx, g, cache.DimensionsKey(mangaID, chapterID), cache.KindDimensions, func(ctx context.Context) ([]model.ImageDimension, error) {
		return g.probeDimensions(ctx, c.Images)
	})
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"op":     opGetChapter,
			"url":    fetcher.RedactRawURL(rawURL),
			"images": len(c.Images),
			"error":  err.Error(),
		}).Warn("이미지 크기를 알아내지 못해 크기 정보 없이 반환합니다")

		c.Dimensions = unsizedDimensions(c.Images)
		c.ReadingMode = model.ReadingModePaged

		result.Value = &c
		result.CacheHit = false
		result.TTL = 0
		return result, nil
	}

	c.Dimensions = dims.Value
	c.ReadingMode = imagesize.ReadingMode(dims.Value, g.images.StripMinHeight, g.images.StripRatio)

	result.Value = &c
	result.CacheHit = loaded.Hit && dims.Hit
	result.TTL = min(loaded.TTL, dims.TTL)
	return result, nil
}

func (g *Gateway) probeDimensions(ctx context.Context, images []string) ([]model.ImageDimension, error) {
	dims, known := g.prober.Probe(ctx, images, g.urls.referer())
	if len(images) > 0 && known == 0 {
		return nil, apperrors.Newf(apperrors.Unavailable, "이미지 %d개의 크기를 모두 알아내지 못했습니다", len(images))
	}
	return dims, nil
}

func unsizedDimensions(images []string) []model.ImageDimension {
	dims := make([]model.ImageDimension, len(images))
	for i, u := range images {
		dims[i] = model.ImageDimension{URL: u}
	}
	return dims
}
