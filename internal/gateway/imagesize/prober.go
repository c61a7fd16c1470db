// Package imagesize 챕터 이미지의 크기를 앞부분 바이트만 받아 알아내고, 그 결과로 읽기 모드를 판정합니다.
package imagesize

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"

	"github.com/darkkaiser/manga-gateway/internal/config"
	"github.com/darkkaiser/manga-gateway/internal/gateway/fetcher"
	"github.com/darkkaiser/manga-gateway/internal/gateway/model"
	apperrors "github.com/darkkaiser/manga-gateway/internal/pkg/errors"
	applog "github.com/darkkaiser/manga-gateway/pkg/log"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"
)

const component = "gateway.imagesize"

// Prober 이미지 크기 조회기
type Prober struct {
	fetcher fetcher.Fetcher

	batchSize     int
	maxConcurrent int
	probeBytes    int64
	userAgent     string
}

// NewProber 이미지 요청은 fetcher의 데코레이터 체인(로깅, 속도 제한)을 그대로 거칩니다.
func NewProber(f fetcher.Fetcher, cfg config.ImagesConfig, userAgent string) *Prober {
	if f == nil {
		panic("Fetcher는 필수입니다")
	}

	return &Prober{
		fetcher:       f,
		batchSize:     max(cfg.BatchSize, 1),
		maxConcurrent: max(cfg.MaxConcurrentBatches, 1),
		probeBytes:    max(cfg.ProbeBytes, 64),
		userAgent:     userAgent,
	}
}

// Probe 이미지 목록을 batchSize 단위로 나누어 최대 maxConcurrent개의 배치를 동시에 처리합니다.
//
// 결과는 입력과 같은 순서입니다. 크기를 알아내지 못한 이미지는 Width/Height가 0으로 남으며,
// 한 이미지나 한 배치의 실패가 다른 배치에 영향을 주지 않습니다.
// 반환하는 정수는 크기를 알아낸 이미지 수입니다.
func (p *Prober) Probe(ctx context.Context, urls []string, referer string) ([]model.ImageDimension, int) {
	dims := make([]model.ImageDimension, len(urls))
	for i, u := range urls {
		dims[i].URL = u
	}

	g := new(errgroup.Group)
	g.SetLimit(p.maxConcurrent)

	for start := 0; start < len(urls); start += p.batchSize {
		end := min(start+p.batchSize, len(urls))

		g.Go(func() error {
			// 배치마다 서로 다른 인덱스 구간만 기록하므로 별도의 잠금이 필요 없습니다.
			for i := start; i < end; i++ {
				if ctx.Err() != nil {
					return nil
				}

				w, h, err := p.probeOne(ctx, urls[i], referer)
				if err != nil {
					applog.WithComponentAndFields(component, applog.Fields{
						"url":   fetcher.RedactRawURL(urls[i]),
						"error": err.Error(),
					}).Debug("이미지 크기를 알아내지 못했습니다")
					continue
				}
				dims[i].Width, dims[i].Height = w, h
			}
			return nil
		})
	}
	_ = g.Wait()

	known := 0
	for _, d := range dims {
		if d.Known() {
			known++
		}
	}

	return dims, known
}

func (p *Prober) probeOne(ctx context.Context, rawURL, referer string) (int, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return 0, 0, apperrors.Wrap(err, apperrors.InvalidInput, "이미지 URL이 올바르지 않습니다")
	}
	req.Header.Set("Range", fmt.Sprintf("bytes=0-%d", p.probeBytes-1))
	req.Header.Set("Accept", "image/avif,image/webp,image/*,*/*;q=0.8")
	if p.userAgent != "" {
		req.Header.Set("User-Agent", p.userAgent)
	}
	if referer != "" {
		req.Header.Set("Referer", referer)
	}

	resp, err := p.fetcher.Do(req)
	if err != nil {
		return 0, 0, apperrors.Wrap(err, apperrors.Unavailable, "이미지 요청에 실패했습니다")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusPartialContent {
		return 0, 0, apperrors.Wrap(&fetcher.StatusError{StatusCode: resp.StatusCode, Status: resp.Status, URL: fetcher.RedactRawURL(rawURL)}, fetcher.ClassifyStatus(resp.StatusCode), "이미지 요청이 거부되었습니다")
	}

	// Range를 무시하고 전체를 보내는 서버가 있으므로 읽는 양을 직접 제한합니다.
	head, err := io.ReadAll(io.LimitReader(resp.Body, p.probeBytes))
	if err != nil && len(head) == 0 {
		return 0, 0, apperrors.Wrap(err, apperrors.Unavailable, "이미지 본문을 읽을 수 없습니다")
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(head))
	if err != nil {
		return 0, 0, apperrors.Wrap(err, apperrors.ParsingFailed, "이미지 헤더를 해석할 수 없습니다")
	}

	return cfg.Width, cfg.Height, nil
}
