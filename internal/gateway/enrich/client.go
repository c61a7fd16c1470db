// Package enrich 표지 이미지와 대체 제목을 보강하는 보조 조회 서비스의 클라이언트를 제공합니다.
//
// 보조 서비스는 필수 의존성이 아닙니다. 호출자는 이 패키지가 반환하는 에러나 부재를
// 기능 저하 없이 무시할 수 있어야 합니다.
package enrich

import (
	"context"
	"net/http"
	"strings"

	"github.com/darkkaiser/manga-gateway/internal/config"
	apperrors "github.com/darkkaiser/manga-gateway/internal/pkg/errors"
	applog "github.com/darkkaiser/manga-gateway/pkg/log"
	"github.com/go-resty/resty/v2"
)

const component = "gateway.enrich"

// Record 만화 하나에 대한 보강 정보
type Record struct {
	MangaID       string            `json:"id"`
	CoverImageURL string            `json:"coverImageUrl"`
	Titles        map[string]string `json:"titles"`

	// Confidence 보조 서비스가 업스트림 만화와 자신의 항목을 같은 작품으로 판단한 신뢰도 (0~1)
	Confidence float64 `json:"confidence"`
}

type coversResponse struct {
	Items []Record `json:"items"`
}

// Client 보조 조회 서비스 클라이언트
type Client struct {
	http          *resty.Client
	minConfidence float64
}

// New 설정이 비활성화되어 있으면 nil을 반환합니다. nil *Client의 메서드는 항상 "정보 없음"을 반환합니다.
func New(cfg config.EnrichmentConfig) *Client {
	if !cfg.Enabled || cfg.BaseURL == "" {
		return nil
	}

	c := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json").
		SetLogger(applog.WithComponent(component))

	return &Client{http: c, minConfidence: cfg.MinConfidence}
}

// Manga 만화 ID로 보강 정보를 조회합니다. 항목이 없거나 신뢰도가 낮으면 ok=false입니다.
func (c *Client) Manga(ctx context.Context, mangaID string) (Record, bool, error) {
	if c == nil || mangaID == "" {
		return Record{}, false, nil
	}

	var rec Record
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", mangaID).
		SetResult(&rec).
		Get("/api/manga/{id}")
	if err != nil {
		return Record{}, false, apperrors.Wrap(err, apperrors.Unavailable, "보강 서비스에 연결할 수 없습니다")
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return Record{}, false, nil
	case resp.IsError():
		return Record{}, false, apperrors.Newf(apperrors.ExecutionFailed, "보강 서비스가 오류를 반환했습니다(status: %d)", resp.StatusCode())
	}

	if !c.accept(rec) {
		return Record{}, false, nil
	}
	if rec.MangaID == "" {
		rec.MangaID = mangaID
	}
	return rec, true, nil
}

// Covers 보조 서비스가 보유한 표지 목록 전체를 만화 ID 기준 맵으로 반환합니다.
// 신뢰도가 기준 미만인 항목은 제외합니다.
func (c *Client) Covers(ctx context.Context) (map[string]Record, error) {
	if c == nil {
		return nil, nil
	}

	var body coversResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&body).
		Get("/api/covers")
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.Unavailable, "보강 서비스에 연결할 수 없습니다")
	}
	if resp.IsError() {
		return nil, apperrors.Newf(apperrors.ExecutionFailed, "보강 서비스가 오류를 반환했습니다(status: %d)", resp.StatusCode())
	}

	covers := make(map[string]Record, len(body.Items))
	for _, rec := range body.Items {
		if rec.MangaID == "" || !c.accept(rec) {
			continue
		}
		covers[rec.MangaID] = rec
	}
	return covers, nil
}

func (c *Client) accept(rec Record) bool {
	return rec.Confidence >= c.minConfidence && (rec.CoverImageURL != "" || len(rec.Titles) > 0)
}
