// Package assemble 업스트림 응답을 파싱하고 엔티티별 추출 규칙을 적용하여 도메인 엔티티를 조립합니다.
//
// 엔티티 고유의 지식(셀렉터, 변환, 필수 여부)은 각 파일의 규칙 테이블에만 존재하며,
// 실제 탐색은 extract 패키지의 범용 인터프리터가 수행합니다.
// 필수 필드가 비어 있으면 Incomplete 에러를 반환합니다.
package assemble

import (
	"bytes"

	"github.com/PuerkitoBio/goquery"
	"github.com/darkkaiser/manga-gateway/internal/gateway/fetcher"
	apperrors "github.com/darkkaiser/manga-gateway/internal/pkg/errors"
	applog "github.com/darkkaiser/manga-gateway/pkg/log"
)

const component = "gateway.assemble"

// parseHTML 응답 본문을 한 번만 파싱하여 문서 루트를 반환합니다.
func parseHTML(doc *fetcher.Document) (*goquery.Selection, error) {
	if doc == nil || len(doc.Body) == 0 {
		return nil, apperrors.New(apperrors.EmptyResponse, "조립할 응답 본문이 없습니다")
	}

	d, err := goquery.NewDocumentFromReader(bytes.NewReader(doc.Body))
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ParsingFailed, "HTML 문서를 파싱할 수 없습니다")
	}

	return d.Selection, nil
}

// logSkipped 목록 조립 중 필수 필드가 없어 건너뛴 항목 수를 기록합니다.
func logSkipped(kind string, doc *fetcher.Document, skipped, assembled int) {
	if skipped == 0 {
		return
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"kind":      kind,
		"url":       fetcher.RedactRawURL(doc.URL),
		"skipped":   skipped,
		"assembled": assembled,
	}).Warn("필수 필드가 누락된 목록 항목을 건너뛰었습니다")
}
