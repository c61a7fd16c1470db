// Package extract 선언적 추출 규칙(Rule)을 HTML 문서에 적용하는 범용 인터프리터와,
// 규칙에서 사용하는 텍스트 변환, 날짜 정규화, 장르 매핑, 스크립트 스캔, 챕터 번호 비교 기능을 제공합니다.
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	apperrors "github.com/darkkaiser/manga-gateway/internal/pkg/errors"
	"github.com/darkkaiser/manga-gateway/pkg/strutil"
)

// Query 범위(scope) 노드 안에서 값을 가진 노드를 찾는 방법입니다.
//
// 라벨 셀/값 셀로 이루어진 테이블 행은 다음처럼 표현합니다.
//
//	Query{Selector: `td.table-label:contains("Author")`, Closest: "tr", Find: "td.table-value a", All: true}
type Query struct {
	// Selector 범위 노드 기준 CSS 셀렉터. 비어 있으면 범위 노드 자신
	Selector string

	// Closest 찾은 노드에서 올라갈 가장 가까운 조상 셀렉터
	Closest string

	// Find Closest(또는 Selector) 결과 기준 하위 셀렉터
	Find string

	// Attr 비어 있으면 텍스트를 읽습니다.
	Attr string

	// All 일치하는 모든 노드의 값을 수집합니다. false이면 비어 있지 않은 첫 번째 값만 사용합니다.
	All bool
}

// Rule 필드 하나를 추출하는 규칙입니다. Query가 값을 찾지 못하면 Fallbacks를 순서대로 시도합니다.
type Rule struct {
	Field     string
	Query     Query
	Fallbacks []Query

	// Transform nil이면 공백 정규화(NormalizeSpaces)를 적용합니다.
	Transform Transform

	// Required 값을 찾지 못하면 엔티티 조립이 실패합니다.
	Required bool

	// Default Required가 아닌 필드에서 값을 찾지 못했을 때 사용할 값
	Default string
}

// RuleSet 엔티티 하나를 구성하는 규칙 목록
type RuleSet []Rule

// Result 필드 이름별 추출 결과
type Result struct {
	values map[string][]string
}

// String 필드의 첫 번째 값. 없으면 빈 문자열
func (r Result) String(field string) string {
	if v := r.values[field]; len(v) > 0 {
		return v[0]
	}
	return ""
}

// Strings 필드의 모든 값
func (r Result) Strings(field string) []string {
	return r.values[field]
}

// Has 필드에 값이 있는지 여부
func (r Result) Has(field string) bool {
	return len(r.values[field]) > 0
}

// NewResult 테스트나 다른 출처(JSON 등)의 값을 Result로 감쌀 때 사용합니다.
func NewResult(values map[string][]string) Result {
	return Result{values: values}
}

// Apply 범위 노드에 규칙 전체를 적용합니다.
// 필수 필드가 하나라도 비어 있으면 Incomplete 에러를 반환합니다. 선택 필드의 부재는 에러가 아닙니다.
func (rs RuleSet) Apply(scope *goquery.Selection) (Result, error) {
	res := Result{values: make(map[string][]string, len(rs))}

	var missing []string
	for _, rule := range rs {
		values := rule.evaluate(scope)
		if len(values) == 0 {
			if rule.Required {
				missing = append(missing, rule.Field)
				continue
			}
			if rule.Default != "" {
				values = []string{rule.Default}
			}
		}
		if len(values) > 0 {
			res.values[rule.Field] = values
		}
	}

	if len(missing) > 0 {
		return res, apperrors.New(apperrors.Incomplete, fmt.Sprintf("필수 필드를 추출할 수 없습니다: %s", strings.Join(missing, ", ")))
	}

	return res, nil
}

// Collect itemSelector로 반복 항목 노드를 찾고 각 항목에 규칙을 적용합니다.
// 필수 필드가 빠진 항목은 건너뛰며, skipped로 그 수를 알려줍니다.
func (rs RuleSet) Collect(scope *goquery.Selection, itemSelector string) (results []Result, skipped int) {
	scope.Find(itemSelector).Each(func(_ int, item *goquery.Selection) {
		res, err := rs.Apply(item)
		if err != nil {
			skipped++
			return
		}
		results = append(results, res)
	})

	return results, skipped
}

func (r Rule) evaluate(scope *goquery.Selection) []string {
	transform := r.Transform
	if transform == nil {
		transform = strutil.NormalizeSpaces
	}

	for _, q := range append([]Query{r.Query}, r.Fallbacks...) {
		if values := q.values(scope, transform); len(values) > 0 {
			return values
		}
	}
	return nil
}

func (q Query) locate(scope *goquery.Selection) *goquery.Selection {
	sel := scope
	if q.Selector != "" {
		sel = scope.Find(q.Selector)
	}
	if q.Closest != "" {
		sel = sel.Closest(q.Closest)
	}
	if q.Find != "" {
		sel = sel.Find(q.Find)
	}
	return sel
}

func (q Query) values(scope *goquery.Selection, transform Transform) []string {
	var values []string

	q.locate(scope).EachWithBreak(func(_ int, node *goquery.Selection) bool {
		var raw string
		if q.Attr != "" {
			raw, _ = node.Attr(q.Attr)
		} else {
			raw = node.Text()
		}

		if v := transform(strings.TrimSpace(raw)); v != "" {
			values = append(values, v)
			return q.All
		}
		return true
	})

	return values
}
