// Package search 목록 결과에 대한 퍼지 제목 매칭과 로컬 페이지 분할을 제공합니다.
package search

import (
	"cmp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultThreshold 정규화 편집 거리의 기본 허용 상한 (0은 완전 일치, 1은 완전 불일치)
const DefaultThreshold = 0.6

// Matcher 제목과 검색어의 정규화 편집 거리를 계산합니다.
type Matcher struct {
	threshold float64
}

// NewMatcher threshold가 (0, 1] 범위를 벗어나면 DefaultThreshold를 사용합니다.
func NewMatcher(threshold float64) *Matcher {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	return &Matcher{threshold: threshold}
}

// Threshold 허용 상한
func (m *Matcher) Threshold() float64 {
	return m.threshold
}

// Distance 0(일치)에서 1(무관) 사이의 거리를 반환합니다.
//
// 제목 전체와의 거리, 그리고 검색어와 같은 단어 수로 자른 제목의 연속 구간들과의 거리 중 최솟값을 사용합니다.
// 대소문자, 악센트, 구두점 차이는 비교 전에 제거합니다.
func (m *Matcher) Distance(query, title string) float64 {
	q := normalize(query)
	t := normalize(title)
	if q == "" || t == "" {
		return 1
	}
	if strings.Contains(t, q) {
		return 0
	}

	best := distance(q, t)

	qTokens := strings.Fields(q)
	tTokens := strings.Fields(t)
	if n := len(qTokens); n < len(tTokens) {
		for i := 0; i+n <= len(tTokens); i++ {
			if d := distance(q, strings.Join(tTokens[i:i+n], " ")); d < best {
				best = d
			}
		}
	}

	return best
}

// Matches 거리가 허용 상한 이하인지 여부
func (m *Matcher) Matches(query, title string) bool {
	return m.Distance(query, title) <= m.threshold
}

// Filter 제목이 검색어와 충분히 가까운 항목만 남기고 가까운 순으로 정렬합니다. 거리가 같으면 원래 순서를 유지합니다.
// 검색어가 비어 있으면 "탐색" 요청으로 보고 입력을 그대로(필터링, 재정렬 없이) 반환합니다.
func Filter[T any](m *Matcher, query string, items []T, title func(T) string) []T {
	if strings.TrimSpace(query) == "" {
		return items
	}

	type scored struct {
		item T
		dist float64
	}

	matched := make([]scored, 0, len(items))
	for _, it := range items {
		if d := m.Distance(query, title(it)); d <= m.threshold {
			matched = append(matched, scored{item: it, dist: d})
		}
	}

	slices.SortStableFunc(matched, func(a, b scored) int {
		return cmp.Compare(a.dist, b.dist)
	})

	out := make([]T, len(matched))
	for i, s := range matched {
		out[i] = s.item
	}
	return out
}

func distance(a, b string) float64 {
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 0
	}
	return float64(levenshtein.ComputeDistance(a, b)) / float64(longest)
}

// normalize 악센트를 제거하고 소문자로 바꾼 뒤, 글자와 숫자 외의 문자를 공백으로 취급합니다.
// 예: "Pokémon: Adventures!" -> "pokemon adventures"
func normalize(s string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err != nil {
		folded = s
	}

	folded = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, folded)

	return strings.Join(strings.Fields(folded), " ")
}
