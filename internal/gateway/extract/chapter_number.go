package extract

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	chapterKeywordPattern = regexp.MustCompile(`(?i)chap(?:ter)?[\s._-]*(\d+(?:\.\d+)?)`)
	firstNumberPattern    = regexp.MustCompile(`\d+(?:\.\d+)?`)

	// chapter-12-5 형태의 슬러그. 소수부가 한 자리일 때만 12.5로 읽습니다.
	chapterSlugPattern = regexp.MustCompile(`(?i)^chap(?:ter)?[-_](\d+)[-_](\d)$`)
)

// ParseChapterNumber 챕터 제목이나 슬러그에서 챕터 번호를 읽습니다.
// "Chapter 12.5", "chapter-12-5", "Vol.3 Chapter 20: ...", "9.0" 형식을 지원합니다.
// "Chapter 100-101" 같은 범위 표기는 앞 번호(100)로 읽습니다.
func ParseChapterNumber(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}

	if m := chapterSlugPattern.FindStringSubmatch(raw); m != nil {
		w, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, false
		}
		f, _ := strconv.Atoi(m[2])
		return float64(w) + float64(f)/10, true
	}

	token := ""
	if m := chapterKeywordPattern.FindStringSubmatch(raw); m != nil {
		token = m[1]
	} else {
		token = firstNumberPattern.FindString(raw)
	}
	if token == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// CompareChapterNumbers 두 챕터 번호를 수치로 비교합니다. ("9" == "9.0", "10" > "9")
// 어느 한쪽이라도 해석할 수 없으면 공백을 정리한 문자열로 비교합니다.
func CompareChapterNumbers(a, b string) int {
	x, okA := ParseChapterNumber(a)
	y, okB := ParseChapterNumber(b)
	if okA && okB {
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		default:
			return 0
		}
	}

	return strings.Compare(strings.ToLower(Normalize(a)), strings.ToLower(Normalize(b)))
}

// SameChapter 두 챕터 번호가 수치상 같은지 여부
func SameChapter(a, b string) bool {
	return CompareChapterNumbers(a, b) == 0
}
