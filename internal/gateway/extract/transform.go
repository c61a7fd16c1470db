package extract

import (
	"net/url"
	"path"
	"regexp"
	"strings"

	"github.com/darkkaiser/manga-gateway/pkg/strutil"
)

// Transform 추출한 텍스트/속성 값을 가공하는 순수 함수입니다. 빈 문자열을 반환하면 값이 없는 것으로 취급합니다.
type Transform func(string) string

// Chain 변환을 왼쪽부터 차례로 적용합니다. 중간에 빈 문자열이 되면 멈춥니다.
func Chain(ts ...Transform) Transform {
	return func(s string) string {
		for _, t := range ts {
			if s = t(s); s == "" {
				return ""
			}
		}
		return s
	}
}

// Normalize 연속 공백을 하나로 축약합니다.
func Normalize(s string) string {
	return strutil.NormalizeSpaces(s)
}

// MultiLine 줄 구분을 유지한 채 각 줄의 공백을 정리합니다.
func MultiLine(s string) string {
	return strutil.NormalizeMultiLineSpaces(s)
}

// StripPrefixes 대소문자를 구분하지 않고 알려진 머리말(예: "Description :")을 제거합니다.
func StripPrefixes(prefixes ...string) Transform {
	return func(s string) string {
		s = strings.TrimSpace(s)
		lower := strings.ToLower(s)
		for _, p := range prefixes {
			if strings.HasPrefix(lower, strings.ToLower(p)) {
				return strings.TrimSpace(s[len(p):])
			}
		}
		return s
	}
}

// RegexGroup 정규식의 group 번째 캡처 그룹을 반환합니다. 일치하지 않으면 빈 문자열입니다.
func RegexGroup(re *regexp.Regexp, group int) Transform {
	return func(s string) string {
		m := re.FindStringSubmatch(s)
		if len(m) <= group {
			return ""
		}
		return strings.TrimSpace(m[group])
	}
}

// Slug URL 경로의 마지막 세그먼트를 반환합니다.
// 예: "https://chapmanganato.to/manga-aa951409/chapter-1087" -> "chapter-1087"
func Slug(s string) string {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return ""
	}

	p := strings.TrimRight(u.Path, "/")
	if p == "" {
		return ""
	}
	return path.Base(p)
}

// SlugAt 경로 세그먼트 중 뒤에서 fromEnd 번째(0이 마지막)를 반환합니다.
func SlugAt(fromEnd int) Transform {
	return func(s string) string {
		u, err := url.Parse(strings.TrimSpace(s))
		if err != nil {
			return ""
		}

		segments := strings.FieldsFunc(u.Path, func(r rune) bool { return r == '/' })
		idx := len(segments) - 1 - fromEnd
		if idx < 0 {
			return ""
		}
		return segments[idx]
	}
}

// AbsoluteURL base 기준으로 상대 URL을 절대 URL로 바꿉니다.
func AbsoluteURL(base string) Transform {
	baseURL, err := url.Parse(base)
	return func(s string) string {
		s = strings.TrimSpace(s)
		if s == "" || err != nil {
			return s
		}

		ref, perr := url.Parse(s)
		if perr != nil {
			return ""
		}
		return baseURL.ResolveReference(ref).String()
	}
}
