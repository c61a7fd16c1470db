package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ScriptRule 인라인 스크립트의 변수 할당에서 값을 꺼내는 규칙입니다. Pattern의 첫 번째 캡처 그룹을 사용합니다.
type ScriptRule struct {
	Field   string
	Pattern *regexp.Regexp
}

// ScanScripts 문서의 모든 script 내용을 이어 붙인 뒤 규칙별로 한 번씩 정규식을 적용합니다.
// 첫 번째 일치가 사용되며, 일치하지 않는 필드는 결과에 포함되지 않습니다.
func ScanScripts(scope *goquery.Selection, rules []ScriptRule) map[string]string {
	var sb strings.Builder
	scope.Find("script").Each(func(_ int, s *goquery.Selection) {
		sb.WriteString(s.Text())
		sb.WriteByte('\n')
	})
	src := sb.String()

	found := make(map[string]string, len(rules))
	if src == "" {
		return found
	}

	for _, rule := range rules {
		if m := rule.Pattern.FindStringSubmatch(src); len(m) > 1 && m[1] != "" {
			found[rule.Field] = m[1]
		}
	}
	return found
}
