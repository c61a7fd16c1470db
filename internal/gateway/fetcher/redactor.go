package fetcher

import (
	"net/url"
	"slices"
	"strings"
)

var (
	sensitiveExactKeys = []string{
		"token", "auth", "key", "secret", "pass", "password", "signature",
		"user_data", "user_acc", "session", "sid",
	}

	sensitiveSuffixes = []string{
		"_token", "_secret", "_session", "_sig", "_password",
	}
)

// redactURL 로그에 남길 수 있도록 사용자 정보와 민감한 쿼리 파라미터를 마스킹합니다.
func redactURL(u *url.URL) string {
	if u == nil {
		return ""
	}

	ru := *u
	if u.User != nil {
		ru.User = url.User("xxxxx")
	}

	if u.RawQuery != "" {
		query := ru.Query()
		for key := range query {
			if isSensitiveKey(key) {
				query.Set(key, "xxxxx")
			}
		}
		ru.RawQuery = query.Encode()
	}

	return ru.String()
}

// RedactRawURL 문자열 형태의 URL을 마스킹합니다. 파싱할 수 없으면 쿼리 부분을 제거합니다.
func RedactRawURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		if i := strings.IndexAny(raw, "?#"); i >= 0 {
			return raw[:i]
		}
		return raw
	}
	return redactURL(u)
}

func isSensitiveKey(key string) bool {
	lowerKey := strings.ToLower(key)

	if slices.Contains(sensitiveExactKeys, lowerKey) {
		return true
	}
	for _, suffix := range sensitiveSuffixes {
		if strings.HasSuffix(lowerKey, suffix) {
			return true
		}
	}
	return false
}
