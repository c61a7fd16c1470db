package gateway

import (
	"regexp"
	"strings"

	apperrors "github.com/darkkaiser/manga-gateway/internal/pkg/errors"
)

// 업스트림 URL 경로 세그먼트로 그대로 쓰이는 식별자 형식
var slugPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]{0,127}$`)

// 정렬 키. "latest"는 업스트림 기본 정렬이므로 빈 값으로 정규화합니다.
var orderByKeys = map[string]string{
	"":        "",
	"latest":  "",
	"topview": "topview",
	"newest":  "newest",
	"az":      "az",
}

func validateSlug(kind, id string) error {
	if !slugPattern.MatchString(id) {
		return apperrors.Newf(apperrors.InvalidInput, "%s 형식이 올바르지 않습니다: %q", kind, id)
	}
	return nil
}

func validatePage(page int) error {
	if page < 1 {
		return apperrors.Newf(apperrors.InvalidInput, "page는 1 이상이어야 합니다(page: %d)", page)
	}
	return nil
}

func normalizeOrderBy(orderBy string) (string, error) {
	key, ok := orderByKeys[strings.ToLower(strings.TrimSpace(orderBy))]
	if !ok {
		return "", apperrors.Newf(apperrors.InvalidInput, "지원하지 않는 정렬 기준입니다: %q (latest, topview, newest, az)", orderBy)
	}
	return key, nil
}
