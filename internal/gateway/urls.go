package gateway

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

var keywordSeparatorPattern = regexp.MustCompile(`[^a-z0-9]+`)

// urlBuilder 업스트림 URL 규칙. 쿼리 파라미터의 순서와 표기는 업스트림이 기대하는 형태를 그대로 따릅니다.
type urlBuilder struct {
	base        string
	chapterBase string
}

func newURLBuilder(base, chapterBase string) urlBuilder {
	return urlBuilder{
		base:        strings.TrimRight(base, "/"),
		chapterBase: strings.TrimRight(chapterBase, "/"),
	}
}

// manga {chapter_base}/{mangaId}
func (b urlBuilder) manga(mangaID string) string {
	return b.chapterBase + "/" + url.PathEscape(mangaID)
}

// chapter {chapter_base}/{mangaId}/{chapterId}
func (b urlBuilder) chapter(mangaID, chapterID string) string {
	return b.manga(mangaID) + "/" + url.PathEscape(chapterID)
}

// referer 이미지 CDN이 요구하는 Referer
func (b urlBuilder) referer() string {
	return b.chapterBase + "/"
}

// advancedSearch {base}/advanced_search?s=all&g_i=_2_4_&g_e=_9_&orby=topview&page=N&keyw=one_piece
//
// 비어 있는 조건(장르, 정렬, 검색어)은 파라미터 자체를 생략합니다.
func (b urlBuilder) advancedSearch(include, exclude []int, orderBy string, page int, keyword string) string {
	var sb strings.Builder
	sb.WriteString(b.base)
	sb.WriteString("/advanced_search?s=all")

	if len(include) > 0 {
		sb.WriteString("&g_i=")
		sb.WriteString(genreToken(include))
	}
	if len(exclude) > 0 {
		sb.WriteString("&g_e=")
		sb.WriteString(genreToken(exclude))
	}
	if orderBy != "" {
		sb.WriteString("&orby=")
		sb.WriteString(orderBy)
	}

	sb.WriteString("&page=")
	sb.WriteString(strconv.Itoa(page))

	if keyword != "" {
		sb.WriteString("&keyw=")
		sb.WriteString(keyword)
	}

	return sb.String()
}

// genreToken [2 4] -> "_2_4_"
func genreToken(ids []int) string {
	var sb strings.Builder
	sb.WriteByte('_')
	for _, id := range ids {
		sb.WriteString(strconv.Itoa(id))
		sb.WriteByte('_')
	}
	return sb.String()
}

// searchKeyword 검색어를 업스트림 keyw 표기로 바꿉니다. 예: "One Piece!" -> "one_piece"
func searchKeyword(query string) string {
	return strings.Trim(keywordSeparatorPattern.ReplaceAllString(strings.ToLower(query), "_"), "_")
}
