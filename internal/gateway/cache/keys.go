package cache

import (
	"strconv"
	"strings"
)

// 키 접두사(엔티티 종류)
const (
	prefixManga       = "manga"
	prefixChapter     = "chapter"
	prefixChapterList = "chapters"
	prefixDimensions  = "dimensions"
	prefixSearch      = "search"
	prefixGenre       = "genre"
)

// MangaKey 만화 상세
func MangaKey(mangaID string) string {
	return prefixManga + ":" + mangaID
}

// ChapterKey 챕터 단독 조회. (mangaID, chapterID) 쌍으로 식별합니다.
func ChapterKey(mangaID, chapterID string) string {
	return prefixChapter + ":" + mangaID + "/" + chapterID
}

// ChapterListKey 만화 하나의 전체 챕터 목록
func ChapterListKey(mangaID string) string {
	return prefixChapterList + ":" + mangaID
}

// DimensionsKey 챕터 이미지 크기 조회 결과
func DimensionsKey(mangaID, chapterID string) string {
	return prefixDimensions + ":" + mangaID + "/" + chapterID
}

// GenreKey genre:{includeIds}_{excludeIds}_{orderBy}_{page}
func GenreKey(include, exclude []int, orderBy string, page int) string {
	return prefixGenre + ":" + joinIDs(include) + "_" + joinIDs(exclude) + "_" + orderBy + "_" + strconv.Itoa(page)
}

// SearchKey search:{keyword}_{includeIds}_{excludeIds}_{orderBy}_{page}
// keyword는 업스트림 쿼리에 실제로 들어가는 정규화된 값을 사용해야 같은 요청이 같은 키를 갖습니다.
func SearchKey(keyword string, include, exclude []int, orderBy string, page int) string {
	return prefixSearch + ":" + keyword + "_" + joinIDs(include) + "_" + joinIDs(exclude) + "_" + orderBy + "_" + strconv.Itoa(page)
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}
