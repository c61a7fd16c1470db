// Package request v1 API의 쿼리 파라미터 DTO를 정의합니다.
package request

// ChapterListRequest GET /manga/:id/chapters
type ChapterListRequest struct {
	// Page 1부터 시작. 0이면 전체 목록을 한 페이지로 반환합니다.
	Page     int `query:"page" validate:"min=0" korean:"page"`
	PageSize int `query:"pageSize" validate:"min=0" korean:"pageSize"`
}

// ChapterRequest GET /manga/:id/chapters/:chapterId
type ChapterRequest struct {
	Dimensions bool `query:"dimensions"`
}

// SearchRequest GET /search
type SearchRequest struct {
	Query   string `query:"q" validate:"max=200" korean:"q"`
	Include string `query:"include"`
	Exclude string `query:"exclude"`
	Page    int    `query:"page" validate:"min=1" korean:"page"`
	OrderBy string `query:"orderBy"`
}

// GenreRequest GET /genres
type GenreRequest struct {
	Include string `query:"include" validate:"required" korean:"include"`
	Exclude string `query:"exclude"`
	Page    int    `query:"page" validate:"min=1" korean:"page"`
	OrderBy string `query:"orderBy"`
}

// BookmarkRequest GET /bookmarks
type BookmarkRequest struct {
	Page int `query:"page" validate:"min=1" korean:"page"`
}
