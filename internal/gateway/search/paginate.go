package search

import (
	"github.com/darkkaiser/manga-gateway/internal/gateway/model"
)

// Paginate 미리 가져온 전체 목록을 로컬에서 잘라 한 페이지를 만듭니다.
//
// page가 0이거나 pageSize가 0 이하이면 전체를 한 페이지로 반환합니다.
// 범위를 벗어난 페이지는 빈 목록을 반환하지만 TotalPages는 전체 목록 기준 값을 유지합니다.
func Paginate[T any](items []T, page, pageSize int) model.Page[T] {
	if page <= 0 || pageSize <= 0 {
		out := make([]T, len(items))
		copy(out, items)
		return model.Page[T]{Items: out, TotalPages: 1}
	}

	totalPages := max((len(items)+pageSize-1)/pageSize, 1)

	start := (page - 1) * pageSize
	if start >= len(items) {
		return model.Page[T]{Items: []T{}, TotalPages: totalPages}
	}
	end := min(start+pageSize, len(items))

	out := make([]T, end-start)
	copy(out, items[start:end])

	return model.Page[T]{Items: out, TotalPages: totalPages}
}
