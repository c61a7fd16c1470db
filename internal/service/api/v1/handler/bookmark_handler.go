package handler

import (
	"github.com/darkkaiser/manga-gateway/internal/service/api/v1/model/request"
	"github.com/labstack/echo/v4"
)

// ListBookmarksHandler godoc
// @Summary 북마크 목록
// @Description 호출자 세션의 북마크 한 페이지를 반환합니다. 세션별 데이터이므로 캐시되지 않습니다.
// @Tags Bookmark
// @Produce json
// @Param page query int false "페이지 번호" default(1)
// @Param X-Session-Token header string false "업스트림 세션 토큰 (user_acc 쿠키로도 전달 가능)"
// @Success 200 {object} model.Page[model.Bookmark]
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse "세션이 없거나 만료됨"
// @Failure 502 {object} response.ErrorResponse
// @Router /api/v1/bookmarks [get]
func (h *Handler) ListBookmarksHandler(c echo.Context) error {
	req := &request.BookmarkRequest{Page: 1}
	if err := bindQuery(c, req); err != nil {
		return err
	}

	result, err := h.gateway.ListBookmarks(c.Request().Context(), h.sessionToken(c), req.Page)
	if err != nil {
		return err
	}

	return respond(c, result, cacheNone)
}
