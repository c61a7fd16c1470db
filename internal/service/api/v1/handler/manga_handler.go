package handler

import (
	"github.com/darkkaiser/manga-gateway/internal/service/api/v1/model/request"
	"github.com/labstack/echo/v4"
)

// GetMangaHandler godoc
// @Summary 만화 상세 조회
// @Description 만화의 제목, 표지, 작가, 장르, 상태, 챕터 목록을 반환합니다.
// @Description 캐시된 응답에는 X-Cache: HIT 헤더가 붙으며, 업스트림이 세션을 갱신한 경우 Set-Cookie가 전달됩니다.
// @Tags Manga
// @Produce json
// @Param id path string true "만화 ID" example(manga-aa000001)
// @Param X-Session-Token header string false "업스트림 세션 토큰 (user_acc 쿠키로도 전달 가능)"
// @Success 200 {object} model.Manga
// @Failure 400 {object} response.ErrorResponse "잘못된 만화 ID"
// @Failure 404 {object} response.ErrorResponse "만화를 찾을 수 없음"
// @Failure 429 {object} response.ErrorResponse "업스트림 요청 제한"
// @Failure 502 {object} response.ErrorResponse "업스트림 장애"
// @Router /api/v1/manga/{id} [get]
func (h *Handler) GetMangaHandler(c echo.Context) error {
	result, err := h.gateway.GetManga(c.Request().Context(), c.Param("id"), h.sessionToken(c))
	if err != nil {
		return err
	}

	return respond(c, result, cacheShared)
}

// ListChaptersHandler godoc
// @Summary 챕터 목록 조회
// @Description 만화의 챕터 목록을 업스트림 문서 순서대로 반환합니다. page를 생략하거나 0으로 지정하면 전체 목록을 반환합니다.
// @Tags Manga
// @Produce json
// @Param id path string true "만화 ID"
// @Param page query int false "페이지 번호 (1부터)"
// @Param pageSize query int false "페이지 크기"
// @Success 200 {object} model.Page[model.ChapterSummary]
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 502 {object} response.ErrorResponse
// @Router /api/v1/manga/{id}/chapters [get]
func (h *Handler) ListChaptersHandler(c echo.Context) error {
	req := new(request.ChapterListRequest)
	if err := bindQuery(c, req); err != nil {
		return err
	}
	if h.config.MaxPageSize > 0 && req.PageSize > h.config.MaxPageSize {
		return pageSizeExceeded(h.config.MaxPageSize)
	}
	if req.Page > 0 && req.PageSize == 0 {
		req.PageSize = h.config.MaxPageSize
	}

	result, err := h.gateway.ListChaptersForManga(c.Request().Context(), c.Param("id"), req.Page, req.PageSize, h.sessionToken(c))
	if err != nil {
		return err
	}

	return respond(c, result, cacheShared)
}

// GetChapterHandler godoc
// @Summary 챕터 조회
// @Description 챕터의 이미지 목록과 이전/다음 챕터 ID를 반환합니다.
// @Description dimensions=true이면 각 이미지의 크기를 조회하고 읽기 모드(strip, paged)를 판정합니다.
// @Tags Manga
// @Produce json
// @Param id path string true "만화 ID"
// @Param chapterId path string true "챕터 ID" example(chapter-12)
// @Param dimensions query bool false "이미지 크기 조회 여부"
// @Success 200 {object} model.Chapter
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 502 {object} response.ErrorResponse
// @Router /api/v1/manga/{id}/chapters/{chapterId} [get]
func (h *Handler) GetChapterHandler(c echo.Context) error {
	req := new(request.ChapterRequest)
	if err := bindQuery(c, req); err != nil {
		return err
	}

	result, err := h.gateway.GetChapter(c.Request().Context(), c.Param("id"), c.Param("chapterId"), req.Dimensions, h.sessionToken(c))
	if err != nil {
		return err
	}

	return respond(c, result, cacheShared)
}
