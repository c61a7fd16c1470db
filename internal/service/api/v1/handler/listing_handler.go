package handler

import (
	"fmt"
	"net/http"

	"github.com/darkkaiser/manga-gateway/internal/gateway"
	"github.com/darkkaiser/manga-gateway/internal/service/api/constants"
	"github.com/darkkaiser/manga-gateway/internal/service/api/httputil"
	"github.com/darkkaiser/manga-gateway/internal/service/api/v1/model/request"
	"github.com/darkkaiser/manga-gateway/pkg/strutil"
	"github.com/labstack/echo/v4"
)

// SearchMangaHandler godoc
// @Summary 만화 검색
// @Description 업스트림 고급 검색 결과 한 페이지를 제목 퍼지 매칭으로 걸러 반환합니다.
// @Description 검색어가 비어 있으면 업스트림 순서를 그대로 반환합니다. 장르는 이름을 쉼표로 구분하여 전달합니다.
// @Tags Listing
// @Produce json
// @Param q query string false "검색어" example(one piece)
// @Param include query string false "포함 장르 (쉼표 구분)" example(Action,Romance)
// @Param exclude query string false "제외 장르 (쉼표 구분)"
// @Param page query int false "페이지 번호" default(1)
// @Param orderBy query string false "정렬 (latest, topview, newest, az)"
// @Success 200 {object} model.Page[model.SearchHit]
// @Failure 400 {object} response.ErrorResponse
// @Failure 429 {object} response.ErrorResponse
// @Failure 502 {object} response.ErrorResponse
// @Router /api/v1/search [get]
func (h *Handler) SearchMangaHandler(c echo.Context) error {
	req := &request.SearchRequest{Page: 1}
	if err := bindQuery(c, req); err != nil {
		return err
	}

	result, err := h.gateway.SearchManga(c.Request().Context(), gateway.SearchQuery{
		Query:   req.Query,
		Include: strutil.SplitAndTrim(req.Include, ","),
		Exclude: strutil.SplitAndTrim(req.Exclude, ","),
		Page:    req.Page,
		OrderBy: req.OrderBy,
	})
	if err != nil {
		return err
	}

	return respond(c, result, cacheShared)
}

// ListByGenreHandler godoc
// @Summary 장르별 목록
// @Description 장르 조건에 맞는 업스트림 목록 한 페이지를 반환합니다. 포함 장르가 최소 하나 필요합니다.
// @Tags Listing
// @Produce json
// @Param include query string true "포함 장르 (쉼표 구분)" example(Action)
// @Param exclude query string false "제외 장르 (쉼표 구분)"
// @Param page query int false "페이지 번호" default(1)
// @Param orderBy query string false "정렬 (latest, topview, newest, az)"
// @Success 200 {object} model.Page[model.SearchHit]
// @Failure 400 {object} response.ErrorResponse
// @Failure 429 {object} response.ErrorResponse
// @Failure 502 {object} response.ErrorResponse
// @Router /api/v1/genres [get]
func (h *Handler) ListByGenreHandler(c echo.Context) error {
	req := &request.GenreRequest{Page: 1}
	if err := bindQuery(c, req); err != nil {
		return err
	}

	result, err := h.gateway.ListByGenre(c.Request().Context(), gateway.GenreQuery{
		Include: strutil.SplitAndTrim(req.Include, ","),
		Exclude: strutil.SplitAndTrim(req.Exclude, ","),
		Page:    req.Page,
		OrderBy: req.OrderBy,
	})
	if err != nil {
		return err
	}

	return respond(c, result, cacheShared)
}

// GenreTableHandler godoc
// @Summary 장르 테이블
// @Description 검색과 장르 목록에서 사용할 수 있는 장르 이름과 업스트림 ID 목록을 반환합니다.
// @Tags Listing
// @Produce json
// @Success 200 {array} extract.Genre
// @Router /api/v1/genres/table [get]
func (h *Handler) GenreTableHandler(c echo.Context) error {
	h.log(c).Debug(constants.LogMsgGenreTable)

	c.Response().Header().Set(echo.HeaderCacheControl, fmt.Sprintf("public, max-age=%d", maxAge(genreTableMaxAge)))
	return c.JSON(http.StatusOK, h.gateway.Genres())
}

func pageSizeExceeded(limit int) error {
	return httputil.NewBadRequestError(fmt.Sprintf(constants.ErrMsgPageSizeExceeded, limit))
}
