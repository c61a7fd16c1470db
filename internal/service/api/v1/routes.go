package v1

import (
	"github.com/darkkaiser/manga-gateway/internal/service/api/v1/handler"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes v1 API 라우트를 /api/v1 그룹에 등록합니다.
func RegisterRoutes(e *echo.Echo, h *handler.Handler) {
	g := e.Group("/api/v1")

	g.GET("/manga/:id", h.GetMangaHandler)
	g.GET("/manga/:id/chapters", h.ListChaptersHandler)
	g.GET("/manga/:id/chapters/:chapterId", h.GetChapterHandler)

	g.GET("/search", h.SearchMangaHandler)
	g.GET("/genres", h.ListByGenreHandler)
	g.GET("/genres/table", h.GenreTableHandler)

	g.GET("/bookmarks", h.ListBookmarksHandler)
}
