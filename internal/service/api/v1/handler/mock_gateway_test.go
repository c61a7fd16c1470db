package handler

import (
	"context"

	"github.com/darkkaiser/manga-gateway/internal/gateway"
	"github.com/darkkaiser/manga-gateway/internal/gateway/extract"
	"github.com/darkkaiser/manga-gateway/internal/gateway/model"
	"github.com/stretchr/testify/mock"
)

// mockGateway Gateway 인터페이스의 testify mock 구현
type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) GetManga(ctx context.Context, mangaID, sessionToken string) (gateway.Result[*model.Manga], error) {
	args := m.Called(ctx, mangaID, sessionToken)
	return args.Get(0).(gateway.Result[*model.Manga]), args.Error(1)
}

func (m *mockGateway) ListChaptersForManga(ctx context.Context, mangaID string, page, pageSize int, sessionToken string) (gateway.Result[model.Page[model.ChapterSummary]], error) {
	args := m.Called(ctx, mangaID, page, pageSize, sessionToken)
	return args.Get(0).(gateway.Result[model.Page[model.ChapterSummary]]), args.Error(1)
}

func (m *mockGateway) GetChapter(ctx context.Context, mangaID, chapterID string, withDimensions bool, sessionToken string) (gateway.Result[*model.Chapter], error) {
	args := m.Called(ctx, mangaID, chapterID, withDimensions, sessionToken)
	return args.Get(0).(gateway.Result[*model.Chapter]), args.Error(1)
}

func (m *mockGateway) ListBookmarks(ctx context.Context, sessionToken string, page int) (gateway.Result[model.Page[model.Bookmark]], error) {
	args := m.Called(ctx, sessionToken, page)
	return args.Get(0).(gateway.Result[model.Page[model.Bookmark]]), args.Error(1)
}

func (m *mockGateway) SearchManga(ctx context.Context, q gateway.SearchQuery) (gateway.Result[model.Page[model.SearchHit]], error) {
	args := m.Called(ctx, q)
	return args.Get(0).(gateway.Result[model.Page[model.SearchHit]]), args.Error(1)
}

func (m *mockGateway) ListByGenre(ctx context.Context, q gateway.GenreQuery) (gateway.Result[model.Page[model.SearchHit]], error) {
	args := m.Called(ctx, q)
	return args.Get(0).(gateway.Result[model.Page[model.SearchHit]]), args.Error(1)
}

func (m *mockGateway) Genres() []extract.Genre {
	args := m.Called()
	return args.Get(0).([]extract.Genre)
}
