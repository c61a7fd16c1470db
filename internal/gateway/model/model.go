// Package model 게이트웨이가 스크래핑 결과로 조립하는 도메인 엔티티를 정의합니다.
//
// 모든 엔티티는 조립 이후 변경되지 않으며, 캐시에서 꺼낸 값도 그대로 공유됩니다.
package model

import (
	"time"
)

// 제목 종류(Manga.Titles의 키)
const (
	TitleDefault     = "default"
	TitleAlternative = "alternative"
)

// Manga 하나의 만화 시리즈
type Manga struct {
	ID            string            `json:"id"`
	StoryID       string            `json:"storyId,omitempty"`
	StoryData     string            `json:"storyData,omitempty"` // 페이지 스크립트의 불투명 값, 그대로 전달
	Titles        map[string]string `json:"titles"`
	Authors       []string          `json:"authors"`
	Status        string            `json:"status"`
	Genres        []string          `json:"genres"`
	Description   string            `json:"description"`
	CoverImageURL string            `json:"coverImageUrl"`

	// Score 업스트림에 평점이 없으면 nil
	Score     *float64         `json:"score"`
	ViewCount string           `json:"viewCount"`
	Chapters  []ChapterSummary `json:"chapters"`
	FetchedAt time.Time        `json:"fetchedAt"`
}

// Title 기본 제목을 반환합니다.
func (m *Manga) Title() string {
	return m.Titles[TitleDefault]
}

// ChapterSummary 만화 상세 페이지에 나열되는 챕터 항목
type ChapterSummary struct {
	ID            string `json:"id"`
	ParentMangaID string `json:"parentMangaId"`
	Title         string `json:"title"`

	// Number 챕터 번호를 해석할 수 없으면 nil (표시용으로는 유지되지만 정렬 대상에서 제외)
	Number    *float64  `json:"number"`
	ViewCount string    `json:"viewCount"`
	CreatedAt time.Time `json:"createdAt"`

	// CreatedLabel 업스트림이 상대 시간("3 hours ago")으로 표기한 경우의 원문
	CreatedLabel string `json:"createdLabel,omitempty"`
}

// Chapter 읽기용으로 단독 조회한 챕터
type Chapter struct {
	ChapterSummary

	MangaTitle    string   `json:"mangaTitle,omitempty"`
	Images        []string `json:"images"`
	PrevChapterID string   `json:"prevChapterId,omitempty"`
	NextChapterID string   `json:"nextChapterId,omitempty"`

	// Dimensions/ReadingMode 이미지 크기 조회를 요청한 경우에만 채워집니다.
	Dimensions  []ImageDimension `json:"dimensions,omitempty"`
	ReadingMode ReadingMode      `json:"readingMode,omitempty"`

	FetchedAt time.Time `json:"fetchedAt"`
}

// ImageDimension 챕터 이미지 한 장의 크기. 조회에 실패한 이미지는 0으로 남습니다.
type ImageDimension struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Known 크기를 알아낸 이미지인지 여부
func (d ImageDimension) Known() bool {
	return d.Width > 0 && d.Height > 0
}

// ReadingMode 리더가 챕터를 표시할 방식
type ReadingMode string

const (
	ReadingModeStrip ReadingMode = "strip"
	ReadingModePaged ReadingMode = "paged"
)

// Bookmark 세션 사용자의 북마크(읽은 위치) 한 건
type Bookmark struct {
	BookmarkID  string `json:"bookmarkId"`
	DeleteToken string `json:"deleteToken,omitempty"`
	StoryID     string `json:"storyId"`
	MangaID     string `json:"mangaId,omitempty"`
	StoryName   string `json:"storyName"`
	Image       string `json:"image"`

	CurrentChapterNumber string `json:"currentChapterNumber"`
	CurrentChapterLink   string `json:"currentChapterLink"`
	LatestChapterNumber  string `json:"latestChapterNumber"`
	LatestChapterLink    string `json:"latestChapterLink"`

	LastUpdated      time.Time `json:"lastUpdated"`
	LastUpdatedLabel string    `json:"lastUpdatedLabel,omitempty"`

	// UpToDate 조립 시점에 두 챕터 번호를 수치 비교하여 계산합니다.
	UpToDate bool `json:"upToDate"`
}

// SearchHit 검색/장르 목록의 경량 항목. ID 외의 필드는 없으면 빈 문자열입니다.
type SearchHit struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	CoverImageURL      string `json:"coverImageUrl"`
	LatestChapterLabel string `json:"latestChapterLabel"`
	Author             string `json:"author"`
	ViewCount          string `json:"viewCount"`
	Rating             string `json:"rating"`
	LastUpdated        string `json:"lastUpdated"`
	Description        string `json:"description"`
}

// Page 페이지 단위 목록 응답
type Page[T any] struct {
	Items      []T `json:"items"`
	TotalPages int `json:"totalPages"`
}
