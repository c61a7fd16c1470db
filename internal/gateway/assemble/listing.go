package assemble

import (
	"regexp"
	"strconv"

	"github.com/darkkaiser/manga-gateway/internal/gateway/extract"
	"github.com/darkkaiser/manga-gateway/internal/gateway/fetcher"
	"github.com/darkkaiser/manga-gateway/internal/gateway/model"
)

// 검색/장르 목록 항목 필드 이름
const (
	fieldHitID          = "id"
	fieldHitTitle       = "title"
	fieldHitCover       = "cover"
	fieldHitLatest      = "latest"
	fieldHitAuthor      = "author"
	fieldHitViews       = "views"
	fieldHitRating      = "rating"
	fieldHitUpdated     = "updated"
	fieldHitDescription = "description"
)

// 검색 결과 페이지와 장르 목록 페이지는 항목 마크업이 다르므로 두 셀렉터를 함께 사용합니다.
const listingItemSelector = ".search-story-item, .content-genres-item"

var lastPagePattern = regexp.MustCompile(`\((\d+)\)`)

func listingRules(base string) extract.RuleSet {
	absolute := extract.AbsoluteURL(base)

	return extract.RuleSet{
		{
			Field:     fieldHitID,
			Query:     extract.Query{Selector: "a.item-img, a.genres-item-img", Attr: "href"},
			Fallbacks: []extract.Query{{Selector: "h3 a", Attr: "href"}},
			Transform: extract.Chain(absolute, extract.Slug),
			Required:  true,
		},
		{
			Field:     fieldHitTitle,
			Query:     extract.Query{Selector: "h3 a"},
			Fallbacks: []extract.Query{{Selector: "a.item-img, a.genres-item-img", Attr: "title"}},
		},
		{
			Field:     fieldHitCover,
			Query:     extract.Query{Selector: "img", Attr: "src"},
			Fallbacks: []extract.Query{{Selector: "img", Attr: "data-src"}},
			Transform: absolute,
		},
		{Field: fieldHitLatest, Query: extract.Query{Selector: "a.item-chapter, a.genres-item-chap"}},
		{Field: fieldHitAuthor, Query: extract.Query{Selector: ".item-author, .genres-item-author"}},
		{
			Field:     fieldHitViews,
			Query:     extract.Query{Selector: `.item-time:contains("View")`},
			Fallbacks: []extract.Query{{Selector: ".genres-item-view"}},
			Transform: extract.Chain(extract.Normalize, extract.StripPrefixes("View :", "View:")),
		},
		{Field: fieldHitRating, Query: extract.Query{Selector: "em.item-rate, em.genres-item-rate"}},
		{
			Field:     fieldHitUpdated,
			Query:     extract.Query{Selector: `.item-time:contains("Updated")`},
			Fallbacks: []extract.Query{{Selector: ".genres-item-time"}},
			Transform: extract.Chain(extract.Normalize, extract.StripPrefixes("Updated :", "Updated:")),
		},
		{
			Field:     fieldHitDescription,
			Query:     extract.Query{Selector: ".item-description, .genres-item-description"},
			Transform: extract.MultiLine,
		},
	}
}

// Listing 검색 결과 또는 장르 목록 페이지를 조립합니다.
//
// 필수 필드(ID)가 없는 항목은 건너뛰며, 나머지 필드는 없으면 빈 문자열로 둡니다.
// 전체 페이지 수는 업스트림의 "LAST(n)" 링크를 그대로 따르고, 링크가 없으면 1입니다.
func Listing(doc *fetcher.Document) (*model.Page[model.SearchHit], error) {
	root, err := parseHTML(doc)
	if err != nil {
		return nil, err
	}

	rows, skipped := listingRules(doc.URL).Collect(root, listingItemSelector)

	hits := make([]model.SearchHit, 0, len(rows))
	for _, r := range rows {
		hits = append(hits, model.SearchHit{
			ID:                 r.String(fieldHitID),
			Title:              r.String(fieldHitTitle),
			CoverImageURL:      r.String(fieldHitCover),
			LatestChapterLabel: r.String(fieldHitLatest),
			Author:             r.String(fieldHitAuthor),
			ViewCount:          r.String(fieldHitViews),
			Rating:             r.String(fieldHitRating),
			LastUpdated:        r.String(fieldHitUpdated),
			Description:        r.String(fieldHitDescription),
		})
	}

	logSkipped("listing", doc, skipped, len(hits))

	totalPages := 1
	if last := root.Find("a.page-last").First().Text(); last != "" {
		if m := lastPagePattern.FindStringSubmatch(last); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
				totalPages = n
			}
		}
	}

	return &model.Page[model.SearchHit]{Items: hits, TotalPages: totalPages}, nil
}
