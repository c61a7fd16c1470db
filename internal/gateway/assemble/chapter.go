package assemble

import (
	"github.com/darkkaiser/manga-gateway/internal/gateway/extract"
	"github.com/darkkaiser/manga-gateway/internal/gateway/fetcher"
	"github.com/darkkaiser/manga-gateway/internal/gateway/model"
	"github.com/darkkaiser/manga-gateway/pkg/strutil"
)

// 챕터 읽기 페이지 필드 이름
const (
	fieldImages     = "images"
	fieldMangaTitle = "mangaTitle"
	fieldPrev       = "prev"
	fieldNext       = "next"
	fieldPageTitle  = "chapterTitle"
)

func chapterPageRules(base string) extract.RuleSet {
	absolute := extract.AbsoluteURL(base)

	return extract.RuleSet{
		{
			Field: fieldImages,
			Query: extract.Query{Selector: ".container-chapter-reader img", Attr: "src", All: true},
			Fallbacks: []extract.Query{
				{Selector: ".container-chapter-reader img", Attr: "data-src", All: true},
			},
			Transform: absolute,
			Required:  true,
		},
		{
			Field:     fieldPageTitle,
			Query:     extract.Query{Selector: ".panel-chapter-info-top h1"},
			Fallbacks: []extract.Query{{Selector: ".panel-breadcrumb a:nth-of-type(3)"}},
		},
		{Field: fieldMangaTitle, Query: extract.Query{Selector: ".panel-breadcrumb a:nth-of-type(2)"}},
		{
			Field:     fieldPrev,
			Query:     extract.Query{Selector: "a.navi-change-chapter-btn-prev", Attr: "href"},
			Transform: extract.Chain(absolute, extract.Slug),
		},
		{
			Field:     fieldNext,
			Query:     extract.Query{Selector: "a.navi-change-chapter-btn-next", Attr: "href"},
			Transform: extract.Chain(absolute, extract.Slug),
		},
	}
}

// Chapter 챕터 읽기 페이지를 조립합니다. 이미지가 하나도 없으면 Incomplete를 반환합니다.
// 이미지 순서는 문서 순서를 그대로 따릅니다.
func Chapter(doc *fetcher.Document, mangaID, chapterID string) (*model.Chapter, error) {
	root, err := parseHTML(doc)
	if err != nil {
		return nil, err
	}

	res, err := chapterPageRules(doc.URL).Apply(root)
	if err != nil {
		return nil, err
	}

	title := res.String(fieldPageTitle)

	c := &model.Chapter{
		ChapterSummary: model.ChapterSummary{
			ID:            chapterID,
			ParentMangaID: mangaID,
			Title:         title,
			Number:        chapterNumber(title, chapterID),
		},
		MangaTitle:    res.String(fieldMangaTitle),
		Images:        strutil.UniqueNonEmpty(res.Strings(fieldImages)),
		PrevChapterID: res.String(fieldPrev),
		NextChapterID: res.String(fieldNext),
		FetchedAt:     doc.FetchedAt,
	}

	return c, nil
}
