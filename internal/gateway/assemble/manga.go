package assemble

import (
	"math"
	"regexp"
	"strconv"

	"github.com/PuerkitoBio/goquery"
	"github.com/darkkaiser/manga-gateway/internal/gateway/extract"
	"github.com/darkkaiser/manga-gateway/internal/gateway/fetcher"
	"github.com/darkkaiser/manga-gateway/internal/gateway/model"
	"github.com/darkkaiser/manga-gateway/pkg/strutil"
)

// 만화 상세 페이지 필드 이름
const (
	fieldID          = "id"
	fieldTitle       = "title"
	fieldAlternative = "alternative"
	fieldAuthors     = "authors"
	fieldStatus      = "status"
	fieldGenres      = "genres"
	fieldCover       = "cover"
	fieldScore       = "score"
	fieldViews       = "views"
	fieldDescription = "description"
	fieldStoryID     = "storyId"
	fieldStoryData   = "storyData"
)

// 챕터 목록 행 필드 이름
const (
	fieldChapterLink  = "link"
	fieldChapterTitle = "title"
	fieldChapterViews = "views"
	fieldChapterTime  = "time"
)

var (
	ratingPattern = regexp.MustCompile(`(?i)rate\s*:\s*(\d+(?:\.\d+)?)`)

	mangaScriptRules = []extract.ScriptRule{
		{Field: fieldStoryID, Pattern: regexp.MustCompile(`(?:glb_story_id|story_id)\s*=\s*['"]?(\d+)`)},
		{Field: fieldStoryData, Pattern: regexp.MustCompile(`glb_story_data\s*=\s*'([^']*)'`)},
	}
)

// infoRow 라벨 셀/값 셀 형태의 정보 테이블 행을 찾는 쿼리
func infoRow(label, find string, all bool) extract.Query {
	return extract.Query{
		Selector: `table.variations-tableInfo td.table-label:contains("` + label + `")`,
		Closest:  "tr",
		Find:     find,
		All:      all,
	}
}

func mangaRules(base string) extract.RuleSet {
	absolute := extract.AbsoluteURL(base)

	return extract.RuleSet{
		{
			Field:     fieldID,
			Query:     extract.Query{Selector: `link[rel="canonical"]`, Attr: "href"},
			Fallbacks: []extract.Query{{Selector: `meta[property="og:url"]`, Attr: "content"}},
			Transform: extract.Slug,
			Required:  true,
		},
		{
			Field:     fieldTitle,
			Query:     extract.Query{Selector: ".story-info-right h1"},
			Fallbacks: []extract.Query{{Selector: ".info-image img", Attr: "title"}},
		},
		{Field: fieldAlternative, Query: infoRow("Alternative", "td.table-value", false)},
		{Field: fieldAuthors, Query: infoRow("Author", "td.table-value a", true)},
		{Field: fieldStatus, Query: infoRow("Status", "td.table-value", false)},
		{Field: fieldGenres, Query: infoRow("Genres", "td.table-value a", true)},
		{
			Field: fieldCover,
			Query: extract.Query{Selector: ".info-image img", Attr: "src"},
			Fallbacks: []extract.Query{
				{Selector: ".info-image img", Attr: "data-src"},
			},
			Transform: absolute,
			Required:  true,
		},
		{
			Field:     fieldScore,
			Query:     extract.Query{Selector: "em#rate_row_cmd"},
			Fallbacks: []extract.Query{{Selector: `em[property="v:average"]`}},
			Transform: func(s string) string {
				if v := extract.RegexGroup(ratingPattern, 1)(s); v != "" {
					return v
				}
				return extract.Normalize(s)
			},
		},
		{
			Field:     fieldViews,
			Query:     extract.Query{Selector: `.story-info-right-extent span.stre-label:contains("View")`, Closest: "p", Find: "span.stre-value"},
			Transform: extract.Normalize,
		},
		{
			Field:     fieldDescription,
			Query:     extract.Query{Selector: "#panel-story-info-description"},
			Transform: extract.Chain(extract.MultiLine, extract.StripPrefixes("Description :", "Description:")),
		},
	}
}

func chapterRowRules(base string) extract.RuleSet {
	return extract.RuleSet{
		{
			Field:     fieldChapterLink,
			Query:     extract.Query{Selector: "a.chapter-name", Attr: "href"},
			Transform: extract.AbsoluteURL(base),
			Required:  true,
		},
		{Field: fieldChapterTitle, Query: extract.Query{Selector: "a.chapter-name"}},
		{Field: fieldChapterViews, Query: extract.Query{Selector: "span.chapter-view"}},
		{
			Field:     fieldChapterTime,
			Query:     extract.Query{Selector: "span.chapter-time", Attr: "title"},
			Fallbacks: []extract.Query{{Selector: "span.chapter-time"}},
		},
	}
}

// Manga 만화 상세 페이지를 조립합니다.
//
// ID는 문서의 canonical 링크(또는 og:url)에서 읽습니다.
// ID 또는 표지 이미지를 얻을 수 없으면 해당 페이지는 만화 페이지가 아닌 것으로 보고 Incomplete를 반환합니다.
// 작성 시각을 해석할 수 없는 챕터 행은 실제 챕터가 아니므로 목록에서 제외합니다.
func Manga(doc *fetcher.Document) (*model.Manga, error) {
	root, err := parseHTML(doc)
	if err != nil {
		return nil, err
	}

	res, err := mangaRules(doc.URL).Apply(root)
	if err != nil {
		return nil, err
	}

	id := res.String(fieldID)

	titles := map[string]string{model.TitleDefault: res.String(fieldTitle)}
	if alt := res.String(fieldAlternative); alt != "" {
		titles[model.TitleAlternative] = alt
	}

	scripts := extract.ScanScripts(root, mangaScriptRules)

	m := &model.Manga{
		ID:            id,
		StoryID:       scripts[fieldStoryID],
		StoryData:     scripts[fieldStoryData],
		Titles:        titles,
		Authors:       strutil.UniqueNonEmpty(res.Strings(fieldAuthors)),
		Status:        res.String(fieldStatus),
		Genres:        strutil.UniqueNonEmpty(res.Strings(fieldGenres)),
		Description:   res.String(fieldDescription),
		CoverImageURL: res.String(fieldCover),
		Score:         parseScore(res.String(fieldScore)),
		ViewCount:     res.String(fieldViews),
		FetchedAt:     doc.FetchedAt,
	}
	if m.Authors == nil {
		m.Authors = []string{}
	}
	if m.Genres == nil {
		m.Genres = []string{}
	}

	m.Chapters = chapterSummaries(root, doc, id)

	return m, nil
}

// chapterSummaries 상세 페이지의 챕터 목록을 문서 순서대로 조립합니다.
func chapterSummaries(root *goquery.Selection, doc *fetcher.Document, mangaID string) []model.ChapterSummary {
	rows, skipped := chapterRowRules(doc.URL).Collect(root, ".row-content-chapter li.a-h")

	chapters := make([]model.ChapterSummary, 0, len(rows))
	for _, row := range rows {
		created, ok := extract.NormalizeDate(row.String(fieldChapterTime), doc.FetchedAt)
		if !ok {
			skipped++
			continue
		}

		link := row.String(fieldChapterLink)
		title := row.String(fieldChapterTitle)

		c := model.ChapterSummary{
			ID:            extract.Slug(link),
			ParentMangaID: mangaID,
			Title:         title,
			Number:        chapterNumber(title, link),
			ViewCount:     row.String(fieldChapterViews),
			CreatedAt:     created.Time,
			CreatedLabel:  created.Label,
		}
		if c.ID == "" {
			skipped++
			continue
		}

		chapters = append(chapters, c)
	}

	logSkipped("chapter-list", doc, skipped, len(chapters))

	return chapters
}

// chapterNumber 제목에서 먼저 찾고, 없으면 링크 슬러그에서 찾습니다.
func chapterNumber(title, link string) *float64 {
	for _, candidate := range []string{title, extract.Slug(link)} {
		if n, ok := extract.ParseChapterNumber(candidate); ok {
			return &n
		}
	}
	return nil
}

func parseScore(s string) *float64 {
	if s == "" {
		return nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
