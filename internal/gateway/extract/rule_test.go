package extract

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	apperrors "github.com/darkkaiser/manga-gateway/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDoc(t *testing.T, html string) *goquery.Selection {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc.Selection
}

const infoTableHTML = `
<div class="story-info-right">
  <h1>  One   Piece </h1>
  <table class="variations-tableInfo">
    <tr><td class="table-label">Alternative :</td><td class="table-value"><h2>ワンピース ; 海贼王</h2></td></tr>
    <tr><td class="table-label">Author(s) :</td><td class="table-value"><a>Oda Eiichiro</a> - <a>Shueisha</a></td></tr>
    <tr><td class="table-label">Status :</td><td class="table-value">Ongoing</td></tr>
  </table>
</div>
<div class="info-image"><img data-src="/covers/one-piece.jpg"></div>`

func TestRuleSet_Apply(t *testing.T) {
	t.Parallel()

	scope := newDoc(t, infoTableHTML)

	rules := RuleSet{
		{Field: "title", Query: Query{Selector: ".story-info-right h1"}, Required: true},
		{
			Field:     "cover",
			Query:     Query{Selector: ".info-image img", Attr: "src"},
			Fallbacks: []Query{{Selector: ".info-image img", Attr: "data-src"}},
			Transform: AbsoluteURL("https://manganato.com"),
			Required:  true,
		},
		{Field: "authors", Query: Query{Selector: `td.table-label:contains("Author")`, Closest: "tr", Find: "td.table-value a", All: true}},
		{Field: "status", Query: Query{Selector: `td.table-label:contains("Status")`, Closest: "tr", Find: "td.table-value"}},
		{Field: "score", Query: Query{Selector: "em#rate_row_cmd"}, Default: "0"},
		{Field: "views", Query: Query{Selector: ".not-exists"}},
	}

	res, err := rules.Apply(scope)
	require.NoError(t, err)

	assert.Equal(t, "One Piece", res.String("title"))
	assert.Equal(t, "https://manganato.com/covers/one-piece.jpg", res.String("cover"), "대체 쿼리로 data-src를 사용")
	assert.Equal(t, []string{"Oda Eiichiro", "Shueisha"}, res.Strings("authors"))
	assert.Equal(t, "Ongoing", res.String("status"))
	assert.Equal(t, "0", res.String("score"), "값이 없으면 기본값 사용")
	assert.False(t, res.Has("views"))
	assert.Empty(t, res.String("views"))
}

func TestRuleSet_Apply_RequiredMissing(t *testing.T) {
	t.Parallel()

	scope := newDoc(t, `<div class="story-info-right"><h1>Title</h1></div>`)

	rules := RuleSet{
		{Field: "title", Query: Query{Selector: ".story-info-right h1"}, Required: true},
		{Field: "cover", Query: Query{Selector: ".info-image img", Attr: "src"}, Required: true},
		{Field: "id", Query: Query{Selector: "#id"}, Required: true},
	}

	res, err := rules.Apply(scope)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.Incomplete))
	assert.Contains(t, err.Error(), "cover, id")
	assert.Equal(t, "Title", res.String("title"), "추출된 값은 에러와 함께 반환")
}

func TestRuleSet_Collect(t *testing.T) {
	t.Parallel()

	scope := newDoc(t, `
<div class="list">
  <div class="item"><a class="name" href="/manga-a">A</a></div>
  <div class="item"><a class="name" href="/manga-b">B</a></div>
  <div class="item"><span class="name">링크 없음</span></div>
  <div class="item"><a class="name" href="/manga-d">D</a></div>
  <div class="item"><a class="name" href="/manga-e">E</a></div>
</div>`)

	rules := RuleSet{
		{Field: "id", Query: Query{Selector: "a.name", Attr: "href"}, Transform: Slug, Required: true},
		{Field: "title", Query: Query{Selector: ".name"}},
	}

	results, skipped := rules.Collect(scope, ".item")

	assert.Equal(t, 1, skipped)
	require.Len(t, results, 4)
	ids := make([]string, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.String("id"))
	}
	assert.Equal(t, []string{"manga-a", "manga-b", "manga-d", "manga-e"}, ids)
}

func TestQuery_FirstNonEmpty(t *testing.T) {
	t.Parallel()

	scope := newDoc(t, `<p class="v"> </p><p class="v">두 번째</p><p class="v">세 번째</p>`)

	res, err := RuleSet{{Field: "v", Query: Query{Selector: "p.v"}}}.Apply(scope)
	require.NoError(t, err)
	assert.Equal(t, []string{"두 번째"}, res.Strings("v"))
}
