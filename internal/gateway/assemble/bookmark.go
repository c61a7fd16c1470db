package assemble

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/darkkaiser/manga-gateway/internal/gateway/extract"
	"github.com/darkkaiser/manga-gateway/internal/gateway/fetcher"
	"github.com/darkkaiser/manga-gateway/internal/gateway/model"
	apperrors "github.com/darkkaiser/manga-gateway/internal/pkg/errors"
	"github.com/tidwall/gjson"
)

// 북마크 목록 응답(JSON 봉투)의 키
const (
	bookmarkKeyResult     = "result"
	bookmarkKeyMessage    = "msg"
	bookmarkKeyData       = "data"
	bookmarkKeyTotalPages = "total_page"
	bookmarkKeyHTML       = "html"
)

var (
	bookmarkRowClassPattern = regexp.MustCompile(`\bbm-it-(\d+)\b`)

	// 세션 만료 시 업스트림은 200 응답에 result=error와 로그인 안내 메시지를 담아 보냅니다.
	loginRequiredPattern = regexp.MustCompile(`(?i)log\s*in|sign\s*in|session|not\s+logged`)
)

// bookmarkAction HTML 조각에서만 얻을 수 있는 행 단위 메타데이터
type bookmarkAction struct {
	deleteToken string
}

// Bookmarks 북마크 목록 응답을 조립합니다.
//
// 1단계: JSON 봉투의 data 배열을 읽습니다.
// 2단계: 같은 응답에 포함된 HTML 조각의 행을 행 ID로 색인합니다.
// 3단계: 행 ID로 두 결과를 병합합니다. HTML에 없는 행은 삭제 토큰 없이 유지됩니다.
//
// UpToDate는 업스트림 값을 신뢰하지 않고 두 챕터 번호를 수치 비교하여 다시 계산합니다.
func Bookmarks(doc *fetcher.Document) (*model.Page[model.Bookmark], error) {
	if doc == nil || len(bytes.TrimSpace(doc.Body)) == 0 {
		return nil, apperrors.New(apperrors.EmptyResponse, "북마크 응답 본문이 비어 있습니다")
	}
	if !gjson.ValidBytes(doc.Body) {
		return nil, apperrors.New(apperrors.ParsingFailed, "북마크 응답이 올바른 JSON 형식이 아닙니다")
	}

	envelope := gjson.ParseBytes(doc.Body)

	if result := envelope.Get(bookmarkKeyResult).String(); result != "" && !strings.EqualFold(result, "ok") {
		msg := envelope.Get(bookmarkKeyMessage).String()
		if loginRequiredPattern.MatchString(msg) {
			return nil, apperrors.New(apperrors.Unauthorized, "업스트림 세션이 만료되었거나 로그인이 필요합니다")
		}
		return nil, apperrors.Newf(apperrors.ExecutionFailed, "업스트림이 북마크 조회를 거부했습니다(result=%s)", result)
	}

	actions, err := indexBookmarkActions(envelope.Get(bookmarkKeyHTML).String())
	if err != nil {
		return nil, err
	}

	rows := envelope.Get(bookmarkKeyData).Array()
	bookmarks := make([]model.Bookmark, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		b, ok := bookmarkFromJSON(row, doc)
		if !ok {
			skipped++
			continue
		}
		if a, found := actions[b.BookmarkID]; found {
			b.DeleteToken = a.deleteToken
		}
		bookmarks = append(bookmarks, b)
	}

	logSkipped("bookmarks", doc, skipped, len(bookmarks))

	totalPages := int(envelope.Get(bookmarkKeyTotalPages).Int())
	if totalPages < 1 {
		totalPages = 1
	}

	return &model.Page[model.Bookmark]{Items: bookmarks, TotalPages: totalPages}, nil
}

func bookmarkFromJSON(row gjson.Result, doc *fetcher.Document) (model.Bookmark, bool) {
	str := func(key string) string {
		return extract.Normalize(row.Get(key).String())
	}

	b := model.Bookmark{
		BookmarkID:           str("bmid"),
		StoryID:              str("storyid"),
		StoryName:            str("storyname"),
		Image:                str("image"),
		CurrentChapterNumber: str("chapter_numbernow"),
		CurrentChapterLink:   str("link_chapter_now"),
		LatestChapterNumber:  str("chapter_numberlast"),
		LatestChapterLink:    str("link_chapter_last"),
		MangaID:              extract.Slug(str("link_story")),
	}
	if b.BookmarkID == "" || b.StoryID == "" {
		return b, false
	}

	if d, ok := extract.NormalizeDate(str("chapterlastdateupdate"), doc.FetchedAt); ok {
		b.LastUpdated = d.Time
		b.LastUpdatedLabel = d.Label
	}

	b.UpToDate = b.CurrentChapterNumber != "" && extract.SameChapter(b.CurrentChapterNumber, b.LatestChapterNumber)

	return b, true
}

// indexBookmarkActions HTML 조각의 북마크 행을 행 ID 기준 맵으로 만듭니다.
func indexBookmarkActions(fragment string) (map[string]bookmarkAction, error) {
	actions := make(map[string]bookmarkAction)
	if strings.TrimSpace(fragment) == "" {
		return actions, nil
	}

	d, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ParsingFailed, "북마크 HTML 조각을 파싱할 수 없습니다")
	}

	d.Find(".user-bookmark-item").Each(func(_ int, item *goquery.Selection) {
		id := bookmarkRowID(item)
		if id == "" {
			return
		}

		btn := item.Find(".btn-bookmark-delete").First()
		token, _ := btn.Attr("data-token")
		if token == "" {
			token, _ = btn.Attr("data-bm")
		}

		actions[id] = bookmarkAction{deleteToken: strings.TrimSpace(token)}
	})

	return actions, nil
}

func bookmarkRowID(item *goquery.Selection) string {
	if id, ok := item.Attr("data-id"); ok && strings.TrimSpace(id) != "" {
		return strings.TrimSpace(id)
	}

	class, _ := item.Attr("class")
	if m := bookmarkRowClassPattern.FindStringSubmatch(class); m != nil {
		return m[1]
	}
	return ""
}
