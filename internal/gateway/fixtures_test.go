package gateway

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"sync"
	"testing"
	"time"

	"github.com/darkkaiser/manga-gateway/internal/config"
	"github.com/darkkaiser/manga-gateway/internal/gateway/cache"
	"github.com/darkkaiser/manga-gateway/internal/gateway/enrich"
	"github.com/darkkaiser/manga-gateway/internal/gateway/fetcher/mocks"
	"github.com/stretchr/testify/require"
)

const (
	testMangaURL    = "https://chapmanganato.to/manga-aa951409"
	testChapterURL  = "https://chapmanganato.to/manga-aa951409/chapter-1087"
	testBookmarkURL = "https://user.mngusr.com/bookmark_get_list_full"
)

const testMangaHTML = `<html><head>
<link rel="canonical" href="https://chapmanganato.to/manga-aa951409">
</head><body>
<div class="story-info-left"><span class="info-image"><img src="https://avt.example.com/aa951409.jpg"></span></div>
<div class="story-info-right"><h1>One Piece</h1></div>
<ul class="row-content-chapter">
  <li class="a-h"><a class="chapter-name" href="https://chapmanganato.to/manga-aa951409/chapter-3">Chapter 3</a><span class="chapter-time">1 hour ago</span></li>
  <li class="a-h"><a class="chapter-name" href="https://chapmanganato.to/manga-aa951409/chapter-2">Chapter 2</a><span class="chapter-time">2 days ago</span></li>
  <li class="a-h"><a class="chapter-name" href="https://chapmanganato.to/manga-aa951409/chapter-1">Chapter 1</a><span class="chapter-time">3 days ago</span></li>
</ul>
</body></html>`

const testMangaWithoutIDHTML = `<html><head></head><body>
<div class="story-info-left"><span class="info-image"><img src="https://avt.example.com/aa951409.jpg"></span></div>
<div class="story-info-right"><h1>One Piece</h1></div>
</body></html>`

const testMangaWithoutCoverHTML = `<html><head>
<link rel="canonical" href="https://chapmanganato.to/manga-aa951409">
</head><body><div class="story-info-right"><h1>Sorry, this page isn't available</h1></div></body></html>`

const testChapterHTML = `<html><body>
<div class="panel-chapter-info-top"><h1>ONE PIECE CHAPTER 1087</h1></div>
<div class="container-chapter-reader">
  <img src="https://img.example.com/1.png">
  <img src="https://img.example.com/2.png">
</div>
</body></html>`

const testListingHTML = `<html><body>
<div class="search-story-item"><a class="item-img" href="https://chapmanganato.to/manga-aa951409"></a><h3><a href="https://chapmanganato.to/manga-aa951409">One Piece</a></h3></div>
<div class="search-story-item"><a class="item-img" href="https://chapmanganato.to/manga-bb000001"></a><h3><a href="https://chapmanganato.to/manga-bb000001">One Punch-Man</a></h3></div>
<div class="search-story-item"><a class="item-img" href="https://chapmanganato.to/manga-dd000003"></a><h3><a href="https://chapmanganato.to/manga-dd000003">Solo Leveling</a></h3></div>
<a class="page-last" href="#">LAST(17)</a>
</body></html>`

const testBookmarkJSON = `{
  "result": "ok",
  "total_page": 1,
  "data": [
    {
      "bmid": "501", "storyid": "41890", "storyname": "One Piece",
      "image": "https://avt.example.com/bm-1.jpg",
      "chapter_numbernow": "9", "chapter_numberlast": "9.0",
      "link_story": "https://chapmanganato.to/manga-aa951409"
    },
    {
      "bmid": "502", "storyid": "50001", "storyname": "Solo Leveling",
      "image": "https://avt.example.com/bm-2.jpg",
      "chapter_numbernow": "9", "chapter_numberlast": "10",
      "link_story": "https://chapmanganato.to/manga-dd000003"
    }
  ],
  "html": "<div class=\"user-bookmark-item bm-it-501\"><a class=\"btn-bookmark-delete\" data-token=\"tok-501\">x</a></div>"
}`

// fakeClock 캐시 만료를 테스트에서 직접 진행시킵니다.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// fakeEnricher 보조 조회 서비스 대역
type fakeEnricher struct {
	records map[string]enrich.Record
	err     error
}

func (e *fakeEnricher) Manga(_ context.Context, mangaID string) (enrich.Record, bool, error) {
	if e.err != nil {
		return enrich.Record{}, false, e.err
	}
	rec, ok := e.records[mangaID]
	return rec, ok, nil
}

func (e *fakeEnricher) Covers(_ context.Context) (map[string]enrich.Record, error) {
	if e.err != nil {
		return nil, e.err
	}
	return e.records, nil
}

func testConfig() *config.AppConfig {
	cfg := config.Default()
	cfg.Enrichment.Enabled = false
	return &cfg
}

func newTestGateway(t *testing.T, opts ...Option) (*Gateway, *mocks.MockHTTPFetcher, *fakeClock) {
	t.Helper()

	f := mocks.NewMockHTTPFetcher()
	clock := &fakeClock{now: time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)}

	opts = append([]Option{WithFetcher(f), WithStore(cache.NewStore(cache.WithClock(clock.Now)))}, opts...)
	return New(testConfig(), opts...), f, clock
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}
