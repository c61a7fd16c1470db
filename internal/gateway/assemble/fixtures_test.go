package assemble

import (
	"testing"
	"time"

	"github.com/darkkaiser/manga-gateway/internal/gateway/fetcher"
)

var testFetchedAt = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func newTestDocument(t *testing.T, rawURL, body string) *fetcher.Document {
	t.Helper()

	return &fetcher.Document{
		URL:       rawURL,
		Status:    200,
		Body:      []byte(body),
		FetchedAt: testFetchedAt,
	}
}

const mangaPageHTML = `<!DOCTYPE html>
<html><head>
<link rel="canonical" href="https://chapmanganato.to/manga-aa951409">
<script>var glb_story_id = '41890'; glb_story_data = 'ZXhhbXBsZQ==';</script>
</head><body>
<div class="panel-story-info">
  <div class="story-info-left">
    <span class="info-image"><img class="img-loading" src="/covers/aa951409.jpg" title="One Piece"></span>
  </div>
  <div class="story-info-right">
    <h1>One Piece</h1>
    <table class="variations-tableInfo"><tbody>
      <tr><td class="table-label"><i class="info-alternative"></i>Alternative :</td><td class="table-value"><h2>ワンピース ; 海贼王</h2></td></tr>
      <tr><td class="table-label"><i class="info-author"></i>Author(s) :</td><td class="table-value"><a href="#">Oda Eiichiro</a></td></tr>
      <tr><td class="table-label"><i class="info-status"></i>Status :</td><td class="table-value">Ongoing</td></tr>
      <tr><td class="table-label"><i class="info-genres"></i>Genres :</td><td class="table-value"><a href="#">Action</a> - <a href="#">Adventure</a> - <a href="#">Comedy</a></td></tr>
    </tbody></table>
    <div class="story-info-right-extent">
      <p><span class="stre-label"><i class="info-time"></i>Updated :</span><span class="stre-value">Jun 14,2025 - 10:21 AM</span></p>
      <p><span class="stre-label"><i class="info-view"></i>View :</span><span class="stre-value">1.2B</span></p>
      <p><em id="rate_row_cmd">MangaNato.com rate : 4.71 / 5 - 98765 votes</em></p>
    </div>
  </div>
</div>
<div class="panel-story-info-description" id="panel-story-info-description">
  <h3>Description :</h3>
  Gol D. Roger was known as the Pirate King.

  Luffy sets off to find the One Piece.
</div>
<div class="panel-story-chapter-list">
  <ul class="row-content-chapter">
    <li class="a-h"><a class="chapter-name text-nowrap" href="https://chapmanganato.to/manga-aa951409/chapter-1087">Chapter 1087: The Battle</a><span class="chapter-view text-nowrap">120,000</span><span class="chapter-time text-nowrap" title="Jun 14,2025 10:21">3 hours ago</span></li>
    <li class="a-h"><a class="chapter-name text-nowrap" href="https://chapmanganato.to/manga-aa951409/chapter-1086.5">Chapter 1086.5</a><span class="chapter-view text-nowrap">98,000</span><span class="chapter-time text-nowrap">2 days ago</span></li>
    <li class="a-h"><a class="chapter-name text-nowrap" href="https://chapmanganato.to/manga-aa951409/chapter-1086">Chapter 1086</a><span class="chapter-view text-nowrap">98,000</span><span class="chapter-time text-nowrap"></span></li>
    <li class="a-h"><span class="chapter-name">링크 없는 자리표시 행</span></li>
  </ul>
</div>
</body></html>`

const chapterPageHTML = `<!DOCTYPE html>
<html><body>
<div class="panel-breadcrumb">
  <a href="https://manganato.com" title="Read Manga Online">Read Manga Online</a> <span>»</span>
  <a href="https://chapmanganato.to/manga-aa951409" title="One Piece">One Piece</a> <span>»</span>
  <a href="https://chapmanganato.to/manga-aa951409/chapter-1087" title="Chapter 1087">Chapter 1087</a>
</div>
<div class="panel-chapter-info-top"><h1>ONE PIECE CHAPTER 1087: THE BATTLE</h1></div>
<div class="panel-navigation">
  <a class="navi-change-chapter-btn-prev a-h" href="https://chapmanganato.to/manga-aa951409/chapter-1086.5">PREV CHAPTER</a>
  <a class="navi-change-chapter-btn-next a-h" href="/manga-aa951409/chapter-1088">NEXT CHAPTER</a>
</div>
<div class="container-chapter-reader">
  <img src="https://v1.mkklcdnv6.com/img/1.jpg" alt="page 1">
  <img src="https://v1.mkklcdnv6.com/img/2.jpg" alt="page 2">
  <img data-src="https://v1.mkklcdnv6.com/img/3.jpg" src="https://v1.mkklcdnv6.com/img/3.jpg" alt="page 3">
</div>
</body></html>`

const searchPageHTML = `<!DOCTYPE html>
<html><body>
<div class="panel-search-story">
  <div class="search-story-item">
    <a class="item-img" href="https://chapmanganato.to/manga-aa951409" title="One Piece"><img class="img-loading" src="https://avt.mkklcdnv6temp.com/1.jpg"></a>
    <div class="item-right">
      <h3><a class="a-h text-nowrap item-title" href="https://chapmanganato.to/manga-aa951409">One Piece</a></h3>
      <a class="item-chapter a-h text-nowrap" href="https://chapmanganato.to/manga-aa951409/chapter-1087">Chapter 1087</a>
      <span class="text-nowrap item-author">Oda Eiichiro</span>
      <span class="text-nowrap item-time">Updated : Jun 14,2025 - 10:21</span>
      <span class="text-nowrap item-time">View : 1.2B</span>
      <em class="item-rate">4.7</em>
    </div>
  </div>
  <div class="search-story-item">
    <a class="item-img" href="https://chapmanganato.to/manga-bb000001"><img src="https://avt.mkklcdnv6temp.com/2.jpg"></a>
    <div class="item-right"><h3><a class="item-title" href="https://chapmanganato.to/manga-bb000001">One Punch-Man</a></h3></div>
  </div>
  <div class="search-story-item">
    <div class="item-right"><h3>링크 없는 항목</h3></div>
  </div>
  <div class="search-story-item">
    <a class="item-img" href="https://chapmanganato.to/manga-cc000002"><img src="https://avt.mkklcdnv6temp.com/3.jpg"></a>
    <div class="item-right"><h3><a class="item-title" href="https://chapmanganato.to/manga-cc000002">Onepunch</a></h3></div>
  </div>
  <div class="search-story-item">
    <a class="item-img" href="https://chapmanganato.to/manga-dd000003"><img src="https://avt.mkklcdnv6temp.com/4.jpg"></a>
    <div class="item-right"><h3><a class="item-title" href="https://chapmanganato.to/manga-dd000003">Solo Leveling</a></h3></div>
  </div>
</div>
<div class="group-page">
  <a class="page-blue" href="#">FIRST(1)</a><a class="page-select">1</a><a href="#">2</a>
  <a class="page-blue page-last" href="https://manganato.com/advanced_search?page=17">LAST(17)</a>
</div>
</body></html>`

const genrePageHTML = `<!DOCTYPE html>
<html><body>
<div class="panel-content-genres">
  <div class="content-genres-item">
    <a class="genres-item-img" href="https://chapmanganato.to/manga-ee000004" title="Tower of God"><img src="/thumb/4.jpg"></a>
    <div class="genres-item-info">
      <h3><a class="genres-item-name" href="https://chapmanganato.to/manga-ee000004">Tower of God</a></h3>
      <a class="genres-item-chap" href="#">Chapter 600</a>
      <p class="genres-item-view-time">
        <span class="genres-item-view">52.3M</span>
        <span class="genres-item-time">Jun 10,25</span>
        <span class="genres-item-author">SIU</span>
      </p>
      <div class="genres-item-description">Reach the top,
      and everything will be yours.</div>
    </div>
    <em class="genres-item-rate">4.8</em>
  </div>
</div>
</body></html>`

const bookmarkResponseJSON = `{
  "result": "ok",
  "total_page": 2,
  "data": [
    {
      "bmid": "501", "storyid": "41890", "storyname": "One Piece",
      "image": "https://avt.mkklcdnv6temp.com/1.jpg",
      "chapter_numbernow": "9", "link_chapter_now": "https://chapmanganato.to/manga-aa951409/chapter-9",
      "chapter_numberlast": "9.0", "link_chapter_last": "https://chapmanganato.to/manga-aa951409/chapter-9",
      "chapterlastdateupdate": "Jun 14,2025 10:21",
      "link_story": "https://chapmanganato.to/manga-aa951409"
    },
    {
      "bmid": "502", "storyid": "50001", "storyname": "Solo Leveling",
      "image": "https://avt.mkklcdnv6temp.com/2.jpg",
      "chapter_numbernow": "9", "link_chapter_now": "https://chapmanganato.to/manga-dd000003/chapter-9",
      "chapter_numberlast": "10", "link_chapter_last": "https://chapmanganato.to/manga-dd000003/chapter-10",
      "chapterlastdateupdate": "3 hours ago",
      "link_story": "https://chapmanganato.to/manga-dd000003"
    },
    {
      "bmid": "", "storyid": "60001", "storyname": "행 ID 없음"
    }
  ],
  "html": "<div class=\"user-bookmark-item bm-it-501\"><a class=\"btn-bookmark-delete\" data-token=\"tok-501\">x</a></div><div class=\"user-bookmark-item\" data-id=\"999\"><a class=\"btn-bookmark-delete\" data-token=\"tok-999\">x</a></div>"
}`
