package cache

import (
	"time"

	"github.com/darkkaiser/manga-gateway/internal/config"
)

// Kind 캐시 대상 엔티티 종류
type Kind int

const (
	KindManga Kind = iota
	KindChapter
	KindChapterList
	KindSearch
	KindGenre
	KindDimensions

	// KindBookmarks 세션별로 달라지고 자주 바뀌므로 캐시하지 않습니다.
	KindBookmarks
)

// Policy 엔티티 종류별 TTL
type Policy struct {
	ttls map[Kind]time.Duration
}

// NewPolicy 설정 값으로 TTL 정책을 만듭니다.
func NewPolicy(cfg config.CacheConfig) Policy {
	return Policy{ttls: map[Kind]time.Duration{
		KindManga:       cfg.MangaTTL,
		KindChapter:     cfg.ChapterTTL,
		KindChapterList: cfg.ChapterListTTL,
		KindSearch:      cfg.SearchTTL,
		KindGenre:       cfg.GenreTTL,
		KindDimensions:  cfg.ImageDimensionTTL,
		KindBookmarks:   0,
	}}
}

// TTL 종류별 TTL. 0이면 캐시하지 않습니다.
func (p Policy) TTL(kind Kind) time.Duration {
	return p.ttls[kind]
}
