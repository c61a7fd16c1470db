package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// AppConfig 애플리케이션의 모든 설정을 포함하는 최상위 구조체
type AppConfig struct {
	Debug      bool             `json:"debug"`
	Upstream   UpstreamConfig   `json:"upstream"`
	Cache      CacheConfig      `json:"cache"`
	Search     SearchConfig     `json:"search"`
	Enrichment EnrichmentConfig `json:"enrichment"`
	Images     ImagesConfig     `json:"images"`
	API        APIConfig        `json:"api"`
}

// UpstreamConfig 스크래핑 대상 사이트의 주소와 아웃바운드 요청 정책
type UpstreamConfig struct {
	BaseURL        string `json:"base_url" validate:"required,http_url"`
	ChapterBaseURL string `json:"chapter_base_url" validate:"required,http_url"`

	// CookieHosts 세션 쿠키를 첨부할 업스트림 관련 호스트 목록
	CookieHosts   []string `json:"cookie_hosts" validate:"min=1,dive,hostname_rfc1123|ip"`
	SessionCookie string   `json:"session_cookie" validate:"required"`
	UserAgent     string   `json:"user_agent" validate:"required"`

	Timeout      time.Duration `json:"timeout" validate:"gt=0"`
	MaxBodyBytes int64         `json:"max_body_bytes" validate:"gt=0"`

	// RateLimit 초당 허용 요청 수 (0이면 제한하지 않음)
	RateLimit float64 `json:"rate_limit" validate:"gte=0"`
	RateBurst int     `json:"rate_burst" validate:"gte=1"`

	BookmarkURL    string `json:"bookmark_url" validate:"required,http_url"`
	BookmarkSource string `json:"bookmark_source" validate:"required"`
}

// CacheConfig 엔티티 종류별 캐시 TTL
type CacheConfig struct {
	MangaTTL          time.Duration `json:"manga_ttl" validate:"gt=0"`
	ChapterTTL        time.Duration `json:"chapter_ttl" validate:"gt=0"`
	ChapterListTTL    time.Duration `json:"chapter_list_ttl" validate:"gt=0"`
	SearchTTL         time.Duration `json:"search_ttl" validate:"gt=0"`
	GenreTTL          time.Duration `json:"genre_ttl" validate:"gt=0"`
	ImageDimensionTTL time.Duration `json:"image_dimension_ttl" validate:"gt=0"`

	// JanitorSpec 만료 항목을 정리하는 주기 (6필드 cron 표현식 또는 @every 디스크립터)
	JanitorSpec string `json:"janitor_spec" validate:"required,cron_spec"`
}

// SearchConfig 퍼지 검색 정책
type SearchConfig struct {
	// Threshold 정규화 편집 거리의 허용 상한 (0은 완전 일치)
	Threshold float64 `json:"threshold" validate:"gt=0,lte=1"`
}

// EnrichmentConfig 표지 이미지/대체 제목을 보강하는 보조 조회 서비스 설정
type EnrichmentConfig struct {
	Enabled       bool          `json:"enabled"`
	BaseURL       string        `json:"base_url" validate:"required_if=Enabled true,omitempty,http_url"`
	Timeout       time.Duration `json:"timeout" validate:"gt=0"`
	MinConfidence float64       `json:"min_confidence" validate:"gte=0,lte=1"`
}

// ImagesConfig 챕터 이미지 크기 조회 및 읽기 모드 판정 정책
type ImagesConfig struct {
	BatchSize            int     `json:"batch_size" validate:"gte=1"`
	MaxConcurrentBatches int     `json:"max_concurrent_batches" validate:"gte=1"`
	ProbeBytes           int64   `json:"probe_bytes" validate:"gte=64"`
	StripMinHeight       int     `json:"strip_min_height" validate:"gte=1"`
	StripRatio           float64 `json:"strip_ratio" validate:"gt=0,lte=1"`
}

// APIConfig 외부에 노출되는 REST API 서버 설정
type APIConfig struct {
	ListenPort     int           `json:"listen_port" validate:"min=1,max=65535"`
	AllowOrigins   []string      `json:"allow_origins" validate:"min=1,dive,cors_origin"`
	SessionHeader  string        `json:"session_header" validate:"required"`
	RequestTimeout time.Duration `json:"request_timeout" validate:"gt=0"`
	MaxPageSize    int           `json:"max_page_size" validate:"gte=1"`

	// RateLimit 클라이언트 IP당 초당 허용 요청 수
	RateLimit float64 `json:"rate_limit" validate:"gt=0"`
	RateBurst int     `json:"rate_burst" validate:"gte=1"`
}

// Default 설정 파일과 환경 변수를 적용하기 전의 기본 설정을 반환합니다.
func Default() AppConfig {
	return newDefaultConfig()
}

func newDefaultConfig() AppConfig {
	return AppConfig{
		Debug: false,
		Upstream: UpstreamConfig{
			BaseURL:        "https://manganato.com",
			ChapterBaseURL: "https://chapmanganato.to",
			CookieHosts:    []string{"manganato.com", "chapmanganato.to", "user.mngusr.com"},
			SessionCookie:  "user_acc",
			UserAgent:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
			Timeout:        15 * time.Second,
			MaxBodyBytes:   8 << 20,
			RateLimit:      5,
			RateBurst:      5,
			BookmarkURL:    "https://user.mngusr.com/bookmark_get_list_full",
			BookmarkSource: "manganato",
		},
		Cache: CacheConfig{
			MangaTTL:          10 * time.Minute,
			ChapterTTL:        15 * time.Minute,
			ChapterListTTL:    15 * time.Minute,
			SearchTTL:         5 * time.Minute,
			GenreTTL:          20 * time.Minute,
			ImageDimensionTTL: 15 * time.Minute,
			JanitorSpec:       "@every 1m",
		},
		Search: SearchConfig{
			Threshold: 0.6,
		},
		Enrichment: EnrichmentConfig{
			Enabled:       false,
			Timeout:       5 * time.Second,
			MinConfidence: 0.8,
		},
		Images: ImagesConfig{
			BatchSize:            10,
			MaxConcurrentBatches: 4,
			ProbeBytes:           32 << 10,
			StripMinHeight:       1500,
			StripRatio:           0.5,
		},
		API: APIConfig{
			ListenPort:     8080,
			AllowOrigins:   []string{"*"},
			SessionHeader:  "X-Session-Token",
			RequestTimeout: 60 * time.Second,
			MaxPageSize:    100,
			RateLimit:      20,
			RateBurst:      40,
		},
	}
}

// validate 설정 로드 직후 각 항목의 정합성을 검증합니다.
func (c *AppConfig) validate(v *validator.Validate) error {
	sections := []struct {
		name  string
		value any
	}{
		{"upstream", &c.Upstream},
		{"cache", &c.Cache},
		{"search", &c.Search},
		{"enrichment", &c.Enrichment},
		{"images", &c.Images},
		{"api", &c.API},
	}
	for _, s := range sections {
		if err := checkStruct(v, s.value, s.name); err != nil {
			return err
		}
	}

	return c.API.validateOrigins()
}

// VerifyRecommendations 강제하지는 않지만 운영상 권장되지 않는 설정에 대한 경고 메시지를 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string

	if c.API.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 이 경우 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.API.ListenPort))
	}
	if c.Upstream.RateLimit == 0 {
		warnings = append(warnings, "업스트림 요청 속도 제한(upstream.rate_limit)이 비활성화되었습니다. 업스트림에서 요청이 차단될 수 있습니다")
	}
	if c.Cache.MangaTTL < time.Minute {
		warnings = append(warnings, fmt.Sprintf("만화 상세 캐시 TTL(cache.manga_ttl)이 매우 짧습니다(%s). 업스트림 부하가 증가할 수 있습니다", c.Cache.MangaTTL))
	}

	return warnings
}
