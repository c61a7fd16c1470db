package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// 연도 없이 "MM-DD HH:MM" 형식으로 표기된 날짜 (올해로 해석)
	monthDayPattern = regexp.MustCompile(`\b(\d{1,2})-(\d{1,2})\s+(\d{1,2}):(\d{2})\b`)

	relativeUnitPattern = regexp.MustCompile(`(?i)(\d+)\s*(min|mins|minute|minutes|hour|hours|day|days)\b`)

	isoLayouts = []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
		"2006-01-02",
	}

	// 업스트림이 title 속성이나 북마크 응답에 쓰는 절대 날짜 표기
	upstreamLayouts = []string{
		"Jan 02,2006 15:04",
		"Jan 02,06 15:04",
		"Jan 02,2006",
		"Jan 02,06",
		"Jan-02-2006 15:04:05",
		"Jan-02-2006 15:04",
		"Jan 2, 2006 15:04",
		"Jan 2, 2006",
		"January 2, 2006",
	}
)

// DateKind 정규화된 날짜가 어떤 표기에서 왔는지 나타냅니다.
type DateKind int

const (
	DateUnknown DateKind = iota
	DateAbsolute
	DateMonthDay
	DateRelative
)

// NormalizedDate 절대 시각과, 상대 표기였을 경우 그 원문 라벨
type NormalizedDate struct {
	Time  time.Time
	Label string
	Kind  DateKind
}

// NormalizeDate 업스트림 날짜 문자열을 절대 시각으로 변환합니다.
//
//   - ISO 형식: 그대로 통과
//   - "MM-DD HH:MM": fetchedAt의 연도를 붙여 절대 날짜로 변환
//   - "N hours ago", "N days ago", "N mins ago": 라벨을 유지하고 fetchedAt에서 그만큼 뺀 시각을 계산
//   - 업스트림 고유 절대 표기("Mar 02,2024 14:47" 등): fetchedAt의 시간대로 해석
//
// 해석할 수 없으면 ok=false를 반환합니다.
func NormalizeDate(raw string, fetchedAt time.Time) (NormalizedDate, bool) {
	s := strings.Join(strings.Fields(strings.ReplaceAll(raw, "\u00a0", " ")), " ")
	if s == "" {
		return NormalizedDate{}, false
	}

	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			if layout != time.RFC3339 {
				t = time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, fetchedAt.Location())
			}
			return NormalizedDate{Time: t, Kind: DateAbsolute}, true
		}
	}

	if m := monthDayPattern.FindStringSubmatch(s); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		hour, _ := strconv.Atoi(m[3])
		minute, _ := strconv.Atoi(m[4])
		if month >= 1 && month <= 12 && day >= 1 && day <= 31 && hour < 24 && minute < 60 {
			t := time.Date(fetchedAt.Year(), time.Month(month), day, hour, minute, 0, 0, fetchedAt.Location())
			return NormalizedDate{Time: t, Kind: DateMonthDay}, true
		}
	}

	if m := relativeUnitPattern.FindStringSubmatch(s); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			var t time.Time
			switch unit := strings.ToLower(m[2]); {
			case strings.HasPrefix(unit, "min"):
				t = fetchedAt.Add(-time.Duration(n) * time.Minute)
			case strings.HasPrefix(unit, "hour"):
				t = fetchedAt.Add(-time.Duration(n) * time.Hour)
			default:
				t = fetchedAt.AddDate(0, 0, -n)
			}
			return NormalizedDate{Time: t, Label: s, Kind: DateRelative}, true
		}
	}

	for _, layout := range upstreamLayouts {
		if t, err := time.ParseInLocation(layout, s, fetchedAt.Location()); err == nil {
			return NormalizedDate{Time: t, Kind: DateAbsolute}, true
		}
	}

	return NormalizedDate{}, false
}
