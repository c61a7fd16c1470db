// Package cronx 캐시 청소 작업 등에서 사용하는 cron 표현식 파서를 제공합니다.
package cronx

import (
	"strings"

	"github.com/robfig/cron/v3"
)

// StandardParser 초 단위 필드를 포함한 6필드 표현식과 "@every 1m" 같은 디스크립터를 해석하는 파서를 반환합니다.
func StandardParser() cron.Parser {
	return cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
}

// Validate 표현식이 StandardParser로 해석 가능한지 검사합니다.
func Validate(spec string) error {
	_, err := StandardParser().Parse(strings.TrimSpace(spec))
	return err
}
