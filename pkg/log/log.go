// Package log logrus 위에 컴포넌트 단위 구조화 로깅과 파일 로테이션을 얹은 얇은 래퍼입니다.
package log

import (
	"github.com/sirupsen/logrus"
)

// ComponentKey 모든 로그에 포함되는 컴포넌트 필드의 키입니다.
const ComponentKey = "component"

// WithComponent component 필드를 포함한 로그 Entry를 반환합니다.
func WithComponent(component string) *Entry {
	return logrus.WithField(ComponentKey, component)
}

// WithComponentAndFields component 필드와 추가 필드를 포함한 로그 Entry를 반환합니다.
func WithComponentAndFields(component string, fields Fields) *Entry {
	merged := make(Fields, len(fields)+1)
	for k, v := range fields {
		merged[k] = v
	}
	merged[ComponentKey] = component

	return logrus.WithFields(merged)
}

// WithFields logrus.WithFields의 별칭입니다.
func WithFields(fields Fields) *Entry {
	return logrus.WithFields(fields)
}

// StandardLogger 전역 logrus Logger를 반환합니다.
func StandardLogger() *Logger {
	return logrus.StandardLogger()
}

// SetDebugMode Debug 모드이면 Trace 레벨, 아니면 Info 레벨로 전역 로그 레벨을 설정합니다.
func SetDebugMode(debug bool) {
	if debug {
		logrus.SetLevel(TraceLevel)
	} else {
		logrus.SetLevel(InfoLevel)
	}
}
