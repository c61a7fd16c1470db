package errors

import "strconv"

// ErrorType 에러의 종류를 나타내는 타입입니다.
//
// 게이트웨이가 외부에 노출하는 오류 분류(HTTP 상태 코드)는 이 값을 기준으로 결정됩니다.
type ErrorType int

const (
	// Unknown 분류되지 않은 에러
	Unknown ErrorType = iota

	// Internal 내부 로직 오류 (버그 등)
	Internal

	// System 시스템 또는 인프라 오류 (디스크, 설정 파일 등)
	System

	// Unauthorized 업스트림이 세션 인증을 요구함 (세션 만료, 로그인 필요)
	Unauthorized

	// Forbidden 업스트림이 접근을 거부함
	Forbidden

	// InvalidInput 호출자가 전달한 파라미터가 유효하지 않음 (업스트림 호출 전 차단)
	InvalidInput

	// NotFound 요청한 엔티티가 존재하지 않음
	NotFound

	// Incomplete 필수 필드를 추출하지 못해 엔티티 조립에 실패함 (내부 전용, 외부에는 NotFound로 노출)
	Incomplete

	// ExecutionFailed 업스트림이 분류되지 않은 비정상 상태 코드를 반환함
	ExecutionFailed

	// ParsingFailed 업스트림 응답을 해석할 수 없음
	ParsingFailed

	// Unavailable 업스트림에 연결할 수 없음 (네트워크 오류, 타임아웃, 5xx)
	Unavailable

	// RateLimited 업스트림이 요청 빈도 제한(429)을 응답함
	RateLimited

	// EmptyResponse 업스트림이 2xx 상태로 빈 본문을 응답함
	EmptyResponse
)

var errorTypeNames = [...]string{
	Unknown:         "Unknown",
	Internal:        "Internal",
	System:          "System",
	Unauthorized:    "Unauthorized",
	Forbidden:       "Forbidden",
	InvalidInput:    "InvalidInput",
	NotFound:        "NotFound",
	Incomplete:      "Incomplete",
	ExecutionFailed: "ExecutionFailed",
	ParsingFailed:   "ParsingFailed",
	Unavailable:     "Unavailable",
	RateLimited:     "RateLimited",
	EmptyResponse:   "EmptyResponse",
}

// String ErrorType의 이름을 반환합니다.
func (t ErrorType) String() string {
	if t < 0 || int(t) >= len(errorTypeNames) {
		return "ErrorType(" + strconv.Itoa(int(t)) + ")"
	}
	return errorTypeNames[t]
}

// Retryable 일시적인 장애로 간주되어 한 번 더 시도해 볼 가치가 있는 에러 타입인지 여부를 반환합니다.
// 4xx 계열(인증, 권한, 빈도 제한 포함)은 재시도하지 않습니다.
func (t ErrorType) Retryable() bool {
	return t == Unavailable
}
