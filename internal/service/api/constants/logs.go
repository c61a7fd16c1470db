package constants

// 서비스 생명주기 로그 메시지
const (
	LogMsgServiceStarting                = "API 서비스 시작중..."
	LogMsgServiceStarted                 = "API 서비스 시작됨"
	LogMsgServiceAlreadyStarted          = "API 서비스가 이미 시작됨"
	LogMsgServiceStopping                = "API 서비스 중지중..."
	LogMsgServiceStopped                 = "API 서비스 중지됨"
	LogMsgServiceUnexpectedExit          = "HTTP 서버가 예기치 않게 종료됨"
	LogMsgServiceHTTPServerStarting      = "HTTP 서버 시작"
	LogMsgServiceHTTPServerStopped       = "HTTP 서버 중지됨"
	LogMsgServiceHTTPServerFatalError    = "HTTP 서버 구동 중 치명적인 오류가 발생하였습니다"
	LogMsgServiceHTTPServerShutdownError = "HTTP 서버 종료 중 오류가 발생하였습니다"
)

// 요청 처리 로그 메시지
const (
	LogMsgHTTPRequest        = "HTTP 요청"
	LogMsgHTTP4xxClientError = "HTTP 4xx: 클라이언트 요청 오류"
	LogMsgHTTP5xxServerError = "HTTP 5xx: 서버 내부 오류"
	LogMsgPanicRecovered     = "PANIC RECOVERED"
	LogMsgRateLimitExceeded  = "요청 차단: 속도 제한(Rate Limit)을 초과하였습니다"
	LogMsgHealthCheck        = "헬스체크 조회"
	LogMsgVersionInfo        = "버전 정보 조회"
	LogMsgGenreTable         = "장르 테이블 조회"
)
