package constants

// 클라이언트에게 반환되는 에러 메시지
const (
	ErrMsgInternalServer    = "내부 서버 오류가 발생하였습니다"
	ErrMsgNotFound          = "요청한 리소스를 찾을 수 없습니다"
	ErrMsgRateLimitExceeded = "요청이 너무 많습니다. 잠시 후 다시 시도해주세요"
	ErrMsgInvalidQuery      = "요청 파라미터 형식이 올바르지 않습니다"
	ErrMsgPageSizeExceeded  = "pageSize는 최대 %d까지 지정할 수 있습니다"
)

// ErrorResultValue 실패 응답 본문의 result 필드 값
const ErrorResultValue = "error"
