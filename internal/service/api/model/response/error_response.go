package response

// ErrorResponse 모든 실패 응답의 공통 본문 형식입니다.
type ErrorResponse struct {
	// Result 항상 "error"
	Result string `json:"result" example:"error"`

	// Data 사용자에게 노출 가능한 에러 메시지
	Data string `json:"data" example:"요청한 항목을 찾을 수 없습니다"`
}
