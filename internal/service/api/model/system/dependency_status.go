package system

// DependencyStatus 외부 의존성(캐시, 업스트림 등)의 상태
type DependencyStatus struct {
	Status  string `json:"status" example:"healthy"`
	Message string `json:"message,omitempty" example:"정상 작동 중"`

	// Entries 캐시에 보관 중인 항목 수 (캐시 의존성에만 기록)
	Entries *int `json:"entries,omitempty" example:"128"`
}
