package system

// VersionResponse 빌드 메타데이터 응답
type VersionResponse struct {
	Version     string `json:"version" example:"v1.2.0"`
	Commit      string `json:"commit,omitempty" example:"abc1234"`
	BuildDate   string `json:"build_date" example:"2026-10-01T14:00:00Z"`
	BuildNumber string `json:"build_number" example:"100"`
	GoVersion   string `json:"go_version" example:"go1.24.0"`
	OS          string `json:"os" example:"linux"`
	Arch        string `json:"arch" example:"amd64"`
}
