package system

import (
	"net/http"
	"time"

	"github.com/darkkaiser/manga-gateway/internal/pkg/version"
	"github.com/darkkaiser/manga-gateway/internal/service/api/constants"
	"github.com/darkkaiser/manga-gateway/internal/service/api/model/system"
	applog "github.com/darkkaiser/manga-gateway/pkg/log"
	"github.com/labstack/echo/v4"
)

// CacheStats 헬스체크에 캐시 상태를 보고하는 구성 요소
type CacheStats interface {
	Len() int
}

// Handler 헬스체크, 버전 정보 등 시스템 엔드포인트를 처리합니다.
type Handler struct {
	cache CacheStats

	buildInfo version.Info

	serverStartTime time.Time
}

// NewHandler cache가 nil이면 캐시 의존성을 unhealthy로 보고합니다.
func NewHandler(cache CacheStats, buildInfo version.Info) *Handler {
	return &Handler{
		cache: cache,

		buildInfo: buildInfo,

		serverStartTime: time.Now(),
	}
}

// HealthCheckHandler godoc
// @Summary 서버 상태 확인
// @Description 서버와 응답 캐시의 상태를 반환합니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.HealthResponse
// @Router /health [get]
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/health",
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgHealthCheck)

	deps := map[string]system.DependencyStatus{
		constants.DependencyCache: h.cacheStatus(),
	}

	status := constants.HealthStatusHealthy
	for _, dep := range deps {
		if dep.Status != constants.HealthStatusHealthy {
			status = constants.HealthStatusUnhealthy
			break
		}
	}

	return c.JSON(http.StatusOK, system.HealthResponse{
		Status:       status,
		Uptime:       int64(time.Since(h.serverStartTime).Seconds()),
		Dependencies: deps,
	})
}

func (h *Handler) cacheStatus() system.DependencyStatus {
	if h.cache == nil {
		return system.DependencyStatus{
			Status:  constants.HealthStatusUnhealthy,
			Message: constants.MsgDepStatusNotInitialized,
		}
	}

	entries := h.cache.Len()
	return system.DependencyStatus{
		Status:  constants.HealthStatusHealthy,
		Message: constants.MsgDepStatusHealthy,
		Entries: &entries,
	}
}

// VersionHandler godoc
// @Summary 버전 정보 조회
// @Description 서버의 빌드 메타데이터를 반환합니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.VersionResponse
// @Router /version [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/version",
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgVersionInfo)

	return c.JSON(http.StatusOK, system.VersionResponse{
		Version:     h.buildInfo.Version,
		Commit:      h.buildInfo.Commit,
		BuildDate:   h.buildInfo.BuildDate,
		BuildNumber: h.buildInfo.BuildNumber,
		GoVersion:   h.buildInfo.GoVersion,
		OS:          h.buildInfo.OS,
		Arch:        h.buildInfo.Arch,
	})
}
