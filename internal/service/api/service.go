// Package api 게이트웨이 기능을 REST API로 노출하는 HTTP 서비스를 제공합니다.
//
// @title Manga Gateway API
// @version 1.0
// @description 스크래핑 기반 만화 메타데이터, 챕터, 검색, 북마크를 정형화된 JSON으로 제공하는 게이트웨이 API입니다.
// @BasePath /
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	_ "github.com/darkkaiser/manga-gateway/docs"
	"github.com/darkkaiser/manga-gateway/internal/config"
	"github.com/darkkaiser/manga-gateway/internal/gateway"
	"github.com/darkkaiser/manga-gateway/internal/pkg/version"
	"github.com/darkkaiser/manga-gateway/internal/service/api/constants"
	"github.com/darkkaiser/manga-gateway/internal/service/api/handler/system"
	v1 "github.com/darkkaiser/manga-gateway/internal/service/api/v1"
	v1handler "github.com/darkkaiser/manga-gateway/internal/service/api/v1/handler"
	applog "github.com/darkkaiser/manga-gateway/pkg/log"
	"github.com/labstack/echo/v4"
)

// Service REST API 서버의 생명주기를 관리합니다.
//
// Start로 HTTP 서버를 백그라운드에서 기동하고, serviceStopCtx가 취소되면
// 진행 중인 요청을 최대 constants.ShutdownTimeout 동안 기다린 뒤 종료합니다.
type Service struct {
	appConfig *config.AppConfig

	gateway *gateway.Gateway

	buildInfo version.Info

	running   bool
	runningMu sync.Mutex
}

func NewService(appConfig *config.AppConfig, g *gateway.Gateway, buildInfo version.Info) *Service {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}
	if g == nil {
		panic(constants.PanicMsgGatewayRequired)
	}

	return &Service{
		appConfig: appConfig,

		gateway: g,

		buildInfo: buildInfo,
	}
}

// Start HTTP 서버를 백그라운드에서 시작합니다. 이미 실행 중이면 serviceStopWG.Done()을 호출하고 반환합니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarting)

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(constants.ComponentService).Warn(constants.LogMsgServiceAlreadyStarted)
		return nil
	}

	s.running = true

	go s.runServiceLoop(serviceStopCtx, serviceStopWG)

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarted)

	return nil
}

func (s *Service) runServiceLoop(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	e := s.setupServer()

	httpServerDone := make(chan struct{})
	go s.startHTTPServer(e, httpServerDone)

	s.waitForShutdown(serviceStopCtx, e, httpServerDone)
}

// setupServer 미들웨어와 라우트가 구성된 Echo 인스턴스를 생성합니다.
func (s *Service) setupServer() *echo.Echo {
	apiConfig := s.appConfig.API

	e := NewHTTPServer(HTTPServerConfig{
		Debug:          s.appConfig.Debug,
		AllowOrigins:   apiConfig.AllowOrigins,
		SessionHeader:  apiConfig.SessionHeader,
		RequestTimeout: apiConfig.RequestTimeout,
		RateLimit:      apiConfig.RateLimit,
		RateBurst:      apiConfig.RateBurst,
	})

	RegisterRoutes(e, system.NewHandler(s.gateway.Store(), s.buildInfo))
	v1.RegisterRoutes(e, v1handler.NewHandler(s.gateway, v1handler.Config{
		SessionCookie: s.appConfig.Upstream.SessionCookie,
		SessionHeader: apiConfig.SessionHeader,
		MaxPageSize:   apiConfig.MaxPageSize,
	}))

	return e
}

func (s *Service) startHTTPServer(e *echo.Echo, done chan struct{}) {
	defer close(done)

	port := s.appConfig.API.ListenPort
	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port": port,
	}).Info(constants.LogMsgServiceHTTPServerStarting)

	s.handleServerError(e.Start(fmt.Sprintf(":%d", port)))
}

func (s *Service) handleServerError(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, http.ErrServerClosed) {
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceHTTPServerStopped)
		return
	}

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port":  s.appConfig.API.ListenPort,
		"error": err,
	}).Error(constants.LogMsgServiceHTTPServerFatalError)
}

func (s *Service) waitForShutdown(serviceStopCtx context.Context, e *echo.Echo, httpServerDone chan struct{}) {
	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopping)

	case <-httpServerDone:
		applog.WithComponent(constants.ComponentService).Error(constants.LogMsgServiceUnexpectedExit)
		s.cleanup()
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": err,
		}).Error(constants.LogMsgServiceHTTPServerShutdownError)
	}

	<-httpServerDone

	s.cleanup()
}

func (s *Service) cleanup() {
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopped)
}
