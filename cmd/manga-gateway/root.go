package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/darkkaiser/manga-gateway/internal/config"
	"github.com/darkkaiser/manga-gateway/internal/gateway"
	"github.com/darkkaiser/manga-gateway/internal/gateway/cache"
	apperrors "github.com/darkkaiser/manga-gateway/internal/pkg/errors"
	"github.com/darkkaiser/manga-gateway/internal/pkg/version"
	"github.com/darkkaiser/manga-gateway/internal/service"
	"github.com/darkkaiser/manga-gateway/internal/service/api"
	applog "github.com/darkkaiser/manga-gateway/pkg/log"
	"github.com/spf13/cobra"
)

const component = "main"

const banner = `
  __  __                              ____       _
 |  \/  | __ _ _ __   __ _  __ _     / ___| __ _| |_ _____      ____ _ _   _
 | |\/| |/ _' | '_ \ / _' |/ _' |   | |  _ / _' | __/ _ \ \ /\ / / _' | | | |
 | |  | | (_| | | | | (_| | (_| |   | |_| | (_| | ||  __/\ V  V / (_| | |_| |
 |_|  |_|\__,_|_| |_|\__, |\__,_|    \____|\__,_|\__\___| \_/\_/ \__,_|\__, |
                     |___/                                             |___/ %s
--------------------------------------------------------------------------------
`

func newRootCommand() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:           config.AppName,
		Short:         "만화 사이트 스크래핑 결과를 정형화된 JSON API로 제공하는 게이트웨이",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			appConfig, err := loadConfig(configFile)
			if err != nil {
				return err
			}
			return run(cmd.Context(), appConfig)
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", fmt.Sprintf("설정 파일 경로 (기본값: ./%s, 없으면 기본 설정 사용)", config.DefaultFilename))
	cmd.AddCommand(newVersionCommand())

	return cmd
}

// loadConfig 경로가 지정되면 해당 파일을 반드시 읽고, 아니면 기본 설정 파일을 선택적으로 읽습니다.
func loadConfig(configFile string) (*config.AppConfig, error) {
	if configFile == "" {
		return config.Load()
	}
	return config.LoadWithFile(configFile)
}

// run 로깅을 초기화하고 서비스를 기동한 뒤 ctx가 취소될 때까지 대기합니다.
func run(ctx context.Context, appConfig *config.AppConfig) error {
	env := "production"
	logOpts := applog.NewProductionOptions(config.AppName)
	if appConfig.Debug {
		env = "development"
		logOpts = applog.NewDevelopmentOptions(config.AppName)
	}

	logCloser, err := applog.Setup(logOpts)
	if err != nil {
		return apperrors.Wrap(err, apperrors.System, "로그 시스템을 초기화할 수 없습니다")
	}
	defer logCloser.Close()

	applog.SetDebugMode(appConfig.Debug)

	buildInfo := version.Get()
	fmt.Printf(banner, buildInfo.Version)

	applog.WithComponentAndFields(component, applog.Fields{
		"version": buildInfo.String(),
		"env":     env,
	}).Info("서버 초기화 시작")

	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent(component).Warn(warning)
	}

	g := gateway.New(appConfig)

	janitor := cache.NewJanitor(g.Store(), appConfig.Cache.JanitorSpec)
	if err := janitor.Start(); err != nil {
		return err
	}
	defer janitor.Stop()

	serviceStopCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	serviceStopWG := &sync.WaitGroup{}

	services := []service.Service{
		api.NewService(appConfig, g, buildInfo),
	}
	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"error": err,
			}).Error("서비스 초기화 실패")

			cancel()
			serviceStopWG.Wait()

			return err
		}
	}

	applog.WithComponent(component).Info("서버 가동 완료")

	<-ctx.Done()

	applog.WithComponent(component).Info("종료 신호를 수신하였습니다")
	cancel()
	serviceStopWG.Wait()

	return nil
}
