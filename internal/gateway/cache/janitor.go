package cache

import (
	"sync"

	apperrors "github.com/darkkaiser/manga-gateway/internal/pkg/errors"
	"github.com/darkkaiser/manga-gateway/pkg/cronx"
	applog "github.com/darkkaiser/manga-gateway/pkg/log"
	"github.com/robfig/cron/v3"
)

// Janitor cron 스케줄에 따라 만료된 캐시 항목을 정리합니다.
// 만료 항목은 Get에서 이미 무시되므로, 정리는 메모리 회수 목적입니다.
type Janitor struct {
	store *Store
	spec  string

	cron *cron.Cron

	running   bool
	runningMu sync.Mutex
}

// NewJanitor spec은 cronx.StandardParser 형식입니다. (예: "@every 1m")
func NewJanitor(store *Store, spec string) *Janitor {
	if store == nil {
		panic("Store는 필수입니다")
	}

	return &Janitor{store: store, spec: spec}
}

// Start 정리 작업을 등록하고 스케줄러를 시작합니다. 이미 실행 중이면 아무것도 하지 않습니다.
func (j *Janitor) Start() error {
	j.runningMu.Lock()
	defer j.runningMu.Unlock()

	if j.running {
		return nil
	}

	c := cron.New(
		cron.WithParser(cronx.StandardParser()),
		cron.WithChain(
			cron.Recover(cron.VerbosePrintfLogger(applog.StandardLogger())),
			cron.SkipIfStillRunning(cron.DiscardLogger),
		),
	)

	if _, err := c.AddFunc(j.spec, j.sweep); err != nil {
		return apperrors.Wrapf(err, apperrors.InvalidInput, "캐시 정리 스케줄을 등록할 수 없습니다(spec: %s)", j.spec)
	}

	c.Start()
	j.cron = c
	j.running = true

	applog.WithComponentAndFields(component, applog.Fields{
		"spec": j.spec,
	}).Info("캐시 정리 스케줄러가 시작되었습니다")

	return nil
}

// Stop 스케줄러를 멈추고 실행 중인 정리 작업이 끝날 때까지 기다립니다.
func (j *Janitor) Stop() {
	j.runningMu.Lock()
	defer j.runningMu.Unlock()

	if !j.running {
		return
	}

	<-j.cron.Stop().Done()

	j.cron = nil
	j.running = false

	applog.WithComponent(component).Info("캐시 정리 스케줄러가 중지되었습니다")
}

func (j *Janitor) sweep() {
	if removed := j.store.Purge(); removed > 0 {
		applog.WithComponentAndFields(component, applog.Fields{
			"removed":   removed,
			"remaining": j.store.Len(),
		}).Debug("만료된 캐시 항목을 정리했습니다")
	}
}
