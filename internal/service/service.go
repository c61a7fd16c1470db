package service

import (
	"context"
	"sync"
)

// Service main에서 일괄 기동/종료되는 장기 실행 컴포넌트입니다.
// Start는 즉시 반환해야 하며, serviceStopCtx가 취소되면 정리 후 serviceStopWG.Done()을 호출합니다.
type Service interface {
	Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error
}
