package api

import (
	"context"
	"io"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/darkkaiser/manga-gateway/internal/config"
	"github.com/darkkaiser/manga-gateway/internal/gateway"
	"github.com/darkkaiser/manga-gateway/internal/pkg/version"
	"github.com/darkkaiser/manga-gateway/internal/service/api/constants"
	"github.com/darkkaiser/manga-gateway/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, int) {
	t.Helper()

	port, err := testutil.GetFreePort()
	require.NoError(t, err)

	cfg := config.Default()
	cfg.API.ListenPort = port

	return NewService(&cfg, gateway.New(&cfg), version.Info{Version: "v0.0.0-test"}), port
}

func TestNewService_Panics(t *testing.T) {
	t.Parallel()

	cfg := config.Default()

	assert.PanicsWithValue(t, constants.PanicMsgAppConfigRequired, func() {
		NewService(nil, gateway.New(&cfg), version.Info{})
	})
	assert.PanicsWithValue(t, constants.PanicMsgGatewayRequired, func() {
		NewService(&cfg, nil, version.Info{})
	})
}

func TestService_StartAndShutdown(t *testing.T) {
	s, port := newTestService(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	wg := &sync.WaitGroup{}
	wg.Add(1)
	require.NoError(t, s.Start(ctx, wg))

	require.NoError(t, testutil.WaitForHTTP(testutil.LocalURL(port, "/health"), 3*time.Second))

	resp, err := http.Get(testutil.LocalURL(port, "/api/v1/genres/table"))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"name":"Action"`)

	// 이미 실행 중이면 WaitGroup만 정리하고 반환합니다.
	wg.Add(1)
	require.NoError(t, s.Start(ctx, wg))

	cancel()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(constants.ShutdownTimeout + time.Second):
		t.Fatal("서비스가 제한 시간 안에 종료되지 않았습니다")
	}

	s.runningMu.Lock()
	assert.False(t, s.running)
	s.runningMu.Unlock()
}

func TestService_PortInUse(t *testing.T) {
	s, port := newTestService(t)

	// 같은 포트를 먼저 점유하여 서버 기동을 실패시킵니다.
	blocker, _ := newTestService(t)
	blocker.appConfig.API.ListenPort = port

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	wg := &sync.WaitGroup{}
	wg.Add(1)
	require.NoError(t, blocker.Start(ctx, wg))
	require.NoError(t, testutil.WaitForHTTP(testutil.LocalURL(port, "/health"), 3*time.Second))

	wg.Add(1)
	require.NoError(t, s.Start(ctx, wg))

	// 기동에 실패한 서비스는 스스로 정리되어 running이 false가 됩니다.
	assert.Eventually(t, func() bool {
		s.runningMu.Lock()
		defer s.runningMu.Unlock()
		return !s.running
	}, 3*time.Second, 20*time.Millisecond)

	cancel()
	wg.Wait()
}
