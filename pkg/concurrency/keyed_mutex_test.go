package concurrency

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyedMutex_LockUnlock(t *testing.T) {
	tests := []struct {
		name string
		keys []string
	}{
		{"단일 키", []string{"manga:1"}},
		{"여러 키", []string{"manga:1", "chapters:1", "listing:genre:2"}},
		{"동일 키 순차 반복", []string{"manga:1", "manga:1"}},
		{"빈 키", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			km := NewKeyedMutex()
			for _, key := range tt.keys {
				km.Lock(key)
				assert.Equal(t, 1, km.Len())
				km.Unlock(key)
			}
			assert.Equal(t, 0, km.Len())
		})
	}
}

func TestKeyedMutex_SameKeyIsSerialized(t *testing.T) {
	km := NewKeyedMutex()

	var (
		wg      sync.WaitGroup
		active  atomic.Int32
		maxSeen atomic.Int32
	)

	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			km.Lock("manga:1")
			defer km.Unlock("manga:1")

			n := active.Add(1)
			for {
				cur := maxSeen.Load()
				if n <= cur || maxSeen.CompareAndSwap(cur, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			active.Add(-1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxSeen.Load())
	assert.Equal(t, 0, km.Len())
}

func TestKeyedMutex_DifferentKeysRunInParallel(t *testing.T) {
	km := NewKeyedMutex()

	km.Lock("a")
	defer km.Unlock("a")

	done := make(chan struct{})
	go func() {
		km.Lock("b")
		km.Unlock("b")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("다른 키의 잠금이 차단되었습니다")
	}
}

func TestKeyedMutex_TryLock(t *testing.T) {
	km := NewKeyedMutex()

	require.True(t, km.TryLock("k"))
	assert.False(t, km.TryLock("k"))

	km.Unlock("k")
	assert.Equal(t, 0, km.Len())

	require.True(t, km.TryLock("k"))
	km.Unlock("k")
}

func TestKeyedMutex_UnlockWithoutLockPanics(t *testing.T) {
	km := NewKeyedMutex()

	assert.Panics(t, func() { km.Unlock("missing") })
}
