// Package cache 조립된 엔티티를 엔티티 종류별 TTL로 보관하는 메모리 캐시를 제공합니다.
//
// 저장된 값은 변경되지 않으며, 같은 키에 대한 재적재는 값을 통째로 교체합니다(last-writer-wins).
// 에러는 캐시하지 않습니다.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/darkkaiser/manga-gateway/pkg/concurrency"
)

const component = "gateway.cache"

type entry struct {
	value     any
	expiresAt time.Time
}

func (e entry) expired(now time.Time) bool {
	return !now.Before(e.expiresAt)
}

// Store 동시 읽기/쓰기에 안전한 TTL 캐시
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry

	// loads 같은 키에 대한 동시 적재를 하나로 합칩니다.
	loads *concurrency.KeyedMutex

	now func() time.Time
}

// StoreOption Store 생성 옵션
type StoreOption func(*Store)

// WithClock 만료 판정에 사용할 시계를 교체합니다.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore 비어 있는 캐시를 생성합니다.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		entries: make(map[string]entry),
		loads:   concurrency.NewKeyedMutex(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get 만료되지 않은 값과 남은 TTL을 반환합니다.
func (s *Store) Get(key string) (any, time.Duration, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		return nil, 0, false
	}

	now := s.now()
	if e.expired(now) {
		return nil, 0, false
	}

	return e.value, e.expiresAt.Sub(now), true
}

// Set ttl 동안 값을 보관합니다. ttl이 0 이하이면 저장하지 않습니다.
func (s *Store) Set(key string, value any, ttl time.Duration) {
	if ttl <= 0 {
		return
	}

	s.mu.Lock()
	s.entries[key] = entry{value: value, expiresAt: s.now().Add(ttl)}
	s.mu.Unlock()
}

// Delete 키를 제거합니다.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

// Len 만료 여부와 관계없이 보관 중인 항목 수
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}

// Purge 만료된 항목을 제거하고 제거한 개수를 반환합니다.
func (s *Store) Purge() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for k, e := range s.entries {
		if e.expired(now) {
			delete(s.entries, k)
			removed++
		}
	}
	return removed
}

// Loaded GetOrLoad 결과
type Loaded[T any] struct {
	Value T

	// Hit 캐시에서 꺼낸 값인지 여부. false이면 이번 호출에서 업스트림을 통해 적재한 값입니다.
	Hit bool

	// TTL 값이 캐시에 남아 있을 시간 (응답의 Cache-Control max-age로 사용)
	TTL time.Duration
}

// GetOrLoad 캐시에 값이 있으면 반환하고, 없으면 load를 호출하여 적재합니다.
//
// 같은 키를 동시에 요청한 호출자들은 한 번의 load 결과를 공유합니다.
// load가 에러를 반환하면 아무것도 저장하지 않으므로 일시적인 장애가 TTL 동안 고정되지 않습니다.
func GetOrLoad[T any](ctx context.Context, s *Store, key string, ttl time.Duration, load func(context.Context) (T, error)) (Loaded[T], error) {
	if v, remaining, ok := lookup[T](s, key); ok {
		return Loaded[T]{Value: v, Hit: true, TTL: remaining}, nil
	}

	s.loads.Lock(key)
	defer s.loads.Unlock(key)

	// 대기하는 동안 다른 호출자가 적재를 마쳤을 수 있습니다.
	if v, remaining, ok := lookup[T](s, key); ok {
		return Loaded[T]{Value: v, Hit: true, TTL: remaining}, nil
	}

	v, err := load(ctx)
	if err != nil {
		var zero T
		return Loaded[T]{Value: zero}, err
	}

	s.Set(key, v, ttl)

	return Loaded[T]{Value: v, TTL: ttl}, nil
}

func lookup[T any](s *Store, key string) (T, time.Duration, bool) {
	var zero T

	raw, remaining, ok := s.Get(key)
	if !ok {
		return zero, 0, false
	}

	v, ok := raw.(T)
	if !ok {
		return zero, 0, false
	}
	return v, remaining, true
}
