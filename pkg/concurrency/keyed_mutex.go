// Package concurrency 캐시 적재 등에서 사용하는 동기화 도구를 제공합니다.
package concurrency

import (
	"sync"
)

// KeyedMutex 키마다 독립적인 잠금을 제공합니다.
// 같은 키를 요청한 고루틴끼리만 직렬화되고, 서로 다른 키는 병렬로 진행됩니다.
// 참조 카운트가 0이 되면 항목을 맵에서 제거하여 키가 무한히 쌓이지 않도록 합니다.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*keyedEntry
	pool  sync.Pool
}

type keyedEntry struct {
	mu   sync.Mutex
	refs int
}

// NewKeyedMutex 새로운 KeyedMutex를 생성합니다.
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{
		locks: make(map[string]*keyedEntry),
		pool: sync.Pool{
			New: func() any { return &keyedEntry{} },
		},
	}
}

// Len 현재 잠겨 있거나 대기 중인 키의 개수를 반환합니다.
func (km *KeyedMutex) Len() int {
	km.mu.Lock()
	defer km.mu.Unlock()

	return len(km.locks)
}

// Lock 키에 대한 잠금을 획득할 때까지 대기합니다.
func (km *KeyedMutex) Lock(key string) {
	km.mu.Lock()
	e := km.acquire(key)
	km.mu.Unlock()

	e.mu.Lock()
}

// TryLock 키가 이미 잠겨 있으면 대기하지 않고 false를 반환합니다.
// true를 반환한 경우에만 Unlock을 호출해야 합니다.
func (km *KeyedMutex) TryLock(key string) bool {
	km.mu.Lock()
	defer km.mu.Unlock()

	if e, ok := km.locks[key]; ok {
		if !e.mu.TryLock() {
			return false
		}
		e.refs++
		return true
	}

	e := km.acquire(key)
	e.mu.Lock()
	return true
}

// Unlock 키에 대한 잠금을 해제합니다.
// 잠기지 않은 키를 해제하면 패닉이 발생합니다.
func (km *KeyedMutex) Unlock(key string) {
	km.mu.Lock()
	defer km.mu.Unlock()

	e, ok := km.locks[key]
	if !ok {
		panic("concurrency: 잠기지 않은 키의 잠금 해제 시도: " + key)
	}

	e.mu.Unlock()

	e.refs--
	if e.refs <= 0 {
		delete(km.locks, key)
		e.refs = 0
		km.pool.Put(e)
	}
}

// acquire km.mu를 잡은 상태에서 호출해야 합니다.
func (km *KeyedMutex) acquire(key string) *keyedEntry {
	e, ok := km.locks[key]
	if !ok {
		e = km.pool.Get().(*keyedEntry)
		km.locks[key] = e
	}
	e.refs++

	return e
}
