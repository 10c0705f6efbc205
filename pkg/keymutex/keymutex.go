package keymutex

import "sync"

// KeyMutex взаимное исключение по строковому ключу.
// Используется для сериализации проверки доступности и записи бронирования
// по ключу (ресторан, дата, слот) - без этого два конкурентных запроса могут
// оба пройти проверку вместимости и создать овербукинг.
type KeyMutex struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

// New создает новый KeyMutex
func New() *KeyMutex {
	return &KeyMutex{
		locks: make(map[string]*entry),
	}
}

// Lock блокирует ключ. Блокировки разных ключей независимы.
func (m *KeyMutex) Lock(key string) {
	m.mu.Lock()
	e, ok := m.locks[key]
	if !ok {
		e = &entry{}
		m.locks[key] = e
	}
	e.refs++
	m.mu.Unlock()

	e.mu.Lock()
}

// Unlock разблокирует ключ. Запись удаляется, когда ключ больше никто не ждет.
func (m *KeyMutex) Unlock(key string) {
	m.mu.Lock()
	e, ok := m.locks[key]
	if !ok {
		m.mu.Unlock()
		panic("keymutex: unlock of unlocked key " + key)
	}
	e.refs--
	if e.refs == 0 {
		delete(m.locks, key)
	}
	m.mu.Unlock()

	e.mu.Unlock()
}
