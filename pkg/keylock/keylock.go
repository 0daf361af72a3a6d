package keylock

import "sync"

// Locker набор мьютексов по строковому ключу.
// Запись о ключе удаляется, когда её никто не держит и не ждёт.
type Locker struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

// New создает пустой Locker
func New() *Locker {
	return &Locker{locks: make(map[string]*entry)}
}

// Lock захватывает мьютекс ключа и возвращает функцию освобождения
func (l *Locker) Lock(key string) (unlock func()) {
	l.mu.Lock()
	e, ok := l.locks[key]
	if !ok {
		e = &entry{}
		l.locks[key] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Unlock()

			l.mu.Lock()
			e.refs--
			if e.refs == 0 {
				delete(l.locks, key)
			}
			l.mu.Unlock()
		})
	}
}

// Len количество ключей, которые сейчас удерживаются или ожидаются
func (l *Locker) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
