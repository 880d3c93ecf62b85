package notify

import "sync"

type Entry struct {
	Level Level
	Msg   string
}

type Mock struct {
	mu      sync.Mutex
	Entries []Entry
}

func (m *Mock) Notify(level Level, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, Entry{Level: level, Msg: msg})
}

func (m *Mock) All() []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Entry, len(m.Entries))
	copy(out, m.Entries)
	return out
}
