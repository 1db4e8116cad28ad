package store

import (
	"context"
	"sort"
	"sync"

	"github.com/robert-northmind/worktime/accounting"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

// Memory is an in-memory Store. It is constructed per test or per dev
// server; there is no package-level instance.
type Memory struct {
	mu      sync.RWMutex
	users   map[string]UserDocument
	entries map[string]map[string]accounting.DailyEntry // uid -> date -> entry
}

func NewMemory() *Memory {
	return &Memory{
		users:   make(map[string]UserDocument),
		entries: make(map[string]map[string]accounting.DailyEntry),
	}
}

var _ Store = (*Memory)(nil)

func (m *Memory) GetUser(_ context.Context, uid string) (*UserDocument, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[uid]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (m *Memory) SaveUser(_ context.Context, user UserDocument) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.users[user.UID] = user
	return nil
}

func (m *Memory) GetEntries(_ context.Context, uid string, from, to accounting.CalendarDate) ([]accounting.DailyEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []accounting.DailyEntry
	for _, entry := range m.entries[uid] {
		if entry.Date.AfterOrEqual(from) && entry.Date.BeforeOrEqual(to) {
			result = append(result, entry)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})
	return result, nil
}

func (m *Memory) SaveEntry(_ context.Context, uid string, entry accounting.DailyEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.saveLocked(uid, entry)
	return nil
}

func (m *Memory) BatchSaveEntries(_ context.Context, uid string, entries []accounting.DailyEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, entry := range entries {
		m.saveLocked(uid, entry)
	}
	return nil
}

func (m *Memory) BatchDeleteEntries(_ context.Context, uid string, dates []accounting.CalendarDate) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, date := range dates {
		delete(m.entries[uid], date.String())
	}
	return nil
}

func (m *Memory) DeleteEntry(_ context.Context, uid string, date accounting.CalendarDate) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries[uid], date.String())
	return nil
}

func (m *Memory) saveLocked(uid string, entry accounting.DailyEntry) {
	byDate, ok := m.entries[uid]
	if !ok {
		byDate = make(map[string]accounting.DailyEntry)
		m.entries[uid] = byDate
	}
	byDate[entry.Date.String()] = entry
}
