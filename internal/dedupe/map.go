package dedupe

import "runtime/debug"

type MapBackend struct {
	storage map[string]struct{}
}

func NewMapBackend() *MapBackend {
	return &MapBackend{storage: map[string]struct{}{}}
}

// Upsert stores key and reports whether it was already stored
func (m *MapBackend) Upsert(key string) bool {
	if _, ok := m.storage[key]; ok {
		return true
	}
	m.storage[key] = struct{}{}
	return false
}

func (m *MapBackend) Cleanup() {
	m.storage = nil
	// debug.FreeOSMemory forces GC to release allocated memory at once
	debug.FreeOSMemory()
}
