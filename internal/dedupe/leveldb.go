package dedupe

import (
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/hmap/store/hybrid"
)

// LevelDBBackend keeps seen keys on disk for inputs too large for memory
type LevelDBBackend struct {
	storage *hybrid.HybridMap
}

func NewLevelDBBackend() (*LevelDBBackend, error) {
	db, err := hybrid.New(hybrid.DefaultDiskOptions)
	if err != nil {
		return nil, err
	}
	return &LevelDBBackend{storage: db}, nil
}

// Upsert stores key and reports whether it was already stored
func (l *LevelDBBackend) Upsert(key string) bool {
	if _, ok := l.storage.Get(key); ok {
		return true
	}
	if err := l.storage.Set(key, nil); err != nil {
		gologger.Error().Msgf("dedupe: leveldb: got %v while writing %v", err, key)
	}
	return false
}

func (l *LevelDBBackend) Cleanup() {
	_ = l.storage.Close()
}
