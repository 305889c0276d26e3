package textdist

import (
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/textdist/internal/dedupe"
)

// MaxInMemoryDedupeSize (default : 100 MB)
var MaxInMemoryDedupeSize = 100 * 1024 * 1024

type DedupeBackend interface {
	// Upsert adds key to backend/database and reports whether it was already present
	Upsert(key string) bool
	// Cleanup cleans any residuals after deduping
	Cleanup()
}

// Dedupe drops pairs that were already seen. Metrics are symmetric so a
// pair and its swapped form count as the same pair.
type Dedupe struct {
	receive <-chan Pair
	backend DedupeBackend
	dropped int
}

// NewDedupe returns a dedupe instance reading from ch.
// Note: byteLen is the expected input size and selects the storage backend
func NewDedupe(ch <-chan Pair, byteLen int) *Dedupe {
	d := &Dedupe{
		receive: ch,
	}
	if byteLen <= MaxInMemoryDedupeSize {
		d.backend = dedupe.NewMapBackend()
		return d
	}
	backend, err := dedupe.NewLevelDBBackend()
	if err != nil {
		gologger.Warning().Msgf("failed to create leveldb dedupe backend, falling back to memory got: %v", err)
		d.backend = dedupe.NewMapBackend()
		return d
	}
	d.backend = backend
	return d
}

// Pairs returns the unique pairs in input order
func (d *Dedupe) Pairs() <-chan Pair {
	send := make(chan Pair, 100)
	go func() {
		defer close(send)
		defer d.backend.Cleanup()
		for pair := range d.receive {
			if d.backend.Upsert(pairKey(pair)) {
				d.dropped++
				continue
			}
			send <- pair
		}
		if d.dropped > 0 {
			gologger.Verbose().Msgf("dedupe: dropped %v duplicate pairs", d.dropped)
		}
	}()
	return send
}

func pairKey(pair Pair) string {
	a, b := pair.Phrase1, pair.Phrase2
	if b < a {
		a, b = b, a
	}
	return a + "\x00" + b
}
