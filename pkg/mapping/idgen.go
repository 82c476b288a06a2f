package mapping

import (
	"crypto/rand"
	"encoding/binary"
	"sync"
	"time"
)

// epoch is 2020-01-01T00:00:00Z. Milliseconds since this date fit in
// 41 bits for well over 60 years.
const epoch = 1577836800000

// IDGenerator produces new 64-bit numeric identifiers. An identifier
// combines 41 bits of milliseconds since epoch with 22 random bits,
// keeping the top bit clear so values stay positive in a BIGINT
// column. Uniqueness is best-effort: collisions require two ids in the
// same millisecond with the same 22 random bits.
type IDGenerator struct {
	mu   sync.Mutex
	last uint64
}

// NewIDGenerator creates an IDGenerator.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// Next returns a fresh identifier. Consecutive calls never return the
// same value.
func (g *IDGenerator) Next() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	for {
		ms := uint64(time.Now().UnixMilli() - epoch)
		var buf [4]byte
		_, _ = rand.Read(buf[:])
		entropy := uint64(binary.BigEndian.Uint32(buf[:])) & (1<<22 - 1)

		id := ms<<22 | entropy
		if id != g.last {
			g.last = id
			return id
		}
	}
}
