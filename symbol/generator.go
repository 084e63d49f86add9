// Package symbol produces fresh, process-unique identifier strings for
// use as synthetic host-language identifiers (spec.md §4.1).
package symbol

import (
	"crypto/rand"
	"encoding/binary"
	"strconv"
	"sync"
	"time"
)

const defaultPrefix = "_af$"

// Generator is a stateful fresh-symbol source. Two Generators, even in
// separate processes started at nearly the same instant, draw their seed
// from a wall-clock sample xored with a crypto/rand sample (Design Note
// §9: "implementations should draw both from the strongest entropy source
// available at construction time"), so fresh() results do not collide
// across independent engine instances with overwhelming probability.
//
// Generator is safe for concurrent use: the counter is guarded by a
// mutex, following the teacher's habit of serializing shared evaluator
// state (eval/evaluator.go in the teacher's REPL/file-runner split)
// rather than leaving it racy.
type Generator struct {
	mu      sync.Mutex
	prefix  string
	seed    uint64
	counter uint64
}

// New creates a Generator with the default prefix, seeded from the
// current time and the system entropy source.
func New() *Generator {
	return NewWithPrefix(defaultPrefix)
}

// NewWithPrefix creates a Generator whose fresh symbols carry prefix.
func NewWithPrefix(prefix string) *Generator {
	return &Generator{prefix: prefix, seed: freshSeed()}
}

func freshSeed() uint64 {
	var buf [8]byte
	seed := uint64(time.Now().UnixNano())
	if _, err := rand.Read(buf[:]); err == nil {
		seed ^= binary.LittleEndian.Uint64(buf[:])
	}
	return seed
}

// Fresh returns a new unique identifier string of the form
// <prefix><seed><counter>, base36-encoded to keep the text short while
// remaining a valid host-language identifier (letters and digits only).
func (g *Generator) Fresh() string {
	g.mu.Lock()
	g.counter++
	c := g.counter
	g.mu.Unlock()

	return g.prefix + strconv.FormatUint(g.seed, 36) + strconv.FormatUint(c, 36)
}
