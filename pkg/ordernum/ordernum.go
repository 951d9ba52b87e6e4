package ordernum

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Generator produces globally unique, human-readable order numbers.
// Format: ORD-20251004-143502-9F3A21C4 (UTC timestamp + random suffix).
type Generator struct {
	prefix string
	now    func() time.Time
}

// NewGenerator creates a generator with the given prefix (e.g. "ORD")
func NewGenerator(prefix string) *Generator {
	return &Generator{
		prefix: prefix,
		now:    time.Now,
	}
}

// Generate returns the next order number
func (g *Generator) Generate() string {
	ts := g.now().UTC().Format("20060102-150405")
	suffix := strings.ToUpper(uuid.NewString()[:8])
	return fmt.Sprintf("%s-%s-%s", g.prefix, ts, suffix)
}
