package invoice

import (
	"fmt"
	"sync/atomic"
	"time"
)

// NumberGenerator produces candidate invoice numbers of the form
// <prefix>-<4 digit year>-<numeric suffix>, e.g. INV-2025-1700000000123001.
// The suffix combines the issue time in milliseconds with a process-local
// sequence so that invoices assembled within the same millisecond still get
// distinct candidates. Global uniqueness is enforced by the assembler
// against storage, never by this generator alone: an in-process counter
// cannot survive restarts or multiple importer instances.
type NumberGenerator struct {
	prefix string
	seq    atomic.Uint64
}

func NewNumberGenerator(prefix string) *NumberGenerator {
	return &NumberGenerator{prefix: prefix}
}

// Next returns the next candidate number for an invoice issued at the given
// time. The result contains only digits, letters and hyphens so it embeds
// safely in URLs and filenames.
func (g *NumberGenerator) Next(issuedAt time.Time) string {
	issuedAt = issuedAt.UTC()
	seq := g.seq.Add(1) % 1000
	return fmt.Sprintf("%s-%04d-%d%03d", g.prefix, issuedAt.Year(), issuedAt.UnixMilli(), seq)
}
