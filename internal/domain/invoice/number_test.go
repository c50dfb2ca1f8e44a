package invoice

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberGeneratorFormat(t *testing.T) {
	g := NewNumberGenerator("INV")
	issuedAt := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

	number := g.Next(issuedAt)
	require.Regexp(t, regexp.MustCompile(`^INV-2025-\d+$`), number)
}

func TestNumberGeneratorDistinctWithinSameInstant(t *testing.T) {
	g := NewNumberGenerator("INV")
	issuedAt := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		number := g.Next(issuedAt)
		assert.False(t, seen[number], "duplicate candidate %s", number)
		seen[number] = true
	}
}

func TestNumberGeneratorYearFollowsIssueDate(t *testing.T) {
	g := NewNumberGenerator("INV")
	for _, year := range []int{2024, 2025, 2026} {
		issuedAt := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
		assert.Contains(t, g.Next(issuedAt), fmt.Sprintf("INV-%d-", year))
	}
}
