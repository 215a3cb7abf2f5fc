package services

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderCodeGenerator_Format(t *testing.T) {
	gen := NewOrderCodeGenerator()
	pattern := regexp.MustCompile(`^OS-\d{4}-\d{4}$`)
	now := time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 500; i++ {
		code := gen.Generate(now)
		require.True(t, pattern.MatchString(code), "unexpected code %q", code)

		parts := strings.Split(code, "-")
		assert.Equal(t, "2025", parts[1])

		suffix, err := strconv.Atoi(parts[2])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, suffix, 1000)
		assert.LessOrEqual(t, suffix, 9999)
	}
}

func TestOrderCodeGenerator_UsesGivenYear(t *testing.T) {
	gen := &OrderCodeGenerator{intn: func(n int) int { return 0 }}

	code := gen.Generate(time.Date(2031, time.January, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, fmt.Sprintf("OS-%d-%d", 2031, 1000), code)

	code = gen.Generate(time.Date(1999, time.December, 31, 23, 59, 59, 0, time.UTC))
	assert.Equal(t, "OS-1999-1000", code)
}

func TestOrderCodeGenerator_SuffixBounds(t *testing.T) {
	// intn returning its maximum argument minus one must map to 9999.
	gen := &OrderCodeGenerator{intn: func(n int) int { return n - 1 }}
	code := gen.Generate(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "OS-2025-9999", code)
}
