package identifier

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewFormat(t *testing.T) {
	id := New()

	parts := strings.SplitN(id, "-", 2)
	assert.Len(t, parts, 2)
	assert.Len(t, parts[1], 9)

	millis, err := strconv.ParseInt(parts[0], 10, 64)
	assert.NoError(t, err)
	assert.InDelta(t, time.Now().UnixMilli(), millis, 5000)
}

func TestNewUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := New()
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
