// Package identifier produces the opaque row IDs used across every table:
// a millisecond timestamp joined to a short random base36 suffix. IDs are
// time-ordered and process-unique; they are not cryptographic, and the
// collision probability is negligible at this scale.
package identifier

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const suffixLen = 9

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// New returns an identifier like "1735689600123-k3j9x0q2m".
func New() string {
	var b strings.Builder
	b.WriteString(strconv.FormatInt(time.Now().UnixMilli(), 10))
	b.WriteByte('-')
	for i := 0; i < suffixLen; i++ {
		b.WriteByte(base36[rand.Intn(len(base36))])
	}
	return b.String()
}
