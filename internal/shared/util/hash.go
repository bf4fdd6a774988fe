package util

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
)

// HashAnswers returns a stable fingerprint for an answer set. Entries are
// folded in ascending question-ID order so the hash is a function of the
// mapping, not of map iteration order.
func HashAnswers(answers map[int]string) string {
	ids := make([]int, 0, len(answers))
	for id := range answers {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var b strings.Builder
	for _, id := range ids {
		fmt.Fprintf(&b, "%d=%s\n", id, answers[id])
	}
	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
