package game

import (
	"hash/fnv"
	"math/rand/v2"
	"strconv"
)

// seededRNG builds the session's PCG source. The two state words are fnv
// hashes of the seed under distinct salts, so nearby seeds still produce
// unrelated runs.
func seededRNG(seed int64) *rand.Rand {
	// Non-cryptographic PRNG is fine here, the rolls only drive the story.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "week"), seedWord(seed, "roll")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(strconv.FormatInt(seed, 10)))
	_, _ = h.Write([]byte(":" + salt))
	return h.Sum64()
}
