package generate

import "hash/fnv"

// seedModulus bounds seeds to the non-negative int32 range.
const seedModulus = 1 << 31

// Seed derives the generation seed for a plant id. The same id always maps
// to the same seed, across runs and platforms.
func Seed(id string) int64 {
	h := fnv.New32a()
	h.Write([]byte(id))
	return int64(h.Sum32() % seedModulus)
}
