package mgbloom

// https://github.com/aappleby/smhasher/blob/master/src/MurmurHash3.cpp
// MurmurHash3.cpp calls this fmix64()
func murmur64(h uint64) uint64 {
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	h *= 0xc4ceb9fe1a85ec53
	h ^= h >> 33
	return h
}

// returns random number, modifies the seed
func splitmix64(seed *uint64) uint64 {
	*seed = *seed + 0x9E3779B97F4A7C15
	z := *seed
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func mixsplit(key, seed uint64) uint64 {
	return murmur64(key + seed)
}

func rotl64(n uint64, c int) uint64 {
	return (n << uint(c&63)) | (n >> uint((-c)&63))
}

// probe returns the i'th double-hashing index of hash into [0, m).
func probe(hash uint64, i, m uint64) uint64 {
	h2 := rotl64(hash, 32) | 1
	return (hash + i*h2) % m
}
