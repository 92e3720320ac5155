package mgbloom

// HashConfig describes a classic Bloom bit vector: every address sets
// Hashes bits out of Size.
type HashConfig struct {
	Size       uint64
	Hashes     int
	Seed       uint64
	OffsetBits uint
}

func (c HashConfig) NewGrain() (Grain, error) {
	return NewHashGrain(c)
}

type HashGrain struct {
	config HashConfig
	bits   bitset
}

func NewHashGrain(c HashConfig) (*HashGrain, error) {
	if err := checkSize(c.Size); err != nil {
		return nil, err
	}
	if c.Hashes < 1 || uint64(c.Hashes) > c.Size {
		return nil, ErrBadHashes
	}
	if err := checkOffset(c.OffsetBits); err != nil {
		return nil, err
	}
	return &HashGrain{
		config: c,
		bits:   newBitset(c.Size),
	}, nil
}

func (g *HashGrain) hash(addr uint64) uint64 {
	return mixsplit(addr>>g.config.OffsetBits, g.config.Seed)
}

func (g *HashGrain) Clear() {
	g.bits.reset()
}

func (g *HashGrain) Set(addr uint64) {
	h := g.hash(addr)
	for i := 0; i < g.config.Hashes; i++ {
		g.bits.set(probe(h, uint64(i), g.config.Size))
	}
}

// Unset clears every probe of addr, which also forgets any other address
// sharing one of those bits.
func (g *HashGrain) Unset(addr uint64) {
	h := g.hash(addr)
	for i := 0; i < g.config.Hashes; i++ {
		g.bits.unset(probe(h, uint64(i), g.config.Size))
	}
}

func (g *HashGrain) IsSet(addr uint64) bool {
	return g.Count(addr) == g.config.Hashes
}

// Count is the number of addr's probes that are set.
func (g *HashGrain) Count(addr uint64) int {
	h := g.hash(addr)
	n := 0
	for i := 0; i < g.config.Hashes; i++ {
		if g.bits.test(probe(h, uint64(i), g.config.Size)) {
			n++
		}
	}
	return n
}

func (g *HashGrain) TotalCount() int {
	return g.bits.count()
}

func (g *HashGrain) Merge(other Grain) error {
	o, ok := other.(*HashGrain)
	if !ok {
		return incompatible("hash grain merged with %T", other)
	}
	if o.config != g.config {
		return incompatible("hash grain %+v merged with %+v", g.config, o.config)
	}
	g.bits.or(o.bits)
	return nil
}
