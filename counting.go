package mgbloom

// CountingConfig describes a grain of Size saturating counters.
type CountingConfig struct {
	Size       uint64
	MaxCount   int
	Seed       uint64
	OffsetBits uint
}

func (c CountingConfig) NewGrain() (Grain, error) {
	return NewCountingGrain(c)
}

// CountingGrain supports Unset without forgetting aliased addresses, as
// long as no counter has saturated.
type CountingGrain struct {
	config   CountingConfig
	counters []int
}

func NewCountingGrain(c CountingConfig) (*CountingGrain, error) {
	if err := checkSize(c.Size); err != nil {
		return nil, err
	}
	if c.MaxCount < 1 {
		return nil, ErrBadMaxCount
	}
	if err := checkOffset(c.OffsetBits); err != nil {
		return nil, err
	}
	return &CountingGrain{
		config:   c,
		counters: make([]int, c.Size),
	}, nil
}

func (g *CountingGrain) index(addr uint64) uint64 {
	return mixsplit(addr>>g.config.OffsetBits, g.config.Seed) % g.config.Size
}

func (g *CountingGrain) Clear() {
	clear(g.counters)
}

func (g *CountingGrain) Set(addr uint64) {
	i := g.index(addr)
	if g.counters[i] < g.config.MaxCount {
		g.counters[i]++
	}
}

func (g *CountingGrain) Unset(addr uint64) {
	i := g.index(addr)
	if g.counters[i] > 0 {
		g.counters[i]--
	}
}

func (g *CountingGrain) IsSet(addr uint64) bool {
	return g.counters[g.index(addr)] > 0
}

func (g *CountingGrain) Count(addr uint64) int {
	return g.counters[g.index(addr)]
}

// TotalCount is the sum of all counters.
func (g *CountingGrain) TotalCount() int {
	total := 0
	for _, c := range g.counters {
		total += c
	}
	return total
}

func (g *CountingGrain) Merge(other Grain) error {
	o, ok := other.(*CountingGrain)
	if !ok {
		return incompatible("counting grain merged with %T", other)
	}
	if o.config != g.config {
		return incompatible("counting grain %+v merged with %+v", g.config, o.config)
	}
	for i, c := range o.counters {
		g.counters[i] = min(g.counters[i]+c, g.config.MaxCount)
	}
	return nil
}
