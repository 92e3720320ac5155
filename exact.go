package mgbloom

import (
	"github.com/tidwall/btree"
)

// ExactConfig describes a grain that stores every masked address, so it
// never reports a false positive.
type ExactConfig struct {
	OffsetBits uint
}

func (c ExactConfig) NewGrain() (Grain, error) {
	return NewExactGrain(c)
}

type exactEntry struct {
	key   uint64
	count int
}

func exactLess(a, b exactEntry) bool {
	return a.key < b.key
}

type ExactGrain struct {
	config  ExactConfig
	entries *btree.BTreeG[exactEntry]
}

func NewExactGrain(c ExactConfig) (*ExactGrain, error) {
	if err := checkOffset(c.OffsetBits); err != nil {
		return nil, err
	}
	return &ExactGrain{
		config:  c,
		entries: btree.NewBTreeG(exactLess),
	}, nil
}

func (g *ExactGrain) key(addr uint64) exactEntry {
	return exactEntry{key: addr >> g.config.OffsetBits}
}

func (g *ExactGrain) Clear() {
	g.entries = btree.NewBTreeG(exactLess)
}

func (g *ExactGrain) Set(addr uint64) {
	e, _ := g.entries.Get(g.key(addr))
	e.key = addr >> g.config.OffsetBits
	e.count++
	g.entries.Set(e)
}

func (g *ExactGrain) Unset(addr uint64) {
	e, ok := g.entries.Get(g.key(addr))
	if !ok {
		return
	}
	e.count--
	if e.count == 0 {
		g.entries.Delete(e)
		return
	}
	g.entries.Set(e)
}

func (g *ExactGrain) IsSet(addr uint64) bool {
	_, ok := g.entries.Get(g.key(addr))
	return ok
}

// Count is the number of outstanding Sets of addr's granule.
func (g *ExactGrain) Count(addr uint64) int {
	e, _ := g.entries.Get(g.key(addr))
	return e.count
}

// TotalCount is the number of distinct granules present.
func (g *ExactGrain) TotalCount() int {
	return g.entries.Len()
}

func (g *ExactGrain) Merge(other Grain) error {
	o, ok := other.(*ExactGrain)
	if !ok {
		return incompatible("exact grain merged with %T", other)
	}
	if o.config != g.config {
		return incompatible("exact grain %+v merged with %+v", g.config, o.config)
	}
	var incoming []exactEntry
	o.entries.Scan(func(e exactEntry) bool {
		incoming = append(incoming, e)
		return true
	})
	for _, e := range incoming {
		mine, _ := g.entries.Get(e)
		e.count += mine.count
		g.entries.Set(e)
	}
	return nil
}
