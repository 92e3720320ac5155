package mgbloom

import (
	"math/bits"
)

// BlockConfig describes a direct-mapped bit vector grain. Size is the
// number of bits and must be a power of two; the grain is indexed by the
// low bits of addr >> OffsetBits.
type BlockConfig struct {
	Size       uint64
	OffsetBits uint
}

func (c BlockConfig) NewGrain() (Grain, error) {
	return NewBlockGrain(c)
}

// BlockGrain has no hashing: two addresses alias exactly when their
// masked indexes collide.
type BlockGrain struct {
	config BlockConfig
	mask   uint64
	bits   bitset
}

func NewBlockGrain(c BlockConfig) (*BlockGrain, error) {
	if checkSize(c.Size) != nil || bits.OnesCount64(c.Size) != 1 {
		return nil, ErrBadSize
	}
	if err := checkOffset(c.OffsetBits); err != nil {
		return nil, err
	}
	return &BlockGrain{
		config: c,
		mask:   c.Size - 1,
		bits:   newBitset(c.Size),
	}, nil
}

func (g *BlockGrain) index(addr uint64) uint64 {
	return (addr >> g.config.OffsetBits) & g.mask
}

func (g *BlockGrain) Clear() {
	g.bits.reset()
}

func (g *BlockGrain) Set(addr uint64) {
	g.bits.set(g.index(addr))
}

func (g *BlockGrain) Unset(addr uint64) {
	g.bits.unset(g.index(addr))
}

func (g *BlockGrain) IsSet(addr uint64) bool {
	return g.bits.test(g.index(addr))
}

func (g *BlockGrain) Count(addr uint64) int {
	if g.IsSet(addr) {
		return 1
	}
	return 0
}

// TotalCount is the number of bits set.
func (g *BlockGrain) TotalCount() int {
	return g.bits.count()
}

func (g *BlockGrain) Merge(other Grain) error {
	o, ok := other.(*BlockGrain)
	if !ok {
		return incompatible("block grain merged with %T", other)
	}
	if o.config != g.config {
		return incompatible("block grain %+v merged with %+v", g.config, o.config)
	}
	g.bits.or(o.bits)
	return nil
}
