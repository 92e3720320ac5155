package mgbloom

import (
	"encoding/binary"

	"github.com/axiomhq/hyperloglog"
	"go.uber.org/zap"
)

// MultiGrain is a Bloom filter made of several independently configured
// grains. Mutations go to every grain; IsSet is a vote where at least
// Threshold grains must report the address present.
//
// A MultiGrain does no locking. Callers serialize mutations, and may
// only run queries in parallel if every grain allows it.
type MultiGrain struct {
	grains       []Grain
	setThreshold int
	sketch       *hyperloglog.Sketch
	log          *zap.Logger
}

// New builds one grain per config, in order.
func New(configs []GrainConfig, setThreshold int, opts ...Option) (*MultiGrain, error) {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	if len(configs) == 0 {
		return nil, ErrNoGrains
	}
	if !o.uncheckedThresh && (setThreshold < 1 || setThreshold > len(configs)) {
		return nil, ErrBadThreshold
	}

	grains := make([]Grain, len(configs))
	for i, c := range configs {
		if c == nil {
			return nil, &ConfigError{Index: i, Err: ErrNilConfig}
		}
		g, err := c.NewGrain()
		if err != nil {
			return nil, &ConfigError{Index: i, Err: err}
		}
		grains[i] = g
	}

	f := &MultiGrain{
		grains:       grains,
		setThreshold: setThreshold,
		log:          o.logger,
	}
	if o.distinctEstimate {
		f.sketch = hyperloglog.New()
	}
	f.log.Debug("multi-grain filter built",
		zap.Int("grains", len(grains)),
		zap.Int("threshold", setThreshold),
		zap.Bool("distinctEstimate", o.distinctEstimate))
	return f, nil
}

// Len returns the number of grains.
func (f *MultiGrain) Len() int {
	return len(f.grains)
}

// Threshold returns the number of grains that must agree for IsSet.
func (f *MultiGrain) Threshold() int {
	return f.setThreshold
}

// Grain returns the i'th grain.
func (f *MultiGrain) Grain(i int) Grain {
	return f.grains[i]
}

func (f *MultiGrain) Clear() {
	for _, g := range f.grains {
		g.Clear()
	}
	if f.sketch != nil {
		f.sketch = hyperloglog.New()
	}
	f.log.Debug("multi-grain filter cleared")
}

// Merge merges other's grain i into grain i, for every i in order.
// Filters with different grain counts, or where only one keeps a
// distinct estimate, are rejected before anything is modified. A grain
// error is returned as is; grains merged before it stay merged.
func (f *MultiGrain) Merge(other *MultiGrain) error {
	if other == nil || len(other.grains) != len(f.grains) {
		n := 0
		if other != nil {
			n = len(other.grains)
		}
		f.log.Warn("merge rejected",
			zap.Int("grains", len(f.grains)),
			zap.Int("otherGrains", n))
		return ErrStructuralMismatch
	}
	if (f.sketch == nil) != (other.sketch == nil) {
		f.log.Warn("merge rejected",
			zap.Bool("distinctEstimate", f.sketch != nil),
			zap.Bool("otherDistinctEstimate", other.sketch != nil))
		return ErrSketchMismatch
	}
	if f.sketch != nil {
		if err := f.sketch.Merge(other.sketch); err != nil {
			return err
		}
	}
	for i, g := range f.grains {
		if err := g.Merge(other.grains[i]); err != nil {
			f.log.Warn("grain merge failed", zap.Int("grain", i), zap.Error(err))
			return err
		}
	}
	return nil
}

// MustMerge is like Merge but panics if the filters cannot be merged.
func (f *MultiGrain) MustMerge(other *MultiGrain) {
	if err := f.Merge(other); err != nil {
		panic(err)
	}
}

func (f *MultiGrain) Set(addr uint64) {
	for _, g := range f.grains {
		g.Set(addr)
	}
	if f.sketch != nil {
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], addr)
		f.sketch.Insert(b[:])
	}
}

func (f *MultiGrain) Unset(addr uint64) {
	for _, g := range f.grains {
		g.Unset(addr)
	}
}

// Votes returns how many grains report addr present.
func (f *MultiGrain) Votes(addr uint64) int {
	votes := 0
	for _, g := range f.grains {
		if g.IsSet(addr) {
			votes++
		}
	}
	return votes
}

// IsSet tell you whether addr is likely present, i.e. at least
// Threshold grains report it.
func (f *MultiGrain) IsSet(addr uint64) bool {
	return f.Votes(addr) >= f.setThreshold
}

// Count is the sum of every grain's count for addr.
func (f *MultiGrain) Count(addr uint64) int {
	count := 0
	for _, g := range f.grains {
		count += g.Count(addr)
	}
	return count
}

// TotalCount is the sum of every grain's total count.
func (f *MultiGrain) TotalCount() int {
	count := 0
	for _, g := range f.grains {
		count += g.TotalCount()
	}
	return count
}

// EstimateDistinct estimates how many distinct addresses were Set since
// the last Clear, including those merged in. Unset does not lower it.
// It is 0 unless the filter was built WithDistinctEstimate.
func (f *MultiGrain) EstimateDistinct() uint64 {
	if f.sketch == nil {
		return 0
	}
	return f.sketch.Estimate()
}
