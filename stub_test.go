package mgbloom

import (
	"errors"
)

// stubGrain answers queries from scripted maps and records calls.
type stubGrain struct {
	present  map[uint64]bool
	counts   map[uint64]int
	total    int
	mergeErr error

	sets, unsets, clears, merges int
	mergedWith                   []Grain
}

func newStub() *stubGrain {
	return &stubGrain{present: map[uint64]bool{}, counts: map[uint64]int{}}
}

func (s *stubGrain) Clear() {
	s.clears++
	s.present = map[uint64]bool{}
	s.counts = map[uint64]int{}
	s.total = 0
}

func (s *stubGrain) Set(addr uint64) {
	s.sets++
	s.present[addr] = true
	s.counts[addr]++
	s.total++
}

func (s *stubGrain) Unset(addr uint64) {
	s.unsets++
	delete(s.present, addr)
}

func (s *stubGrain) IsSet(addr uint64) bool { return s.present[addr] }
func (s *stubGrain) Count(addr uint64) int  { return s.counts[addr] }
func (s *stubGrain) TotalCount() int        { return s.total }

func (s *stubGrain) Merge(other Grain) error {
	if s.mergeErr != nil {
		return s.mergeErr
	}
	o, ok := other.(*stubGrain)
	if !ok {
		return ErrIncompatibleGrain
	}
	s.merges++
	s.mergedWith = append(s.mergedWith, other)
	for a := range o.present {
		s.present[a] = true
	}
	for a, c := range o.counts {
		s.counts[a] += c
	}
	s.total += o.total
	return nil
}

// stubConfig hands out a prepared grain, or fails.
type stubConfig struct {
	grain *stubGrain
	err   error
}

func (c stubConfig) NewGrain() (Grain, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.grain, nil
}

var errStubBuild = errors.New("stub: cannot build")

func stubFilter(n, threshold int, opts ...Option) (*MultiGrain, []*stubGrain, error) {
	stubs := make([]*stubGrain, n)
	configs := make([]GrainConfig, n)
	for i := range stubs {
		stubs[i] = newStub()
		configs[i] = stubConfig{grain: stubs[i]}
	}
	f, err := New(configs, threshold, opts...)
	return f, stubs, err
}
