package mgbloom

import (
	"errors"
	"fmt"
)

// Grain is one sub-filter of a MultiGrain. Each grain applies its own
// address granularity; the composite never interprets addresses.
type Grain interface {
	Clear()
	Set(addr uint64)
	Unset(addr uint64)
	IsSet(addr uint64) bool
	Count(addr uint64) int
	TotalCount() int

	// Merge folds other into the receiver. other must have been built
	// from the same configuration.
	Merge(other Grain) error
}

// GrainConfig builds one Grain.
type GrainConfig interface {
	NewGrain() (Grain, error)
}

var (
	ErrNoGrains           = errors.New("mgbloom: at least one grain is required")
	ErrBadThreshold       = errors.New("mgbloom: set threshold out of range")
	ErrStructuralMismatch = errors.New("mgbloom: filters have different grain counts")
	ErrSketchMismatch     = errors.New("mgbloom: only one filter keeps a distinct estimate")
	ErrIncompatibleGrain  = errors.New("mgbloom: grains are not merge compatible")

	ErrNilConfig   = errors.New("mgbloom: nil grain config")
	ErrBadSize     = errors.New("mgbloom: grain size invalid")
	ErrBadHashes   = errors.New("mgbloom: hash count invalid")
	ErrBadMaxCount = errors.New("mgbloom: counter maximum invalid")
	ErrBadOffset   = errors.New("mgbloom: offset bits must be in 0..63")
)

// ConfigError reports the grain config that failed to build.
type ConfigError struct {
	Index int
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("mgbloom: grain %d: %v", e.Index, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func incompatible(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrIncompatibleGrain}, args...)...)
}

// MaxGrainSize bounds the Size of any grain: bits for bit vectors,
// counters for CountingGrain.
const MaxGrainSize = 1 << 40

func checkSize(size uint64) error {
	if size == 0 || size > MaxGrainSize {
		return ErrBadSize
	}
	return nil
}

func checkOffset(offsetBits uint) error {
	if offsetBits > 63 {
		return ErrBadOffset
	}
	return nil
}
