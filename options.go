package mgbloom

import (
	"go.uber.org/zap"
)

type options struct {
	logger           *zap.Logger
	distinctEstimate bool
	uncheckedThresh  bool
}

// Option configures a MultiGrain at construction.
type Option func(*options)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithDistinctEstimate keeps a HyperLogLog sketch of every address Set
// since the last Clear. See MultiGrain.EstimateDistinct.
func WithDistinctEstimate() Option {
	return func(o *options) {
		o.distinctEstimate = true
	}
}

// WithUncheckedThreshold accepts any set threshold. A threshold below 1
// makes IsSet always true and one above the grain count makes it always
// false.
func WithUncheckedThreshold() Option {
	return func(o *options) {
		o.uncheckedThresh = true
	}
}
