package flow

import (
	"errors"

	log "github.com/sirupsen/logrus"
)

// ErrNilSpec is returned when a nil *core.Spec is passed.
var ErrNilSpec = errors.New("flow: spec is nil")

// Options configures all max-flow algorithms.
//   - Verbose: if true, logs each augmentation at Info level.
//   - Logger: destination for Verbose output (default logrus standard logger).
//   - LevelRebuildInterval: for Dinic, rebuild level graph every N augmentations.
type Options struct {
	Verbose              bool
	Logger               log.FieldLogger
	LevelRebuildInterval int
}

// DefaultOptions returns quiet options with the standard logger.
func DefaultOptions() Options {
	return Options{Logger: log.StandardLogger()}
}

// normalize fills unset fields; nil yields DefaultOptions.
func (o *Options) normalize() Options {
	if o == nil {
		return DefaultOptions()
	}
	out := *o
	if out.Logger == nil {
		out.Logger = log.StandardLogger()
	}
	if out.LevelRebuildInterval < 0 {
		out.LevelRebuildInterval = 0
	}

	return out
}
