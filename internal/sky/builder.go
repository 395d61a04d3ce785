package sky

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/Faultbox/skysaver/internal/config"
	"github.com/Faultbox/skysaver/internal/geometry"
	"github.com/Faultbox/skysaver/internal/logger"
)

// maxRestarts bounds how often Build starts over after a quality change.
const maxRestarts = 3

// Builder builds scenes for a quality level that may be changed from
// another goroutine, e.g. by a hotkey handler.
type Builder struct {
	opts    Options
	quality atomic.Value // config.Quality

	// built runs after each attempt; tests use it to change quality mid-build.
	built func()
}

// NewBuilder creates a builder. opts.Quality is the initial level.
func NewBuilder(opts Options) *Builder {
	b := &Builder{opts: opts}
	b.quality.Store(opts.Quality)
	return b
}

// Quality returns the current level.
func (b *Builder) Quality() config.Quality {
	return b.quality.Load().(config.Quality)
}

// SetQuality changes the level used by the next Build. Safe for concurrent use.
func (b *Builder) SetQuality(q config.Quality) error {
	if !q.Valid() {
		return &geometry.ConfigError{Field: "quality", Value: q, Rule: "must be low, medium or high"}
	}
	b.quality.Store(q)
	return nil
}

// Build snapshots the quality level and builds a scene from it. If the level
// changes while building, the result is discarded and the build starts over
// from the new level, at most maxRestarts times. The returned scene always
// matches exactly one snapshot, recorded in Scene.Quality.
func (b *Builder) Build() (*Scene, error) {
	q := b.Quality()
	for attempt := 0; ; attempt++ {
		opts := b.opts
		opts.Quality = q
		scene, err := Build(opts)
		if err != nil {
			return nil, err
		}
		if b.built != nil {
			b.built()
		}

		now := b.Quality()
		if now == q || attempt == maxRestarts {
			return scene, nil
		}
		logger.Named("sky").Debug("quality changed during build, restarting",
			zap.String("built", q.String()),
			zap.String("wanted", now.String()),
		)
		q = now
	}
}
