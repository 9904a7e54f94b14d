package yaml

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/shapestone/shape-yamlite/pkg/value"
)

const (
	defaultCacheSize   = 128
	defaultConcurrency = 8
)

// Loader reads and parses YAML files from a filesystem, caching parsed
// documents by path.
//
// A cached document is reused while the file keeps the modification time
// and size it had when it was parsed. Every call returns its own deep copy,
// so callers may modify results freely.
//
// A Loader is safe for concurrent use.
type Loader struct {
	fs          afero.Fs
	cache       *lru.Cache[string, cacheEntry]
	concurrency int
	logger      zerolog.Logger
}

type cacheEntry struct {
	modTime time.Time
	size    int64
	result  *Result
}

// LoaderOption configures a Loader.
type LoaderOption func(*loaderConfig)

type loaderConfig struct {
	cacheSize   int
	concurrency int
	logger      zerolog.Logger
}

// WithCacheSize sets the number of parsed documents kept in the cache.
func WithCacheSize(n int) LoaderOption {
	return func(c *loaderConfig) {
		c.cacheSize = n
	}
}

// WithConcurrency sets how many files LoadAll reads and parses at once.
func WithConcurrency(n int) LoaderOption {
	return func(c *loaderConfig) {
		c.concurrency = n
	}
}

// WithLoaderLogger sets the logger for file access, cache activity and
// parse diagnostics.
func WithLoaderLogger(logger zerolog.Logger) LoaderOption {
	return func(c *loaderConfig) {
		c.logger = logger
	}
}

// NewLoader creates a loader reading from fs. A nil fs reads from the
// operating system.
func NewLoader(fs afero.Fs, opts ...LoaderOption) (*Loader, error) {
	cfg := loaderConfig{
		cacheSize:   defaultCacheSize,
		concurrency: defaultConcurrency,
		logger:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.concurrency < 1 {
		return nil, fmt.Errorf("yaml: loader concurrency must be positive, got %d", cfg.concurrency)
	}

	cache, err := lru.New[string, cacheEntry](cfg.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("yaml: loader cache: %w", err)
	}

	if fs == nil {
		fs = afero.NewOsFs()
	}

	return &Loader{
		fs:          fs,
		cache:       cache,
		concurrency: cfg.concurrency,
		logger:      cfg.logger,
	}, nil
}

// Load parses the file at path, using the cached document when the file is
// unchanged. The error reports a file that cannot be read; problems in the
// document are returned in Result.Errors.
func (l *Loader) Load(path string) (*Result, error) {
	info, err := l.fs.Stat(path)
	if err != nil {
		l.logger.Warn().Err(err).Str("path", path).Msg("yaml file not accessible")
		return nil, fmt.Errorf("yaml: stat %s: %w", path, err)
	}

	if entry, ok := l.cache.Get(path); ok {
		if entry.modTime.Equal(info.ModTime()) && entry.size == info.Size() {
			l.logger.Debug().Str("path", path).Msg("yaml cache hit")
			return cloneResult(entry.result), nil
		}
		l.logger.Debug().Str("path", path).Msg("yaml cache entry stale")
	}

	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		l.logger.Warn().Err(err).Str("path", path).Msg("yaml file could not be read")
		return nil, fmt.Errorf("yaml: read %s: %w", path, err)
	}

	r := ParseBytes(data, WithLogger(l.logger.With().Str("path", path).Logger()))
	l.cache.Add(path, cacheEntry{
		modTime: info.ModTime(),
		size:    info.Size(),
		result:  cloneResult(r),
	})
	return r, nil
}

// LoadAll loads every path concurrently and returns the results in the
// order of paths. The first failure cancels the remaining loads and is
// returned.
func (l *Loader) LoadAll(ctx context.Context, paths ...string) ([]*Result, error) {
	results := make([]*Result, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.concurrency)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := l.Load(path)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Invalidate drops the cached document for path.
func (l *Loader) Invalidate(path string) {
	l.cache.Remove(path)
}

// cloneResult copies r so that no value is shared with it.
func cloneResult(r *Result) *Result {
	anchors := make(map[string]value.Value, len(r.Anchors))
	for name, v := range r.Anchors {
		anchors[name] = v.DeepClone()
	}
	return &Result{
		Value:    r.Value.DeepClone(),
		Errors:   append(ErrorList(nil), r.Errors...),
		Duration: r.Duration,
		Anchors:  anchors,
	}
}
